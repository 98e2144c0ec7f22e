package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestTokenInfo(t *testing.T) {
	s := newSuite(t)

	s.token.Invoke(t, stackitem.Make("GRP"), "symbol")
	s.token.Invoke(t, stackitem.Make(12), "decimals")
	s.token.Invoke(t, stackitem.Make(0), "totalSupply")
}

func TestTokenMintBurn(t *testing.T) {
	s := newSuite(t)

	acc := s.token.NewAccount(t)
	accHash := acc.ScriptHash()

	s.mint(t, accHash, 1000)
	require.EqualValues(t, 1000, s.balanceOf(t, accHash))
	s.token.Invoke(t, stackitem.Make(1000), "totalSupply")

	s.token.Invoke(t, stackitem.Null{}, "burn", accHash, int64(400), []byte{})
	require.EqualValues(t, 600, s.balanceOf(t, accHash))
	s.token.Invoke(t, stackitem.Make(600), "totalSupply")

	t.Run("insufficient balance", func(t *testing.T) {
		s.token.InvokeFail(t, "can't transfer assets", "burn", accHash, int64(700), []byte{})
	})

	t.Run("committee only", func(t *testing.T) {
		s.token.WithSigners(acc).InvokeFail(t, "committee witness check failed",
			"mint", accHash, int64(1), []byte{})
		s.token.WithSigners(acc).InvokeFail(t, "committee witness check failed",
			"burn", accHash, int64(1), []byte{})
	})
}

func TestTokenTransfer(t *testing.T) {
	s := newSuite(t)

	from := s.newAccountWithTokens(t, 1000)
	to := s.token.NewAccount(t)
	fromHash := from.ScriptHash()
	toHash := to.ScriptHash()

	s.token.WithSigners(from).Invoke(t, stackitem.NewBool(true),
		"transfer", fromHash, toHash, int64(300), nil)
	require.EqualValues(t, 700, s.balanceOf(t, fromHash))
	require.EqualValues(t, 300, s.balanceOf(t, toHash))

	t.Run("missing witness", func(t *testing.T) {
		s.token.WithSigners(to).Invoke(t, stackitem.NewBool(false),
			"transfer", fromHash, toHash, int64(1), nil)
	})

	t.Run("not enough assets", func(t *testing.T) {
		s.token.WithSigners(from).Invoke(t, stackitem.NewBool(false),
			"transfer", fromHash, toHash, int64(1000), nil)
	})

	t.Run("negative amount", func(t *testing.T) {
		s.token.WithSigners(from).InvokeFail(t, "negative amount",
			"transfer", fromHash, toHash, int64(-1), nil)
	})
}
