package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"

	"github.com/LOVE20TKM/group-contracts/contracts/group/groupconst"
	"github.com/LOVE20TKM/group-contracts/contracts/verify/verifyconst"
)

func TestVerifyDelegate(t *testing.T) {
	s := newSuite(t)

	owner := s.group.NewAccount(t)
	s.registerActiveGroup(t, owner, 1)

	delegate := s.verify.NewAccount(t)
	inv := s.verify.WithSigners(owner)

	s.verify.Invoke(t, stackitem.Null{}, "delegate", int64(1))

	t.Run("owner only", func(t *testing.T) {
		s.verify.WithSigners(delegate).InvokeFail(t, verifyconst.OnlyGroupOwnerError,
			"setDelegate", int64(1), delegate.ScriptHash())
	})

	inv.Invoke(t, stackitem.Null{}, "setDelegate", int64(1), delegate.ScriptHash())
	s.verify.Invoke(t, stackitem.NewByteArray(delegate.ScriptHash().BytesBE()),
		"delegate", int64(1))

	t.Run("replace", func(t *testing.T) {
		other := s.verify.NewAccount(t)
		inv.Invoke(t, stackitem.Null{}, "setDelegate", int64(1), other.ScriptHash())
		s.verify.Invoke(t, stackitem.NewByteArray(other.ScriptHash().BytesBE()),
			"delegate", int64(1))
	})

	t.Run("revoke", func(t *testing.T) {
		inv.Invoke(t, stackitem.Null{}, "setDelegate", int64(1), []byte{})
		s.verify.Invoke(t, stackitem.Null{}, "delegate", int64(1))
	})

	t.Run("missing group", func(t *testing.T) {
		inv.InvokeFail(t, groupconst.NotFoundError, "setDelegate", int64(42), delegate.ScriptHash())
	})
}

func TestVerifySubmitScores(t *testing.T) {
	s := newSuite(t)

	owner := s.group.NewAccount(t)
	s.registerActiveGroup(t, owner, 1)

	alice := s.newAccountWithTokens(t, 1000)
	bob := s.newAccountWithTokens(t, 500)
	aliceHash := alice.ScriptHash()
	bobHash := bob.ScriptHash()
	s.join(t, 1, alice, 1000)
	s.join(t, 1, bob, 500)

	ownerInv := s.verify.WithSigners(owner)

	t.Run("verifier only", func(t *testing.T) {
		s.verify.WithSigners(alice).InvokeFail(t, verifyconst.NotVerifierError,
			"submitScores", int64(1), []any{aliceHash}, []any{int64(precision)})
	})

	t.Run("invalid arguments", func(t *testing.T) {
		ownerInv.InvokeFail(t, verifyconst.LengthMismatchError,
			"submitScores", int64(1), []any{aliceHash, bobHash}, []any{int64(precision)})
		ownerInv.InvokeFail(t, verifyconst.NegativeScoreError,
			"submitScores", int64(1), []any{aliceHash}, []any{int64(-1)})
	})

	// Half score on 1000 plus full score on 500.
	ownerInv.Invoke(t, stackitem.Null{}, "submitScores", int64(1),
		[]any{aliceHash, bobHash}, []any{int64(precision / 2), int64(precision)})

	s.verify.Invoke(t, stackitem.NewBool(true), "isVerified", int64(1), int64(0))
	s.verify.Invoke(t, stackitem.Make(1000), "verifiedAmount", int64(1), int64(0))
	s.verify.Invoke(t, stackitem.Make(precision/2), "score", int64(1), int64(0), aliceHash)
	s.verify.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewStruct([]stackitem.Item{stackitem.Make(1), stackitem.Make(1000)}),
	}), "listVerified", s.tokenHash, int64(activityID), int64(0))

	t.Run("delegate substitutes the owner", func(t *testing.T) {
		delegate := s.verify.NewAccount(t)
		ownerInv.Invoke(t, stackitem.Null{}, "setDelegate", int64(1), delegate.ScriptHash())

		// Resubmission within the round replaces the score set, the dropped
		// member is no longer scored.
		s.verify.WithSigners(delegate).Invoke(t, stackitem.Null{},
			"submitScores", int64(1), []any{aliceHash}, []any{int64(precision / 4)})

		s.verify.Invoke(t, stackitem.Make(250), "verifiedAmount", int64(1), int64(0))
		s.verify.Invoke(t, stackitem.Make(precision/4), "score", int64(1), int64(0), aliceHash)
		s.verify.Invoke(t, stackitem.Make(0), "score", int64(1), int64(0), bobHash)
	})

	t.Run("passed rounds are frozen", func(t *testing.T) {
		s.tickRound(t)

		s.verify.Invoke(t, stackitem.NewBool(false), "isVerified", int64(1), int64(1))
		s.verify.Invoke(t, stackitem.Make(0), "verifiedAmount", int64(1), int64(1))

		ownerInv.Invoke(t, stackitem.Null{}, "submitScores", int64(1),
			[]any{bobHash}, []any{int64(precision)})

		s.verify.Invoke(t, stackitem.Make(500), "verifiedAmount", int64(1), int64(1))
		s.verify.Invoke(t, stackitem.Make(250), "verifiedAmount", int64(1), int64(0))
		s.verify.Invoke(t, stackitem.Make(precision/4), "score", int64(1), int64(0), aliceHash)
	})
}

func TestVerifyScoresWideRounds(t *testing.T) {
	s := newSuite(t)
	s.tickRound(t)

	owner := s.group.NewAccount(t)
	s.registerActiveGroup(t, owner, 1)

	member := s.newAccountWithTokens(t, 1000)
	s.join(t, 1, member, 1000)

	inv := s.verify.WithSigners(owner)
	inv.Invoke(t, stackitem.Null{}, "submitScores", int64(1),
		[]any{member.ScriptHash()}, []any{int64(precision)})

	s.activity.Invoke(t, stackitem.Null{}, "newRound", int64(257))

	inv.Invoke(t, stackitem.Null{}, "submitScores", int64(1),
		[]any{member.ScriptHash()}, []any{int64(precision / 2)})
	inv.Invoke(t, stackitem.Null{}, "submitScores", int64(1),
		[]any{member.ScriptHash()}, []any{int64(precision / 4)})

	// Resubmission in a multi-byte round replaces that round only, history
	// of earlier rounds stays frozen.
	s.verify.Invoke(t, stackitem.Make(250), "verifiedAmount", int64(1), int64(257))
	s.verify.Invoke(t, stackitem.Make(precision/4), "score", int64(1), int64(257), member.ScriptHash())

	s.verify.Invoke(t, stackitem.Make(1000), "verifiedAmount", int64(1), int64(1))
	s.verify.Invoke(t, stackitem.Make(precision), "score", int64(1), int64(1), member.ScriptHash())
	s.verify.Invoke(t, stackitem.NewBool(true), "isVerified", int64(1), int64(1))
	s.verify.Invoke(t, stackitem.NewBool(false), "isVerified", int64(1), int64(2))
}
