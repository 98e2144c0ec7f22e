package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func TestActivityNewRound(t *testing.T) {
	s := newSuite(t)

	s.activity.Invoke(t, stackitem.Make(0), "currentRound")

	s.activity.Invoke(t, stackitem.Null{}, "newRound", int64(1))
	s.activity.Invoke(t, stackitem.Make(1), "currentRound")

	t.Run("must increase", func(t *testing.T) {
		s.activity.InvokeFail(t, "invalid round", "newRound", int64(1))
		s.activity.InvokeFail(t, "invalid round", "newRound", int64(0))
	})

	t.Run("committee only", func(t *testing.T) {
		acc := s.activity.NewAccount(t)
		s.activity.WithSigners(acc).InvokeFail(t, "committee witness check failed",
			"newRound", int64(2))
	})

	t.Run("gaps are allowed", func(t *testing.T) {
		s.activity.Invoke(t, stackitem.Null{}, "newRound", int64(5))
		s.activity.Invoke(t, stackitem.Make(5), "currentRound")
	})
}

func TestActivityRegister(t *testing.T) {
	s := newSuite(t)

	s.activity.Invoke(t, stackitem.NewBool(true), "isRegistered", s.tokenHash, int64(activityID))
	s.activity.Invoke(t, stackitem.NewBool(false), "isRegistered", s.tokenHash, int64(42))

	s.activity.InvokeFail(t, "activity is already registered",
		"registerActivity", s.tokenHash, int64(activityID))

	t.Run("committee only", func(t *testing.T) {
		acc := s.activity.NewAccount(t)
		s.activity.WithSigners(acc).InvokeFail(t, "committee witness check failed",
			"registerActivity", s.tokenHash, int64(2))
	})

	s.activity.Invoke(t, stackitem.Null{}, "registerActivity", s.tokenHash, int64(2))
	s.activity.Invoke(t, stackitem.NewBool(true), "isRegistered", s.tokenHash, int64(2))
}

func TestActivityConfig(t *testing.T) {
	s := newSuite(t)

	s.activity.Invoke(t, stackitem.NewByteArray(bigint.ToBytes(big.NewInt(minJoinAmount))),
		"config", "MinJoinAmount")
	s.activity.Invoke(t, stackitem.Null{}, "config", "NoSuchKey")

	s.activity.Invoke(t, stackitem.Null{}, "setConfig", "MinJoinAmount", int64(500))
	s.activity.Invoke(t, stackitem.NewByteArray(bigint.ToBytes(big.NewInt(500))),
		"config", "MinJoinAmount")

	t.Run("committee only", func(t *testing.T) {
		acc := s.activity.NewAccount(t)
		s.activity.WithSigners(acc).InvokeFail(t, "committee witness check failed",
			"setConfig", "MinJoinAmount", int64(1))
	})
}

func TestActivityVerifyVotes(t *testing.T) {
	s := newSuite(t)

	voter := s.activity.NewAccount(t)
	other := s.activity.NewAccount(t)
	voterHash := voter.ScriptHash()
	otherHash := other.ScriptHash()

	s.tickRound(t)

	s.putVerifyVotes(t, voterHash, 100)
	s.putVerifyVotes(t, otherHash, 400)

	s.activity.Invoke(t, stackitem.Make(100), "verifyVotes",
		s.tokenHash, int64(activityID), int64(1), voterHash)
	s.activity.Invoke(t, stackitem.Make(500), "totalVerifyVotes",
		s.tokenHash, int64(activityID), int64(1))

	t.Run("overwrite adjusts total", func(t *testing.T) {
		s.putVerifyVotes(t, voterHash, 60)
		s.activity.Invoke(t, stackitem.Make(60), "verifyVotes",
			s.tokenHash, int64(activityID), int64(1), voterHash)
		s.activity.Invoke(t, stackitem.Make(460), "totalVerifyVotes",
			s.tokenHash, int64(activityID), int64(1))
	})

	t.Run("round partitioned", func(t *testing.T) {
		s.tickRound(t)

		s.activity.Invoke(t, stackitem.Make(0), "verifyVotes",
			s.tokenHash, int64(activityID), int64(2), voterHash)
		s.activity.Invoke(t, stackitem.Make(60), "verifyVotes",
			s.tokenHash, int64(activityID), int64(1), voterHash)
	})

	t.Run("committee only", func(t *testing.T) {
		s.activity.WithSigners(voter).InvokeFail(t, "committee witness check failed",
			"putVerifyVotes", s.tokenHash, int64(activityID), voterHash, int64(1))
	})

	t.Run("unregistered activity", func(t *testing.T) {
		s.activity.InvokeFail(t, "activity is not registered",
			"putVerifyVotes", s.tokenHash, int64(42), voterHash, int64(1))
	})
}

func TestActivityVerifyVotesWideIDs(t *testing.T) {
	s := newSuite(t)

	voter := s.activity.NewAccount(t).ScriptHash()

	s.activity.Invoke(t, stackitem.Null{}, "registerActivity", s.tokenHash, int64(257))
	s.activity.Invoke(t, stackitem.Null{}, "newRound", int64(2))

	s.activity.Invoke(t, stackitem.Null{}, "putVerifyVotes",
		s.tokenHash, int64(257), voter, int64(100))

	s.activity.Invoke(t, stackitem.Make(100), "verifyVotes",
		s.tokenHash, int64(257), int64(2), voter)
	s.activity.Invoke(t, stackitem.Make(100), "totalVerifyVotes",
		s.tokenHash, int64(257), int64(2))

	// Multi-byte instance and round numbers must not bleed into each other.
	s.activity.Invoke(t, stackitem.Make(0), "verifyVotes",
		s.tokenHash, int64(1), int64(513), voter)
	s.activity.Invoke(t, stackitem.Make(0), "totalVerifyVotes",
		s.tokenHash, int64(1), int64(513))
	s.activity.Invoke(t, stackitem.Make(0), "verifyVotes",
		s.tokenHash, int64(257), int64(1), voter)
}
