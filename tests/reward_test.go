package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"

	"github.com/LOVE20TKM/group-contracts/contracts/reward/rewardconst"
)

// newVerifiedGroup registers an active group, stakes a member into it and
// submits the member score, leaving the group verified in the current round.
func (s *suite) newVerifiedGroup(t *testing.T, id, stake, score int64) neotest.Signer {
	owner := s.group.NewAccount(t)
	s.registerActiveGroup(t, owner, id)

	member := s.newAccountWithTokens(t, stake)
	s.join(t, id, member, stake)

	s.verify.WithSigners(owner).Invoke(t, stackitem.Null{}, "submitScores", id,
		[]any{member.ScriptHash()}, []any{score})

	return owner
}

func (s *suite) enroll(t *testing.T, acc neotest.Signer) {
	s.reward.WithSigners(acc).Invoke(t, stackitem.Null{}, "enroll", acc.ScriptHash())
}

func (s *suite) mintPool(t *testing.T, amount int64) {
	s.reward.Invoke(t, stackitem.Null{}, "mintServiceReward",
		s.tokenHash, int64(activityID), amount)
}

func TestRewardRoster(t *testing.T) {
	s := newSuite(t)
	s.tickRound(t)

	acc := s.reward.NewAccount(t)
	accHash := acc.ScriptHash()
	inv := s.reward.WithSigners(acc)

	s.reward.Invoke(t, stackitem.NewBool(false), "isOnRoster", accHash, int64(1))

	inv.Invoke(t, stackitem.Null{}, "enroll", accHash)
	s.reward.Invoke(t, stackitem.NewBool(true), "isOnRoster", accHash, int64(1))

	t.Run("repeated enroll is a no-op", func(t *testing.T) {
		inv.Invoke(t, stackitem.Null{}, "enroll", accHash)
		s.reward.Invoke(t, stackitem.NewBool(true), "isOnRoster", accHash, int64(1))
	})

	t.Run("missing witness", func(t *testing.T) {
		other := s.reward.NewAccount(t)
		s.reward.WithSigners(other).InvokeFail(t, "witness check failed", "enroll", accHash)
		s.reward.WithSigners(other).InvokeFail(t, "witness check failed", "resign", accHash)
	})

	inv.Invoke(t, stackitem.Null{}, "resign", accHash)
	s.reward.Invoke(t, stackitem.NewBool(false), "isOnRoster", accHash, int64(1))

	t.Run("repeated resign is a no-op", func(t *testing.T) {
		inv.Invoke(t, stackitem.Null{}, "resign", accHash)
	})

	t.Run("re-enroll starts a new membership", func(t *testing.T) {
		s.tickRound(t)

		inv.Invoke(t, stackitem.Null{}, "enroll", accHash)
		s.reward.Invoke(t, stackitem.NewBool(true), "isOnRoster", accHash, int64(2))
		s.reward.Invoke(t, stackitem.NewBool(false), "isOnRoster", accHash, int64(1))
	})
}

func TestRewardRosterRoundZero(t *testing.T) {
	s := newSuite(t)

	acc := s.reward.NewAccount(t)
	accHash := acc.ScriptHash()

	s.reward.WithSigners(acc).Invoke(t, stackitem.Null{}, "enroll", accHash)
	s.reward.Invoke(t, stackitem.NewBool(true), "isOnRoster", accHash, int64(0))
	s.reward.Invoke(t, stackitem.NewBool(true), "isOnRoster", accHash, int64(1))

	t.Run("resign during round zero", func(t *testing.T) {
		other := s.reward.NewAccount(t)
		otherHash := other.ScriptHash()
		inv := s.reward.WithSigners(other)

		inv.Invoke(t, stackitem.Null{}, "enroll", otherHash)
		inv.Invoke(t, stackitem.Null{}, "resign", otherHash)
		s.reward.Invoke(t, stackitem.NewBool(false), "isOnRoster", otherHash, int64(0))
	})
}

func TestRewardMintPool(t *testing.T) {
	s := newSuite(t)
	s.tickRound(t)

	s.reward.Invoke(t, stackitem.Make(0), "totalServiceReward",
		s.tokenHash, int64(activityID), int64(1))

	s.mintPool(t, 100)
	s.mintPool(t, 50)

	s.reward.Invoke(t, stackitem.Make(150), "totalServiceReward",
		s.tokenHash, int64(activityID), int64(1))
	require.EqualValues(t, 150, s.balanceOf(t, s.rewardHash))
	s.token.Invoke(t, stackitem.Make(150), "totalSupply")

	t.Run("invalid amount", func(t *testing.T) {
		s.reward.InvokeFail(t, "invalid reward amount", "mintServiceReward",
			s.tokenHash, int64(activityID), int64(0))
	})

	t.Run("committee only", func(t *testing.T) {
		acc := s.reward.NewAccount(t)
		s.reward.WithSigners(acc).InvokeFail(t, "committee witness check failed",
			"mintServiceReward", s.tokenHash, int64(activityID), int64(1))
	})

	t.Run("wide activity and round numbers", func(t *testing.T) {
		s.activity.Invoke(t, stackitem.Null{}, "registerActivity", s.tokenHash, int64(257))
		s.activity.Invoke(t, stackitem.Null{}, "newRound", int64(2))

		s.reward.Invoke(t, stackitem.Null{}, "mintServiceReward",
			s.tokenHash, int64(257), int64(77))

		s.reward.Invoke(t, stackitem.Make(77), "totalServiceReward",
			s.tokenHash, int64(257), int64(2))
		// Pools of multi-byte instance and round numbers stay separate.
		s.reward.Invoke(t, stackitem.Make(0), "totalServiceReward",
			s.tokenHash, int64(1), int64(513))
		s.reward.Invoke(t, stackitem.Make(0), "totalServiceReward",
			s.tokenHash, int64(257), int64(513))
	})
}

func TestRewardSoleOwner(t *testing.T) {
	s := newSuite(t)
	s.tickRound(t)

	owner := s.newVerifiedGroup(t, 1, 1000, precision)
	ownerHash := owner.ScriptHash()
	s.enroll(t, owner)
	s.mintPool(t, 100)

	s.reward.Invoke(t, stackitem.Make(1000), "generatedByVerifier",
		s.tokenHash, int64(activityID), int64(1), ownerHash)
	s.reward.Invoke(t, stackitem.Make(1000), "totalGeneratedReward",
		s.tokenHash, int64(activityID), int64(1))

	// The sole generator takes the whole pool.
	s.reward.Invoke(t, stackitem.Make(100), "rewardOf",
		s.tokenHash, int64(activityID), int64(1), ownerHash)
	s.reward.Invoke(t, stackitem.Make(100), "rewardByAccount", int64(1), ownerHash)

	t.Run("round must finish", func(t *testing.T) {
		s.reward.WithSigners(owner).InvokeFail(t, rewardconst.RoundNotFinishedError,
			"claimReward", int64(1), ownerHash)
	})

	s.tickRound(t)

	balance := s.balanceOf(t, ownerHash)
	s.reward.WithSigners(owner).Invoke(t, stackitem.Make(100), "claimReward", int64(1), ownerHash)
	require.EqualValues(t, balance+100, s.balanceOf(t, ownerHash))
	require.EqualValues(t, 0, s.balanceOf(t, s.rewardHash))

	s.reward.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(100), stackitem.NewBool(true),
	}), "rewardRecordOf", int64(1), ownerHash)

	t.Run("repeated claim", func(t *testing.T) {
		s.reward.WithSigners(owner).InvokeFail(t, rewardconst.AlreadyClaimedError,
			"claimReward", int64(1), ownerHash)
	})
}

func TestRewardSetRecipientsValidation(t *testing.T) {
	s := newSuite(t)
	s.tickRound(t)

	owner := s.group.NewAccount(t)
	s.registerActiveGroup(t, owner, 1)
	inv := s.reward.WithSigners(owner)

	r1 := s.reward.NewAccount(t).ScriptHash()
	r2 := s.reward.NewAccount(t).ScriptHash()
	share := int64(precision / 10)

	t.Run("owner only", func(t *testing.T) {
		other := s.reward.NewAccount(t)
		s.reward.WithSigners(other).InvokeFail(t, rewardconst.NotGroupOwnerError,
			"setRecipients", int64(1), []any{r1}, []any{share})
	})

	inv.InvokeFail(t, rewardconst.LengthMismatchError,
		"setRecipients", int64(1), []any{r1, r2}, []any{share})
	inv.InvokeFail(t, rewardconst.TooManyRecipientsError,
		"setRecipients", int64(1),
		[]any{r1, r2, s.reward.NewAccount(t).ScriptHash(), s.reward.NewAccount(t).ScriptHash()},
		[]any{share, share, share, share})
	inv.InvokeFail(t, rewardconst.ZeroAddressError,
		"setRecipients", int64(1), []any{util.Uint160{}}, []any{share})
	inv.InvokeFail(t, rewardconst.SelfRecipientError,
		"setRecipients", int64(1), []any{owner.ScriptHash()}, []any{share})
	inv.InvokeFail(t, rewardconst.ZeroShareError,
		"setRecipients", int64(1), []any{r1}, []any{int64(0)})
	inv.InvokeFail(t, rewardconst.DuplicateRecipientError,
		"setRecipients", int64(1), []any{r1, r1}, []any{share, share})
	inv.InvokeFail(t, rewardconst.InvalidShareError,
		"setRecipients", int64(1), []any{r1, r2}, []any{int64(precision), int64(1)})

	// The full unit itself is allowed.
	inv.Invoke(t, stackitem.Null{}, "setRecipients", int64(1), []any{r1}, []any{int64(precision)})
}

func TestRewardSplit(t *testing.T) {
	s := newSuite(t)
	s.tickRound(t)

	owner := s.newVerifiedGroup(t, 1, 1000, precision)
	ownerHash := owner.ScriptHash()
	s.enroll(t, owner)
	s.mintPool(t, 100)

	r1 := s.reward.NewAccount(t).ScriptHash()
	r2 := s.reward.NewAccount(t).ScriptHash()

	// 30% and 20%, the owner keeps the rest.
	s.reward.WithSigners(owner).Invoke(t, stackitem.Null{}, "setRecipients", int64(1),
		[]any{r1, r2}, []any{int64(precision * 3 / 10), int64(precision * 2 / 10)})

	s.reward.Invoke(t, stackitem.Make(30), "rewardByRecipient", int64(1), int64(1), r1)
	s.reward.Invoke(t, stackitem.Make(20), "rewardByRecipient", int64(1), int64(1), r2)
	s.reward.Invoke(t, stackitem.Make(50), "rewardByAccount", int64(1), ownerHash)
	s.reward.Invoke(t, stackitem.Make(30), "rewardByAccount", int64(1), r1)

	t.Run("owner absorbs truncation", func(t *testing.T) {
		// 33 more in the pool: recipient parts truncate to 39 and 26, the
		// owner residual completes the group reward exactly.
		s.mintPool(t, 33)

		s.reward.Invoke(t, stackitem.Make(39), "rewardByRecipient", int64(1), int64(1), r1)
		s.reward.Invoke(t, stackitem.Make(26), "rewardByRecipient", int64(1), int64(1), r2)
		s.reward.Invoke(t, stackitem.Make(68), "rewardByAccount", int64(1), ownerHash)
	})

	t.Run("split of a passed round is frozen", func(t *testing.T) {
		s.tickRound(t)

		s.reward.WithSigners(owner).Invoke(t, stackitem.Null{}, "setRecipients", int64(1),
			[]any{r1}, []any{int64(precision / 10)})

		s.reward.Invoke(t, stackitem.NewArray([]stackitem.Item{
			stackitem.NewStruct([]stackitem.Item{
				stackitem.NewByteArray(r1.BytesBE()), stackitem.Make(precision * 3 / 10),
			}),
			stackitem.NewStruct([]stackitem.Item{
				stackitem.NewByteArray(r2.BytesBE()), stackitem.Make(precision * 2 / 10),
			}),
		}), "recipients", int64(1), int64(1))

		s.reward.Invoke(t, stackitem.NewArray([]stackitem.Item{
			stackitem.NewStruct([]stackitem.Item{
				stackitem.NewByteArray(r1.BytesBE()), stackitem.Make(precision / 10),
			}),
		}), "recipients", int64(1), int64(2))

		// recipientsLatest is the current round's view of the same split.
		s.reward.Invoke(t, stackitem.NewArray([]stackitem.Item{
			stackitem.NewStruct([]stackitem.Item{
				stackitem.NewByteArray(r1.BytesBE()), stackitem.Make(precision / 10),
			}),
		}), "recipientsLatest", int64(1))

		// Payouts of round 1 follow the round 1 split.
		s.reward.Invoke(t, stackitem.Make(39), "rewardByRecipient", int64(1), int64(1), r1)
	})
}

func TestRewardDistrustReduction(t *testing.T) {
	s := newSuite(t)
	s.tickRound(t)

	first := s.newVerifiedGroup(t, 1, 1000, precision)
	second := s.newVerifiedGroup(t, 2, 1000, precision)
	s.enroll(t, first)
	s.enroll(t, second)
	s.mintPool(t, 150)

	voter := s.distrust.NewAccount(t)
	s.putVerifyVotes(t, voter.ScriptHash(), 1000)

	// Half of the voting power against the first owner halves its generation
	// basis: 500 against 1000 of the second owner.
	s.distrust.WithSigners(voter).Invoke(t, stackitem.Null{}, "castVote",
		s.tokenHash, int64(activityID), voter.ScriptHash(), first.ScriptHash(), int64(500), "lazy")

	s.reward.Invoke(t, stackitem.Make(500), "generatedByVerifier",
		s.tokenHash, int64(activityID), int64(1), first.ScriptHash())
	s.reward.Invoke(t, stackitem.Make(1000), "generatedByVerifier",
		s.tokenHash, int64(activityID), int64(1), second.ScriptHash())
	s.reward.Invoke(t, stackitem.Make(1500), "totalGeneratedReward",
		s.tokenHash, int64(activityID), int64(1))

	s.reward.Invoke(t, stackitem.Make(50), "rewardOf",
		s.tokenHash, int64(activityID), int64(1), first.ScriptHash())
	s.reward.Invoke(t, stackitem.Make(100), "rewardOf",
		s.tokenHash, int64(activityID), int64(1), second.ScriptHash())
}

func TestRewardBurn(t *testing.T) {
	s := newSuite(t)
	s.tickRound(t)

	// Two verified groups, only the first owner is on the roster: 40 of the
	// 100 pool is distributed, 60 is to burn.
	first := s.newVerifiedGroup(t, 1, 1000, precision*2/5)
	second := s.newVerifiedGroup(t, 2, 1000, precision*3/5)
	s.enroll(t, first)
	s.mintPool(t, 100)

	s.reward.Invoke(t, stackitem.Make(40), "rewardOf",
		s.tokenHash, int64(activityID), int64(1), first.ScriptHash())
	s.reward.Invoke(t, stackitem.Make(0), "rewardOf",
		s.tokenHash, int64(activityID), int64(1), second.ScriptHash())

	t.Run("round must finish", func(t *testing.T) {
		s.reward.InvokeFail(t, rewardconst.RoundNotFinishedError,
			"burnRewardIfNeeded", s.tokenHash, int64(activityID), int64(1))
	})

	s.tickRound(t)

	supply := int64(100 + 2000) // pool and the two stakes

	s.token.Invoke(t, stackitem.Make(supply), "totalSupply")
	s.reward.Invoke(t, stackitem.Null{}, "burnRewardIfNeeded",
		s.tokenHash, int64(activityID), int64(1))
	s.token.Invoke(t, stackitem.Make(supply-60), "totalSupply")
	require.EqualValues(t, 40, s.balanceOf(t, s.rewardHash))

	s.reward.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(60), stackitem.NewBool(true),
	}), "burnInfo", s.tokenHash, int64(activityID), int64(1))

	t.Run("repeated burn is a no-op", func(t *testing.T) {
		s.reward.Invoke(t, stackitem.Null{}, "burnRewardIfNeeded",
			s.tokenHash, int64(activityID), int64(1))
		s.token.Invoke(t, stackitem.Make(supply-60), "totalSupply")
	})

	t.Run("committee only", func(t *testing.T) {
		acc := s.reward.NewAccount(t)
		s.reward.WithSigners(acc).InvokeFail(t, "committee witness check failed",
			"burnRewardIfNeeded", s.tokenHash, int64(activityID), int64(1))
	})

	// The distributed part stays claimable after the burn.
	balance := s.balanceOf(t, first.ScriptHash())
	s.reward.WithSigners(first).Invoke(t, stackitem.Make(40), "claimReward",
		int64(1), first.ScriptHash())
	require.EqualValues(t, balance+40, s.balanceOf(t, first.ScriptHash()))
}

func TestRewardRosterGate(t *testing.T) {
	s := newSuite(t)
	s.tickRound(t)

	owner := s.newVerifiedGroup(t, 1, 1000, precision)
	ownerHash := owner.ScriptHash()
	s.mintPool(t, 100)

	// Never enrolled: every reward query resolves to 0, nothing fails.
	s.reward.Invoke(t, stackitem.Make(0), "rewardOf",
		s.tokenHash, int64(activityID), int64(1), ownerHash)
	s.reward.Invoke(t, stackitem.Make(0), "rewardByAccount", int64(1), ownerHash)
	s.reward.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(0), stackitem.NewBool(false),
	}), "rewardRecordOf", int64(1), ownerHash)

	// Generation is tracked regardless of eligibility.
	s.reward.Invoke(t, stackitem.Make(1000), "generatedByVerifier",
		s.tokenHash, int64(activityID), int64(1), ownerHash)

	t.Run("enrolling later does not reopen passed rounds", func(t *testing.T) {
		s.tickRound(t)
		s.enroll(t, owner)

		s.reward.Invoke(t, stackitem.Make(0), "rewardOf",
			s.tokenHash, int64(activityID), int64(1), ownerHash)
	})
}
