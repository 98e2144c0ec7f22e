package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"

	"github.com/LOVE20TKM/group-contracts/contracts/group/groupconst"
)

func TestGroupRegister(t *testing.T) {
	s := newSuite(t)

	owner := s.group.NewAccount(t)
	inv := s.group.WithSigners(owner)

	inv.Invoke(t, stackitem.Make(1), "register", owner.ScriptHash(), s.tokenHash, int64(activityID))
	s.group.Invoke(t, stackitem.NewByteArray(owner.ScriptHash().BytesBE()), "ownerOf", int64(1))
	s.group.Invoke(t, stackitem.NewBool(false), "isActive", int64(1))

	t.Run("sequential IDs", func(t *testing.T) {
		inv.Invoke(t, stackitem.Make(2), "register", owner.ScriptHash(), s.tokenHash, int64(activityID))
	})

	t.Run("missing witness", func(t *testing.T) {
		other := s.group.NewAccount(t)
		s.group.WithSigners(other).InvokeFail(t, "witness check failed",
			"register", owner.ScriptHash(), s.tokenHash, int64(activityID))
	})

	t.Run("unknown activity", func(t *testing.T) {
		inv.InvokeFail(t, "activity is not registered",
			"register", owner.ScriptHash(), s.tokenHash, int64(42))
	})

	t.Run("missing group", func(t *testing.T) {
		s.group.InvokeFail(t, groupconst.NotFoundError, "ownerOf", int64(42))
	})
}

func TestGroupActivate(t *testing.T) {
	s := newSuite(t)

	owner := s.group.NewAccount(t)
	inv := s.group.WithSigners(owner)
	inv.Invoke(t, stackitem.Make(1), "register", owner.ScriptHash(), s.tokenHash, int64(activityID))

	inv.Invoke(t, stackitem.Null{}, "activate", int64(1))
	s.group.Invoke(t, stackitem.NewBool(true), "isActive", int64(1))
	inv.InvokeFail(t, "group is already active", "activate", int64(1))

	t.Run("owner only", func(t *testing.T) {
		other := s.group.NewAccount(t)
		s.group.WithSigners(other).InvokeFail(t, "witness check failed", "deactivate", int64(1))
	})

	inv.Invoke(t, stackitem.Null{}, "deactivate", int64(1))
	s.group.Invoke(t, stackitem.NewBool(false), "isActive", int64(1))
	inv.InvokeFail(t, groupconst.NotActiveError, "deactivate", int64(1))
}

func TestGroupJoinExit(t *testing.T) {
	s := newSuite(t)

	owner := s.group.NewAccount(t)
	s.registerActiveGroup(t, owner, 1)

	alice := s.newAccountWithTokens(t, 1000)
	bob := s.newAccountWithTokens(t, 500)
	aliceHash := alice.ScriptHash()
	bobHash := bob.ScriptHash()

	s.join(t, 1, alice, 1000)
	s.join(t, 1, bob, 200)

	s.group.Invoke(t, stackitem.Make(1000), "stakedOf", int64(1), aliceHash)
	s.group.Invoke(t, stackitem.Make(1200), "totalStaked", int64(1))
	s.group.Invoke(t, stackitem.Make(2), "memberCount", int64(1))

	// The stake moved to the group contract account.
	require.EqualValues(t, 0, s.balanceOf(t, aliceHash))
	require.EqualValues(t, 1200, s.balanceOf(t, s.groupHash))

	s.group.WithSigners(alice).Invoke(t, stackitem.Null{}, "exit", int64(1), aliceHash)
	require.EqualValues(t, 1000, s.balanceOf(t, aliceHash))
	s.group.Invoke(t, stackitem.Make(0), "stakedOf", int64(1), aliceHash)
	s.group.Invoke(t, stackitem.Make(200), "totalStaked", int64(1))
	s.group.Invoke(t, stackitem.Make(1), "memberCount", int64(1))

	t.Run("repeated exit is a no-op", func(t *testing.T) {
		s.group.WithSigners(alice).Invoke(t, stackitem.Null{}, "exit", int64(1), aliceHash)
		require.EqualValues(t, 1000, s.balanceOf(t, aliceHash))
	})

	t.Run("missing witness", func(t *testing.T) {
		s.group.WithSigners(alice).InvokeFail(t, "witness check failed",
			"join", int64(1), bobHash, int64(200))
		s.group.WithSigners(alice).InvokeFail(t, "witness check failed",
			"exit", int64(1), bobHash)
	})
}

func TestGroupJoinRestrictions(t *testing.T) {
	s := newSuite(t)

	owner := s.group.NewAccount(t)
	s.registerActiveGroup(t, owner, 1)

	acc := s.newAccountWithTokens(t, 10000)
	accHash := acc.ScriptHash()
	inv := s.group.WithSigners(acc)

	t.Run("amount bounds", func(t *testing.T) {
		inv.InvokeFail(t, groupconst.JoinAmountError, "join", int64(1), accHash, int64(0))
		inv.InvokeFail(t, groupconst.JoinAmountError, "join", int64(1), accHash, int64(minJoinAmount-1))

		s.activity.Invoke(t, stackitem.Null{}, "setConfig", "MaxJoinAmount", int64(1000))
		inv.InvokeFail(t, groupconst.JoinAmountError, "join", int64(1), accHash, int64(2000))
		s.activity.Invoke(t, stackitem.Null{}, "setConfig", "MaxJoinAmount", int64(maxJoinAmount))
	})

	t.Run("single group per activity", func(t *testing.T) {
		s.join(t, 1, acc, 500)

		s.group.WithSigners(owner).Invoke(t, stackitem.Make(2),
			"register", owner.ScriptHash(), s.tokenHash, int64(activityID))
		s.group.WithSigners(owner).Invoke(t, stackitem.Null{}, "activate", int64(2))

		inv.InvokeFail(t, groupconst.AlreadyMemberError, "join", int64(2), accHash, int64(500))
	})

	t.Run("inactive group", func(t *testing.T) {
		s.group.WithSigners(owner).Invoke(t, stackitem.Null{}, "deactivate", int64(2))

		member := s.newAccountWithTokens(t, 500)
		s.group.WithSigners(member).InvokeFail(t, groupconst.NotActiveError,
			"join", int64(2), member.ScriptHash(), int64(500))
	})

	t.Run("member limit", func(t *testing.T) {
		// acc already occupies one of the maxGroupMembers slots of group 1.
		for i := 0; i < maxGroupMembers-1; i++ {
			member := s.newAccountWithTokens(t, minJoinAmount)
			s.join(t, 1, member, minJoinAmount)
		}

		member := s.newAccountWithTokens(t, minJoinAmount)
		s.group.WithSigners(member).InvokeFail(t, groupconst.CapacityError,
			"join", int64(1), member.ScriptHash(), int64(minJoinAmount))
	})
}

func TestGroupIndexConsistency(t *testing.T) {
	s := newSuite(t)

	s.activity.Invoke(t, stackitem.Null{}, "registerActivity", s.tokenHash, int64(2))

	owner := s.group.NewAccount(t)
	ownerInv := s.group.WithSigners(owner)
	ownerInv.Invoke(t, stackitem.Make(1), "register", owner.ScriptHash(), s.tokenHash, int64(activityID))
	ownerInv.Invoke(t, stackitem.Null{}, "activate", int64(1))
	ownerInv.Invoke(t, stackitem.Make(2), "register", owner.ScriptHash(), s.tokenHash, int64(2))
	ownerInv.Invoke(t, stackitem.Null{}, "activate", int64(2))

	acc := s.newAccountWithTokens(t, 1000)
	accHash := acc.ScriptHash()

	s.join(t, 1, acc, 300)
	s.join(t, 2, acc, 300)

	assetItem := stackitem.NewByteArray(s.tokenHash.BytesBE())
	accItem := stackitem.NewByteArray(accHash.BytesBE())

	require.Equal(t, []stackitem.Item{assetItem}, iterItems(t, s.group, "assetsOf", accHash))
	require.Equal(t, []stackitem.Item{accItem}, iterItems(t, s.group, "accountsOfAsset", s.tokenHash))
	require.Len(t, iterItems(t, s.group, "groupsOf", accHash), 2)
	s.group.Invoke(t, stackitem.Make(1), "activityMember", s.tokenHash, int64(activityID), accHash)

	// Both memberships share the asset level index entries, leaving one group
	// must keep them.
	s.group.WithSigners(acc).Invoke(t, stackitem.Null{}, "exit", int64(1), accHash)

	require.Equal(t, []stackitem.Item{assetItem}, iterItems(t, s.group, "assetsOf", accHash))
	require.Equal(t, []stackitem.Item{accItem}, iterItems(t, s.group, "accountsOfAsset", s.tokenHash))
	require.Len(t, iterItems(t, s.group, "groupsOf", accHash), 1)
	s.group.Invoke(t, stackitem.Make(0), "activityMember", s.tokenHash, int64(activityID), accHash)

	// Leaving the last membership under the asset drops them.
	s.group.WithSigners(acc).Invoke(t, stackitem.Null{}, "exit", int64(2), accHash)

	require.Empty(t, iterItems(t, s.group, "assetsOf", accHash))
	require.Empty(t, iterItems(t, s.group, "accountsOfAsset", s.tokenHash))
	require.Empty(t, iterItems(t, s.group, "groupsOf", accHash))
}

func TestGroupOwnerQueries(t *testing.T) {
	s := newSuite(t)

	owner := s.group.NewAccount(t)
	ownerHash := owner.ScriptHash()

	s.group.Invoke(t, stackitem.NewBool(false), "hasActiveGroups", ownerHash)
	s.group.Invoke(t, stackitem.Make(0), "totalStakedByOwner", ownerHash)

	s.activity.Invoke(t, stackitem.Null{}, "registerActivity", s.tokenHash, int64(2))

	ownerInv := s.group.WithSigners(owner)
	ownerInv.Invoke(t, stackitem.Make(1), "register", ownerHash, s.tokenHash, int64(activityID))
	ownerInv.Invoke(t, stackitem.Null{}, "activate", int64(1))
	ownerInv.Invoke(t, stackitem.Make(2), "register", ownerHash, s.tokenHash, int64(2))
	ownerInv.Invoke(t, stackitem.Null{}, "activate", int64(2))

	s.group.Invoke(t, stackitem.NewBool(true), "hasActiveGroups", ownerHash)
	require.Len(t, iterItems(t, s.group, "groupsOfOwner", ownerHash), 2)

	alice := s.newAccountWithTokens(t, 1000)
	bob := s.newAccountWithTokens(t, 1000)
	s.join(t, 1, alice, 600)
	s.join(t, 2, bob, 400)

	s.group.Invoke(t, stackitem.Make(1000), "totalStakedByOwner", ownerHash)
	require.Len(t, iterItems(t, s.group, "membersOf", int64(1)), 1)

	ownerInv.Invoke(t, stackitem.Null{}, "deactivate", int64(1))
	s.group.Invoke(t, stackitem.NewBool(true), "hasActiveGroups", ownerHash)
	ownerInv.Invoke(t, stackitem.Null{}, "deactivate", int64(2))
	s.group.Invoke(t, stackitem.NewBool(false), "hasActiveGroups", ownerHash)

	// Deactivation keeps memberships and stakes in place.
	s.group.Invoke(t, stackitem.Make(1000), "totalStakedByOwner", ownerHash)
}

func TestGroupWideIDs(t *testing.T) {
	s := newSuite(t)

	owner := s.e.CommitteeHash
	for i := int64(1); i <= 257; i++ {
		s.group.Invoke(t, stackitem.Make(i), "register", owner, s.tokenHash, int64(activityID))
	}
	s.group.Invoke(t, stackitem.Null{}, "activate", int64(1))
	s.group.Invoke(t, stackitem.Null{}, "activate", int64(257))

	alice := s.newAccountWithTokens(t, 100)
	bob := s.newAccountWithTokens(t, 200)
	s.join(t, 1, alice, 100)
	s.join(t, 257, bob, 200)

	// Scans over group 1 must not pick up group 257, whose ID encoding
	// starts with the same byte.
	s.group.Invoke(t, stackitem.Make(1), "memberCount", int64(1))
	s.group.Invoke(t, stackitem.Make(100), "totalStaked", int64(1))
	s.group.Invoke(t, stackitem.Make(1), "memberCount", int64(257))
	s.group.Invoke(t, stackitem.Make(200), "totalStaked", int64(257))

	s.group.Invoke(t, stackitem.Make(100), "stakedOf", int64(1), alice.ScriptHash())
	s.group.Invoke(t, stackitem.Make(0), "stakedOf", int64(257), alice.ScriptHash())

	require.Len(t, iterItems(t, s.group, "membersOf", int64(1)), 1)
	require.Len(t, iterItems(t, s.group, "membersOf", int64(257)), 1)
}
