package verify

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"

	"github.com/LOVE20TKM/group-contracts/common"
	"github.com/LOVE20TKM/group-contracts/contracts/verify/verifyconst"
)

// VerifiedGroup is an entry of the per-round verified group index of an
// activity instance.
type VerifiedGroup struct {
	// Group ID.
	ID int

	// Verified amount, the stake of the scored members weighted by their
	// scores.
	Amount int
}

// groupInfo is a (sufficient) part of github.com/LOVE20TKM/group-contracts/contracts/group.Group
// to prevent cross-contract imports that may fail due to internal `_deploy` calls.
type groupInfo struct {
	ID         int
	Owner      interop.Hash160
	Asset      interop.Hash160
	ActivityID int
	Active     bool
}

const (
	activityContractKey = "activityScriptHash"
	groupContractKey    = "groupScriptHash"

	delegatePrefix = 'd'
	scorePrefix    = 's'
	amountPrefix   = 'g'
	verifiedPrefix = 'v'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	var args = data.(struct {
		activityContract interop.Hash160
		groupContract    interop.Hash160
	})

	if len(args.activityContract) != interop.Hash160Len || len(args.groupContract) != interop.Hash160Len {
		panic("invalid contract hash")
	}

	storage.Put(ctx, activityContractKey, args.activityContract)
	storage.Put(ctx, groupContractKey, args.groupContract)

	runtime.Log("verify contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("verify contract updated")
}

// SetDelegate replaces the scoring delegate of the group. It can be invoked
// only by the group owner. The previous delegate, if any, loses its scoring
// rights with the same call. Passing an empty delegate revokes delegation
// without naming a successor. The owner retains scoring rights regardless of
// delegate state.
//
// It produces DelegateSet notification.
func SetDelegate(id int, delegate interop.Hash160) {
	ctx := storage.GetContext()

	grp := getGroupInfo(ctx, id)
	if !runtime.CheckWitness(grp.Owner) {
		panic(verifyconst.OnlyGroupOwnerError)
	}

	key := common.AppendInt([]byte{delegatePrefix}, id)

	if len(delegate) == 0 {
		storage.Delete(ctx, key)
	} else {
		if len(delegate) != interop.Hash160Len {
			panic("invalid delegate")
		}
		storage.Put(ctx, key, delegate)
	}

	runtime.Notify("DelegateSet", id, delegate)
}

// Delegate returns the current scoring delegate of the group, nil if the
// group has none.
func Delegate(id int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return delegateOf(ctx, id)
}

// SubmitScores records the scores of the listed group members for the
// current round and marks the group verified in it. It can be invoked only
// by the group owner or its current delegate. Repeated calls within one
// round fully replace the previous score set. Scores of passed rounds are
// frozen.
//
// The verified amount of the group is derived here: the staked amount of
// every scored member weighted by its score in PRECISION units.
//
// It produces VerifySuccess notification.
func SubmitScores(id int, members []interop.Hash160, scores []int) {
	ctx := storage.GetContext()

	grp := getGroupInfo(ctx, id)

	if !runtime.CheckWitness(grp.Owner) {
		delegate := delegateOf(ctx, id)
		if len(delegate) != interop.Hash160Len || !runtime.CheckWitness(delegate) {
			panic(verifyconst.NotVerifierError)
		}
	}

	if len(members) != len(scores) {
		panic(verifyconst.LengthMismatchError)
	}

	for i := range scores {
		if scores[i] < 0 {
			panic(verifyconst.NegativeScoreError)
		}
	}

	round := currentRound(ctx)
	groupContract := storage.Get(ctx, groupContractKey).(interop.Hash160)

	// Full overwrite, not merge: drop scores of a previous submission in
	// the same round first.
	scoreRoundKey := common.AppendInt(common.AppendInt([]byte{scorePrefix}, id), round)
	it := storage.Find(ctx, scoreRoundKey, storage.KeysOnly)
	for iterator.Next(it) {
		storage.Delete(ctx, iterator.Value(it).([]byte))
	}

	amount := 0
	for i := range members {
		member := members[i]
		if len(member) != interop.Hash160Len {
			panic("invalid member")
		}

		storage.Put(ctx, append(scoreRoundKey, member...), scores[i])

		staked := contract.Call(groupContract, "stakedOf", contract.ReadOnly, id, member).(int)
		amount += staked * scores[i] / common.PRECISION
	}

	amountKey := common.AppendInt(common.AppendInt([]byte{amountPrefix}, id), round)
	storage.Put(ctx, amountKey, amount)

	actKey := common.ActivityKey(grp.Asset, grp.ActivityID)
	verifiedKey := common.AppendInt(append([]byte{verifiedPrefix}, actKey...), round)
	verifiedKey = common.AppendInt(verifiedKey, id)
	common.SetSerialized(ctx, verifiedKey, VerifiedGroup{
		ID:     id,
		Amount: amount,
	})

	runtime.Notify("VerifySuccess", id, round, amount)
}

// Score returns the score of the member in the group for the given round, 0
// if the member was not scored.
func Score(id int, round int, member interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	key := common.AppendInt(common.AppendInt([]byte{scorePrefix}, id), round)
	key = append(key, member...)

	return common.GetInt(ctx, key)
}

// IsVerified reports whether the group received a score submission in the
// given round.
func IsVerified(id int, round int) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, common.AppendInt(common.AppendInt([]byte{amountPrefix}, id), round)) != nil
}

// VerifiedAmount returns the verified amount of the group for the given
// round, 0 if the group was not verified in it.
func VerifiedAmount(id int, round int) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, common.AppendInt(common.AppendInt([]byte{amountPrefix}, id), round))
}

// ListVerified returns the verified groups of the activity instance for the
// given round.
func ListVerified(asset interop.Hash160, activityID int, round int) []VerifiedGroup {
	ctx := storage.GetReadOnlyContext()

	result := []VerifiedGroup{}

	key := common.AppendInt(append([]byte{verifiedPrefix}, common.ActivityKey(asset, activityID)...), round)
	it := storage.Find(ctx, key, storage.ValuesOnly|storage.DeserializeValues)
	for iterator.Next(it) {
		result = append(result, iterator.Value(it).(VerifiedGroup))
	}

	return result
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func delegateOf(ctx storage.Context, id int) interop.Hash160 {
	data := storage.Get(ctx, common.AppendInt([]byte{delegatePrefix}, id))
	if data == nil {
		return nil
	}

	return data.(interop.Hash160)
}

func getGroupInfo(ctx storage.Context, id int) groupInfo {
	groupContract := storage.Get(ctx, groupContractKey).(interop.Hash160)
	return contract.Call(groupContract, "get", contract.ReadOnly, id).(groupInfo)
}

func currentRound(ctx storage.Context) int {
	activityContract := storage.Get(ctx, activityContractKey).(interop.Hash160)
	return contract.Call(activityContract, "currentRound", contract.ReadOnly).(int)
}
