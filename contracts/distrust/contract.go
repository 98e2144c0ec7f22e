package distrust

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"

	"github.com/LOVE20TKM/group-contracts/common"
	"github.com/LOVE20TKM/group-contracts/contracts/distrust/distrustconst"
)

// Vote keeps the cumulative distrust weight a voter put on a target owner
// within one round together with the most recent reason.
type Vote struct {
	// Cumulative weight, strictly additive within a round.
	Weight int

	// Reason of the latest vote, previous reasons are not kept.
	Reason string
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
	verifyContractKey   = "verifyScriptHash"

	castPrefix      = 'u'
	votePrefix      = 'w'
	aggregatePrefix = 'z'
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
		verifyContract   interop.Hash160
	})

	if len(args.activityContract) != interop.Hash160Len ||
		len(args.groupContract) != interop.Hash160Len ||
		len(args.verifyContract) != interop.Hash160Len {
		panic("invalid contract hash")
	}

	storage.Put(ctx, activityContractKey, args.activityContract)
	storage.Put(ctx, groupContractKey, args.groupContract)
	storage.Put(ctx, verifyContractKey, args.verifyContract)

	runtime.Log("distrust contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("distrust contract updated")
}

// CastVote adds distrust weight from the voter to the target group owner
// for the current round of the activity instance. It can be invoked only by
// the voter. Weight accumulates within the round and never decreases; the
// cumulative weight a voter casts is capped by its verify votes sourced
// from the governance results. The reason of the latest call replaces the
// previous one. The target must own at least one active group.
//
// It produces DistrustVoteSuccess notification.
func CastVote(asset interop.Hash160, activityID int, voter, target interop.Hash160, amount int, reason string) {
	ctx := storage.GetContext()

	common.CheckAccountWitness(voter)

	if amount <= 0 {
		panic(distrustconst.ZeroAmountError)
	}
	if len(reason) == 0 {
		panic(distrustconst.InvalidReasonError)
	}

	groupContract := storage.Get(ctx, groupContractKey).(interop.Hash160)
	hasActive := contract.Call(groupContract, "hasActiveGroups", contract.ReadOnly, target).(bool)
	if !hasActive {
		panic(distrustconst.NoActiveGroupsError)
	}

	activityContract := storage.Get(ctx, activityContractKey).(interop.Hash160)
	round := contract.Call(activityContract, "currentRound", contract.ReadOnly).(int)

	quota := contract.Call(activityContract, "verifyVotes", contract.ReadOnly,
		asset, activityID, round, voter).(int)
	if quota == 0 {
		panic(distrustconst.VerifyVotesZeroError)
	}

	actKey := common.ActivityKey(asset, activityID)

	castKey := roundKey(castPrefix, actKey, round)
	castKey = append(castKey, voter...)
	cast := common.GetInt(ctx, castKey)

	if cast+amount > quota {
		panic(distrustconst.ExceedsQuotaError)
	}

	storage.Put(ctx, castKey, cast+amount)

	voteKey := roundKey(votePrefix, actKey, round)
	voteKey = append(voteKey, voter...)
	voteKey = append(voteKey, target...)

	vote := Vote{Reason: reason}
	data := storage.Get(ctx, voteKey)
	if data != nil {
		vote.Weight = std.Deserialize(data.([]byte)).(Vote).Weight
	}
	vote.Weight += amount
	common.SetSerialized(ctx, voteKey, vote)

	aggKey := roundKey(aggregatePrefix, actKey, round)
	aggKey = append(aggKey, target...)
	storage.Put(ctx, aggKey, common.GetInt(ctx, aggKey)+amount)

	runtime.Notify("DistrustVoteSuccess", voter, target, round, amount)
}

// VoteOf returns the cumulative vote of the voter against the target for
// the given round. The weight is 0 if the voter never voted against the
// target in it.
func VoteOf(asset interop.Hash160, activityID int, round int, voter, target interop.Hash160) Vote {
	ctx := storage.GetReadOnlyContext()

	key := roundKey(votePrefix, common.ActivityKey(asset, activityID), round)
	key = append(key, voter...)
	key = append(key, target...)

	data := storage.Get(ctx, key)
	if data == nil {
		return Vote{}
	}

	return std.Deserialize(data.([]byte)).(Vote)
}

// CastBy returns the total distrust weight the voter cast in the given
// round.
func CastBy(asset interop.Hash160, activityID int, round int, voter interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	key := roundKey(castPrefix, common.ActivityKey(asset, activityID), round)
	key = append(key, voter...)

	return common.GetInt(ctx, key)
}

// AggregateAgainst returns the total distrust weight cast against the
// target owner in the given round.
func AggregateAgainst(asset interop.Hash160, activityID int, round int, target interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	return common.GetInt(ctx, aggregateKey(common.ActivityKey(asset, activityID), round, target))
}

// Rate returns the distrust penalty of the group for the given round in
// PRECISION units. It is 0 if the group was not verified in the round or
// the activity has no governance votes in it.
func Rate(id int, round int) int {
	ctx := storage.GetReadOnlyContext()

	grp, verified := groupState(ctx, id, round)
	if !verified {
		return 0
	}

	total := totalVotes(ctx, grp, round)
	if total == 0 {
		return 0
	}

	agg := common.GetInt(ctx, aggregateKey(common.ActivityKey(grp.Asset, grp.ActivityID), round, grp.Owner))

	return agg * common.PRECISION / total
}

// Reduction returns the pass-through reward multiplier of the group for the
// given round in PRECISION units. Unlike Rate it resolves the no-information
// edges to PRECISION: an unverified group or a round without governance
// votes is not reduced.
func Reduction(id int, round int) int {
	ctx := storage.GetReadOnlyContext()

	grp, verified := groupState(ctx, id, round)
	if !verified {
		return common.PRECISION
	}

	total := totalVotes(ctx, grp, round)
	if total == 0 {
		return common.PRECISION
	}

	agg := common.GetInt(ctx, aggregateKey(common.ActivityKey(grp.Asset, grp.ActivityID), round, grp.Owner))

	return (total - agg) * common.PRECISION / total
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func groupState(ctx storage.Context, id int, round int) (groupInfo, bool) {
	groupContract := storage.Get(ctx, groupContractKey).(interop.Hash160)
	grp := contract.Call(groupContract, "get", contract.ReadOnly, id).(groupInfo)

	verifyContract := storage.Get(ctx, verifyContractKey).(interop.Hash160)
	verified := contract.Call(verifyContract, "isVerified", contract.ReadOnly, id, round).(bool)

	return grp, verified
}

func totalVotes(ctx storage.Context, grp groupInfo, round int) int {
	activityContract := storage.Get(ctx, activityContractKey).(interop.Hash160)
	return contract.Call(activityContract, "totalVerifyVotes", contract.ReadOnly,
		grp.Asset, grp.ActivityID, round).(int)
}

func roundKey(prefix byte, actKey []byte, round int) []byte {
	return common.AppendInt(append([]byte{prefix}, actKey...), round)
}

func aggregateKey(actKey []byte, round int, target interop.Hash160) []byte {
	key := roundKey(aggregatePrefix, actKey, round)
	return append(key, target...)
}
