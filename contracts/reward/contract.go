package reward

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"

	"github.com/LOVE20TKM/group-contracts/common"
	"github.com/LOVE20TKM/group-contracts/contracts/reward/rewardconst"
)

type (
	// RosterEntry keeps the reward service membership rounds of an
	// account. Rounds are stored offset by one so that round 0 stays
	// representable, 0 means the event never happened: JoinedRound 0 is a
	// never enrolled account, ExitedRound 0 an account that stays
	// enrolled.
	RosterEntry struct {
		JoinedRound int
		ExitedRound int
	}

	// Recipient is a single entry of a reward split, the share is given in
	// PRECISION units.
	Recipient struct {
		Account interop.Hash160
		Share   int
	}

	// SplitRecord is a reward split set by a group owner in some round. A
	// record stays in effect for later rounds until replaced.
	SplitRecord struct {
		Round      int
		Recipients []Recipient
	}

	// RewardRecord keeps the claim state of an account for a round. The
	// claimed flag is explicit so repeated claims are rejected without
	// relying on absence of the record.
	RewardRecord struct {
		Amount  int
		Claimed bool
	}

	// BurnRecord keeps the burn state of an activity round. The burned
	// flag is explicit so a repeated burn is a no-op even when the burned
	// amount was 0.
	BurnRecord struct {
		Amount int
		Burned bool
	}

	// RecipientAmount is a reward part of a single split recipient.
	RecipientAmount struct {
		Account interop.Hash160
		Amount  int
	}

	// Distribution describes how the reward of one group in one round
	// divides between the owner residual and the split recipients.
	Distribution struct {
		Owner       interop.Hash160
		OwnerAmount int
		Recipients  []RecipientAmount
	}
)

// groupInfo is a (sufficient) part of github.com/LOVE20TKM/group-contracts/contracts/group.Group
// to prevent cross-contract imports that may fail due to internal `_deploy` calls.
type groupInfo struct {
	ID         int
	Owner      interop.Hash160
	Asset      interop.Hash160
	ActivityID int
	Active     bool
}

// verifiedGroup is a copy of github.com/LOVE20TKM/group-contracts/contracts/verify.VerifiedGroup
// to prevent cross-contract imports that may fail due to internal `_deploy` calls.
type verifiedGroup struct {
	ID     int
	Amount int
}

// instance is a copy of github.com/LOVE20TKM/group-contracts/contracts/activity.Instance
// to prevent cross-contract imports that may fail due to internal `_deploy` calls.
type instance struct {
	Asset      interop.Hash160
	ActivityID int
}

const (
	activityContractKey = "activityScriptHash"
	groupContractKey    = "groupScriptHash"
	verifyContractKey   = "verifyScriptHash"
	distrustContractKey = "distrustScriptHash"
	tokenContractKey    = "tokenScriptHash"

	rosterPrefix = 'j'
	splitPrefix  = 'h'
	poolPrefix   = 'p'
	rewardPrefix = 'r'
	burnPrefix   = 'b'
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
		distrustContract interop.Hash160
		tokenContract    interop.Hash160
	})

	if len(args.activityContract) != interop.Hash160Len ||
		len(args.groupContract) != interop.Hash160Len ||
		len(args.verifyContract) != interop.Hash160Len ||
		len(args.distrustContract) != interop.Hash160Len ||
		len(args.tokenContract) != interop.Hash160Len {
		panic("invalid contract hash")
	}

	storage.Put(ctx, activityContractKey, args.activityContract)
	storage.Put(ctx, groupContractKey, args.groupContract)
	storage.Put(ctx, verifyContractKey, args.verifyContract)
	storage.Put(ctx, distrustContractKey, args.distrustContract)
	storage.Put(ctx, tokenContractKey, args.tokenContract)

	runtime.Log("reward contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("reward contract updated")
}

// Enroll adds the account to the reward service roster starting from the
// current round. It can be invoked only by the account. Enrolling while
// already on the roster does nothing, enrolling after Resign starts a new
// membership from the current round.
func Enroll(account interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckAccountWitness(account)

	key := append([]byte{rosterPrefix}, account...)
	entry := getRosterEntry(ctx, account)

	if entry.JoinedRound > 0 && entry.ExitedRound == 0 {
		runtime.Log("account is already on the roster")
		return
	}

	common.SetSerialized(ctx, key, RosterEntry{
		JoinedRound: currentRound(ctx) + 1,
	})

	runtime.Notify("RosterJoin", account)
}

// Resign removes the account from the reward service roster starting from
// the current round. It can be invoked only by the account. Resigning while
// not enrolled does nothing.
func Resign(account interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckAccountWitness(account)

	entry := getRosterEntry(ctx, account)
	if entry.JoinedRound == 0 || entry.ExitedRound > 0 {
		runtime.Log("account is not on the roster")
		return
	}

	entry.ExitedRound = currentRound(ctx) + 1
	common.SetSerialized(ctx, append([]byte{rosterPrefix}, account...), entry)

	runtime.Notify("RosterExit", account)
}

// IsOnRoster reports whether the account was a reward service member in the
// given round: enrolled at or before it and not resigned at or before it.
func IsOnRoster(account interop.Hash160, round int) bool {
	ctx := storage.GetReadOnlyContext()
	return isOnRoster(ctx, account, round)
}

// SetRecipients replaces the reward split of the group for the current
// round. It can be invoked only by the group owner. Every listed account
// receives the given share of the group reward in PRECISION units, the
// owner keeps the remainder. Repeated calls within one round replace each
// other, splits of passed rounds stay queryable.
//
// It produces RecipientsSet notification.
func SetRecipients(id int, recipients []interop.Hash160, shares []int) {
	ctx := storage.GetContext()

	grp := getGroupInfo(ctx, id)
	if !runtime.CheckWitness(grp.Owner) {
		panic(rewardconst.NotGroupOwnerError)
	}

	if len(recipients) != len(shares) {
		panic(rewardconst.LengthMismatchError)
	}

	maxRecipients := configValue(ctx, rewardconst.MaxRecipientsKey)
	if maxRecipients > 0 && len(recipients) > maxRecipients {
		panic(rewardconst.TooManyRecipientsError)
	}

	total := 0
	list := []Recipient{}

	for i := range recipients {
		acc := recipients[i]
		if isZeroAddress(acc) {
			panic(rewardconst.ZeroAddressError)
		}
		if acc.Equals(grp.Owner) {
			panic(rewardconst.SelfRecipientError)
		}
		if shares[i] <= 0 {
			panic(rewardconst.ZeroShareError)
		}

		for j := 0; j < i; j++ {
			if acc.Equals(recipients[j]) {
				panic(rewardconst.DuplicateRecipientError)
			}
		}

		total += shares[i]
		list = append(list, Recipient{Account: acc, Share: shares[i]})
	}

	if total > common.PRECISION {
		panic(rewardconst.InvalidShareError)
	}

	round := currentRound(ctx)

	key := common.AppendInt(common.AppendInt([]byte{splitPrefix}, id), round)
	common.SetSerialized(ctx, key, SplitRecord{
		Round:      round,
		Recipients: list,
	})

	runtime.Notify("RecipientsSet", id, round)
}

// Recipients returns the reward split of the group in effect at the given
// round, the most recently set split at or before it. The list is empty if
// no split was ever set by then.
func Recipients(id int, round int) []Recipient {
	ctx := storage.GetReadOnlyContext()
	return recipientsAt(ctx, id, round)
}

// RecipientsLatest returns the reward split of the group in effect at the
// current round.
func RecipientsLatest(id int) []Recipient {
	ctx := storage.GetReadOnlyContext()
	return recipientsAt(ctx, id, currentRound(ctx))
}

// MintServiceReward mints the service reward pool of the activity instance
// for the current round on the reward contract account. It can be invoked
// only by the committee. Repeated calls accrue.
//
// It produces ServiceRewardMinted notification.
func MintServiceReward(asset interop.Hash160, activityID int, amount int) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	if amount <= 0 {
		panic("invalid reward amount")
	}

	round := currentRound(ctx)

	tokenContract := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	contract.Call(tokenContract, "mint", contract.All,
		runtime.GetExecutingScriptHash(), amount, []byte(nil))

	key := poolKey(common.ActivityKey(asset, activityID), round)
	storage.Put(ctx, key, common.GetInt(ctx, key)+amount)

	runtime.Notify("ServiceRewardMinted", asset, activityID, round, amount)
}

// TotalServiceReward returns the service reward pool of the activity
// instance for the given round, 0 if nothing was minted.
func TotalServiceReward(asset interop.Hash160, activityID int, round int) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, poolKey(common.ActivityKey(asset, activityID), round))
}

// GeneratedByVerifier returns the reward generation basis of the owner in
// the activity round, the verified amounts of its groups scaled by their
// distrust reductions.
func GeneratedByVerifier(asset interop.Hash160, activityID int, round int, owner interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	total := 0
	for _, vg := range listVerified(ctx, asset, activityID, round) {
		if getGroupInfo(ctx, vg.ID).Owner.Equals(owner) {
			total += generatedByGroup(ctx, vg, round)
		}
	}

	return total
}

// TotalGeneratedReward returns the reward generation basis of the whole
// activity round, the sum of GeneratedByVerifier over all owners.
func TotalGeneratedReward(asset interop.Hash160, activityID int, round int) int {
	ctx := storage.GetReadOnlyContext()
	return totalGenerated(ctx, asset, activityID, round)
}

// RewardOf returns the reward of the owner in the activity round. It is 0
// when the owner was not on the reward service roster in the round, when
// nothing was generated or when no pool was minted.
func RewardOf(asset interop.Hash160, activityID int, round int, owner interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return rewardOf(ctx, asset, activityID, round, owner)
}

// RewardDistribution returns the reward split of one group in the given
// round: the group owner, the owner residual and the recipient amounts.
// Truncation remainders of the share arithmetic stay with the owner.
func RewardDistribution(id int, round int) Distribution {
	ctx := storage.GetReadOnlyContext()

	grp := getGroupInfo(ctx, id)
	return distribution(ctx, grp, round)
}

// RewardByRecipient returns the reward part of the account as a split
// recipient of the group in the given round.
func RewardByRecipient(id int, round int, account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	grp := getGroupInfo(ctx, id)
	d := distribution(ctx, grp, round)

	for _, ra := range d.Recipients {
		if ra.Account.Equals(account) {
			return ra.Amount
		}
	}

	return 0
}

// RewardByAccount returns the total reward of the account in the given
// round over all registered activities, owner residuals of its groups plus
// its recipient parts in splits of other groups. Eligibility misses resolve
// to 0, the query never fails.
func RewardByAccount(round int, account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return rewardByAccount(ctx, round, account)
}

// ClaimReward pays out the round reward of the account from the reward
// contract balance and records the claim. It can be invoked only by the
// account and only after the round has finished. A repeated claim fails.
//
// It produces ClaimSuccess notification.
func ClaimReward(round int, account interop.Hash160) int {
	ctx := storage.GetContext()

	common.CheckAccountWitness(account)

	if round >= currentRound(ctx) {
		panic(rewardconst.RoundNotFinishedError)
	}

	key := common.AppendInt([]byte{rewardPrefix}, round)
	key = append(key, account...)

	data := storage.Get(ctx, key)
	if data != nil && std.Deserialize(data.([]byte)).(RewardRecord).Claimed {
		panic(rewardconst.AlreadyClaimedError)
	}

	amount := rewardByAccount(ctx, round, account)

	common.SetSerialized(ctx, key, RewardRecord{
		Amount:  amount,
		Claimed: true,
	})

	if amount > 0 {
		tokenContract := storage.Get(ctx, tokenContractKey).(interop.Hash160)
		ok := contract.Call(tokenContract, "transfer", contract.All,
			runtime.GetExecutingScriptHash(), account, amount, nil).(bool)
		if !ok {
			panic("reward transfer failed")
		}
	}

	runtime.Notify("ClaimSuccess", account, round, amount)

	return amount
}

// RewardRecordOf returns the claim record of the account for the round. The
// amount of an unclaimed record is computed on the fly.
func RewardRecordOf(round int, account interop.Hash160) RewardRecord {
	ctx := storage.GetReadOnlyContext()

	key := common.AppendInt([]byte{rewardPrefix}, round)
	key = append(key, account...)

	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).(RewardRecord)
	}

	return RewardRecord{Amount: rewardByAccount(ctx, round, account)}
}

// BurnInfo returns the burn record of the activity round.
func BurnInfo(asset interop.Hash160, activityID int, round int) BurnRecord {
	ctx := storage.GetReadOnlyContext()
	return getBurnRecord(ctx, common.ActivityKey(asset, activityID), round)
}

// BurnRewardIfNeeded destroys the part of the round pool that was not
// distributed as owner rewards: shares of roster-ineligible owners and
// truncation dust. It can be invoked only by the committee and only after
// the round has finished. A repeated call for the same round is a no-op.
//
// It produces BurnSuccess notification.
func BurnRewardIfNeeded(asset interop.Hash160, activityID int, round int) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	if round >= currentRound(ctx) {
		panic(rewardconst.RoundNotFinishedError)
	}

	actKey := common.ActivityKey(asset, activityID)

	record := getBurnRecord(ctx, actKey, round)
	if record.Burned {
		runtime.Log("round reward is already burned")
		return
	}

	pool := common.GetInt(ctx, poolKey(actKey, round))

	distributed := 0
	owners := []interop.Hash160{}
	for _, vg := range listVerified(ctx, asset, activityID, round) {
		owner := getGroupInfo(ctx, vg.ID).Owner

		seen := false
		for i := range owners {
			if owners[i].Equals(owner) {
				seen = true
				break
			}
		}
		if seen {
			continue
		}

		owners = append(owners, owner)
		distributed += rewardOf(ctx, asset, activityID, round, owner)
	}

	amount := pool - distributed
	if amount > 0 {
		tokenContract := storage.Get(ctx, tokenContractKey).(interop.Hash160)
		contract.Call(tokenContract, "burn", contract.All,
			runtime.GetExecutingScriptHash(), amount, []byte(nil))
	}

	common.SetSerialized(ctx, burnKey(actKey, round), BurnRecord{
		Amount: amount,
		Burned: true,
	})

	runtime.Notify("BurnSuccess", asset, activityID, round, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func rewardByAccount(ctx storage.Context, round int, account interop.Hash160) int {
	activityContract := storage.Get(ctx, activityContractKey).(interop.Hash160)
	activities := contract.Call(activityContract, "listActivities", contract.ReadOnly).([]instance)

	total := 0

	for _, act := range activities {
		for _, vg := range listVerified(ctx, act.Asset, act.ActivityID, round) {
			grp := getGroupInfo(ctx, vg.ID)
			d := distribution(ctx, grp, round)

			if grp.Owner.Equals(account) {
				total += d.OwnerAmount
			}
			for _, ra := range d.Recipients {
				if ra.Account.Equals(account) {
					total += ra.Amount
				}
			}
		}
	}

	return total
}

// distribution splits the reward of one group in the round between the
// owner and the split recipients. The owner residual absorbs truncation,
// the parts sum up to the group reward exactly.
func distribution(ctx storage.Context, grp groupInfo, round int) Distribution {
	reward := groupReward(ctx, grp, round)

	d := Distribution{
		Owner:      grp.Owner,
		Recipients: []RecipientAmount{},
	}

	recipientsTotal := 0
	for _, r := range recipientsAt(ctx, grp.ID, round) {
		amount := reward * r.Share / common.PRECISION
		recipientsTotal += amount
		d.Recipients = append(d.Recipients, RecipientAmount{
			Account: r.Account,
			Amount:  amount,
		})
	}

	d.OwnerAmount = reward - recipientsTotal

	return d
}

// groupReward computes the reward of one group in the round, the share of
// the round pool proportional to the group's reduced verified amount. The
// owner roster eligibility applies here, an ineligible owner's group earns
// nothing.
func groupReward(ctx storage.Context, grp groupInfo, round int) int {
	if !isOnRoster(ctx, grp.Owner, round) {
		return 0
	}

	actKey := common.ActivityKey(grp.Asset, grp.ActivityID)

	pool := common.GetInt(ctx, poolKey(actKey, round))
	if pool == 0 {
		return 0
	}

	totalGen := totalGenerated(ctx, grp.Asset, grp.ActivityID, round)
	if totalGen == 0 {
		return 0
	}

	verifyContract := storage.Get(ctx, verifyContractKey).(interop.Hash160)
	amount := contract.Call(verifyContract, "verifiedAmount", contract.ReadOnly, grp.ID, round).(int)

	return pool * generated(ctx, grp.ID, amount, round) / totalGen
}

func rewardOf(ctx storage.Context, asset interop.Hash160, activityID int, round int, owner interop.Hash160) int {
	if !isOnRoster(ctx, owner, round) {
		return 0
	}

	pool := common.GetInt(ctx, poolKey(common.ActivityKey(asset, activityID), round))
	if pool == 0 {
		return 0
	}

	totalGen := totalGenerated(ctx, asset, activityID, round)
	if totalGen == 0 {
		return 0
	}

	gen := 0
	for _, vg := range listVerified(ctx, asset, activityID, round) {
		if getGroupInfo(ctx, vg.ID).Owner.Equals(owner) {
			gen += generatedByGroup(ctx, vg, round)
		}
	}

	return pool * gen / totalGen
}

func totalGenerated(ctx storage.Context, asset interop.Hash160, activityID int, round int) int {
	total := 0
	for _, vg := range listVerified(ctx, asset, activityID, round) {
		total += generatedByGroup(ctx, vg, round)
	}

	return total
}

func generatedByGroup(ctx storage.Context, vg verifiedGroup, round int) int {
	return generated(ctx, vg.ID, vg.Amount, round)
}

func generated(ctx storage.Context, id int, verifiedAmount int, round int) int {
	distrustContract := storage.Get(ctx, distrustContractKey).(interop.Hash160)
	reduction := contract.Call(distrustContract, "reduction", contract.ReadOnly, id, round).(int)

	return verifiedAmount * reduction / common.PRECISION
}

func recipientsAt(ctx storage.Context, id int, round int) []Recipient {
	best := SplitRecord{Round: -1}

	it := storage.Find(ctx, common.AppendInt([]byte{splitPrefix}, id),
		storage.ValuesOnly|storage.DeserializeValues)
	for iterator.Next(it) {
		rec := iterator.Value(it).(SplitRecord)
		if rec.Round <= round && rec.Round > best.Round {
			best = rec
		}
	}

	if best.Round < 0 {
		return []Recipient{}
	}

	return best.Recipients
}

func isOnRoster(ctx storage.Context, account interop.Hash160, round int) bool {
	entry := getRosterEntry(ctx, account)
	if entry.JoinedRound == 0 || entry.JoinedRound-1 > round {
		return false
	}

	return entry.ExitedRound == 0 || entry.ExitedRound-1 > round
}

func getRosterEntry(ctx storage.Context, account interop.Hash160) RosterEntry {
	data := storage.Get(ctx, append([]byte{rosterPrefix}, account...))
	if data == nil {
		return RosterEntry{}
	}

	return std.Deserialize(data.([]byte)).(RosterEntry)
}

func getBurnRecord(ctx storage.Context, actKey []byte, round int) BurnRecord {
	data := storage.Get(ctx, burnKey(actKey, round))
	if data == nil {
		return BurnRecord{}
	}

	return std.Deserialize(data.([]byte)).(BurnRecord)
}

func listVerified(ctx storage.Context, asset interop.Hash160, activityID int, round int) []verifiedGroup {
	verifyContract := storage.Get(ctx, verifyContractKey).(interop.Hash160)
	return contract.Call(verifyContract, "listVerified", contract.ReadOnly,
		asset, activityID, round).([]verifiedGroup)
}

func getGroupInfo(ctx storage.Context, id int) groupInfo {
	groupContract := storage.Get(ctx, groupContractKey).(interop.Hash160)
	return contract.Call(groupContract, "get", contract.ReadOnly, id).(groupInfo)
}

func configValue(ctx storage.Context, key string) int {
	activityContract := storage.Get(ctx, activityContractKey).(interop.Hash160)

	val := contract.Call(activityContract, "config", contract.ReadOnly, []byte(key))
	if val == nil {
		return 0
	}

	return val.(int)
}

func currentRound(ctx storage.Context) int {
	activityContract := storage.Get(ctx, activityContractKey).(interop.Hash160)
	return contract.Call(activityContract, "currentRound", contract.ReadOnly).(int)
}

func poolKey(actKey []byte, round int) []byte {
	return common.AppendInt(append([]byte{poolPrefix}, actKey...), round)
}

func burnKey(actKey []byte, round int) []byte {
	return common.AppendInt(append([]byte{burnPrefix}, actKey...), round)
}

func isZeroAddress(acc interop.Hash160) bool {
	if len(acc) != interop.Hash160Len {
		return true
	}

	for i := range acc {
		if acc[i] != 0 {
			return false
		}
	}

	return true
}
