package group

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"

	"github.com/LOVE20TKM/group-contracts/common"
	"github.com/LOVE20TKM/group-contracts/contracts/group/groupconst"
)

// Group groups data of a registered participation group. Groups are created
// under an activity instance and accumulate staked memberships.
type Group struct {
	// Numeric identifier, unique within the contract.
	ID int

	// Account of the group owner.
	Owner interop.Hash160

	// Script hash of the staked asset contract.
	Asset interop.Hash160

	// Numeric activity identifier within the asset.
	ActivityID int

	// Whether the group currently accepts members and scoring.
	Active bool

	// Round of the latest activation, 0 if never activated.
	ActivatedRound int

	// Round of the latest deactivation, 0 if never deactivated.
	DeactivatedRound int
}

const (
	counterKey          = "counter"
	activityContractKey = "activityScriptHash"

	groupPrefix           = 'x'
	ownerGroupPrefix      = 'o'
	memberPrefix          = 'm'
	accountGroupPrefix    = 'g'
	activityMemberPrefix  = 'p'
	accountActivityPrefix = 'q'
	assetAccountPrefix    = 's'
	accountAssetPrefix    = 'c'
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
	})

	if len(args.activityContract) != interop.Hash160Len {
		panic("invalid activity contract hash")
	}

	storage.Put(ctx, activityContractKey, args.activityContract)
	storage.Put(ctx, counterKey, 0)

	runtime.Log("group contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("group contract updated")
}

// Register creates a new group of the given activity instance and returns
// the group ID. It can be invoked only by the future owner. The group is
// created inactive, see Activate.
//
// It produces GroupAdded notification.
func Register(owner interop.Hash160, asset interop.Hash160, activityID int) int {
	ctx := storage.GetContext()

	common.CheckAccountWitness(owner)

	registered := contract.Call(activityContract(ctx), "isRegistered",
		contract.ReadOnly, asset, activityID).(bool)
	if !registered {
		panic("activity is not registered")
	}

	id := storage.Get(ctx, counterKey).(int) + 1
	storage.Put(ctx, counterKey, id)

	common.SetSerialized(ctx, groupKey(id), Group{
		ID:         id,
		Owner:      owner,
		Asset:      asset,
		ActivityID: activityID,
	})

	ownerKey := common.AppendInt(append([]byte{ownerGroupPrefix}, owner...), id)
	storage.Put(ctx, ownerKey, id)

	runtime.Notify("GroupAdded", id, owner)

	return id
}

// Activate opens the group for joining and scoring starting from the current
// round. It can be invoked only by the group owner.
func Activate(id int) {
	ctx := storage.GetContext()

	grp := getGroup(ctx, id)
	common.CheckAccountWitness(grp.Owner)

	if grp.Active {
		panic("group is already active")
	}

	grp.Active = true
	grp.ActivatedRound = currentRound(ctx)
	common.SetSerialized(ctx, groupKey(id), grp)

	runtime.Notify("GroupActivated", id)
}

// Deactivate closes the group for new members starting from the current
// round. Existing memberships and staked amounts stay in place. It can be
// invoked only by the group owner.
func Deactivate(id int) {
	ctx := storage.GetContext()

	grp := getGroup(ctx, id)
	common.CheckAccountWitness(grp.Owner)

	if !grp.Active {
		panic(groupconst.NotActiveError)
	}

	grp.Active = false
	grp.DeactivatedRound = currentRound(ctx)
	common.SetSerialized(ctx, groupKey(id), grp)

	runtime.Notify("GroupDeactivated", id)
}

// Join adds the account to the group with the given staked amount. It can be
// invoked only by the account. The group must be active, the amount must be
// within the configured bounds and the account must not participate in
// another group of the same activity instance. The stake is transferred to
// the group contract account.
//
// It produces JoinSuccess notification.
func Join(id int, account interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckAccountWitness(account)

	grp := getGroup(ctx, id)
	if !grp.Active {
		panic(groupconst.NotActiveError)
	}

	checkJoinAmount(ctx, amount)

	actKey := common.ActivityKey(grp.Asset, grp.ActivityID)

	activityKey := append([]byte{activityMemberPrefix}, actKey...)
	activityKey = append(activityKey, account...)
	if storage.Get(ctx, activityKey) != nil {
		panic(groupconst.AlreadyMemberError)
	}

	maxMembers := configValue(ctx, groupconst.MaxGroupMembersKey)
	if maxMembers > 0 && memberCount(ctx, id) >= maxMembers {
		panic(groupconst.CapacityError)
	}

	transferStake(grp.Asset, account, runtime.GetExecutingScriptHash(), amount)

	memberKey := common.AppendInt([]byte{memberPrefix}, id)
	memberKey = append(memberKey, account...)
	storage.Put(ctx, memberKey, amount)

	accGroupKey := common.AppendInt(append([]byte{accountGroupPrefix}, account...), id)
	storage.Put(ctx, accGroupKey, id)

	storage.Put(ctx, activityKey, id)

	accActivityKey := append([]byte{accountActivityPrefix}, account...)
	accActivityKey = append(accActivityKey, actKey...)
	storage.Put(ctx, accActivityKey, id)

	assetAccKey := append([]byte{assetAccountPrefix}, grp.Asset...)
	assetAccKey = append(assetAccKey, account...)
	storage.Put(ctx, assetAccKey, []byte{})

	accAssetKey := append([]byte{accountAssetPrefix}, account...)
	accAssetKey = append(accAssetKey, grp.Asset...)
	storage.Put(ctx, accAssetKey, []byte{})

	runtime.Notify("JoinSuccess", id, account, amount)
}

// Exit removes the account from the group and returns the staked amount to
// the account. It can be invoked only by the account. Index entries shared
// with remaining memberships of the account stay in place, only the entries
// this membership was the last reference of are removed. If the account is
// not a member of the group, the call does nothing.
//
// It produces ExitSuccess notification.
func Exit(id int, account interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckAccountWitness(account)

	grp := getGroup(ctx, id)

	memberKey := common.AppendInt([]byte{memberPrefix}, id)
	memberKey = append(memberKey, account...)

	data := storage.Get(ctx, memberKey)
	if data == nil {
		runtime.Log("account is not a member of the group")
		return
	}
	amount := data.(int)

	storage.Delete(ctx, memberKey)

	accGroupKey := common.AppendInt(append([]byte{accountGroupPrefix}, account...), id)
	storage.Delete(ctx, accGroupKey)

	actKey := common.ActivityKey(grp.Asset, grp.ActivityID)

	activityKey := append([]byte{activityMemberPrefix}, actKey...)
	activityKey = append(activityKey, account...)
	storage.Delete(ctx, activityKey)

	accActivityKey := append([]byte{accountActivityPrefix}, account...)
	accActivityKey = append(accActivityKey, actKey...)
	storage.Delete(ctx, accActivityKey)

	// The asset level entries are shared by every membership of the account
	// under the asset, drop them only when the last one is gone.
	accAssetPrefixKey := append([]byte{accountActivityPrefix}, account...)
	accAssetPrefixKey = append(accAssetPrefixKey, grp.Asset...)
	it := storage.Find(ctx, accAssetPrefixKey, storage.KeysOnly)
	if !iterator.Next(it) {
		assetAccKey := append([]byte{assetAccountPrefix}, grp.Asset...)
		assetAccKey = append(assetAccKey, account...)
		storage.Delete(ctx, assetAccKey)

		accAssetKey := append([]byte{accountAssetPrefix}, account...)
		accAssetKey = append(accAssetKey, grp.Asset...)
		storage.Delete(ctx, accAssetKey)
	}

	transferStake(grp.Asset, runtime.GetExecutingScriptHash(), account, amount)

	runtime.Notify("ExitSuccess", id, account, amount)
}

// Get returns the group by ID. It panics if the group is missing.
func Get(id int) Group {
	ctx := storage.GetReadOnlyContext()
	return getGroup(ctx, id)
}

// OwnerOf returns the owner account of the group.
func OwnerOf(id int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getGroup(ctx, id).Owner
}

// IsActive reports whether the group currently accepts members and scoring.
func IsActive(id int) bool {
	ctx := storage.GetReadOnlyContext()
	return getGroup(ctx, id).Active
}

// StakedOf returns the amount staked by the account in the group, 0 if the
// account is not a member.
func StakedOf(id int, account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return stakedOf(ctx, id, account)
}

// TotalStaked returns the sum of staked amounts over all members of the
// group.
func TotalStaked(id int) int {
	ctx := storage.GetReadOnlyContext()
	return totalStaked(ctx, id)
}

// TotalStakedByOwner returns the sum of TotalStaked over all groups of the
// owner.
func TotalStakedByOwner(owner interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	total := 0

	it := storage.Find(ctx, append([]byte{ownerGroupPrefix}, owner...), storage.ValuesOnly)
	for iterator.Next(it) {
		total += totalStaked(ctx, iterator.Value(it).(int))
	}

	return total
}

// MemberCount returns the number of members of the group.
func MemberCount(id int) int {
	ctx := storage.GetReadOnlyContext()
	return memberCount(ctx, id)
}

// HasActiveGroups reports whether the owner has at least one active group.
func HasActiveGroups(owner interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()

	it := storage.Find(ctx, append([]byte{ownerGroupPrefix}, owner...), storage.ValuesOnly)
	for iterator.Next(it) {
		if getGroup(ctx, iterator.Value(it).(int)).Active {
			return true
		}
	}

	return false
}

// MembersOf iterates over members of the group. Keys are member accounts,
// values are staked amounts.
func MembersOf(id int) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, common.AppendInt([]byte{memberPrefix}, id), storage.RemovePrefix)
}

// GroupsOf iterates over IDs of groups the account is a member of.
func GroupsOf(account interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{accountGroupPrefix}, account...), storage.ValuesOnly)
}

// GroupsOfOwner iterates over IDs of groups owned by the account.
func GroupsOfOwner(owner interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{ownerGroupPrefix}, owner...), storage.ValuesOnly)
}

// AssetsOf iterates over asset contract hashes the account has memberships
// under.
func AssetsOf(account interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{accountAssetPrefix}, account...),
		storage.KeysOnly|storage.RemovePrefix)
}

// AccountsOfAsset iterates over accounts that have memberships under the
// asset.
func AccountsOfAsset(asset interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{assetAccountPrefix}, asset...),
		storage.KeysOnly|storage.RemovePrefix)
}

// ActivityMember returns the ID of the group the account participates in
// within the activity instance, 0 if none.
func ActivityMember(asset interop.Hash160, activityID int, account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	key := append([]byte{activityMemberPrefix}, common.ActivityKey(asset, activityID)...)
	key = append(key, account...)

	return common.GetInt(ctx, key)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getGroup(ctx storage.Context, id int) Group {
	data := storage.Get(ctx, groupKey(id))
	if data == nil {
		panic(groupconst.NotFoundError)
	}

	return std.Deserialize(data.([]byte)).(Group)
}

func groupKey(id int) []byte {
	return common.AppendInt([]byte{groupPrefix}, id)
}

func stakedOf(ctx storage.Context, id int, account interop.Hash160) int {
	key := common.AppendInt([]byte{memberPrefix}, id)
	key = append(key, account...)

	return common.GetInt(ctx, key)
}

func totalStaked(ctx storage.Context, id int) int {
	total := 0

	it := storage.Find(ctx, common.AppendInt([]byte{memberPrefix}, id), storage.ValuesOnly)
	for iterator.Next(it) {
		total += iterator.Value(it).(int)
	}

	return total
}

func memberCount(ctx storage.Context, id int) int {
	count := 0

	it := storage.Find(ctx, common.AppendInt([]byte{memberPrefix}, id), storage.KeysOnly)
	for iterator.Next(it) {
		count++
	}

	return count
}

func checkJoinAmount(ctx storage.Context, amount int) {
	if amount <= 0 {
		panic(groupconst.JoinAmountError)
	}

	minAmount := configValue(ctx, groupconst.MinJoinAmountKey)
	if minAmount > 0 && amount < minAmount {
		panic(groupconst.JoinAmountError)
	}

	maxAmount := configValue(ctx, groupconst.MaxJoinAmountKey)
	if maxAmount > 0 && amount > maxAmount {
		panic(groupconst.JoinAmountError)
	}
}

func transferStake(asset, from, to interop.Hash160, amount int) {
	ok := contract.Call(asset, "transfer", contract.All, from, to, amount, nil).(bool)
	if !ok {
		panic("stake transfer failed")
	}
}

func configValue(ctx storage.Context, key string) int {
	val := contract.Call(activityContract(ctx), "config", contract.ReadOnly, []byte(key))
	if val == nil {
		return 0
	}

	return val.(int)
}

func currentRound(ctx storage.Context) int {
	return contract.Call(activityContract(ctx), "currentRound", contract.ReadOnly).(int)
}

func activityContract(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, activityContractKey).(interop.Hash160)
}
