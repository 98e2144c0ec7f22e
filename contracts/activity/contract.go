package activity

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"

	"github.com/LOVE20TKM/group-contracts/common"
)

// Instance describes a registered activity. Groups are created under an
// activity instance and all round-scoped records are partitioned by it.
type Instance struct {
	// Script hash of the staked asset contract.
	Asset interop.Hash160

	// Numeric activity identifier, unique within the asset.
	ActivityID int
}

const (
	roundKey = "round"

	instancePrefix    = 'a'
	verifyVotesPrefix = 'q'
	totalVotesPrefix  = 't'
)

var configPrefix = []byte("config")

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	var args = data.(struct {
		config [][]byte
	})

	ln := len(args.config)
	if ln%2 != 0 {
		panic("bad configuration")
	}

	for i := 0; i < ln/2; i++ {
		key := args.config[i*2]
		val := args.config[i*2+1]

		setConfig(ctx, key, val)
	}

	storage.Put(ctx, roundKey, 0)

	runtime.Log("activity contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("activity contract updated")
}

// NewRound advances the round counter up to the provided roundNum argument.
// It can be invoked only by the committee. If the provided round number is not
// greater than the current one, the method throws panic. Records of all
// passed rounds become read-only.
//
// It produces NewRound notification.
func NewRound(roundNum int) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	currentRound := storage.Get(ctx, roundKey).(int)
	if roundNum <= currentRound {
		panic("invalid round")
	}

	storage.Put(ctx, roundKey, roundNum)

	runtime.Log("process new round")
	runtime.Notify("NewRound", roundNum)
}

// CurrentRound returns the current round number.
func CurrentRound() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, roundKey).(int)
}

// RegisterActivity adds an activity instance to the registry. It can be
// invoked only by the committee. Registering the same instance twice throws
// panic.
func RegisterActivity(asset interop.Hash160, activityID int) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	if len(asset) != interop.Hash160Len {
		panic("invalid asset hash")
	}

	key := instanceKey(asset, activityID)
	if storage.Get(ctx, key) != nil {
		panic("activity is already registered")
	}

	common.SetSerialized(ctx, key, Instance{
		Asset:      asset,
		ActivityID: activityID,
	})

	runtime.Notify("ActivityAdded", asset, activityID)
}

// IsRegistered reports whether the activity instance is registered.
func IsRegistered(asset interop.Hash160, activityID int) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, instanceKey(asset, activityID)) != nil
}

// ListActivities returns all registered activity instances.
func ListActivities() []Instance {
	ctx := storage.GetReadOnlyContext()

	result := []Instance{}

	it := storage.Find(ctx, []byte{instancePrefix}, storage.ValuesOnly|storage.DeserializeValues)
	for iterator.Next(it) {
		result = append(result, iterator.Value(it).(Instance))
	}

	return result
}

// PutVerifyVotes sets the distrust quota of a voter for the current round.
// The quota mirrors the verification votes the voter holds in the governance
// source and caps the cumulative distrust weight the voter may cast. It can
// be invoked only by the committee. Repeated calls overwrite the quota and
// adjust the activity vote total accordingly.
func PutVerifyVotes(asset interop.Hash160, activityID int, voter interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	if amount < 0 {
		panic("invalid votes amount")
	}

	requireRegistered(ctx, asset, activityID)

	round := storage.Get(ctx, roundKey).(int)
	actKey := common.ActivityKey(asset, activityID)

	voterKey := votesKey(verifyVotesPrefix, actKey, round)
	voterKey = append(voterKey, voter...)
	old := common.GetInt(ctx, voterKey)

	totalKey := votesKey(totalVotesPrefix, actKey, round)
	total := common.GetInt(ctx, totalKey)

	storage.Put(ctx, voterKey, amount)
	storage.Put(ctx, totalKey, total-old+amount)

	runtime.Log("verify votes have been updated")
}

// VerifyVotes returns the distrust quota of the voter for the given round.
func VerifyVotes(asset interop.Hash160, activityID int, round int, voter interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	key := votesKey(verifyVotesPrefix, common.ActivityKey(asset, activityID), round)
	key = append(key, voter...)

	return common.GetInt(ctx, key)
}

// TotalVerifyVotes returns the total governance votes of the activity for
// the given round.
func TotalVerifyVotes(asset interop.Hash160, activityID int, round int) int {
	ctx := storage.GetReadOnlyContext()

	return common.GetInt(ctx, votesKey(totalVotesPrefix, common.ActivityKey(asset, activityID), round))
}

// Config returns a configuration value by key. If the key does not exist,
// returns nil.
func Config(key []byte) any {
	ctx := storage.GetReadOnlyContext()
	return getConfig(ctx, key)
}

// SetConfig puts a key-value pair into the runtime configuration. It can be
// invoked only by the committee.
func SetConfig(key, val []byte) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	setConfig(ctx, key, val)

	runtime.Log("configuration has been updated")
}

type record struct {
	key []byte
	val []byte
}

// ListConfig returns an array of structures that contain key and value of
// all configuration records. Key and value are both byte arrays.
func ListConfig() []record {
	ctx := storage.GetReadOnlyContext()

	var config []record

	it := storage.Find(ctx, configPrefix, storage.None)
	for iterator.Next(it) {
		pair := iterator.Value(it).(struct {
			key []byte
			val []byte
		})
		r := record{key: pair.key[len(configPrefix):], val: pair.val}

		config = append(config, r)
	}

	return config
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func requireRegistered(ctx storage.Context, asset interop.Hash160, activityID int) {
	if storage.Get(ctx, instanceKey(asset, activityID)) == nil {
		panic("activity is not registered")
	}
}

func instanceKey(asset interop.Hash160, activityID int) []byte {
	return append([]byte{instancePrefix}, common.ActivityKey(asset, activityID)...)
}

func votesKey(prefix byte, actKey []byte, round int) []byte {
	return common.AppendInt(append([]byte{prefix}, actKey...), round)
}

func getConfig(ctx storage.Context, key any) any {
	postfix := key.([]byte)
	storageKey := append(configPrefix, postfix...)

	return storage.Get(ctx, storageKey)
}

func setConfig(ctx storage.Context, key, val any) {
	postfix := key.([]byte)
	storageKey := append(configPrefix, postfix...)

	storage.Put(ctx, storageKey, val)
}
