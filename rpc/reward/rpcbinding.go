// Package reward contains RPC wrappers for Group Reward contract.
package reward

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// RewardRecipient is a contract-specific reward.Recipient type used by its methods.
type RewardRecipient struct {
	Account util.Uint160
	Share *big.Int
}

// RewardRecipientAmount is a contract-specific reward.RecipientAmount type used by its methods.
type RewardRecipientAmount struct {
	Account util.Uint160
	Amount *big.Int
}

// RewardDistribution is a contract-specific reward.Distribution type used by its methods.
type RewardDistribution struct {
	Owner util.Uint160
	OwnerAmount *big.Int
	Recipients []*RewardRecipientAmount
}

// RewardRewardRecord is a contract-specific reward.RewardRecord type used by its methods.
type RewardRewardRecord struct {
	Amount *big.Int
	Claimed bool
}

// RewardBurnRecord is a contract-specific reward.BurnRecord type used by its methods.
type RewardBurnRecord struct {
	Amount *big.Int
	Burned bool
}

// RosterJoinEvent represents "RosterJoin" event emitted by the contract.
type RosterJoinEvent struct {
	Account util.Uint160
}

// RosterExitEvent represents "RosterExit" event emitted by the contract.
type RosterExitEvent struct {
	Account util.Uint160
}

// RecipientsSetEvent represents "RecipientsSet" event emitted by the contract.
type RecipientsSetEvent struct {
	ID *big.Int
	Round *big.Int
}

// ServiceRewardMintedEvent represents "ServiceRewardMinted" event emitted by the contract.
type ServiceRewardMintedEvent struct {
	Asset util.Uint160
	ActivityID *big.Int
	Round *big.Int
	Amount *big.Int
}

// ClaimSuccessEvent represents "ClaimSuccess" event emitted by the contract.
type ClaimSuccessEvent struct {
	Account util.Uint160
	Round *big.Int
	Amount *big.Int
}

// BurnSuccessEvent represents "BurnSuccess" event emitted by the contract.
type BurnSuccessEvent struct {
	Asset util.Uint160
	ActivityID *big.Int
	Round *big.Int
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// BurnInfo invokes `burnInfo` method of contract.
func (c *ContractReader) BurnInfo(asset util.Uint160, activityID *big.Int, round *big.Int) (*RewardBurnRecord, error) {
	return itemToRewardBurnRecord(unwrap.Item(c.invoker.Call(c.hash, "burnInfo", asset, activityID, round)))
}

// GeneratedByVerifier invokes `generatedByVerifier` method of contract.
func (c *ContractReader) GeneratedByVerifier(asset util.Uint160, activityID *big.Int, round *big.Int, owner util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "generatedByVerifier", asset, activityID, round, owner))
}

// IsOnRoster invokes `isOnRoster` method of contract.
func (c *ContractReader) IsOnRoster(account util.Uint160, round *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isOnRoster", account, round))
}

// Recipients invokes `recipients` method of contract.
func (c *ContractReader) Recipients(id *big.Int, round *big.Int) ([]*RewardRecipient, error) {
	return func (item stackitem.Item, err error) ([]*RewardRecipient, error) {
		if err != nil {
			return nil, err
		}
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*RewardRecipient, len(arr))
		for i := range arr {
			res[i] = new(RewardRecipient)
			err = res[i].FromStackItem(arr[i])
			if err != nil {
				return nil, fmt.Errorf("item #%d: %w", i, err)
			}
		}
		return res, nil
	} (unwrap.Item(c.invoker.Call(c.hash, "recipients", id, round)))
}

// RecipientsLatest invokes `recipientsLatest` method of contract.
func (c *ContractReader) RecipientsLatest(id *big.Int) ([]*RewardRecipient, error) {
	return func (item stackitem.Item, err error) ([]*RewardRecipient, error) {
		if err != nil {
			return nil, err
		}
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*RewardRecipient, len(arr))
		for i := range arr {
			res[i] = new(RewardRecipient)
			err = res[i].FromStackItem(arr[i])
			if err != nil {
				return nil, fmt.Errorf("item #%d: %w", i, err)
			}
		}
		return res, nil
	} (unwrap.Item(c.invoker.Call(c.hash, "recipientsLatest", id)))
}

// RewardByAccount invokes `rewardByAccount` method of contract.
func (c *ContractReader) RewardByAccount(round *big.Int, account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rewardByAccount", round, account))
}

// RewardByRecipient invokes `rewardByRecipient` method of contract.
func (c *ContractReader) RewardByRecipient(id *big.Int, round *big.Int, account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rewardByRecipient", id, round, account))
}

// RewardDistribution invokes `rewardDistribution` method of contract.
func (c *ContractReader) RewardDistribution(id *big.Int, round *big.Int) (*RewardDistribution, error) {
	return itemToRewardDistribution(unwrap.Item(c.invoker.Call(c.hash, "rewardDistribution", id, round)))
}

// RewardOf invokes `rewardOf` method of contract.
func (c *ContractReader) RewardOf(asset util.Uint160, activityID *big.Int, round *big.Int, owner util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rewardOf", asset, activityID, round, owner))
}

// RewardRecordOf invokes `rewardRecordOf` method of contract.
func (c *ContractReader) RewardRecordOf(round *big.Int, account util.Uint160) (*RewardRewardRecord, error) {
	return itemToRewardRewardRecord(unwrap.Item(c.invoker.Call(c.hash, "rewardRecordOf", round, account)))
}

// TotalGeneratedReward invokes `totalGeneratedReward` method of contract.
func (c *ContractReader) TotalGeneratedReward(asset util.Uint160, activityID *big.Int, round *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalGeneratedReward", asset, activityID, round))
}

// TotalServiceReward invokes `totalServiceReward` method of contract.
func (c *ContractReader) TotalServiceReward(asset util.Uint160, activityID *big.Int, round *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalServiceReward", asset, activityID, round))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// BurnRewardIfNeeded creates a transaction invoking `burnRewardIfNeeded` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BurnRewardIfNeeded(asset util.Uint160, activityID *big.Int, round *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burnRewardIfNeeded", asset, activityID, round)
}

// BurnRewardIfNeededTransaction creates a transaction invoking `burnRewardIfNeeded` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnRewardIfNeededTransaction(asset util.Uint160, activityID *big.Int, round *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burnRewardIfNeeded", asset, activityID, round)
}

// BurnRewardIfNeededUnsigned creates a transaction invoking `burnRewardIfNeeded` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnRewardIfNeededUnsigned(asset util.Uint160, activityID *big.Int, round *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burnRewardIfNeeded", nil, asset, activityID, round)
}

// ClaimReward creates a transaction invoking `claimReward` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimReward(round *big.Int, account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimReward", round, account)
}

// ClaimRewardTransaction creates a transaction invoking `claimReward` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimRewardTransaction(round *big.Int, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimReward", round, account)
}

// ClaimRewardUnsigned creates a transaction invoking `claimReward` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimRewardUnsigned(round *big.Int, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimReward", nil, round, account)
}

// Enroll creates a transaction invoking `enroll` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Enroll(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "enroll", account)
}

// EnrollTransaction creates a transaction invoking `enroll` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EnrollTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "enroll", account)
}

// EnrollUnsigned creates a transaction invoking `enroll` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EnrollUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "enroll", nil, account)
}

// MintServiceReward creates a transaction invoking `mintServiceReward` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MintServiceReward(asset util.Uint160, activityID *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mintServiceReward", asset, activityID, amount)
}

// MintServiceRewardTransaction creates a transaction invoking `mintServiceReward` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintServiceRewardTransaction(asset util.Uint160, activityID *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mintServiceReward", asset, activityID, amount)
}

// MintServiceRewardUnsigned creates a transaction invoking `mintServiceReward` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintServiceRewardUnsigned(asset util.Uint160, activityID *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mintServiceReward", nil, asset, activityID, amount)
}

// Resign creates a transaction invoking `resign` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Resign(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resign", account)
}

// ResignTransaction creates a transaction invoking `resign` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ResignTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "resign", account)
}

// ResignUnsigned creates a transaction invoking `resign` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ResignUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "resign", nil, account)
}

// SetRecipients creates a transaction invoking `setRecipients` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetRecipients(id *big.Int, recipients []util.Uint160, shares []*big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setRecipients", id, recipients, shares)
}

// SetRecipientsTransaction creates a transaction invoking `setRecipients` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetRecipientsTransaction(id *big.Int, recipients []util.Uint160, shares []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setRecipients", id, recipients, shares)
}

// SetRecipientsUnsigned creates a transaction invoking `setRecipients` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetRecipientsUnsigned(id *big.Int, recipients []util.Uint160, shares []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setRecipients", nil, id, recipients, shares)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// FromStackItem retrieves fields of RewardRecipient from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RewardRecipient) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	res.Share, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Share: %w", err)
	}

	return nil
}

// FromStackItem retrieves fields of RewardRecipientAmount from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RewardRecipientAmount) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

func itemToRewardDistribution(item stackitem.Item, err error) (*RewardDistribution, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RewardDistribution)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RewardDistribution from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RewardDistribution) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.OwnerAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OwnerAmount: %w", err)
	}

	index++
	res.Recipients, err = func (item stackitem.Item) ([]*RewardRecipientAmount, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*RewardRecipientAmount, len(arr))
		for i := range arr {
			res[i] = new(RewardRecipientAmount)
			err := res[i].FromStackItem(arr[i])
			if err != nil {
				return nil, fmt.Errorf("item #%d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Recipients: %w", err)
	}

	return nil
}

func itemToRewardRewardRecord(item stackitem.Item, err error) (*RewardRewardRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RewardRewardRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RewardRewardRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RewardRewardRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.Claimed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Claimed: %w", err)
	}

	return nil
}

func itemToRewardBurnRecord(item stackitem.Item, err error) (*RewardBurnRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RewardBurnRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RewardBurnRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RewardBurnRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.Burned, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Burned: %w", err)
	}

	return nil
}

// RosterJoinEventsFromApplicationLog retrieves a set of all emitted events
// with "RosterJoin" name from the provided [result.ApplicationLog].
func RosterJoinEventsFromApplicationLog(log *result.ApplicationLog) ([]*RosterJoinEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RosterJoinEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RosterJoin" {
				continue
			}
			event := new(RosterJoinEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RosterJoinEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RosterJoinEvent or
// returns an error if it's not possible to do to so.
func (e *RosterJoinEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	return nil
}

// RosterExitEventsFromApplicationLog retrieves a set of all emitted events
// with "RosterExit" name from the provided [result.ApplicationLog].
func RosterExitEventsFromApplicationLog(log *result.ApplicationLog) ([]*RosterExitEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RosterExitEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RosterExit" {
				continue
			}
			event := new(RosterExitEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RosterExitEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RosterExitEvent or
// returns an error if it's not possible to do to so.
func (e *RosterExitEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	return nil
}

// RecipientsSetEventsFromApplicationLog retrieves a set of all emitted events
// with "RecipientsSet" name from the provided [result.ApplicationLog].
func RecipientsSetEventsFromApplicationLog(log *result.ApplicationLog) ([]*RecipientsSetEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RecipientsSetEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RecipientsSet" {
				continue
			}
			event := new(RecipientsSetEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RecipientsSetEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RecipientsSetEvent or
// returns an error if it's not possible to do to so.
func (e *RecipientsSetEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Round, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Round: %w", err)
	}

	return nil
}

// ServiceRewardMintedEventsFromApplicationLog retrieves a set of all emitted events
// with "ServiceRewardMinted" name from the provided [result.ApplicationLog].
func ServiceRewardMintedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ServiceRewardMintedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ServiceRewardMintedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ServiceRewardMinted" {
				continue
			}
			event := new(ServiceRewardMintedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ServiceRewardMintedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ServiceRewardMintedEvent or
// returns an error if it's not possible to do to so.
func (e *ServiceRewardMintedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Asset, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	index++
	e.ActivityID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ActivityID: %w", err)
	}

	index++
	e.Round, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Round: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ClaimSuccessEventsFromApplicationLog retrieves a set of all emitted events
// with "ClaimSuccess" name from the provided [result.ApplicationLog].
func ClaimSuccessEventsFromApplicationLog(log *result.ApplicationLog) ([]*ClaimSuccessEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ClaimSuccessEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ClaimSuccess" {
				continue
			}
			event := new(ClaimSuccessEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ClaimSuccessEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ClaimSuccessEvent or
// returns an error if it's not possible to do to so.
func (e *ClaimSuccessEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Round, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Round: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// BurnSuccessEventsFromApplicationLog retrieves a set of all emitted events
// with "BurnSuccess" name from the provided [result.ApplicationLog].
func BurnSuccessEventsFromApplicationLog(log *result.ApplicationLog) ([]*BurnSuccessEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BurnSuccessEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BurnSuccess" {
				continue
			}
			event := new(BurnSuccessEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BurnSuccessEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BurnSuccessEvent or
// returns an error if it's not possible to do to so.
func (e *BurnSuccessEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Asset, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	index++
	e.ActivityID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ActivityID: %w", err)
	}

	index++
	e.Round, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Round: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
