// Package group contains RPC wrappers for Group Registry contract.
package group

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

// GroupGroup is a contract-specific group.Group type used by its methods.
type GroupGroup struct {
	ID *big.Int
	Owner util.Uint160
	Asset util.Uint160
	ActivityID *big.Int
	Active bool
	ActivatedRound *big.Int
	DeactivatedRound *big.Int
}

// GroupAddedEvent represents "GroupAdded" event emitted by the contract.
type GroupAddedEvent struct {
	ID *big.Int
	Owner util.Uint160
}

// GroupActivatedEvent represents "GroupActivated" event emitted by the contract.
type GroupActivatedEvent struct {
	ID *big.Int
}

// GroupDeactivatedEvent represents "GroupDeactivated" event emitted by the contract.
type GroupDeactivatedEvent struct {
	ID *big.Int
}

// JoinSuccessEvent represents "JoinSuccess" event emitted by the contract.
type JoinSuccessEvent struct {
	ID *big.Int
	Account util.Uint160
	Amount *big.Int
}

// ExitSuccessEvent represents "ExitSuccess" event emitted by the contract.
type ExitSuccessEvent struct {
	ID *big.Int
	Account util.Uint160
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

// AccountsOfAsset invokes `accountsOfAsset` method of contract.
func (c *ContractReader) AccountsOfAsset(asset util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "accountsOfAsset", asset))
}

// AccountsOfAssetExpanded is similar to AccountsOfAsset (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) AccountsOfAssetExpanded(asset util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "accountsOfAsset", _numOfIteratorItems, asset))
}

// ActivityMember invokes `activityMember` method of contract.
func (c *ContractReader) ActivityMember(asset util.Uint160, activityID *big.Int, account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "activityMember", asset, activityID, account))
}

// AssetsOf invokes `assetsOf` method of contract.
func (c *ContractReader) AssetsOf(account util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "assetsOf", account))
}

// AssetsOfExpanded is similar to AssetsOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) AssetsOfExpanded(account util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "assetsOf", _numOfIteratorItems, account))
}

// Get invokes `get` method of contract.
func (c *ContractReader) Get(id *big.Int) (*GroupGroup, error) {
	return itemToGroupGroup(unwrap.Item(c.invoker.Call(c.hash, "get", id)))
}

// GroupsOf invokes `groupsOf` method of contract.
func (c *ContractReader) GroupsOf(account util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "groupsOf", account))
}

// GroupsOfExpanded is similar to GroupsOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) GroupsOfExpanded(account util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "groupsOf", _numOfIteratorItems, account))
}

// GroupsOfOwner invokes `groupsOfOwner` method of contract.
func (c *ContractReader) GroupsOfOwner(owner util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "groupsOfOwner", owner))
}

// GroupsOfOwnerExpanded is similar to GroupsOfOwner (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) GroupsOfOwnerExpanded(owner util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "groupsOfOwner", _numOfIteratorItems, owner))
}

// HasActiveGroups invokes `hasActiveGroups` method of contract.
func (c *ContractReader) HasActiveGroups(owner util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasActiveGroups", owner))
}

// IsActive invokes `isActive` method of contract.
func (c *ContractReader) IsActive(id *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isActive", id))
}

// MemberCount invokes `memberCount` method of contract.
func (c *ContractReader) MemberCount(id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "memberCount", id))
}

// MembersOf invokes `membersOf` method of contract.
func (c *ContractReader) MembersOf(id *big.Int) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "membersOf", id))
}

// MembersOfExpanded is similar to MembersOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) MembersOfExpanded(id *big.Int, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "membersOf", _numOfIteratorItems, id))
}

// OwnerOf invokes `ownerOf` method of contract.
func (c *ContractReader) OwnerOf(id *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "ownerOf", id))
}

// StakedOf invokes `stakedOf` method of contract.
func (c *ContractReader) StakedOf(id *big.Int, account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "stakedOf", id, account))
}

// TotalStaked invokes `totalStaked` method of contract.
func (c *ContractReader) TotalStaked(id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalStaked", id))
}

// TotalStakedByOwner invokes `totalStakedByOwner` method of contract.
func (c *ContractReader) TotalStakedByOwner(owner util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalStakedByOwner", owner))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Activate creates a transaction invoking `activate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Activate(id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "activate", id)
}

// ActivateTransaction creates a transaction invoking `activate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ActivateTransaction(id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "activate", id)
}

// ActivateUnsigned creates a transaction invoking `activate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ActivateUnsigned(id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "activate", nil, id)
}

// Deactivate creates a transaction invoking `deactivate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Deactivate(id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deactivate", id)
}

// DeactivateTransaction creates a transaction invoking `deactivate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeactivateTransaction(id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deactivate", id)
}

// DeactivateUnsigned creates a transaction invoking `deactivate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeactivateUnsigned(id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deactivate", nil, id)
}

// Exit creates a transaction invoking `exit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Exit(id *big.Int, account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "exit", id, account)
}

// ExitTransaction creates a transaction invoking `exit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ExitTransaction(id *big.Int, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "exit", id, account)
}

// ExitUnsigned creates a transaction invoking `exit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ExitUnsigned(id *big.Int, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "exit", nil, id, account)
}

// Join creates a transaction invoking `join` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Join(id *big.Int, account util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "join", id, account, amount)
}

// JoinTransaction creates a transaction invoking `join` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) JoinTransaction(id *big.Int, account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "join", id, account, amount)
}

// JoinUnsigned creates a transaction invoking `join` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) JoinUnsigned(id *big.Int, account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "join", nil, id, account, amount)
}

// Register creates a transaction invoking `register` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Register(owner util.Uint160, asset util.Uint160, activityID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "register", owner, asset, activityID)
}

// RegisterTransaction creates a transaction invoking `register` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterTransaction(owner util.Uint160, asset util.Uint160, activityID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "register", owner, asset, activityID)
}

// RegisterUnsigned creates a transaction invoking `register` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterUnsigned(owner util.Uint160, asset util.Uint160, activityID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "register", nil, owner, asset, activityID)
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

func itemToGroupGroup(item stackitem.Item, err error) (*GroupGroup, error) {
	if err != nil {
		return nil, err
	}
	var res = new(GroupGroup)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of GroupGroup from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *GroupGroup) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

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
	res.Asset, err = func (item stackitem.Item) (util.Uint160, error) {
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
	res.ActivityID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ActivityID: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	index++
	res.ActivatedRound, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ActivatedRound: %w", err)
	}

	index++
	res.DeactivatedRound, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DeactivatedRound: %w", err)
	}

	return nil
}

// GroupAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "GroupAdded" name from the provided [result.ApplicationLog].
func GroupAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*GroupAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*GroupAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "GroupAdded" {
				continue
			}
			event := new(GroupAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize GroupAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to GroupAddedEvent or
// returns an error if it's not possible to do to so.
func (e *GroupAddedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
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

	return nil
}

// GroupActivatedEventsFromApplicationLog retrieves a set of all emitted events
// with "GroupActivated" name from the provided [result.ApplicationLog].
func GroupActivatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*GroupActivatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*GroupActivatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "GroupActivated" {
				continue
			}
			event := new(GroupActivatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize GroupActivatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to GroupActivatedEvent or
// returns an error if it's not possible to do to so.
func (e *GroupActivatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

// GroupDeactivatedEventsFromApplicationLog retrieves a set of all emitted events
// with "GroupDeactivated" name from the provided [result.ApplicationLog].
func GroupDeactivatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*GroupDeactivatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*GroupDeactivatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "GroupDeactivated" {
				continue
			}
			event := new(GroupDeactivatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize GroupDeactivatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to GroupDeactivatedEvent or
// returns an error if it's not possible to do to so.
func (e *GroupDeactivatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

// JoinSuccessEventsFromApplicationLog retrieves a set of all emitted events
// with "JoinSuccess" name from the provided [result.ApplicationLog].
func JoinSuccessEventsFromApplicationLog(log *result.ApplicationLog) ([]*JoinSuccessEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*JoinSuccessEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "JoinSuccess" {
				continue
			}
			event := new(JoinSuccessEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize JoinSuccessEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to JoinSuccessEvent or
// returns an error if it's not possible to do to so.
func (e *JoinSuccessEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

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
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ExitSuccessEventsFromApplicationLog retrieves a set of all emitted events
// with "ExitSuccess" name from the provided [result.ApplicationLog].
func ExitSuccessEventsFromApplicationLog(log *result.ApplicationLog) ([]*ExitSuccessEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ExitSuccessEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ExitSuccess" {
				continue
			}
			event := new(ExitSuccessEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ExitSuccessEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ExitSuccessEvent or
// returns an error if it's not possible to do to so.
func (e *ExitSuccessEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

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
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
