package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	activityPath = "../contracts/activity"
	tokenPath    = "../contracts/token"
	groupPath    = "../contracts/group"
	verifyPath   = "../contracts/verify"
	distrustPath = "../contracts/distrust"
	rewardPath   = "../contracts/reward"

	// precision is the fixed-point unit of scores, shares and distrust
	// ratios, one precision means 100%.
	precision = 1_0000_0000_0000

	// Default suite configuration.
	minJoinAmount   = 100
	maxJoinAmount   = 1_000_000_0000_0000_0000
	maxGroupMembers = 5
	maxRecipients   = 3

	// The default activity instance registered by newSuite.
	activityID = 1
)

// suite wires the deployed contract set of one test chain.
type suite struct {
	e *neotest.Executor

	activity *neotest.ContractInvoker
	token    *neotest.ContractInvoker
	group    *neotest.ContractInvoker
	verify   *neotest.ContractInvoker
	distrust *neotest.ContractInvoker
	reward   *neotest.ContractInvoker

	tokenHash  util.Uint160
	rewardHash util.Uint160
	groupHash  util.Uint160
}

func compileSuiteContract(t *testing.T, e *neotest.Executor, ctrPath string) *neotest.Contract {
	return neotest.CompileFile(t, e.CommitteeHash, ctrPath, path.Join(ctrPath, "config.yml"))
}

// newSuite deploys the whole contract suite on a fresh single-node chain and
// registers the default activity instance: the suite token as the asset,
// activity ID 1.
func newSuite(t *testing.T) *suite {
	e := newExecutor(t)

	ctrActivity := compileSuiteContract(t, e, activityPath)
	ctrToken := compileSuiteContract(t, e, tokenPath)
	ctrGroup := compileSuiteContract(t, e, groupPath)
	ctrVerify := compileSuiteContract(t, e, verifyPath)
	ctrDistrust := compileSuiteContract(t, e, distrustPath)
	ctrReward := compileSuiteContract(t, e, rewardPath)

	e.DeployContract(t, ctrActivity, []any{
		[]any{
			[]byte("MinJoinAmount"), int64(minJoinAmount),
			[]byte("MaxJoinAmount"), int64(maxJoinAmount),
			[]byte("MaxGroupMembers"), int64(maxGroupMembers),
			[]byte("MaxRecipients"), int64(maxRecipients),
		},
	})
	e.DeployContract(t, ctrToken, nil)
	e.DeployContract(t, ctrGroup, []any{ctrActivity.Hash})
	e.DeployContract(t, ctrVerify, []any{ctrActivity.Hash, ctrGroup.Hash})
	e.DeployContract(t, ctrDistrust, []any{ctrActivity.Hash, ctrGroup.Hash, ctrVerify.Hash})
	e.DeployContract(t, ctrReward, []any{
		ctrActivity.Hash, ctrGroup.Hash, ctrVerify.Hash, ctrDistrust.Hash, ctrToken.Hash,
	})

	s := &suite{
		e:          e,
		activity:   e.CommitteeInvoker(ctrActivity.Hash),
		token:      e.CommitteeInvoker(ctrToken.Hash),
		group:      e.CommitteeInvoker(ctrGroup.Hash),
		verify:     e.CommitteeInvoker(ctrVerify.Hash),
		distrust:   e.CommitteeInvoker(ctrDistrust.Hash),
		reward:     e.CommitteeInvoker(ctrReward.Hash),
		tokenHash:  ctrToken.Hash,
		rewardHash: ctrReward.Hash,
		groupHash:  ctrGroup.Hash,
	}

	s.activity.Invoke(t, stackitem.Null{}, "registerActivity", s.tokenHash, int64(activityID))

	return s
}

// newAccountWithTokens creates a GAS-funded account holding the given amount
// of the suite token.
func (s *suite) newAccountWithTokens(t *testing.T, amount int64) neotest.Signer {
	acc := s.token.NewAccount(t)
	s.mint(t, acc.ScriptHash(), amount)
	return acc
}

func (s *suite) mint(t *testing.T, to util.Uint160, amount int64) {
	s.token.Invoke(t, stackitem.Null{}, "mint", to, amount, []byte{})
}

func (s *suite) balanceOf(t *testing.T, acc util.Uint160) int64 {
	res, err := s.token.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return res.Pop().BigInt().Int64()
}

// registerActiveGroup registers a group of the default activity instance
// owned by the signer and activates it. Group IDs are sequential, the caller
// tracks the expected one.
func (s *suite) registerActiveGroup(t *testing.T, owner neotest.Signer, id int64) {
	inv := s.group.WithSigners(owner)
	inv.Invoke(t, stackitem.Make(id), "register", owner.ScriptHash(), s.tokenHash, int64(activityID))
	inv.Invoke(t, stackitem.Null{}, "activate", id)
}

func (s *suite) join(t *testing.T, id int64, acc neotest.Signer, amount int64) {
	s.group.WithSigners(acc).Invoke(t, stackitem.Null{}, "join", id, acc.ScriptHash(), amount)
}

func (s *suite) currentRound(t *testing.T) int64 {
	res, err := s.activity.TestInvoke(t, "currentRound")
	require.NoError(t, err)
	return res.Pop().BigInt().Int64()
}

// tickRound advances the round counter by one.
func (s *suite) tickRound(t *testing.T) {
	s.activity.Invoke(t, stackitem.Null{}, "newRound", s.currentRound(t)+1)
}

// iterItems invokes an iterator returning method and collects the items.
func iterItems(t *testing.T, inv *neotest.ContractInvoker, method string, args ...any) []stackitem.Item {
	res, err := inv.TestInvoke(t, method, args...)
	require.NoError(t, err)

	iter, ok := res.Pop().Value().(*storage.Iterator)
	require.True(t, ok)

	return iteratorToArray(iter)
}

func (s *suite) putVerifyVotes(t *testing.T, voter util.Uint160, amount int64) {
	s.activity.Invoke(t, stackitem.Null{}, "putVerifyVotes",
		s.tokenHash, int64(activityID), voter, amount)
}
