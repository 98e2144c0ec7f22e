package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// newExecutor starts a fresh single-node chain with the committee account as
// both validator and committee signer.
func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// iteratorToArray drains a session-less iterator returned by a test
// invocation.
func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	items := make([]stackitem.Item, 0)
	for iter.Next() {
		items = append(items, iter.Value())
	}
	return items
}
