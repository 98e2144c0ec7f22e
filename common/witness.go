package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

const (
	// ErrCommitteeWitnessFailed appears when a method restricted to the
	// committee is called by someone else.
	ErrCommitteeWitnessFailed = "committee witness check failed"
	// ErrWitnessFailed appears when a method acting on behalf of an
	// account is not witnessed by that account.
	ErrWitnessFailed = "witness check failed"
)

// CommitteeAddress returns the multisignature address of the committee,
// a 2/3+1 account built from the committee keys.
func CommitteeAddress() interop.Hash160 {
	committee := neo.GetCommittee()
	threshold := len(committee)*2/3 + 1

	keys := []interop.PublicKey{}
	for _, key := range committee {
		keys = append(keys, key)
	}

	return contract.CreateMultisigAccount(threshold, keys)
}

// CheckCommitteeWitness panics with ErrCommitteeWitnessFailed unless the
// invocation is witnessed by the committee multisignature account.
func CheckCommitteeWitness() {
	if !runtime.CheckWitness(CommitteeAddress()) {
		panic(ErrCommitteeWitnessFailed)
	}
}

// CheckAccountWitness panics with ErrWitnessFailed unless the invocation
// is witnessed by the given account.
func CheckAccountWitness(acc interop.Hash160) {
	if !runtime.CheckWitness(acc) {
		panic(ErrWitnessFailed)
	}
}
