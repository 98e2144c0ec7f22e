package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
)

// Fixed-point unit shared by scores, distrust ratios and recipient shares.
// One PRECISION means 100%.
const PRECISION = 1_0000_0000_0000

// keyIntLen is the width of integer key components. Components are padded to
// it so that neighboring components of a composite key can not alias each
// other and prefix searches match whole components only.
const keyIntLen = 8

// ActivityKey builds the storage key part identifying an activity instance,
// the staked asset contract followed by the numeric activity ID.
func ActivityKey(asset interop.Hash160, activityID int) []byte {
	return AppendInt([]byte(asset), activityID)
}

// AppendInt appends the fixed-width little-endian representation of a
// non-negative integer to a storage key.
func AppendInt(key []byte, val int) []byte {
	b := convert.ToBytes(val)
	for len(b) < keyIntLen {
		b = append(b, 0)
	}
	return append(key, b...)
}
