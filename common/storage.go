package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes the value and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	storage.Put(ctx, key, std.Serialize(value))
}

// GetInt reads an integer value from contract storage. Missing key reads
// as zero.
func GetInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data == nil {
		return 0
	}
	return data.(int)
}
