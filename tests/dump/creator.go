package dump

import (
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// Creator collects states of Neo contracts into a new dump. Output files:
//
//	'<label>-<block>-contracts.json': JSON array of contract states
//	'<label>-<block>-storage.csv': CSV of contract storages
//
// Storage CSV records are 'name,key,value' where name is the contract name
// and the binary key-value pair is base64-encoded.
//
// Existing dumps are accessed with IterateDumps.
type Creator struct {
	dumpFiles

	states []contractState

	storageCSV *csv.Writer
}

// NewCreator returns a Creator writing a dump with the given ID into the
// directory. The Creator should be closed when no longer needed.
//
// NewCreator fails if a dump with this ID already exists.
func NewCreator(dir string, id ID) (*Creator, error) {
	var c Creator

	err := openDumpFiles(&c.dumpFiles, dir, id, false)
	if err != nil {
		return nil, err
	}

	c.storageCSV = csv.NewWriter(c.dumpFiles.storage)

	return &c, nil
}

// AddContract adds the state of the named contract to the dump and returns a
// StorageWriter accepting the contract's storage items. Added contracts are
// persisted by Flush.
func (c *Creator) AddContract(name string, st state.Contract) *StorageWriter {
	c.states = append(c.states, contractState{
		Name:  name,
		State: st,
	})

	return &StorageWriter{
		name: name,
		csv:  c.storageCSV,
	}
}

// Flush writes the accumulated dump to the file system.
func (c *Creator) Flush() error {
	enc := json.NewEncoder(c.dumpFiles.states)
	enc.SetIndent("", " ")

	err := enc.Encode(c.states)
	if err != nil {
		return fmt.Errorf("encode contract states to JSON: %w", err)
	}

	c.storageCSV.Flush()

	err = c.storageCSV.Error()
	if err != nil {
		return fmt.Errorf("flush CSV data: %w", err)
	}

	return nil
}

// Close releases the underlying files and makes the Creator unusable.
func (c *Creator) Close() {
	c.close()
}

// StorageWriter writes storage items of one contract into the dump.
type StorageWriter struct {
	name string
	csv  *csv.Writer
}

// Write adds the binary key-value pair to the contract storage dump.
func (w *StorageWriter) Write(key, value []byte) error {
	err := w.csv.Write([]string{
		w.name,
		binEncoding.EncodeToString(key),
		binEncoding.EncodeToString(value),
	})
	if err != nil {
		return fmt.Errorf("write storage item as CSV data: %w", err)
	}

	return nil
}
