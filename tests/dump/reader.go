package dump

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// IterateDumps passes the ID and a Reader of every dump found in the
// directory into f.
func IterateDumps(dir string, f func(ID, *Reader)) error {
	var id ID
	var r Reader
	var files dumpFiles

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, e error) error {
		if errors.Is(e, fs.ErrNotExist) {
			return nil
		}

		if d.IsDir() {
			return nil
		}

		name := d.Name()

		err := id.decodeString(name)
		if err != nil {
			return fmt.Errorf("decode dump ID from file name '%s': %w", d.Name(), err)
		}

		if !strings.HasSuffix(name, statesFileSuffix) {
			return nil
		}

		err = openDumpFiles(&files, dir, id, true)
		if err != nil {
			return fmt.Errorf("open dump files ('%s'): %w", name, err)
		}

		err = r.fromDumpFiles(files.states, files.storage)
		if err != nil {
			return fmt.Errorf("init dump reader ('%s'): %w", name, err)
		}

		files.close()

		f(id, &r)

		return nil
	})
}

type kv struct{ k, v []byte }

// Reader reads the contracts collected in one dump.
type Reader struct {
	states  []contractState
	storage map[string][]kv
}

func (r *Reader) fromDumpFiles(rStates, rStorage io.Reader) error {
	err := json.NewDecoder(rStates).Decode(&r.states)
	if err != nil {
		return fmt.Errorf("decode contract states from JSON: %w", err)
	}

	recs := csv.NewReader(rStorage)
	recs.FieldsPerRecord = 3
	recs.ReuseRecord = true

	r.storage = make(map[string][]kv)

	for {
		rec, err := recs.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read next CSV record: %w", err)
		}

		var item kv

		// record length enforced by FieldsPerRecord
		item.k, err = binEncoding.DecodeString(rec[1])
		if err != nil {
			return fmt.Errorf("decode storage item key: %w", err)
		}

		item.v, err = binEncoding.DecodeString(rec[2])
		if err != nil {
			return fmt.Errorf("decode storage item value: %w", err)
		}

		r.storage[rec[0]] = append(r.storage[rec[0]], item)
	}
}

// IterateContractStates passes the name and state of every contract in the
// dump into f.
func (r *Reader) IterateContractStates(f func(name string, _state state.Contract)) error {
	for i := range r.states {
		f(r.states[i].Name, r.states[i].State)
	}
	return nil
}

// IterateContractStorages passes every storage item in the dump into f along
// with the name of the contract holding it.
func (r *Reader) IterateContractStorages(f func(name string, key, value []byte)) error {
	for name, kvs := range r.storage {
		for i := range kvs {
			f(name, kvs[i].k, kvs[i].v)
		}
	}
	return nil
}
