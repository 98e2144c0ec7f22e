package dump

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// ID identifies a dump within its directory.
type ID struct {
	// Label of the dumped chain (e.g. testnet, mainnet).
	Label string
	// Height at which the state was taken.
	Block uint32
}

// String returns the hyphen-separated ID used in dump file names.
func (id ID) String() string {
	return id.Label + sep + strconv.FormatUint(uint64(id.Block), 10)
}

func (id *ID) decodeString(s string) error {
	ss := strings.Split(s, sep)
	if len(ss) < 2 {
		return fmt.Errorf("expected '%s'-separated string with at least 2 items", sep)
	}

	n, err := strconv.ParseUint(ss[1], 10, 32)
	if err != nil {
		return fmt.Errorf("decode block number from '%s': %w", ss[1], err)
	}

	id.Label = ss[0]
	id.Block = uint32(n)

	return nil
}

// binEncoding encodes binary keys and values within storage CSV.
var binEncoding = base64.StdEncoding

// contractState is one element of the dumped contract state list.
type contractState struct {
	Name  string         `json:"name"`
	State state.Contract `json:"state"`
}

// dumpFiles groups the two data streams a dump consists of.
type dumpFiles struct {
	states, storage io.ReadWriteCloser
}

func (d *dumpFiles) close() {
	_ = d.storage.Close()
	_ = d.states.Close()
}

const (
	// word separator in dump file names.
	sep = "-"
	// suffix of the file with contract states.
	statesFileSuffix = "contracts.json"
)

// openDumpFiles opens both dump files in the directory. With the read flag
// the streams are read-only, otherwise the files must not exist yet and the
// streams are write-only.
func openDumpFiles(d *dumpFiles, dir string, id ID, read bool) error {
	var err error

	pathStorage := filepath.Join(dir, strings.Join([]string{id.String(), "storage.csv"}, sep))
	if !read {
		if err = checkFileNotExists(pathStorage); err != nil {
			return err
		}
	}

	pathStates := filepath.Join(dir, strings.Join([]string{id.String(), statesFileSuffix}, sep))
	if !read {
		if err = checkFileNotExists(pathStates); err != nil {
			return err
		}
	}

	var flag int
	var perm os.FileMode

	if read {
		flag = os.O_RDONLY
	} else {
		flag = os.O_CREATE | os.O_WRONLY
		perm = 0600
	}

	d.storage, err = os.OpenFile(pathStorage, flag, perm)
	if err != nil {
		return fmt.Errorf("open file with storage items: %w", err)
	}

	d.states, err = os.OpenFile(pathStates, flag, perm)
	if err != nil {
		return fmt.Errorf("open file with contract states: %w", err)
	}

	return nil
}
