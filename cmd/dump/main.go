package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/LOVE20TKM/group-contracts/tests/dump"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// namedContract is a contract of the deployed suite referenced by its script
// hash. There is no name service in the suite, hashes are passed explicitly.
type namedContract struct {
	name string
	hash util.Uint160
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	chainLabel := flag.String("label", "", "Label of the blockchain environment (e.g. 'testnet')")
	verbose := flag.Bool("verbose", false, "Log storage keys of the dumped contracts")

	contractAddrs := map[string]*string{}
	for _, name := range []string{
		"activity",
		"token",
		"group",
		"verify",
		"distrust",
		"reward",
	} {
		contractAddrs[name] = flag.String(name, "",
			fmt.Sprintf("LE script hash of the %s contract", name))
	}

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *chainLabel == "":
		log.Fatal("missing blockchain label")
	}

	var contracts []namedContract
	for name, addr := range contractAddrs {
		if *addr == "" {
			log.Fatalf("missing script hash of the '%s' contract", name)
		}

		h, err := util.Uint160DecodeStringLE(*addr)
		if err != nil {
			log.Fatal(fmt.Errorf("decode script hash of the '%s' contract: %w", name, err))
		}

		contracts = append(contracts, namedContract{name: name, hash: h})
	}

	const rootDir = "testdata"

	err := os.MkdirAll(rootDir, 0700)
	if err != nil {
		log.Fatal(fmt.Errorf("create root dir: %w", err))
	}

	err = _dump(*neoRPCEndpoint, rootDir, *chainLabel, contracts, *verbose)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("contracts are successfully dumped to '%s/'\n", rootDir)
}

func _dump(neoBlockchainRPCEndpoint, rootDir, label string, contracts []namedContract, verbose bool) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	d, err := dump.NewCreator(rootDir, dump.ID{
		Label: label,
		Block: b.currentBlock,
	})
	if err != nil {
		return fmt.Errorf("init local dumper: %w", err)
	}

	defer d.Close()

	err = overtakeContracts(b, d, contracts, verbose)
	if err != nil {
		return err
	}

	err = d.Flush()
	if err != nil {
		return fmt.Errorf("flush dump: %w", err)
	}

	return nil
}

func overtakeContracts(from *remoteBlockchain, to *dump.Creator, contracts []namedContract, verbose bool) error {
	for _, c := range contracts {
		log.Printf("Processing contract '%s'...\n", c.name)

		ctr, err := from.rpc.GetContractStateByHash(c.hash)
		if err != nil {
			return fmt.Errorf("get '%s' contract state by hash '%s': %w", c.name, c.hash.StringLE(), err)
		}

		s := to.AddContract(c.name, *ctr)

		write := s.Write
		if verbose {
			write = func(key, value []byte) error {
				log.Printf("%s: key %s\n", c.name, base58.Encode(key))
				return s.Write(key, value)
			}
		}

		err = from.iterateContractStorage(c.hash, write)
		if err != nil {
			return fmt.Errorf("iterate '%s' contract storage: %w", c.name, err)
		}
	}

	return nil
}
