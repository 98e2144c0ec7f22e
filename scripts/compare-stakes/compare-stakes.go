package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/LOVE20TKM/group-contracts/rpc/group"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

func initClient(addr string) (*rpcclient.Client, error) {
	c, err := rpcclient.New(context.Background(), addr, rpcclient.Options{})
	if err != nil {
		return nil, fmt.Errorf("RPC %s: %w", addr, err)
	}
	err = c.Init()
	if err != nil {
		return nil, fmt.Errorf("RPC %s init: %w", addr, err)
	}
	return c, nil
}

func memberStakes(inv *invoker.Invoker, reader *group.ContractReader, id *big.Int) (*big.Int, int, error) {
	sess, iter, err := reader.MembersOf(id)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members of group %s: %w", id, err)
	}
	defer inv.TerminateSession(sess)

	var (
		sum   = new(big.Int)
		count int
	)
	items, err := inv.TraverseIterator(sess, &iter, 0)
	for ; err == nil && len(items) > 0; items, err = inv.TraverseIterator(sess, &iter, 0) {
		for _, item := range items {
			b, err := item.TryBytes()
			if err != nil {
				return nil, 0, fmt.Errorf("failed to get bytes for member: %w", err)
			}
			acc, err := util.Uint160DecodeBytesBE(b)
			if err != nil {
				return nil, 0, fmt.Errorf("bad member account: %w", err)
			}
			staked, err := reader.StakedOf(id, acc)
			if err != nil {
				return nil, 0, fmt.Errorf("failed to get stake of %s: %w", address.Uint160ToString(acc), err)
			}
			sum.Add(sum, staked)
			count++
		}
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to traverse members: %w", err)
	}
	return sum, count, nil
}

func cliMain() error {
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		return errors.New("usage: program <RPC_NODE> <GROUP_CONTRACT>")
	}

	groupHash, err := address.StringToUint160(args[1])
	if err != nil {
		return fmt.Errorf("bad contract address: %w", err)
	}
	c, err := initClient(args[0])
	if err != nil {
		return err
	}

	inv := invoker.New(c, nil)
	reader := group.NewReader(inv, groupHash)

	var (
		errTxt     string
		stakesDiff int
		assetTotal = make(map[util.Uint160]*big.Int)
		assetOrder []util.Uint160
	)
	for id := big.NewInt(1); ; id.Add(id, big.NewInt(1)) {
		g, err := reader.Get(id)
		if err != nil { // Group IDs are sequential, the first gap is the end.
			fmt.Println("number of groups checked:", id.Int64()-1)
			break
		}

		sum, count, err := memberStakes(inv, reader, id)
		if err != nil {
			return err
		}
		total, err := reader.TotalStaked(id)
		if err != nil {
			return fmt.Errorf("failed to get total stake of group %s: %w", id, err)
		}
		if sum.Cmp(total) != 0 {
			stakesDiff++
			fmt.Printf("group %s (%d members): member stakes %s, total staked %s\n", id, count, sum, total)
		}

		if _, ok := assetTotal[g.Asset]; !ok {
			assetTotal[g.Asset] = new(big.Int)
			assetOrder = append(assetOrder, g.Asset)
		}
		assetTotal[g.Asset].Add(assetTotal[g.Asset], total)
	}
	if stakesDiff != 0 {
		errTxt = fmt.Sprintf("%d groups with stake mismatch", stakesDiff)
	}

	var balancesDiff int
	for _, asset := range assetOrder {
		n17 := nep17.NewReader(inv, asset)
		dec, err := n17.Decimals()
		if err != nil {
			return fmt.Errorf("failed to get decimals of %s: %w", asset.StringLE(), err)
		}
		b, err := n17.BalanceOf(groupHash)
		if err != nil {
			return fmt.Errorf("failed to get balance in %s: %w", asset.StringLE(), err)
		}
		if b.Cmp(assetTotal[asset]) != 0 {
			balancesDiff++
			fmt.Printf("asset %s: contract balance %s, sum of stakes %s\n", asset.StringLE(),
				fixedn.ToString(b, dec), fixedn.ToString(assetTotal[asset], dec))
		}
	}
	if balancesDiff != 0 {
		if len(errTxt) != 0 {
			errTxt += "; "
		}
		errTxt += fmt.Sprintf("%d assets with balance mismatch", balancesDiff)
	}

	if len(errTxt) != 0 {
		return errors.New(errTxt)
	}
	return nil
}

func main() {
	if err := cliMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
