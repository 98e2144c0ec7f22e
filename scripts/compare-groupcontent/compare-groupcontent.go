package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"slices"

	"github.com/LOVE20TKM/group-contracts/rpc/group"
	"github.com/davecgh/go-spew/spew"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/pmezard/go-difflib/difflib"
)

func initClient(addr string, name string) (*rpcclient.Client, uint32, error) {
	c, err := rpcclient.New(context.Background(), addr, rpcclient.Options{})
	if err != nil {
		return nil, 0, fmt.Errorf("RPC %s: %w", name, err)
	}
	err = c.Init()
	if err != nil {
		return nil, 0, fmt.Errorf("RPC %s init: %w", name, err)
	}
	h, err := c.GetBlockCount()
	if err != nil {
		return nil, 0, fmt.Errorf("RPC %s block count: %w", name, err)
	}
	return c, h, nil
}

func getGroupContent(c *rpcclient.Client, groupHash util.Uint160) ([]*group.GroupGroup, [][]util.Uint160, error) {
	inv := invoker.New(c, nil)
	reader := group.NewReader(inv, groupHash)

	var (
		groups  []*group.GroupGroup
		members [][]util.Uint160
	)
	for id := big.NewInt(1); ; id.Add(id, big.NewInt(1)) {
		g, err := reader.Get(id)
		if err != nil { // Group IDs are sequential, the first gap is the end.
			break
		}
		groups = append(groups, g)

		sess, iter, err := reader.MembersOf(id)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list members of group %s: %w", id, err)
		}
		var mm []util.Uint160
		items, err := inv.TraverseIterator(sess, &iter, 0)
		for ; err == nil && len(items) > 0; items, err = inv.TraverseIterator(sess, &iter, 0) {
			for _, item := range items {
				b, err := item.TryBytes()
				if err != nil {
					_ = inv.TerminateSession(sess)
					return nil, nil, fmt.Errorf("failed to get bytes for member: %w", err)
				}
				acc, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					_ = inv.TerminateSession(sess)
					return nil, nil, fmt.Errorf("bad member account: %w", err)
				}
				mm = append(mm, acc)
			}
		}
		_ = inv.TerminateSession(sess)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to traverse members: %w", err)
		}
		members = append(members, mm)
	}
	return groups, members, nil
}

func groupsEqual(a, b *group.GroupGroup) bool {
	return a.ID.Cmp(b.ID) == 0 && a.Owner.Equals(b.Owner) && a.Asset.Equals(b.Asset) &&
		a.ActivityID.Cmp(b.ActivityID) == 0 && a.Active == b.Active &&
		a.ActivatedRound.Cmp(b.ActivatedRound) == 0 && a.DeactivatedRound.Cmp(b.DeactivatedRound) == 0
}

func cliMain() error {
	var ignoreHeightFlag bool
	flag.BoolVar(&ignoreHeightFlag, "ignore-height", false, "ignore height difference")
	flag.Parse()

	args := flag.Args()
	if len(args) < 3 {
		return errors.New("usage: program [--ignore-height] <FIRST_RPC_NODE> <SECOND_RPC_NODE> <GROUP_CONTRACT>")
	}

	firstNodeAddress := args[0]
	secondNodeAddress := args[1]

	groupHash, err := address.StringToUint160(args[2])
	if err != nil {
		return fmt.Errorf("bad contract address: %w", err)
	}

	ca, ha, err := initClient(firstNodeAddress, "A")
	if err != nil {
		return err
	}
	cb, hb, err := initClient(secondNodeAddress, "B")
	if err != nil {
		return err
	}
	if ha != hb {
		var diff = hb - ha
		if ha > hb {
			diff = ha - hb
		}
		if diff > 10 && !ignoreHeightFlag { // Allow some height drift.
			return fmt.Errorf("chains have different heights: %d vs %d", ha, hb)
		}
	}
	fmt.Printf("RPC %s height: %d\nRPC %s height: %d\n", firstNodeAddress, ha, secondNodeAddress, hb)

	groupsA, membersA, err := getGroupContent(ca, groupHash)
	if err != nil {
		return fmt.Errorf("RPC %s: %w", firstNodeAddress, err)
	}
	groupsB, membersB, err := getGroupContent(cb, groupHash)
	if err != nil {
		return fmt.Errorf("RPC %s: %w", secondNodeAddress, err)
	}

	var (
		errTxt                  string
		groupsDiff, membersDiff int
	)
	if len(groupsA) != len(groupsB) {
		errTxt = fmt.Sprintf("number of groups mismatch: %d vs %d", len(groupsA), len(groupsB))
	} else {
		fmt.Printf("number of groups checked: %d\n", len(groupsA))
		for i := range groupsA {
			if !groupsEqual(groupsA[i], groupsB[i]) {
				groupsDiff++
				dumpContentDiff("group", i, firstNodeAddress, secondNodeAddress, groupsA[i], groupsB[i])
			}
			if !slices.Equal(membersA[i], membersB[i]) {
				membersDiff++
				dumpContentDiff("member list", i, firstNodeAddress, secondNodeAddress, membersA[i], membersB[i])
			}
		}
	}
	if groupsDiff != 0 {
		if len(errTxt) != 0 {
			errTxt += "; "
		}
		errTxt += fmt.Sprintf("%d groups mismatch", groupsDiff)
	}
	if membersDiff != 0 {
		if len(errTxt) != 0 {
			errTxt += "; "
		}
		errTxt += fmt.Sprintf("%d member lists mismatch", membersDiff)
	}

	if len(errTxt) != 0 {
		return errors.New(errTxt)
	}
	return nil
}

func dumpContentDiff(itemName string, i int, a string, b string, itemA any, itemB any) {
	fmt.Printf("%s %d:\n", itemName, i)
	da := spew.Sdump(itemA)
	db := spew.Sdump(itemB)
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(da),
		B:        difflib.SplitLines(db),
		FromFile: a,
		ToFile:   b,
		Context:  1,
	})
	fmt.Println(diff)
}

func main() {
	if err := cliMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
