package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestCompileContracts(t *testing.T) {
	names := map[string]string{
		activityPath: "Group Activity",
		tokenPath:    "Group Token",
		groupPath:    "Group Registry",
		verifyPath:   "Group Verify",
		distrustPath: "Group Distrust",
		rewardPath:   "Group Reward",
	}

	var sender util.Uint160
	for p, name := range names {
		c, err := ContractInfo(sender, p)
		require.NoError(t, err, p)
		require.Equal(t, name, c.Manifest.Name)
		require.NotEqual(t, util.Uint160{}, c.Hash)
	}
}
