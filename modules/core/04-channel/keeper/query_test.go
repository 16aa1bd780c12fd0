package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
	ibctesting "github.com/tokenize-x/ibc-core/modules/core/testing"
)

// TestListChannels exercises the list-channels query surface (spec §6)
// against a chain that has opened one channel.
func TestListChannels(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)
	channelIDA, _, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.UNORDERED)

	channels, err := chainA.ChannelKeeper.ListChannels(ctx)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	require.Equal(t, testPort, channels[0].PortID)
	require.Equal(t, channelIDA, channels[0].ChannelID)
	require.Equal(t, types.OPEN, channels[0].Channel.State)
}
