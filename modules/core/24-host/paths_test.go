package host_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
)

// TestPathsAreBitExact locks in spec §6's store path layout table: these
// strings are wire-breaking if changed, since a counterparty verifies
// membership proofs against exactly these paths.
func TestPathsAreBitExact(t *testing.T) {
	require.Equal(t, "clients/07-tendermint-0/clientState", host.FullClientStatePath("07-tendermint-0"))
	require.Equal(t, "clients/07-tendermint-0/consensusStates/0-10", host.FullConsensusStatePath("07-tendermint-0", 0, 10))
	require.Equal(t, "clients/07-tendermint-0/connections", host.ClientConnectionsPath("07-tendermint-0"))
	require.Equal(t, "connections/connection-0", host.ConnectionPath("connection-0"))
	require.Equal(t, "channelEnds/ports/transfer/channels/channel-0", host.ChannelPath("transfer", "channel-0"))
	require.Equal(t, "nextSequenceSend/ports/transfer/channels/channel-0", host.NextSequenceSendPath("transfer", "channel-0"))
	require.Equal(t, "nextSequenceRecv/ports/transfer/channels/channel-0", host.NextSequenceRecvPath("transfer", "channel-0"))
	require.Equal(t, "nextSequenceAck/ports/transfer/channels/channel-0", host.NextSequenceAckPath("transfer", "channel-0"))
	require.Equal(t, "commitments/ports/transfer/channels/channel-0/sequences/1", host.PacketCommitmentPath("transfer", "channel-0", 1))
	require.Equal(t, "receipts/ports/transfer/channels/channel-0/sequences/1", host.PacketReceiptPath("transfer", "channel-0", 1))
	require.Equal(t, "acks/ports/transfer/channels/channel-0/sequences/1", host.PacketAcknowledgementPath("transfer", "channel-0", 1))
	require.Equal(t, "nextClientSequence", host.NextClientSequencePath())
	require.Equal(t, "nextConnectionSequence", host.NextConnectionSequencePath())
	require.Equal(t, "nextChannelSequence", host.NextChannelSequencePath())
}

func TestSplitPathHelpersInvertTheirConstructors(t *testing.T) {
	clientID, ok := host.SplitClientStatePath(host.FullClientStatePath("07-tendermint-0"))
	require.True(t, ok)
	require.Equal(t, "07-tendermint-0", clientID)

	_, ok = host.SplitClientStatePath(host.ClientConnectionsPath("07-tendermint-0"))
	require.False(t, ok)

	clientID, revision, height, ok := host.SplitConsensusStatePath(host.FullConsensusStatePath("07-tendermint-0", 0, 10))
	require.True(t, ok)
	require.Equal(t, "07-tendermint-0", clientID)
	require.Equal(t, uint64(0), revision)
	require.Equal(t, uint64(10), height)

	portID, channelID, ok := host.SplitChannelPath(host.ChannelPath("transfer", "channel-0"))
	require.True(t, ok)
	require.Equal(t, "transfer", portID)
	require.Equal(t, "channel-0", channelID)

	_, _, ok = host.SplitChannelPath(host.NextSequenceSendPath("transfer", "channel-0"))
	require.False(t, ok)
}

func TestSequenceCodecRoundTrips(t *testing.T) {
	require.Equal(t, uint64(0), host.DecodeSequence(nil))
	require.Equal(t, uint64(0), host.DecodeSequence([]byte{}))

	bz := host.EncodeSequence(42)
	require.Equal(t, uint64(42), host.DecodeSequence(bz))
}
