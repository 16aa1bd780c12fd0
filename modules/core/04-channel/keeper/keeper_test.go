package keeper_test

import (
	"encoding/binary"
	"testing"

	"cosmossdk.io/log"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	clientkeeper "github.com/tokenize-x/ibc-core/modules/core/02-client/keeper"
	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	connectiontypes "github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
	ibctesting "github.com/tokenize-x/ibc-core/modules/core/testing"
	"github.com/tokenize-x/ibc-core/modules/light-clients/mock"
)

func newTestContext() sdk.Context {
	return sdk.NewContext(nil, cmtproto.Header{}, false, log.NewNopLogger()).
		WithEventManager(sdk.NewEventManager())
}

func createMockClient(t *testing.T, ctx sdk.Context, chain *ibctesting.Chain) string {
	t.Helper()
	msg := clienttypes.MsgCreateClient{
		ClientState:    mock.NewClientState(exported.NewHeight(0, 1)),
		ConsensusState: &mock.ConsensusState{Timestamp: 1, Root: []byte("root")},
		Signer:         "signer",
	}
	require.NoError(t, clientkeeper.ValidateCreateClient(msg))
	clientID, err := chain.ClientKeeper.ExecuteCreateClient(ctx, msg)
	require.NoError(t, err)
	return clientID
}

// advanceClient updates clientID on chain to a new height, simulating the
// counterparty chain progressing so a packet timeout becomes provable
// against a later proof height than the one the packet was sent at.
func advanceClient(t *testing.T, ctx sdk.Context, chain *ibctesting.Chain, clientID string, height uint64) {
	t.Helper()
	updateMsg := clienttypes.MsgUpdateClient{
		ClientID: clientID,
		Header:   &mock.Header{Height: exported.NewHeight(0, height), Timestamp: height, Root: []byte("root")},
		Signer:   "signer",
	}
	cs, err := chain.ClientKeeper.ValidateUpdateClient(ctx, updateMsg)
	require.NoError(t, err)
	require.NoError(t, chain.ClientKeeper.ExecuteUpdateClient(ctx, updateMsg, cs))
}

// openConnection drives the four-step connection handshake between chainA
// and chainB exactly as TestConnectionHandshake in the connection keeper's
// own test does, returning each side's resulting Open connection id.
func openConnection(t *testing.T, ctx sdk.Context, chainA, chainB *ibctesting.Chain) (connIDA, connIDB string) {
	t.Helper()

	clientIDA := createMockClient(t, ctx, chainA)
	clientIDB := createMockClient(t, ctx, chainB)

	initMsg := connectiontypes.MsgConnectionOpenInit{
		ClientId:             clientIDA,
		CounterpartyClientId: clientIDB,
		CounterpartyPrefix:   ibctesting.DefaultMerklePrefix,
		Signer:               "a-signer",
	}
	require.NoError(t, chainA.ConnectionKeeper.ValidateConnOpenInit(ctx, initMsg))
	connIDA, err := chainA.ConnectionKeeper.ExecuteConnOpenInit(ctx, initMsg)
	require.NoError(t, err)

	connA, err := chainA.ConnectionKeeper.GetConnection(ctx, connIDA)
	require.NoError(t, err)

	selfClientState := mock.NewClientState(exported.NewHeight(0, 1))
	consStateB, err := chainB.ClientKeeper.GetConsensusState(ctx, clientIDB, exported.NewHeight(0, 1))
	require.NoError(t, err)

	tryMsg := connectiontypes.MsgConnectionOpenTry{
		ClientId:                 clientIDB,
		CounterpartyClientId:     clientIDA,
		CounterpartyConnectionId: connIDA,
		CounterpartyPrefix:       ibctesting.DefaultMerklePrefix,
		CounterpartyVersions:     []connectiontypes.Version{connectiontypes.DefaultIBCVersion},
		ClientState:              selfClientState,
		ProofHeight:              exported.NewHeight(0, 1),
		ProofInit:                ibctesting.ConnectionProof(connA),
		ProofClient:              ibctesting.ClientStateProof(selfClientState),
		ProofConsensus:           ibctesting.ConsensusStateProof(mock.ClientType, consStateB),
		ConsensusHeight:          exported.NewHeight(0, 1),
		Signer:                   "b-signer",
	}
	version, err := chainB.ConnectionKeeper.ValidateConnOpenTry(ctx, tryMsg)
	require.NoError(t, err)
	connIDB, err = chainB.ConnectionKeeper.ExecuteConnOpenTry(ctx, tryMsg, version)
	require.NoError(t, err)

	connB, err := chainB.ConnectionKeeper.GetConnection(ctx, connIDB)
	require.NoError(t, err)

	ackClientState := mock.NewClientState(exported.NewHeight(0, 1))
	consStateA, err := chainA.ClientKeeper.GetConsensusState(ctx, clientIDA, exported.NewHeight(0, 1))
	require.NoError(t, err)

	ackMsg := connectiontypes.MsgConnectionOpenAck{
		ConnectionId:             connIDA,
		CounterpartyConnectionId: connIDB,
		Version:                  &version,
		ClientState:              ackClientState,
		ProofHeight:              exported.NewHeight(0, 1),
		ProofTry:                 ibctesting.ConnectionProof(connB),
		ProofClient:              ibctesting.ClientStateProof(ackClientState),
		ProofConsensus:           ibctesting.ConsensusStateProof(mock.ClientType, consStateA),
		ConsensusHeight:          exported.NewHeight(0, 1),
		Signer:                   "a-signer",
	}
	connA, err = chainA.ConnectionKeeper.ValidateConnOpenAck(ctx, ackMsg)
	require.NoError(t, err)
	require.NoError(t, chainA.ConnectionKeeper.ExecuteConnOpenAck(ctx, ackMsg, connA))
	connA, err = chainA.ConnectionKeeper.GetConnection(ctx, connIDA)
	require.NoError(t, err)

	confirmMsg := connectiontypes.MsgConnectionOpenConfirm{
		ConnectionId: connIDB,
		ProofAck:     ibctesting.ConnectionProof(connA),
		ProofHeight:  exported.NewHeight(0, 1),
		Signer:       "b-signer",
	}
	connB, err = chainB.ConnectionKeeper.ValidateConnOpenConfirm(ctx, confirmMsg)
	require.NoError(t, err)
	require.NoError(t, chainB.ConnectionKeeper.ExecuteConnOpenConfirm(ctx, confirmMsg, connB))

	return connIDA, connIDB
}

const testPort = "transfer"

// openChannel drives the four-step channel open handshake over an already
// Open connection pair, returning each side's channel id and the version
// the two chains settled on.
func openChannel(t *testing.T, ctx sdk.Context, chainA, chainB *ibctesting.Chain, connIDA, connIDB string, ordering types.Order) (channelIDA, channelIDB, version string) {
	t.Helper()
	version = "ics20-1"

	initMsg := types.MsgChannelOpenInit{
		PortId: testPort,
		Channel: types.ChannelEnd{
			Ordering:       ordering,
			Counterparty:   types.Counterparty{PortId: testPort},
			ConnectionHops: []string{connIDA},
		},
		Signer: "a-signer",
	}
	require.NoError(t, chainA.ChannelKeeper.ValidateChanOpenInit(ctx, initMsg))
	channelIDA, err := chainA.ChannelKeeper.ExecuteChanOpenInit(ctx, initMsg, version)
	require.NoError(t, err)

	channelA, err := chainA.ChannelKeeper.GetChannel(ctx, testPort, channelIDA)
	require.NoError(t, err)

	tryMsg := types.MsgChannelOpenTry{
		PortId: testPort,
		Channel: types.ChannelEnd{
			Ordering:       ordering,
			Counterparty:   types.Counterparty{PortId: testPort, ChannelId: channelIDA},
			ConnectionHops: []string{connIDB},
		},
		CounterpartyVersion: channelA.Version,
		ProofInit:           ibctesting.ChannelProof(channelA),
		ProofHeight:         exported.NewHeight(0, 1),
		Signer:              "b-signer",
	}
	require.NoError(t, chainB.ChannelKeeper.ValidateChanOpenTry(ctx, tryMsg))
	channelIDB, err = chainB.ChannelKeeper.ExecuteChanOpenTry(ctx, tryMsg, version)
	require.NoError(t, err)

	channelB, err := chainB.ChannelKeeper.GetChannel(ctx, testPort, channelIDB)
	require.NoError(t, err)

	ackMsg := types.MsgChannelOpenAck{
		PortId:                testPort,
		ChannelId:             channelIDA,
		CounterpartyChannelId: channelIDB,
		CounterpartyVersion:   channelB.Version,
		ProofTry:              ibctesting.ChannelProof(channelB),
		ProofHeight:           exported.NewHeight(0, 1),
		Signer:                "a-signer",
	}
	channelA, err = chainA.ChannelKeeper.ValidateChanOpenAck(ctx, ackMsg)
	require.NoError(t, err)
	require.NoError(t, chainA.ChannelKeeper.ExecuteChanOpenAck(ctx, ackMsg, channelA))
	channelA, err = chainA.ChannelKeeper.GetChannel(ctx, testPort, channelIDA)
	require.NoError(t, err)

	confirmMsg := types.MsgChannelOpenConfirm{
		PortId:      testPort,
		ChannelId:   channelIDB,
		ProofAck:    ibctesting.ChannelProof(channelA),
		ProofHeight: exported.NewHeight(0, 1),
		Signer:      "b-signer",
	}
	channelB, err = chainB.ChannelKeeper.ValidateChanOpenConfirm(ctx, confirmMsg)
	require.NoError(t, err)
	require.NoError(t, chainB.ChannelKeeper.ExecuteChanOpenConfirm(ctx, confirmMsg, channelB))

	return channelIDA, channelIDB, version
}

func TestChannelOpenHandshake(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)

	channelIDA, channelIDB, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.UNORDERED)

	channelA, err := chainA.ChannelKeeper.GetChannel(ctx, testPort, channelIDA)
	require.NoError(t, err)
	require.Equal(t, types.OPEN, channelA.State)
	require.Equal(t, channelIDB, channelA.Counterparty.ChannelId)

	channelB, err := chainB.ChannelKeeper.GetChannel(ctx, testPort, channelIDB)
	require.NoError(t, err)
	require.Equal(t, types.OPEN, channelB.State)
	require.Equal(t, channelIDA, channelB.Counterparty.ChannelId)
}

func TestChannelCloseHandshake(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)
	channelIDA, channelIDB, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.UNORDERED)

	channelA, err := chainA.ChannelKeeper.ValidateChanCloseInit(ctx, types.MsgChannelCloseInit{
		PortId: testPort, ChannelId: channelIDA, Signer: "a-signer",
	})
	require.NoError(t, err)
	require.NoError(t, chainA.ChannelKeeper.ExecuteChanCloseInit(ctx, types.MsgChannelCloseInit{
		PortId: testPort, ChannelId: channelIDA, Signer: "a-signer",
	}, channelA))

	channelA, err = chainA.ChannelKeeper.GetChannel(ctx, testPort, channelIDA)
	require.NoError(t, err)
	require.Equal(t, types.CLOSED, channelA.State)

	confirmMsg := types.MsgChannelCloseConfirm{
		PortId:      testPort,
		ChannelId:   channelIDB,
		ProofInit:   ibctesting.ChannelProof(channelA),
		ProofHeight: exported.NewHeight(0, 1),
		Signer:      "b-signer",
	}
	channelB, err := chainB.ChannelKeeper.ValidateChanCloseConfirm(ctx, confirmMsg)
	require.NoError(t, err)
	require.NoError(t, chainB.ChannelKeeper.ExecuteChanCloseConfirm(ctx, confirmMsg, channelB))

	channelB, err = chainB.ChannelKeeper.GetChannel(ctx, testPort, channelIDB)
	require.NoError(t, err)
	require.Equal(t, types.CLOSED, channelB.State)
}

// TestChanCloseConfirmRejectsWrongState checks ValidateChanCloseConfirm
// rejects a channel that is not Open (e.g. already Closed), mirroring the
// connection subsystem's "OpenConfirm on wrong state fails" scenario.
func TestChanCloseConfirmRejectsWrongState(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)
	channelIDA, channelIDB, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.UNORDERED)

	channelB, err := chainB.ChannelKeeper.GetChannel(ctx, testPort, channelIDB)
	require.NoError(t, err)
	channelB.State = types.CLOSED
	require.NoError(t, chainB.ChannelKeeper.SetChannel(ctx, testPort, channelIDB, channelB))

	channelA, err := chainA.ChannelKeeper.GetChannel(ctx, testPort, channelIDA)
	require.NoError(t, err)
	_, err = chainB.ChannelKeeper.ValidateChanCloseConfirm(ctx, types.MsgChannelCloseConfirm{
		PortId:      testPort,
		ChannelId:   channelIDB,
		ProofInit:   ibctesting.ChannelProof(channelA),
		ProofHeight: exported.NewHeight(0, 1),
		Signer:      "b-signer",
	})
	require.Error(t, err)
}

// TestChanCloseConfirmRejectsWrongCounterparty checks the proof verification
// rejects a CloseConfirm whose proof was built against a different
// counterparty channel id than the one our own channel actually points at.
func TestChanCloseConfirmRejectsWrongCounterparty(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)
	channelIDA, channelIDB, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.UNORDERED)

	channelA, err := chainA.ChannelKeeper.GetChannel(ctx, testPort, channelIDA)
	require.NoError(t, err)
	channelA.State = types.CLOSED
	channelA.Counterparty.ChannelId = "channel-99"
	require.NoError(t, chainA.ChannelKeeper.SetChannel(ctx, testPort, channelIDA, channelA))

	_, err = chainB.ChannelKeeper.ValidateChanCloseConfirm(ctx, types.MsgChannelCloseConfirm{
		PortId:      testPort,
		ChannelId:   channelIDB,
		ProofInit:   ibctesting.ChannelProof(channelA),
		ProofHeight: exported.NewHeight(0, 1),
		Signer:      "b-signer",
	})
	require.Error(t, err)
}

// TestChanCloseConfirmRejectsBadProof checks a CloseConfirm carrying bytes
// that don't match the counterparty's actually-stored channel end fails
// proof verification rather than succeeding on an unrelated channel state.
func TestChanCloseConfirmRejectsBadProof(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)
	_, channelIDB, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.UNORDERED)

	_, err := chainB.ChannelKeeper.ValidateChanCloseConfirm(ctx, types.MsgChannelCloseConfirm{
		PortId:      testPort,
		ChannelId:   channelIDB,
		ProofInit:   []byte("forged-proof-bytes"),
		ProofHeight: exported.NewHeight(0, 1),
		Signer:      "b-signer",
	})
	require.Error(t, err)
}

// TestPacketLifecycleUnordered exercises Send -> Recv -> Acknowledge over an
// UNORDERED channel and confirms a second delivery of the same sequence is
// rejected as a replay.
func TestPacketLifecycleUnordered(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)
	channelIDA, channelIDB, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.UNORDERED)

	packet := types.Packet{
		Sequence:           1,
		SourcePort:         testPort,
		SourceChannel:      channelIDA,
		DestinationPort:    testPort,
		DestinationChannel: channelIDB,
		Data:               []byte("hello"),
		TimeoutHeight:      exported.NewHeight(0, 100),
	}

	require.NoError(t, chainA.ChannelKeeper.ValidateSendPacket(ctx, packet))
	require.NoError(t, chainA.ChannelKeeper.ExecuteSendPacket(ctx, packet))

	commitment, err := chainA.ChannelKeeper.GetPacketCommitment(ctx, testPort, channelIDA, packet.Sequence)
	require.NoError(t, err)
	require.Equal(t, types.CommitPacket(packet), commitment)

	recvMsg := types.MsgRecvPacket{
		Packet:          packet,
		ProofCommitment: ibctesting.ProofOf(types.CommitPacket(packet)),
		ProofHeight:     exported.NewHeight(0, 1),
		Signer:          "b-signer",
	}
	require.NoError(t, chainB.ChannelKeeper.ValidateRecvPacket(ctx, recvMsg))
	channelB, err := chainB.ChannelKeeper.GetChannel(ctx, testPort, channelIDB)
	require.NoError(t, err)
	ack := types.NewResultAcknowledgement([]byte("ok"))
	require.NoError(t, chainB.ChannelKeeper.ExecuteRecvPacket(ctx, packet, channelB, ack))

	has, err := chainB.ChannelKeeper.HasPacketReceipt(ctx, testPort, channelIDB, packet.Sequence)
	require.NoError(t, err)
	require.True(t, has)

	// Replaying the same sequence must be rejected.
	require.Error(t, chainB.ChannelKeeper.ValidateRecvPacket(ctx, recvMsg))

	ackBz, err := ack.Marshal()
	require.NoError(t, err)
	ackCommitment := types.CommitAcknowledgement(ackBz)

	ackMsg := types.MsgAcknowledgement{
		Packet:          packet,
		Acknowledgement: ackBz,
		ProofAcked:      ibctesting.ProofOf(ackCommitment),
		ProofHeight:     exported.NewHeight(0, 1),
		Signer:          "a-signer",
	}
	channelA, err := chainA.ChannelKeeper.ValidateAcknowledgePacket(ctx, ackMsg)
	require.NoError(t, err)
	require.NoError(t, chainA.ChannelKeeper.ExecuteAcknowledgePacket(ctx, ackMsg, channelA))

	commitment, err = chainA.ChannelKeeper.GetPacketCommitment(ctx, testPort, channelIDA, packet.Sequence)
	require.NoError(t, err)
	require.Nil(t, commitment)
}

// TestPacketLifecycleOrdered confirms an ORDERED channel enforces strict
// sequencing on both the receive and the acknowledge path.
func TestPacketLifecycleOrdered(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)
	channelIDA, channelIDB, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.ORDERED)

	packet := types.Packet{
		Sequence:           1,
		SourcePort:         testPort,
		SourceChannel:      channelIDA,
		DestinationPort:    testPort,
		DestinationChannel: channelIDB,
		Data:               []byte("hello"),
		TimeoutHeight:      exported.NewHeight(0, 100),
	}
	require.NoError(t, chainA.ChannelKeeper.ValidateSendPacket(ctx, packet))
	require.NoError(t, chainA.ChannelKeeper.ExecuteSendPacket(ctx, packet))

	// Out-of-order recv must fail: next expected recv sequence is 1, not 2.
	outOfOrder := packet
	outOfOrder.Sequence = 2
	require.Error(t, chainB.ChannelKeeper.ValidateRecvPacket(ctx, types.MsgRecvPacket{
		Packet:          outOfOrder,
		ProofCommitment: ibctesting.ProofOf(types.CommitPacket(outOfOrder)),
		ProofHeight:     exported.NewHeight(0, 1),
		Signer:          "b-signer",
	}))

	recvMsg := types.MsgRecvPacket{
		Packet:          packet,
		ProofCommitment: ibctesting.ProofOf(types.CommitPacket(packet)),
		ProofHeight:     exported.NewHeight(0, 1),
		Signer:          "b-signer",
	}
	require.NoError(t, chainB.ChannelKeeper.ValidateRecvPacket(ctx, recvMsg))
	channelB, err := chainB.ChannelKeeper.GetChannel(ctx, testPort, channelIDB)
	require.NoError(t, err)
	ack := types.NewResultAcknowledgement([]byte("ok"))
	require.NoError(t, chainB.ChannelKeeper.ExecuteRecvPacket(ctx, packet, channelB, ack))

	nextRecv, err := chainB.ChannelKeeper.GetNextSequenceRecv(ctx, testPort, channelIDB)
	require.NoError(t, err)
	require.Equal(t, uint64(2), nextRecv)

	ackBz, err := ack.Marshal()
	require.NoError(t, err)
	ackCommitment := types.CommitAcknowledgement(ackBz)
	ackMsg := types.MsgAcknowledgement{
		Packet:          packet,
		Acknowledgement: ackBz,
		ProofAcked:      ibctesting.ProofOf(ackCommitment),
		ProofHeight:     exported.NewHeight(0, 1),
		Signer:          "a-signer",
	}
	channelA, err := chainA.ChannelKeeper.ValidateAcknowledgePacket(ctx, ackMsg)
	require.NoError(t, err)
	require.NoError(t, chainA.ChannelKeeper.ExecuteAcknowledgePacket(ctx, ackMsg, channelA))

	nextAck, err := chainA.ChannelKeeper.GetNextSequenceAck(ctx, testPort, channelIDA)
	require.NoError(t, err)
	require.Equal(t, uint64(2), nextAck)
}

// TestAcknowledgePacketOrderedRejectsOutOfOrderWithoutDeletingCommitment
// acknowledges sequence 2 before sequence 1 on an ORDERED channel and
// confirms ValidateAcknowledgePacket rejects it without ever touching the
// store: the commitment for sequence 2 must still be there afterward, so the
// packet can still be legitimately acknowledged or timed out later.
func TestAcknowledgePacketOrderedRejectsOutOfOrderWithoutDeletingCommitment(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)
	channelIDA, channelIDB, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.ORDERED)

	packet1 := types.Packet{
		Sequence:           1,
		SourcePort:         testPort,
		SourceChannel:      channelIDA,
		DestinationPort:    testPort,
		DestinationChannel: channelIDB,
		Data:               []byte("hello-1"),
		TimeoutHeight:      exported.NewHeight(0, 100),
	}
	require.NoError(t, chainA.ChannelKeeper.ValidateSendPacket(ctx, packet1))
	require.NoError(t, chainA.ChannelKeeper.ExecuteSendPacket(ctx, packet1))

	packet2 := packet1
	packet2.Sequence = 2
	packet2.Data = []byte("hello-2")
	require.NoError(t, chainA.ChannelKeeper.ValidateSendPacket(ctx, packet2))
	require.NoError(t, chainA.ChannelKeeper.ExecuteSendPacket(ctx, packet2))

	ack := types.NewResultAcknowledgement([]byte("ok"))
	ackBz, err := ack.Marshal()
	require.NoError(t, err)
	ackCommitment := types.CommitAcknowledgement(ackBz)

	ackMsg2 := types.MsgAcknowledgement{
		Packet:          packet2,
		Acknowledgement: ackBz,
		ProofAcked:      ibctesting.ProofOf(ackCommitment),
		ProofHeight:     exported.NewHeight(0, 1),
		Signer:          "a-signer",
	}
	_, err = chainA.ChannelKeeper.ValidateAcknowledgePacket(ctx, ackMsg2)
	require.Error(t, err)

	commitment2, err := chainA.ChannelKeeper.GetPacketCommitment(ctx, testPort, channelIDA, packet2.Sequence)
	require.NoError(t, err)
	require.Equal(t, types.CommitPacket(packet2), commitment2)

	nextAck, err := chainA.ChannelKeeper.GetNextSequenceAck(ctx, testPort, channelIDA)
	require.NoError(t, err)
	require.Equal(t, uint64(1), nextAck)
}

// TestSendPacketRejectsElapsedTimeout checks ValidateSendPacket rejects a
// packet whose timeout height does not outlive the counterparty's latest
// known height, rather than letting ExecuteSendPacket commit a packet that
// could never be received before it allegedly times out.
func TestSendPacketRejectsElapsedTimeout(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)
	channelIDA, channelIDB, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.UNORDERED)

	packet := types.Packet{
		Sequence:           1,
		SourcePort:         testPort,
		SourceChannel:      channelIDA,
		DestinationPort:    testPort,
		DestinationChannel: channelIDB,
		Data:               []byte("hello"),
		TimeoutHeight:      exported.NewHeight(0, 1),
	}
	require.Error(t, chainA.ChannelKeeper.ValidateSendPacket(ctx, packet))

	commitment, err := chainA.ChannelKeeper.GetPacketCommitment(ctx, testPort, channelIDA, packet.Sequence)
	require.NoError(t, err)
	require.Nil(t, commitment)
}

// TestSendPacketRejectsFrozenClient checks ValidateSendPacket refuses to send
// over a connection whose client has been frozen by a misbehaviour
// submission.
func TestSendPacketRejectsFrozenClient(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)
	channelIDA, channelIDB, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.UNORDERED)

	connA, err := chainA.ConnectionKeeper.GetConnection(ctx, connIDA)
	require.NoError(t, err)

	evidence := clienttypes.MsgSubmitMisbehaviour{
		ClientID: connA.ClientId,
		Misbehaviour: &mock.Misbehaviour{
			ClientID: connA.ClientId,
			Header1:  &mock.Header{Height: exported.NewHeight(0, 5), Timestamp: 5, Root: []byte("root-a")},
			Header2:  &mock.Header{Height: exported.NewHeight(0, 5), Timestamp: 5, Root: []byte("root-b")},
		},
		Signer: "signer",
	}
	cs, err := chainA.ClientKeeper.ValidateSubmitMisbehaviour(ctx, evidence)
	require.NoError(t, err)
	require.NoError(t, chainA.ClientKeeper.ExecuteSubmitMisbehaviour(ctx, evidence, cs))

	packet := types.Packet{
		Sequence:           1,
		SourcePort:         testPort,
		SourceChannel:      channelIDA,
		DestinationPort:    testPort,
		DestinationChannel: channelIDB,
		Data:               []byte("hello"),
		TimeoutHeight:      exported.NewHeight(0, 100),
	}
	require.Error(t, chainA.ChannelKeeper.ValidateSendPacket(ctx, packet))
}

// TestTimeoutPacketUnordered sends a packet that already exceeds its timeout
// height by the time it is proven never received, and confirms TimeoutPacket
// removes the commitment.
func TestTimeoutPacketUnordered(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)
	channelIDA, channelIDB, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.UNORDERED)

	packet := types.Packet{
		Sequence:           1,
		SourcePort:         testPort,
		SourceChannel:      channelIDA,
		DestinationPort:    testPort,
		DestinationChannel: channelIDB,
		Data:               []byte("hello"),
		TimeoutHeight:      exported.NewHeight(0, 2),
	}
	require.NoError(t, chainA.ChannelKeeper.ValidateSendPacket(ctx, packet))
	require.NoError(t, chainA.ChannelKeeper.ExecuteSendPacket(ctx, packet))

	// Advance chainA's view of chainB past the packet's timeout height before
	// proving the timeout, so ValidateSendPacket's own elapsed-timeout check
	// (which ran against height 1) and ValidateTimeoutPacket's (which runs
	// against height 3) aren't contradicting each other.
	connA, err := chainA.ConnectionKeeper.GetConnection(ctx, connIDA)
	require.NoError(t, err)
	advanceClient(t, ctx, chainA, connA.ClientId, 3)

	timeoutMsg := types.MsgTimeout{
		Packet:          packet,
		ProofUnreceived: ibctesting.AbsenceProof(),
		ProofHeight:     exported.NewHeight(0, 3),
		Signer:          "a-signer",
	}
	channel, err := chainA.ChannelKeeper.ValidateTimeoutPacket(ctx, timeoutMsg)
	require.NoError(t, err)
	require.NoError(t, chainA.ChannelKeeper.ExecuteTimeoutPacket(ctx, packet, channel))

	commitment, err := chainA.ChannelKeeper.GetPacketCommitment(ctx, testPort, channelIDA, packet.Sequence)
	require.NoError(t, err)
	require.Nil(t, commitment)
}

// TestTimeoutPacketOrderedClosesChannel confirms a timed-out packet on an
// ORDERED channel closes the channel (spec's invariant 3).
func TestTimeoutPacketOrderedClosesChannel(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()
	connIDA, connIDB := openConnection(t, ctx, chainA, chainB)
	channelIDA, channelIDB, _ := openChannel(t, ctx, chainA, chainB, connIDA, connIDB, types.ORDERED)

	packet := types.Packet{
		Sequence:           1,
		SourcePort:         testPort,
		SourceChannel:      channelIDA,
		DestinationPort:    testPort,
		DestinationChannel: channelIDB,
		Data:               []byte("hello"),
		TimeoutHeight:      exported.NewHeight(0, 2),
	}
	require.NoError(t, chainA.ChannelKeeper.ValidateSendPacket(ctx, packet))
	require.NoError(t, chainA.ChannelKeeper.ExecuteSendPacket(ctx, packet))

	connA, err := chainA.ConnectionKeeper.GetConnection(ctx, connIDA)
	require.NoError(t, err)
	advanceClient(t, ctx, chainA, connA.ClientId, 3)

	nextRecvBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextRecvBz, 1)
	timeoutMsg := types.MsgTimeout{
		Packet:           packet,
		ProofUnreceived:  ibctesting.ProofOf(nextRecvBz),
		ProofHeight:      exported.NewHeight(0, 3),
		NextSequenceRecv: 1,
		Signer:           "a-signer",
	}
	channel, err := chainA.ChannelKeeper.ValidateTimeoutPacket(ctx, timeoutMsg)
	require.NoError(t, err)
	require.NoError(t, chainA.ChannelKeeper.ExecuteTimeoutPacket(ctx, packet, channel))

	channelA, err := chainA.ChannelKeeper.GetChannel(ctx, testPort, channelIDA)
	require.NoError(t, err)
	require.Equal(t, types.CLOSED, channelA.State)
}
