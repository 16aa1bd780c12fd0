package keeper_test

import (
	"testing"

	"cosmossdk.io/log"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	clientkeeper "github.com/tokenize-x/ibc-core/modules/core/02-client/keeper"
	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	"github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
	"github.com/tokenize-x/ibc-core/modules/light-clients/mock"
	ibctesting "github.com/tokenize-x/ibc-core/modules/core/testing"
)

func newTestContext() sdk.Context {
	return sdk.NewContext(nil, cmtproto.Header{}, false, log.NewNopLogger()).
		WithEventManager(sdk.NewEventManager())
}

// createMockClient registers a mock client on chain tracking the counterparty
// at revision height 1, returning its client id.
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

// TestConnectionHandshake drives the full four-step handshake across two
// independently stored chains, proving each step against the counterparty's
// real stored state the way two relayed chains would.
func TestConnectionHandshake(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()

	clientIDA := createMockClient(t, ctx, chainA) // A's light client of B
	clientIDB := createMockClient(t, ctx, chainB) // B's light client of A

	// OpenInit on A.
	initMsg := types.MsgConnectionOpenInit{
		ClientId:             clientIDA,
		CounterpartyClientId: clientIDB,
		CounterpartyPrefix:   ibctesting.DefaultMerklePrefix,
		Signer:               "a-signer",
	}
	require.NoError(t, chainA.ConnectionKeeper.ValidateConnOpenInit(ctx, initMsg))
	connIDA, err := chainA.ConnectionKeeper.ExecuteConnOpenInit(ctx, initMsg)
	require.NoError(t, err)
	require.Equal(t, "connection-0", connIDA)

	connA, err := chainA.ConnectionKeeper.GetConnection(ctx, connIDA)
	require.NoError(t, err)
	require.Equal(t, types.INIT, connA.State)

	// OpenTry on B, proving A's Init connection and A's (self-asserted) view
	// of B's client/consensus state.
	selfClientState := mock.NewClientState(exported.NewHeight(0, 1))
	consStateB, err := chainB.ClientKeeper.GetConsensusState(ctx, clientIDB, exported.NewHeight(0, 1))
	require.NoError(t, err)

	tryMsg := types.MsgConnectionOpenTry{
		ClientId:                 clientIDB,
		CounterpartyClientId:     clientIDA,
		CounterpartyConnectionId: connIDA,
		CounterpartyPrefix:       ibctesting.DefaultMerklePrefix,
		CounterpartyVersions:     []types.Version{types.DefaultIBCVersion},
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
	require.Equal(t, types.DefaultIBCVersion, version)

	connIDB, err := chainB.ConnectionKeeper.ExecuteConnOpenTry(ctx, tryMsg, version)
	require.NoError(t, err)
	require.Equal(t, "connection-0", connIDB)

	connB, err := chainB.ConnectionKeeper.GetConnection(ctx, connIDB)
	require.NoError(t, err)
	require.Equal(t, types.TRYOPEN, connB.State)

	// OpenAck on A, proving B's TryOpen connection.
	ackClientState := mock.NewClientState(exported.NewHeight(0, 1))
	consStateA, err := chainA.ClientKeeper.GetConsensusState(ctx, clientIDA, exported.NewHeight(0, 1))
	require.NoError(t, err)

	ackMsg := types.MsgConnectionOpenAck{
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
	require.Equal(t, types.OPEN, connA.State)
	require.Equal(t, connIDB, connA.Counterparty.ConnectionId)

	// OpenConfirm on B, proving A's Open connection.
	confirmMsg := types.MsgConnectionOpenConfirm{
		ConnectionId: connIDB,
		ProofAck:     ibctesting.ConnectionProof(connA),
		ProofHeight:  exported.NewHeight(0, 1),
		Signer:       "b-signer",
	}
	connB, err = chainB.ConnectionKeeper.ValidateConnOpenConfirm(ctx, confirmMsg)
	require.NoError(t, err)
	require.NoError(t, chainB.ConnectionKeeper.ExecuteConnOpenConfirm(ctx, confirmMsg, connB))

	connB, err = chainB.ConnectionKeeper.GetConnection(ctx, connIDB)
	require.NoError(t, err)
	require.Equal(t, types.OPEN, connB.State)
}

// TestConnOpenTryRejectsWrongCounterpartyState checks the proof verification
// actually rejects a mismatched expected connection, not just that the happy
// path succeeds.
func TestConnOpenTryRejectsWrongCounterpartyState(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	chainB := ibctesting.NewChain()

	clientIDA := createMockClient(t, ctx, chainA)
	clientIDB := createMockClient(t, ctx, chainB)

	initMsg := types.MsgConnectionOpenInit{
		ClientId:             clientIDA,
		CounterpartyClientId: clientIDB,
		CounterpartyPrefix:   ibctesting.DefaultMerklePrefix,
		Signer:               "a-signer",
	}
	connIDA, err := chainA.ConnectionKeeper.ExecuteConnOpenInit(ctx, initMsg)
	require.NoError(t, err)
	connA, err := chainA.ConnectionKeeper.GetConnection(ctx, connIDA)
	require.NoError(t, err)

	// Tamper with the proof: claim a different connection id than the one we
	// actually verify our counterparty state against.
	tryMsg := types.MsgConnectionOpenTry{
		ClientId:                 clientIDB,
		CounterpartyClientId:     clientIDA,
		CounterpartyConnectionId: "connection-99",
		CounterpartyPrefix:       ibctesting.DefaultMerklePrefix,
		CounterpartyVersions:     []types.Version{types.DefaultIBCVersion},
		ClientState:              mock.NewClientState(exported.NewHeight(0, 1)),
		ProofHeight:              exported.NewHeight(0, 1),
		ProofInit:                ibctesting.ConnectionProof(connA),
		ProofClient:              ibctesting.ClientStateProof(mock.NewClientState(exported.NewHeight(0, 1))),
		ProofConsensus:           []byte("irrelevant-wrong-bytes"),
		ConsensusHeight:          exported.NewHeight(0, 1),
		Signer:                   "b-signer",
	}
	_, err = chainB.ConnectionKeeper.ValidateConnOpenTry(ctx, tryMsg)
	require.Error(t, err)
}
