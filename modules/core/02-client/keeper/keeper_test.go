package keeper_test

import (
	"testing"

	"cosmossdk.io/log"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/modules/core/02-client/keeper"
	"github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
	"github.com/tokenize-x/ibc-core/modules/light-clients/mock"
	"github.com/tokenize-x/ibc-core/store"
)

func newTestKeeper(t *testing.T) (keeper.Keeper, sdk.Context) {
	t.Helper()

	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	mem := store.NewMemStore()
	k := keeper.NewKeeper(cdc, mem, "authority", "")

	ctx := sdk.NewContext(nil, cmtproto.Header{}, false, log.NewNopLogger()).
		WithEventManager(sdk.NewEventManager())
	return k, ctx
}

func TestCreateClient(t *testing.T) {
	k, ctx := newTestKeeper(t)

	msg := types.MsgCreateClient{
		ClientState:    mock.NewClientState(exported.NewHeight(0, 1)),
		ConsensusState: &mock.ConsensusState{Timestamp: 1, Root: []byte("root")},
		Signer:         "cosmos1signer",
	}

	require.NoError(t, keeper.ValidateCreateClient(msg))

	clientID, err := k.ExecuteCreateClient(ctx, msg)
	require.NoError(t, err)
	require.Equal(t, "mock-0", clientID)

	cs, err := k.GetClientState(ctx, clientID)
	require.NoError(t, err)
	require.Equal(t, exported.NewHeight(0, 1), cs.GetLatestHeight())

	consState, err := k.GetConsensusState(ctx, clientID, exported.NewHeight(0, 1))
	require.NoError(t, err)
	require.Equal(t, uint64(1), consState.GetTimestamp())
}

// otherTypeConsensusState stands in for a different light client's consensus
// state, to exercise the cross-type rejection in ValidateCreateClient.
type otherTypeConsensusState struct{ mock.ConsensusState }

func (otherTypeConsensusState) ClientType() string { return "other-client" }

func TestCreateClientRejectsMismatchedTypes(t *testing.T) {
	msg := types.MsgCreateClient{
		ClientState:    mock.NewClientState(exported.NewHeight(0, 1)),
		ConsensusState: &otherTypeConsensusState{ConsensusState: mock.ConsensusState{Timestamp: 1, Root: []byte("root")}},
		Signer:         "cosmos1signer",
	}
	err := keeper.ValidateCreateClient(msg)
	require.ErrorIs(t, err, types.ErrInvalidClient)
}

func TestUpdateClientAdvancesHeight(t *testing.T) {
	k, ctx := newTestKeeper(t)

	createMsg := types.MsgCreateClient{
		ClientState:    mock.NewClientState(exported.NewHeight(0, 1)),
		ConsensusState: &mock.ConsensusState{Timestamp: 1, Root: []byte("root-1")},
		Signer:         "cosmos1signer",
	}
	clientID, err := k.ExecuteCreateClient(ctx, createMsg)
	require.NoError(t, err)

	updateMsg := types.MsgUpdateClient{
		ClientID: clientID,
		Header:   &mock.Header{Height: exported.NewHeight(0, 2), Timestamp: 2, Root: []byte("root-2")},
		Signer:   "cosmos1signer",
	}

	cs, err := k.ValidateUpdateClient(ctx, updateMsg)
	require.NoError(t, err)

	require.NoError(t, k.ExecuteUpdateClient(ctx, updateMsg, cs))

	stored, err := k.GetClientState(ctx, clientID)
	require.NoError(t, err)
	require.Equal(t, exported.NewHeight(0, 2), stored.GetLatestHeight())

	consState, err := k.GetConsensusState(ctx, clientID, exported.NewHeight(0, 2))
	require.NoError(t, err)
	require.Equal(t, uint64(2), consState.GetTimestamp())
}

func TestSubmitMisbehaviourFreezesClient(t *testing.T) {
	k, ctx := newTestKeeper(t)

	createMsg := types.MsgCreateClient{
		ClientState:    mock.NewClientState(exported.NewHeight(0, 1)),
		ConsensusState: &mock.ConsensusState{Timestamp: 1, Root: []byte("root-1")},
		Signer:         "cosmos1signer",
	}
	clientID, err := k.ExecuteCreateClient(ctx, createMsg)
	require.NoError(t, err)

	evidence := types.MsgSubmitMisbehaviour{
		ClientID: clientID,
		Misbehaviour: &mock.Misbehaviour{
			ClientID: clientID,
			Header1:  &mock.Header{Height: exported.NewHeight(0, 5), Timestamp: 5, Root: []byte("root-a")},
			Header2:  &mock.Header{Height: exported.NewHeight(0, 5), Timestamp: 5, Root: []byte("root-b")},
		},
		Signer: "cosmos1signer",
	}

	cs, err := k.ValidateSubmitMisbehaviour(ctx, evidence)
	require.NoError(t, err)
	require.NoError(t, k.ExecuteSubmitMisbehaviour(ctx, evidence, cs))

	stored, err := k.GetClientState(ctx, clientID)
	require.NoError(t, err)

	status := stored.Status(ctx, k.ClientStore(ctx, clientID), nil)
	require.Equal(t, exported.Frozen, status)

	_, err = k.ValidateUpdateClient(ctx, types.MsgUpdateClient{
		ClientID: clientID,
		Header:   &mock.Header{Height: exported.NewHeight(0, 6), Timestamp: 6, Root: []byte("root-c")},
		Signer:   "cosmos1signer",
	})
	require.ErrorIs(t, err, types.ErrClientFrozen)
}

// otherClientTypeState stands in for a light client type distinct from this
// host's own, to confirm ValidateSelfClient leaves it untouched.
type otherClientTypeState struct{ *mock.ClientState }

func (otherClientTypeState) ClientType() string { return "other-client" }

func TestValidateSelfClient(t *testing.T) {
	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	mem := store.NewMemStore()
	k := keeper.NewKeeper(cdc, mem, "authority", mock.ClientType)

	ctx := sdk.NewContext(nil, cmtproto.Header{Height: 10}, false, log.NewNopLogger()).
		WithEventManager(sdk.NewEventManager())

	require.NoError(t, k.ValidateSelfClient(ctx, mock.NewClientState(exported.NewHeight(0, 5))))

	err := k.ValidateSelfClient(ctx, mock.NewClientState(exported.NewHeight(0, 10)))
	require.ErrorIs(t, err, types.ErrInvalidSelfClient)

	other := otherClientTypeState{mock.NewClientState(exported.NewHeight(0, 999))}
	require.NoError(t, k.ValidateSelfClient(ctx, other))
}
