package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
)

// ValidateConnOpenTry runs the three handshake proofs spec §4.3 requires of
// chain B: the counterparty's connection end is in Init with matching
// client ids and a delay period equal to ours; the counterparty has stored a
// client state for us; the counterparty's consensus state at our reference
// height matches our own. Returns the negotiated version.
func (k Keeper) ValidateConnOpenTry(ctx context.Context, msg types.MsgConnectionOpenTry) (types.Version, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.Version{}, err
	}
	if _, err := k.clientKeeper.GetClientState(ctx, msg.ClientId); err != nil {
		return types.Version{}, err
	}

	version, err := types.PickVersion([]types.Version{types.DefaultIBCVersion}, msg.CounterpartyVersions)
	if err != nil {
		return types.Version{}, err
	}

	expectedConn := types.ConnectionEnd{
		ClientId: msg.CounterpartyClientId,
		Versions: msg.CounterpartyVersions,
		State:    types.INIT,
		Counterparty: types.Counterparty{
			ClientId:     msg.ClientId,
			ConnectionId: "",
			Prefix:       k.GetCommitmentPrefix(),
		},
		DelayPeriod: msg.DelayPeriod,
	}
	// The counterparty connection id is not yet known to us (B allocates its
	// own id only after this step), so we use a throwaway local ConnectionEnd
	// purely as the client, counterparty and delay-period carrier for
	// verification against whatever id A's proof claims; OpenAck is where B's
	// allocated id is actually pinned into A's counterparty slot.
	selfAsCounterparty := types.ConnectionEnd{
		ClientId: msg.ClientId,
		Counterparty: types.Counterparty{
			ClientId:     msg.CounterpartyClientId,
			ConnectionId: msg.CounterpartyConnectionId,
			Prefix:       msg.CounterpartyPrefix,
		},
		DelayPeriod: msg.DelayPeriod,
	}

	if err := k.verifyConnectionState(ctx, selfAsCounterparty, msg.ProofHeight, msg.ProofInit, msg.CounterpartyConnectionId, expectedConn); err != nil {
		return types.Version{}, err
	}
	if err := k.verifyClientFullState(ctx, selfAsCounterparty, msg.ProofHeight, msg.ProofClient, msg.ClientState); err != nil {
		return types.Version{}, err
	}
	consState, err := k.clientKeeper.GetConsensusState(ctx, msg.ClientId, msg.ConsensusHeight)
	if err != nil {
		return types.Version{}, err
	}
	if err := k.verifyClientConsensusState(ctx, selfAsCounterparty, msg.ProofHeight, msg.ConsensusHeight, msg.ProofConsensus, consState); err != nil {
		return types.Version{}, err
	}

	return version, nil
}

// ExecuteConnOpenTry allocates a fresh connection id and stores the new
// ConnectionEnd in TryOpen.
func (k Keeper) ExecuteConnOpenTry(ctx context.Context, msg types.MsgConnectionOpenTry, version types.Version) (string, error) {
	seq, err := k.nextConnectionSequence(ctx)
	if err != nil {
		return "", err
	}
	connectionID := host.FormatConnectionIdentifier(seq)

	conn := types.ConnectionEnd{
		ClientId: msg.ClientId,
		Versions: []types.Version{version},
		State:    types.TRYOPEN,
		Counterparty: types.Counterparty{
			ClientId:     msg.CounterpartyClientId,
			ConnectionId: msg.CounterpartyConnectionId,
			Prefix:       msg.CounterpartyPrefix,
		},
		DelayPeriod: msg.DelayPeriod,
	}
	if err := k.SetConnection(ctx, connectionID, conn); err != nil {
		return "", err
	}
	if err := k.SetClientConnectionPath(ctx, msg.ClientId, connectionID); err != nil {
		return "", err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewConnectionOpenTryEvent(connectionID, msg.ClientId, msg.CounterpartyClientId, msg.CounterpartyConnectionId),
	)
	return connectionID, nil
}
