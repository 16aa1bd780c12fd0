package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/02-client/types"
)

// ValidateCreateClient performs the stateless/self-consistency checks for
// MsgCreateClient without touching the store.
func ValidateCreateClient(msg types.MsgCreateClient) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if msg.ClientState.ClientType() != msg.ConsensusState.ClientType() {
		return errorsmod.Wrapf(types.ErrInvalidClient,
			"client state type %s does not match consensus state type %s",
			msg.ClientState.ClientType(), msg.ConsensusState.ClientType())
	}
	return nil
}

// ExecuteCreateClient assigns a fresh client ID, stores both states, and
// emits CreateClient. Callers must have run ValidateCreateClient first.
func (k Keeper) ExecuteCreateClient(ctx context.Context, msg types.MsgCreateClient) (string, error) {
	seq, err := k.nextClientSequence(ctx)
	if err != nil {
		return "", err
	}
	clientID := host.FormatClientIdentifier(msg.ClientState.ClientType(), seq)

	if err := k.SetClientState(ctx, clientID, msg.ClientState); err != nil {
		return "", err
	}
	height := msg.ClientState.GetLatestHeight()
	if err := k.SetConsensusState(ctx, clientID, height, msg.ClientState.ClientType(), msg.ConsensusState); err != nil {
		return "", err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewCreateClientEvent(clientID, msg.ClientState.ClientType(), height.String()),
	)
	return clientID, nil
}
