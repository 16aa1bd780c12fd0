package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ValidateSubmitMisbehaviour loads the client and runs the light client's
// own evidence verification; a client that is already frozen has nothing
// left to protect, so resubmission against it is rejected.
func (k Keeper) ValidateSubmitMisbehaviour(ctx context.Context, msg types.MsgSubmitMisbehaviour) (exported.ClientState, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cs, err := k.GetClientState(ctx, msg.ClientID)
	if err != nil {
		return nil, err
	}

	clientStore := k.ClientStore(ctx, msg.ClientID)
	if status := cs.Status(ctx, clientStore, k.cdc); status == exported.Frozen {
		return nil, errorsmod.Wrapf(types.ErrClientFrozen, "client %s already frozen", msg.ClientID)
	}

	if err := cs.VerifyClientMessage(ctx, k.cdc, clientStore, msg.Misbehaviour); err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidMisbehaviour, "client %s: %s", msg.ClientID, err)
	}
	if !cs.CheckForMisbehaviour(ctx, k.cdc, clientStore, msg.Misbehaviour) {
		return nil, errorsmod.Wrapf(types.ErrInvalidMisbehaviour, "evidence does not prove misbehaviour for client %s", msg.ClientID)
	}
	return cs, nil
}

// ExecuteSubmitMisbehaviour freezes the client at its current height. No new
// consensus state is stored.
func (k Keeper) ExecuteSubmitMisbehaviour(ctx context.Context, msg types.MsgSubmitMisbehaviour, cs exported.ClientState) error {
	clientStore := k.ClientStore(ctx, msg.ClientID)
	cs.UpdateStateOnMisbehaviour(ctx, k.cdc, clientStore, msg.Misbehaviour)

	if err := k.SetClientState(ctx, msg.ClientID, cs); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewSubmitMisbehaviourEvent(msg.ClientID, cs.ClientType()),
	)
	return nil
}
