package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ValidateUpdateClient loads the client, rejects an already-frozen client,
// and runs the light client's own header/misbehaviour verification (spec
// §4.2: "load client state; call verify_client_message(header)").
func (k Keeper) ValidateUpdateClient(ctx context.Context, msg types.MsgUpdateClient) (exported.ClientState, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cs, err := k.GetClientState(ctx, msg.ClientID)
	if err != nil {
		return nil, err
	}

	clientStore := k.ClientStore(ctx, msg.ClientID)
	if status := cs.Status(ctx, clientStore, k.cdc); status == exported.Frozen {
		return nil, errorsmod.Wrapf(types.ErrClientFrozen, "cannot update client %s", msg.ClientID)
	}

	if err := cs.VerifyClientMessage(ctx, k.cdc, clientStore, msg.Header); err != nil {
		return nil, errorsmod.Wrapf(types.ErrHeaderVerificationFailed, "client %s: %s", msg.ClientID, err)
	}
	return cs, nil
}

// ExecuteUpdateClient freezes the client on detected misbehaviour, otherwise
// stores the derived consensus state(s) and advances the client's latest
// height. cs must be the value ValidateUpdateClient returned.
func (k Keeper) ExecuteUpdateClient(ctx context.Context, msg types.MsgUpdateClient, cs exported.ClientState) error {
	clientStore := k.ClientStore(ctx, msg.ClientID)

	if cs.CheckForMisbehaviour(ctx, k.cdc, clientStore, msg.Header) {
		cs.UpdateStateOnMisbehaviour(ctx, k.cdc, clientStore, msg.Header)
		if err := k.SetClientState(ctx, msg.ClientID, cs); err != nil {
			return err
		}
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			types.NewSubmitMisbehaviourEvent(msg.ClientID, cs.ClientType()),
		)
		return nil
	}

	// UpdateState stores the new consensus state(s) itself and advances cs's
	// own latest height in place; the client state we persist below reflects
	// that advance.
	cs.UpdateState(ctx, k.cdc, clientStore, msg.Header)
	if err := k.SetClientState(ctx, msg.ClientID, cs); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewUpdateClientEvent(msg.ClientID, cs.ClientType(), cs.GetLatestHeight().String()),
	)
	return nil
}
