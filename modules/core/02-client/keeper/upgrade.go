package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ValidateUpgradeClient loads the client being upgraded and checks the basic
// shape of the message; proof verification itself happens in
// VerifyUpgradeAndUpdateState during execute, since it needs the client's
// own membership-proof logic.
func (k Keeper) ValidateUpgradeClient(ctx context.Context, msg types.MsgUpgradeClient) (exported.ClientState, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return k.GetClientState(ctx, msg.ClientID)
}

// ExecuteUpgradeClient verifies the upgrade proof and, on success, replaces
// the stored client and consensus states. cs must be the value
// ValidateUpgradeClient returned.
func (k Keeper) ExecuteUpgradeClient(ctx context.Context, msg types.MsgUpgradeClient, cs exported.ClientState) error {
	clientStore := k.ClientStore(ctx, msg.ClientID)

	if err := cs.VerifyUpgradeAndUpdateState(
		ctx, k.cdc, clientStore,
		msg.UpgradedClient, msg.UpgradedConsensusState,
		msg.ProofUpgradeClient, msg.ProofUpgradeConsensusState,
	); err != nil {
		return err
	}

	if err := k.SetClientState(ctx, msg.ClientID, msg.UpgradedClient); err != nil {
		return err
	}
	height := msg.UpgradedClient.GetLatestHeight()
	if err := k.SetConsensusState(ctx, msg.ClientID, height, msg.UpgradedClient.ClientType(), msg.UpgradedConsensusState); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewUpgradeClientEvent(msg.ClientID, msg.UpgradedClient.ClientType(), height.String()),
	)
	return nil
}
