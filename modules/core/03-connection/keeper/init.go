package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
)

// ValidateConnOpenInit checks the message is well formed and that the client
// it names actually exists; no proof is required at this step (spec §4.3:
// "OpenInit (chain A): ... No proof required").
func (k Keeper) ValidateConnOpenInit(ctx context.Context, msg types.MsgConnectionOpenInit) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if _, err := k.clientKeeper.GetClientState(ctx, msg.ClientId); err != nil {
		return err
	}
	return nil
}

// ExecuteConnOpenInit allocates "connection-{seq}", stores the new
// ConnectionEnd in Init, and emits ConnectionOpenInit.
func (k Keeper) ExecuteConnOpenInit(ctx context.Context, msg types.MsgConnectionOpenInit) (string, error) {
	versions := []types.Version{types.DefaultIBCVersion}
	if msg.Version != nil {
		versions = []types.Version{*msg.Version}
	}

	seq, err := k.nextConnectionSequence(ctx)
	if err != nil {
		return "", err
	}
	connectionID := host.FormatConnectionIdentifier(seq)

	conn := types.ConnectionEnd{
		ClientId: msg.ClientId,
		Versions: versions,
		State:    types.INIT,
		Counterparty: types.Counterparty{
			ClientId:     msg.CounterpartyClientId,
			ConnectionId: "",
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
		types.NewConnectionOpenInitEvent(connectionID, msg.ClientId, msg.CounterpartyClientId),
	)
	return connectionID, nil
}

// expectState is the shared guard every subsequent handshake step uses to
// check the local connection hasn't already moved past the state this step
// is allowed to run from (spec's invariant 4: "the local state machine only
// advances by the allowed edges").
func expectState(conn types.ConnectionEnd, want types.State) error {
	if conn.State != want {
		return errorsmod.Wrapf(types.ErrInvalidConnectionState, "expected connection state %s, got %s", want, conn.State)
	}
	return nil
}
