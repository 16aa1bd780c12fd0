package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
)

// ValidateConnOpenConfirm checks our connection is in TryOpen and proves the
// counterparty has observed Open (spec §4.3: "OpenConfirm (chain B): only
// the connection-state proof, requiring counterparty in Open").
func (k Keeper) ValidateConnOpenConfirm(ctx context.Context, msg types.MsgConnectionOpenConfirm) (types.ConnectionEnd, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.ConnectionEnd{}, err
	}

	conn, err := k.GetConnection(ctx, msg.ConnectionId)
	if err != nil {
		return types.ConnectionEnd{}, err
	}
	if err := expectState(conn, types.TRYOPEN); err != nil {
		return types.ConnectionEnd{}, err
	}

	expectedConn := types.ConnectionEnd{
		ClientId: conn.Counterparty.ClientId,
		Versions: conn.Versions,
		State:    types.OPEN,
		Counterparty: types.Counterparty{
			ClientId:     conn.ClientId,
			ConnectionId: msg.ConnectionId,
			Prefix:       k.GetCommitmentPrefix(),
		},
		DelayPeriod: conn.DelayPeriod,
	}
	if err := k.verifyConnectionState(ctx, conn, msg.ProofHeight, msg.ProofAck, conn.Counterparty.ConnectionId, expectedConn); err != nil {
		return types.ConnectionEnd{}, err
	}

	return conn, nil
}

// ExecuteConnOpenConfirm transitions the connection TryOpen -> Open (spec
// §4.3). conn must be the value ValidateConnOpenConfirm returned.
func (k Keeper) ExecuteConnOpenConfirm(ctx context.Context, msg types.MsgConnectionOpenConfirm, conn types.ConnectionEnd) error {
	conn.State = types.OPEN
	if err := k.SetConnection(ctx, msg.ConnectionId, conn); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewConnectionOpenConfirmEvent(msg.ConnectionId, conn.ClientId, conn.Counterparty.ClientId, conn.Counterparty.ConnectionId),
	)
	return nil
}
