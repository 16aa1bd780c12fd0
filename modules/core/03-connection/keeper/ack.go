package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
)

// ValidateConnOpenAck re-runs the three handshake proofs, this time against
// the counterparty's TryOpen state, and checks our own connection is still
// in Init (spec §4.3: "OpenAck (chain A): same three proofs but the
// counterparty's connection must be in TryOpen").
func (k Keeper) ValidateConnOpenAck(ctx context.Context, msg types.MsgConnectionOpenAck) (types.ConnectionEnd, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.ConnectionEnd{}, err
	}

	conn, err := k.GetConnection(ctx, msg.ConnectionId)
	if err != nil {
		return types.ConnectionEnd{}, err
	}
	if err := expectState(conn, types.INIT); err != nil {
		return types.ConnectionEnd{}, err
	}
	if err := types.VerifyProposedVersion(conn.Versions, *msg.Version); err != nil {
		return types.ConnectionEnd{}, err
	}

	expectedConn := types.ConnectionEnd{
		ClientId: conn.Counterparty.ClientId,
		Versions: []types.Version{*msg.Version},
		State:    types.TRYOPEN,
		Counterparty: types.Counterparty{
			ClientId:     conn.ClientId,
			ConnectionId: msg.ConnectionId,
			Prefix:       k.GetCommitmentPrefix(),
		},
		DelayPeriod: conn.DelayPeriod,
	}

	if err := k.verifyConnectionState(ctx, conn, msg.ProofHeight, msg.ProofTry, msg.CounterpartyConnectionId, expectedConn); err != nil {
		return types.ConnectionEnd{}, err
	}
	if err := k.verifyClientFullState(ctx, conn, msg.ProofHeight, msg.ProofClient, msg.ClientState); err != nil {
		return types.ConnectionEnd{}, err
	}
	consState, err := k.clientKeeper.GetConsensusState(ctx, conn.ClientId, msg.ConsensusHeight)
	if err != nil {
		return types.ConnectionEnd{}, err
	}
	if err := k.verifyClientConsensusState(ctx, conn, msg.ProofHeight, msg.ConsensusHeight, msg.ProofConsensus, consState); err != nil {
		return types.ConnectionEnd{}, err
	}

	return conn, nil
}

// ExecuteConnOpenAck transitions the connection Init -> Open, pinning the
// counterparty's connection id and the single negotiated version (spec
// §4.3). conn must be the value ValidateConnOpenAck returned.
func (k Keeper) ExecuteConnOpenAck(ctx context.Context, msg types.MsgConnectionOpenAck, conn types.ConnectionEnd) error {
	conn.State = types.OPEN
	conn.Versions = []types.Version{*msg.Version}
	conn.Counterparty.ConnectionId = msg.CounterpartyConnectionId

	if err := k.SetConnection(ctx, msg.ConnectionId, conn); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		types.NewConnectionOpenAckEvent(msg.ConnectionId, conn.ClientId, conn.Counterparty.ClientId, msg.CounterpartyConnectionId),
	)
	return nil
}
