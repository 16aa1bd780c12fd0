package keeper

import (
	"context"
	"encoding/binary"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	connectiontypes "github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// connectionFor resolves the sole connection hop of a channel into its
// ConnectionEnd, and requires that connection be Open: every channel/packet
// proof check threads through an already-open connection.
func (k Keeper) connectionFor(ctx context.Context, channel types.ChannelEnd) (connectiontypes.ConnectionEnd, error) {
	if len(channel.ConnectionHops) != 1 {
		return connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrInvalidConnectionHops, "channel must have exactly one connection hop")
	}
	conn, err := k.connectionKeeper.GetConnection(ctx, channel.ConnectionHops[0])
	if err != nil {
		return connectiontypes.ConnectionEnd{}, err
	}
	if conn.State != connectiontypes.OPEN {
		return connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(connectiontypes.ErrInvalidConnectionState, "connection %s is not Open", channel.ConnectionHops[0])
	}
	return conn, nil
}

// loadActiveClient resolves conn's client, requiring it be Active, and
// enforces the connection's delay period against the consensus state it
// will verify against.
func (k Keeper) loadActiveClient(ctx context.Context, conn connectiontypes.ConnectionEnd, proofHeight, now exported.Height) (exported.ClientState, error) {
	clientState, err := k.clientKeeper.GetClientState(ctx, conn.ClientId)
	if err != nil {
		return nil, err
	}
	clientStore := k.clientKeeper.ClientStore(ctx, conn.ClientId)
	if status := clientState.Status(ctx, clientStore, k.cdc); status != exported.Active {
		return nil, errorsmod.Wrapf(clienttypes.ErrClientNotActive, "client %s status is %s", conn.ClientId, status)
	}
	consState, err := k.clientKeeper.GetConsensusState(ctx, conn.ClientId, proofHeight)
	if err != nil {
		return nil, err
	}
	if conn.DelayPeriod > 0 {
		if now.GetRevisionHeight() < consState.GetTimestamp() || now.GetRevisionHeight()-consState.GetTimestamp() < conn.DelayPeriod {
			return nil, errorsmod.Wrapf(connectiontypes.ErrDelayPeriodNotPassed, "delay period %d not yet elapsed", conn.DelayPeriod)
		}
	}
	return clientState, nil
}

// verifyChannelState proves that expectedChannel is stored at
// (expectedPortID, expectedChannelID) on the counterparty.
func (k Keeper) verifyChannelState(
	ctx context.Context, conn connectiontypes.ConnectionEnd, height exported.Height,
	proof []byte, expectedPortID, expectedChannelID string, expectedChannel types.ChannelEnd,
) error {
	clientState, err := k.loadActiveClient(ctx, conn, height, height)
	if err != nil {
		return err
	}
	clientStore := k.clientKeeper.ClientStore(ctx, conn.ClientId)
	bz, err := types.MarshalChannelEnd(expectedChannel)
	if err != nil {
		return err
	}
	path := clienttypes.NewMerklePath(host.ChannelPath(expectedPortID, expectedChannelID))
	if err := clientState.VerifyMembership(ctx, clientStore, k.cdc, height, conn.DelayPeriod, 0, proof, path, bz); err != nil {
		return errorsmod.Wrapf(types.ErrChannelMismatch, "failed to verify channel state of %s/%s: %s", expectedPortID, expectedChannelID, err)
	}
	return nil
}

// verifyPacketCommitment proves the sender's packet commitment for packet is
// still present on the counterparty at the expected path.
func (k Keeper) verifyPacketCommitment(
	ctx context.Context, conn connectiontypes.ConnectionEnd, height exported.Height,
	proof []byte, portID, channelID string, sequence uint64, commitment []byte,
) error {
	clientState, err := k.loadActiveClient(ctx, conn, height, height)
	if err != nil {
		return err
	}
	clientStore := k.clientKeeper.ClientStore(ctx, conn.ClientId)
	path := clienttypes.NewMerklePath(host.PacketCommitmentPath(portID, channelID, sequence))
	if err := clientState.VerifyMembership(ctx, clientStore, k.cdc, height, conn.DelayPeriod, 0, proof, path, commitment); err != nil {
		return errorsmod.Wrapf(types.ErrPacketCommitmentMismatch, "failed to verify packet commitment: %s", err)
	}
	return nil
}

// verifyPacketAcknowledgement proves the receiver committed ackCommitment
// for (portID, channelID, sequence).
func (k Keeper) verifyPacketAcknowledgement(
	ctx context.Context, conn connectiontypes.ConnectionEnd, height exported.Height,
	proof []byte, portID, channelID string, sequence uint64, ackCommitment []byte,
) error {
	clientState, err := k.loadActiveClient(ctx, conn, height, height)
	if err != nil {
		return err
	}
	clientStore := k.clientKeeper.ClientStore(ctx, conn.ClientId)
	path := clienttypes.NewMerklePath(host.PacketAcknowledgementPath(portID, channelID, sequence))
	if err := clientState.VerifyMembership(ctx, clientStore, k.cdc, height, conn.DelayPeriod, 0, proof, path, ackCommitment); err != nil {
		return errorsmod.Wrapf(types.ErrAcknowledgementNotFound, "failed to verify packet acknowledgement: %s", err)
	}
	return nil
}

// verifyPacketReceiptAbsence proves the counterparty has no receipt stored
// for (portID, channelID, sequence): the unordered-channel timeout proof.
func (k Keeper) verifyPacketReceiptAbsence(
	ctx context.Context, conn connectiontypes.ConnectionEnd, height exported.Height,
	proof []byte, portID, channelID string, sequence uint64,
) error {
	clientState, err := k.loadActiveClient(ctx, conn, height, height)
	if err != nil {
		return err
	}
	clientStore := k.clientKeeper.ClientStore(ctx, conn.ClientId)
	path := clienttypes.NewMerklePath(host.PacketReceiptPath(portID, channelID, sequence))
	if err := clientState.VerifyNonMembership(ctx, clientStore, k.cdc, height, conn.DelayPeriod, 0, proof, path); err != nil {
		return errorsmod.Wrapf(types.ErrPacketTimeout, "failed to verify packet receipt absence: %s", err)
	}
	return nil
}

// verifyNextSequenceRecv proves the counterparty's nextSequenceRecv counter
// is still <= packet.Sequence: the ordered-channel timeout proof (spec
// §4.5: "verify_next_sequence_recv").
func (k Keeper) verifyNextSequenceRecv(
	ctx context.Context, conn connectiontypes.ConnectionEnd, height exported.Height,
	proof []byte, portID, channelID string, nextSequenceRecv, sequence uint64,
) error {
	if nextSequenceRecv > sequence {
		return errorsmod.Wrapf(types.ErrPacketTimeout, "counterparty already received up to sequence %d >= %d", nextSequenceRecv, sequence)
	}
	clientState, err := k.loadActiveClient(ctx, conn, height, height)
	if err != nil {
		return err
	}
	clientStore := k.clientKeeper.ClientStore(ctx, conn.ClientId)
	path := clienttypes.NewMerklePath(host.NextSequenceRecvPath(portID, channelID))
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, nextSequenceRecv)
	if err := clientState.VerifyMembership(ctx, clientStore, k.cdc, height, conn.DelayPeriod, 0, proof, path, bz); err != nil {
		return errorsmod.Wrapf(types.ErrPacketTimeout, "failed to verify next sequence recv: %s", err)
	}
	return nil
}

// expectState is the shared guard every handshake/close step uses to check
// the local channel hasn't already moved past the state this step is
// allowed to run from (spec's invariant 4).
func expectState(channel types.ChannelEnd, want types.State) error {
	if channel.State != want {
		return errorsmod.Wrapf(types.ErrInvalidChannelState, "expected channel state %s, got %s", want, channel.State)
	}
	return nil
}
