package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// verifyDelayPeriodPassed enforces the delay period against the
// counterparty consensus state's timestamp. A zero delay period is always satisfied.
func verifyDelayPeriodPassed(ctx context.Context, consState exported.ConsensusState, delayPeriod uint64, now uint64) error {
	if delayPeriod == 0 {
		return nil
	}
	if now < consState.GetTimestamp() || now-consState.GetTimestamp() < delayPeriod {
		return errorsmod.Wrapf(types.ErrDelayPeriodNotPassed, "delay period %d not yet elapsed since consensus timestamp %d (now %d)", delayPeriod, consState.GetTimestamp(), now)
	}
	return nil
}

// loadForVerification resolves the client state and the consensus state
// pinned at height, and checks the delay period, the three steps every
// verify* helper below needs before calling into the light client.
func (k Keeper) loadForVerification(ctx context.Context, clientID string, height, proofHeight exported.Height, delayPeriod uint64, now uint64) (exported.ClientState, error) {
	clientState, err := k.clientKeeper.GetClientState(ctx, clientID)
	if err != nil {
		return nil, err
	}
	clientStore := k.clientKeeper.ClientStore(ctx, clientID)
	if status := clientState.Status(ctx, clientStore, k.cdc); status != exported.Active {
		return nil, errorsmod.Wrapf(clienttypes.ErrClientNotActive, "client %s status is %s", clientID, status)
	}
	consState, err := k.clientKeeper.GetConsensusState(ctx, clientID, proofHeight)
	if err != nil {
		return nil, err
	}
	if err := verifyDelayPeriodPassed(ctx, consState, delayPeriod, now); err != nil {
		return nil, err
	}
	return clientState, nil
}

// verifyConnectionState proves that expectedConnection is stored at
// expectedConnectionID on the counterparty. The proof is checked against the
// bare ICS-24 connection path; the counterparty commitment prefix is not
// prepended.
func (k Keeper) verifyConnectionState(
	ctx context.Context, connection types.ConnectionEnd, height exported.Height,
	proof []byte, expectedConnectionID string, expectedConnection types.ConnectionEnd,
) error {
	clientState, err := k.loadForVerification(ctx, connection.ClientId, height, height, connection.DelayPeriod, height.GetRevisionHeight())
	if err != nil {
		return err
	}
	clientStore := k.clientKeeper.ClientStore(ctx, connection.ClientId)
	bz, err := types.MarshalConnectionEnd(expectedConnection)
	if err != nil {
		return err
	}
	path := clienttypes.NewMerklePath(host.ConnectionPath(expectedConnectionID))
	if err := clientState.VerifyMembership(ctx, clientStore, k.cdc, height, connection.DelayPeriod, 0, proof, path, bz); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidProof, "failed to verify connection state of %s: %s", expectedConnectionID, err)
	}
	return nil
}

// verifyClientFullState proves that the counterparty has stored expectedClient
// as the client state it runs for us.
func (k Keeper) verifyClientFullState(
	ctx context.Context, connection types.ConnectionEnd, height exported.Height,
	proof []byte, expectedClient exported.ClientState,
) error {
	clientState, err := k.loadForVerification(ctx, connection.ClientId, height, height, connection.DelayPeriod, height.GetRevisionHeight())
	if err != nil {
		return err
	}
	clientStore := k.clientKeeper.ClientStore(ctx, connection.ClientId)
	bz, err := clienttypes.MarshalClientState(expectedClient)
	if err != nil {
		return err
	}
	path := clienttypes.NewMerklePath(host.FullClientStatePath(connection.Counterparty.ClientId))
	if err := clientState.VerifyMembership(ctx, clientStore, k.cdc, height, connection.DelayPeriod, 0, proof, path, bz); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidProof, "failed to verify client full state: %s", err)
	}
	return nil
}

// verifyClientConsensusState proves that the counterparty's consensus state
// for us, at consensusHeight, matches our own.
func (k Keeper) verifyClientConsensusState(
	ctx context.Context, connection types.ConnectionEnd, height exported.Height,
	consensusHeight exported.Height, proof []byte, expectedConsensusState exported.ConsensusState,
) error {
	clientState, err := k.loadForVerification(ctx, connection.ClientId, height, height, connection.DelayPeriod, height.GetRevisionHeight())
	if err != nil {
		return err
	}
	clientStore := k.clientKeeper.ClientStore(ctx, connection.ClientId)
	bz, err := clienttypes.MarshalConsensusState(expectedConsensusState.ClientType(), expectedConsensusState)
	if err != nil {
		return err
	}
	path := clienttypes.NewMerklePath(host.FullConsensusStatePath(
		connection.Counterparty.ClientId, consensusHeight.GetRevisionNumber(), consensusHeight.GetRevisionHeight()),
	)
	if err := clientState.VerifyMembership(ctx, clientStore, k.cdc, height, connection.DelayPeriod, 0, proof, path, bz); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidProof, "failed to verify client consensus state: %s", err)
	}
	return nil
}
