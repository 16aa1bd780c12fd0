// Package keeper implements the connection subsystem's four-step handshake:
// OpenInit, OpenTry, OpenAck, OpenConfirm, each split into a pure
// validate step and a mutating execute step, matching the client subsystem's
// shape (02-client/keeper).
package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
	"github.com/tokenize-x/ibc-core/store"
)

// Keeper implements the connection subsystem's ValidationContext and
// ExecutionContext over a path-addressed store.KVStore, depending on the
// client subsystem only through the narrow types.ClientKeeper interface.
type Keeper struct {
	cdc          codec.BinaryCodec
	store        store.KVStore
	clientKeeper types.ClientKeeper
	prefix       exported.Prefix
}

var (
	_ types.ValidationContext = Keeper{}
	_ types.ExecutionContext  = Keeper{}
)

// NewKeeper returns a new connection subsystem keeper. prefix is this chain's
// own commitment prefix, handed to counterparties during OpenInit/OpenTry so
// they know what to prepend to ICS-24 paths when proving against our state.
func NewKeeper(cdc codec.BinaryCodec, kvStore store.KVStore, clientKeeper types.ClientKeeper, prefix exported.Prefix) Keeper {
	return Keeper{cdc: cdc, store: kvStore, clientKeeper: clientKeeper, prefix: prefix}
}

func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) GetClientState(ctx context.Context, clientID string) (exported.ClientState, error) {
	return k.clientKeeper.GetClientState(ctx, clientID)
}

func (k Keeper) GetConsensusState(ctx context.Context, clientID string, height exported.Height) (exported.ConsensusState, error) {
	return k.clientKeeper.GetConsensusState(ctx, clientID, height)
}

func (k Keeper) ClientStore(ctx context.Context, clientID string) exported.ClientStore {
	return k.clientKeeper.ClientStore(ctx, clientID)
}

func (k Keeper) GetCommitmentPrefix() exported.Prefix {
	return k.prefix
}

// GetConnection returns the stored connection end for connectionID.
func (k Keeper) GetConnection(ctx context.Context, connectionID string) (types.ConnectionEnd, error) {
	bz, err := k.store.Get(ctx, host.ConnectionPath(connectionID))
	if err != nil {
		return types.ConnectionEnd{}, err
	}
	if bz == nil {
		return types.ConnectionEnd{}, errorsmod.Wrapf(types.ErrConnectionNotFound, "connectionID %s", connectionID)
	}
	return types.UnmarshalConnectionEnd(bz)
}

// SetConnection stores conn under connectionID's path.
func (k Keeper) SetConnection(ctx context.Context, connectionID string, conn types.ConnectionEnd) error {
	bz, err := types.MarshalConnectionEnd(conn)
	if err != nil {
		return err
	}
	return k.store.Set(ctx, host.ConnectionPath(connectionID), bz)
}

// SetClientConnectionPath appends connectionID to clientID's client-connection
// index. The index is a newline-joined list; small and append-only,
// so no need for a richer encoding.
func (k Keeper) SetClientConnectionPath(ctx context.Context, clientID, connectionID string) error {
	path := host.ClientConnectionsPath(clientID)
	existing, err := k.store.Get(ctx, path)
	if err != nil {
		return err
	}
	var ids []string
	if existing != nil {
		ids = splitConnectionIDs(existing)
	}
	ids = append(ids, connectionID)
	return k.store.Set(ctx, path, joinConnectionIDs(ids))
}

// GetClientConnectionPaths returns every connection id built on clientID.
func (k Keeper) GetClientConnectionPaths(ctx context.Context, clientID string) ([]string, error) {
	bz, err := k.store.Get(ctx, host.ClientConnectionsPath(clientID))
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}
	return splitConnectionIDs(bz), nil
}

func splitConnectionIDs(bz []byte) []string {
	var ids []string
	start := 0
	for i, b := range bz {
		if b == '\n' {
			ids = append(ids, string(bz[start:i]))
			start = i + 1
		}
	}
	if start < len(bz) {
		ids = append(ids, string(bz[start:]))
	}
	return ids
}

func joinConnectionIDs(ids []string) []byte {
	out := ids[0]
	for _, id := range ids[1:] {
		out += "\n" + id
	}
	return []byte(out)
}

// nextConnectionSequence returns and increments the global connection
// sequence counter used to assign "connection-{seq}" ids.
func (k Keeper) nextConnectionSequence(ctx context.Context) (uint64, error) {
	bz, err := k.store.Get(ctx, host.NextConnectionSequencePath())
	if err != nil {
		return 0, err
	}
	seq := host.DecodeSequence(bz)
	if err := k.store.Set(ctx, host.NextConnectionSequencePath(), host.EncodeSequence(seq+1)); err != nil {
		return 0, err
	}
	return seq, nil
}
