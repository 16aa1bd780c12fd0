// Package keeper implements the client subsystem's handlers: CreateClient,
// UpdateClient, UpgradeClient, and SubmitMisbehaviour, each split
// into a pure validate step and a mutating execute step.
package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
	"github.com/tokenize-x/ibc-core/store"
)

// Keeper implements the client subsystem's ValidationContext and ExecutionContext
// over a path-addressed store.KVStore, matching the teacher's keeper shape
// (x/pse/keeper/keeper.go) minus collections: clients are polymorphic
// interface values, not proto messages collections.Map can codec directly.
type Keeper struct {
	cdc   codec.BinaryCodec
	store store.KVStore

	authority string

	// selfClientType is this host chain's own light-client type, the value a
	// counterparty's client pointed back at this chain would report. Empty
	// disables the self-client sanity check entirely.
	selfClientType string
}

var (
	_ types.ValidationContext = Keeper{}
	_ types.ExecutionContext  = Keeper{}
)

// NewKeeper returns a new client subsystem keeper backed by kvStore.
// selfClientType identifies the light-client type a counterparty would use to
// track this chain; CreateClient rejects a client state of that type whose
// embedded height is not behind the host's current height. Pass "" to skip
// the check on a deployment where no such self-referential client exists.
func NewKeeper(cdc codec.BinaryCodec, kvStore store.KVStore, authority, selfClientType string) Keeper {
	return Keeper{cdc: cdc, store: kvStore, authority: authority, selfClientType: selfClientType}
}

// Logger returns a module-scoped logger, following the teacher's per-keeper
// logger convention.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// ClientStore returns the ClientStore view scoped to clientID's own path
// prefix (clients/{clientID}/...), the only slice of the store a light
// client implementation is handed.
func (k Keeper) ClientStore(ctx context.Context, clientID string) exported.ClientStore {
	return prefixedStore{parent: k.store, prefix: host.FullClientStatePrefix(clientID) + "/"}
}

// prefixedStore adapts the engine's path-addressed store.KVStore into the
// narrow exported.ClientStore a light client implementation sees, rewriting
// its relative keys onto the client's absolute path prefix.
type prefixedStore struct {
	parent store.KVStore
	prefix string
}

func (p prefixedStore) Get(ctx context.Context, key []byte) ([]byte, error) {
	return p.parent.Get(ctx, p.prefix+string(key))
}

func (p prefixedStore) Set(ctx context.Context, key, value []byte) error {
	return p.parent.Set(ctx, p.prefix+string(key), value)
}

func (p prefixedStore) Delete(ctx context.Context, key []byte) error {
	return p.parent.Delete(ctx, p.prefix+string(key))
}

// GetClientState returns the stored client state for clientID.
func (k Keeper) GetClientState(ctx context.Context, clientID string) (exported.ClientState, error) {
	bz, err := k.store.Get(ctx, host.FullClientStatePath(clientID))
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, errorsmod.Wrapf(types.ErrClientNotFound, "clientID %s", clientID)
	}
	return types.UnmarshalClientState(bz)
}

// SetClientState stores cs under clientID's client state path.
func (k Keeper) SetClientState(ctx context.Context, clientID string, cs exported.ClientState) error {
	bz, err := types.MarshalClientState(cs)
	if err != nil {
		return err
	}
	return k.store.Set(ctx, host.FullClientStatePath(clientID), bz)
}

// GetConsensusState returns the consensus state clientID stored at height.
func (k Keeper) GetConsensusState(ctx context.Context, clientID string, height exported.Height) (exported.ConsensusState, error) {
	bz, err := k.store.Get(ctx, host.FullConsensusStatePath(clientID, height.GetRevisionNumber(), height.GetRevisionHeight()))
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, errorsmod.Wrapf(types.ErrConsensusStateNotFound, "clientID %s at height %s", clientID, height)
	}
	return types.UnmarshalConsensusState(bz)
}

// SetConsensusState stores cs for clientID at height.
func (k Keeper) SetConsensusState(ctx context.Context, clientID string, height exported.Height, clientType string, cs exported.ConsensusState) error {
	bz, err := types.MarshalConsensusState(clientType, cs)
	if err != nil {
		return err
	}
	return k.store.Set(ctx, host.FullConsensusStatePath(clientID, height.GetRevisionNumber(), height.GetRevisionHeight()), bz)
}

// ValidateSelfClient checks clientState for self-consistency when it claims
// to track this host chain (matching ibc-go's validate_self_client): its
// type must equal the chain's registered selfClientType, and its latest
// height must sit strictly behind the chain's current height, since a client
// cannot legitimately attest to a state the chain hasn't reached yet. Any
// other client type is out of scope for this check and passes untouched.
func (k Keeper) ValidateSelfClient(ctx context.Context, clientState exported.ClientState) error {
	if clientState.ClientType() != k.selfClientType {
		return nil
	}
	selfHeight := exported.NewHeight(0, uint64(sdk.UnwrapSDKContext(ctx).BlockHeight()))
	latest := clientState.GetLatestHeight()
	if !latest.LT(selfHeight) {
		return errorsmod.Wrapf(types.ErrInvalidSelfClient,
			"client state height %s must be less than host chain height %s", latest, selfHeight)
	}
	return nil
}

// nextClientSequence returns and increments the global client sequence counter
// used to assign "{clientType}-{seq}" client IDs.
func (k Keeper) nextClientSequence(ctx context.Context) (uint64, error) {
	bz, err := k.store.Get(ctx, host.NextClientSequencePath())
	if err != nil {
		return 0, err
	}
	seq := host.DecodeSequence(bz)
	if err := k.store.Set(ctx, host.NextClientSequencePath(), host.EncodeSequence(seq+1)); err != nil {
		return 0, err
	}
	return seq, nil
}
