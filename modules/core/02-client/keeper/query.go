package keeper

import (
	"context"
	"sort"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// IdentifiedClientState pairs a client id with its stored state, the shape
// ListClients returns.
type IdentifiedClientState struct {
	ClientID    string
	ClientState exported.ClientState
}

// ConsensusStateWithHeight pairs a height with the consensus state stored at
// it, the shape ListClientConsensusStates returns.
type ConsensusStateWithHeight struct {
	Height         exported.Height
	ConsensusState exported.ConsensusState
}

// ListClients returns every client state currently stored, sorted by client
// id for deterministic output.
func (k Keeper) ListClients(ctx context.Context) ([]IdentifiedClientState, error) {
	keys, err := k.store.GetKeys(ctx, host.KeyClientStorePrefix+"/")
	if err != nil {
		return nil, err
	}

	var out []IdentifiedClientState
	for _, key := range keys {
		clientID, ok := host.SplitClientStatePath(key)
		if !ok {
			continue
		}
		cs, err := k.GetClientState(ctx, clientID)
		if err != nil {
			return nil, err
		}
		out = append(out, IdentifiedClientState{ClientID: clientID, ClientState: cs})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ClientID < out[j].ClientID })
	return out, nil
}

// ListClientConsensusStates returns every consensus state stored for
// clientID, sorted by height.
func (k Keeper) ListClientConsensusStates(ctx context.Context, clientID string) ([]ConsensusStateWithHeight, error) {
	prefix := host.FullClientStatePrefix(clientID) + "/"
	keys, err := k.store.GetKeys(ctx, prefix)
	if err != nil {
		return nil, err
	}

	var out []ConsensusStateWithHeight
	for _, key := range keys {
		id, revisionNumber, revisionHeight, ok := host.SplitConsensusStatePath(key)
		if !ok || id != clientID {
			continue
		}
		height := exported.NewHeight(revisionNumber, revisionHeight)
		cs, err := k.GetConsensusState(ctx, clientID, height)
		if err != nil {
			return nil, err
		}
		out = append(out, ConsensusStateWithHeight{Height: height, ConsensusState: cs})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Height.LT(out[j].Height) })
	return out, nil
}

// ListClientConsensusHeights is ListClientConsensusStates without the
// decoded payload, for callers that only need to know which heights exist.
func (k Keeper) ListClientConsensusHeights(ctx context.Context, clientID string) ([]exported.Height, error) {
	states, err := k.ListClientConsensusStates(ctx, clientID)
	if err != nil {
		return nil, err
	}
	heights := make([]exported.Height, len(states))
	for i, s := range states {
		heights[i] = s.Height
	}
	return heights, nil
}
