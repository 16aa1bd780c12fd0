package keeper

import (
	"context"
	"sort"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
)

// IdentifiedConnection pairs a connection id with its stored end, the shape
// ListConnections returns.
type IdentifiedConnection struct {
	ConnectionID  string
	ConnectionEnd types.ConnectionEnd
}

// ClientConnections pairs a client id with every connection built on it, the
// shape ListClientConnections returns.
type ClientConnections struct {
	ClientID      string
	ConnectionIDs []string
}

// ListConnections returns every connection end currently stored, sorted by
// connection id for deterministic output.
func (k Keeper) ListConnections(ctx context.Context) ([]IdentifiedConnection, error) {
	prefix := host.ConnectionsPrefix() + "/"
	keys, err := k.store.GetKeys(ctx, prefix)
	if err != nil {
		return nil, err
	}

	var out []IdentifiedConnection
	for _, key := range keys {
		connectionID := key[len(prefix):]
		conn, err := k.GetConnection(ctx, connectionID)
		if err != nil {
			return nil, err
		}
		out = append(out, IdentifiedConnection{ConnectionID: connectionID, ConnectionEnd: conn})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ConnectionID < out[j].ConnectionID })
	return out, nil
}

// ListClientConnections reports, for every client referenced by a stored
// connection, the set of connection ids built on it. It derives the client
// set by scanning stored connections rather than a separate index, since the
// per-client index (SetClientConnectionPath) is append-only and would
// otherwise require a second enumeration path.
func (k Keeper) ListClientConnections(ctx context.Context) ([]ClientConnections, error) {
	conns, err := k.ListConnections(ctx)
	if err != nil {
		return nil, err
	}

	byClient := make(map[string][]string)
	var clientOrder []string
	for _, c := range conns {
		clientID := c.ConnectionEnd.ClientId
		if _, seen := byClient[clientID]; !seen {
			clientOrder = append(clientOrder, clientID)
		}
		byClient[clientID] = append(byClient[clientID], c.ConnectionID)
	}

	sort.Strings(clientOrder)
	out := make([]ClientConnections, 0, len(clientOrder))
	for _, clientID := range clientOrder {
		out = append(out, ClientConnections{ClientID: clientID, ConnectionIDs: byClient[clientID]})
	}
	return out, nil
}
