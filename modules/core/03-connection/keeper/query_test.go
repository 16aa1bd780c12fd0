package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/modules/core/03-connection/types"
	ibctesting "github.com/tokenize-x/ibc-core/modules/core/testing"
)

// TestListConnections exercises the list-connections and list-client-
// connections query surface (spec §6) against a chain with two connections
// built on the same client.
func TestListConnections(t *testing.T) {
	ctx := newTestContext()
	chainA := ibctesting.NewChain()
	clientIDA := createMockClient(t, ctx, chainA)

	for i := 0; i < 2; i++ {
		initMsg := types.MsgConnectionOpenInit{
			ClientId:             clientIDA,
			CounterpartyClientId: "07-tendermint-0",
			CounterpartyPrefix:   ibctesting.DefaultMerklePrefix,
			Signer:               "a-signer",
		}
		_, err := chainA.ConnectionKeeper.ExecuteConnOpenInit(ctx, initMsg)
		require.NoError(t, err)
	}

	conns, err := chainA.ConnectionKeeper.ListConnections(ctx)
	require.NoError(t, err)
	require.Len(t, conns, 2)
	require.Equal(t, "connection-0", conns[0].ConnectionID)
	require.Equal(t, "connection-1", conns[1].ConnectionID)
	require.Equal(t, types.INIT, conns[0].ConnectionEnd.State)

	clientConns, err := chainA.ConnectionKeeper.ListClientConnections(ctx)
	require.NoError(t, err)
	require.Len(t, clientConns, 1)
	require.Equal(t, clientIDA, clientConns[0].ClientID)
	require.ElementsMatch(t, []string{"connection-0", "connection-1"}, clientConns[0].ConnectionIDs)
}
