package host_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
)

func TestNewChainIDRoundTrip(t *testing.T) {
	testCases := []struct {
		name             string
		id               string
		expectErr        bool
		expectedRevision uint64
	}{
		{name: "name-revision form", id: "chainA-1", expectedRevision: 1},
		{name: "revision zero is explicit and allowed", id: "chainA-0", expectedRevision: 0},
		{name: "free-form name has implicit revision zero", id: "mychain", expectedRevision: 0},
		{name: "leading zero in revision is rejected", id: "chainA-01", expectErr: true},
		{name: "revision with no digits after hyphen is not a revision suffix", id: "chainA-", expectErr: true},
		{name: "bad charset", id: "chainA!-1", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := host.NewChainID(tc.id)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedRevision, id.RevisionNumber())
			// Round-trip: format(parse(x)) == x, per spec §8's ChainId property.
			require.Equal(t, tc.id, id.String())
		})
	}
}

func TestChainIDIncrementRevisionNumber(t *testing.T) {
	id, err := host.NewChainID("chainA-1")
	require.NoError(t, err)

	next, err := id.IncrementRevisionNumber()
	require.NoError(t, err)
	require.Equal(t, uint64(2), next.RevisionNumber())
	require.Equal(t, "chainA-2", next.String())
}

func TestChainIDIncrementRevisionNumberNoSuffixFails(t *testing.T) {
	id, err := host.NewChainID("mychain")
	require.NoError(t, err)

	_, err = id.IncrementRevisionNumber()
	require.Error(t, err)
}

func TestChainIDIncrementRevisionNumberOverflow(t *testing.T) {
	// math.MaxUint64, one short of overflowing the increment.
	id, err := host.NewChainID("c-18446744073709551615")
	require.NoError(t, err)
	require.Equal(t, uint64(18446744073709551615), id.RevisionNumber())

	_, err = id.IncrementRevisionNumber()
	require.ErrorIs(t, err, host.ErrRevisionNumberOverflow)
}

func TestChainIDValidateLength(t *testing.T) {
	id, err := host.NewChainID("chainA-1")
	require.NoError(t, err)
	require.NoError(t, id.ValidateLength(1, 64))

	tooLong, err := host.NewChainID(strings.Repeat("a", 64) + "-1")
	require.NoError(t, err)
	require.Error(t, tooLong.ValidateLength(1, 10))
}
