package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/samber/lo"
)

// DefaultIBCVersion is the only version identifier this engine negotiates;
// a real deployment would offer several and let counterparties pick.
var DefaultIBCVersion = Version{Identifier: "1", Features: []string{"ORDER_ORDERED", "ORDER_UNORDERED"}}

// PickVersion returns the first of supported that also appears (by
// identifier and feature superset) in offered, implementing "chain B picks
// the first mutually-supported one".
func PickVersion(supported, offered []Version) (Version, error) {
	for _, s := range supported {
		for _, o := range offered {
			if s.Identifier != o.Identifier {
				continue
			}
			if isFeatureSubset(o.Features, s.Features) {
				return s, nil
			}
		}
	}
	return Version{}, errorsmod.Wrapf(ErrVersionNegotiationFailed, "no version in %v is supported by %v", offered, supported)
}

// isFeatureSubset reports whether every feature offered requires is present
// in what the local side supports. An empty offered feature list matches
// any supported feature set.
func isFeatureSubset(offered, supported []string) bool {
	if len(offered) == 0 {
		return true
	}
	return lo.Every(supported, offered)
}

// VerifyProposedVersion checks that a single version (as pinned by OpenAck)
// is one this side actually offered.
func VerifyProposedVersion(offered []Version, proposed Version) error {
	if !lo.ContainsBy(offered, func(v Version) bool { return v.Identifier == proposed.Identifier }) {
		return errorsmod.Wrapf(ErrVersionNegotiationFailed, "version %s was not offered", proposed.Identifier)
	}
	return nil
}
