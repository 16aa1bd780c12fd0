package host

import (
	"fmt"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// ChainId is the domain type for a host chain identifier. A valid ChainId
// follows "{name}-{revision}" where revision counts how many times the chain
// has been upgraded (a fresh genesis per revision); a free-form name with no
// parseable revision suffix is also valid and implicitly carries revision 0.
// A numeric suffix written with a leading zero (e.g. "chainA-01") is rejected
// rather than read as part of a free-form name.
//
// This format is not itself standardized by ICS-24, but it is the convention
// every Cosmos SDK chain uses, and the revision number is load-bearing: it is
// the first component of every Height this engine compares.
type ChainId struct {
	id             string
	revisionNumber uint64
}

// NewChainID parses id into a ChainId, validating ICS-24 charset and the
// 1..=64 length bound on the chain-name component.
func NewChainID(id string) (ChainId, error) {
	if err := ValidateIdentifierChars(id); err != nil {
		return ChainId{}, err
	}

	name, revision, err := splitChainID(id)
	if err != nil {
		// A numeric revision suffix with a leading zero is malformed, not a name.
		if idx := strings.LastIndex(id, "-"); idx >= 0 {
			if rev := id[idx+1:]; len(rev) > 1 && rev[0] == '0' {
				if _, perr := strconv.ParseUint(rev, 10, 64); perr == nil {
					return ChainId{}, err
				}
			}
		}
		// No parseable revision suffix: the whole string is the name, revision 0.
		if lerr := ValidateIdentifierLength(id, defaultMinLength, defaultMaxLength); lerr != nil {
			return ChainId{}, lerr
		}
		return ChainId{id: id, revisionNumber: 0}, nil
	}

	if lerr := ValidateIdentifierLength(name, defaultMinLength, defaultMaxLength); lerr != nil {
		return ChainId{}, lerr
	}
	return ChainId{id: id, revisionNumber: revision}, nil
}

// splitChainID splits on the last '-' and parses the suffix as a revision
// number. A suffix with a leading zero is rejected unless it is exactly "0",
// matching ICS-24's host-types reference implementation.
func splitChainID(id string) (name string, revision uint64, err error) {
	idx := strings.LastIndex(id, "-")
	if idx < 0 || idx == len(id)-1 {
		return "", 0, errorsmod.Wrapf(ErrUnformattedRevision, "chain id: %s", id)
	}
	name = id[:idx]
	revStr := id[idx+1:]
	if revStr[0] == '0' && len(revStr) != 1 {
		return "", 0, errorsmod.Wrapf(ErrUnformattedRevision, "chain id: %s", id)
	}
	revision, perr := strconv.ParseUint(revStr, 10, 64)
	if perr != nil {
		return "", 0, errorsmod.Wrapf(ErrUnformattedRevision, "chain id: %s: %s", id, perr)
	}
	return name, revision, nil
}

// AsString returns the underlying string.
func (c ChainId) AsString() string {
	return c.id
}

// String implements fmt.Stringer.
func (c ChainId) String() string {
	return c.id
}

// RevisionNumber returns the parsed revision number (0 if the id has no
// parseable revision suffix).
func (c ChainId) RevisionNumber() uint64 {
	return c.revisionNumber
}

// SplitChainID returns the chain name and revision number, re-deriving them
// from the stored id rather than trusting a previously cached split.
func (c ChainId) SplitChainID() (name string, revision uint64, err error) {
	return splitChainID(c.id)
}

// ValidateLength checks the chain-name component (or the whole id, if there
// is no parseable revision suffix) is within [min, max].
func (c ChainId) ValidateLength(min, max uint) error {
	name, _, err := c.SplitChainID()
	if err != nil {
		return ValidateIdentifierLength(c.id, min, max)
	}
	return ValidateIdentifierLength(name, min, max)
}

// IncrementRevisionNumber returns a new ChainId with the revision number
// incremented by one, formatted as "{name}-{revision+1}". It fails if the
// current id has no parseable revision suffix, or if incrementing would
// overflow uint64.
func (c ChainId) IncrementRevisionNumber() (ChainId, error) {
	name, _, err := c.SplitChainID()
	if err != nil {
		return ChainId{}, errorsmod.Wrapf(ErrUnformattedRevision, "chain id: %s", c.id)
	}
	// The revision counter is bumped via an arbitrary-precision Int rather
	// than raw uint64 arithmetic so the overflow check holds even if this
	// type is ever widened past 64 bits.
	next := sdkmath.NewIntFromUint64(c.revisionNumber).AddRaw(1)
	if !next.IsUint64() {
		return ChainId{}, errorsmod.Wrapf(ErrRevisionNumberOverflow, "chain id: %s", c.id)
	}
	nextRevision := next.Uint64()
	return ChainId{id: fmt.Sprintf("%s-%d", name, nextRevision), revisionNumber: nextRevision}, nil
}
