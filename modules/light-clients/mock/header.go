package mock

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// Header is the mock client's update message: a height, a commitment root,
// and a timestamp. The mock client trusts every well-formed header
// unconditionally; there is no signature to check.
type Header struct {
	Height    exported.Height
	Timestamp uint64
	Root      []byte
}

var _ exported.ClientMessage = (*Header)(nil)

func (h *Header) ClientType() string { return ClientType }

func (h *Header) ValidateBasic() error {
	if h.Height == nil || h.Height.IsZero() {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "mock header height cannot be zero")
	}
	if h.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "mock header timestamp cannot be zero")
	}
	if len(h.Root) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "mock header root cannot be empty")
	}
	return nil
}

// Misbehaviour is equivocation evidence: two headers for the same height
// committing to different roots.
type Misbehaviour struct {
	ClientID string
	Header1  *Header
	Header2  *Header
}

var _ exported.ClientMessage = (*Misbehaviour)(nil)

func (m *Misbehaviour) ClientType() string { return ClientType }

func (m *Misbehaviour) ValidateBasic() error {
	if m.Header1 == nil || m.Header2 == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "mock misbehaviour requires two headers")
	}
	if err := m.Header1.ValidateBasic(); err != nil {
		return errorsmod.Wrapf(clienttypes.ErrInvalidMisbehaviour, "header1: %s", err)
	}
	if err := m.Header2.ValidateBasic(); err != nil {
		return errorsmod.Wrapf(clienttypes.ErrInvalidMisbehaviour, "header2: %s", err)
	}
	return nil
}
