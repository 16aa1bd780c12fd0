package tendermint

import (
	"encoding/binary"

	errorsmod "cosmossdk.io/errors"
	"github.com/cometbft/cometbft/crypto/tmhash"

	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// Header is a 07-tendermint client's update message: a signed header's
// commitment fields plus the validator set hashes needed to chain trust from
// TrustedHeight forward, mirroring the shape of ibc-go's tendermint Header
// without the full cometbft SignedHeader/ValidatorSet encoding (proof-of-stake
// signature aggregation is out of scope for this light client; it verifies
// the validator-set hash linkage that IBC's own handlers are responsible
// for, not the BFT commit itself).
type Header struct {
	ChainID            string
	Height             exported.Height
	Time               uint64 // unix nanoseconds
	Root               []byte // app hash committed at Height
	ValidatorsHash      []byte // hash of the validator set that signed this header
	NextValidatorsHash []byte // hash of the validator set that will sign Height+1

	// TrustedHeight is the previously-stored consensus state this header
	// extends trust from; its NextValidatorsHash must equal this header's
	// ValidatorsHash for the update to be accepted.
	TrustedHeight exported.Height
}

var _ exported.ClientMessage = (*Header)(nil)

func (h *Header) ClientType() string { return ClientType }

// Hash deterministically fingerprints the header's commitment fields using
// cometbft's own hash function, the same primitive a real light block uses
// to identify itself. Two headers at the same height with different Hash()
// values is the equivocation signature Misbehaviour checks for.
func (h *Header) Hash() []byte {
	buf := make([]byte, 0, len(h.ChainID)+8+8+len(h.Root)+len(h.ValidatorsHash)+len(h.NextValidatorsHash))
	buf = append(buf, h.ChainID...)
	var heightBuf [8]byte
	binary.BigEndian.PutUint64(heightBuf[:], h.Height.GetRevisionHeight())
	buf = append(buf, heightBuf[:]...)
	var timeBuf [8]byte
	binary.BigEndian.PutUint64(timeBuf[:], h.Time)
	buf = append(buf, timeBuf[:]...)
	buf = append(buf, h.Root...)
	buf = append(buf, h.ValidatorsHash...)
	buf = append(buf, h.NextValidatorsHash...)
	return tmhash.Sum(buf)
}

func (h *Header) ValidateBasic() error {
	if h.ChainID == "" {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "tendermint header chain id cannot be empty")
	}
	if h.Height == nil || h.Height.IsZero() {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "tendermint header height cannot be zero")
	}
	if h.Time == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "tendermint header time cannot be zero")
	}
	if len(h.Root) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "tendermint header root cannot be empty")
	}
	if len(h.ValidatorsHash) != tmhash.Size {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeader, "tendermint header validators hash must be %d bytes", tmhash.Size)
	}
	if len(h.NextValidatorsHash) != tmhash.Size {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeader, "tendermint header next validators hash must be %d bytes", tmhash.Size)
	}
	if h.TrustedHeight == nil || h.TrustedHeight.GTE(h.Height) {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "tendermint header trusted height must be less than header height")
	}
	return nil
}

// Misbehaviour is equivocation evidence for a 07-tendermint client: two
// headers for the same height that hash to different values, i.e. the
// validator set double-signed two conflicting blocks at one height.
type Misbehaviour struct {
	ClientID string
	Header1  *Header
	Header2  *Header
}

var _ exported.ClientMessage = (*Misbehaviour)(nil)

func (m *Misbehaviour) ClientType() string { return ClientType }

func (m *Misbehaviour) ValidateBasic() error {
	if m.Header1 == nil || m.Header2 == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "tendermint misbehaviour requires two headers")
	}
	if err := m.Header1.ValidateBasic(); err != nil {
		return errorsmod.Wrapf(clienttypes.ErrInvalidMisbehaviour, "header1: %s", err)
	}
	if err := m.Header2.ValidateBasic(); err != nil {
		return errorsmod.Wrapf(clienttypes.ErrInvalidMisbehaviour, "header2: %s", err)
	}
	if !m.Header1.Height.EQ(m.Header2.Height) {
		return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "tendermint misbehaviour requires two headers at the same height")
	}
	return nil
}
