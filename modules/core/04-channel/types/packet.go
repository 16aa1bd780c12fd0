package types

import (
	"crypto/sha256"
	"encoding/binary"

	errorsmod "cosmossdk.io/errors"

	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// Packet is the application-level message relayed across a channel.
type Packet struct {
	Sequence           uint64
	SourcePort         string
	SourceChannel      string
	DestinationPort    string
	DestinationChannel string
	Data               []byte
	TimeoutHeight      exported.Height
	TimeoutTimestamp   uint64
}

// ValidateBasic checks the packet's shape independent of any store read:
// non-zero sequence, non-empty identifiers, and at least one timeout bound
// set.
func (p Packet) ValidateBasic() error {
	if p.Sequence == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "packet sequence cannot be 0")
	}
	if p.SourcePort == "" || p.SourceChannel == "" || p.DestinationPort == "" || p.DestinationChannel == "" {
		return errorsmod.Wrap(ErrInvalidPacket, "packet port/channel identifiers cannot be empty")
	}
	if len(p.Data) == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "packet data cannot be empty")
	}
	timeoutHeightSet := p.TimeoutHeight != nil && !p.TimeoutHeight.IsZero()
	if !timeoutHeightSet && p.TimeoutTimestamp == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "packet timeout height and timeout timestamp cannot both be zero")
	}
	return nil
}

// CommitPacket computes the 32-byte packet commitment bound at the sender
//: H(be64(timeout_timestamp) || be64(timeout_height.revision) ||
// be64(timeout_height.height) || sha256(data)).
func CommitPacket(p Packet) []byte {
	var buf [8 * 3]byte
	binary.BigEndian.PutUint64(buf[0:8], p.TimeoutTimestamp)
	revisionNumber, revisionHeight := uint64(0), uint64(0)
	if p.TimeoutHeight != nil {
		revisionNumber = p.TimeoutHeight.GetRevisionNumber()
		revisionHeight = p.TimeoutHeight.GetRevisionHeight()
	}
	binary.BigEndian.PutUint64(buf[8:16], revisionNumber)
	binary.BigEndian.PutUint64(buf[16:24], revisionHeight)

	dataHash := sha256.Sum256(p.Data)

	h := sha256.New()
	h.Write(buf[:])
	h.Write(dataHash[:])
	return h.Sum(nil)
}

// CommitAcknowledgement computes the acknowledgement commitment hash stored
// at the receiver.
func CommitAcknowledgement(ack []byte) []byte {
	h := sha256.Sum256(ack)
	return h[:]
}
