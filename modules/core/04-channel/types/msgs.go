package types

import (
	errorsmod "cosmossdk.io/errors"
	cosmoserrors "github.com/cosmos/cosmos-sdk/types/errors"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// MsgChannelOpenInit is chain A's opening move on a channel.
type MsgChannelOpenInit struct {
	PortId             string
	Channel            ChannelEnd
	Signer             string
}

// MsgChannelOpenTry is chain B's response, proving A's channel end is in
// Init with matching counterparty.
type MsgChannelOpenTry struct {
	PortId              string
	Channel              ChannelEnd
	CounterpartyVersion   string
	ProofInit              []byte
	ProofHeight            exported.Height
	Signer                 string
}

// MsgChannelOpenAck is chain A's confirmation of B's TryOpen.
type MsgChannelOpenAck struct {
	PortId                string
	ChannelId              string
	CounterpartyChannelId   string
	CounterpartyVersion      string
	ProofTry                  []byte
	ProofHeight                exported.Height
	Signer                     string
}

// MsgChannelOpenConfirm is chain B's acknowledgement that A observed Open.
type MsgChannelOpenConfirm struct {
	PortId      string
	ChannelId   string
	ProofAck    []byte
	ProofHeight exported.Height
	Signer      string
}

// MsgChannelCloseInit begins the close handshake from our side.
type MsgChannelCloseInit struct {
	PortId    string
	ChannelId string
	Signer    string
}

// MsgChannelCloseConfirm proves the counterparty has already closed.
type MsgChannelCloseConfirm struct {
	PortId      string
	ChannelId   string
	ProofInit   []byte
	ProofHeight exported.Height
	Signer      string
}

// MsgRecvPacket delivers a packet along with the sender-side commitment proof.
type MsgRecvPacket struct {
	Packet          Packet
	ProofCommitment []byte
	ProofHeight     exported.Height
	Signer          string
}

// MsgAcknowledgement closes the loop on a sent packet with the
// receiver-supplied acknowledgement and its commitment proof.
type MsgAcknowledgement struct {
	Packet          Packet
	Acknowledgement []byte
	ProofAcked      []byte
	ProofHeight     exported.Height
	Signer          string
}

// MsgTimeout proves the counterparty never received a sent packet.
type MsgTimeout struct {
	Packet           Packet
	ProofUnreceived  []byte
	ProofHeight      exported.Height
	NextSequenceRecv uint64
	Signer           string
}

// MsgTimeoutOnClose is MsgTimeout plus proof that the counterparty channel
// has closed.
type MsgTimeoutOnClose struct {
	Packet           Packet
	ProofUnreceived  []byte
	ProofClose       []byte
	ProofHeight      exported.Height
	NextSequenceRecv uint64
	Signer           string
}

func (m MsgChannelOpenInit) ValidateBasic() error {
	if err := host.ValidatePortID(m.PortId); err != nil {
		return errorsmod.Wrap(ErrInvalidChannel, err.Error())
	}
	if m.Channel.Ordering != ORDERED && m.Channel.Ordering != UNORDERED {
		return errorsmod.Wrap(ErrInvalidChannelOrdering, "channel ordering must be ORDERED or UNORDERED")
	}
	if len(m.Channel.ConnectionHops) != 1 {
		return errorsmod.Wrap(ErrInvalidConnectionHops, "channel must have exactly one connection hop")
	}
	if m.Channel.Counterparty.PortId == "" {
		return errorsmod.Wrap(ErrInvalidChannel, "counterparty port id cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

func (m MsgChannelOpenTry) ValidateBasic() error {
	if err := host.ValidatePortID(m.PortId); err != nil {
		return errorsmod.Wrap(ErrInvalidChannel, err.Error())
	}
	if m.Channel.Ordering != ORDERED && m.Channel.Ordering != UNORDERED {
		return errorsmod.Wrap(ErrInvalidChannelOrdering, "channel ordering must be ORDERED or UNORDERED")
	}
	if len(m.Channel.ConnectionHops) != 1 {
		return errorsmod.Wrap(ErrInvalidConnectionHops, "channel must have exactly one connection hop")
	}
	if len(m.ProofInit) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

func (m MsgChannelOpenAck) ValidateBasic() error {
	if err := host.ValidatePortID(m.PortId); err != nil {
		return errorsmod.Wrap(ErrInvalidChannel, err.Error())
	}
	if err := host.ValidateChannelID(m.ChannelId); err != nil {
		return errorsmod.Wrap(ErrInvalidChannel, err.Error())
	}
	if m.CounterpartyChannelId == "" {
		return errorsmod.Wrap(ErrInvalidChannel, "counterparty channel id cannot be empty")
	}
	if len(m.ProofTry) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

func (m MsgChannelOpenConfirm) ValidateBasic() error {
	if err := host.ValidatePortID(m.PortId); err != nil {
		return errorsmod.Wrap(ErrInvalidChannel, err.Error())
	}
	if err := host.ValidateChannelID(m.ChannelId); err != nil {
		return errorsmod.Wrap(ErrInvalidChannel, err.Error())
	}
	if len(m.ProofAck) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

func (m MsgChannelCloseInit) ValidateBasic() error {
	if err := host.ValidatePortID(m.PortId); err != nil {
		return errorsmod.Wrap(ErrInvalidChannel, err.Error())
	}
	if err := host.ValidateChannelID(m.ChannelId); err != nil {
		return errorsmod.Wrap(ErrInvalidChannel, err.Error())
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

func (m MsgChannelCloseConfirm) ValidateBasic() error {
	if err := host.ValidatePortID(m.PortId); err != nil {
		return errorsmod.Wrap(ErrInvalidChannel, err.Error())
	}
	if err := host.ValidateChannelID(m.ChannelId); err != nil {
		return errorsmod.Wrap(ErrInvalidChannel, err.Error())
	}
	if len(m.ProofInit) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

func (m MsgRecvPacket) ValidateBasic() error {
	if err := m.Packet.ValidateBasic(); err != nil {
		return err
	}
	if len(m.ProofCommitment) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

func (m MsgAcknowledgement) ValidateBasic() error {
	if err := m.Packet.ValidateBasic(); err != nil {
		return err
	}
	if len(m.Acknowledgement) == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "acknowledgement cannot be empty")
	}
	if len(m.ProofAcked) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

func (m MsgTimeout) ValidateBasic() error {
	if err := m.Packet.ValidateBasic(); err != nil {
		return err
	}
	if len(m.ProofUnreceived) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

func (m MsgTimeoutOnClose) ValidateBasic() error {
	if err := m.Packet.ValidateBasic(); err != nil {
		return err
	}
	if len(m.ProofUnreceived) == 0 || len(m.ProofClose) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proofs cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}
