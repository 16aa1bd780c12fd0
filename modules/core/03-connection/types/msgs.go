package types

import (
	errorsmod "cosmossdk.io/errors"
	cosmoserrors "github.com/cosmos/cosmos-sdk/types/errors"

	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// MsgConnectionOpenInit is chain A's opening move: it names the client it
// trusts and the counterparty client it expects B to be running, and offers
// the versions it supports.
type MsgConnectionOpenInit struct {
	ClientId           string
	CounterpartyClientId string
	CounterpartyPrefix exported.Prefix
	Version            *Version
	DelayPeriod        uint64
	Signer             string
}

// MsgConnectionOpenTry is chain B's response: it proves A's connection end is
// in Init with matching client ids, that A has stored a client state for B,
// and that A's consensus state at B's reference height matches B's own.
type MsgConnectionOpenTry struct {
	ClientId              string
	CounterpartyClientId   string
	CounterpartyConnectionId string
	CounterpartyPrefix     exported.Prefix
	CounterpartyVersions    []Version
	ClientState             exported.ClientState
	ProofHeight              exported.Height
	ProofInit                []byte
	ProofClient              []byte
	ProofConsensus           []byte
	ConsensusHeight          exported.Height
	DelayPeriod              uint64
	Signer                   string
}

// MsgConnectionOpenAck is chain A's confirmation of B's TryOpen, pinning the
// version B chose and re-running the three handshake proofs against B's
// TryOpen state.
type MsgConnectionOpenAck struct {
	ConnectionId           string
	CounterpartyConnectionId string
	Version                *Version
	ClientState              exported.ClientState
	ProofHeight               exported.Height
	ProofTry                  []byte
	ProofClient                []byte
	ProofConsensus             []byte
	ConsensusHeight            exported.Height
	Signer                     string
}

// MsgConnectionOpenConfirm is chain B's acknowledgement that A observed its
// TryOpen and moved to Open; only the connection-state proof is required.
type MsgConnectionOpenConfirm struct {
	ConnectionId string
	ProofAck     []byte
	ProofHeight  exported.Height
	Signer       string
}

func (m MsgConnectionOpenInit) ValidateBasic() error {
	if err := host.ValidateClientID(m.ClientId); err != nil {
		return errorsmod.Wrap(ErrInvalidConnection, err.Error())
	}
	if m.CounterpartyClientId == "" {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty client id cannot be empty")
	}
	if m.CounterpartyPrefix == nil || m.CounterpartyPrefix.IsEmpty() {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty commitment prefix cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

func (m MsgConnectionOpenTry) ValidateBasic() error {
	if err := host.ValidateClientID(m.ClientId); err != nil {
		return errorsmod.Wrap(ErrInvalidConnection, err.Error())
	}
	if m.CounterpartyClientId == "" {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty client id cannot be empty")
	}
	if len(m.CounterpartyVersions) == 0 {
		return errorsmod.Wrap(ErrInvalidVersion, "counterparty must offer at least one version")
	}
	if m.ClientState == nil {
		return errorsmod.Wrap(ErrInvalidConnection, "self client state cannot be nil")
	}
	if len(m.ProofInit) == 0 || len(m.ProofClient) == 0 || len(m.ProofConsensus) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proofs cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

func (m MsgConnectionOpenAck) ValidateBasic() error {
	if err := host.ValidateConnectionID(m.ConnectionId); err != nil {
		return errorsmod.Wrap(ErrInvalidConnection, err.Error())
	}
	if m.CounterpartyConnectionId == "" {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty connection id cannot be empty")
	}
	if m.Version == nil {
		return errorsmod.Wrap(ErrInvalidVersion, "version cannot be nil")
	}
	if m.ClientState == nil {
		return errorsmod.Wrap(ErrInvalidConnection, "self client state cannot be nil")
	}
	if len(m.ProofTry) == 0 || len(m.ProofClient) == 0 || len(m.ProofConsensus) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proofs cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

func (m MsgConnectionOpenConfirm) ValidateBasic() error {
	if err := host.ValidateConnectionID(m.ConnectionId); err != nil {
		return errorsmod.Wrap(ErrInvalidConnection, err.Error())
	}
	if len(m.ProofAck) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}
