package types

import (
	errorsmod "cosmossdk.io/errors"
	cosmoserrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// MsgCreateClient registers a new light client tracking a counterparty chain.
type MsgCreateClient struct {
	ClientState    exported.ClientState
	ConsensusState exported.ConsensusState
	Signer         string
}

// MsgUpdateClient advances an existing client with a new header (or submits a
// misbehaviour proof through the same ClientMessage slot).
type MsgUpdateClient struct {
	ClientID string
	Header   exported.ClientMessage
	Signer   string
}

// MsgUpgradeClient replaces a client's state following a counterparty chain
// upgrade, proven via the pre-upgrade client's membership proof.
type MsgUpgradeClient struct {
	ClientID                 string
	UpgradedClient            exported.ClientState
	UpgradedConsensusState     exported.ConsensusState
	ProofUpgradeClient        []byte
	ProofUpgradeConsensusState []byte
	Signer                    string
}

// MsgSubmitMisbehaviour submits equivocation evidence against a client.
type MsgSubmitMisbehaviour struct {
	ClientID     string
	Misbehaviour exported.ClientMessage
	Signer       string
}

// ValidateBasic performs stateless checks independent of any store read.
func (m MsgCreateClient) ValidateBasic() error {
	if m.ClientState == nil {
		return errorsmod.Wrap(ErrInvalidClient, "client state cannot be nil")
	}
	if m.ConsensusState == nil {
		return errorsmod.Wrap(ErrInvalidConsensus, "consensus state cannot be nil")
	}
	if err := m.ClientState.Validate(); err != nil {
		return errorsmod.Wrapf(ErrInvalidClient, "invalid client state: %s", err)
	}
	if err := m.ConsensusState.ValidateBasic(); err != nil {
		return errorsmod.Wrapf(ErrInvalidConsensus, "invalid consensus state: %s", err)
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

// ValidateBasic performs stateless checks independent of any store read.
func (m MsgUpdateClient) ValidateBasic() error {
	if m.Header == nil {
		return errorsmod.Wrap(ErrInvalidHeader, "client message cannot be nil")
	}
	if err := m.Header.ValidateBasic(); err != nil {
		return errorsmod.Wrapf(ErrInvalidHeader, "invalid client message: %s", err)
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

// ValidateBasic performs stateless checks independent of any store read.
func (m MsgUpgradeClient) ValidateBasic() error {
	if m.UpgradedClient == nil || m.UpgradedConsensusState == nil {
		return errorsmod.Wrap(ErrInvalidUpgradeClient, "upgraded client and consensus state cannot be nil")
	}
	if len(m.ProofUpgradeClient) == 0 || len(m.ProofUpgradeConsensusState) == 0 {
		return errorsmod.Wrap(ErrInvalidUpgradeClient, "upgrade proofs cannot be empty")
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}

// ValidateBasic performs stateless checks independent of any store read.
func (m MsgSubmitMisbehaviour) ValidateBasic() error {
	if m.Misbehaviour == nil {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "misbehaviour cannot be nil")
	}
	if err := m.Misbehaviour.ValidateBasic(); err != nil {
		return errorsmod.Wrapf(ErrInvalidMisbehaviour, "invalid misbehaviour: %s", err)
	}
	if m.Signer == "" {
		return cosmoserrors.ErrInvalidAddress.Wrap("signer cannot be empty")
	}
	return nil
}
