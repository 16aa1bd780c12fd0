// Package tendermint implements the concrete 07-tendermint light client
//: a client type backed by a CometBFT
// chain's validator-set hash chaining, trusting period, and clock drift
// tolerance, as opposed to the mock light client's unconditional trust. It
// registers itself with the client subsystem's type registry exactly as the
// mock package does, so the connection/channel/packet handlers stay
// polymorphic over exported.ClientState and never branch on client type.
package tendermint

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ClientType identifies this light client in client IDs ("07-tendermint-0", ...).
const ClientType = "07-tendermint"

func init() {
	clienttypes.RegisterClientType(ClientType, UnmarshalClientState, UnmarshalConsensusState)
}

// ClientState is the 07-tendermint client's persisted state: the
// counterparty chain id, its trust parameters, and the heights this client
// has verified. UpgradePath names the store path the
// counterparty commits its post-upgrade client/consensus state under,
// consulted by VerifyUpgradeAndUpdateState.
type ClientState struct {
	ChainID         string
	TrustingPeriod  time.Duration
	UnbondingPeriod time.Duration
	MaxClockDrift   time.Duration
	LatestHeight    exported.Height
	FrozenHeight    exported.Height
	UpgradePath     []string
}

var _ exported.ClientState = (*ClientState)(nil)

// NewClientState returns an active tendermint client state tracking chainID,
// trusting chainID's consensus for trustingPeriod, and currently verified up
// to latestHeight.
func NewClientState(chainID string, trustingPeriod, unbondingPeriod, maxClockDrift time.Duration, latestHeight exported.Height, upgradePath []string) *ClientState {
	return &ClientState{
		ChainID:         chainID,
		TrustingPeriod:  trustingPeriod,
		UnbondingPeriod: unbondingPeriod,
		MaxClockDrift:   maxClockDrift,
		LatestHeight:    latestHeight,
		FrozenHeight:    exported.ZeroHeight(),
		UpgradePath:     upgradePath,
	}
}

func (cs *ClientState) ClientType() string               { return ClientType }
func (cs *ClientState) GetLatestHeight() exported.Height { return cs.LatestHeight }

// Validate performs the stateless sanity checks a newly created client
// state must pass, matching the field invariants real ibc-go's tendermint
// ClientState.Validate enforces.
func (cs *ClientState) Validate() error {
	if cs.ChainID == "" {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "tendermint chain id cannot be empty")
	}
	if cs.TrustingPeriod <= 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "tendermint trusting period must be positive")
	}
	if cs.UnbondingPeriod <= 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "tendermint unbonding period must be positive")
	}
	if cs.TrustingPeriod >= cs.UnbondingPeriod {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "tendermint trusting period must be strictly less than unbonding period")
	}
	if cs.MaxClockDrift <= 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "tendermint max clock drift must be positive")
	}
	if cs.LatestHeight == nil || cs.LatestHeight.IsZero() {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "tendermint latest height cannot be zero")
	}
	return nil
}

// ZeroCustomFields returns a copy with FrozenHeight zeroed and every other
// field kept.
func (cs *ClientState) ZeroCustomFields() exported.ClientState {
	return &ClientState{
		ChainID:         cs.ChainID,
		TrustingPeriod:  cs.TrustingPeriod,
		UnbondingPeriod: cs.UnbondingPeriod,
		MaxClockDrift:   cs.MaxClockDrift,
		LatestHeight:    cs.LatestHeight,
		FrozenHeight:    exported.ZeroHeight(),
		UpgradePath:     cs.UpgradePath,
	}
}

// Status derives Active/Frozen/Expired/Unknown from the frozen height and
// the elapsed time since the latest consensus state relative to the
// trusting period.
func (cs *ClientState) Status(ctx context.Context, clientStore exported.ClientStore, cdc codec.BinaryCodec) exported.Status {
	if cs.FrozenHeight != nil && !cs.FrozenHeight.IsZero() {
		return exported.Frozen
	}

	path := host.ConsensusStatePath(cs.LatestHeight.GetRevisionNumber(), cs.LatestHeight.GetRevisionHeight())
	bz, err := clientStore.Get(ctx, []byte(path))
	if err != nil || bz == nil {
		return exported.Unknown
	}
	consState, err := UnmarshalConsensusState(bz)
	if err != nil {
		return exported.Unknown
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime()
	elapsed := now.Sub(time.Unix(0, int64(consState.GetTimestamp())))
	if elapsed > cs.TrustingPeriod {
		return exported.Expired
	}
	return exported.Active
}

// VerifyClientMessage checks a header's internal consistency and its
// validator-set linkage to a previously trusted height, or a misbehaviour
// submission's equivocation shape.
func (cs *ClientState) VerifyClientMessage(ctx context.Context, cdc codec.BinaryCodec, clientStore exported.ClientStore, clientMsg exported.ClientMessage) error {
	switch msg := clientMsg.(type) {
	case *Header:
		return cs.verifyHeader(ctx, clientStore, msg)
	case *Misbehaviour:
		if err := msg.ValidateBasic(); err != nil {
			return err
		}
		if bytes.Equal(msg.Header1.Hash(), msg.Header2.Hash()) {
			return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "tendermint misbehaviour headers are identical")
		}
		if err := cs.verifyHeader(ctx, clientStore, msg.Header1); err != nil {
			return errorsmod.Wrapf(clienttypes.ErrInvalidMisbehaviour, "header1: %s", err)
		}
		if err := cs.verifyHeader(ctx, clientStore, msg.Header2); err != nil {
			return errorsmod.Wrapf(clienttypes.ErrInvalidMisbehaviour, "header2: %s", err)
		}
		return nil
	default:
		return errorsmod.Wrapf(clienttypes.ErrInvalidClient, "unsupported client message type %T for tendermint client", clientMsg)
	}
}

// verifyHeader checks header.ChainID against the client's tracked chain,
// checks header.Time is within MaxClockDrift of the host's block time, and
// checks the validator-set hash linkage from the trusted height's stored
// NextValidatorsHash to header.ValidatorsHash — the core bisection invariant
// a tendermint light client enforces before trusting a new height (BFT
// commit-signature verification itself is delegated to the host chain's
// consensus layer, out of scope here).
func (cs *ClientState) verifyHeader(ctx context.Context, clientStore exported.ClientStore, header *Header) error {
	if err := header.ValidateBasic(); err != nil {
		return err
	}
	if header.ChainID != cs.ChainID {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeader, "header chain id %s does not match client chain id %s", header.ChainID, cs.ChainID)
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime()
	headerTime := time.Unix(0, int64(header.Time))
	if headerTime.After(now.Add(cs.MaxClockDrift)) {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeader, "header time %s too far ahead of host time %s", headerTime, now)
	}

	trustedPath := host.ConsensusStatePath(header.TrustedHeight.GetRevisionNumber(), header.TrustedHeight.GetRevisionHeight())
	bz, err := clientStore.Get(ctx, []byte(trustedPath))
	if err != nil {
		return err
	}
	if bz == nil {
		return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "no trusted consensus state at height %s", header.TrustedHeight)
	}
	trusted, err := UnmarshalConsensusState(bz)
	if err != nil {
		return err
	}
	trustedTendermint, ok := trusted.(*ConsensusState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidConsensus, "unexpected consensus state type %T at trusted height", trusted)
	}
	if !bytes.Equal(trustedTendermint.NextValidatorsHash, header.ValidatorsHash) {
		return errorsmod.Wrap(clienttypes.ErrHeaderVerificationFailed, "header validators hash does not match trusted next validators hash")
	}
	if now.Sub(time.Unix(0, int64(trustedTendermint.Timestamp))) > cs.TrustingPeriod {
		return errorsmod.Wrap(clienttypes.ErrClientExpired, "trusted consensus state has passed its trusting period")
	}
	return nil
}

// CheckForMisbehaviour reports true only for an explicit Misbehaviour
// submission; VerifyClientMessage has already proven it internally
// consistent by the time this is called.
func (cs *ClientState) CheckForMisbehaviour(ctx context.Context, cdc codec.BinaryCodec, clientStore exported.ClientStore, clientMsg exported.ClientMessage) bool {
	_, ok := clientMsg.(*Misbehaviour)
	return ok
}

// UpdateStateOnMisbehaviour freezes the client at its current latest height;
// no new consensus state is stored.
func (cs *ClientState) UpdateStateOnMisbehaviour(ctx context.Context, cdc codec.BinaryCodec, clientStore exported.ClientStore, clientMsg exported.ClientMessage) {
	cs.FrozenHeight = cs.LatestHeight
}

// UpdateState stores the consensus state derived from header and advances
// LatestHeight if header's height is greater, idempotently.
func (cs *ClientState) UpdateState(ctx context.Context, cdc codec.BinaryCodec, clientStore exported.ClientStore, clientMsg exported.ClientMessage) []exported.Height {
	header, ok := clientMsg.(*Header)
	if !ok {
		return nil
	}

	consState := &ConsensusState{
		Timestamp:          header.Time,
		Root:               header.Root,
		NextValidatorsHash: header.NextValidatorsHash,
	}
	bz, err := clienttypes.MarshalConsensusState(ClientType, consState)
	if err != nil {
		return nil
	}
	path := host.ConsensusStatePath(header.Height.GetRevisionNumber(), header.Height.GetRevisionHeight())
	if err := clientStore.Set(ctx, []byte(path), bz); err != nil {
		return nil
	}

	if header.Height.GT(cs.LatestHeight) {
		cs.LatestHeight = header.Height
	}
	return []exported.Height{header.Height}
}

// VerifyMembership checks proof of existence of value at path, anchored at
// the consensus state stored for height. Delay-period enforcement is done
// once, upstream in the connection/channel keepers, so this method does not repeat it. Proof
// construction (ICS-23) is out of scope; this engine's store hands
// back the raw committed bytes as the proof, so membership is proof == value,
// the same contract the mock client and store.MemStore.GetProof share.
func (cs *ClientState) VerifyMembership(
	ctx context.Context, clientStore exported.ClientStore, cdc codec.BinaryCodec,
	height exported.Height, delayTimePeriod, delayBlockPeriod uint64,
	proof []byte, path exported.Path, value []byte,
) error {
	if _, err := cs.getConsensusState(ctx, clientStore, height); err != nil {
		return err
	}
	if len(proof) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "empty membership proof")
	}
	if !bytes.Equal(proof, value) {
		return errorsmod.Wrapf(clienttypes.ErrHeaderVerificationFailed, "membership proof mismatch at path %s", path)
	}
	return nil
}

// VerifyNonMembership checks proof of the absence of any value at path.
func (cs *ClientState) VerifyNonMembership(
	ctx context.Context, clientStore exported.ClientStore, cdc codec.BinaryCodec,
	height exported.Height, delayTimePeriod, delayBlockPeriod uint64,
	proof []byte, path exported.Path,
) error {
	if _, err := cs.getConsensusState(ctx, clientStore, height); err != nil {
		return err
	}
	if len(proof) != 0 {
		return errorsmod.Wrapf(clienttypes.ErrHeaderVerificationFailed, "non-empty proof for non-membership at path %s", path)
	}
	return nil
}

func (cs *ClientState) getConsensusState(ctx context.Context, clientStore exported.ClientStore, height exported.Height) (*ConsensusState, error) {
	path := host.ConsensusStatePath(height.GetRevisionNumber(), height.GetRevisionHeight())
	bz, err := clientStore.Get(ctx, []byte(path))
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "no consensus state at height %s", height)
	}
	generic, err := UnmarshalConsensusState(bz)
	if err != nil {
		return nil, err
	}
	tmConsState, ok := generic.(*ConsensusState)
	if !ok {
		return nil, errorsmod.Wrapf(clienttypes.ErrInvalidConsensus, "unexpected consensus state type %T", generic)
	}
	return tmConsState, nil
}

// VerifyUpgradeAndUpdateState replaces the stored client/consensus state with
// the upgrade target. It requires a configured UpgradePath, two non-empty
// proofs, and a tendermint client and consensus state as the target; the
// proofs' contents are not checked against UpgradePath, matching the mock
// client's posture on upgrade proofs.
func (cs *ClientState) VerifyUpgradeAndUpdateState(
	ctx context.Context, cdc codec.BinaryCodec, clientStore exported.ClientStore,
	newClient exported.ClientState, newConsState exported.ConsensusState,
	upgradeClientProof, upgradeConsStateProof []byte,
) error {
	if len(cs.UpgradePath) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidUpgradeClient, "client has no configured upgrade path")
	}
	if len(upgradeClientProof) == 0 || len(upgradeConsStateProof) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidUpgradeClient, "empty upgrade proof")
	}
	newCS, ok := newClient.(*ClientState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidClient, "unsupported upgrade target type %T", newClient)
	}
	newTMConsState, ok := newConsState.(*ConsensusState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidConsensus, "unsupported upgrade consensus state type %T", newConsState)
	}

	cs.ChainID = newCS.ChainID
	cs.TrustingPeriod = newCS.TrustingPeriod
	cs.UnbondingPeriod = newCS.UnbondingPeriod
	cs.MaxClockDrift = newCS.MaxClockDrift
	cs.LatestHeight = newCS.LatestHeight
	cs.UpgradePath = newCS.UpgradePath
	cs.FrozenHeight = exported.ZeroHeight()

	path := host.ConsensusStatePath(cs.LatestHeight.GetRevisionNumber(), cs.LatestHeight.GetRevisionHeight())
	bz, err := clienttypes.MarshalConsensusState(ClientType, newTMConsState)
	if err != nil {
		return err
	}
	return clientStore.Set(ctx, []byte(path), bz)
}

// tendermintClientStateJSON is the wire shape Marshal/UnmarshalClientState
// use; exported.Height has no exported concrete type so it is flattened.
type tendermintClientStateJSON struct {
	ChainID                          string
	TrustingPeriodNanos              int64
	UnbondingPeriodNanos             int64
	MaxClockDriftNanos               int64
	LatestRevision, LatestHeight     uint64
	FrozenRevision, FrozenHeightVal  uint64
	UpgradePath                      []string
}

func (cs *ClientState) Marshal() ([]byte, error) {
	frozen := cs.FrozenHeight
	if frozen == nil {
		frozen = exported.ZeroHeight()
	}
	return json.Marshal(tendermintClientStateJSON{
		ChainID:               cs.ChainID,
		TrustingPeriodNanos:   int64(cs.TrustingPeriod),
		UnbondingPeriodNanos:  int64(cs.UnbondingPeriod),
		MaxClockDriftNanos:    int64(cs.MaxClockDrift),
		LatestRevision:        cs.LatestHeight.GetRevisionNumber(),
		LatestHeight:          cs.LatestHeight.GetRevisionHeight(),
		FrozenRevision:        frozen.GetRevisionNumber(),
		FrozenHeightVal:       frozen.GetRevisionHeight(),
		UpgradePath:           cs.UpgradePath,
	})
}

// UnmarshalClientState decodes a tendermint ClientState, registered against
// "07-tendermint" client IDs so the client keeper can recover it from raw
// store bytes.
func UnmarshalClientState(bz []byte) (exported.ClientState, error) {
	var raw tendermintClientStateJSON
	if err := json.Unmarshal(bz, &raw); err != nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "failed to decode tendermint client state")
	}
	return &ClientState{
		ChainID:         raw.ChainID,
		TrustingPeriod:  time.Duration(raw.TrustingPeriodNanos),
		UnbondingPeriod: time.Duration(raw.UnbondingPeriodNanos),
		MaxClockDrift:   time.Duration(raw.MaxClockDriftNanos),
		LatestHeight:    exported.NewHeight(raw.LatestRevision, raw.LatestHeight),
		FrozenHeight:    exported.NewHeight(raw.FrozenRevision, raw.FrozenHeightVal),
		UpgradePath:     raw.UpgradePath,
	}, nil
}
