// Package mock implements a minimal exported.ClientState for tests: it trusts
// every header unconditionally and treats a proof as valid membership iff it
// equals the value being checked, matching what store.MemStore.GetProof
// actually hands back.
package mock

import (
	"bytes"
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"

	clienttypes "github.com/tokenize-x/ibc-core/modules/core/02-client/types"
	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
	"github.com/tokenize-x/ibc-core/modules/core/exported"
)

// ClientType identifies this light client in client IDs ("mock-0", "mock-1", ...).
const ClientType = "mock"

func init() {
	clienttypes.RegisterClientType(ClientType, UnmarshalClientState, UnmarshalConsensusState)
}

// ClientState is the mock client's persisted state: a latest height and,
// once misbehaviour has been proven, the height it was frozen at.
type ClientState struct {
	LatestHeight exported.Height
	FrozenHeight exported.Height
}

var _ exported.ClientState = (*ClientState)(nil)

// NewClientState returns an active mock client state at latestHeight.
func NewClientState(latestHeight exported.Height) *ClientState {
	return &ClientState{LatestHeight: latestHeight, FrozenHeight: exported.ZeroHeight()}
}

func (cs *ClientState) ClientType() string          { return ClientType }
func (cs *ClientState) GetLatestHeight() exported.Height { return cs.LatestHeight }

func (cs *ClientState) Validate() error {
	if cs.LatestHeight == nil || cs.LatestHeight.IsZero() {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "mock client latest height cannot be zero")
	}
	return nil
}

func (cs *ClientState) ZeroCustomFields() exported.ClientState {
	return &ClientState{LatestHeight: cs.LatestHeight, FrozenHeight: cs.FrozenHeight}
}

func (cs *ClientState) Status(ctx context.Context, clientStore exported.ClientStore, cdc codec.BinaryCodec) exported.Status {
	if cs.FrozenHeight != nil && !cs.FrozenHeight.IsZero() {
		return exported.Frozen
	}
	path := host.ConsensusStatePath(cs.LatestHeight.GetRevisionNumber(), cs.LatestHeight.GetRevisionHeight())
	bz, err := clientStore.Get(ctx, []byte(path))
	if err != nil || bz == nil {
		return exported.Unknown
	}
	return exported.Active
}

func (cs *ClientState) VerifyClientMessage(ctx context.Context, cdc codec.BinaryCodec, clientStore exported.ClientStore, clientMsg exported.ClientMessage) error {
	switch msg := clientMsg.(type) {
	case *Header:
		return msg.ValidateBasic()
	case *Misbehaviour:
		if err := msg.ValidateBasic(); err != nil {
			return err
		}
		if !msg.Header1.Height.EQ(msg.Header2.Height) {
			return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "mock misbehaviour requires two headers at the same height")
		}
		if bytes.Equal(msg.Header1.Root, msg.Header2.Root) {
			return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "mock misbehaviour headers commit to the same root")
		}
		return nil
	default:
		return errorsmod.Wrapf(clienttypes.ErrInvalidClient, "unsupported client message type %T for mock client", clientMsg)
	}
}

func (cs *ClientState) CheckForMisbehaviour(ctx context.Context, cdc codec.BinaryCodec, clientStore exported.ClientStore, clientMsg exported.ClientMessage) bool {
	_, ok := clientMsg.(*Misbehaviour)
	return ok
}

func (cs *ClientState) UpdateStateOnMisbehaviour(ctx context.Context, cdc codec.BinaryCodec, clientStore exported.ClientStore, clientMsg exported.ClientMessage) {
	cs.FrozenHeight = cs.LatestHeight
}

func (cs *ClientState) UpdateState(ctx context.Context, cdc codec.BinaryCodec, clientStore exported.ClientStore, clientMsg exported.ClientMessage) []exported.Height {
	header, ok := clientMsg.(*Header)
	if !ok {
		return nil
	}

	consState := &ConsensusState{Timestamp: header.Timestamp, Root: header.Root}
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

func (cs *ClientState) VerifyMembership(
	ctx context.Context, clientStore exported.ClientStore, cdc codec.BinaryCodec,
	height exported.Height, delayTimePeriod, delayBlockPeriod uint64,
	proof []byte, path exported.Path, value []byte,
) error {
	if len(proof) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "empty membership proof")
	}
	if !bytes.Equal(proof, value) {
		return errorsmod.Wrapf(clienttypes.ErrHeaderVerificationFailed, "membership proof mismatch at path %s", path)
	}
	return nil
}

func (cs *ClientState) VerifyNonMembership(
	ctx context.Context, clientStore exported.ClientStore, cdc codec.BinaryCodec,
	height exported.Height, delayTimePeriod, delayBlockPeriod uint64,
	proof []byte, path exported.Path,
) error {
	if len(proof) != 0 {
		return errorsmod.Wrapf(clienttypes.ErrHeaderVerificationFailed, "non-empty proof for non-membership at path %s", path)
	}
	return nil
}

func (cs *ClientState) VerifyUpgradeAndUpdateState(
	ctx context.Context, cdc codec.BinaryCodec, clientStore exported.ClientStore,
	newClient exported.ClientState, newConsState exported.ConsensusState,
	upgradeClientProof, upgradeConsStateProof []byte,
) error {
	if len(upgradeClientProof) == 0 || len(upgradeConsStateProof) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidUpgradeClient, "empty upgrade proof")
	}
	newCS, ok := newClient.(*ClientState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidClient, "unsupported upgrade target type %T", newClient)
	}
	cs.LatestHeight = newCS.LatestHeight
	cs.FrozenHeight = exported.ZeroHeight()
	return nil
}

// gobClientState is the on-the-wire shape Marshal/UnmarshalClientState use;
// exported.Height has no exported concrete type so it is flattened here.
type gobClientState struct {
	LatestRevision, LatestHeight uint64
	FrozenRevision, FrozenHeight uint64
}

func (cs *ClientState) Marshal() ([]byte, error) {
	frozen := cs.FrozenHeight
	if frozen == nil {
		frozen = exported.ZeroHeight()
	}
	return json.Marshal(gobClientState{
		LatestRevision: cs.LatestHeight.GetRevisionNumber(),
		LatestHeight:   cs.LatestHeight.GetRevisionHeight(),
		FrozenRevision: frozen.GetRevisionNumber(),
		FrozenHeight:   frozen.GetRevisionHeight(),
	})
}

// UnmarshalClientState decodes a mock ClientState, registered against "mock"
// client IDs so the core client keeper can recover it from raw store bytes.
func UnmarshalClientState(bz []byte) (exported.ClientState, error) {
	var raw gobClientState
	if err := json.Unmarshal(bz, &raw); err != nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidClient, "failed to decode mock client state")
	}
	return &ClientState{
		LatestHeight: exported.NewHeight(raw.LatestRevision, raw.LatestHeight),
		FrozenHeight: exported.NewHeight(raw.FrozenRevision, raw.FrozenHeight),
	}, nil
}
