package keeper

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/tokenize-x/ibc-core/modules/core/04-channel/types"
	host "github.com/tokenize-x/ibc-core/modules/core/24-host"
)

// PageRequest shapes a paginated query the same way across every query
// surface a QueryContext exposes: an optional continuation Key, or
// an Offset, bounded by Limit, with optional total-count and reversal.
type PageRequest struct {
	Key         string
	Offset      uint64
	Limit       uint64
	CountTotal  bool
	Reverse     bool
}

// PageResponse carries the continuation cursor for the next page and,
// when requested, the total element count.
type PageResponse struct {
	NextKey string
	Total   uint64
}

// PacketState pairs a packet sequence with the raw bytes stored at its path,
// the shape every commitment/ack/receipt listing query returns.
type PacketState struct {
	Sequence uint64
	Data     []byte
}

// IdentifiedChannel pairs a (portID, channelID) with its stored end, the
// shape ListChannels returns.
type IdentifiedChannel struct {
	PortID    string
	ChannelID string
	Channel   types.ChannelEnd
}

// ListChannels returns every channel end currently stored, sorted by
// (portID, channelID) for deterministic output.
func (k Keeper) ListChannels(ctx context.Context) ([]IdentifiedChannel, error) {
	keys, err := k.store.GetKeys(ctx, host.ChannelEndsPrefix()+"/")
	if err != nil {
		return nil, err
	}

	var out []IdentifiedChannel
	for _, key := range keys {
		portID, channelID, ok := host.SplitChannelPath(key)
		if !ok {
			continue
		}
		channel, err := k.GetChannel(ctx, portID, channelID)
		if err != nil {
			return nil, err
		}
		out = append(out, IdentifiedChannel{PortID: portID, ChannelID: channelID, Channel: channel})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].PortID != out[j].PortID {
			return out[i].PortID < out[j].PortID
		}
		return out[i].ChannelID < out[j].ChannelID
	})
	return out, nil
}

// ListPacketCommitments returns the packet commitments still pending on
// (portID, channelID), i.e. the packets sent but not yet acknowledged or
// timed out.
func (k Keeper) ListPacketCommitments(ctx context.Context, portID, channelID string, page PageRequest) ([]PacketState, PageResponse, error) {
	return k.listPacketStates(ctx, host.ChannelCommitmentsPrefix(portID, channelID), page)
}

// ListPacketAcknowledgements returns the acknowledgement commitments stored
// on (portID, channelID).
func (k Keeper) ListPacketAcknowledgements(ctx context.Context, portID, channelID string, page PageRequest) ([]PacketState, PageResponse, error) {
	return k.listPacketStates(ctx, host.ChannelAcksPrefix(portID, channelID), page)
}

// ListUnreceivedPackets reports which of the candidate sequences the
// counterparty claims to have sent have NOT yet been received on this
// channel end. For UNORDERED channels that means no receipt is stored; for
// ORDERED channels it means the sequence is still >= the next expected recv.
func (k Keeper) ListUnreceivedPackets(ctx context.Context, portID, channelID string, sequences []uint64) ([]uint64, error) {
	channel, err := k.GetChannel(ctx, portID, channelID)
	if err != nil {
		return nil, err
	}

	switch channel.Ordering {
	case types.ORDERED:
		nextRecv, err := k.GetNextSequenceRecv(ctx, portID, channelID)
		if err != nil {
			return nil, err
		}
		return lo.Filter(sequences, func(seq uint64, _ int) bool {
			return seq >= nextRecv
		}), nil
	default:
		var unreceived []uint64
		for _, seq := range sequences {
			has, err := k.HasPacketReceipt(ctx, portID, channelID, seq)
			if err != nil {
				return nil, err
			}
			if !has {
				unreceived = append(unreceived, seq)
			}
		}
		return unreceived, nil
	}
}

// ListUnreceivedAcks implements the resolved open question: it walks the
// *local* packet commitments still present in the channel's commitment
// store, restricted to the given candidate sequences, and reports a
// sequence as "unreceived-ack" whenever its commitment is still present.
//
// This is deliberately narrower than the ideal semantics ("the counterparty
// has not yet processed our acknowledgement"): a commitment being present
// only proves we have not yet seen an ack for that sequence, not that the
// counterparty ever received the packet in the first place. A packet that
// was never delivered and a packet whose ack is still in flight are
// indistinguishable from this query alone. spec.md leaves the exact
// semantics unresolved; this is the chosen, documented interpretation.
func (k Keeper) ListUnreceivedAcks(ctx context.Context, portID, channelID string, sequences []uint64) ([]uint64, error) {
	var unreceived []uint64
	for _, seq := range sequences {
		commitment, err := k.GetPacketCommitment(ctx, portID, channelID, seq)
		if err != nil {
			return nil, err
		}
		if commitment != nil {
			unreceived = append(unreceived, seq)
		}
	}
	return unreceived, nil
}

// listPacketStates enumerates every key under prefix, extracts its trailing
// sequence number, sorts numerically (key strings are decimal and not
// zero-padded, so lexicographic order over the raw keys would be wrong), and
// applies page.
func (k Keeper) listPacketStates(ctx context.Context, prefix string, page PageRequest) ([]PacketState, PageResponse, error) {
	keys, err := k.store.GetKeys(ctx, prefix)
	if err != nil {
		return nil, PageResponse{}, err
	}

	states := make([]PacketState, 0, len(keys))
	for _, key := range keys {
		seq, ok := trailingSequence(key)
		if !ok {
			continue
		}
		bz, err := k.store.Get(ctx, key)
		if err != nil {
			return nil, PageResponse{}, err
		}
		states = append(states, PacketState{Sequence: seq, Data: bz})
	}

	sort.Slice(states, func(i, j int) bool {
		if page.Reverse {
			return states[i].Sequence > states[j].Sequence
		}
		return states[i].Sequence < states[j].Sequence
	})

	start := page.Offset
	if page.Key != "" {
		if fromKey := cast.ToUint64(page.Key); fromKey > 0 {
			start = fromKey
		}
	}
	if start > uint64(len(states)) {
		start = uint64(len(states))
	}

	limit := page.Limit
	if limit == 0 {
		limit = uint64(len(states))
	}
	end := start + limit
	if end > uint64(len(states)) {
		end = uint64(len(states))
	}

	resp := PageResponse{}
	if page.CountTotal {
		resp.Total = uint64(len(states))
	}
	if end < uint64(len(states)) {
		resp.NextKey = strconv.FormatUint(end, 10)
	}
	return states[start:end], resp, nil
}

// trailingSequence extracts the "{seq}" component of a
// ".../sequences/{seq}" path.
func trailingSequence(key string) (uint64, bool) {
	idx := strings.LastIndex(key, "/")
	if idx < 0 {
		return 0, false
	}
	seq, err := strconv.ParseUint(key[idx+1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return seq, true
}
