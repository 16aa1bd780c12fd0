// Package types holds the channel subsystem's data model: ChannelEnd's
// four-state open handshake plus Closed, ordering, Packet and its
// commitment/acknowledgement hashing.
package types

// State is a channel's position in the open/close handshake.
type State int32

const (
	UNINITIALIZED State = iota
	INIT
	TRYOPEN
	OPEN
	CLOSED
)

func (s State) String() string {
	switch s {
	case INIT:
		return "STATE_INIT"
	case TRYOPEN:
		return "STATE_TRYOPEN"
	case OPEN:
		return "STATE_OPEN"
	case CLOSED:
		return "STATE_CLOSED"
	default:
		return "STATE_UNINITIALIZED_UNSPECIFIED"
	}
}

// Order distinguishes strictly-sequential delivery from any-order delivery.
type Order int32

const (
	NONE Order = iota
	UNORDERED
	ORDERED
)

func (o Order) String() string {
	switch o {
	case UNORDERED:
		return "ORDER_UNORDERED"
	case ORDERED:
		return "ORDER_ORDERED"
	default:
		return "ORDER_NONE_UNSPECIFIED"
	}
}

// Counterparty identifies the channel end on the other chain.
type Counterparty struct {
	PortId    string
	ChannelId string
}

// ChannelEnd is the full state of one side of a channel. Today
// ConnectionHops always has length 1; multi-hop is reserved (spec's
// GLOSSARY: "connection hop").
type ChannelEnd struct {
	State          State
	Ordering       Order
	Counterparty   Counterparty
	ConnectionHops []string
	Version        string
}
