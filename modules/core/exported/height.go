package exported

import "fmt"

// Height is the implementation-agnostic contract every client type's height must
// satisfy. Heights are totally ordered lexicographically by (revision number,
// revision height): a height from a later revision (chain upgrade) always
// outranks any height from an earlier one, regardless of the height component.
type Height interface {
	// IsZero returns true if the height is uninitialized.
	IsZero() bool
	// LT returns true if the receiver is strictly lower than the argument.
	LT(Height) bool
	// LTE returns true if the receiver is lower than or equal to the argument.
	LTE(Height) bool
	// GT returns true if the receiver is strictly greater than the argument.
	GT(Height) bool
	// GTE returns true if the receiver is greater than or equal to the argument.
	GTE(Height) bool
	// EQ returns true if the receiver equals the argument.
	EQ(Height) bool
	// GetRevisionNumber returns the revision (chain-upgrade epoch) number.
	GetRevisionNumber() uint64
	// GetRevisionHeight returns the height within the current revision.
	GetRevisionHeight() uint64
	// Increment returns a height with RevisionHeight + 1, same revision.
	Increment() Height
	// Decrement returns a height with RevisionHeight - 1, same revision, and
	// a boolean reporting whether the decrement was possible.
	Decrement() (Height, bool)
	// String renders the height as "{revision}-{height}".
	String() string
}

// ZeroHeight returns an uninitialized height (revision 0, height 0). It is
// never a valid reference height for proof verification.
func ZeroHeight() Height {
	return height{}
}

// height is the default, unexported implementation of Height. Concrete client
// packages construct it through NewHeight rather than embedding their own
// height representation, so cross-client height comparison is always safe.
type height struct {
	revisionNumber uint64
	revisionHeight uint64
}

// NewHeight constructs a Height from its two components.
func NewHeight(revisionNumber, revisionHeight uint64) Height {
	return height{revisionNumber: revisionNumber, revisionHeight: revisionHeight}
}

func (h height) IsZero() bool {
	return h.revisionNumber == 0 && h.revisionHeight == 0
}

func (h height) LT(other Height) bool {
	if h.revisionNumber != other.GetRevisionNumber() {
		return h.revisionNumber < other.GetRevisionNumber()
	}
	return h.revisionHeight < other.GetRevisionHeight()
}

func (h height) LTE(other Height) bool {
	return h.LT(other) || h.EQ(other)
}

func (h height) GT(other Height) bool {
	return !h.LTE(other)
}

func (h height) GTE(other Height) bool {
	return !h.LT(other)
}

func (h height) EQ(other Height) bool {
	return h.revisionNumber == other.GetRevisionNumber() && h.revisionHeight == other.GetRevisionHeight()
}

func (h height) GetRevisionNumber() uint64 {
	return h.revisionNumber
}

func (h height) GetRevisionHeight() uint64 {
	return h.revisionHeight
}

func (h height) Increment() Height {
	return height{revisionNumber: h.revisionNumber, revisionHeight: h.revisionHeight + 1}
}

func (h height) Decrement() (Height, bool) {
	if h.revisionHeight == 0 {
		return height{}, false
	}
	return height{revisionNumber: h.revisionNumber, revisionHeight: h.revisionHeight - 1}, true
}

func (h height) String() string {
	return fmt.Sprintf("%d-%d", h.revisionNumber, h.revisionHeight)
}
