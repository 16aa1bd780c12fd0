package types

import "github.com/tokenize-x/ibc-core/modules/core/exported"

// MerklePath wraps an already-rendered ICS-24 path string so it satisfies
// exported.Path. Client implementations never need to know how the string
// was built, only that it is stable and comparable.
type MerklePath string

var _ exported.Path = MerklePath("")

func (p MerklePath) String() string { return string(p) }
func (p MerklePath) Bytes() []byte  { return []byte(p) }

// NewMerklePath constructs a MerklePath from an ICS-24 path string.
func NewMerklePath(path string) MerklePath {
	return MerklePath(path)
}
