package host

import "cosmossdk.io/collections"

// EncodeSequence and DecodeSequence give every subsystem keeper (client,
// connection, channel) one shared wire format for the raw uint64 counters
// they persist at NextClientSequencePath/NextConnectionSequencePath/
// NextChannelSequencePath, reusing the same big-endian value codec
// collections.Map uses internally for a uint64 value rather than each
// keeper hand-rolling its own.
func EncodeSequence(seq uint64) []byte {
	bz, err := collections.Uint64Value.Encode(seq)
	if err != nil {
		panic(err)
	}
	return bz
}

// DecodeSequence decodes bz as previously produced by EncodeSequence. A nil
// or empty bz decodes to 0, matching the "counter never yet written" case
// every caller already special-cases before calling this.
func DecodeSequence(bz []byte) uint64 {
	if len(bz) == 0 {
		return 0
	}
	seq, err := collections.Uint64Value.Decode(bz)
	if err != nil {
		panic(err)
	}
	return seq
}
