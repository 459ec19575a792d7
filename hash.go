package cloom

import (
	"encoding/binary"
	"iter"
	"unsafe"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Digester computes a 128-bit digest of data. Implementations must be
// deterministic and approximately uniform.
type Digester interface {
	Sum128(data []byte, seed uint32) [16]byte
}

// Murmur3 is the default Digester: MurmurHash3 x64_128, emitted as h1 then
// h2, each little-endian.
type Murmur3 struct{}

// Sum128 implements Digester.
func (Murmur3) Sum128(data []byte, seed uint32) [16]byte {
	var out [16]byte
	h1, h2 := murmur3.Sum128WithSeed(data, seed)
	binary.LittleEndian.PutUint64(out[0:8], h1)
	binary.LittleEndian.PutUint64(out[8:16], h2)
	return out
}

// XXH3 is a Digester backed by XXH3-128, emitted as the high then low
// 64 bits, each big-endian.
type XXH3 struct{}

// Sum128 implements Digester.
func (XXH3) Sum128(data []byte, seed uint32) [16]byte {
	var out [16]byte
	h := xxh3.Hash128Seed(data, uint64(seed))
	binary.BigEndian.PutUint64(out[0:8], h.Hi)
	binary.BigEndian.PutUint64(out[8:16], h.Lo)
	return out
}

// HashStream yields an unbounded sequence of 64-bit hash values derived from
// a single digest by additive double hashing (Kirsch and Mitzenmacher,
// "Less Hashing, Same Performance").
//
// A HashStream is a value; start a new one per key.
type HashStream struct {
	base      uint64
	increment uint64
}

// NewHashStream digests data with seed 0 and seeds the stream from it.
// base is bytes 0..8 of the digest and increment is bytes 4..12, both
// big-endian. The two windows overlap; filters built on other parameters
// would not agree on slot positions.
func NewHashStream(d Digester, data []byte) HashStream {
	sum := d.Sum128(data, 0)
	return HashStream{
		base:      binary.BigEndian.Uint64(sum[0:8]),
		increment: binary.BigEndian.Uint64(sum[4:12]),
	}
}

// newHashStreamString hashes s without copying it.
func newHashStreamString(d Digester, s string) HashStream {
	return NewHashStream(d, unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Next returns the current value and advances the stream. Addition wraps
// modulo 2^64.
func (h *HashStream) Next() uint64 {
	v := h.base
	h.base += h.increment
	return v
}

// Take returns an iterator over the next n values of the stream.
func (h *HashStream) Take(n uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for range n {
			if !yield(h.Next()) {
				return
			}
		}
	}
}
