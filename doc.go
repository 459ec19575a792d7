// Package cloom provides standard and counting bloom filters for Go.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Implementations
//
// [Filter] is a standard bloom filter backed by a bit set. Keys can be added
// and tested but never removed.
//
// [CountingFilter] replaces every bit with a small saturating counter held in
// a [PackedVector], which makes [CountingFilter.Remove] possible at the cost
// of 4x the memory with the default 4-bit counters.
//
// # Hashing
//
// Each key is digested once into 128 bits (MurmurHash3 x64_128 by default,
// see [WithDigester]). A [HashStream] turns the digest into as many 64-bit
// values as needed by double hashing:
//
//	h(i) = base + i*increment  (mod 2^64)
//
// and the filter takes the first k of them modulo its size.
//
// # Choosing Parameters
//
// Use [New] or [NewCounting] with your expected number of items and desired
// false positive rate:
//
//	// Filter for 1 million items with 1% false positive rate
//	f, err := cloom.New(1_000_000, 0.01)
//
// The size and number of hash functions are derived with [OptimalParams]:
//
//	m = round(n * ln(1/p) / (ln 2)²)
//	k = round(m * ln 2 / n)
//
// A rate outside (0, 1) or zero expected items is rejected before anything is
// allocated. [NewWithParams] and [NewCountingWithParams] take m and k directly.
//
// # Saturation
//
// Counters clamp at both ends instead of wrapping. Incrementing a full
// counter is a no-op, as is decrementing an empty one, so one slot can never
// corrupt its neighbours in the packed word. The price is that a counter
// which saturated has lost its exact count.
//
// # Thread Safety
//
// Neither filter is thread-safe. Use external synchronization, such as a
// [sync.Mutex] around Add, Remove and Contains, when sharing a filter between
// goroutines.
//
// # References
//
//   - Less Hashing, Same Performance: https://www.eecs.harvard.edu/~michaelm/postscripts/rsa2008.pdf
//   - Summary Cache (counting bloom filters): http://pages.cs.wisc.edu/~jussara/papers/00ton.pdf
//   - Bloom filter rules of thumb: https://corte.si/posts/code/bloom-filter-rules-of-thumb/index.html
package cloom
