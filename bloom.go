package cloom

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrZeroBits is returned when a filter is created with no bits.
	ErrZeroBits = errors.New("cloom: number of bits must be positive")

	// ErrZeroHashes is returned when a filter is created with no hash functions.
	ErrZeroHashes = errors.New("cloom: number of hash functions must be positive")
)

// Filter is a non-thread-safe standard bloom filter.
//
// Each key selects k bit positions from its HashStream, reduced modulo the
// filter size. Keys cannot be removed; use CountingFilter for that.
type Filter struct {
	bits     *bitset.BitSet
	m        uint64 // Number of bits
	k        uint64 // Number of hash functions
	digester Digester
	count    uint64 // Number of items added (approximate)
}

// New creates a new bloom filter sized for the expected number of items and
// desired false positive rate. It fails if fpRate is not in (0, 1) or
// expectedItems is zero.
func New(expectedItems uint64, fpRate float64, opts ...Option) (*Filter, error) {
	m, k, err := OptimalParams(expectedItems, fpRate)
	if err != nil {
		return nil, err
	}
	return NewWithParams(m, k, opts...)
}

// NewWithParams creates a new bloom filter with explicit parameters.
// numBits is the size of the bit set, k is the number of hash functions.
func NewWithParams(numBits, k uint64, opts ...Option) (*Filter, error) {
	if numBits == 0 {
		return nil, ErrZeroBits
	}
	if k == 0 {
		return nil, ErrZeroHashes
	}

	c := newConfig(opts)
	return &Filter{
		bits:     bitset.New(uint(numBits)),
		m:        numBits,
		k:        k,
		digester: c.digester,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(expectedItems uint64, fpRate float64, opts ...Option) *Filter {
	f, err := New(expectedItems, fpRate, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Add adds data to the bloom filter.
func (f *Filter) Add(data []byte) {
	f.add(NewHashStream(f.digester, data))
}

// AddString adds a string to the bloom filter without allocating.
func (f *Filter) AddString(s string) {
	f.add(newHashStreamString(f.digester, s))
}

func (f *Filter) add(h HashStream) {
	for v := range h.Take(f.k) {
		f.bits.Set(uint(v % f.m))
	}
	f.count++
}

// Contains checks if data might be in the bloom filter.
// Returns true if the data might be present (with false positive probability),
// or false if the data is definitely not present.
func (f *Filter) Contains(data []byte) bool {
	return f.contains(NewHashStream(f.digester, data))
}

// ContainsString checks if a string might be in the bloom filter without allocating.
func (f *Filter) ContainsString(s string) bool {
	return f.contains(newHashStreamString(f.digester, s))
}

func (f *Filter) contains(h HashStream) bool {
	for v := range h.Take(f.k) {
		if !f.bits.Test(uint(v % f.m)) {
			return false
		}
	}
	return true
}

// ContainsAndAdd reports whether data might already have been present, then
// adds it.
func (f *Filter) ContainsAndAdd(data []byte) bool {
	h := NewHashStream(f.digester, data)
	present := f.contains(h)
	f.add(h)
	return present
}

// Cap returns the capacity of the filter in bits.
func (f *Filter) Cap() uint64 {
	return f.m
}

// K returns the number of hash functions used.
func (f *Filter) K() uint64 {
	return f.k
}

// Count returns the approximate number of items added to the filter.
func (f *Filter) Count() uint64 {
	return f.count
}

// EstimatedFillRatio estimates the proportion of bits that are set.
func (f *Filter) EstimatedFillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on the number of items added.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.m, f.k, f.count)
}

// Clear removes all items from the filter.
func (f *Filter) Clear() {
	f.bits.ClearAll()
	f.count = 0
}
