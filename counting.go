package cloom

// CountingFilter is a non-thread-safe counting bloom filter as described by
// Fan, Cao, Almeida and Broder in "Summary Cache: A Scalable Wide-Area Web
// Cache Sharing Protocol".
//
// Every bit of a standard filter is replaced by a small saturating counter
// (4 bits unless WithCounterBits says otherwise). Add increments the k
// counters of a key, Remove decrements them, and Contains requires all k to
// be non-zero.
//
// Counters clamp at both ends. A counter that saturated at its maximum no
// longer tracks how many keys share it, so removing keys that share a
// saturated counter can eventually produce false negatives. Removing a key
// that was never added can do the same.
type CountingFilter struct {
	counters *PackedVector
	m        uint64 // Number of counters
	k        uint64 // Number of hash functions
	digester Digester
	count    uint64 // Adds minus removes (approximate)
}

// NewCounting creates a new counting bloom filter sized for the expected
// number of items and desired false positive rate.
func NewCounting(expectedItems uint64, fpRate float64, opts ...Option) (*CountingFilter, error) {
	m, k, err := OptimalParams(expectedItems, fpRate)
	if err != nil {
		return nil, err
	}
	return NewCountingWithParams(m, k, opts...)
}

// NewCountingWithParams creates a new counting bloom filter with numBits
// counters and k hash functions.
func NewCountingWithParams(numBits, k uint64, opts ...Option) (*CountingFilter, error) {
	if numBits == 0 {
		return nil, ErrZeroBits
	}
	if k == 0 {
		return nil, ErrZeroHashes
	}

	c := newConfig(opts)
	counters, err := NewPackedVector(numBits, c.counterBits)
	if err != nil {
		return nil, err
	}

	return &CountingFilter{
		counters: counters,
		m:        numBits,
		k:        k,
		digester: c.digester,
	}, nil
}

// MustNewCounting is like NewCounting but panics on error.
func MustNewCounting(expectedItems uint64, fpRate float64, opts ...Option) *CountingFilter {
	f, err := NewCounting(expectedItems, fpRate, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Add adds data to the filter.
func (f *CountingFilter) Add(data []byte) {
	f.add(NewHashStream(f.digester, data))
}

// AddString adds a string to the filter without allocating.
func (f *CountingFilter) AddString(s string) {
	f.add(newHashStreamString(f.digester, s))
}

func (f *CountingFilter) add(h HashStream) {
	for v := range h.Take(f.k) {
		f.counters.increment(v % f.m)
	}
	f.count++
}

// Remove removes data from the filter. Removing data that was never added
// is a no-op on zero counters but decrements any it shares with other keys.
func (f *CountingFilter) Remove(data []byte) {
	f.remove(NewHashStream(f.digester, data))
}

// RemoveString removes a string from the filter without allocating.
func (f *CountingFilter) RemoveString(s string) {
	f.remove(newHashStreamString(f.digester, s))
}

func (f *CountingFilter) remove(h HashStream) {
	for v := range h.Take(f.k) {
		f.counters.decrement(v % f.m)
	}
	if f.count > 0 {
		f.count--
	}
}

// Contains checks if data might be in the filter.
func (f *CountingFilter) Contains(data []byte) bool {
	return f.contains(NewHashStream(f.digester, data))
}

// ContainsString checks if a string might be in the filter without allocating.
func (f *CountingFilter) ContainsString(s string) bool {
	return f.contains(newHashStreamString(f.digester, s))
}

func (f *CountingFilter) contains(h HashStream) bool {
	for v := range h.Take(f.k) {
		if f.counters.get(v%f.m) == 0 {
			return false
		}
	}
	return true
}

// ApproximateCount returns an upper bound on how many times data has been
// added and not removed: the smallest of its k counters. It is capped at the
// counter maximum.
func (f *CountingFilter) ApproximateCount(data []byte) uint {
	h := NewHashStream(f.digester, data)
	least := f.counters.Max()
	for v := range h.Take(f.k) {
		least = min(least, f.counters.get(v%f.m))
	}
	return least
}

// Cap returns the number of counters.
func (f *CountingFilter) Cap() uint64 {
	return f.m
}

// K returns the number of hash functions used.
func (f *CountingFilter) K() uint64 {
	return f.k
}

// CounterBits returns the width of each counter.
func (f *CountingFilter) CounterBits() uint {
	return f.counters.Width()
}

// Count returns the number of Add calls minus Remove calls, floored at zero.
func (f *CountingFilter) Count() uint64 {
	return f.count
}

// EstimatedFillRatio estimates the proportion of counters that are non-zero.
func (f *CountingFilter) EstimatedFillRatio() float64 {
	return float64(f.counters.NonZero()) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on Count.
func (f *CountingFilter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.m, f.k, f.count)
}

// Clear resets every counter to zero.
func (f *CountingFilter) Clear() {
	f.counters.Reset()
	f.count = 0
}
