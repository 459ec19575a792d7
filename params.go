package cloom

import (
	"errors"
	"fmt"
	"math"
)

const (
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014
)

var (
	// ErrInvalidFalsePositiveRate is returned when the target false positive
	// rate is not strictly between 0 and 1.
	ErrInvalidFalsePositiveRate = errors.New("cloom: false positive rate must be in interval (0, 1)")

	// ErrZeroItems is returned when the expected number of items is zero.
	ErrZeroItems = errors.New("cloom: expected items must be positive")

	// ErrDegenerateParams is returned when the derived filter size or hash
	// count rounds to zero.
	ErrDegenerateParams = errors.New("cloom: degenerate filter parameters")
)

// OptimalParams calculates the optimal bloom filter parameters.
// Returns the number of bits (or counters) and the number of hash functions (k).
//
//	numBits = round(n * ln(1/p) / ln(2)^2)
//	k       = round(numBits * ln(2) / n)
func OptimalParams(expectedItems uint64, fpRate float64) (numBits uint64, k uint64, err error) {
	// Written to also reject NaN.
	if !(fpRate > 0 && fpRate < 1) {
		return 0, 0, fmt.Errorf("%w: got %v", ErrInvalidFalsePositiveRate, fpRate)
	}
	if expectedItems == 0 {
		return 0, 0, ErrZeroItems
	}

	n := float64(expectedItems)
	numBits = uint64(math.Round(n * math.Log(1/fpRate) / ln2Squared))
	k = uint64(math.Round(float64(numBits) * ln2 / n))

	if numBits == 0 || k == 0 {
		return 0, 0, fmt.Errorf("%w: items=%d rate=%v gives bits=%d k=%d",
			ErrDegenerateParams, expectedItems, fpRate, numBits, k)
	}
	return numBits, k, nil
}

// BitsPerItem returns the optimal number of bits per item for the given
// false positive rate: -ln(p) / ln(2)^2.
func BitsPerItem(fpRate float64) float64 {
	return -math.Log(fpRate) / ln2Squared
}

// EstimateFalsePositiveRate estimates the false positive rate for given parameters.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(numBits uint64, k uint64, itemsAdded uint64) float64 {
	m := float64(numBits)
	n := float64(itemsAdded)
	kf := float64(k)

	if m == 0 || n == 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-kf*n/m), kf)
}
