package cloom

import (
	"errors"
	"fmt"
	"math/bits"
	"unsafe"
)

// cacheLineSize is the size of a CPU cache line in bytes.
const cacheLineSize = 64

// wordBits is the width of a storage word.
const wordBits = bits.UintSize

var (
	// ErrInvalidWidth is returned when a counter width is zero or wider
	// than a storage word.
	ErrInvalidWidth = errors.New("cloom: counter width must be between 1 and the word size")

	// ErrIndexOutOfRange is returned when a counter index is not below the
	// vector length.
	ErrIndexOutOfRange = errors.New("cloom: index out of range")
)

// PackedVector is a fixed-length array of unsigned saturating counters, each
// width bits wide, packed into machine words.
//
// Counters never span words. Within a word, slot 0 occupies the most
// significant bits. Every counter stays within [0, Max()]: writes clamp
// instead of wrapping, so an update never spills into a neighbour.
//
// PackedVector is not safe for concurrent use.
type PackedVector struct {
	raw     []byte // Raw allocation to keep aligned memory alive for GC
	words   []uint
	length  uint64
	width   uint
	perWord uint64
	mask    uint
}

// NewPackedVector allocates a zeroed vector of length counters of width bits.
func NewPackedVector(length uint64, width uint) (*PackedVector, error) {
	if width == 0 || width > wordBits {
		return nil, fmt.Errorf("%w: got %d, word size %d", ErrInvalidWidth, width, wordBits)
	}

	perWord := uint64(wordBits / width)
	numWords := (length + perWord - 1) / perWord
	raw, words := makeAlignedWords(int(numWords))

	return &PackedVector{
		raw:     raw,
		words:   words,
		length:  length,
		width:   width,
		perWord: perWord,
		mask:    fieldMask(width),
	}, nil
}

// fieldMask returns a mask of the low width bits. A full-word field needs
// all ones, which 1<<width - 1 does not express portably.
func fieldMask(width uint) uint {
	if width == wordBits {
		return ^uint(0)
	}
	return 1<<width - 1
}

// makeAlignedWords allocates a cache-line aligned slice of words.
// Returns the raw byte slice (to keep alive for GC) and the aligned word slice.
func makeAlignedWords(n int) ([]byte, []uint) {
	const wordSize = int(unsafe.Sizeof(uint(0)))
	// Allocate with extra space for alignment
	raw := make([]byte, n*wordSize+cacheLineSize-1)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	offset := (cacheLineSize - int(addr%cacheLineSize)) % cacheLineSize
	aligned := unsafe.Slice((*uint)(unsafe.Pointer(&raw[offset])), n)
	return raw, aligned
}

// Len returns the number of counters.
func (v *PackedVector) Len() uint64 {
	return v.length
}

// Width returns the number of bits per counter.
func (v *PackedVector) Width() uint {
	return v.width
}

// Max returns the largest value a counter can hold, 2^width - 1.
func (v *PackedVector) Max() uint {
	return v.mask
}

// locate returns the word index and the shift of the field for index i.
func (v *PackedVector) locate(i uint64) (word uint64, shift uint) {
	slot := uint(i % v.perWord)
	return i / v.perWord, wordBits - v.width*(slot+1)
}

// get reads counter i without bounds checking.
func (v *PackedVector) get(i uint64) uint {
	w, shift := v.locate(i)
	return v.words[w] >> shift & v.mask
}

// put writes val, which must already be within the mask, to counter i.
func (v *PackedVector) put(i uint64, val uint) {
	w, shift := v.locate(i)
	word := v.words[w] &^ (v.mask << shift)
	v.words[w] = word | val<<shift
}

// increment saturates at Max.
func (v *PackedVector) increment(i uint64) {
	if c := v.get(i); c < v.mask {
		v.put(i, c+1)
	}
}

// decrement saturates at 0.
func (v *PackedVector) decrement(i uint64) {
	if c := v.get(i); c > 0 {
		v.put(i, c-1)
	}
}

func (v *PackedVector) check(i uint64) error {
	if i >= v.length {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, v.length)
	}
	return nil
}

// Get returns the value of counter i.
func (v *PackedVector) Get(i uint64) (uint, error) {
	if err := v.check(i); err != nil {
		return 0, err
	}
	return v.get(i), nil
}

// Set stores val in counter i, clamped to Max.
func (v *PackedVector) Set(i uint64, val uint) error {
	if err := v.check(i); err != nil {
		return err
	}
	v.put(i, min(val, v.mask))
	return nil
}

// Increment adds one to counter i unless it is already at Max.
func (v *PackedVector) Increment(i uint64) error {
	if err := v.check(i); err != nil {
		return err
	}
	v.increment(i)
	return nil
}

// Decrement subtracts one from counter i unless it is already zero.
func (v *PackedVector) Decrement(i uint64) error {
	if err := v.check(i); err != nil {
		return err
	}
	v.decrement(i)
	return nil
}

// NonZero returns the number of counters holding a value above zero.
func (v *PackedVector) NonZero() uint64 {
	var n uint64
	for i := range v.length {
		if v.get(i) != 0 {
			n++
		}
	}
	return n
}

// Reset sets every counter to zero.
func (v *PackedVector) Reset() {
	clear(v.words)
}
