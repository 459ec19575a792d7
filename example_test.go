package cloom_test

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jcalabro/cloom"
)

// This example demonstrates basic bloom filter usage for membership testing.
func Example() {
	// Create a filter for 10,000 items with 1% false positive rate
	f, err := cloom.New(10_000, 0.01)
	if err != nil {
		panic(err)
	}

	// Add some items
	f.Add([]byte("apple"))
	f.Add([]byte("banana"))
	f.Add([]byte("cherry"))

	// Test membership
	fmt.Println("apple:", f.Contains([]byte("apple")))   // true (added)
	fmt.Println("banana:", f.Contains([]byte("banana"))) // true (added)
	fmt.Println("grape:", f.Contains([]byte("grape")))   // false (not added)

	// Output:
	// apple: true
	// banana: true
	// grape: false
}

// This example shows how to use string keys without allocation overhead.
func Example_stringKeys() {
	f := cloom.MustNew(10_000, 0.01)

	// AddString and ContainsString avoid allocating when you have string keys
	f.AddString("user:12345")
	f.AddString("user:67890")

	fmt.Println("user:12345 exists:", f.ContainsString("user:12345"))
	fmt.Println("user:99999 exists:", f.ContainsString("user:99999"))

	// Output:
	// user:12345 exists: true
	// user:99999 exists: false
}

// This example removes items from a counting filter.
func Example_counting() {
	f := cloom.MustNewCounting(10_000, 0.01)

	f.AddString("session:1")
	f.AddString("session:2")
	fmt.Println("session:1:", f.ContainsString("session:1"))

	f.RemoveString("session:1")
	fmt.Println("session:1 after remove:", f.ContainsString("session:1"))
	fmt.Println("session:2 after remove:", f.ContainsString("session:2"))

	// Output:
	// session:1: true
	// session:1 after remove: false
	// session:2 after remove: true
}

// Neither filter synchronizes internally; guard shared filters with a mutex.
func Example_concurrent() {
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	f := cloom.MustNewCounting(100_000, 0.01)

	for i := range 4 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := range 1000 {
				mu.Lock()
				f.AddString(fmt.Sprintf("worker-%d-item-%d", id, j))
				mu.Unlock()
			}
		}(i)
	}

	wg.Wait()
	fmt.Println("Items added:", f.Count())

	// Output:
	// Items added: 4000
}

// This example shows how to monitor filter statistics.
func Example_statistics() {
	f := cloom.MustNew(10_000, 0.01)

	for i := range 5000 {
		f.Add(fmt.Appendf(nil, "item-%d", i))
	}

	fmt.Printf("Capacity: %d bits\n", f.Cap())
	fmt.Printf("Hash functions (k): %d\n", f.K())
	fmt.Printf("Items added: %d\n", f.Count())

	// Output:
	// Capacity: 95851 bits
	// Hash functions (k): 7
	// Items added: 5000
}

// This example selects XXH3 instead of the default MurmurHash3 digest.
func Example_digester() {
	f := cloom.MustNew(1000, 0.01, cloom.WithDigester(cloom.XXH3{}))

	f.AddString("custom")
	fmt.Println("Contains 'custom':", f.ContainsString("custom"))

	// Output:
	// Contains 'custom': true
}

func ExampleNew_invalidRate() {
	_, err := cloom.New(1000, 1.5)
	fmt.Println(errors.Is(err, cloom.ErrInvalidFalsePositiveRate))

	// Output:
	// true
}

func ExampleNewWithParams() {
	// 1024 bits and 3 hash functions, chosen by hand.
	f, err := cloom.NewWithParams(1024, 3)
	if err != nil {
		panic(err)
	}

	f.AddString("custom")
	fmt.Println("Contains 'custom':", f.ContainsString("custom"))
	fmt.Printf("Bits: %d, K: %d\n", f.Cap(), f.K())

	// Output:
	// Contains 'custom': true
	// Bits: 1024, K: 3
}

func ExampleOptimalParams() {
	numBits, k, err := cloom.OptimalParams(10_000, 0.01)
	if err != nil {
		panic(err)
	}

	fmt.Printf("For 10k items at 1%% FP rate:\n")
	fmt.Printf("  Bits: %d\n", numBits)
	fmt.Printf("  Hash functions (k): %d\n", k)
	fmt.Printf("  Bits per item: %.1f\n", cloom.BitsPerItem(0.01))

	// Output:
	// For 10k items at 1% FP rate:
	//   Bits: 95851
	//   Hash functions (k): 7
	//   Bits per item: 9.6
}

func ExamplePackedVector() {
	v, err := cloom.NewPackedVector(5, 2)
	if err != nil {
		panic(err)
	}

	_ = v.Set(0, 2)
	_ = v.Increment(0)
	_ = v.Increment(0) // already at the 2-bit maximum
	got, _ := v.Get(0)
	fmt.Println("counter 0:", got)

	_ = v.Set(1, 100)
	got, _ = v.Get(1)
	fmt.Println("counter 1:", got)

	_, err = v.Get(5)
	fmt.Println(errors.Is(err, cloom.ErrIndexOutOfRange))

	// Output:
	// counter 0: 3
	// counter 1: 3
	// true
}

func ExampleEstimateFalsePositiveRate() {
	rate := cloom.EstimateFalsePositiveRate(95851, 7, 10_000)
	fmt.Printf("Estimated FP rate: %.2f%%\n", rate*100)

	// Output:
	// Estimated FP rate: 1.00%
}
