package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws from crypto/rand. It is the generator used when no seed is set.
type Crypto struct{}

// Intn returns a random number from 0 <= x < n. Like math/rand it panics if
// n <= 0, and it panics if the system randomness source fails.
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}
	return int(b.Int64())
}
