// Package randx provides the draw helpers shared by the data generators.
// All randomness comes from crypto/rand; there is no seeding.
package randx

import (
	"crypto/rand"
	"math/big"
)

// Intn returns a cryptographically random int in [0, n).
func Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}

// Float64 returns a cryptographically random float64 in [0, 1).
func Float64() float64 {
	return float64(Intn(1<<53)) / (1 << 53)
}

// Pick returns a random element from s. Panics on an empty slice.
func Pick[T any](s []T) T {
	return s[Intn(len(s))]
}

// Digit returns a random decimal digit character.
func Digit() byte {
	return byte('0' + Intn(10))
}
