package sim

import (
	"math/rand"
	"time"
)

var bases = [4]byte{'A', 'C', 'G', 'T'}

// NewRand builds the run's random source. If seed==0 we use a time-based
// seed; otherwise results are reproducible.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Make returns an upper-case DNA sequence of given length, each base drawn
// independently and uniformly from {A,C,G,T}. length<=0 yields an empty
// slice.
func Make(r *rand.Rand, length int) []byte {
	if length <= 0 {
		return []byte{}
	}
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = bases[r.Intn(4)]
	}
	return seq
}
