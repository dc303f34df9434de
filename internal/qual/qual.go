package qual

import "math/rand"

// PhredOffset is the ASCII offset of the Phred+33 encoding.
const PhredOffset = 33

// Params tunes the two-region quality model for one read.
// All fields are read-only for the duration of a Make call; none are
// range-checked. Probabilities outside [0,1] simply make their comparison
// always or never succeed.
type Params struct {
	PLow     float64 // Bernoulli p for low-quality (edge) draws
	PHigh    float64 // Bernoulli p for high-quality (body) draws
	DropProb float64 // per-position chance of a low-quality draw in the body
	EdgeMin  float64 // lower bound of the left-edge fraction
	EdgeMax  float64 // upper bound of the left-edge fraction
	Trials   int     // Bernoulli trials per position (maximum score)
}

// binomial counts successes over n independent uniform draws against p.
func binomial(r *rand.Rand, n int, p float64) int {
	k := 0
	for i := 0; i < n; i++ {
		if r.Float64() < p {
			k++
		}
	}
	return k
}

// Make returns a Phred+33 quality string of the given length.
//
// The leading edge of the read (a fraction of its length drawn once per
// call from [EdgeMin, EdgeMax]) scores binomial(Trials, PLow); the body
// scores binomial(Trials, PHigh) except that each position independently
// falls back to the low distribution with probability DropProb. The edge
// is never shorter than one position.
func Make(r *rand.Rand, length int, p Params) []byte {
	if length <= 0 {
		return []byte{}
	}
	edgeFrac := p.EdgeMin + r.Float64()*(p.EdgeMax-p.EdgeMin)
	edgeLen := int(float64(length) * edgeFrac)
	if edgeLen < 1 {
		edgeLen = 1
	}

	quals := make([]byte, length)
	for i := range quals {
		var q int
		switch {
		case i < edgeLen:
			q = binomial(r, p.Trials, p.PLow)
		case r.Float64() < p.DropProb:
			q = binomial(r, p.Trials, p.PLow)
		default:
			q = binomial(r, p.Trials, p.PHigh)
		}
		// clamp to 0..Trials
		if q < 0 {
			q = 0
		}
		if q > p.Trials {
			q = p.Trials
		}
		quals[i] = byte(q + PhredOffset)
	}
	return quals
}
