package spin

import (
	"crypto/hmac"
	"crypto/sha256"
	"strconv"
)

// RNG is a deterministic pseudo-random stream derived from a string
// seed. The byte stream is HMAC-SHA256 keyed by the seed with an
// incrementing round counter as the message, so the same seed always
// yields the same sequence across platforms. Pure function of seed +
// call count; no shared state.
type RNG struct {
	seed   string
	round  int
	cursor int
	buffer [32]byte
}

func NewRNG(seed string) *RNG {
	return &RNG{seed: seed, cursor: 32}
}

func (r *RNG) nextByte() byte {
	if r.cursor >= 32 {
		h := hmac.New(sha256.New, []byte(r.seed))
		h.Write([]byte("spin:" + strconv.Itoa(r.round)))
		copy(r.buffer[:], h.Sum(nil))
		r.round++
		r.cursor = 0
	}
	b := r.buffer[r.cursor]
	r.cursor++
	return b
}

// Next returns the next float in [0, 1), built from 4 bytes of the
// stream for precision.
func (r *RNG) Next() float64 {
	b0 := r.nextByte()
	b1 := r.nextByte()
	b2 := r.nextByte()
	b3 := r.nextByte()

	return float64(b0)/256.0 +
		float64(b1)/(256.0*256.0) +
		float64(b2)/(256.0*256.0*256.0) +
		float64(b3)/(256.0*256.0*256.0*256.0)
}
