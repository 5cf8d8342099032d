package session

import "math/rand"

// Session codes skip I and O so they read unambiguously next to digits.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"

const (
	minCodeLength = 4
	codeRetries   = 32
)

// NewCode draws a session code from rng that taken does not report as in
// use. When codeRetries draws at one length all collide, the code grows by
// one letter, so a returned code is always free.
func NewCode(rng *rand.Rand, taken func(string) bool) string {
	for n := minCodeLength; ; n++ {
		for range codeRetries {
			code := drawCode(rng, n)
			if !taken(code) {
				return code
			}
		}
	}
}

func drawCode(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rng.Intn(len(codeAlphabet))]
	}
	return string(b)
}
