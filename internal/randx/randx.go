package randx

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// DefaultAlphaLength is the length used when a caller has no specific
// requirement for an alphabetic string.
const DefaultAlphaLength = 8

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

// Provider produces bounded random scalars.
type Provider interface {
	AlphaStr(n int) string
	NumStr(n int) string
	Bool(p float64) bool
	Int(min, max int) int
}

// Source is a Provider backed by a seeded *rand.Rand. It is safe for
// concurrent use.
type Source struct {
	mu   sync.Mutex
	rand *rand.Rand
	seed int64
}

// New returns a Source seeded with seed. A zero seed picks one from the clock.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed reports the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

func (s *Source) AlphaStr(n int) string {
	return s.pick(letters, n)
}

func (s *Source) NumStr(n int) string {
	return s.pick(digits, n)
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Float64() < p
}

// Int returns a uniform integer in [min, max]. It panics if min > max.
func (s *Source) Int(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("randx: invalid range [%d, %d]", min, max))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rand.Intn(max-min+1)
}

func (s *Source) pick(alphabet string, n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)

	s.mu.Lock()
	for i := range buf {
		buf[i] = alphabet[s.rand.Intn(len(alphabet))]
	}
	s.mu.Unlock()

	return string(buf)
}
