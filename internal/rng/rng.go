package rng

import (
	"math/rand"

	"github.com/fadedpez/twentyone/pkg/entities"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a reproducible generator backed by math/rand
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a generator that yields the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}

// New picks a seeded generator for a non-zero seed and crypto randomness otherwise
func New(seed int64) Generator {
	if seed != 0 {
		return NewSeeded(seed)
	}
	return Crypto{}
}

// Shuffler returns a Fisher-Yates shuffle driven by gen. The input slice is
// left untouched.
func Shuffler(gen Generator) entities.ShuffleFunc {
	return func(cards []entities.Card) []entities.Card {
		shuffled := make([]entities.Card, len(cards))
		copy(shuffled, cards)
		for i := len(shuffled) - 1; i > 0; i-- {
			j := gen.Intn(i + 1)
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}
		return shuffled
	}
}
