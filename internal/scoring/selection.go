package scoring

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

// Candidate is a word in a learner's pool together with its current weight.
type Candidate struct {
	Word   vocabulary.Word
	Weight float64
}

// Source yields uniformly distributed floats in [0, 1).
type Source interface {
	Float64() float64
}

// lockedSource makes a *rand.Rand safe for concurrent callers.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a goroutine-safe Source seeded from the current time.
func NewSource() Source {
	return NewSeededSource(time.Now().UnixNano())
}

// NewSeededSource returns a goroutine-safe Source with a fixed seed.
func NewSeededSource(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Intn returns a uniform int in [0, n) from src.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		return n - 1
	}
	return i
}

// SelectNext picks a candidate with probability proportional to its weight.
//
// The pool is scanned in the given order and is not modified.
func SelectNext(pool []Candidate, src Source) (Candidate, error) {
	if len(pool) == 0 {
		return Candidate{}, fmt.Errorf("%w: empty pool", ErrInvalidInput)
	}

	var total float64
	for i, c := range pool {
		if !isFinite(c.Weight) || c.Weight <= 0 {
			return Candidate{}, fmt.Errorf("%w: candidate %d (word %d) has weight %v", ErrInvalidInput, i, c.Word.ID, c.Weight)
		}
		total += c.Weight
	}
	if !isFinite(total) {
		return Candidate{}, fmt.Errorf("%w: total weight overflows", ErrInvalidInput)
	}

	r := src.Float64() * total
	for _, c := range pool {
		r -= c.Weight
		if r <= 0 {
			return c, nil
		}
	}
	// Rounding can leave r slightly above zero.
	return pool[len(pool)-1], nil
}
