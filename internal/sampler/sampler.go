// Package sampler produces randomized practice sets of letters.
//
// Shuffling happens in the application rather than with a store-level
// random ordering clause, so the permutation stays portable across
// databases and deterministic under an injected source.
package sampler

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"

	"github.com/abecedary/abecedary/internal/entities"
)

// LetterLister provides ordered read access to an alphabet's letters.
type LetterLister interface {
	ListLettersByAlphabet(alphabetID uint) ([]entities.Letter, error)
}

// Sampler selects letters for a practice round.
type Sampler struct {
	letters LetterLister

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewSampler creates a sampler seeded from a non-predictable source.
func NewSampler(letters LetterLister) *Sampler {
	var seed int64
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(buf[:]))
	}
	return NewSamplerWithSource(letters, rand.NewSource(seed))
}

// NewSamplerWithSource creates a sampler with an explicit source, used
// by tests that need deterministic permutations.
func NewSamplerWithSource(letters LetterLister, src rand.Source) *Sampler {
	return &Sampler{
		letters: letters,
		rng:     rand.New(src),
	}
}

// Sample returns all letters of the alphabet in a uniform random
// permutation. An alphabet without letters yields an empty slice; store
// failures propagate unchanged.
func (s *Sampler) Sample(alphabetID uint) ([]entities.Letter, error) {
	letters, err := s.letters.ListLettersByAlphabet(alphabetID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	s.mu.Unlock()
	return letters, nil
}
