// Package fallback supplies a built-in alphabet catalog used when the
// API server cannot be reached, so the practice UI stays browsable
// offline. Practice sessions are never recorded against fallback data.
package fallback

import (
	"github.com/abecedary/abecedary/internal/entities"
)

// Provider serves catalog data without a server round trip.
type Provider interface {
	Alphabets() []entities.Alphabet
	Letters(alphabetID uint) []entities.Letter
}

type builtinProvider struct {
	alphabets []entities.Alphabet
	letters   map[uint][]entities.Letter
}

// NewProvider returns the built-in catalog: a small selection of
// alphabets with a few letters each.
func NewProvider() Provider {
	p := &builtinProvider{letters: map[uint][]entities.Letter{}}
	for _, a := range builtinAlphabets {
		p.alphabets = append(p.alphabets, a.alphabet)
		p.letters[a.alphabet.ID] = a.letters
	}
	return p
}

func (p *builtinProvider) Alphabets() []entities.Alphabet {
	out := make([]entities.Alphabet, len(p.alphabets))
	copy(out, p.alphabets)
	return out
}

func (p *builtinProvider) Letters(alphabetID uint) []entities.Letter {
	src := p.letters[alphabetID]
	out := make([]entities.Letter, len(src))
	copy(out, src)
	return out
}
