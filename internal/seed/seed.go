// Package seed populates the catalog with the built-in alphabet
// datasets. Seeding is idempotent: existing alphabets are left alone
// and letters are only inserted for alphabets that have none yet.
package seed

import (
	"fmt"
	"log"

	"github.com/abecedary/abecedary/internal/database/catalog"
	"github.com/abecedary/abecedary/internal/entities"
)

// Result reports what a seeding run changed.
type Result struct {
	CreatedAlphabets int
	CreatedLetters   int
	SkippedAlphabets []string
}

// Run seeds every missing alphabet and its letter dataset.
func Run(repo *catalog.Repository) (*Result, error) {
	result := &Result{}
	for _, spec := range defaultAlphabets {
		alphabet, err := repo.GetAlphabetByType(spec.Type)
		if err != nil {
			return nil, fmt.Errorf("look up alphabet %s: %w", spec.Type, err)
		}
		if alphabet != nil {
			result.SkippedAlphabets = append(result.SkippedAlphabets, alphabet.Name)
		} else {
			alphabet = &entities.Alphabet{
				Type:         spec.Type,
				Name:         spec.Name,
				Description:  optional(spec.Description),
				TotalLetters: spec.TotalLetters,
			}
			if err := repo.CreateAlphabet(alphabet); err != nil {
				return nil, fmt.Errorf("create alphabet %s: %w", spec.Type, err)
			}
			result.CreatedAlphabets++
			log.Printf("Seed: created alphabet %s", spec.Name)
		}

		if len(spec.Letters) == 0 {
			continue
		}
		existing, err := repo.ListLettersByAlphabet(alphabet.ID)
		if err != nil {
			return nil, fmt.Errorf("list letters for %s: %w", spec.Type, err)
		}
		if len(existing) > 0 {
			continue
		}
		for i, ls := range spec.Letters {
			letter := &entities.Letter{
				AlphabetID:         alphabet.ID,
				Letter:             ls.Glyph,
				Name:               ls.Name,
				Pronunciation:      optional(ls.Pronunciation),
				PronunciationGuide: optional(ls.Guide),
				OrderPosition:      i + 1,
			}
			if err := repo.CreateLetter(letter); err != nil {
				return nil, fmt.Errorf("create letter %s/%s: %w", spec.Type, ls.Glyph, err)
			}
			result.CreatedLetters++
		}
		log.Printf("Seed: created %d letters for %s", len(spec.Letters), spec.Name)
	}
	return result, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
