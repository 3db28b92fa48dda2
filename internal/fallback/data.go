package fallback

import "github.com/abecedary/abecedary/internal/entities"

type builtinAlphabet struct {
	alphabet entities.Alphabet
	letters  []entities.Letter
}

func str(s string) *string { return &s }

func letter(id, alphabetID uint, glyph, name, pronunciation, guide string, position int) entities.Letter {
	return entities.Letter{
		ID:                 id,
		AlphabetID:         alphabetID,
		Letter:             glyph,
		Name:               name,
		Pronunciation:      str(pronunciation),
		PronunciationGuide: str(guide),
		OrderPosition:      position,
	}
}

var builtinAlphabets = []builtinAlphabet{
	{
		alphabet: entities.Alphabet{
			ID:           1,
			Type:         entities.AlphabetTypeFrench,
			Name:         "French Alphabet",
			Description:  str("The 26 letters of the French alphabet"),
			TotalLetters: 26,
		},
		letters: []entities.Letter{
			letter(1, 1, "A", "a", "/a/", "ah", 1),
			letter(2, 1, "B", "bé", "/be/", "bay", 2),
			letter(3, 1, "C", "cé", "/se/", "say", 3),
		},
	},
	{
		alphabet: entities.Alphabet{
			ID:           2,
			Type:         entities.AlphabetTypeGerman,
			Name:         "German Alphabet",
			Description:  str("The 30 letters of the German alphabet"),
			TotalLetters: 30,
		},
		letters: []entities.Letter{
			letter(4, 2, "A", "a", "/aː/", "ah", 1),
			letter(5, 2, "B", "be", "/beː/", "bay", 2),
			letter(6, 2, "C", "ce", "/tseː/", "tsay", 3),
		},
	},
	{
		alphabet: entities.Alphabet{
			ID:           3,
			Type:         entities.AlphabetTypeHebrew,
			Name:         "Hebrew Alphabet",
			Description:  str("The 22 letters of the Hebrew alphabet"),
			TotalLetters: 22,
		},
		letters: []entities.Letter{
			letter(7, 3, "א", "Alef", "/ʔ/", "silent or glottal stop", 1),
			letter(8, 3, "ב", "Bet", "/b/", "b as in boy", 2),
			letter(9, 3, "ג", "Gimel", "/g/", "g as in girl", 3),
		},
	},
	{
		alphabet: entities.Alphabet{
			ID:           4,
			Type:         entities.AlphabetTypeGeorgian,
			Name:         "Georgian Alphabet",
			Description:  str("The 33 letters of the Georgian alphabet"),
			TotalLetters: 33,
		},
		letters: []entities.Letter{
			letter(10, 4, "ა", "ani", "/ɑ/", "a as in father", 1),
			letter(11, 4, "ბ", "bani", "/b/", "b as in boy", 2),
			letter(12, 4, "გ", "gani", "/g/", "g as in girl", 3),
		},
	},
}
