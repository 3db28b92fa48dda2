package entities

import "time"

type AlphabetType string

const (
	AlphabetTypeFrench     AlphabetType = "french"
	AlphabetTypePolish     AlphabetType = "polish"
	AlphabetTypePortuguese AlphabetType = "portuguese"
	AlphabetTypeGerman     AlphabetType = "german"
	AlphabetTypeBelarusian AlphabetType = "belarusian"
	AlphabetTypeGeorgian   AlphabetType = "georgian"
	AlphabetTypeHebrew     AlphabetType = "hebrew"
)

// AlphabetTypes lists every supported alphabet identifier.
var AlphabetTypes = []AlphabetType{
	AlphabetTypeFrench,
	AlphabetTypePolish,
	AlphabetTypePortuguese,
	AlphabetTypeGerman,
	AlphabetTypeBelarusian,
	AlphabetTypeGeorgian,
	AlphabetTypeHebrew,
}

// IsValid reports whether the type belongs to the closed enumeration.
func (t AlphabetType) IsValid() bool {
	for _, known := range AlphabetTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Alphabet struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Type         AlphabetType `gorm:"index;size:20" json:"type"`
	Name         string       `gorm:"size:100" json:"name"`
	Description  *string      `gorm:"type:text" json:"description"`
	TotalLetters int          `json:"total_letters"` // declared count, may diverge from stored letters
	CreatedAt    time.Time    `json:"created_at"`
}

type Letter struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	AlphabetID         uint    `gorm:"index;uniqueIndex:idx_letters_alphabet_position" json:"alphabet_id"`
	Letter             string  `gorm:"size:16" json:"letter"`
	Name               string  `gorm:"size:100" json:"name"`
	Pronunciation      *string `gorm:"size:100" json:"pronunciation"`
	PronunciationGuide *string `gorm:"type:text" json:"pronunciation_guide"`
	OrderPosition      int     `gorm:"uniqueIndex:idx_letters_alphabet_position" json:"order_position"`

	Alphabet Alphabet `gorm:"foreignKey:AlphabetID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
