// Package catalog provides read access to alphabets and letters.
//
// Alphabets and letters are created by the seeding process and are
// read-only for the rest of the application; the write operations here
// exist for seeding and tests.
package catalog

import (
	"errors"

	"gorm.io/gorm"

	"github.com/abecedary/abecedary/internal/entities"
)

// Repository handles all catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAlphabets returns every alphabet. Order is not significant and an
// empty result is not an error.
func (r *Repository) ListAlphabets() ([]entities.Alphabet, error) {
	var alphabets []entities.Alphabet
	err := r.db.Find(&alphabets).Error
	return alphabets, err
}

// GetAlphabetByType returns the alphabet for the given type, or
// (nil, nil) when no alphabet uses it.
func (r *Repository) GetAlphabetByType(t entities.AlphabetType) (*entities.Alphabet, error) {
	var alphabet entities.Alphabet
	err := r.db.Where("type = ?", t).First(&alphabet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &alphabet, nil
}

// GetAlphabetByID returns the alphabet with the given id, or (nil, nil)
// when it does not exist.
func (r *Repository) GetAlphabetByID(id uint) (*entities.Alphabet, error) {
	var alphabet entities.Alphabet
	err := r.db.First(&alphabet, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &alphabet, nil
}

// ListLettersByAlphabet returns the alphabet's letters in ascending
// order position. An unknown or empty alphabet yields an empty slice,
// not an error.
func (r *Repository) ListLettersByAlphabet(alphabetID uint) ([]entities.Letter, error) {
	var letters []entities.Letter
	err := r.db.Where("alphabet_id = ?", alphabetID).
		Order("order_position ASC").
		Find(&letters).Error
	return letters, err
}

// GetLetterByID returns the letter with the given id, or (nil, nil)
// when it does not exist.
func (r *Repository) GetLetterByID(id uint) (*entities.Letter, error) {
	var letter entities.Letter
	err := r.db.First(&letter, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &letter, nil
}

// CreateAlphabet persists a new alphabet.
func (r *Repository) CreateAlphabet(alphabet *entities.Alphabet) error {
	return r.db.Create(alphabet).Error
}

// CreateLetter persists a new letter.
func (r *Repository) CreateLetter(letter *entities.Letter) error {
	return r.db.Create(letter).Error
}
