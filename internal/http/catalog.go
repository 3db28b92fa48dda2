package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abecedary/abecedary/internal/entities"
)

// CatalogStore defines database operations for alphabet and letter reads.
type CatalogStore interface {
	ListAlphabets() ([]entities.Alphabet, error)
	GetAlphabetByType(t entities.AlphabetType) (*entities.Alphabet, error)
	ListLettersByAlphabet(alphabetID uint) ([]entities.Letter, error)
	GetLetterByID(id uint) (*entities.Letter, error)
}

// LetterSampler produces a shuffled practice set for one alphabet.
type LetterSampler interface {
	Sample(alphabetID uint) ([]entities.Letter, error)
}

type CatalogController struct {
	store   CatalogStore
	sampler LetterSampler
}

func NewCatalogController(store CatalogStore, sampler LetterSampler) *CatalogController {
	return &CatalogController{
		store:   store,
		sampler: sampler,
	}
}

// ListAlphabets returns every alphabet.
// GET /api/alphabets
func (cc *CatalogController) ListAlphabets(c *gin.Context) {
	alphabets, err := cc.store.ListAlphabets()
	if err != nil {
		respondInternalError(c, err, "list alphabets")
		return
	}
	if alphabets == nil {
		alphabets = []entities.Alphabet{}
	}
	c.JSON(http.StatusOK, gin.H{"alphabets": alphabets})
}

// GetAlphabetByType looks up an alphabet by its type identifier.
// GET /api/alphabets/types/:type
func (cc *CatalogController) GetAlphabetByType(c *gin.Context) {
	alphabetType := entities.AlphabetType(c.Param("type"))
	if !alphabetType.IsValid() {
		respondBadRequest(c, "unknown alphabet type: "+string(alphabetType))
		return
	}

	alphabet, err := cc.store.GetAlphabetByType(alphabetType)
	if err != nil {
		respondInternalError(c, err, "get alphabet by type")
		return
	}
	if alphabet == nil {
		respondNotFound(c, "alphabet")
		return
	}
	c.JSON(http.StatusOK, gin.H{"alphabet": alphabet})
}

// ListLetters returns an alphabet's letters in their canonical order.
// An unknown alphabet id yields an empty list, not an error.
// GET /api/alphabets/:id/letters
func (cc *CatalogController) ListLetters(c *gin.Context) {
	alphabetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	letters, err := cc.store.ListLettersByAlphabet(alphabetID)
	if err != nil {
		respondInternalError(c, err, "list letters")
		return
	}
	if letters == nil {
		letters = []entities.Letter{}
	}
	c.JSON(http.StatusOK, gin.H{"letters": letters})
}

// SampleLetters returns all letters of an alphabet in random order.
// GET /api/alphabets/:id/letters/random
func (cc *CatalogController) SampleLetters(c *gin.Context) {
	alphabetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	letters, err := cc.sampler.Sample(alphabetID)
	if err != nil {
		respondInternalError(c, err, "sample letters")
		return
	}
	if letters == nil {
		letters = []entities.Letter{}
	}
	c.JSON(http.StatusOK, gin.H{"letters": letters})
}

// GetLetter returns a single letter by id.
// GET /api/letters/:id
func (cc *CatalogController) GetLetter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	letter, err := cc.store.GetLetterByID(id)
	if err != nil {
		respondInternalError(c, err, "get letter")
		return
	}
	if letter == nil {
		respondNotFound(c, "letter")
		return
	}
	c.JSON(http.StatusOK, gin.H{"letter": letter})
}
