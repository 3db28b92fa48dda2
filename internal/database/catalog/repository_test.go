package catalog

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abecedary/abecedary/internal/database"
	"github.com/abecedary/abecedary/internal/entities"
)

// setupTestRepo creates a fresh test database with a catalog repository
func setupTestRepo(t *testing.T) (*Repository, func()) {
	t.Helper()
	dbPath := "./test_catalog_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db.DB), cleanup
}

func strPtr(s string) *string { return &s }

func TestListAlphabets(t *testing.T) {
	t.Run("returns every inserted alphabet with fields intact", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		french := &entities.Alphabet{
			Type:         entities.AlphabetTypeFrench,
			Name:         "French Alphabet",
			Description:  strPtr("26 letters"),
			TotalLetters: 26,
		}
		hebrew := &entities.Alphabet{
			Type:         entities.AlphabetTypeHebrew,
			Name:         "Hebrew Alphabet",
			Description:  nil,
			TotalLetters: 22,
		}
		require.NoError(t, repo.CreateAlphabet(french))
		require.NoError(t, repo.CreateAlphabet(hebrew))

		alphabets, err := repo.ListAlphabets()
		require.NoError(t, err)
		require.Len(t, alphabets, 2)

		byType := map[entities.AlphabetType]entities.Alphabet{}
		for _, a := range alphabets {
			byType[a.Type] = a
		}

		gotFrench := byType[entities.AlphabetTypeFrench]
		assert.Equal(t, "French Alphabet", gotFrench.Name)
		require.NotNil(t, gotFrench.Description)
		assert.Equal(t, "26 letters", *gotFrench.Description)
		assert.Equal(t, 26, gotFrench.TotalLetters)

		gotHebrew := byType[entities.AlphabetTypeHebrew]
		assert.Equal(t, "Hebrew Alphabet", gotHebrew.Name)
		assert.Nil(t, gotHebrew.Description)
	})

	t.Run("returns empty list for empty catalog", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		alphabets, err := repo.ListAlphabets()
		require.NoError(t, err)
		assert.Empty(t, alphabets)
	})
}

func TestGetAlphabetByType(t *testing.T) {
	t.Run("finds alphabet by type", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		created := &entities.Alphabet{Type: entities.AlphabetTypeGeorgian, Name: "Georgian Alphabet", TotalLetters: 33}
		require.NoError(t, repo.CreateAlphabet(created))

		alphabet, err := repo.GetAlphabetByType(entities.AlphabetTypeGeorgian)
		require.NoError(t, err)
		require.NotNil(t, alphabet)
		assert.Equal(t, created.ID, alphabet.ID)
		assert.Equal(t, "Georgian Alphabet", alphabet.Name)
	})

	t.Run("returns nil without error when type is absent", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		alphabet, err := repo.GetAlphabetByType(entities.AlphabetTypePolish)
		require.NoError(t, err)
		assert.Nil(t, alphabet)
	})
}

func TestListLettersByAlphabet(t *testing.T) {
	t.Run("orders by position regardless of insertion order", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		alphabet := &entities.Alphabet{Type: entities.AlphabetTypeFrench, Name: "French Alphabet", TotalLetters: 26}
		require.NoError(t, repo.CreateAlphabet(alphabet))

		// Inserted out of order on purpose
		require.NoError(t, repo.CreateLetter(&entities.Letter{AlphabetID: alphabet.ID, Letter: "C", Name: "cé", OrderPosition: 3}))
		require.NoError(t, repo.CreateLetter(&entities.Letter{AlphabetID: alphabet.ID, Letter: "A", Name: "a", OrderPosition: 1}))
		require.NoError(t, repo.CreateLetter(&entities.Letter{AlphabetID: alphabet.ID, Letter: "B", Name: "bé", OrderPosition: 2}))

		letters, err := repo.ListLettersByAlphabet(alphabet.ID)
		require.NoError(t, err)
		require.Len(t, letters, 3)
		assert.Equal(t, []string{"A", "B", "C"}, []string{letters[0].Letter, letters[1].Letter, letters[2].Letter})
		assert.Equal(t, []int{1, 2, 3}, []int{letters[0].OrderPosition, letters[1].OrderPosition, letters[2].OrderPosition})
	})

	t.Run("only returns letters of the requested alphabet", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		french := &entities.Alphabet{Type: entities.AlphabetTypeFrench, Name: "French Alphabet", TotalLetters: 26}
		german := &entities.Alphabet{Type: entities.AlphabetTypeGerman, Name: "German Alphabet", TotalLetters: 30}
		require.NoError(t, repo.CreateAlphabet(french))
		require.NoError(t, repo.CreateAlphabet(german))

		require.NoError(t, repo.CreateLetter(&entities.Letter{AlphabetID: french.ID, Letter: "A", Name: "a", OrderPosition: 1}))
		require.NoError(t, repo.CreateLetter(&entities.Letter{AlphabetID: german.ID, Letter: "Ä", Name: "ä", OrderPosition: 27}))

		letters, err := repo.ListLettersByAlphabet(french.ID)
		require.NoError(t, err)
		require.Len(t, letters, 1)
		assert.Equal(t, "A", letters[0].Letter)
	})

	t.Run("returns empty list for unknown alphabet id", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		letters, err := repo.ListLettersByAlphabet(9999)
		require.NoError(t, err)
		assert.Empty(t, letters)
	})
}

func TestGetLetterByID(t *testing.T) {
	t.Run("returns the stored letter", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		alphabet := &entities.Alphabet{Type: entities.AlphabetTypeHebrew, Name: "Hebrew Alphabet", TotalLetters: 22}
		require.NoError(t, repo.CreateAlphabet(alphabet))

		created := &entities.Letter{
			AlphabetID:         alphabet.ID,
			Letter:             "א",
			Name:               "Alef",
			Pronunciation:      strPtr("/ʔ/"),
			PronunciationGuide: strPtr("silent or glottal stop"),
			OrderPosition:      1,
		}
		require.NoError(t, repo.CreateLetter(created))

		letter, err := repo.GetLetterByID(created.ID)
		require.NoError(t, err)
		require.NotNil(t, letter)
		assert.Equal(t, "א", letter.Letter)
		require.NotNil(t, letter.Pronunciation)
		assert.Equal(t, "/ʔ/", *letter.Pronunciation)
	})

	t.Run("returns nil without error when absent", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		letter, err := repo.GetLetterByID(42)
		require.NoError(t, err)
		assert.Nil(t, letter)
	})
}
