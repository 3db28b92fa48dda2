package http

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abecedary/abecedary/internal/database"
	"github.com/abecedary/abecedary/internal/database/catalog"
	"github.com/abecedary/abecedary/internal/database/practice"
	"github.com/abecedary/abecedary/internal/entities"
	"github.com/abecedary/abecedary/internal/sampler"
)

// setupAPITest builds a full router backed by a fresh file database
func setupAPITest(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_api_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	catalogRepo := catalog.NewRepository(db.DB)
	router := NewRouter(RouterConfig{
		Database:      db,
		CatalogStore:  catalogRepo,
		PracticeStore: practice.NewRepository(db.DB),
		Sampler:       sampler.NewSamplerWithSource(catalogRepo, rand.NewSource(1)),
		Version:       "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}

func seedAlphabet(t *testing.T, db *database.Database, alphabetType entities.AlphabetType, name string, total int) *entities.Alphabet {
	t.Helper()
	alphabet := &entities.Alphabet{Type: alphabetType, Name: name, TotalLetters: total}
	require.NoError(t, db.DB.Create(alphabet).Error)
	return alphabet
}

func seedLetter(t *testing.T, db *database.Database, alphabetID uint, glyph, name string, position int) *entities.Letter {
	t.Helper()
	letter := &entities.Letter{AlphabetID: alphabetID, Letter: glyph, Name: name, OrderPosition: position}
	require.NoError(t, db.DB.Create(letter).Error)
	return letter
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCatalogController_ListAlphabets(t *testing.T) {
	t.Run("returns every alphabet", func(t *testing.T) {
		router, db, cleanup := setupAPITest(t)
		defer cleanup()

		seedAlphabet(t, db, entities.AlphabetTypeFrench, "French Alphabet", 26)
		seedAlphabet(t, db, entities.AlphabetTypeHebrew, "Hebrew Alphabet", 22)

		w := doRequest(t, router, "GET", "/api/alphabets", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Alphabets []entities.Alphabet `json:"alphabets"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Alphabets, 2)
	})

	t.Run("empty catalog yields empty list", func(t *testing.T) {
		router, _, cleanup := setupAPITest(t)
		defer cleanup()

		w := doRequest(t, router, "GET", "/api/alphabets", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"alphabets": []}`, w.Body.String())
	})
}

func TestCatalogController_GetAlphabetByType(t *testing.T) {
	t.Run("finds alphabet by type", func(t *testing.T) {
		router, db, cleanup := setupAPITest(t)
		defer cleanup()

		created := seedAlphabet(t, db, entities.AlphabetTypeGerman, "German Alphabet", 30)

		w := doRequest(t, router, "GET", "/api/alphabets/types/german", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Alphabet entities.Alphabet `json:"alphabet"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.Alphabet.ID)
		assert.Equal(t, "German Alphabet", resp.Alphabet.Name)
	})

	t.Run("rejects unknown type identifier", func(t *testing.T) {
		router, _, cleanup := setupAPITest(t)
		defer cleanup()

		w := doRequest(t, router, "GET", "/api/alphabets/types/klingon", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, CodeValidation, resp.Code)
	})

	t.Run("valid but unseeded type yields 404", func(t *testing.T) {
		router, _, cleanup := setupAPITest(t)
		defer cleanup()

		w := doRequest(t, router, "GET", "/api/alphabets/types/polish", "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, CodeNotFound, resp.Code)
	})
}

func TestCatalogController_ListLetters(t *testing.T) {
	t.Run("returns letters in canonical order", func(t *testing.T) {
		router, db, cleanup := setupAPITest(t)
		defer cleanup()

		alphabet := seedAlphabet(t, db, entities.AlphabetTypeFrench, "French Alphabet", 26)
		seedLetter(t, db, alphabet.ID, "B", "bé", 2)
		seedLetter(t, db, alphabet.ID, "A", "a", 1)
		seedLetter(t, db, alphabet.ID, "C", "cé", 3)

		w := doRequest(t, router, "GET", "/api/alphabets/1/letters", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Letters []entities.Letter `json:"letters"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Letters, 3)
		assert.Equal(t, "A", resp.Letters[0].Letter)
		assert.Equal(t, "B", resp.Letters[1].Letter)
		assert.Equal(t, "C", resp.Letters[2].Letter)
	})

	t.Run("unknown alphabet id yields empty list", func(t *testing.T) {
		router, _, cleanup := setupAPITest(t)
		defer cleanup()

		w := doRequest(t, router, "GET", "/api/alphabets/9999/letters", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"letters": []}`, w.Body.String())
	})

	t.Run("rejects non-numeric id", func(t *testing.T) {
		router, _, cleanup := setupAPITest(t)
		defer cleanup()

		w := doRequest(t, router, "GET", "/api/alphabets/abc/letters", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogController_SampleLetters(t *testing.T) {
	t.Run("returns a permutation of the letter set", func(t *testing.T) {
		router, db, cleanup := setupAPITest(t)
		defer cleanup()

		alphabet := seedAlphabet(t, db, entities.AlphabetTypeFrench, "French Alphabet", 26)
		for i, glyph := range []string{"A", "B", "C", "D", "E"} {
			seedLetter(t, db, alphabet.ID, glyph, strings.ToLower(glyph), i+1)
		}

		w := doRequest(t, router, "GET", "/api/alphabets/1/letters/random", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Letters []entities.Letter `json:"letters"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Letters, 5)

		glyphs := make([]string, len(resp.Letters))
		for i, l := range resp.Letters {
			glyphs[i] = l.Letter
		}
		sort.Strings(glyphs)
		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, glyphs)
	})

	t.Run("empty alphabet yields empty sample", func(t *testing.T) {
		router, db, cleanup := setupAPITest(t)
		defer cleanup()

		seedAlphabet(t, db, entities.AlphabetTypeGeorgian, "Georgian Alphabet", 33)

		w := doRequest(t, router, "GET", "/api/alphabets/1/letters/random", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"letters": []}`, w.Body.String())
	})
}

func TestCatalogController_GetLetter(t *testing.T) {
	t.Run("returns the letter", func(t *testing.T) {
		router, db, cleanup := setupAPITest(t)
		defer cleanup()

		alphabet := seedAlphabet(t, db, entities.AlphabetTypeHebrew, "Hebrew Alphabet", 22)
		created := seedLetter(t, db, alphabet.ID, "א", "Alef", 1)

		w := doRequest(t, router, "GET", "/api/letters/1", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Letter entities.Letter `json:"letter"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.Letter.ID)
		assert.Equal(t, "א", resp.Letter.Letter)
	})

	t.Run("absent letter yields 404", func(t *testing.T) {
		router, _, cleanup := setupAPITest(t)
		defer cleanup()

		w := doRequest(t, router, "GET", "/api/letters/77", "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, CodeNotFound, resp.Code)
	})
}
