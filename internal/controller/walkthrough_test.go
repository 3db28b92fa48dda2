package controller

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abecedary/abecedary/internal/database"
	"github.com/abecedary/abecedary/internal/database/practice"
	"github.com/abecedary/abecedary/internal/entities"
	"github.com/abecedary/abecedary/internal/fallback"
)

func setupWalkthroughDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	dbPath := "./test_walkthrough_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

// Plays a full-alphabet deck against the real session store. The
// session is created from the sampled deck size, the way the UI does
// it, so every per-card update has to clear the counter bounds and the
// final card's completion stamp has to land.
func TestWalkthroughAgainstStore(t *testing.T) {
	db, cleanup := setupWalkthroughDB(t)
	defer cleanup()

	alphabet := &entities.Alphabet{Type: entities.AlphabetTypeFrench, Name: "French Alphabet", TotalLetters: 26}
	require.NoError(t, db.DB.Create(alphabet).Error)

	cards := make([]entities.Letter, 26)
	for i := range cards {
		cards[i] = entities.Letter{AlphabetID: alphabet.ID, Letter: string(rune('A' + i)), OrderPosition: i + 1}
		require.NoError(t, db.DB.Create(&cards[i]).Error)
	}

	repo := practice.NewRepository(db.DB)
	session, err := repo.CreateSession(alphabet.ID, entities.SessionTypeFlashcard, len(cards))
	require.NoError(t, err)

	c := NewController(fallback.NewProvider())
	generation := c.SelectAlphabet(*alphabet)
	c.ApplyLetters(generation, cards, nil)
	generation = c.StartPractice()
	c.ApplyPractice(generation, session, cards, nil)

	for i := 0; i < len(cards); i++ {
		c.Reveal()
		update := c.Score(true)
		require.NotNil(t, update, "card %d", i+1)

		applied, err := repo.UpdateSession(update.SessionID, update.Update)
		require.NoError(t, err, "card %d", i+1)
		require.NotNil(t, applied, "card %d", i+1)
		assert.Equal(t, i+1, applied.CompletedCards)

		summary, done := c.Advance()
		if i < len(cards)-1 {
			assert.False(t, done)
		} else {
			assert.True(t, done)
			assert.Equal(t, len(cards), summary.Total)
		}
	}

	stored, err := repo.GetSessionByID(session.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, len(cards), stored.TotalCards)
	assert.Equal(t, len(cards), stored.CompletedCards)
	assert.Equal(t, len(cards), stored.CorrectAnswers)
	require.NotNil(t, stored.CompletedAt, "session must reach its terminal state")

	// A terminal session is visible to retention cleanup.
	deleted, err := repo.DeleteCompletedBefore(time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
