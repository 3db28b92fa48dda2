// Package controller holds the view state machine behind the practice
// terminal UI. It owns every transition and all view-local state; the
// UI layer only renders the controller and feeds it fetch results.
//
// Fetches themselves run outside the controller so it never blocks.
// Each load hands out a generation token, and results carrying a stale
// token are dropped, so a fetch that resolves after the user navigated
// away cannot corrupt the current view.
package controller

import (
	"fmt"
	"time"

	"github.com/abecedary/abecedary/internal/database/practice"
	"github.com/abecedary/abecedary/internal/entities"
	"github.com/abecedary/abecedary/internal/fallback"
)

// AdvanceDelay is how long a scored card stays on screen before the
// walkthrough moves on.
const AdvanceDelay = 1500 * time.Millisecond

// View identifies one screen of the state machine.
type View int

const (
	ViewAlphabets View = iota
	ViewLetters
	ViewLetterDetail
	ViewPractice
)

func (v View) String() string {
	switch v {
	case ViewAlphabets:
		return "alphabets"
	case ViewLetters:
		return "letters"
	case ViewLetterDetail:
		return "letter-detail"
	case ViewPractice:
		return "practice"
	default:
		return "unknown"
	}
}

// Practice is the view-local state of a walkthrough.
type Practice struct {
	Session  *entities.PracticeSession
	Cards    []entities.Letter
	Index    int
	Revealed bool
	Correct  int
	Total    int
}

// Summary describes a finished walkthrough.
type Summary struct {
	Correct int
	Total   int
}

// ProgressUpdate is a session update the UI should deliver to the
// server after a card is scored. Delivery failures are logged and
// never interrupt play.
type ProgressUpdate struct {
	SessionID uint
	Update    practice.SessionUpdate
}

// Controller is the state machine. It is not safe for concurrent use;
// the UI event loop is its single caller.
type Controller struct {
	fallback fallback.Provider

	view       View
	generation uint64
	loading    bool

	errMessage   string
	usingBackup  bool
	alphabets    []entities.Alphabet
	selected     *entities.Alphabet
	letters      []entities.Letter
	letterDetail *entities.Letter
	practice     *Practice
	lastSummary  *Summary
}

// NewController starts at the alphabets view with nothing loaded.
func NewController(fb fallback.Provider) *Controller {
	return &Controller{fallback: fb, view: ViewAlphabets}
}

func (c *Controller) View() View                           { return c.view }
func (c *Controller) Loading() bool                        { return c.loading }
func (c *Controller) ErrMessage() string                   { return c.errMessage }
func (c *Controller) UsingFallback() bool                  { return c.usingBackup }
func (c *Controller) Alphabets() []entities.Alphabet       { return c.alphabets }
func (c *Controller) SelectedAlphabet() *entities.Alphabet { return c.selected }
func (c *Controller) Letters() []entities.Letter           { return c.letters }
func (c *Controller) LetterDetail() *entities.Letter       { return c.letterDetail }
func (c *Controller) Practice() *Practice                  { return c.practice }
func (c *Controller) LastSummary() *Summary                { return c.lastSummary }

// nextGeneration invalidates any in-flight fetch result.
func (c *Controller) nextGeneration() uint64 {
	c.generation++
	return c.generation
}

func (c *Controller) stale(generation uint64) bool {
	return generation != c.generation
}

// BeginLoadAlphabets marks the alphabet list as loading and returns
// the token the eventual ApplyAlphabets call must carry.
func (c *Controller) BeginLoadAlphabets() uint64 {
	c.loading = true
	c.errMessage = ""
	return c.nextGeneration()
}

// ApplyAlphabets installs a fetch result. On failure it keeps any
// previously loaded list, or falls back to the built-in catalog so the
// view is never blank, and raises a retryable error banner.
func (c *Controller) ApplyAlphabets(generation uint64, alphabets []entities.Alphabet, err error) {
	if c.stale(generation) {
		return
	}
	c.loading = false
	if err != nil {
		c.errMessage = fmt.Sprintf("Could not load alphabets: %v. Press r to retry.", err)
		if len(c.alphabets) == 0 {
			c.alphabets = c.fallback.Alphabets()
			c.usingBackup = true
		}
		return
	}
	c.alphabets = alphabets
	c.usingBackup = false
	c.errMessage = ""
}

// SelectAlphabet moves to the letters view and returns the token for
// the letter list fetch.
func (c *Controller) SelectAlphabet(a entities.Alphabet) uint64 {
	c.selected = &a
	c.letters = nil
	c.lastSummary = nil
	c.view = ViewLetters
	c.loading = true
	c.errMessage = ""
	return c.nextGeneration()
}

// ApplyLetters installs a letter list fetch result, substituting
// fallback letters for the selected alphabet on failure.
func (c *Controller) ApplyLetters(generation uint64, letters []entities.Letter, err error) {
	if c.stale(generation) {
		return
	}
	c.loading = false
	if err != nil {
		c.errMessage = fmt.Sprintf("Could not load letters: %v. Press r to retry.", err)
		if len(c.letters) == 0 && c.selected != nil {
			c.letters = c.fallback.Letters(c.selected.ID)
			c.usingBackup = true
		}
		return
	}
	c.letters = letters
	c.errMessage = ""
}

// SelectLetter shows a letter's detail. No fetch is needed since the
// letter list already carries the full record.
func (c *Controller) SelectLetter(l entities.Letter) {
	c.letterDetail = &l
	c.view = ViewLetterDetail
}

// StartPractice moves to the practice view and returns the token for
// the session creation and letter sampling round trip.
func (c *Controller) StartPractice() uint64 {
	c.practice = nil
	c.lastSummary = nil
	c.view = ViewPractice
	c.loading = true
	c.errMessage = ""
	return c.nextGeneration()
}

// ApplyPractice installs the sampled cards and, when the server was
// reachable, the created session. With a nil session the walkthrough
// still runs but progress stays local.
func (c *Controller) ApplyPractice(generation uint64, session *entities.PracticeSession, cards []entities.Letter, err error) {
	if c.stale(generation) {
		return
	}
	c.loading = false
	if err != nil {
		c.errMessage = fmt.Sprintf("Could not start a recorded session: %v. Practicing offline.", err)
		if c.selected != nil {
			cards = c.lettersOrFallback()
		}
		session = nil
	}
	c.practice = &Practice{Session: session, Cards: cards}
}

func (c *Controller) lettersOrFallback() []entities.Letter {
	if len(c.letters) > 0 {
		out := make([]entities.Letter, len(c.letters))
		copy(out, c.letters)
		return out
	}
	return c.fallback.Letters(c.selected.ID)
}

// Reveal toggles whether the current card's answer is visible.
func (c *Controller) Reveal() {
	if c.practice == nil {
		return
	}
	c.practice.Revealed = !c.practice.Revealed
}

// Score records an answer for the current card and returns the
// session update to deliver, or nil when practicing offline. The UI
// should call Advance after AdvanceDelay.
func (c *Controller) Score(correct bool) *ProgressUpdate {
	p := c.practice
	if p == nil || len(p.Cards) == 0 {
		return nil
	}
	p.Total++
	if correct {
		p.Correct++
	}
	if p.Session == nil {
		return nil
	}

	completed := p.Total
	answers := p.Correct
	update := practice.SessionUpdate{
		CompletedCards: &completed,
		CorrectAnswers: &answers,
	}
	if p.Index == len(p.Cards)-1 {
		now := time.Now().UTC()
		update.CompletedAt = practice.NullableTime{Set: true, Valid: true, Time: now}
	}
	return &ProgressUpdate{SessionID: p.Session.ID, Update: update}
}

// Advance moves to the next card, or finishes the walkthrough and
// returns to the letters view with a completion summary.
func (c *Controller) Advance() (Summary, bool) {
	p := c.practice
	if p == nil || len(p.Cards) == 0 {
		return Summary{}, false
	}
	if p.Index < len(p.Cards)-1 {
		p.Index++
		p.Revealed = false
		return Summary{}, false
	}

	summary := Summary{Correct: p.Correct, Total: p.Total}
	c.lastSummary = &summary
	c.practice = nil
	c.view = ViewLetters
	c.nextGeneration()
	return summary, true
}

// Back returns to the parent view, clearing view-local state. Leaving
// the practice view abandons the session without notifying the server.
func (c *Controller) Back() {
	switch c.view {
	case ViewLetterDetail:
		c.letterDetail = nil
		c.view = ViewLetters
	case ViewPractice:
		c.practice = nil
		c.view = ViewLetters
	case ViewLetters:
		c.selected = nil
		c.letters = nil
		c.lastSummary = nil
		c.view = ViewAlphabets
	}
	c.loading = false
	c.errMessage = ""
	c.nextGeneration()
}

// Retry re-issues the load for the current view. It returns the view
// whose data should be fetched and the token to attach, or false when
// the current view has nothing to reload.
func (c *Controller) Retry() (View, uint64, bool) {
	switch c.view {
	case ViewAlphabets:
		return ViewAlphabets, c.BeginLoadAlphabets(), true
	case ViewLetters:
		if c.selected == nil {
			return 0, 0, false
		}
		c.loading = true
		c.errMessage = ""
		return ViewLetters, c.nextGeneration(), true
	case ViewPractice:
		return ViewPractice, c.StartPractice(), true
	default:
		return 0, 0, false
	}
}
