// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abecedary/abecedary/internal/controller"
	"github.com/abecedary/abecedary/internal/database/practice"
	"github.com/abecedary/abecedary/internal/entities"
)

// API is the slice of the server client the UI needs.
type API interface {
	ListAlphabets(ctx context.Context) ([]entities.Alphabet, error)
	ListLetters(ctx context.Context, alphabetID uint) ([]entities.Letter, error)
	SampleLetters(ctx context.Context, alphabetID uint) ([]entities.Letter, error)
	CreateSession(ctx context.Context, alphabetID uint, sessionType entities.SessionType, totalCards int) (*entities.PracticeSession, error)
	UpdateSession(ctx context.Context, id uint, update practice.SessionUpdate) (*entities.PracticeSession, error)
}

type alphabetsMsg struct {
	generation uint64
	alphabets  []entities.Alphabet
	err        error
}

type lettersMsg struct {
	generation uint64
	letters    []entities.Letter
	err        error
}

type practiceMsg struct {
	generation uint64
	session    *entities.PracticeSession
	cards      []entities.Letter
	err        error
}

type advanceMsg struct{}

type progressSavedMsg struct{ err error }

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	offlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D1A030"))
	glyphStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	revealedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FBF7F"))
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FBF7F")).Bold(true)
)

// Model implements the Bubble Tea practice UI.
type Model struct {
	api     API
	ctrl    *controller.Controller
	timeout time.Duration

	cursor  int
	waiting bool
	spin    spinner.Model

	width  int
	height int
}

// NewModel constructs the practice UI around a controller and client.
func NewModel(api API, ctrl *controller.Controller, timeout time.Duration) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = dimStyle
	return &Model{api: api, ctrl: ctrl, timeout: timeout, spin: s}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	generation := m.ctrl.BeginLoadAlphabets()
	return tea.Batch(m.spin.Tick, m.loadAlphabets(generation))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case alphabetsMsg:
		m.ctrl.ApplyAlphabets(msg.generation, msg.alphabets, msg.err)
		m.clampCursor(len(m.ctrl.Alphabets()))
		return m, nil
	case lettersMsg:
		m.ctrl.ApplyLetters(msg.generation, msg.letters, msg.err)
		m.clampCursor(len(m.ctrl.Letters()))
		return m, nil
	case practiceMsg:
		m.ctrl.ApplyPractice(msg.generation, msg.session, msg.cards, msg.err)
		return m, nil
	case advanceMsg:
		m.waiting = false
		m.ctrl.Advance()
		return m, nil
	case progressSavedMsg:
		if msg.err != nil {
			logErrf("failed to save progress: %v\n", msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	switch m.ctrl.View() {
	case controller.ViewAlphabets:
		return m.handleAlphabetsKey(key)
	case controller.ViewLetters:
		return m.handleLettersKey(key)
	case controller.ViewLetterDetail:
		if key == "esc" || key == "b" || key == "backspace" {
			m.ctrl.Back()
		}
		return m, nil
	case controller.ViewPractice:
		return m.handlePracticeKey(key)
	}
	return m, nil
}

func (m *Model) handleAlphabetsKey(key string) (tea.Model, tea.Cmd) {
	alphabets := m.ctrl.Alphabets()
	switch key {
	case "up", "k":
		m.moveCursor(-1, len(alphabets))
	case "down", "j":
		m.moveCursor(1, len(alphabets))
	case "enter":
		if m.cursor < len(alphabets) {
			selected := alphabets[m.cursor]
			generation := m.ctrl.SelectAlphabet(selected)
			m.cursor = 0
			return m, m.loadLetters(generation, selected.ID)
		}
	case "r":
		return m, m.retry()
	}
	return m, nil
}

func (m *Model) handleLettersKey(key string) (tea.Model, tea.Cmd) {
	letters := m.ctrl.Letters()
	switch key {
	case "up", "k":
		m.moveCursor(-1, len(letters))
	case "down", "j":
		m.moveCursor(1, len(letters))
	case "enter":
		if m.cursor < len(letters) {
			m.ctrl.SelectLetter(letters[m.cursor])
		}
	case "p":
		generation := m.ctrl.StartPractice()
		return m, m.startPractice(generation)
	case "r":
		return m, m.retry()
	case "esc", "b", "backspace":
		m.ctrl.Back()
		m.cursor = 0
	}
	return m, nil
}

func (m *Model) handlePracticeKey(key string) (tea.Model, tea.Cmd) {
	p := m.ctrl.Practice()
	switch key {
	case "esc", "b", "backspace":
		m.waiting = false
		m.ctrl.Back()
		return m, nil
	case "r":
		if p == nil {
			return m, m.retry()
		}
		return m, nil
	case " ", "enter":
		if p != nil && !m.waiting {
			m.ctrl.Reveal()
		}
		return m, nil
	case "y", "n":
		if p == nil || !p.Revealed || m.waiting {
			return m, nil
		}
		update := m.ctrl.Score(key == "y")
		m.waiting = true
		cmds := []tea.Cmd{tea.Tick(controller.AdvanceDelay, func(time.Time) tea.Msg {
			return advanceMsg{}
		})}
		if update != nil {
			cmds = append(cmds, m.saveProgress(*update))
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m *Model) moveCursor(delta, size int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if size > 0 && m.cursor >= size {
		m.cursor = size - 1
	}
}

func (m *Model) clampCursor(size int) {
	if size == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= size {
		m.cursor = size - 1
	}
}

func (m *Model) retry() tea.Cmd {
	view, generation, ok := m.ctrl.Retry()
	if !ok {
		return nil
	}
	switch view {
	case controller.ViewAlphabets:
		return m.loadAlphabets(generation)
	case controller.ViewLetters:
		return m.loadLetters(generation, m.ctrl.SelectedAlphabet().ID)
	case controller.ViewPractice:
		return m.startPractice(generation)
	}
	return nil
}

func (m *Model) loadAlphabets(generation uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		alphabets, err := m.api.ListAlphabets(ctx)
		return alphabetsMsg{generation: generation, alphabets: alphabets, err: err}
	}
}

func (m *Model) loadLetters(generation uint64, alphabetID uint) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		letters, err := m.api.ListLetters(ctx, alphabetID)
		return lettersMsg{generation: generation, letters: letters, err: err}
	}
}

func (m *Model) startPractice(generation uint64) tea.Cmd {
	alphabet := m.ctrl.SelectedAlphabet()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()

		// The walkthrough plays the whole sampled deck, so the deck
		// size must be known before the session is created: its
		// total_cards bounds every later progress update.
		cards, err := m.api.SampleLetters(ctx, alphabet.ID)
		if err != nil {
			return practiceMsg{generation: generation, err: err}
		}
		if len(cards) == 0 {
			return practiceMsg{generation: generation, cards: cards}
		}
		session, err := m.api.CreateSession(ctx, alphabet.ID, entities.SessionTypeFlashcard, len(cards))
		if err != nil {
			return practiceMsg{generation: generation, err: err}
		}
		return practiceMsg{generation: generation, session: session, cards: cards}
	}
}

func (m *Model) saveProgress(update controller.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		_, err := m.api.UpdateSession(ctx, update.SessionID, update.Update)
		return progressSavedMsg{err: err}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	switch m.ctrl.View() {
	case controller.ViewAlphabets:
		m.renderAlphabets(&b)
	case controller.ViewLetters:
		m.renderLetters(&b)
	case controller.ViewLetterDetail:
		m.renderLetterDetail(&b)
	case controller.ViewPractice:
		m.renderPractice(&b)
	}

	if msg := m.ctrl.ErrMessage(); msg != "" {
		b.WriteString("\n" + errorStyle.Render(msg) + "\n")
	}
	if m.ctrl.UsingFallback() {
		b.WriteString(offlineStyle.Render("Showing built-in data; the server is unreachable.") + "\n")
	}
	return b.String()
}

func (m *Model) renderAlphabets(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Alphabets") + "\n\n")
	if m.ctrl.Loading() {
		b.WriteString(m.spin.View() + " loading\n")
		return
	}
	for i, a := range m.ctrl.Alphabets() {
		line := fmt.Sprintf("%s (%d letters)", a.Name, a.TotalLetters)
		b.WriteString(m.listLine(i, line))
	}
	b.WriteString("\n" + dimStyle.Render("enter: open · j/k: move · q: quit") + "\n")
}

func (m *Model) renderLetters(b *strings.Builder) {
	alphabet := m.ctrl.SelectedAlphabet()
	if alphabet != nil {
		b.WriteString(titleStyle.Render(alphabet.Name) + "\n\n")
	}
	if summary := m.ctrl.LastSummary(); summary != nil {
		b.WriteString(summaryStyle.Render(fmt.Sprintf("Practice complete: %d/%d correct", summary.Correct, summary.Total)) + "\n\n")
	}
	if m.ctrl.Loading() {
		b.WriteString(m.spin.View() + " loading\n")
		return
	}
	for i, l := range m.ctrl.Letters() {
		b.WriteString(m.listLine(i, fmt.Sprintf("%s  %s", l.Letter, l.Name)))
	}
	b.WriteString("\n" + dimStyle.Render("enter: detail · p: practice · b: back · q: quit") + "\n")
}

func (m *Model) renderLetterDetail(b *strings.Builder) {
	l := m.ctrl.LetterDetail()
	if l == nil {
		return
	}
	b.WriteString(glyphStyle.Render(l.Letter) + "\n\n")
	b.WriteString(fmt.Sprintf("Name: %s\n", l.Name))
	if l.Pronunciation != nil {
		b.WriteString(fmt.Sprintf("Pronunciation: %s\n", *l.Pronunciation))
	}
	if l.PronunciationGuide != nil {
		b.WriteString(fmt.Sprintf("Sounds like: %s\n", *l.PronunciationGuide))
	}
	b.WriteString(fmt.Sprintf("Position: %d\n", l.OrderPosition))
	b.WriteString("\n" + dimStyle.Render("b: back · q: quit") + "\n")
}

func (m *Model) renderPractice(b *strings.Builder) {
	p := m.ctrl.Practice()
	if m.ctrl.Loading() || p == nil {
		b.WriteString(m.spin.View() + " starting practice\n")
		return
	}
	if len(p.Cards) == 0 {
		b.WriteString("This alphabet has no letters to practice.\n")
		b.WriteString("\n" + dimStyle.Render("b: back · q: quit") + "\n")
		return
	}

	card := p.Cards[p.Index]
	b.WriteString(dimStyle.Render(fmt.Sprintf("Card %d of %d · %d correct", p.Index+1, len(p.Cards), p.Correct)) + "\n\n")
	b.WriteString(glyphStyle.Render(card.Letter) + "\n\n")
	if p.Revealed {
		b.WriteString(revealedStyle.Render(card.Name) + "\n")
		if card.Pronunciation != nil {
			b.WriteString(revealedStyle.Render(*card.Pronunciation) + "\n")
		}
		if card.PronunciationGuide != nil {
			b.WriteString(dimStyle.Render(*card.PronunciationGuide) + "\n")
		}
		b.WriteString("\n" + dimStyle.Render("y: knew it · n: missed it · b: back") + "\n")
		return
	}
	b.WriteString("\n" + dimStyle.Render("space: reveal · b: back · q: quit") + "\n")
}

func (m *Model) listLine(i int, text string) string {
	if i == m.cursor {
		return cursorStyle.Render("> "+text) + "\n"
	}
	return "  " + text + "\n"
}

// Run starts the program and blocks until the user quits.
func Run(api API, ctrl *controller.Controller, timeout time.Duration) error {
	program := tea.NewProgram(NewModel(api, ctrl, timeout), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		_ = err
	}
}
