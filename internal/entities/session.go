package entities

import "time"

type SessionType string

const (
	SessionTypeFlashcard SessionType = "flashcard"
	SessionTypeQuiz      SessionType = "quiz"
)

// IsValid reports whether the session type is one of the supported modes.
func (t SessionType) IsValid() bool {
	return t == SessionTypeFlashcard || t == SessionTypeQuiz
}

// PracticeSession tracks one run of flashcard or quiz practice against
// one alphabet. CompletedAt stays nil until the session reaches its
// terminal state; a session with progress but no completion timestamp
// is considered in progress.
type PracticeSession struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	AlphabetID     uint        `gorm:"index" json:"alphabet_id"`
	SessionType    SessionType `gorm:"size:20" json:"session_type"`
	TotalCards     int         `json:"total_cards"`
	CompletedCards int         `gorm:"default:0" json:"completed_cards"`
	CorrectAnswers int         `gorm:"default:0" json:"correct_answers"`
	StartedAt      time.Time   `json:"started_at"`
	CompletedAt    *time.Time  `json:"completed_at"`

	Alphabet Alphabet `gorm:"foreignKey:AlphabetID" json:"-"`
}

// Completed reports whether the session reached its terminal state.
func (s *PracticeSession) Completed() bool {
	return s.CompletedAt != nil
}
