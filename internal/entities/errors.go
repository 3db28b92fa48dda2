package entities

import "fmt"

// AlphabetNotFoundError is returned when an operation references an
// alphabet id that does not exist. It is shared between the server
// handlers and the boundary client so callers can tell a missing
// alphabet apart from a transport failure.
type AlphabetNotFoundError struct {
	AlphabetID uint
}

func (e *AlphabetNotFoundError) Error() string {
	return fmt.Sprintf("alphabet with id %d not found", e.AlphabetID)
}

// ProgressBoundsError is returned when a session update would break
// correct_answers <= completed_cards <= total_cards.
type ProgressBoundsError struct {
	SessionID      uint
	CompletedCards int
	CorrectAnswers int
	TotalCards     int
}

func (e *ProgressBoundsError) Error() string {
	return fmt.Sprintf(
		"session %d progress out of bounds: correct=%d completed=%d total=%d",
		e.SessionID, e.CorrectAnswers, e.CompletedCards, e.TotalCards,
	)
}
