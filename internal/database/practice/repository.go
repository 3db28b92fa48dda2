// Package practice owns the practice session lifecycle: creation,
// partial progress updates and housekeeping of finished sessions.
package practice

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/abecedary/abecedary/internal/entities"
)

// NullableTime carries the tri-state of an optional nullable field:
// not provided at all, explicitly null, or a concrete value. The
// distinction matters for completed_at, which can be reset to null
// after having been set.
type NullableTime struct {
	Set   bool
	Valid bool // false when explicitly null
	Time  time.Time
}

// SessionUpdate describes a partial update. Nil pointer fields and an
// unset CompletedAt are left untouched.
type SessionUpdate struct {
	CompletedCards *int
	CorrectAnswers *int
	CompletedAt    NullableTime
}

// Empty reports whether the update carries no fields at all.
func (u SessionUpdate) Empty() bool {
	return u.CompletedCards == nil && u.CorrectAnswers == nil && !u.CompletedAt.Set
}

// Repository handles all practice session database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new practice session repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateSession validates that the alphabet exists and persists a new
// session with zeroed counters. A missing alphabet yields an
// entities.AlphabetNotFoundError carrying the offending id; nothing is
// persisted in that case.
func (r *Repository) CreateSession(alphabetID uint, sessionType entities.SessionType, totalCards int) (*entities.PracticeSession, error) {
	var count int64
	if err := r.db.Model(&entities.Alphabet{}).Where("id = ?", alphabetID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, &entities.AlphabetNotFoundError{AlphabetID: alphabetID}
	}

	session := &entities.PracticeSession{
		AlphabetID:     alphabetID,
		SessionType:    sessionType,
		TotalCards:     totalCards,
		CompletedCards: 0,
		CorrectAnswers: 0,
		StartedAt:      time.Now(),
		CompletedAt:    nil,
	}
	if err := r.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// GetSessionByID returns the session with the given id, or (nil, nil)
// when it does not exist.
func (r *Repository) GetSessionByID(id uint) (*entities.PracticeSession, error) {
	var session entities.PracticeSession
	err := r.db.First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateSession applies only the fields the update explicitly carries.
// An empty update is a no-op returning (nil, nil) without touching the
// row; an unknown id also returns (nil, nil). The resulting counters
// must satisfy correct_answers <= completed_cards <= total_cards or a
// ProgressBoundsError is returned and nothing is written.
func (r *Repository) UpdateSession(id uint, update SessionUpdate) (*entities.PracticeSession, error) {
	if update.Empty() {
		return nil, nil
	}

	var session entities.PracticeSession
	err := r.db.First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any)

	completed := session.CompletedCards
	if update.CompletedCards != nil {
		completed = *update.CompletedCards
		updates["completed_cards"] = completed
	}
	correct := session.CorrectAnswers
	if update.CorrectAnswers != nil {
		correct = *update.CorrectAnswers
		updates["correct_answers"] = correct
	}
	if correct < 0 || correct > completed || completed > session.TotalCards {
		return nil, &entities.ProgressBoundsError{
			SessionID:      session.ID,
			CompletedCards: completed,
			CorrectAnswers: correct,
			TotalCards:     session.TotalCards,
		}
	}

	if update.CompletedAt.Set {
		if update.CompletedAt.Valid {
			updates["completed_at"] = update.CompletedAt.Time
		} else {
			updates["completed_at"] = nil
		}
	}

	if err := r.db.Model(&session).Updates(updates).Error; err != nil {
		return nil, err
	}

	session.CompletedCards = completed
	session.CorrectAnswers = correct
	if update.CompletedAt.Set {
		if update.CompletedAt.Valid {
			t := update.CompletedAt.Time
			session.CompletedAt = &t
		} else {
			session.CompletedAt = nil
		}
	}
	return &session, nil
}

// DeleteCompletedBefore removes sessions that reached their terminal
// state before the cutoff. Used by the housekeeping task; in-progress
// sessions are never touched.
func (r *Repository) DeleteCompletedBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("completed_at IS NOT NULL AND completed_at < ?", cutoff).
		Delete(&entities.PracticeSession{})
	return result.RowsAffected, result.Error
}
