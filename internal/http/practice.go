package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abecedary/abecedary/internal/database/practice"
	"github.com/abecedary/abecedary/internal/entities"
)

// PracticeStore defines database operations for practice sessions.
type PracticeStore interface {
	CreateSession(alphabetID uint, sessionType entities.SessionType, totalCards int) (*entities.PracticeSession, error)
	UpdateSession(id uint, update practice.SessionUpdate) (*entities.PracticeSession, error)
}

type PracticeController struct {
	store PracticeStore
}

func NewPracticeController(store PracticeStore) *PracticeController {
	return &PracticeController{store: store}
}

// CreateSessionRequest is the request body for starting a practice
// session. AlphabetID carries no binding rule so that a zero or
// missing id falls through to the store's existence check and comes
// back as a not-found error naming the id.
type CreateSessionRequest struct {
	AlphabetID  uint                 `json:"alphabet_id"`
	SessionType entities.SessionType `json:"session_type" binding:"required"`
	TotalCards  int                  `json:"total_cards" binding:"required"`
}

// OptionalTime distinguishes an absent JSON field from an explicit
// null and from a concrete timestamp. Needed for completed_at, which
// may be reset to null.
type OptionalTime struct {
	Set   bool
	Valid bool
	Time  time.Time
}

func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Time); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// UpdateSessionRequest is the request body for a partial session update.
// Absent fields are left untouched.
type UpdateSessionRequest struct {
	CompletedCards *int         `json:"completed_cards"`
	CorrectAnswers *int         `json:"correct_answers"`
	CompletedAt    OptionalTime `json:"completed_at"`
}

// CreateSession starts a new practice session for an alphabet.
// POST /api/practice/sessions
func (pc *PracticeController) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if !req.SessionType.IsValid() {
		respondBadRequest(c, "unknown session type: "+string(req.SessionType))
		return
	}
	if req.TotalCards <= 0 {
		respondBadRequest(c, "total_cards must be positive")
		return
	}

	session, err := pc.store.CreateSession(req.AlphabetID, req.SessionType, req.TotalCards)
	if err != nil {
		var notFound *entities.AlphabetNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   notFound.Error(),
				Code:    CodeAlphabetNotFound,
				Details: gin.H{"alphabet_id": notFound.AlphabetID},
			})
			return
		}
		respondInternalError(c, err, "create practice session")
		return
	}
	respondCreated(c, gin.H{"session": session})
}

// UpdateSession applies a partial update to a session. An unknown id or
// an update without any fields both yield a null session in the
// response body; neither is an error.
// PATCH /api/practice/sessions/:id
func (pc *PracticeController) UpdateSession(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if req.CompletedCards != nil && *req.CompletedCards < 0 {
		respondBadRequest(c, "completed_cards must be non-negative")
		return
	}
	if req.CorrectAnswers != nil && *req.CorrectAnswers < 0 {
		respondBadRequest(c, "correct_answers must be non-negative")
		return
	}

	update := practice.SessionUpdate{
		CompletedCards: req.CompletedCards,
		CorrectAnswers: req.CorrectAnswers,
		CompletedAt: practice.NullableTime{
			Set:   req.CompletedAt.Set,
			Valid: req.CompletedAt.Valid,
			Time:  req.CompletedAt.Time,
		},
	}

	session, err := pc.store.UpdateSession(id, update)
	if err != nil {
		var bounds *entities.ProgressBoundsError
		if errors.As(err, &bounds) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: bounds.Error(),
				Code:  CodeProgressBounds,
			})
			return
		}
		respondInternalError(c, err, "update practice session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}
