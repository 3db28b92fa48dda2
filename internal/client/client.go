// Package client is the Go client for the abecedary HTTP API. It is
// the only transport the practice UI talks through: every call takes a
// context, honors a fixed request timeout, and maps the API's absent
// results to (nil, nil) rather than errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abecedary/abecedary/internal/database/practice"
	"github.com/abecedary/abecedary/internal/entities"
)

// DefaultTimeout bounds every API call unless overridden.
const DefaultTimeout = 5 * time.Second

// Client talks to the abecedary API server.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an API client. A non-positive timeout falls back to
// DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// apiError mirrors the server's ErrorResponse payload.
type apiError struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details"`
}

// ListAlphabets fetches every alphabet.
func (c *Client) ListAlphabets(ctx context.Context) ([]entities.Alphabet, error) {
	var payload struct {
		Alphabets []entities.Alphabet `json:"alphabets"`
	}
	if err := c.get(ctx, "/api/alphabets", &payload); err != nil {
		return nil, err
	}
	return payload.Alphabets, nil
}

// GetAlphabetByType fetches the alphabet for a type identifier.
// Returns (nil, nil) when no alphabet uses the type.
func (c *Client) GetAlphabetByType(ctx context.Context, t entities.AlphabetType) (*entities.Alphabet, error) {
	var payload struct {
		Alphabet *entities.Alphabet `json:"alphabet"`
	}
	err := c.get(ctx, "/api/alphabets/types/"+string(t), &payload)
	if isAbsent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload.Alphabet, nil
}

// ListLetters fetches an alphabet's letters in canonical order. An
// unknown alphabet id yields an empty slice.
func (c *Client) ListLetters(ctx context.Context, alphabetID uint) ([]entities.Letter, error) {
	var payload struct {
		Letters []entities.Letter `json:"letters"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/alphabets/%d/letters", alphabetID), &payload); err != nil {
		return nil, err
	}
	return payload.Letters, nil
}

// GetLetter fetches a single letter, or (nil, nil) when absent.
func (c *Client) GetLetter(ctx context.Context, id uint) (*entities.Letter, error) {
	var payload struct {
		Letter *entities.Letter `json:"letter"`
	}
	err := c.get(ctx, fmt.Sprintf("/api/letters/%d", id), &payload)
	if isAbsent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload.Letter, nil
}

// SampleLetters fetches all letters of an alphabet in random order.
func (c *Client) SampleLetters(ctx context.Context, alphabetID uint) ([]entities.Letter, error) {
	var payload struct {
		Letters []entities.Letter `json:"letters"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/alphabets/%d/letters/random", alphabetID), &payload); err != nil {
		return nil, err
	}
	return payload.Letters, nil
}

// CreateSession starts a practice session. A missing alphabet surfaces
// as an *entities.AlphabetNotFoundError so callers can tell it apart
// from transport failures.
func (c *Client) CreateSession(ctx context.Context, alphabetID uint, sessionType entities.SessionType, totalCards int) (*entities.PracticeSession, error) {
	body := map[string]any{
		"alphabet_id":  alphabetID,
		"session_type": sessionType,
		"total_cards":  totalCards,
	}
	var payload struct {
		Session *entities.PracticeSession `json:"session"`
	}
	if err := c.send(ctx, http.MethodPost, "/api/practice/sessions", body, &payload); err != nil {
		return nil, err
	}
	return payload.Session, nil
}

// UpdateSession applies a partial update. Absent session ids and empty
// updates both return (nil, nil), matching the server contract.
func (c *Client) UpdateSession(ctx context.Context, id uint, update practice.SessionUpdate) (*entities.PracticeSession, error) {
	body := map[string]any{}
	if update.CompletedCards != nil {
		body["completed_cards"] = *update.CompletedCards
	}
	if update.CorrectAnswers != nil {
		body["correct_answers"] = *update.CorrectAnswers
	}
	if update.CompletedAt.Set {
		if update.CompletedAt.Valid {
			body["completed_at"] = update.CompletedAt.Time
		} else {
			body["completed_at"] = nil
		}
	}

	var payload struct {
		Session *entities.PracticeSession `json:"session"`
	}
	if err := c.send(ctx, http.MethodPatch, fmt.Sprintf("/api/practice/sessions/%d", id), body, &payload); err != nil {
		return nil, err
	}
	return payload.Session, nil
}

// absentError marks a 404 for a legitimately absent resource.
type absentError struct{}

func (absentError) Error() string { return "resource absent" }

func isAbsent(err error) bool {
	_, ok := err.(absentError)
	return ok
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	switch apiErr.Code {
	case "alphabet_not_found":
		var alphabetID uint
		if raw, ok := apiErr.Details["alphabet_id"]; ok {
			if n, ok := raw.(float64); ok {
				alphabetID = uint(n)
			}
		}
		return &entities.AlphabetNotFoundError{AlphabetID: alphabetID}
	case "not_found":
		return absentError{}
	default:
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Error)
	}
}
