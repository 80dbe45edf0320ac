package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session holds one player's picture-guessing game state. It is owned by the
// caller (the session store) and passed explicitly to the game flow; the
// round generator never touches it.
type Session struct {
	ID             uuid.UUID `json:"id"`
	Category       Category  `json:"category,omitempty"`
	Round          *Round    `json:"-"`
	Status         Status    `json:"status"`
	SelectedAnswer string    `json:"selected_answer,omitempty"`
	Loading        bool      `json:"loading"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewSession creates an empty session waiting for a category selection.
func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New(),
		Status:    StatusPlaying,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasCategory reports whether a category has been selected.
func (s *Session) HasCategory() bool {
	return s.Category != ""
}

// SelectCategory fixes the category for subsequent rounds.
func (s *Session) SelectCategory(c Category) error {
	if !c.Valid() {
		return ErrInvalidCategory
	}

	s.Category = c
	s.touch()
	return nil
}

// ClearCategory returns the session to category selection, dropping the
// current round and any error.
func (s *Session) ClearCategory() {
	s.Category = ""
	s.Round = nil
	s.Status = StatusPlaying
	s.SelectedAnswer = ""
	s.Loading = false
	s.Error = ""
	s.touch()
}

// BeginRound marks a round fetch as in flight and resets per-round state.
func (s *Session) BeginRound() {
	s.Loading = true
	s.Error = ""
	s.Status = StatusPlaying
	s.SelectedAnswer = ""
	s.Round = nil
	s.touch()
}

// CompleteRound installs a round generated for category c. It reports false
// and leaves the session untouched when c is no longer the selected
// category, e.g. the player went back to category selection mid-fetch.
func (s *Session) CompleteRound(c Category, r *Round) bool {
	if !s.fetchingFor(c) {
		return false
	}

	s.Round = r
	s.Loading = false
	s.Error = ""
	s.Status = StatusPlaying
	s.SelectedAnswer = ""
	s.touch()
	return true
}

// FailRound records a user-facing error for a round fetch for category c.
// Like CompleteRound, it reports false when c is no longer selected.
func (s *Session) FailRound(c Category, message string) bool {
	if !s.fetchingFor(c) {
		return false
	}

	s.Round = nil
	s.Loading = false
	s.Error = message
	s.touch()
	return true
}

func (s *Session) fetchingFor(c Category) bool {
	return s.HasCategory() && s.Category == c
}

// Answer records the player's answer for the current round.
//
// Only the first answer of a round counts: once the status has left
// StatusPlaying later answers are ignored and accepted is false.
func (s *Session) Answer(option string) (status Status, accepted bool, err error) {
	if s.Round == nil {
		return s.Status, false, ErrNoActiveRound
	}

	if s.Status != StatusPlaying {
		return s.Status, false, nil
	}

	if !s.Round.HasOption(option) {
		return s.Status, false, ErrInvalidAnswer
	}

	s.SelectedAnswer = option
	if s.Round.IsCorrect(option) {
		s.Status = StatusCorrect
	} else {
		s.Status = StatusIncorrect
	}
	s.touch()

	return s.Status, true, nil
}

// Clone returns a copy of the session. Rounds are immutable so the round
// pointer is shared.
func (s *Session) Clone() *Session {
	c := *s
	return &c
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}
