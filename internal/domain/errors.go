package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidCategory is returned when a category is not one of the known topics.
	ErrInvalidCategory = errors.New("invalid game category")

	// ErrInvalidRound is returned when a round violates its shape invariants.
	// This is usually wrapped with a more specific error message.
	ErrInvalidRound = errors.New("invalid game round")

	// ErrNoActiveRound is returned when an answer is submitted without a round in play.
	ErrNoActiveRound = errors.New("no active round")

	// ErrInvalidAnswer is returned when an answer is not one of the round's options.
	ErrInvalidAnswer = errors.New("answer is not one of the round options")

	// ErrUnknownLetter is returned when a letter is not part of the Vietnamese alphabet.
	ErrUnknownLetter = errors.New("unknown alphabet letter")
)
