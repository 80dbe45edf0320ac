package domain

import (
	"fmt"
	"slices"
)

// RoundOptionCount is the number of answer options every round carries.
const RoundOptionCount = 4

// Status is the per-round state of the player's answer.
type Status string

// Possible round status values
const (
	StatusPlaying   Status = "playing"
	StatusCorrect   Status = "correct"
	StatusIncorrect Status = "incorrect"
)

// Round is one instance of the picture-guessing quiz: an image, four answer
// options in presentation order and the correct one among them.
//
// A Round is immutable once created; accessors return copies.
type Round struct {
	image         string
	options       []string
	correctAnswer string
}

// NewRound creates a Round after checking that there are exactly
// RoundOptionCount options and that correctAnswer is one of them.
func NewRound(image string, options []string, correctAnswer string) (*Round, error) {
	if image == "" {
		return nil, fmt.Errorf("%w: image cannot be empty", ErrInvalidRound)
	}

	if len(options) != RoundOptionCount {
		return nil, fmt.Errorf("%w: expected %d options, got %d",
			ErrInvalidRound, RoundOptionCount, len(options))
	}

	if !slices.Contains(options, correctAnswer) {
		return nil, fmt.Errorf("%w: correct answer is not among the options", ErrInvalidRound)
	}

	return &Round{
		image:         image,
		options:       slices.Clone(options),
		correctAnswer: correctAnswer,
	}, nil
}

// Image returns the displayable image reference (a data URI).
func (r *Round) Image() string {
	return r.image
}

// Options returns a copy of the answer options in presentation order.
func (r *Round) Options() []string {
	return slices.Clone(r.options)
}

// CorrectAnswer returns the option that answers the round.
func (r *Round) CorrectAnswer() string {
	return r.correctAnswer
}

// IsCorrect reports whether option matches the correct answer exactly.
func (r *Round) IsCorrect(option string) bool {
	return option == r.correctAnswer
}

// HasOption reports whether option is one of the round's options.
func (r *Round) HasOption(option string) bool {
	return slices.Contains(r.options, option)
}
