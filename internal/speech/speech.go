// Package speech abstracts spoken pronunciation behind a capability interface.
//
// A Speaker is either available, producing audio for an utterance, or
// unavailable. Unavailability is a normal state that callers report to the
// player as a notice rather than an error.
package speech

import (
	"context"
	"encoding/base64"
	"errors"
)

// UnavailableNotice is shown to the player when pronunciation is not supported.
const UnavailableNotice = "Trình duyệt của bạn không hỗ trợ phát âm."

// ErrUnavailable is returned by Speak on a speaker that cannot produce audio.
var ErrUnavailable = errors.New("speech output is not available")

// Utterance is a short text to pronounce.
type Utterance struct {
	Text string  `json:"text"`
	Lang string  `json:"lang"`
	Rate float64 `json:"rate"`
}

// Audio is synthesized speech.
type Audio struct {
	Data     []byte
	MIMEType string
}

// DataURI encodes the audio as a base64 data URI.
func (a *Audio) DataURI() string {
	return "data:" + a.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// Speaker converts utterances to audio.
type Speaker interface {
	// Available reports whether Speak can produce audio at all.
	Available() bool

	// Speak synthesizes the utterance.
	Speak(ctx context.Context, u Utterance) (*Audio, error)
}

// Unavailable is the Speaker used when no speech backend is configured.
type Unavailable struct{}

// Available always returns false.
func (Unavailable) Available() bool { return false }

// Speak always returns ErrUnavailable.
func (Unavailable) Speak(context.Context, Utterance) (*Audio, error) {
	return nil, ErrUnavailable
}

// Result is the outcome of a pronunciation request. When Available is false,
// Audio is nil and Notice explains why; the utterance is still returned so a
// client with its own synthesizer can speak it.
type Result struct {
	Utterance Utterance
	Available bool
	Audio     *Audio
	Notice    string
}

// UnavailableResult builds the result reported when no audio could be produced.
func UnavailableResult(u Utterance) Result {
	return Result{
		Utterance: u,
		Available: false,
		Notice:    UnavailableNotice,
	}
}
