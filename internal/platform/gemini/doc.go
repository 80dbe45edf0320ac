// Package gemini provides implementations of the generation.Generator and
// speech.Speaker interfaces backed by Google's Gemini API.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the game core to Google's external generative AI service. It
// translates between the application's domain models and the Gemini API
// without exposing the details of the external service to the core application.
//
// Key components:
//
// 1. RoundGenerator:
//   - Implements the generation.Generator interface
//   - Requests four answer options as structured JSON, then an illustration
//     of the first (correct) option
//   - Validates the response shape and assembles a domain.Round
//
// 2. Prompt Management:
//   - Built-in prompt templates embedded in the binary
//   - Optional template overrides loaded from files
//
// 3. Speaker:
//   - Implements speech.Speaker using a Gemini text-to-speech model
//   - Wraps raw PCM output in a WAV container
//
// 4. Error Handling:
//   - Every round failure is reported as a generation.RoundError tagged with
//     its cause; the cause itself is only logged
//   - No retries: the player decides when to try again
//
// The package depends on Google's google.golang.org/genai client library for
// communicating with the Gemini API.
package gemini
