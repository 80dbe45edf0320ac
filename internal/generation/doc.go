// Package generation provides the port between the game core and external
// AI/LLM services for content generation. It defines the Generator interface
// used to produce picture-guessing rounds and the error taxonomy shared by its
// implementations (Gemini), without coupling the game to a specific service.
package generation
