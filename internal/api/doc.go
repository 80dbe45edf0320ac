// Package api implements the HTTP handlers for the alphabet board and the
// picture-guessing game.
//
// Handlers decode and validate JSON requests, call the service layer and map
// service errors to status codes and safe messages (see errors.go). Internal
// error details are redacted and logged, never returned to clients.
package api
