// Package shared holds the request decoding, validation, response and trace
// ID helpers used by the HTTP handlers and middleware.
package shared
