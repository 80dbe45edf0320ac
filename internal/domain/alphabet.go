package domain

import (
	"fmt"
	"slices"
	"strings"
)

// vietnameseAlphabet lists the 29 letters of the Vietnamese alphabet in order.
var vietnameseAlphabet = []string{
	"A", "Ă", "Â", "B", "C", "D", "Đ", "E", "Ê", "G",
	"H", "I", "K", "L", "M", "N", "O", "Ô", "Ơ", "P",
	"Q", "R", "S", "T", "U", "Ư", "V", "X", "Y",
}

// Alphabet returns the Vietnamese alphabet in board order.
func Alphabet() []string {
	return slices.Clone(vietnameseAlphabet)
}

// ParseLetter normalizes s to an uppercase alphabet letter.
// Returns ErrUnknownLetter when s is not part of the alphabet.
func ParseLetter(s string) (string, error) {
	letter := strings.ToUpper(strings.TrimSpace(s))
	if !slices.Contains(vietnameseAlphabet, letter) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLetter, s)
	}
	return letter, nil
}
