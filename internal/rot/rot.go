// Package rot implements the Caesar rotation over the lowercase ASCII alphabet.
//
// ASCII letters are folded to lowercase before rotation, so case is lost. Characters in
// PassThrough are copied unchanged. Any other character is either copied unchanged
// (the default) or rejected, see Rotator.
package rot

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of letters in the alphabet.
const Size = 26

// Alphabet lists the letters in index order.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// PassThrough lists the characters that are never rotated.
const PassThrough = " \n.,\"'()=0123456789"

var ErrInvalidCharacter = errors.New("invalid character")

// InvalidCharacterError reports a character that is neither a letter nor in PassThrough.
type InvalidCharacterError struct {
	Char   rune
	Offset int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("rot: invalid character %q at offset %d", e.Char, e.Offset)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// Normalize maps any shift to its equivalent in [0, Size).
func Normalize(shift int) int {
	return ((shift % Size) + Size) % Size
}

// Inverse returns the shift that undoes shift.
func Inverse(shift int) int {
	return (Size - Normalize(shift)) % Size
}

func passThrough(r rune) bool {
	return strings.ContainsRune(PassThrough, r)
}

func letter(r rune) bool {
	return 'a' <= r && r <= 'z'
}

// fold lowercases ASCII letters only.
func fold(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// rot expects a lowercase letter and a normalized shift.
func rot(r rune, n int) rune {
	return 'a' + (r-'a'+rune(n))%Size
}

// Rotator rotates text by a shift.
// A strict Rotator rejects characters that are neither letters nor pass-through.
type Rotator struct {
	Strict bool
}

func (rt Rotator) Rotate(text string, shift int) (string, error) {
	n := Normalize(shift)

	out := &strings.Builder{}
	out.Grow(len(text))

	for i, r := range text {
		r = fold(r)
		switch {
		case passThrough(r):
		case letter(r):
			r = rot(r, n)
		case rt.Strict:
			return "", &InvalidCharacterError{Char: r, Offset: i}
		}
		out.WriteRune(r)
	}
	return out.String(), nil
}

// Rotate rotates text by shift, copying unknown characters unchanged.
func Rotate(text string, shift int) string {
	s, _ := Rotator{}.Rotate(text, shift)
	return s
}
