// Package crack recovers Caesar-enciphered text by trying every shift.
package crack

import (
	"caesar/internal/ctxlog"
	"caesar/internal/dict"
	"caesar/internal/rot"
	"caesar/internal/score"
	"context"
	"fmt"
)

// Result is a plausible decoding.
// Shift decodes the ciphertext; the key that encoded it is Key.
type Result struct {
	Shift     int
	Plaintext string
}

func (r Result) Key() int {
	return rot.Inverse(r.Shift)
}

// Crack returns the decoding with the smallest plausible shift.
// ok is false if no shift yields plausible text.
func Crack(ciphertext string, d dict.Dictionary) (Result, bool) {
	for shift := range rot.Size {
		candidate := rot.Rotate(ciphertext, shift)
		if score.IsPlausible(candidate, d) {
			return Result{Shift: shift, Plaintext: candidate}, true
		}
	}
	return Result{}, false
}

type Cracker struct {
	Rotator    rot.Rotator
	Dictionary dict.Dictionary
}

// Crack is like the package-level Crack but honors the rotator's strictness.
func (c Cracker) Crack(ctx context.Context, ciphertext string) (Result, bool, error) {
	logger := ctxlog.Get(ctx)

	for shift := range rot.Size {
		candidate, err := c.Rotator.Rotate(ciphertext, shift)
		if err != nil {
			return Result{}, false, fmt.Errorf("crack: %w", err)
		}

		if score.IsPlausible(candidate, c.Dictionary) {
			logger.Debug("plausible shift", "shift", shift)
			return Result{Shift: shift, Plaintext: candidate}, true, nil
		}
	}

	logger.Debug("no plausible shift", "length", len(ciphertext))
	return Result{}, false, nil
}
