package sequence

import "fmt"

// ValidBases is the accepted DNA alphabet, including the ambiguity code N.
var ValidBases = map[rune]bool{'A': true, 'C': true, 'G': true, 'T': true, 'N': true}

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence is empty after cleaning.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one base"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidBaseError is returned when a character outside the alphabet
// is encountered.
type InvalidBaseError struct {
	Position int
	Found    rune
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base '%c' at position %d", e.Found, e.Position)
}

func (e *InvalidBaseError) IsSequenceError() {}

// NoUnambiguousBasesError is returned when a composition statistic is
// requested for a sequence made entirely of ambiguous bases.
type NoUnambiguousBasesError struct {
	Length int
}

func (e *NoUnambiguousBasesError) Error() string {
	return fmt.Sprintf("no unambiguous bases in sequence of length %d", e.Length)
}

func (e *NoUnambiguousBasesError) IsSequenceError() {}

// Validate checks that a cleaned string contains only valid DNA bases.
func Validate(bases string) error {
	for i, b := range bases {
		if !ValidBases[b] {
			return &InvalidBaseError{Position: i, Found: b}
		}
	}
	return nil
}

// IsValidBase checks if a character is a valid DNA base.
func IsValidBase(c rune) bool {
	return ValidBases[c]
}
