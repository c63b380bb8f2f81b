package codon

import (
	"fmt"
	"strings"
)

// CodonError is the base error type for codon-usage operations.
type CodonError interface {
	error
	IsCodonError()
}

// InvalidFrameError is returned for a reading frame outside {0, 1, 2}.
type InvalidFrameError struct {
	Frame int
}

func (e *InvalidFrameError) Error() string {
	return fmt.Sprintf("reading frame must be 0, 1, or 2, got %d", e.Frame)
}

func (e *InvalidFrameError) IsCodonError() {}

// InsufficientDataError is returned when a frame yields no scoreable
// codons, e.g. the sequence is shorter than one triplet or every
// triplet is ambiguous or a stop codon.
type InsufficientDataError struct {
	Frame   int
	Skipped int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("frame %d has no scoreable codons (%d skipped)", e.Frame, e.Skipped)
}

func (e *InsufficientDataError) IsCodonError() {}

// IncompleteTableError is returned when a usage table does not cover
// all 64 codons.
type IncompleteTableError struct {
	Missing []string
}

func (e *IncompleteTableError) Error() string {
	return fmt.Sprintf("usage table missing %d codons: %s",
		len(e.Missing), strings.Join(e.Missing, ", "))
}

func (e *IncompleteTableError) IsCodonError() {}

// InvalidFrequencyError is returned when a non-stop codon carries a
// non-positive usage frequency.
type InvalidFrequencyError struct {
	Codon     string
	Frequency float64
}

func (e *InvalidFrequencyError) Error() string {
	return fmt.Sprintf("codon %s has invalid frequency %g (must be positive)", e.Codon, e.Frequency)
}

func (e *InvalidFrequencyError) IsCodonError() {}

// UnknownCodonError is returned when a table entry is not a valid
// DNA triplet.
type UnknownCodonError struct {
	Codon string
}

func (e *UnknownCodonError) Error() string {
	return fmt.Sprintf("%q is not a valid DNA codon", e.Codon)
}

func (e *UnknownCodonError) IsCodonError() {}
