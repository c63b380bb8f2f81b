// Package sequence provides a validated DNA sequence type and the
// composition statistics used by the screening layers.
//
// Sequences are cleaned exactly once at construction: whitespace is
// stripped and bases are uppercased. Every downstream layer can assume
// a non-empty string over the alphabet {A, C, G, T, N}.
package sequence

import (
	"fmt"
	"strings"
	"unicode"
)

// Sequence represents a validated, immutable DNA sequence.
type Sequence struct {
	Bases       string
	ID          string
	Description string
}

// New creates a new DNA sequence, cleaning and validating the input.
func New(bases string) (*Sequence, error) {
	cleaned := Clean(bases)

	if len(cleaned) == 0 {
		return nil, &EmptySequenceError{}
	}

	if err := Validate(cleaned); err != nil {
		return nil, err
	}

	return &Sequence{Bases: cleaned}, nil
}

// WithID creates a new sequence with an identifier.
func WithID(bases, id string) (*Sequence, error) {
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	return seq, nil
}

// WithMetadata creates a new sequence with full metadata.
func WithMetadata(bases, id, description string) (*Sequence, error) {
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	seq.Description = description
	return seq, nil
}

// Clean uppercases the input and strips all whitespace. It does not
// validate; callers that need validation go through New.
func Clean(bases string) string {
	var sb strings.Builder
	sb.Grow(len(bases))

	for _, c := range bases {
		if unicode.IsSpace(c) {
			continue
		}
		sb.WriteRune(unicode.ToUpper(c))
	}

	return sb.String()
}

// Len returns the length of the sequence in bases.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// HasAmbiguous reports whether the sequence contains any ambiguous bases (N).
func (s *Sequence) HasAmbiguous() bool {
	return strings.ContainsRune(s.Bases, 'N')
}

// CountAmbiguous counts the number of ambiguous bases.
func (s *Sequence) CountAmbiguous() int {
	return strings.Count(s.Bases, "N")
}

// BaseCounts holds the count of each base type.
type BaseCounts struct {
	A int
	C int
	G int
	T int
	N int
}

// Total returns the total count of all bases.
func (bc BaseCounts) Total() int {
	return bc.A + bc.C + bc.G + bc.T + bc.N
}

// Unambiguous returns the count of non-N bases.
func (bc BaseCounts) Unambiguous() int {
	return bc.A + bc.C + bc.G + bc.T
}

// BaseCounts returns the count of each base type.
func (s *Sequence) BaseCounts() BaseCounts {
	counts := BaseCounts{}

	for _, b := range s.Bases {
		switch b {
		case 'A':
			counts.A++
		case 'C':
			counts.C++
		case 'G':
			counts.G++
		case 'T':
			counts.T++
		case 'N':
			counts.N++
		}
	}

	return counts
}

// GCContent returns the GC content as a percentage (0-100), computed
// over unambiguous bases only. N is excluded from both the numerator
// and the denominator. Fails when no unambiguous bases remain.
func (s *Sequence) GCContent() (float64, error) {
	counts := s.BaseCounts()

	denom := counts.Unambiguous()
	if denom == 0 {
		return 0, &NoUnambiguousBasesError{Length: s.Len()}
	}

	return 100.0 * float64(counts.G+counts.C) / float64(denom), nil
}

// CpGRatio returns the observed/expected ratio of CpG dinucleotides,
// a composition signal surfaced alongside GC content. Host-adapted
// viral genomes tend to be CpG-suppressed. Returns 0 when the ratio
// is undefined (no C or no G in the sequence).
func (s *Sequence) CpGRatio() float64 {
	counts := s.BaseCounts()
	if counts.C == 0 || counts.G == 0 || s.Len() < 2 {
		return 0
	}

	observed := 0
	for i := 0; i+1 < len(s.Bases); i++ {
		if s.Bases[i] == 'C' && s.Bases[i+1] == 'G' {
			observed++
		}
	}

	expected := float64(counts.C) * float64(counts.G) / float64(s.Len())
	if expected == 0 {
		return 0
	}

	return float64(observed) / expected
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Bases)
	}
	return s.Bases
}

// Equal checks equality with another sequence.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.Bases == other.Bases
}
