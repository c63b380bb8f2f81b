// Package seqguard provides a high-level API for nucleotide sequence
// risk screening.
//
// The engine combines three independent signals for one sequence:
// homology to a curated database of concerning pathogens (consumed as
// pre-computed alignment hits), nucleotide composition, and codon-
// usage optimization toward a target host. It produces per-layer risk
// signals; combining them into an accept/reject decision is policy
// left to the caller.
//
// Example usage:
//
//	engine := seqguard.NewEngine(seqguard.DefaultOptions())
//
//	hits, err := seqguard.ReadHitsJSON("hits.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := engine.Analyze("ATGGCCAAG...", hits)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Homology.Level)
package seqguard

import (
	"github.com/seqguard/seqguard-go/internal/codon"
	"github.com/seqguard/seqguard-go/internal/homology"
	"github.com/seqguard/seqguard-go/internal/screening"
	"github.com/seqguard/seqguard-go/internal/sequence"
)

// Re-export core types for convenience.
type (
	Sequence          = sequence.Sequence
	Hit               = homology.Hit
	RiskLevel         = homology.RiskLevel
	HomologyResult    = homology.Result
	Classifier        = homology.Classifier
	ClassifierOptions = homology.Options
	CAIResult         = codon.CAIResult
	FrameProfile      = codon.FrameProfile
	UsageTable        = codon.UsageTable
	Engine            = screening.Engine
	Options           = screening.Options
	Report            = screening.Report
	Composition       = screening.Composition
)

// Risk levels, ordered.
const (
	RiskNone   = homology.RiskNone
	RiskLow    = homology.RiskLow
	RiskMedium = homology.RiskMedium
	RiskHigh   = homology.RiskHigh
)

// NewSequence creates a validated DNA sequence from raw input,
// uppercasing and stripping whitespace.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// NewSequenceWithID creates a validated sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return sequence.WithID(bases, id)
}

// DefaultOptions returns the reference screening configuration.
func DefaultOptions() Options {
	return screening.DefaultOptions()
}

// NewEngine creates a screening engine.
func NewEngine(opts Options) *Engine {
	return screening.NewEngine(opts)
}

// NewClassifier creates a standalone homology risk classifier.
func NewClassifier(opts ClassifierOptions) *Classifier {
	return homology.NewClassifier(opts)
}

// DefaultClassifierOptions returns the reference homology thresholds.
func DefaultClassifierOptions() ClassifierOptions {
	return homology.DefaultOptions()
}

// LoadClassifierOptions reads homology thresholds from a YAML file.
// Fields absent from the file keep their defaults.
func LoadClassifierOptions(path string) (ClassifierOptions, error) {
	return homology.LoadOptions(path)
}

// HumanCodonTable returns the built-in Homo sapiens usage table.
func HumanCodonTable() *UsageTable {
	return codon.Human()
}

// LoadCodonTable reads a host codon usage table from a YAML file.
func LoadCodonTable(path string) (*UsageTable, error) {
	return codon.LoadFile(path)
}

// ParseRiskLevel parses a risk level from its string form.
func ParseRiskLevel(s string) (RiskLevel, error) {
	return homology.ParseRiskLevel(s)
}

// Version returns the library version.
func Version() string {
	return "1.0.0"
}
