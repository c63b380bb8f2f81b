// Package kmer provides k-mer counting and sequence complexity
// estimation.
//
// Low-complexity sequences (homopolymer runs, short tandem repeats)
// produce spurious alignment hits and meaningless codon statistics,
// so the screening layers flag them before interpretation.
package kmer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seqguard/seqguard-go/internal/sequence"
)

// DefaultComplexityK is the word size used for complexity estimation,
// matching the word size of common repeat-masking filters.
const DefaultComplexityK = 3

// LowComplexityThreshold is the linguistic-complexity value below
// which a sequence is considered repeat-dominated.
const LowComplexityThreshold = 0.2

// Count holds one k-mer and its occurrence count.
type Count struct {
	KMer  string
	Count int
}

// Counter accumulates k-mer occurrence counts for one word size.
// K-mers containing ambiguous bases are never counted.
type Counter struct {
	k      int
	counts map[string]int
	total  int
}

// NewCounter creates a counter for word size k.
func NewCounter(k int) (*Counter, error) {
	if k <= 0 {
		return nil, fmt.Errorf("word size must be positive, got %d", k)
	}
	return &Counter{k: k, counts: make(map[string]int)}, nil
}

// Observe counts every k-mer in the sequence, sliding one base at a
// time. Windows containing an ambiguity code are skipped.
func (c *Counter) Observe(seq *sequence.Sequence) {
	bases := seq.Bases
	for i := 0; i+c.k <= len(bases); i++ {
		word := bases[i : i+c.k]
		if strings.ContainsRune(word, 'N') {
			continue
		}
		c.counts[word]++
		c.total++
	}
}

// K returns the counter's word size.
func (c *Counter) K() int { return c.k }

// Total returns the number of counted windows.
func (c *Counter) Total() int { return c.total }

// Distinct returns the number of distinct k-mers observed.
func (c *Counter) Distinct() int { return len(c.counts) }

// Get returns the count for one k-mer.
func (c *Counter) Get(word string) int {
	return c.counts[strings.ToUpper(word)]
}

// MostFrequent returns the n most frequent k-mers, ties broken
// lexicographically for stable output.
func (c *Counter) MostFrequent(n int) []Count {
	out := make([]Count, 0, len(c.counts))
	for word, count := range c.counts {
		out = append(out, Count{KMer: word, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].KMer < out[j].KMer
	})

	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Complexity returns the linguistic complexity of the observed
// windows: the distinct k-mer count over the maximum possible for
// this word size and window count. 1.0 means every window differs;
// a homopolymer approaches 0.
func (c *Counter) Complexity() float64 {
	if c.total == 0 {
		return 0.0
	}

	possible := 1
	for i := 0; i < c.k; i++ {
		possible *= 4
		if possible > c.total {
			possible = c.total
			break
		}
	}

	return float64(len(c.counts)) / float64(possible)
}

// LinguisticComplexity scores a sequence with the default word size.
// Sequences shorter than one window score 0.
func LinguisticComplexity(seq *sequence.Sequence) float64 {
	counter, err := NewCounter(DefaultComplexityK)
	if err != nil {
		return 0.0
	}
	counter.Observe(seq)
	return counter.Complexity()
}

// IsLowComplexity reports whether the sequence is repeat-dominated at
// the default word size and threshold.
func IsLowComplexity(seq *sequence.Sequence) bool {
	return LinguisticComplexity(seq) < LowComplexityThreshold
}
