package kmer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqguard/seqguard-go/internal/sequence"
)

func mustSeq(t *testing.T, bases string) *sequence.Sequence {
	t.Helper()
	seq, err := sequence.New(bases)
	require.NoError(t, err)
	return seq
}

func TestNewCounter(t *testing.T) {
	_, err := NewCounter(0)
	assert.Error(t, err)

	_, err = NewCounter(-1)
	assert.Error(t, err)

	counter, err := NewCounter(3)
	require.NoError(t, err)
	assert.Equal(t, 3, counter.K())
	assert.Equal(t, 0, counter.Total())
}

func TestObserve(t *testing.T) {
	counter, err := NewCounter(2)
	require.NoError(t, err)

	// ATGATG: AT TG GA AT TG
	counter.Observe(mustSeq(t, "ATGATG"))

	assert.Equal(t, 5, counter.Total())
	assert.Equal(t, 3, counter.Distinct())
	assert.Equal(t, 2, counter.Get("AT"))
	assert.Equal(t, 2, counter.Get("TG"))
	assert.Equal(t, 1, counter.Get("GA"))
	assert.Equal(t, 0, counter.Get("CC"))
}

func TestObserveSkipsAmbiguous(t *testing.T) {
	counter, err := NewCounter(3)
	require.NoError(t, err)

	// Windows overlapping the N are not counted.
	counter.Observe(mustSeq(t, "ATGNCAT"))

	assert.Equal(t, 2, counter.Total())
	assert.Equal(t, 1, counter.Get("ATG"))
	assert.Equal(t, 1, counter.Get("CAT"))
}

func TestObserveShorterThanWindow(t *testing.T) {
	counter, err := NewCounter(5)
	require.NoError(t, err)

	counter.Observe(mustSeq(t, "ATG"))

	assert.Equal(t, 0, counter.Total())
	assert.Equal(t, 0.0, counter.Complexity())
}

func TestMostFrequent(t *testing.T) {
	counter, err := NewCounter(2)
	require.NoError(t, err)
	counter.Observe(mustSeq(t, "ATATATGC"))

	top := counter.MostFrequent(2)
	require.Len(t, top, 2)
	assert.Equal(t, "AT", top[0].KMer)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, "TA", top[1].KMer)
	assert.Equal(t, 2, top[1].Count)

	all := counter.MostFrequent(100)
	assert.Len(t, all, counter.Distinct())
}

func TestComplexity(t *testing.T) {
	tests := []struct {
		name  string
		bases string
		low   bool
	}{
		{"homopolymer", strings.Repeat("A", 60), true},
		{"dinucleotide repeat", strings.Repeat("AT", 30), true},
		{"trinucleotide repeat", strings.Repeat("CAG", 20), true},
		{"mixed sequence", "ATGGCCAAGCTGGAGCAGTGGACCGTGCGATCGATTACAGGATCCTAGGCAATTCGGCAT", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := mustSeq(t, tt.bases)
			score := LinguisticComplexity(seq)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
			assert.Equal(t, tt.low, IsLowComplexity(seq), "complexity %.3f", score)
		})
	}
}

func TestComplexityBounds(t *testing.T) {
	// A homopolymer has exactly one distinct word.
	counter, err := NewCounter(3)
	require.NoError(t, err)
	counter.Observe(mustSeq(t, strings.Repeat("G", 30)))

	assert.Equal(t, 1, counter.Distinct())
	assert.InDelta(t, 1.0/28.0, counter.Complexity(), 1e-9)
}
