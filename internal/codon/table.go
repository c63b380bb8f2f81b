// Package codon implements the host codon-usage reference table and
// the Codon Adaptation Index (CAI) scorer.
//
// The table is a closed, fully enumerable domain: exactly 64 triplets
// over {A, C, G, T}, grouped into synonymous families by amino acid
// (with the stop codons forming their own family). Completeness is
// checked once at load time, so scoring never needs to handle a
// missing entry.
package codon

import (
	"sort"
	"sync"
)

// StopGroup is the family identifier for stop codons.
const StopGroup = '*'

// Entry describes one codon in a usage table.
type Entry struct {
	Codon     string
	AminoAcid byte    // one-letter amino acid code, '*' for stop
	Frequency float64 // usage frequency within the synonymous family
	Weight    float64 // relative adaptiveness: Frequency / family max
}

// IsStop reports whether the entry belongs to the stop-codon family.
func (e Entry) IsStop() bool {
	return e.AminoAcid == StopGroup
}

// UsageTable is a read-only codon-usage reference for one host.
// Safe for unlimited concurrent readers once constructed.
type UsageTable struct {
	host    string
	entries map[string]Entry
}

var bases = []byte{'A', 'C', 'G', 'T'}

// allCodons enumerates the 64 DNA triplets in lexicographic order.
func allCodons() []string {
	codons := make([]string, 0, 64)
	for _, a := range bases {
		for _, b := range bases {
			for _, c := range bases {
				codons = append(codons, string([]byte{a, b, c}))
			}
		}
	}
	return codons
}

// New builds a usage table from per-family frequencies. The input maps
// each family identifier (amino acid or StopGroup) to the usage
// frequency of each member codon. Relative adaptiveness weights are
// renormalized here so the most-used codon of every family has weight
// 1.0 by construction.
func New(host string, families map[byte]map[string]float64) (*UsageTable, error) {
	entries := make(map[string]Entry, 64)

	for aa, codons := range families {
		maxFreq := 0.0
		for _, freq := range codons {
			if freq > maxFreq {
				maxFreq = freq
			}
		}

		for c, freq := range codons {
			if len(c) != 3 || !validTriplet(c) {
				return nil, &UnknownCodonError{Codon: c}
			}
			if aa != StopGroup && freq <= 0 {
				return nil, &InvalidFrequencyError{Codon: c, Frequency: freq}
			}

			weight := 0.0
			if aa != StopGroup && maxFreq > 0 {
				weight = freq / maxFreq
			}

			entries[c] = Entry{
				Codon:     c,
				AminoAcid: aa,
				Frequency: freq,
				Weight:    weight,
			}
		}
	}

	var missing []string
	for _, c := range allCodons() {
		if _, ok := entries[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &IncompleteTableError{Missing: missing}
	}

	return &UsageTable{host: host, entries: entries}, nil
}

func validTriplet(c string) bool {
	for i := 0; i < len(c); i++ {
		switch c[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

// Host returns the host organism the table describes.
func (t *UsageTable) Host() string {
	return t.host
}

// Lookup returns the entry for a triplet. The second return value is
// false only for strings outside the 64-codon domain.
func (t *UsageTable) Lookup(c string) (Entry, bool) {
	e, ok := t.entries[c]
	return e, ok
}

// IsStop reports whether a triplet is a stop codon in this table.
func (t *UsageTable) IsStop(c string) bool {
	e, ok := t.entries[c]
	return ok && e.IsStop()
}

// Entries returns all 64 entries in lexicographic codon order.
func (t *UsageTable) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, c := range allCodons() {
		out = append(out, t.entries[c])
	}
	return out
}

// humanFrequencies is the built-in codon usage of highly expressed
// human genes, keyed by synonymous family.
var humanFrequencies = map[byte]map[string]float64{
	'A': {"GCC": 0.40, "GCT": 0.28, "GCA": 0.23, "GCG": 0.09},
	'C': {"TGC": 0.46, "TGT": 0.54},
	'D': {"GAC": 0.46, "GAT": 0.54},
	'E': {"GAA": 0.42, "GAG": 0.58},
	'F': {"TTC": 0.46, "TTT": 0.54},
	'G': {"GGC": 0.34, "GGT": 0.32, "GGA": 0.25, "GGG": 0.09},
	'H': {"CAC": 0.42, "CAT": 0.58},
	'I': {"ATC": 0.36, "ATT": 0.36, "ATA": 0.28},
	'K': {"AAG": 0.58, "AAA": 0.42},
	'L': {"CTG": 0.40, "CTC": 0.20, "TTA": 0.07, "TTG": 0.13, "CTT": 0.13, "CTA": 0.07},
	'M': {"ATG": 1.0},
	'N': {"AAC": 0.54, "AAT": 0.46},
	'P': {"CCC": 0.28, "CCT": 0.28, "CCA": 0.28, "CCG": 0.16},
	'Q': {"CAG": 0.75, "CAA": 0.25},
	'R': {"CGG": 0.11, "CGA": 0.07, "CGC": 0.19, "CGT": 0.08, "AGA": 0.20, "AGG": 0.35},
	'S': {"AGC": 0.25, "AGT": 0.15, "TCC": 0.22, "TCT": 0.15, "TCA": 0.12, "TCG": 0.11},
	'T': {"ACC": 0.36, "ACT": 0.24, "ACA": 0.28, "ACG": 0.12},
	'V': {"GTG": 0.47, "GTC": 0.20, "GTT": 0.18, "GTA": 0.15},
	'W': {"TGG": 1.0},
	'Y': {"TAC": 0.44, "TAT": 0.56},
	'*': {"TAA": 0.61, "TAG": 0.09, "TGA": 0.30},
}

var (
	humanOnce  sync.Once
	humanTable *UsageTable
)

// Human returns the built-in Homo sapiens usage table. The table is
// constructed once and shared; it is read-only.
func Human() *UsageTable {
	humanOnce.Do(func() {
		t, err := New("Homo sapiens", humanFrequencies)
		if err != nil {
			// The built-in table is exhaustively enumerated; a
			// construction failure is a programming error.
			panic(err)
		}
		humanTable = t
	})
	return humanTable
}
