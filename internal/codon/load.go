package codon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxTableFileSize caps codon table files at 1MB. A usage table is 64
// entries; anything larger is malformed input.
const MaxTableFileSize = 1024 * 1024

// tableFile is the YAML representation of a usage table.
type tableFile struct {
	Host     string                        `yaml:"host"`
	Families map[string]map[string]float64 `yaml:"families"`
}

// FromYAML parses a usage table from YAML. Family keys are one-letter
// amino acid codes plus "*" for the stop family. Frequencies are
// renormalized into relative adaptiveness weights, so tables exported
// from external references do not need their family maxima to be 1.0.
func FromYAML(data []byte) (*UsageTable, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing codon table: %w", err)
	}

	families := make(map[byte]map[string]float64, len(tf.Families))
	for key, codons := range tf.Families {
		if len(key) != 1 {
			return nil, fmt.Errorf("invalid family key %q: must be a one-letter amino acid code or *", key)
		}

		normalized := make(map[string]float64, len(codons))
		for c, freq := range codons {
			normalized[strings.ToUpper(c)] = freq
		}
		families[key[0]] = normalized
	}

	return New(tf.Host, families)
}

// LoadFile reads a usage table from a YAML file.
func LoadFile(path string) (*UsageTable, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading codon table %s: %w", path, err)
	}
	if info.Size() > MaxTableFileSize {
		return nil, fmt.Errorf("codon table %s exceeds %d bytes", path, MaxTableFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading codon table %s: %w", path, err)
	}

	return FromYAML(data)
}
