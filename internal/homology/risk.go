// Package homology classifies alignment hits against a curated
// reference database of concerning sequences into discrete risk
// levels with a continuous score.
//
// The package consumes pre-computed alignment-hit records; running
// the search tool and parsing its native output happen upstream.
package homology

import (
	"encoding/json"
	"fmt"
)

// RiskLevel is an ordered risk classification. Comparisons with < and
// > follow the ordering RiskNone < RiskLow < RiskMedium < RiskHigh.
type RiskLevel int

const (
	RiskNone RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
)

func (l RiskLevel) String() string {
	switch l {
	case RiskNone:
		return "NONE"
	case RiskLow:
		return "LOW"
	case RiskMedium:
		return "MEDIUM"
	case RiskHigh:
		return "HIGH"
	default:
		return fmt.Sprintf("RiskLevel(%d)", int(l))
	}
}

// MarshalJSON encodes the level as its upper-case word.
func (l RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its upper-case word.
func (l *RiskLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	level, err := ParseRiskLevel(s)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// ParseRiskLevel parses a risk level from its string form.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch s {
	case "NONE":
		return RiskNone, nil
	case "LOW":
		return RiskLow, nil
	case "MEDIUM":
		return RiskMedium, nil
	case "HIGH":
		return RiskHigh, nil
	default:
		return RiskNone, fmt.Errorf("unknown risk level %q", s)
	}
}

// MaxRiskLevel returns the higher of two levels.
func MaxRiskLevel(a, b RiskLevel) RiskLevel {
	if a > b {
		return a
	}
	return b
}
