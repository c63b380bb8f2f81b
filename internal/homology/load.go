package homology

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxConfigFileSize caps threshold config files at 64KB.
const MaxConfigFileSize = 64 * 1024

// OptionsFromYAML parses classifier thresholds from YAML. Fields
// absent from the document keep their defaults, so a config can
// override a single threshold.
func OptionsFromYAML(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing classifier config: %w", err)
	}
	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadOptions reads classifier thresholds from a YAML file.
func LoadOptions(path string) (Options, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading classifier config %s: %w", path, err)
	}
	if info.Size() > MaxConfigFileSize {
		return Options{}, fmt.Errorf("classifier config %s exceeds %d bytes", path, MaxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading classifier config %s: %w", path, err)
	}

	return OptionsFromYAML(data)
}

func (o Options) validate() error {
	switch {
	case o.MinIdentity < 0 || o.MinIdentity > 100:
		return fmt.Errorf("min_identity must be within [0, 100], got %g", o.MinIdentity)
	case o.LowIdentity < 0 || o.LowIdentity > 100:
		return fmt.Errorf("low_identity must be within [0, 100], got %g", o.LowIdentity)
	case o.HighIdentity < 0 || o.HighIdentity > 100:
		return fmt.Errorf("high_identity must be within [0, 100], got %g", o.HighIdentity)
	case o.LowIdentity > o.HighIdentity:
		return fmt.Errorf("low_identity (%g) must not exceed high_identity (%g)", o.LowIdentity, o.HighIdentity)
	case o.HighLength <= 0:
		return fmt.Errorf("high_length must be positive, got %d", o.HighLength)
	case o.MediumLength <= 0 || o.MediumLength > o.HighLength:
		return fmt.Errorf("medium_length must be within (0, high_length], got %d", o.MediumLength)
	case o.GCBandMin < 0 || o.GCBandMax > 100 || o.GCBandMin > o.GCBandMax:
		return fmt.Errorf("GC band [%g, %g] must be an ordered range within [0, 100]", o.GCBandMin, o.GCBandMax)
	case o.MinQueryLength < 0:
		return fmt.Errorf("min_query_length must not be negative, got %d", o.MinQueryLength)
	}
	return nil
}
