package catalog

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a funding-source catalog from a YAML file. The file has a
// top-level "sources" key holding a list of Source records.
func LoadFile(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read file %s", path)
	}

	var wrapper struct {
		Sources []Source `yaml:"sources"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "catalog: parse file")
	}

	if err := Validate(wrapper.Sources); err != nil {
		return nil, err
	}
	return wrapper.Sources, nil
}

// Validate checks catalog-wide invariants: at least one source, unique
// source IDs, ordered amount and commission ranges.
func Validate(sources []Source) error {
	if len(sources) == 0 {
		return eris.New("catalog: no sources defined")
	}

	seen := make(map[string]bool, len(sources))
	for _, s := range sources {
		if s.SourceID == "" {
			return eris.Errorf("catalog: source %q has no source_id", s.Name)
		}
		if seen[s.SourceID] {
			return eris.Errorf("catalog: duplicate source_id %s", s.SourceID)
		}
		seen[s.SourceID] = true

		if s.Amount.Min <= 0 || s.Amount.Max < s.Amount.Min {
			return eris.Errorf("catalog: source %s has invalid amount range", s.SourceID)
		}
		if s.Commission.Max < s.Commission.Min {
			return eris.Errorf("catalog: source %s has invalid commission range", s.SourceID)
		}
		if s.MaxTradingYears != 0 && s.MaxTradingYears < s.MinTradingYears {
			return eris.Errorf("catalog: source %s has invalid trading-years range", s.SourceID)
		}
	}
	return nil
}
