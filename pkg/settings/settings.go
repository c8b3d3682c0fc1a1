// Package settings loads the lint configuration file: per-jurisdiction
// seat expectations, the plain-http whitelist, and user-defined custom
// checks.
package settings

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/civicdata/roster/pkg/validate"
)

// Settings is the top-level settings.yml document.
type Settings struct {
	// HTTPWhitelist lists URL prefixes that are allowed to stay plain
	// http (agencies that still don't serve TLS).
	HTTPWhitelist []string `yaml:"http_whitelist,omitempty"`

	// Jurisdictions maps a postal abbreviation (nc, wv, ...) to its
	// chamber layout.
	Jurisdictions map[string]*Jurisdiction `yaml:"jurisdictions"`

	// CustomChecks are expr-lang lint rules evaluated per record.
	CustomChecks []validate.CustomCheck `yaml:"custom_checks,omitempty"`
}

// Jurisdiction declares the expected seats per chamber. A chamber absent
// here is not expected to have legislators.
type Jurisdiction struct {
	UpperSeats       *Seats `yaml:"upper_seats,omitempty"`
	LowerSeats       *Seats `yaml:"lower_seats,omitempty"`
	LegislatureSeats *Seats `yaml:"legislature_seats,omitempty"`
}

// Seats declares a chamber's districts in one of three YAML forms:
//
//	upper_seats: 40                  # districts "1".."40", one seat each
//	upper_seats: [A, B, C]           # named districts, one seat each
//	upper_seats: {"1": 2, "2": 1}    # per-district seat counts
type Seats struct {
	Counts map[string]int
}

// UnmarshalYAML accepts the int, list, and map forms.
func (s *Seats) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		n, err := strconv.Atoi(value.Value)
		if err != nil || n < 1 {
			return fmt.Errorf("seat count must be a positive integer, got %q", value.Value)
		}
		s.Counts = make(map[string]int, n)
		for i := 1; i <= n; i++ {
			s.Counts[strconv.Itoa(i)] = 1
		}
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return fmt.Errorf("seat list: %w", err)
		}
		s.Counts = make(map[string]int, len(names))
		for _, name := range names {
			s.Counts[name] = 1
		}
		return nil
	case yaml.MappingNode:
		if err := value.Decode(&s.Counts); err != nil {
			return fmt.Errorf("seat map: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("seats must be an int, a list, or a map")
	}
}

// ExpectedDistricts builds the seat-count table for one jurisdiction.
func (s *Settings) ExpectedDistricts(abbr string) (validate.SeatCounts, error) {
	j, ok := s.Jurisdictions[abbr]
	if !ok {
		return nil, fmt.Errorf("jurisdiction %q not in settings", abbr)
	}
	expected := validate.SeatCounts{}
	for chamber, seats := range map[string]*Seats{
		"upper":       j.UpperSeats,
		"lower":       j.LowerSeats,
		"legislature": j.LegislatureSeats,
	} {
		if seats != nil {
			expected[chamber] = seats.Counts
		}
	}
	return expected, nil
}

// LoadFile reads settings.yml with strict unknown-field rejection.
func LoadFile(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}
