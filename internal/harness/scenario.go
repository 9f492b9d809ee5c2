package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a declarative solver test: a puzzle, a rule lineup, and
// the expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario (and its golden file).
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Puzzle is the compact puzzle string ('0' or '.' = empty).
	Puzzle string `yaml:"puzzle"`

	// Size is the board edge length.
	Size int `yaml:"size"`

	// Rules lists rule names in priority order. Known names:
	// "naked_single", "hidden_single". Defaults to both when empty.
	Rules []string `yaml:"rules,omitempty"`

	// Verbosity selects the proof rendering: full, normal, or terse.
	// Defaults to terse.
	Verbosity string `yaml:"verbosity,omitempty"`

	// Derive selects the derivation depth: "full" (pairs, pointing and
	// claiming participate) or "direct" (axiom-cited eliminations only).
	// Defaults to full.
	Derive string `yaml:"derive,omitempty"`

	// Expect validates the solve outcome.
	Expect Expectation `yaml:"expect"`
}

// Expectation describes the outcome a scenario requires.
type Expectation struct {
	// Status is "solved" or "stuck".
	Status string `yaml:"status"`

	// Steps, when non-nil, is the exact number of placements.
	Steps *int `yaml:"steps,omitempty"`

	// FirstRule, when set, names the rule behind the first placement.
	FirstRule string `yaml:"first_rule,omitempty"`

	// Solution, when set, is the expected final board string.
	Solution string `yaml:"solution,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expects:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Puzzle == "" {
		return fmt.Errorf("puzzle is required")
	}
	if s.Size <= 0 {
		return fmt.Errorf("size must be positive")
	}
	switch s.Derive {
	case "", "full", "direct":
	default:
		return fmt.Errorf("derive must be full or direct, got %q", s.Derive)
	}
	switch s.Expect.Status {
	case "solved", "stuck":
	default:
		return fmt.Errorf("expect.status must be solved or stuck, got %q", s.Expect.Status)
	}
	return nil
}
