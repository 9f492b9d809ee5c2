// Package harness runs declarative solver scenarios: YAML files naming a
// puzzle, a rule lineup, and the expected outcome, with golden-file
// comparison of the narrated proof.
//
// Scenarios are the conformance surface of the solver. Because derivation
// and rule evaluation are deterministic, the narrated proof of a scenario
// is byte-stable and golden files can assert on it exactly.
package harness

import (
	"fmt"

	"github.com/roach88/sudologue/internal/board"
	"github.com/roach88/sudologue/internal/narration"
	"github.com/roach88/sudologue/internal/proof"
	"github.com/roach88/sudologue/internal/rules"
	"github.com/roach88/sudologue/internal/solver"
)

// Result is the outcome of running one scenario.
type Result struct {
	Scenario *Scenario
	Solve    *solver.SolveResult

	// Narration is the proof rendering at the scenario's verbosity.
	Narration string

	// Failures lists unmet expectations. Empty means the scenario passed.
	Failures []string
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run executes a scenario and evaluates its expectations.
// An error means the scenario could not run (bad puzzle, unknown rule);
// unmet expectations are reported in Result.Failures instead.
func Run(scenario *Scenario) (*Result, error) {
	b, err := board.Parse(scenario.Puzzle, scenario.Size)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	ruleSet, err := resolveRules(scenario.Rules)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	verbosity := proof.VerbosityTerse
	if scenario.Verbosity != "" {
		verbosity, err = proof.ParseVerbosity(scenario.Verbosity)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
	}

	var opts []solver.SolverOption
	if scenario.Derive == "direct" {
		opts = append(opts, solver.WithDeriveOptions(proof.WithoutPairs(), proof.WithoutPointing()))
	}

	solve, err := solver.New(ruleSet, opts...).Solve(b)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := &Result{
		Scenario:  scenario,
		Solve:     solve,
		Narration: narration.FormatProof(solve, verbosity),
	}
	result.Failures = evaluate(scenario.Expect, solve)
	return result, nil
}

// resolveRules maps scenario rule names to rule implementations,
// preserving order. Empty means both singles, naked first.
func resolveRules(names []string) ([]rules.Rule, error) {
	if len(names) == 0 {
		return []rules.Rule{rules.NakedSingle{}, rules.HiddenSingle{}}, nil
	}
	var out []rules.Rule
	for _, name := range names {
		switch name {
		case "naked_single":
			out = append(out, rules.NakedSingle{})
		case "hidden_single":
			out = append(out, rules.HiddenSingle{})
		default:
			return nil, fmt.Errorf("unknown rule %q", name)
		}
	}
	return out, nil
}

// evaluate checks the solve outcome against the expectation.
func evaluate(expect Expectation, solve *solver.SolveResult) []string {
	var failures []string

	if string(solve.Status) != expect.Status {
		failures = append(failures, fmt.Sprintf("status: expected %s, got %s", expect.Status, solve.Status))
	}
	if expect.Steps != nil && len(solve.Steps) != *expect.Steps {
		failures = append(failures, fmt.Sprintf("steps: expected %d, got %d", *expect.Steps, len(solve.Steps)))
	}
	if expect.FirstRule != "" {
		if len(solve.Steps) == 0 {
			failures = append(failures, fmt.Sprintf("first_rule: expected %s, got no steps", expect.FirstRule))
		} else if got := solve.Steps[0].Theorem.Rule; got != expect.FirstRule {
			failures = append(failures, fmt.Sprintf("first_rule: expected %s, got %s", expect.FirstRule, got))
		}
	}
	if expect.Solution != "" {
		if got := solve.FinalBoard().String(); got != expect.Solution {
			failures = append(failures, fmt.Sprintf("solution: expected %s, got %s", expect.Solution, got))
		}
	}

	return failures
}
