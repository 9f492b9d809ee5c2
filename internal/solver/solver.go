// Package solver runs rules to a fixed point over a board, producing a
// step-by-step trace in which every placement carries its full proof.
package solver

import (
	"fmt"
	"log/slog"

	"github.com/roach88/sudologue/internal/board"
	"github.com/roach88/sudologue/internal/proof"
	"github.com/roach88/sudologue/internal/rules"
)

// Status is the terminal state of a solve.
type Status string

const (
	// StatusSolved means the final board is complete.
	StatusSolved Status = "solved"

	// StatusStuck means no rule produced a theorem on some intermediate
	// board. Stuck is a normal outcome, not an error.
	StatusStuck Status = "stuck"
)

// Step records one placement: the theorem that justified it and the board
// state after applying it.
type Step struct {
	Theorem *proof.Theorem
	Board   *board.Board
}

// SolveResult is the full trace of one solve.
type SolveResult struct {
	Initial   *board.Board
	Steps     []Step
	Status    Status
	Diagnosis string // non-empty only when stuck
}

// FinalBoard returns the board after the last step, or the initial board
// when no step was taken.
func (r *SolveResult) FinalBoard() *board.Board {
	if len(r.Steps) == 0 {
		return r.Initial
	}
	return r.Steps[len(r.Steps)-1].Board
}

// Solver applies rules in priority order until the board is complete or no
// rule fires. A Solver is immutable after New and safe for concurrent use.
type Solver struct {
	rules      []rules.Rule
	scorer     func(*proof.Theorem) int
	deriveOpts []proof.Option
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithScorer makes the solver pick, among a rule's theorems, the one with
// the minimum score. Ties keep discovery order.
func WithScorer(score func(*proof.Theorem) int) SolverOption {
	return func(s *Solver) { s.scorer = score }
}

// WithDeriveOptions forwards options to each per-step derivation, e.g.
// proof.WithoutPairs() to restrict what the rules can see.
func WithDeriveOptions(opts ...proof.Option) SolverOption {
	return func(s *Solver) { s.deriveOpts = opts }
}

// New builds a solver over the given rules. Rule order is priority order:
// each step takes a theorem from the first rule that produces any.
func New(ruleSet []rules.Rule, opts ...SolverOption) *Solver {
	s := &Solver{rules: ruleSet}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve runs the rule loop from a starting board. It terminates on every
// input: each step fills exactly one cell. An error is returned only when
// a rule emits a placement the board rejects, which indicates a broken
// rule rather than a hard puzzle.
func (s *Solver) Solve(b *board.Board) (*SolveResult, error) {
	result := &SolveResult{Initial: b, Status: StatusStuck}

	current := b
	for !current.IsComplete() {
		d := proof.Derive(current, s.deriveOpts...)

		theorem := s.pick(d)
		if theorem == nil {
			result.Diagnosis = fmt.Sprintf("%d empty cells remaining", len(current.EmptyCells()))
			slog.Debug("solver stuck",
				"steps", len(result.Steps),
				"empty", len(current.EmptyCells()))
			return result, nil
		}

		next, err := current.Place(theorem.Cell, theorem.Value)
		if err != nil {
			return nil, fmt.Errorf("rule %q produced invalid placement %s: %w",
				theorem.Rule, theorem, err)
		}
		slog.Debug("placement",
			"step", len(result.Steps)+1,
			"rule", theorem.Rule,
			"cell", theorem.Cell.String(),
			"value", theorem.Value)

		result.Steps = append(result.Steps, Step{Theorem: theorem, Board: next})
		current = next
	}

	result.Status = StatusSolved
	return result, nil
}

// pick queries rules in priority order and selects a theorem from the
// first rule with output: the first theorem, or the minimum-score theorem
// when a scorer is set (stable on ties).
func (s *Solver) pick(d *proof.Derivation) *proof.Theorem {
	for _, rule := range s.rules {
		theorems := rule.Apply(d)
		if len(theorems) == 0 {
			continue
		}
		if s.scorer == nil {
			return theorems[0]
		}
		best := theorems[0]
		bestScore := s.scorer(best)
		for _, t := range theorems[1:] {
			if score := s.scorer(t); score < bestScore {
				best, bestScore = t, score
			}
		}
		return best
	}
	return nil
}
