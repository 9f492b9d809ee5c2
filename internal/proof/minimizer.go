package proof

import "fmt"

// Verbosity selects how much of a collected proof is kept in a slice.
type Verbosity int

const (
	// VerbosityFull keeps the complete collected proof.
	VerbosityFull Verbosity = iota

	// VerbosityNormal drops axiom nodes; given values are implied, not
	// spelled out.
	VerbosityNormal

	// VerbosityTerse keeps only the root and its immediate premises, with
	// no transitive expansion.
	VerbosityTerse
)

// ParseVerbosity maps the CLI/scenario spelling to a Verbosity.
func ParseVerbosity(s string) (Verbosity, error) {
	switch s {
	case "full":
		return VerbosityFull, nil
	case "normal":
		return VerbosityNormal, nil
	case "terse":
		return VerbosityTerse, nil
	default:
		return 0, fmt.Errorf("invalid verbosity %q: must be one of full, normal, terse", s)
	}
}

func (v Verbosity) String() string {
	switch v {
	case VerbosityFull:
		return "full"
	case VerbosityNormal:
		return "normal"
	case VerbosityTerse:
		return "terse"
	default:
		return fmt.Sprintf("verbosity(%d)", int(v))
	}
}

// SliceProof returns a verbosity-reduced proof slice rooted at a
// proposition, deduplicated by identity.
func SliceProof(root Proposition, verbosity Verbosity) []Proposition {
	if verbosity == VerbosityTerse {
		direct := append([]Proposition{root}, root.Premises()...)
		return Dedupe(direct)
	}

	full := CollectProof(root)
	if verbosity == VerbosityFull {
		return full
	}

	var out []Proposition
	for _, p := range full {
		if _, isAxiom := p.(*Axiom); isAxiom {
			continue
		}
		out = append(out, p)
	}
	return out
}
