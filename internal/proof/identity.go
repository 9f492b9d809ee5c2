package proof

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/roach88/sudologue/internal/board"
	"github.com/roach88/sudologue/internal/canonical"
)

// DomainProposition is the domain prefix for content-addressed proposition
// IDs. The version suffix enables future algorithm migration.
const DomainProposition = "sudologue/prop/v1"

// Key returns the canonical identity of a proposition: the canonical JSON
// of its semantic fields. Non-semantic fields are excluded — a Theorem's
// rule name, an Elimination's citing house and justification chain — so
// independently derived propositions with the same conclusion compare
// equal (first-derived reason wins on dedup).
//
// Key panics on marshal failure, which is unreachable for the closed
// proposition set; it exists so identity can be used directly as a map key
// in hot derivation paths.
func Key(p Proposition) string {
	b, err := canonical.Marshal(keyObject(p))
	if err != nil {
		panic(fmt.Sprintf("proposition identity: %v", err))
	}
	return string(b)
}

// ID computes the content-addressed ID of a proposition for persistence:
// SHA-256 over the canonical key with domain separation
// (SHA256(domain + 0x00 + key)). Stable across processes and replays.
func ID(p Proposition) string {
	h := sha256.New()
	h.Write([]byte(DomainProposition))
	h.Write([]byte{0x00}) // null separator: unambiguous domain/data boundary
	h.Write([]byte(Key(p)))
	return hex.EncodeToString(h.Sum(nil))
}

func keyObject(p Proposition) canonical.Value {
	switch v := p.(type) {
	case *Axiom:
		return cellValueKey("axiom", v.Cell, v.Value)
	case *Elimination:
		return cellValueKey("elimination", v.Cell, v.Value)
	case *Lemma:
		domain := make(canonical.Array, len(v.Domain))
		for i, d := range v.Domain {
			domain[i] = canonical.Int(d)
		}
		return canonical.Object{
			"kind":   canonical.String("lemma"),
			"row":    canonical.Int(v.Cell.Row),
			"col":    canonical.Int(v.Cell.Col),
			"domain": domain,
		}
	case *RangeLemma:
		cells := make(canonical.Array, len(v.Cells))
		for i, c := range v.Cells {
			cells[i] = canonical.Array{canonical.Int(c.Row), canonical.Int(c.Col)}
		}
		return canonical.Object{
			"kind":  canonical.String("range"),
			"house": canonical.String(fmt.Sprintf("%s/%d", v.House.Kind, v.House.Index)),
			"value": canonical.Int(v.Value),
			"cells": cells,
		}
	case *Candidate:
		return cellValueKey("candidate", v.Cell, v.Value)
	case *Theorem:
		// Rule deliberately excluded: same placement, same proposition.
		return cellValueKey("theorem", v.Cell, v.Value)
	default:
		panic(fmt.Sprintf("unknown proposition type: %T", p))
	}
}

func cellValueKey(kind string, c board.Cell, value int) canonical.Object {
	return canonical.Object{
		"kind":  canonical.String(kind),
		"row":   canonical.Int(c.Row),
		"col":   canonical.Int(c.Col),
		"value": canonical.Int(value),
	}
}

// Index maps propositions by identity, keeping the first occurrence of
// each key.
func Index(props []Proposition) map[string]Proposition {
	index := make(map[string]Proposition, len(props))
	for _, p := range props {
		k := Key(p)
		if _, ok := index[k]; !ok {
			index[k] = p
		}
	}
	return index
}

// Dedupe returns the propositions with duplicate identities removed,
// preserving first-occurrence order.
func Dedupe(props []Proposition) []Proposition {
	seen := make(map[string]bool, len(props))
	var out []Proposition
	for _, p := range props {
		k := Key(p)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}

// CollectProof traverses premises depth-first from a root, visiting each
// distinct identity exactly once, and returns the deduplicated nodes in
// visit order (root first). Identity-keyed visiting is what keeps
// collection finite on the shared-substructure DAG: an axiom cited by many
// eliminations appears once.
func CollectProof(root Proposition) []Proposition {
	seen := map[string]bool{}
	var ordered []Proposition

	var visit func(Proposition)
	visit = func(p Proposition) {
		k := Key(p)
		if seen[k] {
			return
		}
		seen[k] = true
		ordered = append(ordered, p)
		for _, premise := range p.Premises() {
			visit(premise)
		}
	}
	visit(root)
	return ordered
}
