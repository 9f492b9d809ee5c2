package proof

// ProofSize returns the number of distinct propositions in a theorem's
// full collected proof. Used as a theorem scorer to prefer minimal proofs.
func ProofSize(t *Theorem) int {
	return len(CollectProof(t))
}
