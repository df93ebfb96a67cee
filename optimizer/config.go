package optimizer

// Config controls which passes the Optimizer runs and how many fixed-point
// iterations it allows before giving up.
type Config struct {
	Deduplicate      bool
	FoldConstants    bool
	SubstituteLinear bool
	EliminateDead    bool
	DetectCSE        bool
	MaxIterations    int
}

// DefaultConfig runs every pass with a generous iteration budget.
func DefaultConfig() Config {
	return Config{
		Deduplicate:      true,
		FoldConstants:    true,
		SubstituteLinear: true,
		EliminateDead:    true,
		DetectCSE:        true,
		MaxIterations:    10,
	}
}

// SafeConfig runs only the reductions that can never change a satisfiable
// circuit's meaning: deduplication and constant folding. Linear
// substitution and dead-variable elimination are skipped because they can
// reshape the constraint structure in ways a cautious caller may not want.
func SafeConfig() Config {
	return Config{
		Deduplicate:      true,
		FoldConstants:    true,
		SubstituteLinear: false,
		EliminateDead:    false,
		DetectCSE:        true,
		MaxIterations:    3,
	}
}

// AggressiveConfig runs every pass with a larger iteration budget, for
// callers willing to trade more optimizer runtime for a smaller circuit.
func AggressiveConfig() Config {
	return Config{
		Deduplicate:      true,
		FoldConstants:    true,
		SubstituteLinear: true,
		EliminateDead:    true,
		DetectCSE:        true,
		MaxIterations:    20,
	}
}

// AnalyzeOnlyConfig runs no transformations at all; only Analyze/Stats are
// meaningful under this config (Optimize will return the matrix unchanged
// except for the scan-only CSE report).
func AnalyzeOnlyConfig() Config {
	return Config{
		Deduplicate:      false,
		FoldConstants:    false,
		SubstituteLinear: false,
		EliminateDead:    false,
		DetectCSE:        true,
		MaxIterations:    1,
	}
}
