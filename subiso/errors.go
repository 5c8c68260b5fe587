package subiso

import "errors"

// Sentinel errors for engine construction and execution. Callers should use
// errors.Is.
var (
	// ErrPatternTooLarge is returned when |V(F)| exceeds bitmask.MaxVertices.
	ErrPatternTooLarge = errors.New("subiso: pattern graph exceeds bitmask.MaxVertices")

	// ErrHostTooSmall is returned when G has fewer vertices than F: no
	// embedding can possibly exist.
	ErrHostTooSmall = errors.New("subiso: host graph has fewer vertices than pattern")

	// ErrNonPositiveIterations is returned when Options specify zero or
	// fewer coloring iterations.
	ErrNonPositiveIterations = errors.New("subiso: iterations must be positive")
)
