package parameter

// Numeric tolerances for the resolver and interpolation

const (
	// SeparationSlop is the extra distance added when pushing overlapping bodies apart
	// so float rounding never leaves a residual overlap
	SeparationSlop = float32(1.0 / 1024.0)

	// SlerpParallelEpsilon is the sin(angle) below which two directions are treated as
	// parallel or anti-parallel and Slerp falls back to Lerp
	SlerpParallelEpsilon = 1e-6

	// DefaultRestitution applies to tags without a configured profile
	DefaultRestitution = float32(1.0)
)
