package glshader

// Test hooks for the external glshader_test package.
var (
	NormalizeBinds     = normalizeBinds
	SpecArrays         = specArrays
	FallbackCandidates = fallbackCandidates
)
