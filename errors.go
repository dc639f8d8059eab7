package glshader

import (
	"errors"
	"fmt"
)

// Error kinds returned by the loading pipeline. Every error returned by a
// Loader wraps exactly one of these, so callers can branch with errors.Is.
var (
	// ErrRead indicates a shader file could not be read.
	ErrRead = errors.New("glshader: cannot read shader")

	// ErrNotSPIRV indicates a ".spv" file does not hold a SPIR-V module.
	ErrNotSPIRV = errors.New("glshader: not a SPIR-V module")

	// ErrNoExtension indicates a shader path has no filename extension,
	// so its delivery format cannot be determined.
	ErrNoExtension = errors.New("glshader: filename missing required extension")

	// ErrCreate indicates the driver failed to allocate a shader or
	// program object.
	ErrCreate = errors.New("glshader: driver object creation failed")

	// ErrCompile indicates GLSL compilation failed.
	ErrCompile = errors.New("glshader: compile error")

	// ErrSpecialize indicates SPIR-V specialization failed.
	ErrSpecialize = errors.New("glshader: specialization error")

	// ErrLink indicates program linking failed.
	ErrLink = errors.New("glshader: link error")

	// ErrNoFallback indicates SPIR-V is unsupported and no GLSL
	// replacement exists next to the SPIR-V file.
	ErrNoFallback = errors.New("glshader: SPIR-V shaders not supported and no fallback shader found")
)

// ErrContract is wrapped by the value of every panic raised when the API is
// misused (unknown stage, empty program description, attribute bindings
// without a vertex stage, ...). It is never returned as an error.
var ErrContract = errors.New("glshader: contract violation")

// contractf panics with an error wrapping ErrContract.
func contractf(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrContract, fmt.Sprintf(format, args...)))
}

// loadError formats the innermost diagnostic for a shader that failed to
// load: "cannot load shader <name>: <kind>: <detail>".
func loadError(name string, kind error, detail string) error {
	if detail == "" {
		return fmt.Errorf("cannot load shader %s: %w", name, kind)
	}
	return fmt.Errorf("cannot load shader %s: %w: %s", name, kind, detail)
}
