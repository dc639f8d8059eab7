package glshader

import "fmt"

// Stage identifies the pipeline stage a shader object is compiled for.
type Stage uint32

const (
	// StageVertex is the vertex shader stage (GL_VERTEX_SHADER).
	StageVertex Stage = iota + 1

	// StageFragment is the fragment shader stage (GL_FRAGMENT_SHADER).
	StageFragment
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", uint32(s))
	}
}

// Valid reports whether s is a stage the pipeline can compile.
func (s Stage) Valid() bool {
	return s == StageVertex || s == StageFragment
}

// fallbackExt returns the GLSL filename extension conventionally used for
// a stage's textual source.
func (s Stage) fallbackExt() string {
	switch s {
	case StageVertex:
		return "vert"
	case StageFragment:
		return "frag"
	}
	contractf("unknown shader stage %v", s)
	return ""
}

// mustBeValid panics unless s is a known stage.
func (s Stage) mustBeValid() {
	if !s.Valid() {
		contractf("unknown shader stage %v", s)
	}
}
