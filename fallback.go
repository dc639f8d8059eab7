package glshader

import (
	"path/filepath"
	"strings"
)

// genericFallbackExt is tried after the stage specific extension.
const genericFallbackExt = "glsl"

// fallbackCandidates returns the GLSL paths that may replace a SPIR-V
// shader, in the order they are tried: the stage extension ("vert" or
// "frag"), then "glsl".
func fallbackCandidates(stage Stage, path string) []string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return []string{
		base + "." + stage.fallbackExt(),
		base + "." + genericFallbackExt,
	}
}

// spirvFallback compiles the first existing GLSL replacement for the
// SPIR-V shader at path.
func (l *Loader) spirvFallback(stage Stage, path string) (shaderObject, error) {
	for _, alt := range fallbackCandidates(stage, path) {
		if !l.isRegularFile(alt) {
			continue
		}
		l.logger().Debug(msgFallbackTo, "shader", path, "fallback", alt)
		return l.shaderFromFile(stage, alt, "", nil)
	}
	return shaderObject{}, loadError(path, ErrNoFallback, "")
}
