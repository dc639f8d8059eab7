// Package glcaps decides OpenGL feature availability from the context
// version and extension list.
package glcaps

import "slices"

// Version is an OpenGL context version.
type Version struct {
	Major, Minor int
}

// AtLeast reports whether v is major.minor or newer.
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// SPIRVExtension is the extension that adds SPIR-V shader binaries to
// contexts older than 4.6.
const SPIRVExtension = "GL_ARB_gl_spirv"

// SPIRV reports whether a context can load SPIR-V shaders. SPIR-V is core
// in OpenGL 4.6 and available earlier through GL_ARB_gl_spirv.
func SPIRV(v Version, extensions []string) bool {
	return v.AtLeast(4, 6) || slices.Contains(extensions, SPIRVExtension)
}
