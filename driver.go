package glshader

// Driver is the subset of the OpenGL API the loading pipeline drives.
//
// All objects belong to the GL context current on the calling thread.
// Object names are non-zero; 0 is returned by the creation calls on
// failure and is never a valid object.
//
// The gldriver package implements Driver on top of go-gl; the gltest
// package provides an in-memory implementation that tracks live objects.
type Driver interface {
	// SPIRVSupported reports whether the context accepts SPIR-V shader
	// binaries (GL_ARB_gl_spirv or OpenGL 4.6).
	SPIRVSupported() bool

	// GetError returns and clears the oldest recorded driver error code.
	GetError() uint32

	// CreateShader allocates a shader object for the given stage.
	CreateShader(stage Stage) uint32
	// ShaderSource replaces the GLSL source of a shader object.
	ShaderSource(shader uint32, src string)
	// CompileShader compiles the GLSL source of a shader object.
	CompileShader(shader uint32)
	// ShaderBinary loads a SPIR-V module into a shader object.
	ShaderBinary(shader uint32, spirv []byte)
	// SpecializeShader selects the SPIR-V entry point and applies
	// specialization constants. indices and values have equal length.
	SpecializeShader(shader uint32, entryPoint string, indices, values []uint32)
	// ShaderCompileStatus reports GL_COMPILE_STATUS.
	ShaderCompileStatus(shader uint32) bool
	// ShaderInfoLog returns the shader information log.
	ShaderInfoLog(shader uint32) string
	// DeleteShader flags a shader object for deletion.
	DeleteShader(shader uint32)

	// CreateProgram allocates a program object.
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	// BindAttribLocation binds a vertex attribute name to an array index.
	// It takes effect at the next LinkProgram.
	BindAttribLocation(program, index uint32, name string)
	LinkProgram(program uint32)
	// ProgramLinkStatus reports GL_LINK_STATUS.
	ProgramLinkStatus(program uint32) bool
	// ProgramInfoLog returns the program information log.
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
}
