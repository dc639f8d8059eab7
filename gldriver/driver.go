// Package gldriver implements glshader.Driver on OpenGL through go-gl.
//
// The package loads the OpenGL 4.6 core profile bindings. gl.Init must have
// been called with a context current on the calling thread before New, and
// every call must be made from that thread (see runtime.LockOSThread).
package gldriver

import (
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/internal/glcaps"
)

// Driver issues glshader's GL calls on the current context.
type Driver struct {
	version    glcaps.Version
	extensions []string
	spirv      bool
}

var _ glshader.Driver = (*Driver)(nil)

// New probes the current context and returns a driver for it.
func New() *Driver {
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)

	d := &Driver{
		version:    glcaps.Version{Major: int(major), Minor: int(minor)},
		extensions: extensions(),
	}
	d.spirv = glcaps.SPIRV(d.version, d.extensions)

	glshader.Logger().Debug("gldriver: context probed",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"spirv", d.spirv)
	return d
}

// extensions lists the extensions of the current context.
func extensions() []string {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	exts := make([]string, 0, n)
	for i := range uint32(n) {
		exts = append(exts, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, i)))
	}
	return exts
}

// Version returns the context version.
func (d *Driver) Version() (major, minor int) {
	return d.version.Major, d.version.Minor
}

// SPIRVSupported reports whether the context accepts SPIR-V shader binaries.
func (d *Driver) SPIRVSupported() bool { return d.spirv }

// GetError returns and clears the pending GL error code.
func (d *Driver) GetError() uint32 { return gl.GetError() }

// CreateShader creates a shader object for stage, or returns 0.
func (d *Driver) CreateShader(stage glshader.Stage) uint32 {
	switch stage {
	case glshader.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case glshader.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return 0
}

// ShaderSource replaces the GLSL source of shader.
func (d *Driver) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(cstring(src))
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
}

// CompileShader compiles the GLSL source of shader.
func (d *Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

// ShaderBinary loads a SPIR-V module into shader.
func (d *Driver) ShaderBinary(shader uint32, spirv []byte) {
	if len(spirv) == 0 {
		gl.ShaderBinary(1, &shader, gl.SHADER_BINARY_FORMAT_SPIR_V, nil, 0)
		return
	}
	gl.ShaderBinary(1, &shader, gl.SHADER_BINARY_FORMAT_SPIR_V, gl.Ptr(spirv), int32(len(spirv)))
}

// SpecializeShader specializes a SPIR-V shader for entryPoint.
func (d *Driver) SpecializeShader(shader uint32, entryPoint string, indices, values []uint32) {
	var pidx, pval *uint32
	if len(indices) > 0 {
		pidx, pval = &indices[0], &values[0]
	}
	gl.SpecializeShader(shader, gl.Str(cstring(entryPoint)), uint32(len(indices)), pidx, pval)
}

// ShaderCompileStatus reports whether shader compiled or specialized.
func (d *Driver) ShaderCompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog returns the compile log of shader.
func (d *Driver) ShaderInfoLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetShaderInfoLog(shader, n, nil, &buf[0])
	return gostring(buf)
}

// DeleteShader deletes shader.
func (d *Driver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

// CreateProgram creates a program object, or returns 0.
func (d *Driver) CreateProgram() uint32 { return gl.CreateProgram() }

// AttachShader attaches shader to program.
func (d *Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

// DetachShader detaches shader from program.
func (d *Driver) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

// BindAttribLocation binds the vertex attribute name to index before linking.
func (d *Driver) BindAttribLocation(program, index uint32, name string) {
	gl.BindAttribLocation(program, index, gl.Str(cstring(name)))
}

// LinkProgram links program.
func (d *Driver) LinkProgram(program uint32) { gl.LinkProgram(program) }

// ProgramLinkStatus reports whether program linked.
func (d *Driver) ProgramLinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog returns the link log of program.
func (d *Driver) ProgramInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetProgramInfoLog(program, n, nil, &buf[0])
	return gostring(buf)
}

// DeleteProgram deletes program.
func (d *Driver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

// cstring returns s NUL-terminated, as gl.Str and gl.Strs require.
func cstring(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// gostring returns the text of a NUL-terminated buffer filled by GL.
func gostring(buf []byte) string {
	if i := strings.IndexByte(string(buf), 0); i >= 0 {
		buf = buf[:i]
	}
	return strings.TrimRight(string(buf), "\n")
}
