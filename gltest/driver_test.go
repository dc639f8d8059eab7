package gltest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glshader"
)

func TestDriverShaderLifecycle(t *testing.T) {
	d := NewDriver()

	sh := d.CreateShader(glshader.StageVertex)
	require.NotZero(t, sh)
	assert.Equal(t, []uint32{sh}, d.LiveShaders())

	d.ShaderSource(sh, "void main() {}")
	d.CompileShader(sh)
	assert.True(t, d.ShaderCompileStatus(sh))

	d.DeleteShader(sh)
	assert.Empty(t, d.LiveShaders())
	assert.Empty(t, d.Misuse())

	d.DeleteShader(sh)
	assert.Len(t, d.Misuse(), 1, "double delete must be recorded")
}

func TestDriverCompileFailure(t *testing.T) {
	d := NewDriver()
	sh := d.CreateShader(glshader.StageFragment)
	d.ShaderSource(sh, "#error broken\n")
	d.CompileShader(sh)

	assert.False(t, d.ShaderCompileStatus(sh))
	assert.Contains(t, d.ShaderInfoLog(sh), DefaultFailMarker)
}

func TestDriverCreateFailureSetsError(t *testing.T) {
	d := NewDriver()
	d.FailCreateShader = true

	assert.Zero(t, d.CreateShader(glshader.StageVertex))
	assert.Equal(t, d.ErrorCode, d.GetError())
	assert.Zero(t, d.GetError(), "GetError must clear the error")
}

func TestDriverSpecialize(t *testing.T) {
	d := NewDriver()
	module := []byte{0x03, 0x02, 0x23, 0x07, 0, 0, 0, 0}

	tests := []struct {
		name  string
		code  []byte
		entry string
		ok    bool
	}{
		{"valid", module, "main", true},
		{"big endian", []byte{0x07, 0x23, 0x02, 0x03, 0, 0, 0, 0}, "main", true},
		{"unknown entry", module, "other", false},
		{"bad magic", []byte{1, 2, 3, 4}, "main", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := d.CreateShader(glshader.StageVertex)
			d.ShaderBinary(sh, tt.code)
			d.SpecializeShader(sh, tt.entry, []uint32{1}, []uint32{2})
			assert.Equal(t, tt.ok, d.ShaderCompileStatus(sh))
			assert.Equal(t, []uint32{1}, d.Shader(sh).Indices)
			assert.Equal(t, []uint32{2}, d.Shader(sh).Values)
		})
	}
}

func TestDriverLinkAndDetach(t *testing.T) {
	d := NewDriver()
	vs := d.CreateShader(glshader.StageVertex)
	d.ShaderSource(vs, "void main() {}")
	d.CompileShader(vs)

	p := d.CreateProgram()
	require.NotZero(t, p)
	assert.NotEqual(t, vs, p, "programs and shaders share one name space")

	d.AttachShader(p, vs)
	d.BindAttribLocation(p, 3, "pos")
	d.LinkProgram(p)
	require.True(t, d.ProgramLinkStatus(p))
	assert.Equal(t, uint32(3), d.Program(p).Attribs["pos"])

	d.DetachShader(p, vs)
	assert.Empty(t, d.Program(p).Attached)
	assert.Equal(t, []uint32{vs}, d.Program(p).Linked)

	d.DetachShader(p, vs)
	assert.Len(t, d.Misuse(), 1)
}

func TestDriverLinkUncompiled(t *testing.T) {
	d := NewDriver()
	vs := d.CreateShader(glshader.StageVertex)
	p := d.CreateProgram()
	d.AttachShader(p, vs)
	d.LinkProgram(p)

	assert.False(t, d.ProgramLinkStatus(p))
	assert.Contains(t, d.ProgramInfoLog(p), "not compiled")
}
