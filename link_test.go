package glshader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/gltest"
)

func compileStages(t *testing.T, ld *glshader.Loader) (vert, frag uint32) {
	t.Helper()
	vert, err := ld.CompileText(glshader.StageVertex, vertGLSL, "vert")
	require.NoError(t, err)
	frag, err = ld.CompileText(glshader.StageFragment, fragGLSL, "frag")
	require.NoError(t, err)
	return vert, frag
}

func TestLinkSuccessConsumesShaders(t *testing.T) {
	ld, drv, _ := newLoader(t)
	vert, frag := compileStages(t, ld)

	prog, err := ld.Link("quad", vert, frag, []glshader.AttrBind{glshader.Bind("pos", 0), {}})
	require.NoError(t, err)
	require.NotZero(t, prog)
	assert.NotEqual(t, vert, prog)
	assert.NotEqual(t, frag, prog)

	p := drv.Program(prog)
	assert.True(t, p.LinkOK)
	assert.ElementsMatch(t, []uint32{vert, frag}, p.Linked)
	assert.Empty(t, p.Attached, "shaders must be detached after a successful link")
	assert.True(t, drv.Shader(vert).Deleted)
	assert.True(t, drv.Shader(frag).Deleted)
	assert.Equal(t, map[string]uint32{"pos": 0}, p.Attribs)
	assertNoLeaks(t, drv, prog)
}

func TestLinkFailureReleasesEverything(t *testing.T) {
	ld, drv, _ := newLoader(t)
	drv.LinkError = "error: vertex output 'uv' not read by fragment shader"
	vert, frag := compileStages(t, ld)

	prog, err := ld.Link("quad", vert, frag, nil)
	assert.Zero(t, prog)
	require.ErrorIs(t, err, glshader.ErrLink)
	assert.Contains(t, err.Error(), "quad")
	assert.Contains(t, err.Error(), drv.LinkError)
	assertNoLeaks(t, drv)
}

func TestLinkCreateProgramFailure(t *testing.T) {
	ld, drv, _ := newLoader(t)
	vert, frag := compileStages(t, ld)
	drv.FailCreateProgram = true

	prog, err := ld.Link("quad", vert, frag, nil)
	assert.Zero(t, prog)
	require.ErrorIs(t, err, glshader.ErrCreate)
	assert.Contains(t, err.Error(), "0x505")
	assertNoLeaks(t, drv)
}

func TestLinkSingleStage(t *testing.T) {
	ld, drv, _ := newLoader(t)
	frag, err := ld.CompileText(glshader.StageFragment, fragGLSL, "")
	require.NoError(t, err)

	prog, err := ld.Link("frag-only", 0, frag, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint32{frag}, drv.Program(prog).Linked)
	assertNoLeaks(t, drv, prog)
}

func TestLinkBindingsStopAtTerminator(t *testing.T) {
	ld, drv, _ := newLoader(t)
	vert, frag := compileStages(t, ld)

	binds := []glshader.AttrBind{glshader.Bind("pos", 0), glshader.Bind("uv", 1), {}, glshader.Bind("after", 9)}
	prog, err := ld.Link("quad", vert, frag, binds)
	require.NoError(t, err)
	assert.Equal(t, map[string]uint32{"pos": 0, "uv": 1}, drv.Program(prog).Attribs)
}

func TestLinkBindingsRequireVertexStage(t *testing.T) {
	tests := []struct {
		name  string
		stage func(*testing.T, *glshader.Loader) uint32
	}{
		{"no stages", func(*testing.T, *glshader.Loader) uint32 { return 0 }},
		{"fragment only", func(t *testing.T, ld *glshader.Loader) uint32 {
			frag, err := ld.CompileText(glshader.StageFragment, fragGLSL, "")
			require.NoError(t, err)
			return frag
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ld, drv, _ := newLoader(t)
			frag := tt.stage(t, ld)

			requireContractPanic(t, func() {
				_, _ = ld.Link("bad", 0, frag, []glshader.AttrBind{glshader.Bind("pos", 0)})
			})
			assert.Empty(t, drv.LivePrograms(), "no program may be created before the precondition check")
			assert.Empty(t, drv.LiveShaders())
		})
	}
}

func TestLinkDistinctPrograms(t *testing.T) {
	drv := gltest.NewDriver()
	ld := glshader.NewLoader(drv)

	seen := make(map[uint32]bool)
	for range 3 {
		vert, frag := compileStages(t, ld)
		prog, err := ld.Link("quad", vert, frag, nil)
		require.NoError(t, err)
		assert.False(t, seen[prog], "program handle %d reused", prog)
		seen[prog] = true
	}
	assert.Len(t, drv.LivePrograms(), 3)
	assert.Empty(t, drv.LiveShaders())
}
