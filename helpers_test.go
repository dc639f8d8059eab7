package glshader_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/naga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/gltest"
)

const (
	vertGLSL = `#version 330 core
in vec2 pos;
void main() { gl_Position = vec4(pos, 0.0, 1.0); }
`
	fragGLSL = `#version 330 core
out vec4 color;
void main() { color = vec4(1.0); }
`
	brokenGLSL = "#version 330 core\n#error intentionally broken\n"

	vertWGSL = `
@vertex
fn main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`
)

// newLoader returns a loader over a fresh tracking driver whose log output,
// at debug level, is collected in the returned buffer.
func newLoader(t *testing.T, opts ...glshader.LoaderOption) (*glshader.Loader, *gltest.Driver, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	drv := gltest.NewDriver()
	ld := glshader.NewLoader(drv, append([]glshader.LoaderOption{glshader.WithLogger(logger)}, opts...)...)
	return ld, drv, &buf
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// spirvModule compiles a minimal WGSL vertex shader to a SPIR-V module.
func spirvModule(t *testing.T) []byte {
	t.Helper()
	code, err := naga.Compile(vertWGSL)
	require.NoError(t, err)
	return code
}

// assertNoLeaks checks that the only live driver objects are the given
// programs and that no invalid call was made.
func assertNoLeaks(t *testing.T, drv *gltest.Driver, programs ...uint32) {
	t.Helper()
	assert.Empty(t, drv.LiveShaders(), "leaked shader objects")
	if len(programs) == 0 {
		assert.Empty(t, drv.LivePrograms(), "leaked program objects")
	} else {
		assert.ElementsMatch(t, programs, drv.LivePrograms())
	}
	assert.Empty(t, drv.Misuse())
}

// requireContractPanic runs f and requires it to panic with an error
// wrapping glshader.ErrContract.
func requireContractPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a contract violation panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, glshader.ErrContract), "panic %v does not wrap ErrContract", err)
	}()
	f()
}
