package glshader

import (
	"fmt"
	"path/filepath"
)

// textSourceName tags diagnostics for GLSL compiled from a string that has
// no file name.
const textSourceName = "<cstring>"

// SpecConst is a SPIR-V specialization constant: the value bound to the
// constant with the given SpecId.
//
// A list of constants ends at the first element with IsLast set, or at the
// end of the slice. The terminating element must have zero Index and Value.
type SpecConst struct {
	Index  uint32
	Value  uint32
	IsLast bool
}

// specArrays splits a specialization constant list into the parallel index
// and value arrays glSpecializeShader takes.
func specArrays(spec []SpecConst) (indices, values []uint32) {
	n := 0
	for n < len(spec) && !spec[n].IsLast {
		n++
	}
	if n < len(spec) && (spec[n].Index != 0 || spec[n].Value != 0) {
		contractf("specialization constant terminator has index %d value %d, want 0 0",
			spec[n].Index, spec[n].Value)
	}
	indices = make([]uint32, n)
	values = make([]uint32, n)
	for i := range n {
		indices[i] = spec[i].Index
		values[i] = spec[i].Value
	}
	return indices, values
}

// CompileFile loads the shader at path and compiles it for stage.
//
// A ".spv" path is loaded as a SPIR-V binary, specialized with entryPoint
// (empty selects the loader default, "main") and spec. If the driver lacks
// SPIR-V support, a GLSL file next to it with the extension replaced by
// ".vert"/".frag" or ".glsl" is compiled instead. Any other extension is
// compiled as GLSL text and entryPoint and spec are ignored.
//
// The returned shader object is owned by the caller. On failure the
// handle is 0 and no driver object remains allocated.
func (l *Loader) CompileFile(stage Stage, path, entryPoint string, spec []SpecConst) (uint32, error) {
	sh, err := l.shaderFromFile(stage, path, entryPoint, spec)
	if err != nil {
		return 0, err
	}
	return sh.release(), nil
}

// CompileText compiles GLSL source text for stage. name tags diagnostics;
// an empty name is reported as "<cstring>".
func (l *Loader) CompileText(stage Stage, text, name string) (uint32, error) {
	stage.mustBeValid()
	sh, err := l.shaderFromText(stage, text, name)
	if err != nil {
		return 0, err
	}
	return sh.release(), nil
}

func (l *Loader) shaderFromFile(stage Stage, path, entryPoint string, spec []SpecConst) (shaderObject, error) {
	stage.mustBeValid()

	ext := filepath.Ext(path)
	if ext == "" {
		return shaderObject{}, loadError(path, ErrNoExtension, "")
	}
	if ext == ".spv" {
		return l.shaderFromSPIRV(stage, path, entryPoint, spec)
	}

	text, err := l.readText(path)
	if err != nil {
		return shaderObject{}, err
	}
	return l.shaderFromText(stage, text, path)
}

func (l *Loader) shaderFromText(stage Stage, text, name string) (shaderObject, error) {
	if name == "" {
		name = textSourceName
	}

	sh, err := l.createShader(stage, name)
	if err != nil {
		return shaderObject{}, err
	}
	defer sh.Delete()

	l.drv.ShaderSource(sh.id, text)
	l.drv.CompileShader(sh.id)
	if err := l.compileStatus(sh, name, ErrCompile); err != nil {
		return shaderObject{}, err
	}

	l.logger().Debug(msgCompiled, "name", name, "stage", stage, "shader", sh.id)
	return sh.take(), nil
}

// shaderFromSPIRV loads and specializes a SPIR-V shader, or resolves its
// GLSL fallback when SPIR-V is unavailable.
func (l *Loader) shaderFromSPIRV(stage Stage, path, entryPoint string, spec []SpecConst) (shaderObject, error) {
	if !l.SPIRVEnabled() {
		l.logger().Info(msgNoSPIRV, "shader", path)
		return l.spirvFallback(stage, path)
	}

	if entryPoint == "" {
		entryPoint = l.opts.entryPoint
	}
	indices, values := specArrays(spec)

	code, err := l.readBinary(path)
	if err != nil {
		return shaderObject{}, err
	}
	if err := checkSPIRV(path, code); err != nil {
		return shaderObject{}, err
	}

	sh, err := l.createShader(stage, path)
	if err != nil {
		return shaderObject{}, err
	}
	defer sh.Delete()

	l.drv.ShaderBinary(sh.id, code)
	l.drv.SpecializeShader(sh.id, entryPoint, indices, values)
	if err := l.compileStatus(sh, path, ErrSpecialize); err != nil {
		return shaderObject{}, err
	}

	l.logger().Debug(msgSpecialized,
		"name", path, "stage", stage, "entry", entryPoint, "constants", len(indices), "shader", sh.id)
	return sh.take(), nil
}

func (l *Loader) createShader(stage Stage, name string) (shaderObject, error) {
	id := l.drv.CreateShader(stage)
	if id == 0 {
		return shaderObject{}, loadError(name, ErrCreate,
			fmt.Sprintf("glCreateShader failed with error 0x%x", l.drv.GetError()))
	}
	return shaderObject{drv: l.drv, id: id}, nil
}

// compileStatus returns an error of the given kind carrying the driver's
// info log if the shader did not compile.
func (l *Loader) compileStatus(sh shaderObject, name string, kind error) error {
	if l.drv.ShaderCompileStatus(sh.id) {
		return nil
	}
	return loadError(name, kind, l.drv.ShaderInfoLog(sh.id))
}
