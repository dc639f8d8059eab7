package glshader

import "path/filepath"

// ShaderInfo describes how to obtain one stage of a program.
// Exactly one of Filename and GLSL must be set.
type ShaderInfo struct {
	// Filename is the shader file, relative to the directory passed to
	// ProgFromInfo. A ".spv" file is loaded as SPIR-V with GLSL fallback.
	Filename string

	// GLSL is inline GLSL source text.
	GLSL string

	// EntryPoint is the SPIR-V entry point. Empty selects "main".
	EntryPoint string

	// SpecConsts are SPIR-V specialization constants, nil for none.
	SpecConsts []SpecConst
}

// ProgInfo declaratively describes a shader program.
// At least one of Vert and Frag must be set.
type ProgInfo struct {
	// Name identifies the program in diagnostics.
	Name      string
	Vert      *ShaderInfo
	Frag      *ShaderInfo
	AttrBinds []AttrBind
}

// ProgFromFile loads, compiles and links a program from a vertex and a
// fragment shader file. An empty path omits that stage. binds assigns
// vertex attributes to array indices:
//
//	prog := ld.ProgFromFile("my_test_prog",
//	    "/file/path/to/shader.vert", "/file/path/to/shader.frag",
//	    glshader.Bind("vertex_pos", 0), glshader.Bind("tex_coord", 1))
//
// It returns the linked program, ready for glUseProgram, or 0 if any step
// failed; the cause is logged.
func (l *Loader) ProgFromFile(name, vertFile, fragFile string, binds ...AttrBind) uint32 {
	prog, err := l.LoadFile(name, vertFile, fragFile, binds...)
	return l.logFailure(name, prog, err)
}

// ProgFromText is ProgFromFile with GLSL source text instead of paths.
// An empty text omits that stage.
func (l *Loader) ProgFromText(name, vertText, fragText string, binds ...AttrBind) uint32 {
	prog, err := l.LoadText(name, vertText, fragText, binds...)
	return l.logFailure(name, prog, err)
}

// ProgFromInfo loads, specializes or compiles, and links the program
// described by info. Shader files are resolved relative to dir.
// It returns 0 if any step failed; the cause is logged.
func (l *Loader) ProgFromInfo(dir string, info *ProgInfo) uint32 {
	prog, err := l.LoadInfo(dir, info)
	return l.logFailure(info.Name, prog, err)
}

// LoadFile is ProgFromFile returning the failure instead of logging it.
func (l *Loader) LoadFile(name, vertFile, fragFile string, binds ...AttrBind) (uint32, error) {
	return l.assemble(name, vertFile, fragFile, normalizeBinds(binds),
		func(stage Stage, path string) (shaderObject, error) {
			return l.shaderFromFile(stage, path, "", nil)
		})
}

// LoadText is ProgFromText returning the failure instead of logging it.
func (l *Loader) LoadText(name, vertText, fragText string, binds ...AttrBind) (uint32, error) {
	return l.assemble(name, vertText, fragText, normalizeBinds(binds),
		func(stage Stage, text string) (shaderObject, error) {
			return l.shaderFromText(stage, text, "")
		})
}

// assemble compiles the present stages with load and links them.
func (l *Loader) assemble(name, vertSrc, fragSrc string, binds []AttrBind,
	load func(Stage, string) (shaderObject, error)) (uint32, error) {
	var vert, frag shaderObject
	defer vert.Delete()
	defer frag.Delete()

	var err error
	if vertSrc != "" {
		if vert, err = load(StageVertex, vertSrc); err != nil {
			return 0, err
		}
	}
	if fragSrc != "" {
		if frag, err = load(StageFragment, fragSrc); err != nil {
			return 0, err
		}
	}
	return l.link(name, &vert, &frag, binds)
}

// LoadInfo is ProgFromInfo returning the failure instead of logging it.
//
// A nil info, an info with neither stage, or a stage with both or neither
// of Filename and GLSL set panics.
func (l *Loader) LoadInfo(dir string, info *ProgInfo) (uint32, error) {
	if info == nil || (info.Vert == nil && info.Frag == nil) {
		contractf("program description has no shader stage")
	}

	var vert, frag shaderObject
	defer vert.Delete()
	defer frag.Delete()

	var err error
	if info.Vert != nil {
		if vert, err = l.shaderFromInfo(StageVertex, dir, info.Name, info.Vert); err != nil {
			return 0, err
		}
	}
	if info.Frag != nil {
		if frag, err = l.shaderFromInfo(StageFragment, dir, info.Name, info.Frag); err != nil {
			return 0, err
		}
	}
	return l.link(info.Name, &vert, &frag, normalizeBinds(info.AttrBinds))
}

// shaderFromInfo loads one stage of a program description. Inline GLSL is
// tagged with the program name in diagnostics.
func (l *Loader) shaderFromInfo(stage Stage, dir, progName string, si *ShaderInfo) (shaderObject, error) {
	switch {
	case si.Filename != "" && si.GLSL != "":
		contractf("program %s %v shader sets both Filename and GLSL", progName, stage)
	case si.Filename != "":
		return l.shaderFromFile(stage, filepath.Join(dir, si.Filename), si.EntryPoint, si.SpecConsts)
	case si.GLSL != "":
		return l.shaderFromText(stage, si.GLSL, progName)
	}
	contractf("program %s %v shader sets neither Filename nor GLSL", progName, stage)
	return shaderObject{}, nil
}

// logFailure logs err, if any, and returns the handle to report.
func (l *Loader) logFailure(name string, prog uint32, err error) uint32 {
	if err != nil {
		l.logger().Error(msgBuildFailed, "program", name, "err", err)
		return 0
	}
	return prog
}
