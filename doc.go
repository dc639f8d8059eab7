// Package glshader loads, compiles, specializes and links OpenGL shader
// programs, falling back from SPIR-V binaries to GLSL text when the active
// driver cannot consume SPIR-V.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glshader"
//	    "github.com/gogpu/glshader/gldriver"
//	)
//
//	// After creating a GL context and calling gl.Init on this thread:
//	ld := glshader.NewLoader(gldriver.New())
//	prog := ld.ProgFromFile("sprite", "sprite.vert", "sprite.frag",
//	    glshader.Bind("pos", 0), glshader.Bind("uv", 1))
//	if prog == 0 {
//	    // do not render with this program; the cause was logged
//	}
//
// # Delivery formats
//
// A shader path ending in ".spv" is a SPIR-V module. It is loaded with
// glShaderBinary and specialized with glSpecializeShader using an entry
// point (default "main") and optional specialization constants. When the
// driver lacks SPIR-V support the loader looks next to the module for a
// GLSL file with the extension replaced by ".vert" or ".frag" (matching the
// stage), then ".glsl", and compiles that instead. Every other path is
// compiled as GLSL text.
//
// # Program descriptions
//
// ProgInfo describes a program declaratively, mixing file and inline
// stages:
//
//	prog := ld.ProgFromInfo(shaderDir, &glshader.ProgInfo{
//	    Name: "terrain",
//	    Vert: &glshader.ShaderInfo{Filename: "terrain.vert.spv",
//	        SpecConsts: []glshader.SpecConst{{Index: 0, Value: 4}}},
//	    Frag: &glshader.ShaderInfo{Filename: "terrain.frag.spv"},
//	    AttrBinds: []glshader.AttrBind{{Name: "vtx_pos", Index: 0}},
//	})
//
// # Ownership
//
// Shader objects are always consumed by linking: on success they are
// detached and deleted, on failure they are deleted. No driver object
// survives a failed call. A returned program belongs to the caller.
//
// # Errors
//
// ProgFromFile, ProgFromText and ProgFromInfo return 0 on failure and log
// the cause; LoadFile, LoadText and LoadInfo return it as an error wrapping
// one of the Err* kinds. API misuse (an unknown Stage, a ProgInfo without
// stages, attribute bindings without a vertex shader) panics with an error
// wrapping ErrContract.
//
// # Threading
//
// GL objects belong to the context current on the calling thread. A Loader
// must only be used from that thread.
package glshader
