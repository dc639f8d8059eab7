// Package gltest provides an in-memory glshader.Driver for tests.
//
// The Driver models the GL object lifecycle closely enough to audit the
// loading pipeline: every shader and program it creates is tracked until
// deleted, and calls on unknown or already deleted objects are recorded as
// misuse instead of being silently accepted.
package gltest

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/glshader"
	"github.com/gogpu/naga/spirv"
)

// DefaultFailMarker makes GLSL source fail to compile when it contains it.
const DefaultFailMarker = "#error"

// Shader is the state of one shader object.
type Shader struct {
	ID       uint32
	Stage    glshader.Stage
	Source   string
	Binary   []byte
	Entry    string
	Indices  []uint32
	Values   []uint32
	Compiled bool
	InfoLog  string
	Deleted  bool
}

// Program is the state of one program object.
type Program struct {
	ID       uint32
	Attached []uint32
	// Linked lists the shaders that were attached when LinkProgram ran.
	Linked   []uint32
	Attribs  map[string]uint32
	LinkOK   bool
	InfoLog  string
	Deleted  bool
}

// Driver implements glshader.Driver in memory. The zero value is not
// usable; create one with NewDriver. A Driver is not safe for concurrent
// use, like the GL context it stands in for.
type Driver struct {
	// SPIRV is reported by SPIRVSupported.
	SPIRV bool

	// FailMarker makes GLSL compilation fail when the source contains it.
	FailMarker string

	// EntryPoints lists the SPIR-V entry points modules export.
	EntryPoints []string

	// FailCreateShader and FailCreateProgram make object creation return 0
	// and record ErrorCode for GetError.
	FailCreateShader  bool
	FailCreateProgram bool
	ErrorCode         uint32

	// LinkError, when non-empty, makes every link fail with this log.
	LinkError string

	next     uint32
	pending  uint32
	shaders  map[uint32]*Shader
	programs map[uint32]*Program
	misuse   []string
}

var _ glshader.Driver = (*Driver)(nil)

// NewDriver returns a driver with SPIR-V support enabled and a single
// "main" entry point.
func NewDriver() *Driver {
	return &Driver{
		SPIRV:       true,
		FailMarker:  DefaultFailMarker,
		EntryPoints: []string{"main"},
		ErrorCode:   0x0505, // GL_OUT_OF_MEMORY
		shaders:     make(map[uint32]*Shader),
		programs:    make(map[uint32]*Program),
	}
}

// SPIRVSupported reports whether the fake accepts SPIR-V shader binaries.
func (d *Driver) SPIRVSupported() bool { return d.SPIRV }

// GetError returns and clears the pending simulated error code.
func (d *Driver) GetError() uint32 {
	e := d.pending
	d.pending = 0
	return e
}

func (d *Driver) alloc() uint32 {
	d.next++
	return d.next
}

func (d *Driver) misusef(format string, args ...any) {
	d.misuse = append(d.misuse, fmt.Sprintf(format, args...))
}

func (d *Driver) shader(op string, id uint32) *Shader {
	sh, ok := d.shaders[id]
	if !ok || sh.Deleted {
		d.misusef("%s: invalid shader %d", op, id)
		return nil
	}
	return sh
}

func (d *Driver) program(op string, id uint32) *Program {
	p, ok := d.programs[id]
	if !ok || p.Deleted {
		d.misusef("%s: invalid program %d", op, id)
		return nil
	}
	return p
}

// CreateShader creates a shader object for stage, or returns 0.
func (d *Driver) CreateShader(stage glshader.Stage) uint32 {
	if !stage.Valid() {
		d.misusef("CreateShader: invalid stage %v", stage)
		d.pending = 0x0500 // GL_INVALID_ENUM
		return 0
	}
	if d.FailCreateShader {
		d.pending = d.ErrorCode
		return 0
	}
	id := d.alloc()
	d.shaders[id] = &Shader{ID: id, Stage: stage}
	return id
}

// ShaderSource replaces the GLSL source of shader.
func (d *Driver) ShaderSource(shader uint32, src string) {
	if sh := d.shader("ShaderSource", shader); sh != nil {
		sh.Source = src
	}
}

// CompileShader fails when the source contains FailMarker.
func (d *Driver) CompileShader(shader uint32) {
	sh := d.shader("CompileShader", shader)
	if sh == nil {
		return
	}
	if d.FailMarker != "" && strings.Contains(sh.Source, d.FailMarker) {
		sh.Compiled = false
		sh.InfoLog = "0:1(1): error: " + d.FailMarker + " directive"
		return
	}
	sh.Compiled = true
	sh.InfoLog = ""
}

// ShaderBinary loads a SPIR-V module into shader.
func (d *Driver) ShaderBinary(shader uint32, code []byte) {
	if sh := d.shader("ShaderBinary", shader); sh != nil {
		if !d.SPIRV {
			d.misusef("ShaderBinary: SPIR-V not supported")
		}
		sh.Binary = slices.Clone(code)
	}
}

// SpecializeShader records the constants and accepts modules with a SPIR-V
// header in either byte order that export entry.
func (d *Driver) SpecializeShader(shader uint32, entry string, indices, values []uint32) {
	sh := d.shader("SpecializeShader", shader)
	if sh == nil {
		return
	}
	if len(indices) != len(values) {
		d.misusef("SpecializeShader: %d indices, %d values", len(indices), len(values))
	}
	sh.Entry = entry
	sh.Indices = slices.Clone(indices)
	sh.Values = slices.Clone(values)
	switch {
	case !validMagic(sh.Binary):
		sh.Compiled = false
		sh.InfoLog = "invalid SPIR-V module"
	case !slices.Contains(d.EntryPoints, entry):
		sh.Compiled = false
		sh.InfoLog = fmt.Sprintf("entry point %q not found", entry)
	default:
		sh.Compiled = true
		sh.InfoLog = ""
	}
}

// validMagic reports whether code starts with the SPIR-V magic number in
// either byte order.
func validMagic(code []byte) bool {
	return len(code) >= 4 &&
		(binary.LittleEndian.Uint32(code) == spirv.MagicNumber ||
			binary.BigEndian.Uint32(code) == spirv.MagicNumber)
}

// ShaderCompileStatus reports whether shader compiled or specialized.
func (d *Driver) ShaderCompileStatus(shader uint32) bool {
	sh := d.shader("ShaderCompileStatus", shader)
	return sh != nil && sh.Compiled
}

// ShaderInfoLog returns the compile log of shader.
func (d *Driver) ShaderInfoLog(shader uint32) string {
	if sh := d.shader("ShaderInfoLog", shader); sh != nil {
		return sh.InfoLog
	}
	return ""
}

// DeleteShader marks shader deleted. Deleting it twice is recorded as misuse.
func (d *Driver) DeleteShader(shader uint32) {
	if sh := d.shader("DeleteShader", shader); sh != nil {
		sh.Deleted = true
	}
}

// CreateProgram creates a program object, or returns 0.
func (d *Driver) CreateProgram() uint32 {
	if d.FailCreateProgram {
		d.pending = d.ErrorCode
		return 0
	}
	id := d.alloc()
	d.programs[id] = &Program{ID: id, Attribs: make(map[string]uint32)}
	return id
}

// AttachShader attaches shader to program.
func (d *Driver) AttachShader(program, shader uint32) {
	p := d.program("AttachShader", program)
	sh := d.shader("AttachShader", shader)
	if p == nil || sh == nil {
		return
	}
	if slices.Contains(p.Attached, shader) {
		d.misusef("AttachShader: shader %d already attached to %d", shader, program)
		return
	}
	p.Attached = append(p.Attached, shader)
}

// DetachShader detaches shader from program.
func (d *Driver) DetachShader(program, shader uint32) {
	p := d.program("DetachShader", program)
	if p == nil {
		return
	}
	i := slices.Index(p.Attached, shader)
	if i < 0 {
		d.misusef("DetachShader: shader %d not attached to %d", shader, program)
		return
	}
	p.Attached = slices.Delete(p.Attached, i, i+1)
}

// BindAttribLocation binds the vertex attribute name to index before linking.
func (d *Driver) BindAttribLocation(program, index uint32, name string) {
	if p := d.program("BindAttribLocation", program); p != nil {
		p.Attribs[name] = index
	}
}

// LinkProgram fails with LinkError, when set, or if an attached shader did
// not compile.
func (d *Driver) LinkProgram(program uint32) {
	p := d.program("LinkProgram", program)
	if p == nil {
		return
	}
	p.Linked = slices.Clone(p.Attached)
	p.LinkOK, p.InfoLog = d.linkResult(p)
}

func (d *Driver) linkResult(p *Program) (bool, string) {
	if d.LinkError != "" {
		return false, d.LinkError
	}
	if len(p.Attached) == 0 {
		return false, "no shaders attached"
	}
	for _, id := range p.Attached {
		if sh := d.shaders[id]; !sh.Compiled {
			return false, fmt.Sprintf("%v shader %d not compiled", sh.Stage, id)
		}
	}
	return true, ""
}

// ProgramLinkStatus reports whether program linked.
func (d *Driver) ProgramLinkStatus(program uint32) bool {
	p := d.program("ProgramLinkStatus", program)
	return p != nil && p.LinkOK
}

// ProgramInfoLog returns the link log of program.
func (d *Driver) ProgramInfoLog(program uint32) string {
	if p := d.program("ProgramInfoLog", program); p != nil {
		return p.InfoLog
	}
	return ""
}

// DeleteProgram deletes program.
func (d *Driver) DeleteProgram(program uint32) {
	if p := d.program("DeleteProgram", program); p != nil {
		p.Deleted = true
		p.Attached = nil
	}
}

// Shader returns the state of shader id, or nil if it was never created.
func (d *Driver) Shader(id uint32) *Shader { return d.shaders[id] }

// Program returns the state of program id, or nil if it was never created.
func (d *Driver) Program(id uint32) *Program { return d.programs[id] }

// LiveShaders returns the shader objects not yet deleted, in creation order.
func (d *Driver) LiveShaders() []uint32 {
	var ids []uint32
	for id, sh := range d.shaders {
		if !sh.Deleted {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// LivePrograms returns the program objects not yet deleted, in creation
// order.
func (d *Driver) LivePrograms() []uint32 {
	var ids []uint32
	for id, p := range d.programs {
		if !p.Deleted {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// CreatedShaders returns how many shader objects were ever created.
func (d *Driver) CreatedShaders() int { return len(d.shaders) }

// Misuse returns the invalid calls recorded so far, such as operations on
// deleted objects or double deletes.
func (d *Driver) Misuse() []string { return slices.Clone(d.misuse) }
