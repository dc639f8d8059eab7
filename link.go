package glshader

import "fmt"

// Link links the vertex and fragment shader objects into a program,
// binding the given vertex attributes to their array indices first.
// Either shader may be 0 when the program has no such stage. binds may
// end with a terminating empty binding; anything after it is ignored.
//
// Link always consumes both shaders: on success they are detached and
// deleted (the program keeps what it needs), on failure they are deleted.
// Callers must never delete them afterwards.
//
// Binding attributes without a vertex shader panics.
func (l *Loader) Link(name string, vert, frag uint32, binds []AttrBind) (uint32, error) {
	v := shaderObject{drv: l.drv, id: vert}
	f := shaderObject{drv: l.drv, id: frag}
	return l.link(name, &v, &f, binds)
}

// link takes ownership of vert and frag and links them into a program.
func (l *Loader) link(name string, vert, frag *shaderObject, binds []AttrBind) (uint32, error) {
	v, f := vert.take(), frag.take()
	defer v.Delete()
	defer f.Delete()

	for _, b := range binds {
		if b.Name == "" {
			break
		}
		if !v.valid() {
			contractf("program %s binds attribute %q without a vertex shader", name, b.Name)
		}
	}

	prog := programObject{drv: l.drv, id: l.drv.CreateProgram()}
	if prog.id == 0 {
		return 0, fmt.Errorf("failed to link GLSL program %s: %w: glCreateProgram failed with error 0x%x",
			name, ErrCreate, l.drv.GetError())
	}
	defer prog.Delete()

	if v.valid() {
		l.drv.AttachShader(prog.id, v.id)
	}
	if f.valid() {
		l.drv.AttachShader(prog.id, f.id)
	}
	for _, b := range binds {
		if b.Name == "" {
			break
		}
		l.drv.BindAttribLocation(prog.id, b.Index, b.Name)
	}

	l.drv.LinkProgram(prog.id)
	if !l.drv.ProgramLinkStatus(prog.id) {
		// Deleting the program first releases the attachments, so the
		// shaders are deleted without detaching.
		return 0, fmt.Errorf("failed to link GLSL program %s: %w: %s",
			name, ErrLink, l.drv.ProgramInfoLog(prog.id))
	}

	if v.valid() {
		l.drv.DetachShader(prog.id, v.id)
	}
	if f.valid() {
		l.drv.DetachShader(prog.id, f.id)
	}

	l.logger().Debug(msgLinked, "program", name, "handle", prog.id, "attributes", countBinds(binds))
	return prog.release(), nil
}

func countBinds(binds []AttrBind) int {
	n := 0
	for n < len(binds) && binds[n].Name != "" {
		n++
	}
	return n
}
