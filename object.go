package glshader

// shaderObject owns one driver shader object. The zero value owns nothing.
//
// The stage that creates a shader defers Delete and calls take when it
// hands the object to its successor, so every exit path either transfers
// or deletes the object exactly once.
type shaderObject struct {
	drv Driver
	id  uint32
}

// valid reports whether the object is still owned.
func (s *shaderObject) valid() bool { return s.id != 0 }

// take transfers ownership to the caller. s is left empty and its
// deferred Delete becomes a no-op.
func (s *shaderObject) take() shaderObject {
	t := *s
	s.id = 0
	return t
}

// release transfers ownership out of the guard as a raw handle.
func (s *shaderObject) release() uint32 {
	return s.take().id
}

// Delete deletes the shader object if it is still owned.
func (s *shaderObject) Delete() {
	if s.id == 0 {
		return
	}
	s.drv.DeleteShader(s.id)
	s.id = 0
}

// programObject owns one driver program object.
type programObject struct {
	drv Driver
	id  uint32
}

func (p *programObject) release() uint32 {
	id := p.id
	p.id = 0
	return id
}

// Delete deletes the program object if it is still owned.
func (p *programObject) Delete() {
	if p.id == 0 {
		return
	}
	p.drv.DeleteProgram(p.id)
	p.id = 0
}
