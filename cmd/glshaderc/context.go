package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glContext is an invisible window whose OpenGL context is current on the
// main thread.
type glContext struct {
	window *glfw.Window
}

// newContext creates a hidden window with an OpenGL major.minor core
// profile context, makes it current and loads the GL entry points.
func newContext(major, minor int) (*glContext, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(1, 1, "glshaderc", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create OpenGL %d.%d context: %w", major, minor, err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("load OpenGL entry points: %w", err)
	}
	return &glContext{window: win}, nil
}

// Close destroys the window and terminates GLFW.
func (c *glContext) Close() {
	c.window.Destroy()
	glfw.Terminate()
}
