package glshader

import (
	"log/slog"
	"sync/atomic"
)

// Pipeline log events. Every record carries the shader path or program name
// it concerns, so one handler can follow a program from source to link.
//
//	level  message                                                attributes
//	Debug  glshader: compiled shader                              name, stage, shader
//	Debug  glshader: specialized SPIR-V shader                    name, stage, entry, constants, shader
//	Debug  glshader: using fallback shader                        shader, fallback
//	Debug  glshader: linked program                               program, handle, attributes
//	Info   glshader: SPIR-V not supported, falling back to GLSL   shader
//	Error  glshader: cannot build program                         program, err
//
// Only ProgFrom* log at Error; the Load* and Compile* variants return the
// failure to the caller instead.
const (
	msgCompiled    = "glshader: compiled shader"
	msgSpecialized = "glshader: specialized SPIR-V shader"
	msgFallbackTo  = "glshader: using fallback shader"
	msgLinked      = "glshader: linked program"
	msgNoSPIRV     = "glshader: SPIR-V not supported, falling back to GLSL"
	msgBuildFailed = "glshader: cannot build program"
)

// silent is the logger in effect until SetLogger installs another.
var silent = slog.New(slog.DiscardHandler)

// packageLogger is shared by every Loader created without WithLogger.
// SetLogger may race with loading on the GL thread, hence the atomic.
var packageLogger atomic.Pointer[slog.Logger]

func init() {
	packageLogger.Store(silent)
}

// SetLogger installs the logger used by every Loader that was not given
// its own with WithLogger, including loaders created before the call.
// Pass nil to silence glshader again, which is also the default.
//
//	glshader.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	packageLogger.Store(l)
}

// Logger returns the package logger. gldriver reports its context probe
// through it.
func Logger() *slog.Logger {
	return packageLogger.Load()
}

// logger resolves the loader's logger at log time, so a later SetLogger
// reaches loaders built without WithLogger.
func (l *Loader) logger() *slog.Logger {
	if l.opts.logger != nil {
		return l.opts.logger
	}
	return Logger()
}
