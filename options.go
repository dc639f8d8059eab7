package glshader

import "log/slog"

// LoaderOption configures a Loader during creation.
//
// Example:
//
//	// Files from disk, package logger, SPIR-V when the driver has it
//	ld := glshader.NewLoader(drv)
//
//	// Embedded assets, always compile the GLSL fallbacks
//	ld := glshader.NewLoader(drv,
//	    glshader.WithFileSystem(glshader.FS(assets)),
//	    glshader.WithoutSPIRV())
type LoaderOption func(*loaderOptions)

// loaderOptions holds optional configuration for Loader creation.
type loaderOptions struct {
	fsys       FileSystem
	logger     *slog.Logger
	noSPIRV    bool
	entryPoint string
}

// defaultOptions returns the default loader options.
func defaultOptions() loaderOptions {
	return loaderOptions{
		fsys:       OSFileSystem{},
		logger:     nil, // package logger, resolved at log time
		entryPoint: "main",
	}
}

// WithFileSystem sets the file system shader paths are resolved against.
// The default is OSFileSystem.
func WithFileSystem(fsys FileSystem) LoaderOption {
	return func(o *loaderOptions) {
		if fsys != nil {
			o.fsys = fsys
		}
	}
}

// WithLogger sets a logger for this loader only. Without it the loader
// follows the package logger configured by SetLogger.
func WithLogger(l *slog.Logger) LoaderOption {
	return func(o *loaderOptions) {
		o.logger = l
	}
}

// WithoutSPIRV makes the loader treat the driver as lacking SPIR-V support,
// so every ".spv" shader resolves to its GLSL fallback.
// Useful for drivers that advertise SPIR-V but mis-specialize.
func WithoutSPIRV() LoaderOption {
	return func(o *loaderOptions) {
		o.noSPIRV = true
	}
}

// WithDefaultEntryPoint sets the SPIR-V entry point used when a shader
// does not name one. The default is "main".
func WithDefaultEntryPoint(name string) LoaderOption {
	return func(o *loaderOptions) {
		if name != "" {
			o.entryPoint = name
		}
	}
}
