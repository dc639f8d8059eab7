package glshader

// Loader compiles, specializes and links shader programs on one GL context.
//
// A Loader holds no mutable state after construction. Like the context it
// drives, it must only be used from the thread the context is current on.
type Loader struct {
	drv  Driver
	opts loaderOptions
}

// NewLoader returns a Loader issuing its GL calls through drv.
func NewLoader(drv Driver, opts ...LoaderOption) *Loader {
	if drv == nil {
		contractf("nil Driver")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Loader{drv: drv, opts: o}
}

// Driver returns the driver the loader was created with.
func (l *Loader) Driver() Driver {
	return l.drv
}

// SPIRVEnabled reports whether ".spv" shaders are loaded as SPIR-V rather
// than through their GLSL fallbacks.
func (l *Loader) SPIRVEnabled() bool {
	return !l.opts.noSPIRV && l.drv.SPIRVSupported()
}
