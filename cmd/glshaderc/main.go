// Command glshaderc builds every shader program listed in a manifest on a
// real OpenGL context and reports which ones fail to compile or link.
//
// Usage:
//
//	glshaderc -manifest shaders/programs.toml [-dir DIR] [-no-spirv] [-v]
//
// The exit status is 1 if any program failed and 2 on usage or context
// errors.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/gldriver"
	"github.com/gogpu/glshader/internal/batch"
	"github.com/gogpu/glshader/internal/manifest"
)

func init() {
	// GL contexts are bound to the OS thread that made them current.
	runtime.LockOSThread()
}

func main() {
	var (
		manifestPath = flag.String("manifest", "", "program manifest (.toml, .yaml, .yml or .json)")
		dir          = flag.String("dir", "", "shader directory, overrides the manifest's dir")
		noSPIRV      = flag.Bool("no-spirv", false, "load GLSL fallbacks even if the driver supports SPIR-V")
		major        = flag.Int("gl-major", 4, "OpenGL context major version")
		minor        = flag.Int("gl-minor", 6, "OpenGL context minor version")
		verbose      = flag.Bool("v", false, "log every pipeline step")
	)
	flag.Parse()

	if *manifestPath == "" {
		fmt.Fprintln(os.Stderr, "glshaderc: -manifest is required")
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	glshader.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	m, err := manifest.Load(*manifestPath)
	if err != nil {
		log.Printf("glshaderc: %v", err)
		os.Exit(2)
	}
	if *dir != "" {
		m.Dir = *dir
	}

	ctx, err := newContext(*major, *minor)
	if err != nil {
		log.Printf("glshaderc: %v", err)
		os.Exit(2)
	}

	drv := gldriver.New()
	opts := []glshader.LoaderOption{}
	if *noSPIRV {
		opts = append(opts, glshader.WithoutSPIRV())
	}
	ld := glshader.NewLoader(drv, opts...)

	vmaj, vmin := drv.Version()
	log.Printf("OpenGL %d.%d, SPIR-V %v, %d programs from %s", vmaj, vmin, ld.SPIRVEnabled(), len(m.Programs), *manifestPath)

	failed := batch.Report(os.Stdout, batch.Run(ld, m, false))
	ctx.Close()
	if failed > 0 {
		os.Exit(1)
	}
}
