package glshader

import (
	"encoding/binary"
	"fmt"
	"io/fs"
	"os"

	"github.com/gogpu/naga/spirv"
)

// FileSystem is the file access the loader needs to acquire shader sources.
type FileSystem interface {
	// ReadFile reads the whole named file.
	ReadFile(name string) ([]byte, error)
	// Stat describes the named file without reading it.
	Stat(name string) (fs.FileInfo, error)
}

// OSFileSystem resolves shader paths against the operating system.
type OSFileSystem struct{}

// ReadFile reads the named file with os.ReadFile.
func (OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// Stat describes the named file with os.Stat.
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// FS adapts an io/fs file system, such as an embed.FS, to FileSystem.
// Paths must then be unrooted slash-separated fs paths.
func FS(fsys fs.FS) FileSystem {
	return ioFS{fsys}
}

type ioFS struct{ fsys fs.FS }

func (f ioFS) ReadFile(name string) ([]byte, error)  { return fs.ReadFile(f.fsys, name) }
func (f ioFS) Stat(name string) (fs.FileInfo, error) { return fs.Stat(f.fsys, name) }

// readBinary reads a shader file as raw bytes.
func (l *Loader) readBinary(path string) ([]byte, error) {
	buf, err := l.opts.fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load shader %s: %w: %w", path, ErrRead, unwrapPathError(err))
	}
	return buf, nil
}

// readText reads a shader file as GLSL text.
func (l *Loader) readText(path string) (string, error) {
	buf, err := l.readBinary(path)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// isRegularFile reports whether path exists and is not a directory.
func (l *Loader) isRegularFile(path string) bool {
	fi, err := l.opts.fsys.Stat(path)
	return err == nil && !fi.IsDir()
}

// unwrapPathError strips the *fs.PathError wrapper so the diagnostic names
// the path once, followed by the underlying system error.
func unwrapPathError(err error) error {
	if pe, ok := err.(*fs.PathError); ok {
		return pe.Err
	}
	return err
}

// checkSPIRV validates the SPIR-V module header: the blob is a whole number
// of 32-bit words and begins with the SPIR-V magic number in either byte
// order.
func checkSPIRV(path string, code []byte) error {
	if len(code) < 4 || len(code)%4 != 0 {
		return loadError(path, ErrNotSPIRV, fmt.Sprintf("size %d is not a whole number of words", len(code)))
	}
	if binary.LittleEndian.Uint32(code) != spirv.MagicNumber &&
		binary.BigEndian.Uint32(code) != spirv.MagicNumber {
		return loadError(path, ErrNotSPIRV, fmt.Sprintf("bad magic 0x%08x", binary.LittleEndian.Uint32(code)))
	}
	return nil
}
