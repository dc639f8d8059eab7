// Package manifest reads program manifests: files listing the shader
// programs of an application in TOML, YAML or JSON, for batch validation.
//
// A TOML manifest looks like:
//
//	dir = "shaders"
//
//	[[program]]
//	name = "terrain"
//	attributes = [{ name = "vtx_pos", index = 0 }]
//	vertex = { file = "terrain.vert.spv", spec = [{ index = 0, value = 4 }] }
//	fragment = { file = "terrain.frag.spv" }
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/glshader"
)

// Format is a manifest encoding.
type Format int

const (
	TOML Format = iota
	YAML
	JSON
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf returns the format implied by a manifest file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return 0, fmt.Errorf("manifest %s: unknown format, want .toml, .yaml, .yml or .json", path)
}

// SpecConst is a specialization constant entry.
type SpecConst struct {
	Index uint32 `toml:"index" yaml:"index" json:"index"`
	Value uint32 `toml:"value" yaml:"value" json:"value"`
}

// Attr is a vertex attribute binding entry.
type Attr struct {
	Name  string `toml:"name" yaml:"name" json:"name"`
	Index uint32 `toml:"index" yaml:"index" json:"index"`
}

// Shader describes one stage. Exactly one of File and GLSL must be set.
type Shader struct {
	File  string      `toml:"file" yaml:"file" json:"file"`
	GLSL  string      `toml:"glsl" yaml:"glsl" json:"glsl"`
	Entry string      `toml:"entry" yaml:"entry" json:"entry"`
	Spec  []SpecConst `toml:"spec" yaml:"spec" json:"spec"`
}

// Program describes one shader program.
type Program struct {
	Name       string  `toml:"name" yaml:"name" json:"name"`
	Vertex     *Shader `toml:"vertex" yaml:"vertex" json:"vertex"`
	Fragment   *Shader `toml:"fragment" yaml:"fragment" json:"fragment"`
	Attributes []Attr  `toml:"attributes" yaml:"attributes" json:"attributes"`
}

// Manifest is a list of programs sharing a shader directory.
type Manifest struct {
	// Dir is the shader directory. A relative Dir is resolved against the
	// directory holding the manifest file.
	Dir      string    `toml:"dir" yaml:"dir" json:"dir"`
	Programs []Program `toml:"program" yaml:"program" json:"program"`
}

// Load reads and validates the manifest at path. Its format follows the
// file extension. A relative Dir is resolved against the manifest location.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	m, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	if !filepath.IsAbs(m.Dir) {
		m.Dir = filepath.Join(filepath.Dir(path), m.Dir)
	}
	return m, nil
}

// Decode parses and validates a manifest. Unknown fields are rejected.
func Decode(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	var err error
	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&m)
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&m)
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&m)
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %v: %w", format, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the invariants glshader enforces with panics, so that a
// bad manifest is reported instead of crashing the caller.
func (m *Manifest) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	for i, p := range m.Programs {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("program %d: missing name", i))
		} else if seen[p.Name] {
			errs = append(errs, fmt.Errorf("program %s: duplicate name", p.Name))
		}
		seen[p.Name] = true

		if p.Vertex == nil && p.Fragment == nil {
			errs = append(errs, fmt.Errorf("program %s: no vertex or fragment shader", p.Name))
		}
		if p.Vertex == nil && len(p.Attributes) > 0 {
			errs = append(errs, fmt.Errorf("program %s: attributes need a vertex shader", p.Name))
		}
		for _, a := range p.Attributes {
			if a.Name == "" {
				errs = append(errs, fmt.Errorf("program %s: attribute with empty name", p.Name))
			}
		}
		for _, st := range []struct {
			name string
			sh   *Shader
		}{{"vertex", p.Vertex}, {"fragment", p.Fragment}} {
			if st.sh != nil && (st.sh.File == "") == (st.sh.GLSL == "") {
				errs = append(errs, fmt.Errorf("program %s: %s shader needs exactly one of file and glsl", p.Name, st.name))
			}
		}
	}
	return errors.Join(errs...)
}

// Info converts p to a program description for glshader.
func (p *Program) Info() *glshader.ProgInfo {
	info := &glshader.ProgInfo{
		Name: p.Name,
		Vert: p.Vertex.info(),
		Frag: p.Fragment.info(),
	}
	for _, a := range p.Attributes {
		info.AttrBinds = append(info.AttrBinds, glshader.Bind(a.Name, a.Index))
	}
	return info
}

func (s *Shader) info() *glshader.ShaderInfo {
	if s == nil {
		return nil
	}
	si := &glshader.ShaderInfo{
		Filename:   s.File,
		GLSL:       s.GLSL,
		EntryPoint: s.Entry,
	}
	if len(s.Spec) > 0 {
		si.SpecConsts = make([]glshader.SpecConst, 0, len(s.Spec)+1)
		for _, c := range s.Spec {
			si.SpecConsts = append(si.SpecConsts, glshader.SpecConst{Index: c.Index, Value: c.Value})
		}
		si.SpecConsts = append(si.SpecConsts, glshader.SpecConst{IsLast: true})
	}
	return si
}
