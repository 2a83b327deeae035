package field

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Definition pairs a field tag with its format and field names
type Definition struct {
	Tag    string `yaml:"-"`
	Format string `yaml:"format"`
	Names  string `yaml:"names"`
}

// Registry is an immutable table of field definitions keyed by tag
type Registry struct {
	defs map[string]Definition
}

// registryFile is the on-disk layout of a registry table
type registryFile struct {
	Fields map[string]Definition `yaml:"fields"`
}

// NewRegistry builds a registry. Tags must be unique and non-empty.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		if def.Tag == "" {
			return nil, fmt.Errorf("definition with format %q has no tag", def.Format)
		}
		if _, exists := r.defs[def.Tag]; exists {
			return nil, fmt.Errorf("duplicate definition for tag %s", def.Tag)
		}
		r.defs[def.Tag] = def
	}
	return r, nil
}

// DefaultRegistry returns the built-in table
func DefaultRegistry() *Registry {
	r, err := NewRegistry(builtinDefinitions...)
	if err != nil {
		panic(err)
	}
	return r
}

// LoadRegistry reads a YAML table of the form
//
//	fields:
//	  "98A":
//	    format: ":4!c//8!n"
//	    names: "(Qualifier)(Date)"
func LoadRegistry(r io.Reader) (*Registry, error) {
	var file registryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return NewRegistry()
		}
		return nil, fmt.Errorf("failed to decode registry: %w", err)
	}

	defs := make([]Definition, 0, len(file.Fields))
	for tag, def := range file.Fields {
		def.Tag = tag
		defs = append(defs, def)
	}
	return NewRegistry(defs...)
}

// LoadRegistryFile reads a registry table from path
func LoadRegistryFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	defer f.Close()

	reg, err := LoadRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Lookup returns the definition for tag
func (r *Registry) Lookup(tag string) (Definition, bool) {
	def, ok := r.defs[tag]
	return def, ok
}

// Tags returns every registered tag in sorted order
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.defs))
	for tag := range r.defs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Len returns the number of definitions
func (r *Registry) Len() int {
	return len(r.defs)
}
