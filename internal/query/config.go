// Package query evaluates batches of geometric queries read from a config
// file and renders the results.
package query

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

type Real = scalar.Real

// Shape kinds accepted in a config.
const (
	KindPoint   = "point"
	KindPlane   = "plane"
	KindLine    = "line"
	KindSegment = "segment"
	KindRay     = "ray"
	KindBox     = "box"
	KindSphere  = "sphere"
)

// Query operations.
const (
	OpDistance  = "distance"
	OpIntersect = "intersect"
	OpProject   = "project"
	OpContains  = "contains"
	OpRaycast   = "raycast"
)

// Report formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatXML  = "xml"
)

var (
	ErrUnknownKind   = errors.New("unknown shape kind")
	ErrUnknownOp     = errors.New("unknown query op")
	ErrUnknownShape  = errors.New("unknown shape")
	ErrUnknownFormat = errors.New("unknown format")
	ErrUnsupported   = errors.New("unsupported shape pair")
)

var parsers = map[string]func(string) (any, error){
	KindPoint:   wrapParse(geom.ParseVector3),
	KindPlane:   wrapParse(geom.ParsePlane),
	KindLine:    wrapParse(geom.ParseLine),
	KindSegment: wrapParse(geom.ParseLineSegment),
	KindRay:     wrapParse(geom.ParseRay),
	KindBox:     wrapParse(geom.ParseBoundingBox),
	KindSphere:  wrapParse(geom.ParseBoundingSphere),
}

func wrapParse[T any](parse func(string) (T, error)) func(string) (any, error) {
	return func(s string) (any, error) {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// ShapeCfg is a named shape in its whitespace-separated text form.
type ShapeCfg struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

// Shape is a parsed ShapeCfg; Value holds one of the geom value types.
type Shape struct {
	Name  string
	Kind  string
	Value any
}

// Build parses the shape text for its kind.
func (sc ShapeCfg) Build(name string) (Shape, error) {
	kind := strings.ToLower(strings.TrimSpace(sc.Kind))
	parse, ok := parsers[kind]
	if !ok {
		return Shape{}, errors.Wrapf(ErrUnknownKind, "shape %q: kind %q", name, sc.Kind)
	}
	v, err := parse(sc.Value)
	if err != nil {
		return Shape{}, errors.Wrapf(err, "shape %q", name)
	}
	return Shape{Name: name, Kind: kind, Value: v}, nil
}

// QueryCfg names an operation and its operands. Project reads "A onto B",
// contains reads "A contains B". Raycast casts ray A against every box.
type QueryCfg struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Op   string `json:"op" yaml:"op"`
	A    string `json:"a" yaml:"a"`
	B    string `json:"b,omitempty" yaml:"b,omitempty"`
	// Raycast only; zero means unbounded.
	MaxT Real `json:"maxT,omitempty" yaml:"maxT,omitempty"`
}

type Config struct {
	Format  string              `json:"format,omitempty" yaml:"format,omitempty"`
	Output  string              `json:"output,omitempty" yaml:"output,omitempty"`
	Workers int                 `json:"workers,omitempty" yaml:"workers,omitempty"`
	Shapes  map[string]ShapeCfg `json:"shapes" yaml:"shapes"`
	Queries []QueryCfg          `json:"queries" yaml:"queries"`
}

// LoadConfig reads a YAML (.yaml, .yml) or JSON (.json) config, fills in
// defaults and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "config %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return &cfg, nil
}

// Validate fills defaults and checks that every query refers to known
// shapes with a known op. Shape pairs an op cannot handle are reported by
// Run.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = FormatYAML
	}
	if !validFormat(c.Format) {
		return errors.Wrapf(ErrUnknownFormat, "%q", c.Format)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if _, err := c.BuildShapes(); err != nil {
		return err
	}
	for i := range c.Queries {
		q := &c.Queries[i]
		q.Op = strings.ToLower(strings.TrimSpace(q.Op))
		label := q.Name
		if label == "" {
			label = "#" + strconv.Itoa(i)
		}
		switch q.Op {
		case OpDistance, OpIntersect, OpProject, OpContains:
			if _, ok := c.Shapes[q.B]; !ok {
				return errors.Wrapf(ErrUnknownShape, "query %s: b %q", label, q.B)
			}
		case OpRaycast:
		default:
			return errors.Wrapf(ErrUnknownOp, "query %s: %q", label, q.Op)
		}
		if _, ok := c.Shapes[q.A]; !ok {
			return errors.Wrapf(ErrUnknownShape, "query %s: a %q", label, q.A)
		}
	}
	return nil
}

// BuildShapes parses every shape, in name order.
func (c *Config) BuildShapes() ([]Shape, error) {
	names := make([]string, 0, len(c.Shapes))
	for name := range c.Shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Shape, 0, len(names))
	for _, name := range names {
		s, err := c.Shapes[name].Build(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func validFormat(f string) bool {
	return f == FormatYAML || f == FormatJSON || f == FormatXML
}
