package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"lifegrid/pkg/pattern"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// fileRoot mirrors the top-level blocks accepted in a configuration file.
type fileRoot struct {
	Grid     *gridBlock      `hcl:"grid,block"`
	Display  *displayBlock   `hcl:"display,block"`
	Random   *randomBlock    `hcl:"random,block"`
	Log      *logBlock       `hcl:"log,block"`
	Patterns []*patternBlock `hcl:"pattern,block"`
}

type gridBlock struct {
	Width  *int `hcl:"width,optional"`
	Height *int `hcl:"height,optional"`
}

type displayBlock struct {
	CellSize *int  `hcl:"cell_size,optional"`
	Rate     *int  `hcl:"generations_per_second,optional"`
	Paused   *bool `hcl:"paused,optional"`
}

type randomBlock struct {
	Seed    *int64   `hcl:"seed,optional"`
	Density *float64 `hcl:"density,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// patternBlock places a pattern read from a file or given inline. The offsets
// are kept as expressions until the board size is final.
type patternBlock struct {
	Name string         `hcl:"name,label"`
	File *string        `hcl:"file,optional"`
	Rows []string       `hcl:"rows,optional"`
	Top  hcl.Expression `hcl:"top,optional"`
	Left hcl.Expression `hcl:"left,optional"`
}

type fileConfig struct {
	dir      string
	patterns []*patternBlock
}

// Placement is a pattern positioned on the board.
type Placement struct {
	Name    string
	Pattern pattern.Pattern
	Top     int
	Left    int
}

// LoadFile reads the HCL file at path and applies every attribute it sets
// onto cfg. Pattern blocks are retained and resolved by Placements.
func LoadFile(path string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	if g := root.Grid; g != nil {
		setIf(&cfg.Width, g.Width)
		setIf(&cfg.Height, g.Height)
	}
	if d := root.Display; d != nil {
		setIf(&cfg.Scale, d.CellSize)
		setIf(&cfg.TPS, d.Rate)
		setIf(&cfg.Paused, d.Paused)
	}
	if r := root.Random; r != nil {
		setIf(&cfg.Seed, r.Seed)
		setIf(&cfg.Density, r.Density)
	}
	if l := root.Log; l != nil {
		setIf(&cfg.LogLevel, l.Level)
		setIf(&cfg.LogFormat, l.Format)
	}

	for _, p := range root.Patterns {
		if (p.File == nil) == (len(p.Rows) == 0) {
			return fmt.Errorf("%w: pattern %q in %s needs exactly one of file or rows", ErrInvalidConfig, p.Name, path)
		}
	}
	cfg.file = &fileConfig{dir: filepath.Dir(path), patterns: root.Patterns}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Placements loads every configured pattern: the file's pattern blocks in
// order, followed by the -pattern flag. Offsets in the file may refer to the
// final board dimensions as width and height.
func (c *Config) Placements() ([]Placement, error) {
	var out []Placement
	if c.file != nil {
		evalCtx := c.evalContext()
		for _, b := range c.file.patterns {
			pl, err := c.file.resolve(b, evalCtx)
			if err != nil {
				return nil, err
			}
			out = append(out, pl)
		}
	}
	if c.Pattern != "" {
		p, err := pattern.Load(c.Pattern)
		if err != nil {
			return nil, err
		}
		out = append(out, Placement{Name: filepath.Base(c.Pattern), Pattern: p, Top: c.PatternTop, Left: c.PatternLeft})
	}
	return out, nil
}

func (c *Config) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"width":  cty.NumberIntVal(int64(c.Width)),
			"height": cty.NumberIntVal(int64(c.Height)),
		},
		Functions: map[string]function.Function{
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
		},
	}
}

func (f *fileConfig) resolve(b *patternBlock, evalCtx *hcl.EvalContext) (Placement, error) {
	pl := Placement{Name: b.Name}

	var err error
	if b.File != nil {
		path := *b.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(f.dir, path)
		}
		pl.Pattern, err = pattern.Load(path)
	} else {
		pl.Pattern, err = pattern.Parse(strings.Join(b.Rows, "\n"))
	}
	if err != nil {
		return Placement{}, fmt.Errorf("pattern %q: %w", b.Name, err)
	}

	if pl.Top, err = evalOffset(b.Top, evalCtx); err != nil {
		return Placement{}, fmt.Errorf("pattern %q: top: %w", b.Name, err)
	}
	if pl.Left, err = evalOffset(b.Left, evalCtx); err != nil {
		return Placement{}, fmt.Errorf("pattern %q: left: %w", b.Name, err)
	}
	return pl, nil
}

// evalOffset evaluates an optional offset expression; a missing attribute is
// zero.
func evalOffset(expr hcl.Expression, evalCtx *hcl.EvalContext) (int, error) {
	if expr == nil {
		return 0, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return 0, nil
	}
	var n int
	if err := gocty.FromCtyValue(val, &n); err != nil {
		return 0, err
	}
	return n, nil
}
