package main

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	selkit "github.com/reoring/selkit"
	"github.com/reoring/selkit/codec"
	"github.com/reoring/selkit/document"
	"github.com/reoring/selkit/selector"
	"github.com/reoring/selkit/shape"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	File string `arg:"" type:"existingfile" help:"Selector document (.yaml, .yml or .json)"`
}

func (r *RenderCmd) Run(g *Global) error {
	g.Logger.Debug("Loading selector document", zap.String("file", r.File))
	doc, err := document.Load(r.File)
	if err != nil {
		return fmt.Errorf("load %s: %w", r.File, err)
	}
	out, err := doc.Render()
	for _, rd := range out {
		fmt.Fprintf(g.Out, "%s\t%s\t%s\n", rd.Name, rd.Selector, rd.Specificity)
	}
	if err != nil {
		failed := multierr.Errors(err)
		for _, e := range failed {
			g.Logger.Error("Selector rejected", zap.Error(e))
		}
		return fmt.Errorf("%d of %d selectors failed", len(failed), len(doc.Entries))
	}
	g.Logger.Debug("Rendered selectors", zap.Int("count", len(out)))
	return nil
}

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Parts []string `arg:"" help:"Parts as category=value, e.g. element=a class=btn pseudoClass=hover"`
}

func (b *BuildCmd) Run(g *Global) error {
	sel := selector.Builder{}
	for _, p := range b.Parts {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return fmt.Errorf("part %q: expected category=value", p)
		}
		cat, ok := selector.ParseCategory(key)
		if !ok {
			return fmt.Errorf("part %q: %w", p, selkit.ErrUnknownCategory)
		}
		sel = sel.Append(cat, value)
	}
	s, err := sel.Build()
	if err != nil {
		return err
	}
	fmt.Fprintln(g.Out, s)
	return nil
}

// RectCmd groups the rectangle codec commands.
type RectCmd struct {
	Encode RectEncodeCmd `cmd:"" help:"Serialize a rectangle"`
	Decode RectDecodeCmd `cmd:"" help:"Deserialize a rectangle and print its area"`
}

type RectEncodeCmd struct {
	Width  float64 `required:"" help:"Rectangle width"`
	Height float64 `required:"" help:"Rectangle height"`
	YAML   bool    `name:"yaml" help:"Emit YAML instead of JSON"`
}

func (r *RectEncodeCmd) Run(g *Global) error {
	rect := shape.New(r.Width, r.Height)
	var (
		s   string
		err error
	)
	if r.YAML {
		s, err = codec.SerializeYAML(rect)
	} else {
		s, err = codec.Serialize(rect)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(g.Out, strings.TrimRight(s, "\n"))
	return nil
}

type RectDecodeCmd struct {
	Text       string `arg:"" help:"Serialized rectangle"`
	YAML       bool   `name:"yaml" help:"Input is YAML"`
	Duplicates string `help:"Duplicate JSON key handling" enum:"ignore,warn,error" default:"error"`
}

func (r *RectDecodeCmd) Run(g *Global) error {
	sev, _ := selkit.ParseSeverity(r.Duplicates)
	reg := codec.NewRegistry(
		codec.WithStrictness(selkit.Strictness{OnDuplicateKey: sev}),
		codec.WithWarningHandler(func(typeID string, iss selkit.Issues) {
			for _, it := range iss {
				g.Logger.Warn("Decoded with warnings", zap.String("type", typeID), zap.String("path", it.Path), zap.String("message", it.Message))
			}
		}),
	)
	shape.Register(reg)

	var (
		v   any
		err error
	)
	if r.YAML {
		v, err = reg.DeserializeYAML(shape.TypeName, r.Text)
	} else {
		v, err = reg.Deserialize(shape.TypeName, r.Text)
	}
	if err != nil {
		return err
	}
	rect := v.(shape.Rectangle)
	fmt.Fprintf(g.Out, "width=%g height=%g area=%g\n", rect.Width, rect.Height, rect.Area())
	return nil
}
