// Package document loads named selectors from YAML or JSON and renders them
// through the selector builder.
//
//	selectors:
//	  - name: image-link
//	    compound:
//	      - element: a
//	      - attr: 'href$=".png"'
//	      - pseudoClass: focus
//	  - name: data-table
//	    combine:
//	      left:  {compound: [{element: div}, {id: main}]}
//	      combinator: "+"
//	      right: {compound: [{element: table}, {id: data}]}
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	selkit "github.com/reoring/selkit"
	"github.com/reoring/selkit/i18n"
	eng "github.com/reoring/selkit/internal/engine"
	"github.com/reoring/selkit/internal/ir"
	"github.com/reoring/selkit/selector"
)

// Format names the encoding of a document.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	}
	return FormatYAML, false
}

// Document is a parsed, validated list of named selectors.
type Document struct {
	Entries []Entry
}

// Entry is one named selector.
type Entry struct {
	Name string
	node ir.Node
}

// Rendered is the output of a successfully built selector.
type Rendered struct {
	Name        string
	Selector    string
	Specificity selector.Specificity
}

type docWire struct {
	Selectors []entryWire `json:"selectors" yaml:"selectors"`
}

type entryWire struct {
	Name     string `json:"name" yaml:"name"`
	nodeWire `yaml:",inline"`
}

type nodeWire struct {
	Compound []map[string]string `json:"compound,omitempty" yaml:"compound,omitempty"`
	Combine  *combineWire        `json:"combine,omitempty" yaml:"combine,omitempty"`
}

type combineWire struct {
	Left       nodeWire `json:"left" yaml:"left"`
	Combinator string   `json:"combinator" yaml:"combinator"`
	Right      nodeWire `json:"right" yaml:"right"`
}

// Load reads and parses the file at path, choosing the format by extension
// (YAML when unknown).
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, _ := FormatFromPath(path)
	return Parse(data, f)
}

// Parse decodes and validates a document. Structural problems in every entry
// are collected into a single selkit.Issues.
func Parse(data []byte, f Format) (*Document, error) {
	var w docWire
	var err error
	switch f {
	case FormatJSON:
		// The YAML decoder rejects duplicate keys itself; JSON needs a scan.
		var dups []eng.SimpleIssue
		if dups, err = eng.DetectJSONDuplicateKeysBytes(data, eng.DupWarn, -1); err != nil {
			return nil, parseIssue(err)
		}
		if len(dups) > 0 {
			var iss selkit.Issues
			for _, d := range dups {
				iss = selkit.AppendIssues(iss, issueAt(d.Path, selkit.CodeDuplicateKey, d.Key))
			}
			return nil, iss
		}
		err = j.Unmarshal(data, &w)
	default:
		err = yaml.Unmarshal(data, &w)
	}
	if err != nil {
		return nil, parseIssue(err)
	}

	var iss selkit.Issues
	doc := &Document{}
	seen := map[string]struct{}{}
	for i, e := range w.Selectors {
		path := "/selectors/" + strconv.Itoa(i)
		if e.Name == "" {
			iss = selkit.AppendIssues(iss, issueAt(path+"/name", selkit.CodeRequired, "name"))
		} else if _, dup := seen[e.Name]; dup {
			iss = selkit.AppendIssues(iss, issueAt(path+"/name", selkit.CodeDuplicateKey, e.Name))
		}
		seen[e.Name] = struct{}{}
		n, nodeIss := lower(e.nodeWire, path)
		iss = selkit.AppendIssues(iss, nodeIss...)
		doc.Entries = append(doc.Entries, Entry{Name: e.Name, node: n})
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return doc, nil
}

func lower(w nodeWire, path string) (ir.Node, selkit.Issues) {
	switch {
	case w.Combine != nil && len(w.Compound) > 0:
		return nil, selkit.Issues{{Path: path, Code: selkit.CodeInvalidType, Message: "a selector is either compound or combine, not both"}}
	case w.Combine != nil:
		left, li := lower(w.Combine.Left, path+"/combine/left")
		right, ri := lower(w.Combine.Right, path+"/combine/right")
		iss := append(li, ri...)
		if len(iss) > 0 {
			return nil, iss
		}
		return &ir.Combined{Left: left, Combinator: w.Combine.Combinator, Right: right}, nil
	case len(w.Compound) > 0:
		var iss selkit.Issues
		c := &ir.Compound{}
		for i, m := range w.Compound {
			p := path + "/compound/" + strconv.Itoa(i)
			if len(m) != 1 {
				iss = selkit.AppendIssues(iss, selkit.Issue{Path: p, Code: selkit.CodeInvalidType, Message: "each compound part is a single category: value pair"})
				continue
			}
			for k, v := range m {
				if _, ok := selector.ParseCategory(k); !ok {
					iss = selkit.AppendIssues(iss, selkit.Issue{
						Path:    p + "/" + k,
						Code:    selkit.CodeUnknownCategory,
						Message: i18n.T(selkit.CodeUnknownCategory, map[string]string{"category": k}),
						Cause:   selkit.ErrUnknownCategory,
					})
					continue
				}
				c.Parts = append(c.Parts, ir.Part{Category: k, Value: v})
			}
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return c, nil
	}
	return nil, selkit.Issues{issueAt(path+"/compound", selkit.CodeRequired, "compound")}
}

func parseIssue(err error) selkit.Issues {
	return selkit.Issues{{
		Path:    "/",
		Code:    selkit.CodeParseError,
		Message: i18n.T(selkit.CodeParseError, nil) + ": " + err.Error(),
		Cause:   errors.Join(selkit.ErrParse, err),
	}}
}

func issueAt(path, code, key string) selkit.Issue {
	return selkit.Issue{Path: path, Code: code, Message: i18n.T(code, map[string]string{"key": key}), Params: map[string]any{"key": key}}
}

// Builder compiles the entry into a selector builder.
func (e Entry) Builder() selector.Builder { return compile(e.node) }

func compile(n ir.Node) selector.Builder {
	switch x := n.(type) {
	case *ir.Compound:
		b := selector.Builder{}
		for _, p := range x.Parts {
			cat, _ := selector.ParseCategory(p.Category)
			b = b.Append(cat, p.Value)
		}
		return b
	case *ir.Combined:
		return selector.Combine(compile(x.Left), x.Combinator, compile(x.Right))
	}
	return selector.Builder{}
}

// Depth returns how many combinators the entry nests.
func (e Entry) Depth() int {
	d := 0
	ir.Walk(e.node, func(n ir.Node) {
		if n.Kind() == ir.NodeCombined {
			d++
		}
	})
	return d
}

// Render builds every entry. Entries that fail are skipped; their errors are
// aggregated and each is prefixed with the entry name.
func (d *Document) Render() ([]Rendered, error) {
	var out []Rendered
	var errs error
	for _, e := range d.Entries {
		b := e.Builder()
		s, err := b.Build()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", e.Name, err))
			continue
		}
		out = append(out, Rendered{Name: e.Name, Selector: s, Specificity: b.Specificity()})
	}
	return out, errs
}
