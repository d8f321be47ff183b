package selector

import (
	"slices"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	selkit "github.com/reoring/selkit"
	"github.com/reoring/selkit/i18n"
)

// Combinators conventionally passed to Combine. Any string is accepted.
const (
	Descendant        = " "
	Child             = ">"
	NextSibling       = "+"
	SubsequentSibling = "~"
)

type part struct {
	cat   Category // categoryNone for combined text
	token string
	spec  Specificity
}

// Builder accumulates the parts of a selector. It is an immutable value:
// every method returns a new Builder and leaves the receiver untouched, so a
// failed append never corrupts the selector it was called on.
//
// The zero value is an empty selector ready for use.
type Builder struct {
	parts    []part
	err      error
	combined bool
}

// Append adds a part of the given category. Singleton categories (element,
// id, pseudo-element) are checked for uniqueness first, then the rank of the
// new part is checked against the previous one. On failure the returned
// Builder keeps the receiver's parts and carries the error; further appends
// on it are no-ops.
func (b Builder) Append(cat Category, name string) Builder {
	if b.err != nil {
		return b
	}
	at := len(b.parts)
	if !cat.valid() {
		return b.fail(selkit.CodeUnknownCategory, selkit.ErrUnknownCategory, at, map[string]any{"category": int(cat)})
	}
	token := cat.Render(name)
	params := map[string]any{"category": cat.String(), "part": token}
	if b.combined {
		return b.fail(selkit.CodeCombinedSelector, selkit.ErrCombinedSelector, at, params)
	}
	if cat.Singleton() && b.count(cat) > 0 {
		return b.fail(selkit.CodeDuplicatePart, selkit.ErrDuplicateSelectorPart, at, params)
	}
	if at > 0 && cat.Rank() > b.parts[at-1].cat.Rank() {
		return b.fail(selkit.CodeOutOfOrderPart, selkit.ErrOutOfOrderSelectorPart, at, params)
	}
	b.parts = append(slices.Clip(b.parts), part{cat: cat, token: token, spec: cat.specificity()})
	return b
}

func (b Builder) Element(name string) Builder       { return b.Append(CategoryElement, name) }
func (b Builder) ID(name string) Builder            { return b.Append(CategoryID, name) }
func (b Builder) Class(name string) Builder         { return b.Append(CategoryClass, name) }
func (b Builder) Attr(spec string) Builder          { return b.Append(CategoryAttribute, spec) }
func (b Builder) PseudoClass(name string) Builder   { return b.Append(CategoryPseudoClass, name) }
func (b Builder) PseudoElement(name string) Builder { return b.Append(CategoryPseudoElement, name) }

// Combine appends `left + " " + combinator + " " + right` as one opaque part.
// No order or uniqueness checks apply to the combined text. Errors carried by
// the receiver, left or right are aggregated into the result, and the result
// rejects any further compound parts.
func (b Builder) Combine(left Builder, combinator string, right Builder) Builder {
	text := left.String() + " " + combinator + " " + right.String()
	return Builder{
		parts:    append(slices.Clip(b.parts), part{token: text, spec: left.Specificity().Add(right.Specificity())}),
		err:      multierr.Combine(b.err, left.err, right.err),
		combined: true,
	}
}

// String concatenates the parts in append order with no separator.
func (b Builder) String() string {
	var sb strings.Builder
	for _, p := range b.parts {
		sb.WriteString(p.token)
	}
	return sb.String()
}

// Err returns the first append error, or the aggregated errors of combined
// selectors. It is nil for a valid selector.
func (b Builder) Err() error { return b.err }

// Build returns the selector text, or the error that invalidated it.
func (b Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}

// MustBuild is like Build but panics on error.
func (b Builder) MustBuild() string {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Parts returns the rendered tokens in append order.
func (b Builder) Parts() []string {
	out := make([]string, len(b.parts))
	for i, p := range b.parts {
		out[i] = p.token
	}
	return out
}

// Combined reports whether the selector was produced by Combine.
func (b Builder) Combined() bool { return b.combined }

// Specificity sums the specificity of every part, including the parts folded
// into combined text.
func (b Builder) Specificity() Specificity {
	var s Specificity
	for _, p := range b.parts {
		s = s.Add(p.spec)
	}
	return s
}

func (b Builder) count(cat Category) int {
	n := 0
	for _, p := range b.parts {
		if p.cat == cat {
			n++
		}
	}
	return n
}

func (b Builder) fail(code string, cause error, at int, params map[string]any) Builder {
	b.err = selkit.Issues{{
		Path:    "/" + strconv.Itoa(at),
		Code:    code,
		Message: i18n.T(code, stringParams(params)),
		Cause:   cause,
		Params:  params,
	}}
	return b
}

func stringParams(params map[string]any) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		switch x := v.(type) {
		case string:
			out[k] = x
		case int:
			out[k] = strconv.Itoa(x)
		}
	}
	return out
}
