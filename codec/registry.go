package codec

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	selkit "github.com/reoring/selkit"
	"github.com/reoring/selkit/i18n"
	eng "github.com/reoring/selkit/internal/engine"
)

// DecodeFunc constructs a value from decoded fields. Implementations look
// fields up by name, so the order of keys in the input never matters.
type DecodeFunc func(f Fields) (any, error)

// Option configures a Registry.
type Option func(*Registry)

// WithStrictness sets duplicate-key handling for JSON input.
func WithStrictness(s selkit.Strictness) Option {
	return func(r *Registry) { r.opt.Strictness = s }
}

// WithMaxBytes rejects inputs longer than n bytes. 0 disables the limit.
func WithMaxBytes(n int64) Option {
	return func(r *Registry) { r.opt.MaxBytes = n }
}

// WithMaxIssues caps the duplicate-key issues collected from one input. Once
// the cap is reached a truncated issue is appended. n < 0 means unlimited and
// 0 disables collection.
func WithMaxIssues(n int) Option {
	return func(r *Registry) { r.opt.MaxIssues = n }
}

// WithWarningHandler receives issues reported at Warn severity.
func WithWarningHandler(fn func(typeID string, iss selkit.Issues)) Option {
	return func(r *Registry) { r.onWarn = fn }
}

// Registry maps type identifiers to decoders. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]DecodeFunc
	opt      selkit.DecodeOpt
	onWarn   func(string, selkit.Issues)
}

// NewRegistry returns an empty registry. Duplicate JSON keys are rejected
// unless WithStrictness says otherwise.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{decoders: map[string]DecodeFunc{}, opt: selkit.DefaultDecodeOpt()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Register binds fn to typeID, replacing any previous decoder.
func (r *Registry) Register(typeID string, fn DecodeFunc) {
	if typeID == "" || fn == nil {
		panic("codec: Register requires a type id and a decoder")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[typeID] = fn
}

// Registered reports whether typeID has a decoder.
func (r *Registry) Registered(typeID string) bool {
	_, ok := r.lookup(typeID)
	return ok
}

// Types returns the registered type identifiers in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.decoders))
	for k := range r.decoders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Deserialize decodes a JSON object and hands its fields to the decoder
// registered for typeID.
func (r *Registry) Deserialize(typeID, text string) (any, error) {
	fn, err := r.prepare(typeID, text)
	if err != nil {
		return nil, err
	}
	data := []byte(text)
	mode := toEngineDup(r.opt.Strictness.OnDuplicateKey)
	dups, err := eng.DetectJSONDuplicateKeysBytes(data, mode, r.opt.MaxIssues)
	if err != nil {
		return nil, parseIssue(err)
	}
	if len(dups) > 0 {
		iss := fromEngineIssues(dups)
		if mode == eng.DupError {
			return nil, iss
		}
		if r.onWarn != nil {
			r.onWarn(typeID, iss)
		}
	}

	var m map[string]any
	if err := j.Unmarshal(data, &m); err != nil {
		return nil, parseIssue(err)
	}
	if m == nil {
		return nil, parseIssue(fmt.Errorf("expected an object"))
	}
	return fn(Fields(m))
}

// DeserializeYAML is Deserialize for a YAML mapping. Duplicate keys are
// always rejected by the YAML decoder.
func (r *Registry) DeserializeYAML(typeID, text string) (any, error) {
	fn, err := r.prepare(typeID, text)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal([]byte(text), &m); err != nil {
		return nil, parseIssue(err)
	}
	if m == nil {
		return nil, parseIssue(fmt.Errorf("expected a mapping"))
	}
	return fn(Fields(m))
}

// DeserializeAs decodes JSON text and asserts the decoder's result to T.
func DeserializeAs[T any](r *Registry, typeID, text string) (T, error) {
	var zero T
	v, err := r.Deserialize(typeID, text)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("codec: decoder for %q returned %T, want %T", typeID, v, zero)
	}
	return t, nil
}

func (r *Registry) lookup(typeID string) (DecodeFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.decoders[typeID]
	return fn, ok
}

func (r *Registry) prepare(typeID, text string) (DecodeFunc, error) {
	fn, ok := r.lookup(typeID)
	if !ok {
		return nil, selkit.Issues{{
			Path:    "/",
			Code:    selkit.CodeUnknownType,
			Message: i18n.T(selkit.CodeUnknownType, map[string]string{"type": typeID}),
			Cause:   selkit.ErrUnknownType,
			Params:  map[string]any{"type": typeID},
		}}
	}
	if r.opt.MaxBytes > 0 && int64(len(text)) > r.opt.MaxBytes {
		return nil, selkit.Issues{{
			Path:    "/",
			Code:    selkit.CodeTooBig,
			Message: i18n.T(selkit.CodeTooBig, nil),
			Params:  map[string]any{"max": r.opt.MaxBytes, "got": int64(len(text))},
		}}
	}
	return fn, nil
}

func parseIssue(err error) selkit.Issues {
	return selkit.Issues{{
		Path:    "/",
		Code:    selkit.CodeParseError,
		Message: i18n.T(selkit.CodeParseError, nil) + ": " + err.Error(),
		Cause:   errors.Join(selkit.ErrParse, err),
	}}
}

func toEngineDup(s selkit.Severity) eng.DuplicateStrictness {
	switch s {
	case selkit.Error:
		return eng.DupError
	case selkit.Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func fromEngineIssues(si []eng.SimpleIssue) selkit.Issues {
	var iss selkit.Issues
	for _, s := range si {
		data := map[string]string{"key": s.Key}
		iss = selkit.AppendIssues(iss, selkit.Issue{Code: s.Code, Path: s.Path, Message: i18n.T(s.Code, data)})
	}
	return iss
}
