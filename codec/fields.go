package codec

import (
	"sort"

	j "github.com/goccy/go-json"

	selkit "github.com/reoring/selkit"
	"github.com/reoring/selkit/i18n"
)

// Fields is the decoded top-level object handed to a DecodeFunc. Values come
// from either the JSON or the YAML decoder, so numbers may be json.Number,
// int or float64; the accessors hide that difference.
type Fields map[string]any

// Keys returns the field names in sorted order.
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key is present (even when null).
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Require fails with a required issue for each missing key.
func (f Fields) Require(keys ...string) error {
	var iss selkit.Issues
	for _, k := range keys {
		if !f.Has(k) {
			iss = selkit.AppendIssues(iss, fieldIssue(selkit.CodeRequired, k))
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// Float returns the numeric value stored under key.
func (f Fields) Float(key string) (float64, error) {
	v, ok := f[key]
	if !ok {
		return 0, selkit.Issues{fieldIssue(selkit.CodeRequired, key)}
	}
	switch n := v.(type) {
	case j.Number:
		x, err := n.Float64()
		if err != nil {
			iss := fieldIssue(selkit.CodeInvalidType, key)
			iss.Cause = err
			return 0, selkit.Issues{iss}
		}
		return x, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, selkit.Issues{fieldIssue(selkit.CodeInvalidType, key)}
}

// String returns the string value stored under key.
func (f Fields) String(key string) (string, error) {
	v, ok := f[key]
	if !ok {
		return "", selkit.Issues{fieldIssue(selkit.CodeRequired, key)}
	}
	s, ok := v.(string)
	if !ok {
		return "", selkit.Issues{fieldIssue(selkit.CodeInvalidType, key)}
	}
	return s, nil
}

func fieldIssue(code, key string) selkit.Issue {
	return selkit.Issue{
		Path:    "/" + key,
		Code:    code,
		Message: i18n.T(code, map[string]string{"key": key}),
		Params:  map[string]any{"key": key},
	}
}
