package engine

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// DuplicateStrictness controls duplicate key handling in detection helpers.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code string
	Path string
	Key  string
}

// ErrSyntax wraps tokenizer failures so callers can tell malformed input
// apart from duplicate keys.
var ErrSyntax = errors.New("engine: syntax error")

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	key          string // current key (objects) used to build paths
	index        int    // next element index (arrays)
}

// DetectJSONDuplicateKeysBytes detects duplicate object keys from a JSON byte slice.
// If onDup is DupIgnore, no issues are produced. maxIssues < 0 means unlimited; 0 means disabled; >0 sets limit.
// With DupError detection stops at the first duplicate.
func DetectJSONDuplicateKeysBytes(data []byte, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	if onDup == DupIgnore {
		return nil, nil
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return detect(dec, onDup, maxIssues)
}

func detect(dec *j.Decoder, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	var issues []SimpleIssue
	var stack []frame

	appendIssue := func(i SimpleIssue) bool {
		if maxIssues == 0 {
			return false
		}
		issues = append(issues, i)
		if maxIssues > 0 && len(issues) >= maxIssues {
			issues = append(issues, SimpleIssue{Code: "truncated", Path: "/"})
			return true
		}
		return false
	}

	// valueDone flips the parent object back to expecting a key, or advances
	// the parent array index.
	valueDone := func() {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			switch top.kind {
			case kindObject:
				top.expectingKey = true
			case kindArray:
				top.index++
			}
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return issues, errors.Join(ErrSyntax, io.ErrUnexpectedEOF)
			}
			break
		}
		if err != nil {
			return issues, errors.Join(ErrSyntax, err)
		}

		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true})
			case '[':
				stack = append(stack, frame{kind: kindArray})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 {
				top := &stack[n-1]
				if top.kind == kindObject && top.expectingKey {
					top.expectingKey = false
					top.key = v
					if _, ok := top.keys[v]; ok {
						if appendIssue(SimpleIssue{Code: "duplicate_key", Path: pointer(stack), Key: v}) {
							return issues, nil
						}
						if onDup == DupError {
							return issues, nil
						}
					}
					top.keys[v] = struct{}{}
					continue
				}
			}
			valueDone()
		default:
			valueDone()
		}
	}

	return issues, nil
}

// pointer renders the JSON Pointer of the current position.
func pointer(stack []frame) string {
	var b strings.Builder
	for _, f := range stack {
		b.WriteByte('/')
		if f.kind == kindObject {
			b.WriteString(escape(f.key))
		} else {
			b.WriteString(strconv.Itoa(f.index))
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
