package selkit

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeDuplicatePart    = "duplicate_part"
	CodeOutOfOrderPart   = "out_of_order_part"
	CodeCombinedSelector = "combined_selector"
	CodeUnknownCategory  = "unknown_category"
	// Serialization
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeUnknownType  = "unknown_type"
	CodeTooBig       = "too_big"
	CodeTruncated    = "truncated"
)

// Sentinel causes carried by issues. Match them with errors.Is.
var (
	ErrDuplicateSelectorPart  = errors.New("selkit: duplicate selector part")
	ErrOutOfOrderSelectorPart = errors.New("selkit: out of order selector part")
	ErrCombinedSelector       = errors.New("selkit: combined selector is sealed")
	ErrUnknownCategory        = errors.New("selkit: unknown selector category")
	ErrParse                  = errors.New("selkit: parse error")
	ErrUnknownType            = errors.New("selkit: unknown type")
)

// Issue represents a single failure entry.
type Issue struct {
	Path    string // JSON Pointer for decoded input, or the part index for selectors (for example: /2).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"part":"#main"}) for i18n
	// and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is can match the sentinels above.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
