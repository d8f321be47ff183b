package selkit

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// String returns the lower-case name used in configuration files and flags.
func (s Severity) String() string {
	switch s {
	case Ignore:
		return "ignore"
	case Warn:
		return "warn"
	case Error:
		return "error"
	}
	return "unknown"
}

// ParseSeverity maps "ignore", "warn" or "error" to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "ignore":
		return Ignore, true
	case "warn":
		return Warn, true
	case "error":
		return Error, true
	}
	return Ignore, false
}

// Strictness configures enforcement for duplicate keys in decoded input.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error (duplicate JSON keys).
}

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	Strictness Strictness
	MaxBytes   int64 // 0 means unlimited.
	MaxIssues  int   // Limit for reported warnings; <0 unlimited, 0 disabled.
}

// DefaultDecodeOpt rejects duplicate keys and leaves size unlimited.
func DefaultDecodeOpt() DecodeOpt {
	return DecodeOpt{
		Strictness: Strictness{OnDuplicateKey: Error},
		MaxIssues:  -1,
	}
}
