package argv

import "fmt"

// ErrorType represents classification error categories. These categories
// drive severity resolution and exit-code mapping.
type ErrorType string

const (
	ErrorTypeSeparatorAfterPositional     ErrorType = "separator_after_positional"
	ErrorTypePositionalAfterCommandOption ErrorType = "positional_after_command_option"
	ErrorTypeStorageExhausted             ErrorType = "storage_exhausted"
	ErrorTypeInternal                     ErrorType = "internal_error"
)

// ParseError is the error type produced by classification. Token carries the
// offending argument so messages can name it.
type ParseError struct {
	Type    ErrorType
	Message string
	Token   string
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewParseError creates a new ParseError with the given type and message.
func NewParseError(errType ErrorType, token, format string, a ...any) *ParseError {
	return &ParseError{
		Type:    errType,
		Token:   token,
		Message: fmt.Sprintf(format, a...),
	}
}

// Severity is the three-valued outcome of a classification: success, a user
// mistake the invoking user can fix, or an unrecoverable resource condition.
type Severity int

const (
	Ok Severity = iota
	UserError
	FatalError
)

func (s Severity) String() string {
	switch s {
	case Ok:
		return "ok"
	case UserError:
		return "user error"
	case FatalError:
		return "fatal error"
	default:
		return "unknown"
	}
}

// SeverityOf resolves an error returned by Classify to its severity class.
// A nil error is Ok. Non-ParseError errors are treated as fatal.
func SeverityOf(err error) Severity {
	if err == nil {
		return Ok
	}
	pe, ok := err.(*ParseError)
	if !ok {
		return FatalError
	}
	switch pe.Type {
	case ErrorTypeSeparatorAfterPositional, ErrorTypePositionalAfterCommandOption:
		return UserError
	case ErrorTypeStorageExhausted, ErrorTypeInternal:
		return FatalError
	default:
		return FatalError
	}
}

// Exit codes suggested for the three outcomes. Mapping results to process
// exit codes is ultimately the caller's business; these defaults follow the
// usual convention of 2 for command-line misuse.
const (
	ExitSuccess  = 0
	ExitFatal    = 1
	ExitMisusage = 2
)

// ExitCode maps a classification outcome to a process exit code.
func ExitCode(err error) int {
	switch SeverityOf(err) {
	case Ok:
		return ExitSuccess
	case UserError:
		return ExitMisusage
	default:
		return ExitFatal
	}
}
