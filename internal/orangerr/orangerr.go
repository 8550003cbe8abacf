// Package orangerr defines Orang's structured error type. Commands use it to
// communicate a specific process exit code back to main, and the traversal
// and content engines use it to classify per-path failures as reported
// (counted, logged, non-fatal) versus fatal (abort the command). It carries
// a Kind field for a richer error taxonomy than a single generic error type.
package orangerr

import "fmt"

// ExitCode is the process exit code returned to the shell: 0
// success-with-matches, 1 success-no-matches, 2 any failure.
type ExitCode int

const (
	ExitSuccess   ExitCode = 0
	ExitNoMatches ExitCode = 1
	ExitFailure   ExitCode = 2
)

// Kind classifies an Error.
type Kind int

const (
	KindIO Kind = iota
	KindEncoding
	KindRegex
	KindRenameConflict
	KindOptionParse
	KindUnknownEnum
	KindCanceled
	KindMaxReached
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "IoError"
	case KindEncoding:
		return "EncodingError"
	case KindRegex:
		return "RegexError"
	case KindRenameConflict:
		return "RenameConflict"
	case KindOptionParse:
		return "OptionParseError"
	case KindUnknownEnum:
		return "UnknownEnumValue"
	case KindCanceled:
		return "Canceled"
	case KindMaxReached:
		return "MaxReached"
	default:
		return "Error"
	}
}

// Cause further classifies IO errors reported through the IoError(path,
// cause) shape.
type Cause int

const (
	CauseNone Cause = iota
	CauseNotFound
	CausePermissionDenied
	CauseReadFailed
	CauseWriteFailed
	CauseAlreadyExists
)

// Error is Orang's structured error type. It implements error and supports
// errors.Is/errors.As via Unwrap.
type Error struct {
	Kind    Kind
	Cause   Cause
	Path    string
	Message string
	Err     error
	Code    ExitCode
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// IO builds an IoError for the given path and underlying cause. These are
// the per-path errors that must be caught, counted, and logged rather than
// aborting the traversal.
func IO(path string, cause Cause, err error) *Error {
	return &Error{Kind: KindIO, Cause: cause, Path: path, Err: err, Code: ExitFailure}
}

// Encoding builds an EncodingError for path, non-fatal like IO.
func Encoding(path string, err error) *Error {
	return &Error{Kind: KindEncoding, Path: path, Err: err, Code: ExitFailure}
}

// Regex builds a fatal RegexError: pattern compilation failures abort the
// command immediately.
func Regex(pattern string, err error) *Error {
	return &Error{Kind: KindRegex, Message: fmt.Sprintf("invalid pattern %q", pattern), Err: err, Code: ExitFailure}
}

// RenameConflict builds a RenameConflict error for a destination path that
// already exists under a distinct inode.
func RenameConflict(path string) *Error {
	return &Error{Kind: KindRenameConflict, Path: path, Message: "destination already exists", Code: ExitFailure}
}

// OptionParse builds a fatal OptionParseError.
func OptionParse(msg string) *Error {
	return &Error{Kind: KindOptionParse, Message: msg, Code: ExitFailure}
}

// UnknownEnum builds a fatal UnknownEnumValue error.
func UnknownEnum(flag, value string) *Error {
	return &Error{Kind: KindUnknownEnum, Message: fmt.Sprintf("%s: unknown value %q", flag, value), Code: ExitFailure}
}

// Canceled builds the sentinel error reported when a command is aborted via
// cancellation (including a DialogResult.None response to an Ask prompt).
func Canceled() *Error {
	return &Error{Kind: KindCanceled, Message: "canceled", Code: ExitFailure}
}

// CodeOf extracts the process exit code from err. nil maps to ExitSuccess;
// any *Error yields its Code; any other non-nil error maps to ExitFailure.
func CodeOf(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	if oe, ok := err.(*Error); ok {
		return oe.Code
	}
	return ExitFailure
}
