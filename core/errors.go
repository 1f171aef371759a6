package core

import (
	"errors"
	"fmt"
	"os"
)

// General error codes
const (
	NOERROR       int = 0
	EMISSING      int = 122 // resource does not exist
	EINVALID      int = 123 // validation failed
	EINTERNAL     int = 125 // internal error
	EEMPTY        int = 130 // data source has no content
	EFORMAT       int = 131 // data source is malformed
	ECONFIG       int = 132 // inconsistent or incomplete configuration
	EINSUFFICIENT int = 133 // not enough distinct words for a draw
	ENOWORDS      int = 134 // filtering left no words
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	case EEMPTY:
		return "empty vocabulary"
	case EFORMAT:
		return "vocabulary format error"
	case ECONFIG:
		return "configuration error"
	case EINSUFFICIENT:
		return "insufficient vocabulary"
	case ENOWORDS:
		return "no words available"
	}
	return "undefined error"
}

// Sentinel errors of the vocabulary and filter layers. They are wrapped into
// an AppError carrying an error code, so clients may test either with
// errors.Is or with Code.
var (
	ErrVocabEmpty             = errors.New("vocabulary data source is empty")
	ErrVocabFormat            = errors.New("vocabulary data is formatted incorrectly")
	ErrConfiguration          = errors.New("configuration error")
	ErrInsufficientVocabulary = errors.New("vocabulary has fewer words than requested")
	ErrNoWords                = errors.New("no words available with specified parameters")
)

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	if e.msg == "" || e.msg == errorText(e.code) {
		return fmt.Sprintf("[%d] %v", e.code, e.error)
	}
	return fmt.Sprintf("[%d] %v: %s", e.code, e.error, e.msg)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting the code's default text is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks StatusCode and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// UserError prints an error to stderr, preferring its user message.
func UserError(err error) {
	if e := AppError(nil); errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
