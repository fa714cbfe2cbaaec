package core

import (
	"errors"
	"fmt"
	"io"
)

// Error codes. Codes travel with an error through wrapping and are
// recovered with Code.
const (
	NOERROR   int = 0
	EMISSING  int = 122 // font, preset or format does not exist
	EINVALID  int = 123 // malformed input data
	ECONTRACT int = 124 // caller broke a precondition
	EINTERNAL int = 125 // internal error
)

var codeText = map[int]string{
	NOERROR:   "OK",
	EMISSING:  "not found",
	EINVALID:  "invalid",
	ECONTRACT: "contract violation",
	EINTERNAL: "internal error",
}

func errorText(code int) string {
	if t, ok := codeText[code]; ok {
		return t
	}
	return "undefined error"
}

// AppError is an error carrying an error code and a message suitable for
// end users.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = coreError{}

func (e coreError) Error() string {
	if e.msg == "" || e.msg == e.cause.Error() {
		return fmt.Sprintf("[%d] %v", e.code, e.cause)
	}
	return fmt.Sprintf("[%d] %v: %s", e.code, e.cause, e.msg)
}

func (e coreError) Unwrap() error       { return e.cause }
func (e coreError) ErrorCode() int      { return e.code }
func (e coreError) UserMessage() string { return e.msg }

// Error creates an error with an error code and a user message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		cause: errors.New(errorText(code)),
		code:  code,
		msg:   fmt.Sprintf(format, v...),
	}
}

// WrapError attaches an error code and a user message to err. A nil err is
// replaced by an error stating the code's default text.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Code returns the error code found in err's chain: NOERROR for nil,
// EINTERNAL for errors without a code.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message found in err's chain, falling back
// to the text of err's code. For nil it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Assert panics with an ECONTRACT error if cond does not hold.
//
// Contract violations (out-of-bounds geometry, invalid memory handles) are
// not recoverable. Drawing past corrupted geometry has no meaningful
// continuation, so the current goroutine is halted.
func Assert(cond bool, format string, v ...interface{}) {
	if !cond {
		panic(Error(ECONTRACT, format, v...))
	}
}

// UserError reports err to w, one line, preferring its user message.
func UserError(w io.Writer, err error) {
	var e AppError
	if errors.As(err, &e) {
		fmt.Fprintf(w, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err.Error())
}
