// Package loader turns an IPPcode20 XML document into an ordered list of
// raw instructions and their raw (type, text) operand pairs. It validates
// structure only; it does not know about opcodes, operand kinds, or value
// casting — that belongs to the Value & Operand model and the executor
// (lang/machine), which bind a loaded program before running it.
package loader

import "fmt"

// Exit codes for the structural failure classes the loader can raise:
// malformed XML versus a well-formed document that breaks a schema rule.
const (
	ExitMalformedXML = 31
	ExitInvalidInput = 32
)

// LoadError is any error raised while reading or validating the source XML.
type LoadError struct {
	Code int
	msg  string
}

func (e *LoadError) Error() string { return e.msg }

// ExitCode satisfies the exit-code-carrying error convention shared with
// machine.RuntimeError.
func (e *LoadError) ExitCode() int { return e.Code }

func errMalformed(format string, args ...interface{}) error {
	return &LoadError{Code: ExitMalformedXML, msg: fmt.Sprintf(format, args...)}
}

func errInvalid(format string, args ...interface{}) error {
	return &LoadError{Code: ExitInvalidInput, msg: fmt.Sprintf(format, args...)}
}
