// Package errors implements the four-entry error taxonomy from spec.md §7,
// grounded on the teacher's errors.go (an ErrorType enum plus an Error
// struct with paired String()/Error() methods), adapted from PHP's
// position-tagged syntax/lexical/semantic errors to the core's own
// Lex/Parse/Compile/Runtime kinds.
package errors

import "fmt"

// Kind distinguishes which stage of the pipeline raised the error.
type Kind int

const (
	LexErrorKind Kind = iota
	ParseErrorKind
	CompileErrorKind
	RuntimeErrorKind
)

func (k Kind) String() string {
	switch k {
	case LexErrorKind:
		return "lex error"
	case ParseErrorKind:
		return "parse error"
	case CompileErrorKind:
		return "compile error"
	case RuntimeErrorKind:
		return "runtime error"
	default:
		return "error"
	}
}

// Error is a typed error value carrying which pipeline stage produced it,
// so callers can errors.As a specific Kind while the REPL and `monkey run`
// still print every kind uniformly via Error().
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) String() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.String()
}

// LexError reports an illegal character. Non-fatal in the lexer itself
// (it's surfaced as an ILLEGAL token); the parser wraps the surrounding
// context into one of these when it gives up on a statement.
func LexError(format string, args ...interface{}) *Error {
	return &Error{Kind: LexErrorKind, Message: fmt.Sprintf(format, args...)}
}

// ParseError reports one accumulated parser failure: unexpected token,
// integer overflow, or a missing prefix parser.
func ParseError(format string, args ...interface{}) *Error {
	return &Error{Kind: ParseErrorKind, Message: fmt.Sprintf(format, args...)}
}

// CompileError reports an unresolved identifier, unsupported operator, or
// internal invariant violation. Fatal to the compile of that program.
func CompileError(format string, args ...interface{}) *Error {
	return &Error{Kind: CompileErrorKind, Message: fmt.Sprintf(format, args...)}
}

// RuntimeError reports a stack overflow, arithmetic type mismatch,
// division by zero, or read of an uninitialized global. Fatal to the run.
func RuntimeError(format string, args ...interface{}) *Error {
	return &Error{Kind: RuntimeErrorKind, Message: fmt.Sprintf(format, args...)}
}
