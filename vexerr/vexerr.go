/*
File    : vexel/vexerr/vexerr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package vexerr defines the fatal error kinds surfaced by every stage of
// the Vexel pipeline: LexError, ParseError, ImportError, and RuntimeError.
// Each carries the offending file and a best-effort line number, following
// the teacher's CreateError convention of attaching "[line:column]" style
// position prefixes sourced from the lexer/parser's current position.
package vexerr

import "fmt"

// Kind identifies which of the four fatal error categories an Error is.
type Kind string

const (
	Lex     Kind = "LexError"
	Parse   Kind = "ParseError"
	Import  Kind = "ImportError"
	Runtime Kind = "RuntimeError"
)

// Error is the concrete error value threaded through the whole pipeline.
// It satisfies the standard error interface so it composes with %w/errors.Is
// while still carrying the structured fields the CLI needs to format a
// one-line diagnostic (spec §6/§7).
type Error struct {
	Kind    Kind
	File    string
	Line    int
	Message string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", e.Kind, e.File, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.File, e.Message)
}

func New(kind Kind, file string, line int, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, File: file, Line: line, Message: fmt.Sprintf(format, a...)}
}

func NewLexError(file string, line int, format string, a ...interface{}) *Error {
	return New(Lex, file, line, format, a...)
}

func NewParseError(file string, line int, format string, a ...interface{}) *Error {
	return New(Parse, file, line, format, a...)
}

func NewImportError(file string, line int, format string, a ...interface{}) *Error {
	return New(Import, file, line, format, a...)
}

func NewRuntimeError(file string, line int, format string, a ...interface{}) *Error {
	return New(Runtime, file, line, format, a...)
}

// NativeFailure builds the fixed-template RuntimeError mandated for a
// built-in that signalled failure by returning no value (spec §4.4/§7).
func NativeFailure(file string, line int, name string) *Error {
	return NewRuntimeError(file, line, "Native function '%s' failed for provided arguments", name)
}
