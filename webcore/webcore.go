/*
File    : vexel/webcore/webcore.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package webcore is the thin surface the core exposes to a (not-yet-
written) HTTP route server, per spec.md §1's explicit scope boundary:
"the core only needs to expose: evaluate-a-file-to-final-environment,
look-up-global-by-name, and invoke-function-by-name-with-args." Serving
HTTP requests, scanning a route directory, and dispatching by method
are all out of scope here -- this package only adapts the evaluator to
those three calls.
*/
package webcore

import (
	"os"

	"github.com/stuncs69/vexel/eval"
	"github.com/stuncs69/vexel/objects"
	"github.com/stuncs69/vexel/parser"
	"github.com/stuncs69/vexel/vexerr"
)

// Route is one evaluated route script's final global environment,
// ready for the (external) server to read path/method/mime and invoke
// request.
type Route struct {
	File *objects.Module
	Eval *eval.Evaluator
}

// EvaluateFile loads and evaluates a single route script, returning its
// final top-level environment. The caller drives the module loader's
// own import-path canonicalization for anything the route imports.
func EvaluateFile(path string) (*Route, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, vexerr.NewImportError(path, 0, "cannot read route file %q: %v", path, err)
	}
	stmts, err := parser.ParseProgram(string(src), path)
	if err != nil {
		return nil, err
	}
	ev := eval.New()
	mod := objects.NewModule(path)
	if _, err := ev.EvalModule(stmts, mod); err != nil {
		return nil, err
	}
	return &Route{File: mod, Eval: ev}, nil
}

// Lookup resolves a top-level global by name (e.g. "path", "method",
// "mime") after EvaluateFile has run the route's body once.
func (r *Route) Lookup(name string) (objects.Value, bool) {
	v, ok := r.File.Globals[name]
	return v, ok
}

// LookupString is a convenience wrapper for the string-valued globals
// (`path`, `method`, `mime`) a route script is expected to define.
func (r *Route) LookupString(name string) (string, bool) {
	v, ok := r.Lookup(name)
	if !ok {
		return "", false
	}
	s, ok := v.(*objects.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// Invoke calls a named function declared in the route's module (most
// commonly `request`) with the given arguments, e.g. captured route
// segments from the caller's path matching.
func (r *Route) Invoke(name string, args []objects.Value) (objects.Value, error) {
	fn, ok := r.File.Functions[name]
	if !ok {
		return nil, vexerr.NewRuntimeError(r.File.Path, 0, "route does not define function '%s'", name)
	}
	return r.Eval.CallFunction(fn, args)
}
