/*
File    : vexel/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements Vexel's tree-walking evaluator (spec §4.3):
// statement and expression dispatch, the module loader that backs
// `import`, and the built-in-function call boundary.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/stuncs69/vexel/ast"
	"github.com/stuncs69/vexel/channel"
	"github.com/stuncs69/vexel/objects"
	"github.com/stuncs69/vexel/scope"
	"github.com/stuncs69/vexel/std"
	"github.com/stuncs69/vexel/vexerr"
)

// Evaluator holds the process-wide state shared by every module a single
// run loads: the built-in registry, the channel subsystem threads share,
// and the module cache that backs import resolution.
type Evaluator struct {
	Builtins map[string]*std.Builtin
	Chan     *channel.Registry
	Loader   *ModuleLoader
	Out      io.Writer

	TestPasses   int
	TestFailures int
}

// New builds an Evaluator with the fixed built-in registry and the
// process-wide channel registry (channel.Default), writing program output
// to os.Stdout.
func New() *Evaluator {
	e := &Evaluator{
		Builtins: make(map[string]*std.Builtin, len(std.Builtins)),
		Chan:     channel.Default,
		Out:      os.Stdout,
	}
	for _, b := range std.Builtins {
		e.Builtins[b.Name] = b
	}
	e.Loader = NewModuleLoader(e)
	return e
}

// SetOutput redirects print() and test-report output, mainly for tests.
func (e *Evaluator) SetOutput(w io.Writer) {
	e.Out = w
}

// Channels implements std.Runtime.
func (e *Evaluator) Channels() *channel.Registry {
	return e.Chan
}

// CallFunction implements std.Runtime and lets collaborators outside the
// evaluator (the WebCore route invoker) call a module-resident function
// without reaching into evaluator internals.
func (e *Evaluator) CallFunction(fn *objects.Function, args []objects.Value) (objects.Value, error) {
	return e.callFunction(fn, args, 0)
}

// returnSignal unwinds a call stack back to the nearest function-call
// boundary. It satisfies the error interface purely so it can travel
// through the same (value, error) return path as real failures.
type returnSignal struct {
	value objects.Value
}

func (r *returnSignal) Error() string { return "return outside function" }

// EvalModule runs stmts as the top-level program of mod and returns the
// value of the last statement (used by the REPL to echo bare
// expressions).
func (e *Evaluator) EvalModule(stmts []ast.Statement, mod *objects.Module) (objects.Value, error) {
	env := scope.NewModuleEnvironment(mod)
	return e.evalStatements(stmts, mod, env)
}

// evalStatements runs stmts in order against env, propagating the first
// error and turning an escaped return into a RuntimeError -- `return` is
// only meaningful inside a function call (spec §4.3).
func (e *Evaluator) evalStatements(stmts []ast.Statement, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	var result objects.Value = objects.NullValue
	for _, stmt := range stmts {
		v, err := e.evalStatement(stmt, mod, env)
		if err != nil {
			if _, ok := err.(*returnSignal); ok {
				return nil, vexerr.NewRuntimeError(mod.Path, lineOf(stmt), "'return' used outside of a function")
			}
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalBlock is like evalStatements but lets a *returnSignal propagate
// unchanged -- used for the bodies of if/while/for-in and functions,
// where an inner return must keep unwinding to the call boundary.
func (e *Evaluator) evalBlock(stmts []ast.Statement, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	var result objects.Value = objects.NullValue
	for _, stmt := range stmts {
		v, err := e.evalStatement(stmt, mod, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func lineOf(stmt ast.Statement) int {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		return s.Line
	case *ast.PrintStmt:
		return s.Line
	case *ast.IfStmt:
		return s.Line
	case *ast.WhileStmt:
		return s.Line
	case *ast.ForInStmt:
		return s.Line
	case *ast.FunctionDefStmt:
		return s.Line
	case *ast.ReturnStmt:
		return s.Line
	case *ast.ImportStmt:
		return s.Line
	case *ast.TestStmt:
		return s.Line
	case *ast.ExpressionStmt:
		return s.Line
	default:
		return 0
	}
}

func (e *Evaluator) evalStatement(stmt ast.Statement, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		return e.evalAssign(s, mod, env)
	case *ast.PrintStmt:
		return e.evalPrint(s, mod, env)
	case *ast.IfStmt:
		return e.evalIf(s, mod, env)
	case *ast.WhileStmt:
		return e.evalWhile(s, mod, env)
	case *ast.ForInStmt:
		return e.evalForIn(s, mod, env)
	case *ast.FunctionDefStmt:
		return e.evalFunctionDef(s, mod)
	case *ast.ReturnStmt:
		return e.evalReturn(s, mod, env)
	case *ast.ImportStmt:
		return e.evalImport(s, mod, env)
	case *ast.TestStmt:
		return e.evalTest(s, mod)
	case *ast.ExpressionStmt:
		v, err := e.evalExpr(s.Expr, mod, env)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, vexerr.NewRuntimeError(mod.Path, 0, "unhandled statement type %T", stmt)
	}
}

func (e *Evaluator) evalPrint(s *ast.PrintStmt, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	v, err := e.evalExpr(s.Expr, mod, env)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(e.Out, renderForPrint(v))
	return v, nil
}

// renderForPrint uses the bracketed object_to_string-style form for
// compound values and the native form for primitives (spec §4.3).
func renderForPrint(v objects.Value) string {
	switch v.(type) {
	case *objects.Array, *objects.Object:
		return v.Inspect()
	default:
		return v.String()
	}
}

func (e *Evaluator) evalIf(s *ast.IfStmt, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	cond, err := e.evalExpr(s.Cond, mod, env)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(*objects.Boolean)
	if !ok {
		return nil, vexerr.NewRuntimeError(mod.Path, s.Line, "if condition must be a boolean, got %s", cond.Type())
	}
	if !b.Value {
		return objects.NullValue, nil
	}
	env.PushFrame()
	defer env.PopFrame()
	return e.evalBlock(s.Body, mod, env)
}

func (e *Evaluator) evalWhile(s *ast.WhileStmt, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	var result objects.Value = objects.NullValue
	for {
		cond, err := e.evalExpr(s.Cond, mod, env)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(*objects.Boolean)
		if !ok {
			return nil, vexerr.NewRuntimeError(mod.Path, s.Line, "while condition must be a boolean, got %s", cond.Type())
		}
		if !b.Value {
			return result, nil
		}
		env.PushFrame()
		result, err = e.evalBlock(s.Body, mod, env)
		env.PopFrame()
		if err != nil {
			return nil, err
		}
	}
}

func (e *Evaluator) evalForIn(s *ast.ForInStmt, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	iterable, err := e.evalExpr(s.Iterable, mod, env)
	if err != nil {
		return nil, err
	}
	var items []objects.Value
	switch it := iterable.(type) {
	case *objects.Array:
		items = it.Elements
	case *objects.Object:
		for _, k := range it.Keys {
			items = append(items, &objects.String{Value: k})
		}
	default:
		return nil, vexerr.NewRuntimeError(mod.Path, s.Line, "for-in target must be an array or object, got %s", iterable.Type())
	}

	var result objects.Value = objects.NullValue
	for _, item := range items {
		env.PushFrame()
		env.Define(s.Var, item)
		result, err = e.evalBlock(s.Body, mod, env)
		env.PopFrame()
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (e *Evaluator) evalFunctionDef(s *ast.FunctionDefStmt, mod *objects.Module) (objects.Value, error) {
	fn := &objects.Function{Name: s.Name, Params: s.Params, Body: s.Body, Module: mod}
	mod.Functions[s.Name] = fn
	if s.Exported {
		mod.Exported[s.Name] = true
	}
	return objects.NullValue, nil
}

func (e *Evaluator) evalReturn(s *ast.ReturnStmt, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	var v objects.Value = objects.NullValue
	if s.Expr != nil {
		var err error
		v, err = e.evalExpr(s.Expr, mod, env)
		if err != nil {
			return nil, err
		}
	}
	return nil, &returnSignal{value: v}
}

func (e *Evaluator) evalImport(s *ast.ImportStmt, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	snapshot, err := e.Loader.Load(s.Path, mod.Path)
	if err != nil {
		return nil, err
	}
	env.Define(s.Alias, snapshot)
	return objects.NullValue, nil
}

// evalTest runs a test block in an isolated environment (spec §4.3, §8:
// "Scope isolation") and reports pass/fail rather than aborting the rest
// of the program on the first failing assertion.
func (e *Evaluator) evalTest(s *ast.TestStmt, mod *objects.Module) (objects.Value, error) {
	testEnv := scope.NewTestEnvironment(mod)
	_, err := e.evalBlock(s.Body, testEnv.Module, testEnv)
	if err != nil {
		if _, ok := err.(*returnSignal); ok {
			err = vexerr.NewRuntimeError(mod.Path, s.Line, "'return' is not allowed inside a test block")
		}
		fmt.Fprintf(e.Out, "%s %s: %s\n", color.RedString("FAIL"), s.Label, err.Error())
		e.TestFailures++
		return objects.NullValue, nil
	}
	fmt.Fprintf(e.Out, "%s %s\n", color.GreenString("PASS"), s.Label)
	e.TestPasses++
	return objects.NullValue, nil
}
