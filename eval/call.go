/*
File    : vexel/eval/call.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/stuncs69/vexel/ast"
	"github.com/stuncs69/vexel/objects"
	"github.com/stuncs69/vexel/scope"
	"github.com/stuncs69/vexel/std"
	"github.com/stuncs69/vexel/vexerr"
)

// evalCall resolves and invokes a call expression. Per spec §4.3, name
// resolution for a bare-identifier callee tries, in order: (1) a
// function declared in the current module, then (2) a built-in. A
// dotted callee (`alias.func(...)`) resolves `alias` through the
// environment -- ordinarily an imported module's snapshot object -- and
// calls whatever Function value sits at the end of the property chain.
func (e *Evaluator) evalCall(c *ast.CallExpr, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	switch callee := c.Callee.(type) {
	case *ast.VarRefExpr:
		if fn, ok := mod.Functions[callee.Name]; ok {
			args, err := e.evalArgs(c.Args, mod, env)
			if err != nil {
				return nil, err
			}
			return e.callFunction(fn, args, c.Line)
		}
		if b, ok := e.Builtins[callee.Name]; ok {
			args, err := e.evalArgs(c.Args, mod, env)
			if err != nil {
				return nil, err
			}
			return e.callBuiltin(b, args, mod.Path, c.Line)
		}
		return nil, vexerr.NewRuntimeError(mod.Path, c.Line, "undefined function '%s'", callee.Name)
	case *ast.PropertyAccessExpr:
		val, err := e.evalPropertyAccess(callee, mod, env)
		if err != nil {
			return nil, err
		}
		fn, ok := val.(*objects.Function)
		if !ok {
			return nil, vexerr.NewRuntimeError(mod.Path, c.Line, "value is not callable")
		}
		args, err := e.evalArgs(c.Args, mod, env)
		if err != nil {
			return nil, err
		}
		return e.callFunction(fn, args, c.Line)
	default:
		return nil, vexerr.NewRuntimeError(mod.Path, c.Line, "expression is not callable")
	}
}

func (e *Evaluator) evalArgs(exprs []ast.Expression, mod *objects.Module, env *scope.Environment) ([]objects.Value, error) {
	args := make([]objects.Value, len(exprs))
	for i, arg := range exprs {
		v, err := e.evalExpr(arg, mod, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// callFunction runs fn's body against its own defining module (spec §9:
// functions only capture the module global environment in which they
// were defined, never the caller's locals) with a single fresh frame
// binding its parameters.
func (e *Evaluator) callFunction(fn *objects.Function, args []objects.Value, line int) (objects.Value, error) {
	callEnv, err := scope.NewCallEnvironment(fn, args)
	if err != nil {
		return nil, vexerr.NewRuntimeError(fn.Module.Path, line, "%s", err.Error())
	}
	result, err := e.evalBlock(fn.Body, fn.Module, callEnv)
	if err != nil {
		if rs, ok := err.(*returnSignal); ok {
			return rs.value, nil
		}
		return nil, err
	}
	return result, nil
}

// callBuiltin invokes a registered built-in. A false `ok` return converts
// to the fixed-template RuntimeError spec §4.4 mandates for every
// built-in failure, regardless of which built-in or argument shape
// triggered it.
func (e *Evaluator) callBuiltin(b *std.Builtin, args []objects.Value, file string, line int) (objects.Value, error) {
	result, ok := b.Callback(e, args)
	if !ok {
		return nil, vexerr.NativeFailure(file, line, b.Name)
	}
	return result, nil
}
