/*
File    : vexel/eval/assign.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/stuncs69/vexel/ast"
	"github.com/stuncs69/vexel/objects"
	"github.com/stuncs69/vexel/scope"
	"github.com/stuncs69/vexel/vexerr"
)

// evalAssign implements `set <target> <expr>` (spec §4.2, §9). A bare
// identifier target defines or overwrites in the current frame. A dotted
// path requires its root to already resolve to an Object -- it is never
// auto-created -- but creates any missing intermediate objects along the
// way, so `set a.b.c 1` works once `a` exists even if `a.b` does not yet.
func (e *Evaluator) evalAssign(s *ast.AssignStmt, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	val, err := e.evalExpr(s.Expr, mod, env)
	if err != nil {
		return nil, err
	}
	if len(s.Path) == 1 {
		env.Define(s.Path[0], val)
		return val, nil
	}

	rootName := s.Path[0]
	root, ok := env.Lookup(rootName)
	if !ok {
		return nil, vexerr.NewRuntimeError(mod.Path, s.Line, "undefined variable '%s'", rootName)
	}
	obj, ok := root.(*objects.Object)
	if !ok {
		return nil, vexerr.NewRuntimeError(mod.Path, s.Line, "cannot assign property on non-object '%s'", rootName)
	}

	for _, key := range s.Path[1 : len(s.Path)-1] {
		next, exists := obj.Get(key)
		if !exists {
			created := objects.NewObject()
			obj.Set(key, created)
			next = created
		}
		child, isObj := next.(*objects.Object)
		if !isObj {
			return nil, vexerr.NewRuntimeError(mod.Path, s.Line, "cannot assign property '%s' on a non-object value", key)
		}
		obj = child
	}
	obj.Set(s.Path[len(s.Path)-1], val)
	return val, nil
}
