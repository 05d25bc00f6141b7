/*
File    : vexel/eval/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"

	"github.com/stuncs69/vexel/ast"
	"github.com/stuncs69/vexel/objects"
	"github.com/stuncs69/vexel/scope"
	"github.com/stuncs69/vexel/vexerr"
)

func (e *Evaluator) evalExpr(expr ast.Expression, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	switch x := expr.(type) {
	case *ast.LiteralExpr:
		return evalLiteral(x), nil
	case *ast.VarRefExpr:
		return e.evalVarRef(x, mod, env)
	case *ast.PropertyAccessExpr:
		return e.evalPropertyAccess(x, mod, env)
	case *ast.CallExpr:
		return e.evalCall(x, mod, env)
	case *ast.ComparisonExpr:
		return e.evalComparison(x, mod, env)
	case *ast.ArrayLitExpr:
		return e.evalArrayLit(x, mod, env)
	case *ast.ObjectLitExpr:
		return e.evalObjectLit(x, mod, env)
	case *ast.InterpolatedExpr:
		return e.evalInterpolated(x, mod, env)
	case *ast.ConcatChainExpr:
		return e.evalConcatChain(x, mod, env)
	default:
		return nil, vexerr.NewRuntimeError(mod.Path, 0, "unhandled expression type %T", expr)
	}
}

func evalLiteral(l *ast.LiteralExpr) objects.Value {
	switch l.Kind {
	case ast.NumberLiteral:
		return &objects.Number{Value: l.Number}
	case ast.StringLiteral:
		return &objects.String{Value: l.Str}
	case ast.BooleanLiteral:
		return &objects.Boolean{Value: l.Bool}
	case ast.NullLiteral:
		return objects.NullValue
	default:
		return objects.NullValue
	}
}

func (e *Evaluator) evalVarRef(v *ast.VarRefExpr, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	val, ok := env.Lookup(v.Name)
	if !ok {
		return nil, vexerr.NewRuntimeError(mod.Path, v.Line, "undefined variable '%s'", v.Name)
	}
	return val, nil
}

func (e *Evaluator) evalPropertyAccess(p *ast.PropertyAccessExpr, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	val, err := e.evalExpr(p.Base, mod, env)
	if err != nil {
		return nil, err
	}
	for _, key := range p.Keys {
		obj, ok := val.(*objects.Object)
		if !ok {
			return nil, vexerr.NewRuntimeError(mod.Path, p.Line, "cannot read property '%s' of non-object value", key)
		}
		next, exists := obj.Get(key)
		if !exists {
			return nil, vexerr.NewRuntimeError(mod.Path, p.Line, "property '%s' does not exist", key)
		}
		val = next
	}
	return val, nil
}

func (e *Evaluator) evalComparison(c *ast.ComparisonExpr, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	lhs, err := e.evalExpr(c.Lhs, mod, env)
	if err != nil {
		return nil, err
	}
	rhs, err := e.evalExpr(c.Rhs, mod, env)
	if err != nil {
		return nil, err
	}
	switch c.Op {
	case "==":
		return &objects.Boolean{Value: lhs.Equals(rhs)}, nil
	case "!=":
		return &objects.Boolean{Value: !lhs.Equals(rhs)}, nil
	case "<", ">", "<=", ">=":
		ln, ok1 := lhs.(*objects.Number)
		rn, ok2 := rhs.(*objects.Number)
		if !ok1 || !ok2 {
			return nil, vexerr.NewRuntimeError(mod.Path, c.Line, "operator '%s' requires two numbers, got %s and %s", c.Op, lhs.Type(), rhs.Type())
		}
		var result bool
		switch c.Op {
		case "<":
			result = ln.Value < rn.Value
		case ">":
			result = ln.Value > rn.Value
		case "<=":
			result = ln.Value <= rn.Value
		case ">=":
			result = ln.Value >= rn.Value
		}
		return &objects.Boolean{Value: result}, nil
	default:
		return nil, vexerr.NewRuntimeError(mod.Path, c.Line, "unknown comparison operator '%s'", c.Op)
	}
}

func (e *Evaluator) evalArrayLit(a *ast.ArrayLitExpr, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	elements := make([]objects.Value, len(a.Elements))
	for i, elExpr := range a.Elements {
		v, err := e.evalExpr(elExpr, mod, env)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}
	return &objects.Array{Elements: elements}, nil
}

func (e *Evaluator) evalObjectLit(o *ast.ObjectLitExpr, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	obj := objects.NewObject()
	for i, key := range o.Keys {
		v, err := e.evalExpr(o.Values[i], mod, env)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	return obj, nil
}

func (e *Evaluator) evalInterpolated(i *ast.InterpolatedExpr, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	var b strings.Builder
	for _, part := range i.Parts {
		if !part.IsExpr {
			b.WriteString(part.Text)
			continue
		}
		v, err := e.evalExpr(part.Expr, mod, env)
		if err != nil {
			return nil, err
		}
		b.WriteString(renderForPrint(v))
	}
	return &objects.String{Value: b.String()}, nil
}

// evalConcatChain implements Vexel's `+`, which always concatenates the
// native string form of its operands (spec §4.2) -- there is no numeric
// addition operator; that is math_add.
func (e *Evaluator) evalConcatChain(c *ast.ConcatChainExpr, mod *objects.Module, env *scope.Environment) (objects.Value, error) {
	var b strings.Builder
	for _, part := range c.Parts {
		v, err := e.evalExpr(part, mod, env)
		if err != nil {
			return nil, err
		}
		b.WriteString(v.String())
	}
	return &objects.String{Value: b.String()}, nil
}
