/*
File    : vexel/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuncs69/vexel/ast"
)

func TestParseAssignBareIdentifier(t *testing.T) {
	stmts, err := ParseProgram("set x 2\n", "t.vx")
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	assign, ok := stmts[0].(*ast.AssignStmt)
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, assign.Path)
	lit, ok := assign.Expr.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, int32(2), lit.Number)
}

func TestParseAssignDottedPath(t *testing.T) {
	stmts, err := ParseProgram("set obj.a.b 7\n", "t.vx")
	require.NoError(t, err)
	assign := stmts[0].(*ast.AssignStmt)
	assert.Equal(t, []string{"obj", "a", "b"}, assign.Path)
}

func TestParseIfBlockNoElse(t *testing.T) {
	src := "if false != true start\nprint \"ok\"\nend\n"
	stmts, err := ParseProgram(src, "t.vx")
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	ifStmt, ok := stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	cmp, ok := ifStmt.Cond.(*ast.ComparisonExpr)
	require.True(t, ok)
	assert.Equal(t, "!=", cmp.Op)
	require.Len(t, ifStmt.Body, 1)
}

func TestParseMissingEndIsParseError(t *testing.T) {
	_, err := ParseProgram("if true start\nprint 1\n", "t.vx")
	require.Error(t, err)
}

func TestParseChainedComparisonIsParseError(t *testing.T) {
	_, err := ParseProgram("print 1 == 1 == 1\n", "t.vx")
	require.Error(t, err)
}

func TestParseForIn(t *testing.T) {
	src := "for i in arr start\nprint i\nend\n"
	stmts, err := ParseProgram(src, "t.vx")
	require.NoError(t, err)
	forStmt := stmts[0].(*ast.ForInStmt)
	assert.Equal(t, "i", forStmt.Var)
}

func TestParseFunctionDefExported(t *testing.T) {
	src := "export function inc(x) start\nreturn math_add(x, 1)\nend\n"
	stmts, err := ParseProgram(src, "t.vx")
	require.NoError(t, err)
	fn := stmts[0].(*ast.FunctionDefStmt)
	assert.True(t, fn.Exported)
	assert.Equal(t, "inc", fn.Name)
	assert.Equal(t, []string{"x"}, fn.Params)
	ret := fn.Body[0].(*ast.ReturnStmt)
	call := ret.Expr.(*ast.CallExpr)
	callee := call.Callee.(*ast.VarRefExpr)
	assert.Equal(t, "math_add", callee.Name)
	require.Len(t, call.Args, 2)
}

func TestParseImport(t *testing.T) {
	stmts, err := ParseProgram(`import m from "./m.vx"`+"\n", "t.vx")
	require.NoError(t, err)
	imp := stmts[0].(*ast.ImportStmt)
	assert.Equal(t, "m", imp.Alias)
	assert.Equal(t, "./m.vx", imp.Path)
}

func TestParseModuleCallThroughAlias(t *testing.T) {
	stmts, err := ParseProgram(`print m.inc(4)`+"\n", "t.vx")
	require.NoError(t, err)
	printStmt := stmts[0].(*ast.PrintStmt)
	call := printStmt.Expr.(*ast.CallExpr)
	prop := call.Callee.(*ast.PropertyAccessExpr)
	base := prop.Base.(*ast.VarRefExpr)
	assert.Equal(t, "m", base.Name)
	assert.Equal(t, []string{"inc"}, prop.Keys)
}

func TestParseConcatChain(t *testing.T) {
	stmts, err := ParseProgram(`print a + "bar" + b`+"\n", "t.vx")
	require.NoError(t, err)
	printStmt := stmts[0].(*ast.PrintStmt)
	chain := printStmt.Expr.(*ast.ConcatChainExpr)
	assert.Len(t, chain.Parts, 3)
}

func TestParseArrayAndObjectLiterals(t *testing.T) {
	stmts, err := ParseProgram("set arr [1, 2, 3]\nset obj {a: 1, b: 2}\n", "t.vx")
	require.NoError(t, err)
	arr := stmts[0].(*ast.AssignStmt).Expr.(*ast.ArrayLitExpr)
	assert.Len(t, arr.Elements, 3)
	obj := stmts[1].(*ast.AssignStmt).Expr.(*ast.ObjectLitExpr)
	assert.Equal(t, []string{"a", "b"}, obj.Keys)
}

func TestParseStringInterpolation(t *testing.T) {
	stmts, err := ParseProgram(`print "hello ${name}!"`+"\n", "t.vx")
	require.NoError(t, err)
	printStmt := stmts[0].(*ast.PrintStmt)
	interp := printStmt.Expr.(*ast.InterpolatedExpr)
	require.Len(t, interp.Parts, 3)
	assert.False(t, interp.Parts[0].IsExpr)
	assert.True(t, interp.Parts[1].IsExpr)
	varRef := interp.Parts[1].Expr.(*ast.VarRefExpr)
	assert.Equal(t, "name", varRef.Name)
}

func TestParseTestBlock(t *testing.T) {
	src := `test "adds" start` + "\n" + `print math_add(1,2)` + "\n" + `end` + "\n"
	stmts, err := ParseProgram(src, "t.vx")
	require.NoError(t, err)
	test := stmts[0].(*ast.TestStmt)
	assert.Equal(t, "adds", test.Label)
}

func TestParseReturnBare(t *testing.T) {
	src := "function f() start\nreturn\nend\n"
	stmts, err := ParseProgram(src, "t.vx")
	require.NoError(t, err)
	fn := stmts[0].(*ast.FunctionDefStmt)
	ret := fn.Body[0].(*ast.ReturnStmt)
	assert.Nil(t, ret.Expr)
}
