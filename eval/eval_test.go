/*
File    : vexel/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuncs69/vexel/objects"
	"github.com/stuncs69/vexel/parser"
)

func run(t *testing.T, src string) (*Evaluator, objects.Value, error) {
	t.Helper()
	stmts, err := parser.ParseProgram(src, "t.vx")
	require.NoError(t, err)
	ev := New()
	var buf bytes.Buffer
	ev.SetOutput(&buf)
	mod := objects.NewModule("t.vx")
	v, err := ev.EvalModule(stmts, mod)
	return ev, v, err
}

func TestEvalAssignAndPrint(t *testing.T) {
	_, v, err := run(t, "set x 2\nprint x\n")
	require.NoError(t, err)
	assert.Equal(t, int32(2), v.(*objects.Number).Value)
}

func TestEvalDottedAssignCreatesIntermediateObjects(t *testing.T) {
	_, v, err := run(t, "set a {}\nset a.b.c 5\nprint a.b.c\n")
	require.NoError(t, err)
	assert.Equal(t, int32(5), v.(*objects.Number).Value)
}

// A dotted assignment's root must already be a declared Object -- it is
// never auto-vivified, unlike the intermediate keys after it (spec §4.2,
// §9's worked example: `set obj {}` before `set obj.x.y 1` is load-bearing).
func TestEvalDottedAssignUndeclaredRootIsRuntimeError(t *testing.T) {
	_, _, err := run(t, "set a.b.c 5\n")
	require.Error(t, err)
}

func TestEvalIfRequiresBooleanCondition(t *testing.T) {
	_, _, err := run(t, "if 1 start\nprint 1\nend\n")
	require.Error(t, err)
}

func TestEvalWhileBareCounterDoesNotEscapeLoopFrame(t *testing.T) {
	// Each iteration's body runs in a fresh frame that is discarded on
	// exit, and `set i ...` on a bare identifier only ever writes to the
	// current frame (spec §3, §4.3) -- it never reaches outward to the
	// frame the condition is evaluated against. So a bare counter set
	// inside the body never advances the outer binding the condition
	// reads; the loop only terminates here because the condition is
	// false up front.
	_, v, err := run(t, "set i 0\nwhile i != 0 start\nset i math_add(i, 1)\nend\nprint i\n")
	require.NoError(t, err)
	assert.Equal(t, int32(0), v.(*objects.Number).Value)
}

func TestEvalWhileAccumulatesThroughSharedObject(t *testing.T) {
	// Objects are reference values, so property-path assignment mutates
	// the same underlying Object across iterations even though the loop
	// body's frame is discarded each time -- the standard idiom for
	// loop-carried state under this evaluator.
	src := "set state {}\nset state.i 0\nwhile state.i != 3 start\n" +
		"set state.i math_add(state.i, 1)\nend\nprint state.i\n"
	_, v, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, int32(3), v.(*objects.Number).Value)
}

func TestEvalForInOverArray(t *testing.T) {
	src := "set state {}\nset state.total 0\nfor n in [1, 2, 3] start\n" +
		"set state.total math_add(state.total, n)\nend\nprint state.total\n"
	_, v, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, int32(6), v.(*objects.Number).Value)
}

func TestEvalFunctionDefAndCall(t *testing.T) {
	src := "function inc(x) start\nreturn math_add(x, 1)\nend\nprint inc(4)\n"
	_, v, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, int32(5), v.(*objects.Number).Value)
}

func TestEvalFunctionOnlySeesOwnModuleGlobals(t *testing.T) {
	src := "set shared 10\nfunction f() start\nreturn shared\nend\nprint f()\n"
	_, v, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, int32(10), v.(*objects.Number).Value)
}

func TestEvalReturnOutsideFunctionIsRuntimeError(t *testing.T) {
	_, _, err := run(t, "return 1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RuntimeError")
}

func TestEvalUndefinedFunctionIsRuntimeError(t *testing.T) {
	_, _, err := run(t, "print nope(1)\n")
	require.Error(t, err)
}

func TestEvalBuiltinFailureProducesNativeFailureTemplate(t *testing.T) {
	_, _, err := run(t, "print math_divide(1, 0)\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Native function 'math_divide' failed for provided arguments")
}

func TestEvalConcatChainAlwaysStrings(t *testing.T) {
	src := `set name "world"` + "\n" + `print "hello " + name + "!"` + "\n"
	_, v, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "hello world!", v.(*objects.String).Value)
}

func TestEvalStringInterpolation(t *testing.T) {
	src := `set name "vexel"` + "\n" + `print "hi ${name}"` + "\n"
	_, v, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "hi vexel", v.(*objects.String).Value)
}

func TestEvalChainedComparisonRejectedAtParseTime(t *testing.T) {
	_, err := parser.ParseProgram("print 1 == 1 == 1\n", "t.vx")
	require.Error(t, err)
}

func TestEvalTestBlockReportsPassAndFail(t *testing.T) {
	stmts, err := parser.ParseProgram(
		"test \"ok\" start\nprint assert_equal(1, 1)\nend\n"+
			"test \"bad\" start\nprint assert_equal(1, 2)\nend\n",
		"t.vx",
	)
	require.NoError(t, err)
	ev := New()
	var buf bytes.Buffer
	ev.SetOutput(&buf)
	mod := objects.NewModule("t.vx")
	_, err = ev.EvalModule(stmts, mod)
	require.NoError(t, err)
	assert.Equal(t, 1, ev.TestPasses)
	assert.Equal(t, 1, ev.TestFailures)
}

func TestEvalImportExposesExportedFunctionsOnly(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "lib.vx")
	require.NoError(t, os.WriteFile(libPath, []byte(
		"set secret 1\n"+
			"export function inc(x) start\nreturn math_add(x, 1)\nend\n"+
			"function helper() start\nreturn 0\nend\n",
	), 0o644))

	mainPath := filepath.Join(dir, "main.vx")
	src := `import lib from "./lib.vx"` + "\n" + `print lib.inc(4)` + "\n"
	stmts, err := parser.ParseProgram(src, mainPath)
	require.NoError(t, err)

	ev := New()
	var buf bytes.Buffer
	ev.SetOutput(&buf)
	mod := objects.NewModule(mainPath)
	v, err := ev.EvalModule(stmts, mod)
	require.NoError(t, err)
	assert.Equal(t, int32(5), v.(*objects.Number).Value)

	// helper is not exported, so it must not be reachable through the alias.
	stmts2, err := parser.ParseProgram(
		`import lib from "./lib.vx"`+"\n"+`print lib.helper()`+"\n", mainPath)
	require.NoError(t, err)
	_, err = ev.EvalModule(stmts2, objects.NewModule(mainPath))
	require.Error(t, err)
}

func TestEvalImportCycleIsImportError(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.vx")
	bPath := filepath.Join(dir, "b.vx")
	require.NoError(t, os.WriteFile(aPath, []byte(`import b from "./b.vx"`+"\n"), 0o644))
	require.NoError(t, os.WriteFile(bPath, []byte(`import a from "./a.vx"`+"\n"), 0o644))

	stmts, err := parser.ParseProgram(string(mustRead(t, aPath)), aPath)
	require.NoError(t, err)
	ev := New()
	var buf bytes.Buffer
	ev.SetOutput(&buf)
	mod := objects.NewModule(aPath)
	_, err = ev.EvalModule(stmts, mod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ImportError")
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
