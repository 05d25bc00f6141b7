/*
File    : vexel/cmd/vexel/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFileSuccessExitsZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.vx")
	require.NoError(t, os.WriteFile(path, []byte("set x 2\nprint math_add(x, 3)\n"), 0o644))

	var out bytes.Buffer
	code := run([]string{path}, nil, &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "5")
}

func TestRunFileParseErrorExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.vx")
	require.NoError(t, os.WriteFile(path, []byte("if 1 == 1 == 1 start\nend\n"), 0o644))

	var out bytes.Buffer
	code := run([]string{path}, nil, &out)
	assert.NotEqual(t, 0, code)
}

func TestRunFileRuntimeErrorExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "divzero.vx")
	require.NoError(t, os.WriteFile(path, []byte("print math_divide(1, 0)\n"), 0o644))

	var out bytes.Buffer
	code := run([]string{path}, nil, &out)
	assert.NotEqual(t, 0, code)
}

func TestRunMissingFileExitsNonZero(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.vx")}, nil, &out)
	assert.NotEqual(t, 0, code)
}

func TestRunHelpExitsZero(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--help"}, nil, &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Vexel")
}

func TestRunVersionExitsZero(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--version"}, nil, &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), VERSION)
}

func TestRunWebcoreReportsRouteGlobals(t *testing.T) {
	dir := t.TempDir()
	routePath := filepath.Join(dir, "hello.vx")
	require.NoError(t, os.WriteFile(routePath, []byte(
		`set path "/hello"`+"\n"+
			`set method "GET"`+"\n"+
			`set mime "text/plain"`+"\n"+
			"export function request() start\nreturn \"hi\"\nend\n",
	), 0o644))

	var out bytes.Buffer
	code := run([]string{"webcore", dir}, nil, &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "GET")
	assert.Contains(t, out.String(), "/hello")
}

func TestRunWebcoreMissingDirExitsNonZero(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"webcore", filepath.Join(t.TempDir(), "nope")}, nil, &out)
	assert.NotEqual(t, 0, code)
}
