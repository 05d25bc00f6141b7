/*
File    : vexel/cmd/vexel/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Vexel interpreter. Per spec
§6 it dispatches to one of three modes:
  - vexel                 REPL mode
  - vexel <file.vx>       script mode, exits 0/1
  - vexel webcore <dir>   hands the directory to the WebCore collaborator
*/
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/stuncs69/vexel/eval"
	"github.com/stuncs69/vexel/objects"
	"github.com/stuncs69/vexel/parser"
	"github.com/stuncs69/vexel/repl"
	"github.com/stuncs69/vexel/webcore"
)

// VERSION is the current Vexel interpreter version.
var VERSION = "v1.0.0"

// AUTHOR is the interpreter author's contact information.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE is the interpreter's software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "vexel >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 ██╗   ██╗███████╗██╗  ██╗███████╗██╗
 ██║   ██║██╔════╝╚██╗██╔╝██╔════╝██║
 ██║   ██║█████╗   ╚███╔╝ █████╗  ██║
 ╚██╗ ██╔╝██╔══╝   ██╔██╗ ██╔══╝  ██║
  ╚████╔╝ ███████╗██╔╝ ██╗███████╗███████╗
   ╚═══╝  ╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run implements the mode dispatch described in spec §6, returning the
// process exit code so it can be exercised by tests without calling
// os.Exit directly.
func run(args []string, in io.Reader, out io.Writer) int {
	if len(args) == 0 {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(in, out)
		return 0
	}

	switch args[0] {
	case "--help", "-h":
		showHelp(out)
		return 0
	case "--version", "-v":
		showVersion(out)
		return 0
	case "webcore":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "usage: vexel webcore <dir>\n")
			return 1
		}
		return runWebcore(args[1], out)
	default:
		return runFile(args[0], out)
	}
}

func showHelp(out io.Writer) {
	cyanColor.Fprintln(out, "Vexel - a small interpreted scripting language")
	cyanColor.Fprintln(out, "")
	cyanColor.Fprintln(out, "USAGE:")
	yellowColor.Fprintln(out, "  vexel                    Start interactive REPL mode")
	yellowColor.Fprintln(out, "  vexel <path-to-file>     Execute a Vexel file (.vx)")
	yellowColor.Fprintln(out, "  vexel webcore <dir>      Scan <dir> for route scripts")
	yellowColor.Fprintln(out, "  vexel --help             Display this help message")
	yellowColor.Fprintln(out, "  vexel --version          Display version information")
}

func showVersion(out io.Writer) {
	cyanColor.Fprintln(out, "Vexel - a small interpreted scripting language")
	cyanColor.Fprintf(out, "Version: %s\n", VERSION)
	cyanColor.Fprintf(out, "License: %s\n", LICENSE)
	cyanColor.Fprintf(out, "Author : %s\n", AUTHOR)
}

// runFile evaluates a single script and returns the process exit code:
// 0 on success, non-zero on any parse or runtime error (spec §6).
func runFile(path string, out io.Writer) int {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "RuntimeError: cannot read file %q: %v\n", path, err)
		return 1
	}

	stmts, err := parser.ParseProgram(string(src), path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		return 1
	}

	ev := eval.New()
	ev.SetOutput(out)
	mod := objects.NewModule(path)
	if _, err := ev.EvalModule(stmts, mod); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		return 1
	}
	return 0
}

// runWebcore scans dir for route scripts and evaluates each once,
// reporting its path/method/mime globals. Serving HTTP requests is out
// of scope (spec §1) -- this only proves out the three entry points the
// core exposes: evaluate-file, lookup-global, invoke-function.
func runWebcore(dir string, out io.Writer) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		redColor.Fprintf(os.Stderr, "RuntimeError: cannot read webcore directory %q: %v\n", dir, err)
		return 1
	}

	status := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".vx" {
			continue
		}
		routePath := filepath.Join(dir, entry.Name())
		route, err := webcore.EvaluateFile(routePath)
		if err != nil {
			redColor.Fprintf(os.Stderr, "%s\n", err.Error())
			status = 1
			continue
		}
		path, _ := route.LookupString("path")
		method, _ := route.LookupString("method")
		mime, _ := route.LookupString("mime")
		fmt.Fprintf(out, "webcore: %s -> method=%s path=%s mime=%s\n", entry.Name(), method, path, mime)
	}
	return status
}
