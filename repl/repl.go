/*
File    : vexel/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for Vexel. The REPL
evaluates each line of input as a statement against a single persistent
module environment, so variables and functions defined on one line are
visible on the next (spec §6, §9: "REPL mode catches at the top level
and returns to the prompt without tearing down persistent state").
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/stuncs69/vexel/ast"
	"github.com/stuncs69/vexel/eval"
	"github.com/stuncs69/vexel/objects"
	"github.com/stuncs69/vexel/parser"
)

// Color definitions for REPL output, matching the ambient convention
// used throughout the CLI: red for errors, yellow for echoed results,
// cyan for informational text, green for the banner, blue for rules.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "vexel >>> ")
}

// NewRepl builds a Repl with the given banner and prompt configuration.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Vexel!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main REPL loop until the user exits or input ends.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetOutput(writer)

	// One module persists for the whole session; every line's
	// statements evaluate against the same globals and function table.
	mod := objects.NewModule("<repl>")

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator, mod)
	}
}

// executeWithRecovery parses and evaluates one line of input, reporting
// parse or runtime failures without tearing down the REPL's persistent
// module -- a bad line is simply an error printed to the prompt.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator, mod *objects.Module) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "RuntimeError: %v\n", recovered)
		}
	}()

	stmts, err := parser.ParseProgram(line, mod.Path)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	result, err := evaluator.EvalModule(stmts, mod)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	// Echo the value of a bare expression statement, matching SPEC_FULL
	// §12's REPL-only "last value" convenience -- print/assign already
	// produce their own visible output, so only a trailing expression
	// statement's value needs an extra echo here.
	if result != nil && isBareExpressionLine(stmts) {
		yellowColor.Fprintf(writer, "%s\n", renderEchoValue(result))
	}
}

func isBareExpressionLine(stmts []ast.Statement) bool {
	if len(stmts) == 0 {
		return false
	}
	_, ok := stmts[len(stmts)-1].(*ast.ExpressionStmt)
	return ok
}

func renderEchoValue(v objects.Value) string {
	switch v.(type) {
	case *objects.Array, *objects.Object:
		return v.Inspect()
	default:
		return v.String()
	}
}
