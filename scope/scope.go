/*
File    : vexel/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements Vexel's Environment (spec §3): a stack of scope
// frames sitting atop a module's global bindings, plus the module's
// function table as the ambient lookup source for calls. Unlike the
// teacher's closure-capturing Scope chain, assignment here never searches
// outward — `set` on a bare identifier always defines or overwrites in
// the current (innermost) frame, matching spec §4.3 exactly.
package scope

import (
	"fmt"

	"github.com/stuncs69/vexel/objects"
)

// Environment is a stack of frames (innermost last) for a single
// evaluation call (script body, function call, test body, or a
// block/loop/if executing within one of those), plus the owning module
// whose Globals map is the final fallback for variable lookup.
type Environment struct {
	Module *objects.Module
	frames []map[string]objects.Value
}

// NewModuleEnvironment builds the environment used to evaluate a module's
// top-level statements. It has no frames of its own: `set` at top level
// writes straight into module.Globals, and reads fall back to it too.
func NewModuleEnvironment(module *objects.Module) *Environment {
	return &Environment{Module: module}
}

// NewCallEnvironment builds the environment for a single function
// invocation: a fresh frame holding the bound parameters, sitting above
// the owning module's globals (spec §4.3: "a new environment whose frame
// stack contains a single fresh frame for parameters"; spec §9: a
// function "resolves global names ... of its home module").
func NewCallEnvironment(fn *objects.Function, args []objects.Value) (*Environment, error) {
	if len(args) != len(fn.Params) {
		return nil, fmt.Errorf("function '%s' expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	frame := make(map[string]objects.Value, len(fn.Params))
	for i, name := range fn.Params {
		frame[name] = args[i]
	}
	return &Environment{Module: fn.Module, frames: []map[string]objects.Value{frame}}, nil
}

// NewTestEnvironment builds the isolated environment for a `test` block:
// it shares the enclosing module's function table (functions stay
// callable) but starts with an empty, unlinked set of globals, so no
// outer variable is visible inside the test (spec §4.3, §8 "Scope
// isolation").
func NewTestEnvironment(outer *objects.Module) *Environment {
	testModule := &objects.Module{
		Path:      outer.Path,
		Globals:   make(map[string]objects.Value),
		Functions: outer.Functions,
		Exported:  outer.Exported,
	}
	return NewModuleEnvironment(testModule)
}

// PushFrame opens a new child scope frame for an if/while/for-in body
// (spec §4.3: "new child scope frame that is discarded on exit").
func (e *Environment) PushFrame() {
	e.frames = append(e.frames, make(map[string]objects.Value))
}

// PopFrame discards the innermost frame.
func (e *Environment) PopFrame() {
	e.frames = e.frames[:len(e.frames)-1]
}

// Define binds name to val in the current (innermost) frame, or directly
// into the module's globals if there is no frame above it. This is the
// sole write path for `set` on a bare identifier; it never searches
// outward (spec §3: "no shadowing rules beyond frame depth").
func (e *Environment) Define(name string, val objects.Value) {
	if len(e.frames) == 0 {
		e.Module.SetGlobal(name, val)
		return
	}
	e.frames[len(e.frames)-1][name] = val
}

// Lookup resolves name by walking frames innermost-to-outermost, falling
// back to the owning module's globals (spec §4.3 VarRef; spec §9 —
// functions keep read access to their home module's globals even though
// they do not capture a caller's locals).
func (e *Environment) Lookup(name string) (objects.Value, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v, true
		}
	}
	v, ok := e.Module.Globals[name]
	return v, ok
}
