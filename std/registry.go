/*
File    : vexel/std/registry.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std implements Vexel's fixed built-in function registry (spec
// §4.4, §6). Every built-in is a CallbackFunc taking already-evaluated
// arguments and returning (value, ok); ok == false means the call is
// "absent" for these arguments, which the evaluator converts into the
// fixed-template RuntimeError mandated by spec §4.4/§7 rather than a
// bespoke message per built-in.
package std

import (
	"github.com/stuncs69/vexel/channel"
	"github.com/stuncs69/vexel/objects"
)

// Runtime is the callback into the evaluator that built-ins needing the
// channel subsystem (thread_*) are given; CallFunction exists for
// non-built-in callers (the WebCore route invoker). Most built-ins never
// touch either.
type Runtime interface {
	CallFunction(fn *objects.Function, args []objects.Value) (objects.Value, error)
	Channels() *channel.Registry
}

// CallbackFunc implements one built-in's behavior.
type CallbackFunc func(rt Runtime, args []objects.Value) (objects.Value, bool)

// Builtin names a registry entry.
type Builtin struct {
	Name     string
	Callback CallbackFunc
}

// Builtins holds every registered built-in; category files append to it
// from their init() functions.
var Builtins = make([]*Builtin, 0)

func register(methods []*Builtin) {
	Builtins = append(Builtins, methods...)
}
