/*
File    : vexel/std/debug.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"github.com/stuncs69/vexel/objects"
)

var debugMethods = []*Builtin{
	{Name: "dump", Callback: dump},
	{Name: "dump_type", Callback: dumpType},
	{Name: "assert_equal", Callback: assertEqual},
}

func init() {
	register(debugMethods)
}

// dump renders v in its bracketed object_to_string-style form regardless
// of kind, for debugging values that print() would otherwise render in
// native form (e.g. a bare string with no surrounding quotes).
func dump(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	return &objects.String{Value: args[0].Inspect()}, true
}

func dumpType(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	return &objects.String{Value: string(args[0].Type()) + ": " + args[0].Inspect()}, true
}

// assert_equal(a, b) is the backbone of `test` blocks: absent (and so a
// RuntimeError) on mismatch, true on match.
func assertEqual(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	if !args[0].Equals(args[1]) {
		return nil, false
	}
	return &objects.Boolean{Value: true}, true
}
