/*
File    : vexel/std/core.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"os/exec"
	"time"

	"github.com/stuncs69/vexel/objects"
)

var coreMethods = []*Builtin{
	{Name: "sleep", Callback: sleepFn},
	{Name: "type_of", Callback: typeOf},
	{Name: "is_null", Callback: isNull},
	{Name: "exec", Callback: execFn},
}

func init() {
	register(coreMethods)
}

// sleep(seconds) blocks the calling thread for the given integer number of
// seconds (spec §6).
func sleepFn(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	secs, ok := asNumber(args[0])
	if !ok || secs < 0 {
		return nil, false
	}
	time.Sleep(time.Duration(secs) * time.Second)
	return objects.NullValue, true
}

func typeOf(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	return &objects.String{Value: string(args[0].Type())}, true
}

func isNull(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	_, ok := args[0].(*objects.Null)
	return &objects.Boolean{Value: ok}, true
}

// exec(cmd) runs cmd as a shell command and returns its stdout; a non-zero
// exit is absent (spec §6).
func execFn(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	cmdline, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	out, err := exec.Command("sh", "-c", cmdline).Output()
	if err != nil {
		return nil, false
	}
	return &objects.String{Value: string(out)}, true
}
