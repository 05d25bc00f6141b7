/*
File    : vexel/std/threads.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"github.com/stuncs69/vexel/objects"
)

var threadMethods = []*Builtin{
	{Name: "thread_channel", Callback: threadChannel},
	{Name: "thread_send", Callback: threadSend},
	{Name: "thread_recv", Callback: threadRecv},
	{Name: "thread_close", Callback: threadClose},
}

func init() {
	register(threadMethods)
}

// The language surface has no thread-spawn primitive (spec §5: script
// authors cannot spawn threads). Channels exist only to coordinate with
// host-provided or future-spawned native threads; these four built-ins
// are the entire channel subsystem (spec §4.6).

func threadChannel(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 0 {
		return nil, false
	}
	id := rt.Channels().Create()
	return &objects.Number{Value: int32(id)}, true
}

func threadSend(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	id, ok := asNumber(args[0])
	if !ok {
		return nil, false
	}
	if err := rt.Channels().Send(int64(id), args[1]); err != nil {
		return nil, false
	}
	return objects.NullValue, true
}

func threadRecv(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	id, ok := asNumber(args[0])
	if !ok {
		return nil, false
	}
	v, err := rt.Channels().Recv(int64(id))
	if err != nil {
		return nil, false
	}
	return v, true
}

func threadClose(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	id, ok := asNumber(args[0])
	if !ok {
		return nil, false
	}
	if err := rt.Channels().Close(int64(id)); err != nil {
		return nil, false
	}
	return objects.NullValue, true
}
