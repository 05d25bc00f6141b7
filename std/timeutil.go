/*
File    : vexel/std/timeutil.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"time"

	"github.com/stuncs69/vexel/objects"
)

var timeMethods = []*Builtin{
	{Name: "time_now", Callback: timeNow},
	{Name: "time_format", Callback: timeFormatFn},
}

func init() {
	register(timeMethods)
}

// time_now() returns the current Unix timestamp in seconds.
func timeNow(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 0 {
		return nil, false
	}
	return &objects.Number{Value: int32(time.Now().Unix())}, true
}

// time_format(epochSeconds, layout) renders a Unix timestamp using a Go
// reference-time layout string, e.g. "2006-01-02 15:04:05".
func timeFormatFn(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	epoch, ok1 := asNumber(args[0])
	layout, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	return &objects.String{Value: time.Unix(int64(epoch), 0).UTC().Format(layout)}, true
}
