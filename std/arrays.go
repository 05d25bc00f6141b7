/*
File    : vexel/std/arrays.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"strings"

	"github.com/stuncs69/vexel/objects"
)

var arrayMethods = []*Builtin{
	{Name: "array_push", Callback: arrayPush},
	{Name: "array_pop", Callback: arrayPop},
	{Name: "array_length", Callback: arrayLength},
	{Name: "array_get", Callback: arrayGet},
	{Name: "array_set", Callback: arraySet},
	{Name: "array_slice", Callback: arraySlice},
	{Name: "array_join", Callback: arrayJoin},
	{Name: "array_to_string", Callback: arrayToString},
	{Name: "array_range", Callback: arrayRange},
}

func init() {
	register(arrayMethods)
}

// array_push(arr, v...) returns a new array with one or more values
// appended; arrays are not mutated in place so a pushed-to array can still
// be compared by value (spec §6).
func arrayPush(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) < 2 {
		return nil, false
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return nil, false
	}
	next := append(append([]objects.Value(nil), arr.Elements...), args[1:]...)
	return &objects.Array{Elements: next}, true
}

func arrayPop(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	arr, ok := args[0].(*objects.Array)
	if !ok || len(arr.Elements) == 0 {
		return nil, false
	}
	next := append([]objects.Value(nil), arr.Elements[:len(arr.Elements)-1]...)
	return &objects.Array{Elements: next}, true
}

func arrayLength(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return nil, false
	}
	return &objects.Number{Value: int32(len(arr.Elements))}, true
}

func arrayGet(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	arr, ok := args[0].(*objects.Array)
	idx, okIdx := asNumber(args[1])
	if !ok || !okIdx || idx < 0 || int(idx) >= len(arr.Elements) {
		return nil, false
	}
	return arr.Elements[idx], true
}

func arraySet(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 3 {
		return nil, false
	}
	arr, ok := args[0].(*objects.Array)
	idx, okIdx := asNumber(args[1])
	if !ok || !okIdx || idx < 0 || int(idx) >= len(arr.Elements) {
		return nil, false
	}
	next := append([]objects.Value(nil), arr.Elements...)
	next[idx] = args[2]
	return &objects.Array{Elements: next}, true
}

// array_slice(arr, start, end) takes the half-open range [start, end),
// clamping both bounds into [0, len(arr)] rather than failing on an
// out-of-range index (spec §6).
func arraySlice(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 3 {
		return nil, false
	}
	arr, ok := args[0].(*objects.Array)
	start, okS := asNumber(args[1])
	end, okE := asNumber(args[2])
	if !ok || !okS || !okE {
		return nil, false
	}
	n := int32(len(arr.Elements))
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	next := append([]objects.Value(nil), arr.Elements[start:end]...)
	return &objects.Array{Elements: next}, true
}

// array_join renders each element via object_to_string, not String, so
// nested arrays/objects show their bracketed form rather than their bare
// native one (spec §6).
func arrayJoin(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	arr, ok := args[0].(*objects.Array)
	sep, okSep := args[1].(*objects.String)
	if !ok || !okSep {
		return nil, false
	}
	parts := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		parts[i] = el.Inspect()
	}
	return &objects.String{Value: strings.Join(parts, sep.Value)}, true
}

func arrayToString(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return nil, false
	}
	return &objects.String{Value: arr.Inspect()}, true
}

// array_range(n) builds [0, 1, ..., n-1] as an Array of Number (spec §6).
func arrayRange(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	n, okN := asNumber(args[0])
	if !okN || n < 0 {
		return nil, false
	}
	elements := make([]objects.Value, 0, n)
	for i := int32(0); i < n; i++ {
		elements = append(elements, &objects.Number{Value: i})
	}
	return &objects.Array{Elements: elements}, true
}
