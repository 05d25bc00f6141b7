/*
File    : vexel/std/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"github.com/stuncs69/vexel/objects"
)

var objectMethods = []*Builtin{
	{Name: "object_to_string", Callback: objectToString},
	{Name: "object_keys", Callback: objectKeys},
	{Name: "object_values", Callback: objectValues},
	{Name: "object_has_property", Callback: objectHasProperty},
	{Name: "object_merge", Callback: objectMerge},
	{Name: "object_create", Callback: objectCreate},
}

func init() {
	register(objectMethods)
}

// object_to_string renders any value in the bracketed/JSON-like form (spec
// §6); array_join relies on this generic behavior to stringify elements of
// any kind, not just objects.
func objectToString(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	return &objects.String{Value: args[0].Inspect()}, true
}

func objectKeys(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	obj, ok := args[0].(*objects.Object)
	if !ok {
		return nil, false
	}
	elements := make([]objects.Value, len(obj.Keys))
	for i, k := range obj.Keys {
		elements[i] = &objects.String{Value: k}
	}
	return &objects.Array{Elements: elements}, true
}

func objectValues(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	obj, ok := args[0].(*objects.Object)
	if !ok {
		return nil, false
	}
	elements := make([]objects.Value, len(obj.Keys))
	for i, k := range obj.Keys {
		v, _ := obj.Get(k)
		elements[i] = v
	}
	return &objects.Array{Elements: elements}, true
}

func objectHasProperty(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	obj, ok := args[0].(*objects.Object)
	key, okKey := asString(args[1])
	if !ok || !okKey {
		return nil, false
	}
	_, has := obj.Get(key)
	return &objects.Boolean{Value: has}, true
}

// object_merge(a, b) returns a new object with a's keys followed by any
// of b's keys not already present in a, overwriting shared keys with b's
// values -- b "wins" on conflicts, matching a shallow right-biased merge.
func objectMerge(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	a, ok1 := args[0].(*objects.Object)
	b, ok2 := args[1].(*objects.Object)
	if !ok1 || !ok2 {
		return nil, false
	}
	merged := objects.NewObject()
	for _, k := range a.Keys {
		v, _ := a.Get(k)
		merged.Set(k, v)
	}
	for _, k := range b.Keys {
		v, _ := b.Get(k)
		merged.Set(k, v)
	}
	return merged, true
}

// object_create(k1, v1, k2, v2, ...) builds an object from alternating
// key/value arguments; odd arity is malformed and returns absent (spec §6).
func objectCreate(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args)%2 != 0 {
		return nil, false
	}
	obj := objects.NewObject()
	for i := 0; i < len(args); i += 2 {
		key, ok := asString(args[i])
		if !ok {
			return nil, false
		}
		obj.Set(key, args[i+1])
	}
	return obj, true
}
