/*
File    : vexel/std/std_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuncs69/vexel/channel"
	"github.com/stuncs69/vexel/objects"
)

type fakeRuntime struct {
	channels *channel.Registry
}

func (f *fakeRuntime) CallFunction(fn *objects.Function, args []objects.Value) (objects.Value, error) {
	return objects.NullValue, nil
}

func (f *fakeRuntime) Channels() *channel.Registry {
	return f.channels
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{channels: channel.NewRegistry()}
}

func findBuiltin(t *testing.T, name string) *Builtin {
	t.Helper()
	for _, b := range Builtins {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("builtin %q not registered", name)
	return nil
}

func TestMathAddOverflowIsAbsent(t *testing.T) {
	rt := newFakeRuntime()
	b := findBuiltin(t, "math_add")
	_, ok := b.Callback(rt, []objects.Value{
		&objects.Number{Value: 2147483647},
		&objects.Number{Value: 1},
	})
	assert.False(t, ok)
}

func TestMathAddNormal(t *testing.T) {
	rt := newFakeRuntime()
	b := findBuiltin(t, "math_add")
	v, ok := b.Callback(rt, []objects.Value{&objects.Number{Value: 2}, &objects.Number{Value: 3}})
	require.True(t, ok)
	assert.Equal(t, int32(5), v.(*objects.Number).Value)
}

func TestMathDivideByZeroIsAbsent(t *testing.T) {
	rt := newFakeRuntime()
	b := findBuiltin(t, "math_divide")
	_, ok := b.Callback(rt, []objects.Value{&objects.Number{Value: 4}, &objects.Number{Value: 0}})
	assert.False(t, ok)
}

func TestArrayPushDoesNotMutateOriginal(t *testing.T) {
	rt := newFakeRuntime()
	b := findBuiltin(t, "array_push")
	orig := &objects.Array{Elements: []objects.Value{&objects.Number{Value: 1}}}
	v, ok := b.Callback(rt, []objects.Value{orig, &objects.Number{Value: 2}})
	require.True(t, ok)
	assert.Len(t, orig.Elements, 1)
	assert.Len(t, v.(*objects.Array).Elements, 2)
}

func TestStringSubstring(t *testing.T) {
	rt := newFakeRuntime()
	b := findBuiltin(t, "string_substring")
	v, ok := b.Callback(rt, []objects.Value{
		&objects.String{Value: "hello world"},
		&objects.Number{Value: 0},
		&objects.Number{Value: 5},
	})
	require.True(t, ok)
	assert.Equal(t, "hello", v.(*objects.String).Value)
}

func TestObjectMergeRightBiased(t *testing.T) {
	rt := newFakeRuntime()
	a := objects.NewObject()
	a.Set("x", &objects.Number{Value: 1})
	b := objects.NewObject()
	b.Set("x", &objects.Number{Value: 2})
	b.Set("y", &objects.Number{Value: 3})

	merged := findBuiltin(t, "object_merge")
	v, ok := merged.Callback(rt, []objects.Value{a, b})
	require.True(t, ok)
	obj := v.(*objects.Object)
	xv, _ := obj.Get("x")
	assert.Equal(t, int32(2), xv.(*objects.Number).Value)
	assert.Equal(t, []string{"x", "y"}, obj.Keys)
}

func TestJSONRoundTrip(t *testing.T) {
	rt := newFakeRuntime()
	stringify := findBuiltin(t, "json_stringify")
	parse := findBuiltin(t, "json_parse")

	arr := &objects.Array{Elements: []objects.Value{&objects.Number{Value: 1}, &objects.String{Value: "a"}}}
	s, ok := stringify.Callback(rt, []objects.Value{arr})
	require.True(t, ok)

	back, ok := parse.Callback(rt, []objects.Value{s})
	require.True(t, ok)
	assert.True(t, arr.Equals(back))
}

func TestAssertEqualAbsentOnMismatch(t *testing.T) {
	rt := newFakeRuntime()
	b := findBuiltin(t, "assert_equal")
	_, ok := b.Callback(rt, []objects.Value{&objects.Number{Value: 1}, &objects.Number{Value: 2}})
	assert.False(t, ok)
}

func TestArrayRangeBuildsZeroBased(t *testing.T) {
	rt := newFakeRuntime()
	b := findBuiltin(t, "array_range")
	v, ok := b.Callback(rt, []objects.Value{&objects.Number{Value: 3}})
	require.True(t, ok)
	elements := v.(*objects.Array).Elements
	require.Len(t, elements, 3)
	assert.Equal(t, int32(0), elements[0].(*objects.Number).Value)
	assert.Equal(t, int32(2), elements[2].(*objects.Number).Value)
}

func TestArrayJoinRendersElementsViaObjectToString(t *testing.T) {
	rt := newFakeRuntime()
	b := findBuiltin(t, "array_join")
	arr := &objects.Array{Elements: []objects.Value{&objects.String{Value: "a"}, &objects.Number{Value: 1}}}
	v, ok := b.Callback(rt, []objects.Value{arr, &objects.String{Value: ","}})
	require.True(t, ok)
	assert.Equal(t, `"a",1`, v.(*objects.String).Value)
}

func TestObjectCreateBuildsFromPairs(t *testing.T) {
	rt := newFakeRuntime()
	b := findBuiltin(t, "object_create")
	v, ok := b.Callback(rt, []objects.Value{&objects.String{Value: "x"}, &objects.Number{Value: 1}})
	require.True(t, ok)
	obj := v.(*objects.Object)
	xv, has := obj.Get("x")
	require.True(t, has)
	assert.Equal(t, int32(1), xv.(*objects.Number).Value)
}

func TestObjectCreateOddArityIsAbsent(t *testing.T) {
	rt := newFakeRuntime()
	b := findBuiltin(t, "object_create")
	_, ok := b.Callback(rt, []objects.Value{&objects.String{Value: "x"}})
	assert.False(t, ok)
}

func TestThreadChannelSendRecvThroughBuiltins(t *testing.T) {
	rt := newFakeRuntime()
	create := findBuiltin(t, "thread_channel")
	send := findBuiltin(t, "thread_send")
	recv := findBuiltin(t, "thread_recv")

	id, ok := create.Callback(rt, nil)
	require.True(t, ok)

	_, ok = send.Callback(rt, []objects.Value{id, &objects.String{Value: "hi"}})
	require.True(t, ok)

	v, ok := recv.Callback(rt, []objects.Value{id})
	require.True(t, ok)
	assert.Equal(t, "hi", v.(*objects.String).Value)
}
