/*
File    : vexel/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines Vexel's tagged runtime value (spec §3): Number,
// Boolean, String, Array, Object, and Null, plus the Function and Module
// records the evaluator needs to give functions module-global scoping
// without true closures (spec §9). All value kinds implement the Value
// interface, which separates the native rendering used by print/string
// concatenation from the bracketed inspection form used by
// object_to_string/array_to_string and dump().
package objects

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/stuncs69/vexel/ast"
)

// ValueType identifies the runtime kind of a Value.
type ValueType string

const (
	NumberType   ValueType = "number"
	BooleanType  ValueType = "boolean"
	StringType   ValueType = "string"
	ArrayType    ValueType = "array"
	ObjectType   ValueType = "object"
	NullType     ValueType = "null"
	FunctionType ValueType = "function"
)

// Value is the core interface every Vexel runtime value implements.
type Value interface {
	Type() ValueType
	// String renders the native, human-facing form used by print and by
	// interpolation of a bare value inside "${...}".
	String() string
	// Inspect renders the bracketed/JSON-like form used by
	// object_to_string, array_to_string, and dump().
	Inspect() string
	// Equals reports structural equality (spec §3).
	Equals(other Value) bool
}

// Number is Vexel's only numeric kind: a 32-bit signed integer (spec §3,
// Non-goals: "floating-point numbers").
type Number struct {
	Value int32
}

func (n *Number) Type() ValueType     { return NumberType }
func (n *Number) String() string      { return strconv.FormatInt(int64(n.Value), 10) }
func (n *Number) Inspect() string     { return n.String() }
func (n *Number) Equals(o Value) bool {
	other, ok := o.(*Number)
	return ok && other.Value == n.Value
}

// Boolean is `true` or `false`.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BooleanType }
func (b *Boolean) String() string  { return strconv.FormatBool(b.Value) }
func (b *Boolean) Inspect() string { return b.String() }
func (b *Boolean) Equals(o Value) bool {
	other, ok := o.(*Boolean)
	return ok && other.Value == b.Value
}

// String is immutable UTF-8 text.
type String struct {
	Value string
}

func (s *String) Type() ValueType { return StringType }
func (s *String) String() string  { return s.Value }
func (s *String) Inspect() string { return strconv.Quote(s.Value) }
func (s *String) Equals(o Value) bool {
	other, ok := o.(*String)
	return ok && other.Value == s.Value
}

// Null is the singleton absent value.
type Null struct{}

func (n *Null) Type() ValueType      { return NullType }
func (n *Null) String() string       { return "null" }
func (n *Null) Inspect() string      { return "null" }
func (n *Null) Equals(o Value) bool  { _, ok := o.(*Null); return ok }

// NullValue is the single shared Null instance; Null carries no state so
// every caller can share one.
var NullValue = &Null{}

// Array is an ordered, mutable sequence of Value (spec §3).
type Array struct {
	Elements []Value
}

func (a *Array) Type() ValueType { return ArrayType }

func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.Inspect()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (a *Array) Equals(o Value) bool {
	other, ok := o.(*Array)
	if !ok || len(other.Elements) != len(a.Elements) {
		return false
	}
	for i := range a.Elements {
		if !a.Elements[i].Equals(other.Elements[i]) {
			return false
		}
	}
	return true
}

// Object is a string-keyed map with insertion-ordered iteration (spec §3).
type Object struct {
	Keys   []string
	Values map[string]Value
}

// NewObject builds an empty, ready-to-use Object.
func NewObject() *Object {
	return &Object{Values: make(map[string]Value)}
}

// Set inserts or overwrites key, preserving first-insertion order.
func (o *Object) Set(key string, val Value) {
	if _, exists := o.Values[key]; !exists {
		o.Keys = append(o.Keys, key)
	}
	o.Values[key] = val
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.Values[key]
	return v, ok
}

func (o *Object) Type() ValueType { return ObjectType }

func (o *Object) String() string {
	parts := make([]string, len(o.Keys))
	for i, k := range o.Keys {
		parts[i] = k + ": " + o.Values[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Inspect renders stable, insertion-ordered JSON-like output, matching
// object_to_string's contract (spec §6, scenario 3).
func (o *Object) Inspect() string {
	parts := make([]string, len(o.Keys))
	for i, k := range o.Keys {
		parts[i] = strconv.Quote(k) + ":" + o.Values[k].Inspect()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func (o *Object) Equals(other Value) bool {
	o2, ok := other.(*Object)
	if !ok || len(o2.Keys) != len(o.Keys) {
		return false
	}
	for k, v := range o.Values {
		v2, ok := o2.Values[k]
		if !ok || !v.Equals(v2) {
			return false
		}
	}
	return true
}

// SortedKeys returns a copy of the object's keys in lexical order, for
// callers that explicitly want sorted output. No built-in calls it:
// object_keys, object_to_string and dump all use insertion order (Keys).
func (o *Object) SortedKeys() []string {
	keys := append([]string(nil), o.Keys...)
	sort.Strings(keys)
	return keys
}

// Function is a callable value: parameter names, a body, and a reference
// to the module it was defined in. Per spec §9, a function resolves
// global names and sibling functions through its *owning* module, not
// through the caller's locals — this is what gives Vexel module-global
// scoping without true closures.
type Function struct {
	Name   string
	Params []string
	Body   []ast.Statement
	Module *Module
}

func (f *Function) Type() ValueType { return FunctionType }
func (f *Function) String() string  { return fmt.Sprintf("<function %s>", f.Name) }
func (f *Function) Inspect() string { return f.String() }
func (f *Function) Equals(o Value) bool {
	other, ok := o.(*Function)
	return ok && other == f
}

// Module is the `{ path, globals, functions }` record of spec §3. Globals
// holds the module's current top-level variable bindings (the bottom
// frame every environment built from this module falls back to);
// Functions is the module's function table, keyed by declared name.
type Module struct {
	Path        string
	Globals     map[string]Value
	GlobalOrder []string
	Functions   map[string]*Function
	// Exported tracks which function names were declared with `export`,
	// used when building the snapshot object handed to importers.
	Exported map[string]bool
}

// NewModule creates an empty module record for path.
func NewModule(path string) *Module {
	return &Module{
		Path:      path,
		Globals:   make(map[string]Value),
		Functions: make(map[string]*Function),
		Exported:  make(map[string]bool),
	}
}

// SetGlobal inserts or overwrites a top-level binding, preserving
// first-insertion order for deterministic snapshotting.
func (m *Module) SetGlobal(name string, val Value) {
	if _, exists := m.Globals[name]; !exists {
		m.GlobalOrder = append(m.GlobalOrder, name)
	}
	m.Globals[name] = val
}

// Snapshot builds the Object value exposed under an import alias: the
// module's top-level bindings plus its exported functions (spec §4.3,
// §4.5). Non-exported functions remain internal to the module.
func (m *Module) Snapshot() *Object {
	obj := NewObject()
	for _, name := range m.GlobalOrder {
		obj.Set(name, m.Globals[name])
	}
	exportedNames := make([]string, 0, len(m.Exported))
	for name := range m.Exported {
		if m.Exported[name] {
			exportedNames = append(exportedNames, name)
		}
	}
	sort.Strings(exportedNames)
	for _, name := range exportedNames {
		obj.Set(name, m.Functions[name])
	}
	return obj
}
