/*
File    : vexel/std/math.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"math"

	"github.com/stuncs69/vexel/objects"
)

var mathMethods = []*Builtin{
	{Name: "math_add", Callback: mathAdd},
	{Name: "math_subtract", Callback: mathSubtract},
	{Name: "math_multiply", Callback: mathMultiply},
	{Name: "math_divide", Callback: mathDivide},
	{Name: "math_power", Callback: mathPower},
	{Name: "math_sqrt", Callback: mathSqrt},
	{Name: "math_abs", Callback: mathAbs},
}

func init() {
	register(mathMethods)
}

func asNumber(v objects.Value) (int32, bool) {
	n, ok := v.(*objects.Number)
	if !ok {
		return 0, false
	}
	return n.Value, true
}

// fitsInt32 reports whether the int64 result of a widened operation is
// representable without overflow (spec §9: overflow is absent, not a
// wrapped or saturated value).
func fitsInt32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func mathAdd(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	a, ok1 := asNumber(args[0])
	b, ok2 := asNumber(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	sum := int64(a) + int64(b)
	if !fitsInt32(sum) {
		return nil, false
	}
	return &objects.Number{Value: int32(sum)}, true
}

func mathSubtract(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	a, ok1 := asNumber(args[0])
	b, ok2 := asNumber(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	diff := int64(a) - int64(b)
	if !fitsInt32(diff) {
		return nil, false
	}
	return &objects.Number{Value: int32(diff)}, true
}

func mathMultiply(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	a, ok1 := asNumber(args[0])
	b, ok2 := asNumber(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	prod := int64(a) * int64(b)
	if !fitsInt32(prod) {
		return nil, false
	}
	return &objects.Number{Value: int32(prod)}, true
}

func mathDivide(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	a, ok1 := asNumber(args[0])
	b, ok2 := asNumber(args[1])
	if !ok1 || !ok2 || b == 0 {
		return nil, false
	}
	return &objects.Number{Value: a / b}, true
}

func mathPower(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	a, ok1 := asNumber(args[0])
	b, ok2 := asNumber(args[1])
	if !ok1 || !ok2 || b < 0 {
		return nil, false
	}
	result := math.Pow(float64(a), float64(b))
	if math.IsInf(result, 0) || math.IsNaN(result) || !fitsInt32(int64(result)) {
		return nil, false
	}
	return &objects.Number{Value: int32(result)}, true
}

func mathSqrt(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	a, ok := asNumber(args[0])
	if !ok || a < 0 {
		return nil, false
	}
	return &objects.Number{Value: int32(math.Sqrt(float64(a)))}, true
}

func mathAbs(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	a, ok := asNumber(args[0])
	if !ok {
		return nil, false
	}
	if a == math.MinInt32 {
		return nil, false // abs(MinInt32) overflows int32
	}
	if a < 0 {
		a = -a
	}
	return &objects.Number{Value: a}, true
}
