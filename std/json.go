/*
File    : vexel/std/json.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/stuncs69/vexel/objects"
)

var jsonMethods = []*Builtin{
	{Name: "json_parse", Callback: jsonParse},
	{Name: "json_stringify", Callback: jsonStringify},
}

func init() {
	register(jsonMethods)
}

// json_parse maps JSON numbers to Number only when they fit a 32-bit
// signed integer losslessly; any numeric value with a fractional part or
// outside that range fails the whole parse (spec §6), since Vexel has no
// other numeric kind to fall back to.
func jsonParse(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	var data interface{}
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return nil, false
	}
	return jsonToValue(data)
}

func jsonToValue(v interface{}) (objects.Value, bool) {
	switch val := v.(type) {
	case nil:
		return objects.NullValue, true
	case bool:
		return &objects.Boolean{Value: val}, true
	case string:
		return &objects.String{Value: val}, true
	case float64:
		n := int32(val)
		if float64(n) != val {
			return nil, false
		}
		return &objects.Number{Value: n}, true
	case []interface{}:
		elements := make([]objects.Value, len(val))
		for i, el := range val {
			v, ok := jsonToValue(el)
			if !ok {
				return nil, false
			}
			elements[i] = v
		}
		return &objects.Array{Elements: elements}, true
	case map[string]interface{}:
		obj := objects.NewObject()
		for k, el := range val {
			v, ok := jsonToValue(el)
			if !ok {
				return nil, false
			}
			obj.Set(k, v)
		}
		return obj, true
	default:
		return nil, false
	}
}

// json_stringify serializes objects in insertion order (spec §6).
// encoding/json alphabetizes map keys, so objects are rendered by a
// dedicated writer instead of round-tripping through map[string]any.
func jsonStringify(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	var b strings.Builder
	writeJSON(&b, args[0])
	return &objects.String{Value: b.String()}, true
}

func writeJSON(b *strings.Builder, v objects.Value) {
	switch val := v.(type) {
	case *objects.Number:
		b.WriteString(strconv.FormatInt(int64(val.Value), 10))
	case *objects.Boolean:
		b.WriteString(strconv.FormatBool(val.Value))
	case *objects.String:
		b.WriteString(strconv.Quote(val.Value))
	case *objects.Null:
		b.WriteString("null")
	case *objects.Array:
		b.WriteByte('[')
		for i, el := range val.Elements {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSON(b, el)
		}
		b.WriteByte(']')
	case *objects.Object:
		b.WriteByte('{')
		for i, k := range val.Keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			el, _ := val.Get(k)
			writeJSON(b, el)
		}
		b.WriteByte('}')
	default:
		b.WriteString(strconv.Quote(v.String()))
	}
}
