/*
File    : vexel/std/strings.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/stuncs69/vexel/objects"
)

var stringMethods = []*Builtin{
	{Name: "string_length", Callback: stringLength},
	{Name: "string_concat", Callback: stringConcat},
	{Name: "string_from_number", Callback: stringFromNumber},
	{Name: "number_from_string", Callback: numberFromString},
	{Name: "string_substring", Callback: stringSubstring},
	{Name: "string_contains", Callback: stringContains},
	{Name: "string_replace", Callback: stringReplace},
	{Name: "string_to_upper", Callback: stringToUpper},
	{Name: "string_to_lower", Callback: stringToLower},
	{Name: "string_trim", Callback: stringTrim},
	{Name: "string_starts_with", Callback: stringStartsWith},
	{Name: "string_ends_with", Callback: stringEndsWith},
	{Name: "string_match", Callback: stringMatch},
}

func init() {
	register(stringMethods)
}

func asString(v objects.Value) (string, bool) {
	s, ok := v.(*objects.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

func stringLength(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	return &objects.Number{Value: int32(len([]rune(s)))}, true
}

// string_concat(a, b, ...) joins two or more strings in argument order
// (spec §6).
func stringConcat(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) < 2 {
		return nil, false
	}
	var b strings.Builder
	for _, a := range args {
		s, ok := asString(a)
		if !ok {
			return nil, false
		}
		b.WriteString(s)
	}
	return &objects.String{Value: b.String()}, true
}

func stringFromNumber(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	n, ok := asNumber(args[0])
	if !ok {
		return nil, false
	}
	return &objects.String{Value: strconv.FormatInt(int64(n), 10)}, true
}

func numberFromString(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return nil, false
	}
	return &objects.Number{Value: int32(n)}, true
}

// string_substring(s, start, len) takes len code points beginning at start,
// byte-safe over UTF-8 (spec §6); start or len putting the range out of
// bounds is absent, not clamped.
func stringSubstring(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 3 {
		return nil, false
	}
	s, ok := asString(args[0])
	start, okS := asNumber(args[1])
	length, okL := asNumber(args[2])
	if !ok || !okS || !okL {
		return nil, false
	}
	runes := []rune(s)
	if start < 0 || length < 0 || int(start)+int(length) > len(runes) {
		return nil, false
	}
	return &objects.String{Value: string(runes[start : start+length])}, true
}

func stringContains(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	s, ok1 := asString(args[0])
	sub, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	return &objects.Boolean{Value: strings.Contains(s, sub)}, true
}

func stringReplace(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 3 {
		return nil, false
	}
	s, ok1 := asString(args[0])
	old, ok2 := asString(args[1])
	new_, ok3 := asString(args[2])
	if !ok1 || !ok2 || !ok3 {
		return nil, false
	}
	return &objects.String{Value: strings.ReplaceAll(s, old, new_)}, true
}

func stringToUpper(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	return &objects.String{Value: strings.ToUpper(s)}, true
}

func stringToLower(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	return &objects.String{Value: strings.ToLower(s)}, true
}

func stringTrim(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	return &objects.String{Value: strings.TrimSpace(s)}, true
}

func stringStartsWith(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	s, ok1 := asString(args[0])
	prefix, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	return &objects.Boolean{Value: strings.HasPrefix(s, prefix)}, true
}

func stringEndsWith(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	s, ok1 := asString(args[0])
	suffix, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	return &objects.Boolean{Value: strings.HasSuffix(s, suffix)}, true
}

// string_match(s, pattern) reports whether pattern (a Go regexp) matches
// anywhere in s. A malformed pattern is absent, not a runtime panic.
func stringMatch(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	s, ok1 := asString(args[0])
	pattern, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, false
	}
	return &objects.Boolean{Value: re.MatchString(s)}, true
}
