/*
File    : vexel/std/fileio.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"os"

	"github.com/stuncs69/vexel/objects"
)

var fileMethods = []*Builtin{
	{Name: "read_file", Callback: readFile},
	{Name: "write_file", Callback: writeFile},
	{Name: "append_file", Callback: appendFile},
	{Name: "file_exists", Callback: fileExists},
	{Name: "delete_file", Callback: deleteFile},
	{Name: "rename_file", Callback: renameFile},
	{Name: "create_dir", Callback: createDir},
	{Name: "list_dir", Callback: listDir},
}

func init() {
	register(fileMethods)
}

func readFile(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	path, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return &objects.String{Value: string(data)}, true
}

func writeFile(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	path, ok1 := asString(args[0])
	content, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, false
	}
	return objects.NullValue, true
}

func appendFile(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	path, ok1 := asString(args[0])
	content, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, false
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return nil, false
	}
	return objects.NullValue, true
}

func fileExists(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	path, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	_, err := os.Stat(path)
	return &objects.Boolean{Value: err == nil}, true
}

func deleteFile(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	path, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	if err := os.Remove(path); err != nil {
		return nil, false
	}
	return objects.NullValue, true
}

func renameFile(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	from, ok1 := asString(args[0])
	to, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	if err := os.Rename(from, to); err != nil {
		return nil, false
	}
	return objects.NullValue, true
}

func createDir(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	path, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, false
	}
	return objects.NullValue, true
}

func listDir(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	path, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, false
	}
	elements := make([]objects.Value, len(entries))
	for i, ent := range entries {
		elements[i] = &objects.String{Value: ent.Name()}
	}
	return &objects.Array{Elements: elements}, true
}
