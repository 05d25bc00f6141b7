/*
File    : vexel/eval/loader.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/stuncs69/vexel/objects"
	"github.com/stuncs69/vexel/parser"
	"github.com/stuncs69/vexel/scope"
	"github.com/stuncs69/vexel/vexerr"
)

// ModuleLoader implements spec §4.5's five-step import algorithm:
// canonicalize the path, check the cache, record an in-flight sentinel
// to catch import cycles, load/lex/parse/evaluate the module against a
// fresh environment, then replace the sentinel with the module's
// snapshot.
type ModuleLoader struct {
	mu      sync.Mutex
	eval    *Evaluator
	cache   map[string]*objects.Object
	loading map[string]bool
}

// NewModuleLoader builds a loader that uses ev to evaluate each imported
// module's body.
func NewModuleLoader(ev *Evaluator) *ModuleLoader {
	return &ModuleLoader{
		eval:    ev,
		cache:   make(map[string]*objects.Object),
		loading: make(map[string]bool),
	}
}

// Load resolves path relative to fromFile, returning the cached snapshot
// on repeat imports and failing with an ImportError on a cycle, a
// missing file, or a parse/runtime error inside the imported module.
func (l *ModuleLoader) Load(path string, fromFile string) (*objects.Object, error) {
	canon := canonicalize(path, fromFile)

	l.mu.Lock()
	if snap, ok := l.cache[canon]; ok {
		l.mu.Unlock()
		return snap, nil
	}
	if l.loading[canon] {
		l.mu.Unlock()
		return nil, vexerr.NewImportError(fromFile, 0, "import cycle detected at %q", canon)
	}
	l.loading[canon] = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		delete(l.loading, canon)
		l.mu.Unlock()
	}()

	src, err := os.ReadFile(canon)
	if err != nil {
		return nil, vexerr.NewImportError(fromFile, 0, "cannot read module %q: %v", path, err)
	}

	stmts, err := parser.ParseProgram(string(src), canon)
	if err != nil {
		return nil, vexerr.NewImportError(fromFile, 0, "module %q failed: %v", path, err)
	}

	mod := objects.NewModule(canon)
	env := scope.NewModuleEnvironment(mod)
	if _, err := l.eval.evalStatements(stmts, mod, env); err != nil {
		return nil, vexerr.NewImportError(fromFile, 0, "module %q failed: %v", path, err)
	}

	snapshot := mod.Snapshot()
	l.mu.Lock()
	l.cache[canon] = snapshot
	l.mu.Unlock()
	return snapshot, nil
}

// canonicalize resolves an import path relative to the directory of the
// importing file, matching Vexel's `import alias from "./relative.vx"`
// convention.
func canonicalize(path string, fromFile string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	dir := filepath.Dir(fromFile)
	return filepath.Clean(filepath.Join(dir, path))
}
