package tester

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"runtime"
	"strings"
	"sync"
)

// sourceFile is a parsed Go file kept for rendering assertion expressions.
type sourceFile struct {
	fset *token.FileSet
	file *ast.File
}

var (
	sourceMu    sync.Mutex
	sourceCache = map[string]*sourceFile{}
)

// callSite locates the assertion call skip frames above callSite and returns
// its line and the expression text built by render from the call's argument
// sources. The text is empty when the source file cannot be read.
func callSite(skip int, render func(args []string) string) (int, string) {
	pcs := make([]uintptr, 2)
	if runtime.Callers(skip+1, pcs) < 2 {
		return 0, ""
	}
	frames := runtime.CallersFrames(pcs)
	assertion, _ := frames.Next()
	caller, _ := frames.Next()

	src := loadSource(caller.File)
	if src == nil {
		return caller.Line, ""
	}

	method := methodName(assertion.Function)
	call := findCall(src, method, caller.Line)
	if call == nil {
		return caller.Line, ""
	}

	need := 2
	if method == "Check" {
		need = 1
	}
	if len(call.Args) < need {
		return caller.Line, ""
	}

	args := make([]string, len(call.Args))
	for i, arg := range call.Args {
		args[i] = types.ExprString(arg)
	}
	return caller.Line, render(args)
}

// methodName strips the package and receiver from a qualified function name,
// e.g. "Equal" for "github.com/roach88/tester/internal/tester.(*T).Equal".
func methodName(qualified string) string {
	return qualified[strings.LastIndex(qualified, ".")+1:]
}

func loadSource(path string) *sourceFile {
	sourceMu.Lock()
	defer sourceMu.Unlock()

	if src, ok := sourceCache[path]; ok {
		return src
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
	var src *sourceFile
	if err == nil {
		src = &sourceFile{fset: fset, file: file}
	}
	// Misses are cached too so a missing file is only tried once.
	sourceCache[path] = src
	return src
}

// findCall returns the innermost call of a method with the given name whose
// source span covers line. The runtime reports lines, not columns, so when two
// such calls tie (e.g. two checks on one line) the call is ambiguous and nil
// is returned.
func findCall(src *sourceFile, method string, line int) *ast.CallExpr {
	var (
		best     *ast.CallExpr
		bestSpan int
		tied     bool
	)
	ast.Inspect(src.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != method {
			return true
		}
		start := src.fset.Position(call.Pos()).Line
		end := src.fset.Position(call.End()).Line
		if line < start || line > end {
			return true
		}
		switch {
		case best == nil || end-start < bestSpan:
			best, bestSpan, tied = call, end-start, false
		case end-start == bestSpan:
			tied = true
		}
		return true
	})
	if tied {
		return nil
	}
	return best
}
