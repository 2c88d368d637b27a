package tester

import (
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const callSource = `package demo

func demo(t *T, a, b int) {
	t.Check(a == 1)
	t.Check(a == 2); t.Check(b == 3)
	t.Equal(
		a,
		b,
	)
	t.Check(t.Equal(a, b) == nil)
}
`

func parseSource(t *testing.T) *sourceFile {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "demo.go", callSource, parser.SkipObjectResolution)
	require.NoError(t, err)
	return &sourceFile{fset: fset, file: file}
}

func TestFindCall_SingleCallOnLine(t *testing.T) {
	call := findCall(parseSource(t), "Check", 4)
	require.NotNil(t, call)
	assert.Equal(t, "a == 1", types.ExprString(call.Args[0]))
}

func TestFindCall_TwoCallsOnOneLineAreAmbiguous(t *testing.T) {
	assert.Nil(t, findCall(parseSource(t), "Check", 5))
}

func TestFindCall_MultiLineCallMatchesAnyLine(t *testing.T) {
	src := parseSource(t)
	for line := 6; line <= 9; line++ {
		call := findCall(src, "Equal", line)
		require.NotNil(t, call, "line %d", line)
		assert.Equal(t, "a", types.ExprString(call.Args[0]))
	}
}

func TestFindCall_NestedCallMatchedByMethod(t *testing.T) {
	call := findCall(parseSource(t), "Equal", 10)
	require.NotNil(t, call)
	assert.Equal(t, "b", types.ExprString(call.Args[1]))
}

func TestFindCall_NoMatch(t *testing.T) {
	assert.Nil(t, findCall(parseSource(t), "NotEqual", 4))
	assert.Nil(t, findCall(parseSource(t), "Check", 1))
}
