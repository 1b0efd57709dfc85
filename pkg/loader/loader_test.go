package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarn-lang/tarn/pkg/ast"
)

const siblingGraph = `
[[class]]
name = "com.acme.X"
kind = "interface"

[[class]]
name = "com.acme.A"
abstract = true

  [[class.method]]
  name = "run"

[[class]]
name = "com.acme.B"
extends = "com.acme.A"
implements = ["com.acme.X"]

  [[class.field]]
  name = "count"
  type = "int"
  modifiers = ["private", "final"]

[[class]]
name = "com.acme.C"
extends = "com.acme.A"
implements = ["com.acme.X", "Serializable"]
`

func parseGraph(t *testing.T, input string) *Graph {
	t.Helper()
	g, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	return g
}

func TestParseLinksHierarchy(t *testing.T) {
	g := parseGraph(t, siblingGraph)

	classes := g.Classes()
	require.Len(t, classes, 4)
	assert.Equal(t, "com.acme.X", classes[0].Name(), "file order is preserved")

	b, err := g.Lookup("com.acme.B")
	require.NoError(t, err)
	a, err := g.Lookup("com.acme.A")
	require.NoError(t, err)
	x, err := g.Lookup("com.acme.X")
	require.NoError(t, err)

	assert.True(t, x.IsInterface())
	assert.True(t, a.(*ast.ClassNode).Modifiers().Has(ast.Abstract))
	assert.True(t, b.IsDerivedFrom(a))
	assert.True(t, b.ImplementsInterface(x))

	c, err := g.Lookup("com.acme.C")
	require.NoError(t, err)
	assert.True(t, c.ImplementsInterface(ast.SerializableType), "simple java.lang names resolve")

	require.Len(t, a.Methods(), 1)
	assert.True(t, ast.IsPrimitiveVoid(a.Methods()[0].ReturnType), "omitted return type is void")

	fields := b.(*ast.ClassNode).Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "count", fields[0].Name)
	assert.True(t, fields[0].Modifiers.Has(ast.Private))
	assert.True(t, fields[0].Modifiers.Has(ast.Final))
	assert.True(t, ast.IsPrimitiveInt(fields[0].Type))
}

func TestParseTypeParams(t *testing.T) {
	g := parseGraph(t, `
[[class]]
name = "com.acme.Box"
type_params = ["T"]

  [[class.method]]
  name = "get"
  returns = "T"

[[class]]
name = "com.acme.StringBox"
extends = "com.acme.Box<String>"
`)

	box, err := g.Lookup("com.acme.Box")
	require.NoError(t, err)
	require.Len(t, box.GenericsTypes(), 1)
	assert.True(t, box.GenericsTypes()[0].IsPlaceholder())

	sb, err := g.Lookup("com.acme.StringBox")
	require.NoError(t, err)
	super := sb.SuperClass()
	assert.Equal(t, "com.acme.Box<java.lang.String>", super.Text())
}

func TestLookupExpressions(t *testing.T) {
	g := parseGraph(t, `
[[class]]
name = "com.acme.Box"
type_params = ["T"]
`)

	tests := []struct {
		expr string
		text string
	}{
		{"int", "int"},
		{"int[]", "int[]"},
		{"java.lang.String", "java.lang.String"},
		{"String", "java.lang.String"},
		{"Integer[][]", "java.lang.Integer[][]"},
		{"com.acme.Box<String>", "com.acme.Box<java.lang.String>"},
		{"com.acme.Box<com.acme.Box<Integer>>", "com.acme.Box<com.acme.Box<java.lang.Integer>>"},
		{"com.acme.Box<String>[]", "com.acme.Box<java.lang.String>[]"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			typ, err := g.Lookup(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.text, typ.Text())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			"duplicate class",
			"[[class]]\nname = \"com.acme.A\"\n[[class]]\nname = \"com.acme.A\"\n",
			"duplicate class",
		},
		{
			"missing name",
			"[[class]]\nkind = \"class\"\n",
			"without a name",
		},
		{
			"unknown kind",
			"[[class]]\nname = \"com.acme.A\"\nkind = \"enum\"\n",
			"unknown kind",
		},
		{
			"unknown supertype",
			"[[class]]\nname = \"com.acme.A\"\nextends = \"com.acme.Missing\"\n",
			"unknown type",
		},
		{
			"interface with extends",
			"[[class]]\nname = \"com.acme.I\"\nkind = \"interface\"\nextends = \"com.acme.J\"\n",
			"use implements",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLookupErrors(t *testing.T) {
	g := parseGraph(t, "[[class]]\nname = \"com.acme.A\"\n")

	_, err := g.Lookup("com.acme.Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")

	_, err = g.Lookup("com.acme.A<String")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed type expression")

	_, err = g.Lookup("com.acme.A<>")
	require.Error(t, err)
}
