package widen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarn-lang/tarn/pkg/ast"
)

func listFixture() (collection, list *ast.ClassNode) {
	collection = ast.NewInterface("java.util.Collection")
	collection.SetGenericsTypes([]*ast.GenericsType{ast.NewPlaceholderGenerics("E")})
	list = ast.NewInterface("java.util.List")
	list.SetGenericsTypes([]*ast.GenericsType{ast.NewPlaceholderGenerics("E")})
	list.AddInterface(collection.Parameterized(ast.NewPlaceholderGenerics("E")))
	return
}

func TestParameterizeIdenticalArguments(t *testing.T) {
	_, list := listFixture()

	a := list.Parameterized(ast.NewGenericsType(ast.StringType))
	b := list.Parameterized(ast.NewGenericsType(ast.StringType))

	lub := mustLUB(t, a, b)
	assert.Equal(t, "java.util.List", lub.Name())
	require.Len(t, lub.GenericsTypes(), 1)
	assert.Equal(t, "java.lang.String", lub.GenericsTypes()[0].String())
}

func TestParameterizeDivergentArguments(t *testing.T) {
	_, list := listFixture()
	a, b, c, _, _, _ := siblingFixture()

	la := list.Parameterized(ast.NewGenericsType(b))
	lb := list.Parameterized(ast.NewGenericsType(c))

	lub := mustLUB(t, la, lb)
	assert.Equal(t, "java.util.List", lub.Name())
	require.Len(t, lub.GenericsTypes(), 1)
	gt := lub.GenericsTypes()[0]
	require.True(t, gt.IsWildcard())
	require.Len(t, gt.UpperBounds(), 1)

	// the slot widens to the operands' own bound
	vt, ok := gt.UpperBounds()[0].(*VirtualType)
	require.True(t, ok)
	assert.True(t, a.Equals(vt.Upper()))
}

func TestParameterizeSubtypeArgument(t *testing.T) {
	_, list := listFixture()
	a, b, _, _, _, _ := siblingFixture()

	la := list.Parameterized(ast.NewGenericsType(a))
	lb := list.Parameterized(ast.NewGenericsType(b))

	lub := mustLUB(t, la, lb)
	require.Len(t, lub.GenericsTypes(), 1)
	gt := lub.GenericsTypes()[0]
	require.True(t, gt.IsWildcard())
	assert.Equal(t, "? extends com.acme.A", gt.String())
}

func TestParameterizeAcrossHierarchyLevels(t *testing.T) {
	collection, list := listFixture()

	la := list.Parameterized(ast.NewGenericsType(ast.StringType))
	cb := collection.Parameterized(ast.NewGenericsType(ast.StringType))

	// LUB(List<String>, Collection<String>) resolves List's inherited
	// Collection binding
	lub := mustLUB(t, la, cb)
	assert.Equal(t, "java.util.Collection", lub.Name())
	require.Len(t, lub.GenericsTypes(), 1)
	assert.Equal(t, "java.lang.String", lub.GenericsTypes()[0].String())
}

func TestParameterizeArityMismatchFallsBack(t *testing.T) {
	_, list := listFixture()

	raw := list.PlainNodeReference()
	typed := list.Parameterized(ast.NewGenericsType(ast.StringType))

	// a raw operand yields no bindings to reconcile; the bound is returned
	// as computed without a wildcard
	lub := mustLUB(t, typed, raw)
	assert.Equal(t, "java.util.List", lub.Name())
	require.Len(t, lub.GenericsTypes(), 1)
	assert.False(t, lub.GenericsTypes()[0].IsWildcard())
}
