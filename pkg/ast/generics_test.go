package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericsTypeString(t *testing.T) {
	tests := []struct {
		name string
		gt   *GenericsType
		want string
	}{
		{"concrete argument", NewGenericsType(StringType), "java.lang.String"},
		{"placeholder", NewPlaceholderGenerics("T"), "T"},
		{"bounded placeholder renders its name", NewPlaceholderGenerics("T", SerializableType), "T"},
		{"unbounded wildcard", BuildWildcardType(), "?"},
		{"extends wildcard", BuildWildcardType(SerializableType), "? extends java.io.Serializable"},
		{
			"multi-bound wildcard",
			BuildWildcardType(SerializableType, CharSequenceType),
			"? extends java.io.Serializable & java.lang.CharSequence",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.gt.String())
		})
	}

	t.Run("super wildcard", func(t *testing.T) {
		gt := BuildWildcardType()
		gt.SetLowerBound(StringType)
		assert.Equal(t, "? super java.lang.String", gt.String())
	})
}

func TestEqualsWithGenerics(t *testing.T) {
	box := NewClass("com.acme.Box")
	box.SetGenericsTypes([]*GenericsType{NewPlaceholderGenerics("T")})

	boxString := box.Parameterized(NewGenericsType(StringType))
	boxString2 := box.Parameterized(NewGenericsType(StringType))
	boxObject := box.Parameterized(NewGenericsType(ObjectType))

	assert.True(t, EqualsWithGenerics(boxString, boxString2))
	assert.False(t, EqualsWithGenerics(boxString, boxObject), "arguments differ")
	assert.False(t, EqualsWithGenerics(boxString, box.PlainNodeReference()), "raw against parameterized")
	assert.False(t, EqualsWithGenerics(boxString, StringType))
	assert.True(t, EqualsWithGenerics(nil, nil))
	assert.False(t, EqualsWithGenerics(boxString, nil))

	t.Run("nested arguments", func(t *testing.T) {
		inner1 := box.Parameterized(NewGenericsType(StringType))
		inner2 := box.Parameterized(NewGenericsType(ObjectType))
		outer1 := box.Parameterized(NewGenericsType(inner1))
		outer2 := box.Parameterized(NewGenericsType(inner2))
		outer3 := box.Parameterized(NewGenericsType(box.Parameterized(NewGenericsType(StringType))))
		assert.False(t, EqualsWithGenerics(outer1, outer2))
		assert.True(t, EqualsWithGenerics(outer1, outer3))
	})
}

func TestParameterizedSupertype(t *testing.T) {
	container := NewClass("com.acme.Container")
	container.SetGenericsTypes([]*GenericsType{NewPlaceholderGenerics("T")})

	t.Run("direct superclass", func(t *testing.T) {
		child := NewClass("com.acme.Child")
		child.SetSuperClass(container.Parameterized(NewGenericsType(StringType)))

		found := ParameterizedSupertype(child, container)
		require.NotNil(t, found)
		assert.Equal(t, "com.acme.Container<java.lang.String>", found.Text())
	})

	t.Run("binding substituted across levels", func(t *testing.T) {
		middle := NewClass("com.acme.Middle")
		middle.SetGenericsTypes([]*GenericsType{NewPlaceholderGenerics("U")})
		middle.SetSuperClass(container.Parameterized(NewPlaceholderGenerics("U")))
		leaf := NewClass("com.acme.Leaf")
		leaf.SetSuperClass(middle.Parameterized(NewGenericsType(StringType)))

		found := ParameterizedSupertype(leaf, container)
		require.NotNil(t, found)
		assert.Equal(t, "com.acme.Container<java.lang.String>", found.Text())
	})

	t.Run("interface occurrence", func(t *testing.T) {
		iface := NewInterface("com.acme.Producer")
		iface.SetGenericsTypes([]*GenericsType{NewPlaceholderGenerics("T")})
		impl := NewClass("com.acme.Impl")
		impl.AddInterface(iface.Parameterized(NewGenericsType(IntegerType)))

		found := ParameterizedSupertype(impl, iface)
		require.NotNil(t, found)
		assert.Equal(t, "com.acme.Producer<java.lang.Integer>", found.Text())
	})

	t.Run("primitive source is boxed first", func(t *testing.T) {
		found := ParameterizedSupertype(IntType, ComparableType)
		require.NotNil(t, found)
		assert.Equal(t, "java.lang.Comparable<java.lang.Integer>", found.Text())
	})

	t.Run("unrelated target", func(t *testing.T) {
		assert.Nil(t, ParameterizedSupertype(StringType, container))
		assert.Nil(t, ParameterizedSupertype(nil, container))
	})
}
