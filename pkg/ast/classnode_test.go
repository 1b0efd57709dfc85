package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquals(t *testing.T) {
	a := NewClass("com.acme.A")
	a2 := NewClass("com.acme.A")
	b := NewClass("com.acme.B")

	assert.True(t, a.Equals(a2), "equality is by name, not identity")
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))

	t.Run("generics do not affect nominal equality", func(t *testing.T) {
		box := NewClass("com.acme.Box")
		box.SetGenericsTypes([]*GenericsType{NewPlaceholderGenerics("T")})
		ref := box.Parameterized(NewGenericsType(StringType))
		assert.True(t, box.Equals(ref))
		assert.True(t, ref.Equals(box))
	})

	t.Run("arrays compare by component", func(t *testing.T) {
		assert.True(t, a.MakeArray().Equals(a2.MakeArray()))
		assert.False(t, a.MakeArray().Equals(b.MakeArray()))
		assert.False(t, a.MakeArray().Equals(a))
		assert.False(t, a.Equals(a.MakeArray()))
		assert.True(t, a.MakeArray().MakeArray().Equals(a2.MakeArray().MakeArray()))
	})
}

func TestIsDerivedFrom(t *testing.T) {
	a := NewClass("com.acme.A")
	b := NewClass("com.acme.B")
	b.SetSuperClass(a)
	c := NewClass("com.acme.C")
	c.SetSuperClass(b)

	assert.True(t, c.IsDerivedFrom(a), "transitive through the chain")
	assert.True(t, c.IsDerivedFrom(c))
	assert.False(t, a.IsDerivedFrom(c))
	assert.True(t, c.IsDerivedFrom(ObjectType), "everything derives from Object")
	assert.False(t, c.IsDerivedFrom(nil))

	t.Run("void only derives from void", func(t *testing.T) {
		assert.True(t, VoidType.IsDerivedFrom(VoidType))
		assert.False(t, VoidType.IsDerivedFrom(IntType))
	})

	t.Run("reference arrays derive from Object arrays", func(t *testing.T) {
		assert.True(t, a.MakeArray().IsDerivedFrom(ObjectType.MakeArray()))
		assert.False(t, IntType.MakeArray().IsDerivedFrom(ObjectType.MakeArray()))
	})
}

func TestImplementsInterface(t *testing.T) {
	root := NewInterface("com.acme.Root")
	mid := NewInterface("com.acme.Mid")
	mid.AddInterface(root)
	base := NewClass("com.acme.Base")
	base.AddInterface(mid)
	sub := NewClass("com.acme.Sub")
	sub.SetSuperClass(base)

	assert.True(t, base.ImplementsInterface(mid))
	assert.True(t, base.ImplementsInterface(root), "through the interface extends chain")
	assert.True(t, sub.ImplementsInterface(root), "through the superclass")
	assert.False(t, base.ImplementsInterface(NewInterface("com.acme.Unrelated")))
	assert.True(t, mid.ImplementsInterface(root), "an interface implements what it extends")
}

func TestAllInterfaces(t *testing.T) {
	root := NewInterface("com.acme.Root")
	mid := NewInterface("com.acme.Mid")
	mid.AddInterface(root)
	extra := NewInterface("com.acme.Extra")
	base := NewClass("com.acme.Base")
	base.AddInterface(extra)
	sub := NewClass("com.acme.Sub")
	sub.SetSuperClass(base)
	sub.AddInterface(mid)

	names := map[string]bool{}
	for _, in := range sub.AllInterfaces() {
		names[in.Name()] = true
	}
	assert.Equal(t, map[string]bool{
		"com.acme.Mid":   true,
		"com.acme.Root":  true,
		"com.acme.Extra": true,
	}, names)
}

func TestPlainNodeReference(t *testing.T) {
	box := NewClass("com.acme.Box")
	box.SetGenericsTypes([]*GenericsType{NewPlaceholderGenerics("T")})
	ref := box.Parameterized(NewGenericsType(StringType))

	plain := ref.PlainNodeReference()
	assert.Equal(t, "com.acme.Box", plain.Name())
	assert.Empty(t, plain.GenericsTypes())
	assert.False(t, plain.UsingGenerics())
	assert.Same(t, box, plain.Redirect(), "references share the declaration")
}

func TestParameterizedReference(t *testing.T) {
	box := NewClass("com.acme.Box")
	box.AddInterface(SerializableType)
	box.SetGenericsTypes([]*GenericsType{NewPlaceholderGenerics("T")})

	ref := box.Parameterized(NewGenericsType(StringType))
	assert.Equal(t, "com.acme.Box<java.lang.String>", ref.Text())
	assert.True(t, ref.UsingGenerics())

	// structure is read through the declaration
	require.Len(t, ref.Interfaces(), 1)
	assert.True(t, ref.ImplementsInterface(SerializableType))
}

func TestText(t *testing.T) {
	a := NewClass("com.acme.A")
	assert.Equal(t, "com.acme.A", a.Text())
	assert.Equal(t, "com.acme.A[]", a.MakeArray().Text())
	assert.Equal(t, "com.acme.A[][]", a.MakeArray().MakeArray().Text())
	assert.Equal(t, "int", IntType.Text())

	wild := NewClass("com.acme.Box").Parameterized(BuildWildcardType(SerializableType))
	assert.Equal(t, "com.acme.Box<? extends java.io.Serializable>", wild.Text())
}

func TestMakeArray(t *testing.T) {
	a := NewClass("com.acme.A")
	arr := a.MakeArray()

	require.True(t, arr.IsArray())
	assert.True(t, a.Equals(arr.ComponentType()))
	assert.True(t, IsObjectType(arr.SuperClass()), "arrays extend Object")
	assert.Nil(t, arr.Interfaces())
	assert.False(t, a.IsArray())
}
