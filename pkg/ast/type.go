package ast

// Type is the currency of the Tarn type checker: a nominal class or
// interface reference, an array type, a primitive, or a synthesized type
// built during widening. Query operations never mutate the graph; the only
// mutator, SetGenericsTypes, exists so callers can parameterize a plain
// reference they own.
type Type interface {
	// Name returns the fully qualified name of the type. For synthesized
	// types this is the name of a real, loadable class standing in for it.
	Name() string
	// Text returns a human-readable rendering for diagnostics, including
	// generics arguments.
	Text() string

	IsInterface() bool
	IsPrimitive() bool
	IsArray() bool
	// ComponentType returns the element type of an array type, nil otherwise.
	ComponentType() Type

	// SuperClass returns the superclass reference, or nil for Object,
	// primitives and unrooted declarations.
	SuperClass() Type
	// Interfaces returns the directly implemented (or, for an interface,
	// directly extended) interfaces in declaration order.
	Interfaces() []Type
	// AllInterfaces returns the transitive closure of implemented
	// interfaces, walking both the superclass chain and interface extends.
	AllInterfaces() []Type
	Methods() []*MethodNode

	GenericsTypes() []*GenericsType
	SetGenericsTypes([]*GenericsType)
	UsingGenerics() bool
	IsGenericsPlaceholder() bool

	// IsDerivedFrom reports whether the type has target on its superclass
	// chain. Every non-void type derives from Object.
	IsDerivedFrom(target Type) bool
	// ImplementsInterface reports whether the type or any of its ancestors
	// implements target, directly or through interface extension.
	ImplementsInterface(target Type) bool
	// Equals is nominal equality: same name, with arrays compared by
	// component. Generics arguments are ignored; see EqualsWithGenerics.
	Equals(other Type) bool

	// PlainNodeReference returns a reference to the same declaration with
	// all generics information stripped.
	PlainNodeReference() Type
	// AsGenericsType wraps the type for use as a generics argument.
	AsGenericsType() *GenericsType
	MakeArray() Type
	// Redirect returns the declaration a reference points at, or the type
	// itself if it is the declaration.
	Redirect() Type
}
