package widen

import (
	"sort"
	"strings"

	"github.com/tarn-lang/tarn/pkg/ast"
)

// VirtualType is used when the lowest upper bound of two types cannot be
// represented by an existing type: if B extends A, C extends A, and both B
// and C implement an interface A does not, the bound is "A plus that
// interface", which no declared type denotes. A VirtualType lives only for
// the duration of a type-check computation and is never added to the
// permanent type graph.
//
// Phases that need a real, loadable class (bytecode generation,
// reflection) see the compile-time representative through Name: the
// superclass, or the first interface when the superclass is Object.
type VirtualType struct {
	*ast.ClassNode

	lubName     string
	upper       ast.Type
	interfaces  []ast.Type
	compileTime ast.Type
	text        string
}

// NewVirtualType builds a virtual type from its superclass component and
// the interfaces the bound must carry. Interfaces already implied by the
// superclass are pruned, and the rest are sorted into the deterministic
// order diagnostics and generated names rely on.
func NewVirtualType(name string, upper ast.Type, interfaces []ast.Type) *VirtualType {
	ifaces := make([]ast.Type, 0, len(interfaces))
	for _, in := range interfaces {
		if upper.IsDerivedFrom(in) || upper.ImplementsInterface(in) {
			continue
		}
		ifaces = append(ifaces, in)
	}
	sortInterfaces(ifaces)

	base := ast.NewClass(name)
	base.SetModifiers(ast.Public | ast.Final)
	base.SetSuperClass(upper)

	usesGenerics := upper.UsingGenerics()
	merged := append([]*ast.GenericsType{}, upper.GenericsTypes()...)
	for _, in := range ifaces {
		base.AddInterface(in)
		for _, m := range in.Methods() {
			base.AddMethod(m)
		}
		usesGenerics = usesGenerics || in.UsingGenerics()
		merged = append(merged, in.GenericsTypes()...)
	}
	if usesGenerics {
		base.SetGenericsTypes(merged)
	}

	vt := &VirtualType{
		ClassNode:  base,
		lubName:    name,
		upper:      upper,
		interfaces: ifaces,
	}
	if ast.IsObjectType(upper) && len(ifaces) > 0 {
		vt.compileTime = ifaces[0]
	} else {
		vt.compileTime = upper
	}

	var sb strings.Builder
	if !ast.IsObjectType(upper) {
		sb.WriteString(upper.Name())
	}
	for _, in := range ifaces {
		if sb.Len() > 0 {
			sb.WriteString(" or ")
		}
		sb.WriteString(in.Name())
	}
	vt.text = sb.String()
	return vt
}

// sortInterfaces orders interface nodes by interface count descending,
// method count descending, then name ascending. Any constant order would
// do; this one keeps the compile-time representative the most derived
// candidate.
func sortInterfaces(ifaces []ast.Type) {
	sort.SliceStable(ifaces, func(i, j int) bool {
		a, b := ifaces[i], ifaces[j]
		if d := len(a.Interfaces()) - len(b.Interfaces()); d != 0 {
			return d > 0
		}
		if d := len(a.Methods()) - len(b.Methods()); d != 0 {
			return d > 0
		}
		return sortName(a) < sortName(b)
	})
}

func sortName(t ast.Type) string {
	if vt, ok := t.(*VirtualType); ok {
		return vt.lubName
	}
	return t.Name()
}

// LubName returns the synthetic name encoding the construction of the
// bound, e.g. "CommonAssignOf$B$C".
func (vt *VirtualType) LubName() string { return vt.lubName }

// Upper returns the nominal superclass component of the bound.
func (vt *VirtualType) Upper() ast.Type { return vt.upper }

// InterfaceSet returns the pruned, deterministically ordered interfaces of
// the bound.
func (vt *VirtualType) InterfaceSet() []ast.Type { return vt.interfaces }

// Name returns the compile-time representative's name so downstream code
// that needs a loadable class gets a real one.
func (vt *VirtualType) Name() string { return vt.compileTime.Name() }

// CompileTimeRepresentative returns the single concrete type standing in
// for the bound at compile time.
func (vt *VirtualType) CompileTimeRepresentative() ast.Type { return vt.compileTime }

// Text renders the union for diagnostics, e.g. "A or X or Y". The Object
// component is implicit and omitted.
func (vt *VirtualType) Text() string { return vt.text }

// Equals compares virtual types by their synthetic names, so bounds built
// from different operand orders are not spuriously confused. Against a
// nominal type, the compile-time representative's name is compared, as for
// any other node.
func (vt *VirtualType) Equals(other ast.Type) bool {
	if other == nil || other.IsArray() {
		return false
	}
	if ovt, ok := other.(*VirtualType); ok {
		return vt.lubName == ovt.lubName
	}
	return vt.Name() == other.Name()
}

// AsGenericsType produces a wildcard bounded by the components of the
// bound; an Object superclass is implicit and omitted.
func (vt *VirtualType) AsGenericsType() *ast.GenericsType {
	var bounds []ast.Type
	if !ast.IsObjectType(vt.upper) {
		bounds = append(bounds, vt.upper)
	}
	bounds = append(bounds, vt.interfaces...)
	return ast.BuildWildcardType(bounds...)
}

// PlainNodeReference deep-copies the bound with generics stripped from the
// superclass and every interface.
func (vt *VirtualType) PlainNodeReference() ast.Type {
	ifaces := make([]ast.Type, len(vt.interfaces))
	for i, in := range vt.interfaces {
		ifaces[i] = in.PlainNodeReference()
	}
	return NewVirtualType(vt.lubName, vt.upper.PlainNodeReference(), ifaces)
}

// MakeArray keeps the synthesized component reachable from the array type.
func (vt *VirtualType) MakeArray() ast.Type { return ast.NewArrayType(vt) }

func (vt *VirtualType) String() string { return vt.text }

// ImplementsInterfaceOrSubclassOf extends the ordinary subtype and
// interface checks to VirtualType targets by checking the source against
// the synthesized superclass and interface set. The type checker uses it
// to decide whether an inserted cast can be elided.
func ImplementsInterfaceOrSubclassOf(source, target ast.Type) bool {
	if source.IsDerivedFrom(target) || source.ImplementsInterface(target) {
		return true
	}
	if vt, ok := target.(*VirtualType); ok {
		if ImplementsInterfaceOrSubclassOf(source, vt.upper) {
			return true
		}
		for _, in := range vt.interfaces {
			if source.ImplementsInterface(in) {
				return true
			}
		}
	}
	return false
}
