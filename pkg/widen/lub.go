package widen

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/tarn-lang/tarn/pkg/ast"
)

// ErrInvalidArgument is returned when a lowest upper bound is requested
// for a nil operand or an empty type list. Callers are expected to have
// guarded against unresolved types before asking.
var ErrInvalidArgument = errors.New("invalid argument")

// LowestUpperBoundAll reduces a list of types to their first common
// supertype by folding LowestUpperBound over the list front to back. The
// fold order does not change which supertypes the result denotes, but it
// does fix the synthetic names and interface ordering of virtual results,
// keeping diagnostics reproducible.
func LowestUpperBoundAll(types []ast.Type) (ast.Type, error) {
	switch len(types) {
	case 0:
		return nil, errors.Wrap(ErrInvalidArgument, "lowest upper bound of an empty type list")
	case 1:
		if types[0] == nil {
			return nil, errors.Wrap(ErrInvalidArgument, "lowest upper bound of a nil type")
		}
		return types[0], nil
	}
	rest, err := LowestUpperBoundAll(types[1:])
	if err != nil {
		return nil, err
	}
	return LowestUpperBound(types[0], rest)
}

// LowestUpperBound returns the first common supertype of a and b, or the
// type itself when they are equal: Double and Float give Number, while Set
// and String give Object.
//
// The result is not guaranteed to be a declared type. When the operands
// share more than one interface not captured by a common superclass, the
// result is a VirtualType implementing all of them.
//
// Calls are expected to be made with resolved generics: wildcards are
// fine, placeholders are not.
func LowestUpperBound(a, b ast.Type) (ast.Type, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "lowest upper bound of a nil type")
	}
	lub := lub(a, b, nil, nil)
	if lub == nil || !lub.UsingGenerics() || lub.IsGenericsPlaceholder() {
		return lub, nil
	}
	// The bound may be parameterized; make its generics arguments
	// compatible with both operands.
	if vt, ok := lub.(*VirtualType); ok {
		// No single parent represents both types, or the operands
		// parameterized the shared interfaces differently. Rebuild the
		// virtual node around a parameterized superclass and interfaces.
		superClass := vt.Upper()
		psc := superClass
		if superClass.UsingGenerics() {
			psc = parameterizeLowestUpperBound(superClass, a, b, lub)
		}
		interfaces := vt.InterfaceSet()
		pinterfaces := make([]ast.Type, len(interfaces))
		for i, in := range interfaces {
			if in.UsingGenerics() {
				pinterfaces[i] = parameterizeLowestUpperBound(in, a, b, lub)
			} else {
				pinterfaces[i] = in
			}
		}
		return NewVirtualType(vt.LubName(), psc, pinterfaces), nil
	}
	return parameterizeLowestUpperBound(lub, a, b, lub), nil
}

// lub carries the interface sets accumulated by prior recursion levels so
// that walking up the superclass chains does not recompute them. Both are
// nil at the public entry point.
func lub(a, b ast.Type, interfacesImplementedByA, interfacesImplementedByB []ast.Type) ast.Type {
	if a.IsArray() && b.IsArray() {
		return lub(a.ComponentType(), b.ComponentType(), interfacesImplementedByA, interfacesImplementedByB).MakeArray()
	}
	if ast.IsObjectType(a) || ast.IsObjectType(b) {
		// One of the operands is at the top of the hierarchy. A single
		// shared type parameter survives; anything else collapses to
		// Object.
		gta := a.GenericsTypes()
		gtb := b.GenericsTypes()
		if len(gta) == 1 && len(gtb) == 1 && gta[0].Name() == gtb[0].Name() {
			return a
		}
		return ast.ObjectType
	}
	if ast.IsPrimitiveVoid(a) || ast.IsPrimitiveVoid(b) {
		if !b.Equals(a) {
			// one type is void, the other is not
			return ast.ObjectType
		}
		return ast.VoidType
	}

	isPrimitiveA := a.IsPrimitive()
	isPrimitiveB := b.IsPrimitive()
	if isPrimitiveA && !isPrimitiveB {
		return lub(ast.GetWrapper(a), b, nil, nil)
	}
	if isPrimitiveB && !isPrimitiveA {
		return lub(a, ast.GetWrapper(b), nil, nil)
	}
	if isPrimitiveA && isPrimitiveB {
		pa, oka := precedenceOf(a)
		pb, okb := precedenceOf(b)
		if oka && okb {
			if pa <= pb {
				return a
			}
			return b
		}
		if a.Equals(b) {
			return a
		}
		return lub(ast.GetWrapper(a), ast.GetWrapper(b), nil, nil)
	}
	if ast.IsNumberType(a) && ast.IsNumberType(b) {
		// arithmetic widening of wrappers, without the class walk
		pa, oka := precedenceOf(a)
		pb, okb := precedenceOf(b)
		if oka && okb {
			if pa <= pb {
				return a
			}
			return b
		}
	}

	// BigInteger and BigDecimal extend the integral ladder beyond the
	// fixed-size primitives covered by the precedence table
	ua := ast.GetUnwrapper(a)
	ub := ast.GetUnwrapper(b)
	if ast.IsBigDecimalType(a) && (IsBigIntCategory(ub) || ast.IsBigIntegerType(b) || ast.IsBigDecimalType(b)) {
		return a
	}
	if ast.IsBigDecimalType(b) && (IsBigIntCategory(ua) || ast.IsBigIntegerType(a)) {
		return b
	}
	if ast.IsBigIntegerType(a) && (IsLongCategory(ub) || ast.IsBigIntegerType(b)) {
		return a
	}
	if ast.IsBigIntegerType(b) && IsLongCategory(ua) {
		return b
	}

	isInterfaceA := a.IsInterface()
	isInterfaceB := b.IsInterface()
	switch {
	case isInterfaceA && isInterfaceB:
		if a.Equals(b) {
			return a
		}
		if b.ImplementsInterface(a) {
			return a
		}
		if a.ImplementsInterface(b) {
			return b
		}
		// each interface may extend one or more others, so find those in
		// common, reduced to the most specific ones
		common := mostSpecificInterfaces(commonDirectInterfaces(a, b))
		if len(common) == 1 {
			return common[0]
		}
		if len(common) > 1 {
			return buildTypeWithInterfaces(a, b, common)
		}
		// no direct extends in common; search the inherited ones before
		// settling for Object
		var matches []ast.Type
		extractMostSpecificImplementedInterfaces(b, a, &matches)
		matches = mostSpecificInterfaces(matches)
		if len(matches) == 0 {
			return ast.ObjectType
		}
		if len(matches) == 1 {
			return matches[0]
		}
		return buildTypeWithInterfaces(a, b, matches)
	case isInterfaceB:
		return lub(b, a, nil, nil)
	case isInterfaceA:
		// a is an interface, b is not. Even if b does not implement a, a
		// may extend interfaces b implements, so collect the matches at
		// the shallowest level that has any.
		var matches []ast.Type
		extractMostSpecificImplementedInterfaces(b, a, &matches)
		matches = mostSpecificInterfaces(matches)
		if len(matches) == 0 {
			return ast.ObjectType
		}
		if len(matches) == 1 {
			return matches[0]
		}
		return buildTypeWithInterfaces(a, b, matches)
	}

	// both operands are classes
	if a.Equals(b) {
		return buildTypeWithInterfaces(a, b, keepLowestCommonInterfaces(interfacesImplementedByA, interfacesImplementedByB))
	}
	if a.IsDerivedFrom(b) || b.IsDerivedFrom(a) {
		return buildTypeWithInterfaces(a, b, keepLowestCommonInterfaces(interfacesImplementedByA, interfacesImplementedByB))
	}

	// collect implemented interfaces before walking up
	if interfacesImplementedByA == nil {
		interfacesImplementedByA = a.AllInterfaces()
	}
	if interfacesImplementedByB == nil {
		interfacesImplementedByB = b.AllInterfaces()
	}

	sa := a.SuperClass()
	sb := b.SuperClass()

	// no superclass means the top of the hierarchy was reached with no
	// common ancestor below Object
	if sa == nil || sb == nil {
		return buildTypeWithInterfaces(ast.ObjectType, ast.ObjectType, keepLowestCommonInterfaces(interfacesImplementedByA, interfacesImplementedByB))
	}

	// if one superclass derives from (or equals) the other, it is the
	// common supertype
	if sa.IsDerivedFrom(sb) || sb.IsDerivedFrom(sa) {
		return buildTypeWithInterfaces(sa, sb, keepLowestCommonInterfaces(interfacesImplementedByA, interfacesImplementedByB))
	}
	// distinct hierarchy branches; recurse on the superclasses
	return lub(sa, sb, interfacesImplementedByA, interfacesImplementedByB)
}

// commonDirectInterfaces intersects the directly extended interfaces of
// two interface operands, preserving a's declaration order.
func commonDirectInterfaces(a, b ast.Type) []ast.Type {
	fromB := map[string]bool{}
	for _, in := range b.Interfaces() {
		fromB[in.Name()] = true
	}
	var common []ast.Type
	for _, in := range a.Interfaces() {
		if fromB[in.Name()] {
			common = append(common, in)
		}
	}
	return common
}

// keepLowestCommonInterfaces intersects the two accumulated interface sets
// and reduces the intersection to its most specific members: an interface
// is kept only if nothing else in the result is a subtype of it.
func keepLowestCommonInterfaces(fromA, fromB []ast.Type) []ast.Type {
	if fromA == nil || fromB == nil {
		return nil
	}
	inB := map[string]bool{}
	for _, in := range fromB {
		inB[in.Name()] = true
	}
	common := map[string]ast.Type{}
	for _, in := range fromA {
		if inB[in.Name()] {
			common[in.Name()] = in
		}
	}
	names := make([]string, 0, len(common))
	for name := range common {
		names = append(names, name)
	}
	sort.Strings(names)
	result := make([]ast.Type, 0, len(common))
	for _, name := range names {
		addMostSpecificInterface(common[name], &result)
	}
	return result
}

// mostSpecificInterfaces reduces an interface set to an antichain: any
// member implied by another member is dropped.
func mostSpecificInterfaces(ifaces []ast.Type) []ast.Type {
	if len(ifaces) < 2 {
		return ifaces
	}
	result := make([]ast.Type, 0, len(ifaces))
	for _, in := range ifaces {
		addMostSpecificInterface(in, &result)
	}
	return result
}

func addMostSpecificInterface(iface ast.Type, nodes *[]ast.Type) {
	for i, node := range *nodes {
		if node.Equals(iface) || node.ImplementsInterface(iface) {
			// a more specific interface is already in the list
			return
		}
		if iface.ImplementsInterface(node) {
			// the new interface is more specific; replace the general one
			(*nodes)[i] = iface
			return
		}
	}
	*nodes = append(*nodes, iface)
}

// extractMostSpecificImplementedInterfaces collects the interfaces from
// inode's extends hierarchy that typ implements, breadth first: deeper
// levels are searched only when the current level yields no match.
func extractMostSpecificImplementedInterfaces(typ, inode ast.Type, result *[]ast.Type) {
	if typ.ImplementsInterface(inode) {
		*result = append(*result, inode)
		return
	}
	interfaces := inode.Interfaces()
	for _, in := range interfaces {
		if typ.ImplementsInterface(in) {
			*result = append(*result, in)
		}
	}
	if len(*result) == 0 && len(interfaces) > 0 {
		// none of the direct extends match, so look further up
		for _, in := range interfaces {
			extractMostSpecificImplementedInterfaces(typ, in, result)
		}
	}
}

// buildTypeWithInterfaces assembles the result for two base types at the
// common upper level plus the interfaces they share which their common
// superclass does not already provide. It returns a nominal type whenever
// one suffices and a VirtualType otherwise.
func buildTypeWithInterfaces(baseType1, baseType2 ast.Type, interfaces []ast.Type) ast.Type {
	if len(interfaces) == 0 {
		if baseType1.Equals(baseType2) {
			return baseType1
		}
		if baseType1.IsDerivedFrom(baseType2) {
			return baseType2
		}
		if baseType2.IsDerivedFrom(baseType1) {
			return baseType1
		}
	}
	if ast.IsObjectType(baseType1) && ast.IsObjectType(baseType2) && len(interfaces) == 1 {
		return interfaces[0]
	}
	var superClass ast.Type
	var name string
	if baseType1.Equals(baseType2) {
		superClass = baseType1
		if ast.IsObjectType(baseType1) {
			name = "Virtual$Object"
		} else {
			name = "Virtual$" + baseType1.Name()
		}
	} else {
		superClass = ast.ObjectType.PlainNodeReference()
		if baseType1.IsDerivedFrom(baseType2) {
			superClass = baseType2
		} else if baseType2.IsDerivedFrom(baseType1) {
			superClass = baseType1
		}
		name = "CommonAssignOf$" + baseType1.Name() + "$" + baseType2.Name()
	}
	kept := make([]ast.Type, 0, len(interfaces))
	for _, in := range interfaces {
		if superClass.IsDerivedFrom(in) || superClass.ImplementsInterface(in) {
			continue
		}
		kept = append(kept, in)
	}
	return NewVirtualType(name, superClass, kept)
}
