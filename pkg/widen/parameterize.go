package widen

import "github.com/tarn-lang/tarn/pkg/ast"

// parameterizeLowestUpperBound takes a bound computed without generic type
// information and the two operands that may parameterize it differently,
// and returns the bound with compatible generics arguments. If the bound
// is Set<T>, a is Set<String> and b is Set<StringBuilder>, the result is
// Set<? extends CharSequence>.
//
// Parameterization is best effort: when either operand fails to resolve a
// binding for the bound, or the two sides disagree in arity, the
// unparameterized bound is returned as-is.
//
// fallback is substituted for a slot when recursing would not terminate,
// i.e. when the slot's arguments are the operands themselves (the
// Enum<E extends Enum<E>> shape).
func parameterizeLowestUpperBound(lub, a, b, fallback ast.Type) ast.Type {
	if !lub.UsingGenerics() {
		return lub
	}
	// a common supertype exists; parameterize it according to the
	// arguments the two operands provide for it
	holderForA := ast.ParameterizedSupertype(a, lub)
	holderForB := ast.ParameterizedSupertype(b, lub)
	var agt, bgt []*ast.GenericsType
	if holderForA != nil {
		agt = holderForA.GenericsTypes()
	}
	if holderForB != nil {
		bgt = holderForB.GenericsTypes()
	}
	if agt == nil || bgt == nil || len(agt) != len(bgt) {
		return lub
	}
	lubGTs := make([]*ast.GenericsType, len(agt))
	for i := range agt {
		if agt[i].String() == bgt[i].String() {
			lubGTs[i] = agt[i]
			continue
		}
		t1 := agt[i].Type()
		t2 := bgt[i].Type()
		var basicType ast.Type
		if ast.EqualsWithGenerics(t1, ast.GetWrapper(a)) && ast.EqualsWithGenerics(t2, ast.GetWrapper(b)) {
			// a self-referencing type: recursing would diverge
			basicType = fallback
		} else {
			widened, err := LowestUpperBound(t1, t2)
			if err != nil {
				return lub
			}
			basicType = widened
		}
		if t1 != nil && t1.Equals(t2) {
			lubGTs[i] = basicType.AsGenericsType()
		} else {
			lubGTs[i] = ast.BuildWildcardType(basicType)
		}
	}
	plain := lub.PlainNodeReference()
	plain.SetGenericsTypes(lubGTs)
	return plain
}
