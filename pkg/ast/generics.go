package ast

import "strings"

// GenericsType is a single generics slot: a concrete argument, a named
// placeholder (type variable), or a wildcard with bounds.
type GenericsType struct {
	name        string
	typ         Type
	lowerBound  Type
	upperBounds []Type
	placeholder bool
	wildcard    bool
}

// NewGenericsType wraps a concrete type as a generics argument.
func NewGenericsType(t Type) *GenericsType {
	return &GenericsType{name: t.Name(), typ: t}
}

// NewPlaceholderGenerics creates a type-variable slot, optionally bounded.
func NewPlaceholderGenerics(name string, bounds ...Type) *GenericsType {
	return &GenericsType{name: name, typ: NewPlaceholder(name), upperBounds: bounds, placeholder: true}
}

// BuildWildcardType creates a "? extends ..." wildcard over the given
// upper bounds.
func BuildWildcardType(upper ...Type) *GenericsType {
	return &GenericsType{name: "?", upperBounds: upper, wildcard: true}
}

func (gt *GenericsType) Name() string        { return gt.name }
func (gt *GenericsType) Type() Type          { return gt.typ }
func (gt *GenericsType) LowerBound() Type    { return gt.lowerBound }
func (gt *GenericsType) UpperBounds() []Type { return gt.upperBounds }
func (gt *GenericsType) IsPlaceholder() bool { return gt.placeholder }
func (gt *GenericsType) IsWildcard() bool    { return gt.wildcard }

func (gt *GenericsType) SetLowerBound(t Type) { gt.lowerBound = t }

// String renders the slot the way it would appear in source. Textual
// equality of this rendering is what the widening engine uses to decide
// whether two arguments agree.
func (gt *GenericsType) String() string {
	switch {
	case gt.placeholder:
		return gt.name
	case gt.wildcard:
		s := "?"
		if gt.lowerBound != nil {
			return s + " super " + gt.lowerBound.Text()
		}
		if len(gt.upperBounds) > 0 {
			bounds := make([]string, len(gt.upperBounds))
			for i, b := range gt.upperBounds {
				bounds[i] = b.Text()
			}
			return s + " extends " + strings.Join(bounds, " & ")
		}
		return s
	case gt.typ != nil:
		return gt.typ.Text()
	default:
		return gt.name
	}
}

// EqualsWithGenerics compares two types structurally, including their
// generics arguments. Nominal Equals deliberately ignores generics; the
// widening engine needs the stricter form to detect self-referential
// parameterizations.
func EqualsWithGenerics(a, b Type) bool {
	if a == nil {
		return b == nil
	}
	if b == nil || !a.Equals(b) {
		return false
	}
	if a.UsingGenerics() && !b.UsingGenerics() {
		return false
	}
	gta := a.GenericsTypes()
	gtb := b.GenericsTypes()
	if (gta == nil) != (gtb == nil) {
		return false
	}
	if len(gta) != len(gtb) {
		return false
	}
	for i := range gta {
		if !genericsSlotEqual(gta[i], gtb[i]) {
			return false
		}
	}
	return true
}

func genericsSlotEqual(a, b *GenericsType) bool {
	if a.placeholder != b.placeholder || a.wildcard != b.wildcard || a.name != b.name {
		return false
	}
	if !EqualsWithGenerics(a.typ, b.typ) || !EqualsWithGenerics(a.lowerBound, b.lowerBound) {
		return false
	}
	if len(a.upperBounds) != len(b.upperBounds) {
		return false
	}
	for i := range a.upperBounds {
		if !EqualsWithGenerics(a.upperBounds[i], b.upperBounds[i]) {
			return false
		}
	}
	return true
}

// ParameterizedSupertype walks source's hierarchy, substituting inherited
// generics bindings level by level, until it finds the occurrence of
// target. It returns that occurrence with its arguments resolved as far as
// source's own parameterization allows, or nil if target is not among
// source's supertypes.
func ParameterizedSupertype(source, target Type) Type {
	if source == nil || target == nil {
		return nil
	}
	if source.IsPrimitive() {
		source = GetWrapper(source)
	}
	if source.Equals(target) {
		return source
	}
	for _, super := range parameterizedSupers(source) {
		if found := ParameterizedSupertype(super, target); found != nil {
			return found
		}
	}
	return nil
}

// parameterizedSupers returns source's direct supertypes with source's own
// generics bindings substituted into their arguments.
func parameterizedSupers(source Type) []Type {
	bindings := placeholderBindings(source)
	var supers []Type
	if sc := source.SuperClass(); sc != nil {
		supers = append(supers, substituteGenerics(sc, bindings))
	}
	for _, in := range source.Interfaces() {
		supers = append(supers, substituteGenerics(in, bindings))
	}
	return supers
}

// placeholderBindings zips the declaration's type variables with the
// arguments a reference carries. A declaration binds its variables to
// themselves.
func placeholderBindings(source Type) map[string]*GenericsType {
	params := source.Redirect().GenericsTypes()
	args := source.GenericsTypes()
	bindings := make(map[string]*GenericsType, len(params))
	for i, p := range params {
		if p.IsPlaceholder() && i < len(args) {
			bindings[p.Name()] = args[i]
		}
	}
	return bindings
}

// substituteGenerics applies one level of bindings to t's generics
// arguments, leaving t untouched when nothing is bound.
func substituteGenerics(t Type, bindings map[string]*GenericsType) Type {
	gts := t.GenericsTypes()
	if len(gts) == 0 || len(bindings) == 0 {
		return t
	}
	replaced := make([]*GenericsType, len(gts))
	changed := false
	for i, gt := range gts {
		if gt.IsPlaceholder() {
			if bound, ok := bindings[gt.Name()]; ok {
				replaced[i] = bound
				changed = true
				continue
			}
		}
		replaced[i] = gt
	}
	if !changed {
		return t
	}
	plain := t.PlainNodeReference()
	plain.SetGenericsTypes(replaced)
	return plain
}
