package ast

import "strings"

// Modifier is a JVM-style access/behavior flag set.
type Modifier int

const (
	Public Modifier = 1 << iota
	Protected
	Private
	Static
	Final
	Abstract
)

func (m Modifier) Has(flag Modifier) bool { return m&flag != 0 }

// Java renders the modifier set in canonical Java declaration order,
// followed by a trailing space when non-empty.
func (m Modifier) Java() string {
	var parts []string
	switch {
	case m.Has(Public):
		parts = append(parts, "public")
	case m.Has(Protected):
		parts = append(parts, "protected")
	case m.Has(Private):
		parts = append(parts, "private")
	}
	if m.Has(Static) {
		parts = append(parts, "static")
	}
	if m.Has(Abstract) {
		parts = append(parts, "abstract")
	}
	if m.Has(Final) {
		parts = append(parts, "final")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + " "
}

// Parameter is a named method or constructor parameter.
type Parameter struct {
	Name string
	Type Type
}

// MethodNode is a method declaration attached to a ClassNode.
type MethodNode struct {
	Name       string
	Modifiers  Modifier
	ReturnType Type
	Params     []*Parameter
	Exceptions []Type
}

// ConstructorNode is a constructor declaration. The declaring class gives
// it its name.
type ConstructorNode struct {
	Modifiers Modifier
	Params    []*Parameter
}

// FieldNode is a field declaration attached to a ClassNode.
type FieldNode struct {
	Name      string
	Modifiers Modifier
	Type      Type
}

// PropertyNode is a Tarn property: a private backing field plus generated
// accessors, surfaced during stub generation.
type PropertyNode struct {
	Name string
	Type Type
}
