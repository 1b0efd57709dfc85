package ast

import "strings"

// ClassNode is the nominal implementation of Type: classes, interfaces,
// primitives, placeholders and arrays. A declaration owns the structure
// (superclass, interfaces, members); references created from it share that
// structure through the redirect pointer and carry only their own generics
// arguments.
type ClassNode struct {
	name          string
	modifiers     Modifier
	interfaceNode bool
	primitive     bool
	placeholder   bool

	superClass   Type
	interfaces   []Type
	methods      []*MethodNode
	constructors []*ConstructorNode
	fields       []*FieldNode
	properties   []*PropertyNode

	generics      []*GenericsType
	usingGenerics bool

	componentType Type
	redirect      *ClassNode
}

// NewClass creates a class declaration extending Object.
func NewClass(name string) *ClassNode {
	return &ClassNode{name: name, modifiers: Public, superClass: ObjectType}
}

// NewInterface creates an interface declaration. Its superclass is Object,
// mirroring the JVM view where "extends" between interfaces is carried in
// the interface list.
func NewInterface(name string) *ClassNode {
	return &ClassNode{name: name, modifiers: Public | Abstract, interfaceNode: true, superClass: ObjectType}
}

// NewPlaceholder creates an unresolved type-variable reference, e.g. the T
// in List<T>.
func NewPlaceholder(name string) *ClassNode {
	return &ClassNode{name: name, modifiers: Public, superClass: ObjectType, placeholder: true, usingGenerics: true}
}

func newPrimitive(name string) *ClassNode {
	return &ClassNode{name: name, modifiers: Public, primitive: true}
}

// decl follows the redirect chain to the declaration node.
func (cn *ClassNode) decl() *ClassNode {
	d := cn
	for d.redirect != nil {
		d = d.redirect
	}
	return d
}

func (cn *ClassNode) Name() string { return cn.name }

func (cn *ClassNode) Text() string {
	if cn.IsArray() {
		return cn.componentType.Text() + "[]"
	}
	if cn.usingGenerics && len(cn.generics) > 0 && !cn.placeholder {
		args := make([]string, len(cn.generics))
		for i, gt := range cn.generics {
			args[i] = gt.String()
		}
		return cn.name + "<" + strings.Join(args, ", ") + ">"
	}
	return cn.name
}

func (cn *ClassNode) Modifiers() Modifier     { return cn.decl().modifiers }
func (cn *ClassNode) SetModifiers(m Modifier) { cn.modifiers = m }

func (cn *ClassNode) IsInterface() bool   { return cn.decl().interfaceNode }
func (cn *ClassNode) IsPrimitive() bool   { return cn.decl().primitive }
func (cn *ClassNode) IsArray() bool       { return cn.componentType != nil }
func (cn *ClassNode) ComponentType() Type { return cn.componentType }

func (cn *ClassNode) SuperClass() Type {
	if cn.IsArray() {
		return ObjectType
	}
	return cn.decl().superClass
}

func (cn *ClassNode) SetSuperClass(superClass Type) { cn.superClass = superClass }

func (cn *ClassNode) Interfaces() []Type {
	if cn.IsArray() {
		return nil
	}
	return cn.decl().interfaces
}

func (cn *ClassNode) AddInterface(iface Type) { cn.interfaces = append(cn.interfaces, iface) }

func (cn *ClassNode) AllInterfaces() []Type {
	var out []Type
	seen := map[string]bool{}
	var collect func(ifaces []Type)
	collect = func(ifaces []Type) {
		for _, in := range ifaces {
			if !seen[in.Name()] {
				seen[in.Name()] = true
				out = append(out, in)
			}
			collect(in.Interfaces())
		}
	}
	for node := Type(cn); node != nil; node = node.SuperClass() {
		collect(node.Interfaces())
	}
	return out
}

func (cn *ClassNode) Methods() []*MethodNode { return cn.decl().methods }

func (cn *ClassNode) AddMethod(m *MethodNode) { cn.methods = append(cn.methods, m) }

func (cn *ClassNode) Constructors() []*ConstructorNode { return cn.decl().constructors }

func (cn *ClassNode) AddConstructor(c *ConstructorNode) { cn.constructors = append(cn.constructors, c) }

func (cn *ClassNode) Fields() []*FieldNode { return cn.decl().fields }

func (cn *ClassNode) AddField(f *FieldNode) { cn.fields = append(cn.fields, f) }

func (cn *ClassNode) Properties() []*PropertyNode { return cn.decl().properties }

func (cn *ClassNode) AddProperty(p *PropertyNode) { cn.properties = append(cn.properties, p) }

func (cn *ClassNode) GenericsTypes() []*GenericsType { return cn.generics }

func (cn *ClassNode) SetGenericsTypes(gts []*GenericsType) {
	cn.generics = gts
	cn.usingGenerics = cn.placeholder || len(gts) > 0
}

func (cn *ClassNode) UsingGenerics() bool         { return cn.usingGenerics }
func (cn *ClassNode) IsGenericsPlaceholder() bool { return cn.placeholder }

func (cn *ClassNode) IsDerivedFrom(target Type) bool {
	if target == nil {
		return false
	}
	if IsPrimitiveVoid(cn) {
		return IsPrimitiveVoid(target)
	}
	if IsObjectType(target) {
		return true
	}
	if cn.IsArray() && target.IsArray() &&
		IsObjectType(target.ComponentType()) && !cn.componentType.IsPrimitive() {
		return true
	}
	for node := Type(cn); node != nil; node = node.SuperClass() {
		if target.Equals(node) {
			return true
		}
	}
	return false
}

func (cn *ClassNode) ImplementsInterface(target Type) bool {
	if target == nil {
		return false
	}
	for node := Type(cn.decl()); node != nil; node = node.SuperClass() {
		if declaresInterface(node, target) {
			return true
		}
	}
	return false
}

func declaresInterface(node, target Type) bool {
	for _, in := range node.Interfaces() {
		if in.Equals(target) || declaresInterface(in, target) {
			return true
		}
	}
	return false
}

func (cn *ClassNode) Equals(other Type) bool {
	if other == nil {
		return false
	}
	if cn.IsArray() {
		return other.IsArray() && cn.componentType.Equals(other.ComponentType())
	}
	if other.IsArray() {
		return false
	}
	return cn.name == other.Name()
}

func (cn *ClassNode) PlainNodeReference() Type {
	return cn.plainRef()
}

func (cn *ClassNode) plainRef() *ClassNode {
	if cn.IsArray() {
		plain := cn.componentType.PlainNodeReference()
		return &ClassNode{name: plain.Name() + "[]", componentType: plain}
	}
	d := cn.decl()
	return &ClassNode{name: d.name, redirect: d, placeholder: d.placeholder, usingGenerics: d.placeholder}
}

// Parameterized returns a reference to the declaration carrying the given
// generics arguments.
func (cn *ClassNode) Parameterized(args ...*GenericsType) *ClassNode {
	ref := cn.plainRef()
	ref.SetGenericsTypes(args)
	return ref
}

func (cn *ClassNode) AsGenericsType() *GenericsType {
	if cn.placeholder {
		return &GenericsType{name: cn.name, typ: cn, placeholder: true}
	}
	return &GenericsType{name: cn.name, typ: cn}
}

func (cn *ClassNode) MakeArray() Type { return NewArrayType(cn) }

// NewArrayType builds an array type over any component, including
// synthesized ones.
func NewArrayType(component Type) *ClassNode {
	return &ClassNode{name: component.Name() + "[]", componentType: component}
}

func (cn *ClassNode) Redirect() Type { return cn.decl() }

func (cn *ClassNode) String() string { return cn.Text() }
