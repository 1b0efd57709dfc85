// Package loader reads type-graph fixtures: TOML files declaring the
// classes and interfaces a tarnc invocation should reason about. The
// loader links declarations into a pkg/ast graph in two passes so classes
// can reference each other in any order.
package loader

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/tarn-lang/tarn/pkg/ast"
)

type graphFile struct {
	Classes []classDecl `toml:"class"`
}

type classDecl struct {
	Name       string       `toml:"name"`
	Kind       string       `toml:"kind,omitempty"` // "class" (default) or "interface"
	Extends    string       `toml:"extends,omitempty"`
	Implements []string     `toml:"implements,omitempty"`
	TypeParams []string     `toml:"type_params,omitempty"`
	Abstract   bool         `toml:"abstract,omitempty"`
	Fields     []fieldDecl  `toml:"field,omitempty"`
	Methods    []methodDecl `toml:"method,omitempty"`
	Properties []propDecl   `toml:"property,omitempty"`
}

type fieldDecl struct {
	Name      string   `toml:"name"`
	Type      string   `toml:"type"`
	Modifiers []string `toml:"modifiers,omitempty"`
}

type methodDecl struct {
	Name      string      `toml:"name"`
	Returns   string      `toml:"returns,omitempty"` // void when omitted
	Params    []paramDecl `toml:"params,omitempty"`
	Modifiers []string    `toml:"modifiers,omitempty"`
}

type paramDecl struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

type propDecl struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// Graph is a resolved set of class declarations plus the well-known JVM
// types they build on.
type Graph struct {
	byName map[string]*ast.ClassNode
	order  []*ast.ClassNode
}

// Classes returns the declared classes in file order.
func (g *Graph) Classes() []*ast.ClassNode { return g.order }

// Lookup resolves a type expression against the graph: a declared or
// well-known name, optionally with generics arguments ("Box<A>") and
// array suffixes ("int[]").
func (g *Graph) Lookup(expr string) (ast.Type, error) {
	return g.resolve(expr, nil)
}

// Load reads and links a graph from a TOML file.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening type graph %s", path)
	}
	defer f.Close()
	g, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading type graph %s", path)
	}
	return g, nil
}

// Parse reads and links a graph from TOML input.
func Parse(r io.Reader) (*Graph, error) {
	var file graphFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, errors.Wrap(err, "parsing type graph")
	}

	g := &Graph{byName: map[string]*ast.ClassNode{}}

	// first pass: declare every class so references resolve in any order
	for _, decl := range file.Classes {
		if decl.Name == "" {
			return nil, errors.New("class declaration without a name")
		}
		if _, dup := g.byName[decl.Name]; dup {
			return nil, errors.Errorf("duplicate class %s", decl.Name)
		}
		var cn *ast.ClassNode
		switch decl.Kind {
		case "", "class":
			cn = ast.NewClass(decl.Name)
			if decl.Abstract {
				cn.SetModifiers(ast.Public | ast.Abstract)
			}
		case "interface":
			cn = ast.NewInterface(decl.Name)
		default:
			return nil, errors.Errorf("class %s: unknown kind %q", decl.Name, decl.Kind)
		}
		if len(decl.TypeParams) > 0 {
			params := make([]*ast.GenericsType, len(decl.TypeParams))
			for i, name := range decl.TypeParams {
				params[i] = ast.NewPlaceholderGenerics(name)
			}
			cn.SetGenericsTypes(params)
		}
		g.byName[decl.Name] = cn
		g.order = append(g.order, cn)
	}

	// second pass: link hierarchy and members
	for _, decl := range file.Classes {
		cn := g.byName[decl.Name]
		scope := map[string]*ast.ClassNode{}
		for _, name := range decl.TypeParams {
			scope[name] = ast.NewPlaceholder(name)
		}
		if decl.Extends != "" {
			if decl.Kind == "interface" {
				return nil, errors.Errorf("interface %s: use implements for extended interfaces", decl.Name)
			}
			super, err := g.resolve(decl.Extends, scope)
			if err != nil {
				return nil, errors.Wrapf(err, "class %s: extends", decl.Name)
			}
			cn.SetSuperClass(super)
		}
		for _, name := range decl.Implements {
			iface, err := g.resolve(name, scope)
			if err != nil {
				return nil, errors.Wrapf(err, "class %s: implements", decl.Name)
			}
			cn.AddInterface(iface)
		}
		for _, f := range decl.Fields {
			ft, err := g.resolve(f.Type, scope)
			if err != nil {
				return nil, errors.Wrapf(err, "field %s.%s", decl.Name, f.Name)
			}
			cn.AddField(&ast.FieldNode{Name: f.Name, Modifiers: parseModifiers(f.Modifiers), Type: ft})
		}
		for _, m := range decl.Methods {
			ret := ast.Type(ast.VoidType)
			if m.Returns != "" {
				var err error
				ret, err = g.resolve(m.Returns, scope)
				if err != nil {
					return nil, errors.Wrapf(err, "method %s.%s", decl.Name, m.Name)
				}
			}
			params := make([]*ast.Parameter, len(m.Params))
			for i, p := range m.Params {
				pt, err := g.resolve(p.Type, scope)
				if err != nil {
					return nil, errors.Wrapf(err, "method %s.%s param %s", decl.Name, m.Name, p.Name)
				}
				params[i] = &ast.Parameter{Name: p.Name, Type: pt}
			}
			mods := parseModifiers(m.Modifiers)
			if cn.IsInterface() {
				mods |= ast.Abstract
			}
			cn.AddMethod(&ast.MethodNode{Name: m.Name, Modifiers: mods, ReturnType: ret, Params: params})
		}
		for _, p := range decl.Properties {
			pt, err := g.resolve(p.Type, scope)
			if err != nil {
				return nil, errors.Wrapf(err, "property %s.%s", decl.Name, p.Name)
			}
			cn.AddProperty(&ast.PropertyNode{Name: p.Name, Type: pt})
		}
	}
	return g, nil
}

// wellKnown maps the names accepted in type expressions besides declared
// classes. Primitives go by keyword; java.lang types also accept their
// simple names.
var wellKnown = map[string]*ast.ClassNode{
	"void":    ast.VoidType,
	"boolean": ast.BooleanType,
	"char":    ast.CharType,
	"byte":    ast.ByteType,
	"short":   ast.ShortType,
	"int":     ast.IntType,
	"long":    ast.LongType,
	"float":   ast.FloatType,
	"double":  ast.DoubleType,

	"java.lang.Object":       ast.ObjectType,
	"java.lang.Number":       ast.NumberType,
	"java.lang.Boolean":      ast.BooleanWrapperType,
	"java.lang.Character":    ast.CharacterType,
	"java.lang.Byte":         ast.ByteWrapperType,
	"java.lang.Short":        ast.ShortWrapperType,
	"java.lang.Integer":      ast.IntegerType,
	"java.lang.Long":         ast.LongWrapperType,
	"java.lang.Float":        ast.FloatWrapperType,
	"java.lang.Double":       ast.DoubleWrapperType,
	"java.lang.String":       ast.StringType,
	"java.lang.Comparable":   ast.ComparableType,
	"java.lang.CharSequence": ast.CharSequenceType,
	"java.io.Serializable":   ast.SerializableType,
	"java.math.BigInteger":   ast.BigIntegerType,
	"java.math.BigDecimal":   ast.BigDecimalType,
}

func init() {
	aliases := map[string]*ast.ClassNode{}
	for name, cn := range wellKnown {
		if short := name[strings.LastIndex(name, ".")+1:]; short != name {
			if _, taken := wellKnown[short]; !taken {
				aliases[short] = cn
			}
		}
	}
	for short, cn := range aliases {
		wellKnown[short] = cn
	}
}

func parseModifiers(names []string) ast.Modifier {
	var m ast.Modifier
	for _, name := range names {
		switch name {
		case "public":
			m |= ast.Public
		case "protected":
			m |= ast.Protected
		case "private":
			m |= ast.Private
		case "static":
			m |= ast.Static
		case "final":
			m |= ast.Final
		case "abstract":
			m |= ast.Abstract
		}
	}
	if m&(ast.Public|ast.Protected|ast.Private) == 0 {
		m |= ast.Public
	}
	return m
}

// resolve parses a type expression: NAME, NAME<args...>, with any number
// of trailing [] pairs.
func (g *Graph) resolve(expr string, scope map[string]*ast.ClassNode) (ast.Type, error) {
	expr = strings.TrimSpace(expr)
	arrayDims := 0
	for strings.HasSuffix(expr, "[]") {
		expr = strings.TrimSpace(strings.TrimSuffix(expr, "[]"))
		arrayDims++
	}
	name := expr
	var args []string
	if open := strings.Index(expr, "<"); open >= 0 {
		if !strings.HasSuffix(expr, ">") {
			return nil, errors.Errorf("malformed type expression %q", expr)
		}
		name = strings.TrimSpace(expr[:open])
		var err error
		args, err = splitTypeArgs(expr[open+1 : len(expr)-1])
		if err != nil {
			return nil, errors.Wrapf(err, "malformed type expression %q", expr)
		}
	}

	var base *ast.ClassNode
	switch {
	case scope[name] != nil:
		base = scope[name]
	case g.byName[name] != nil:
		base = g.byName[name]
	case wellKnown[name] != nil:
		base = wellKnown[name]
	default:
		return nil, errors.Errorf("unknown type %q", name)
	}

	result := ast.Type(base)
	if len(args) > 0 {
		gts := make([]*ast.GenericsType, len(args))
		for i, arg := range args {
			at, err := g.resolve(arg, scope)
			if err != nil {
				return nil, err
			}
			gts[i] = at.AsGenericsType()
		}
		result = base.Parameterized(gts...)
	}
	for ; arrayDims > 0; arrayDims-- {
		result = result.MakeArray()
	}
	return result, nil
}

// splitTypeArgs splits "A, Box<B, C>" on top-level commas only.
func splitTypeArgs(s string) ([]string, error) {
	var args []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, errors.New("unbalanced angle brackets")
			}
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.New("unbalanced angle brackets")
	}
	args = append(args, s[start:])
	for i := range args {
		if strings.TrimSpace(args[i]) == "" {
			return nil, errors.New("empty type argument")
		}
		args[i] = strings.TrimSpace(args[i])
	}
	return args, nil
}
