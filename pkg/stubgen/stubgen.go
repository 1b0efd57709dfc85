// Package stubgen projects Tarn class declarations into compilable Java
// source so javac can resolve them during joint compilation. Stubs carry
// the full signatures but none of the behavior: method bodies either throw
// or return a default value.
package stubgen

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/tarn-lang/tarn/pkg/ast"
)

// Generator writes one .java stub per class under OutputDir, mirroring the
// package structure of the class names.
type Generator struct {
	OutputDir string
}

// GenerateAll emits stubs for every class concurrently.
func (g *Generator) GenerateAll(ctx context.Context, classes []*ast.ClassNode) error {
	eg, _ := errgroup.WithContext(ctx)
	for _, cn := range classes {
		eg.Go(func() error {
			return g.Generate(cn)
		})
	}
	return eg.Wait()
}

// Generate emits the stub for a single class.
func (g *Generator) Generate(cn *ast.ClassNode) error {
	path := filepath.Join(g.OutputDir, filepath.FromSlash(strings.ReplaceAll(cn.Name(), ".", "/"))+".java")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating stub directory for %s", cn.Name())
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating stub for %s", cn.Name())
	}
	if err := WriteStub(f, cn); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing stub for %s", cn.Name())
	}
	return f.Close()
}

// WriteStub renders the Java stub for a class to w.
func WriteStub(w io.Writer, cn *ast.ClassNode) error {
	sw := &stubWriter{w: w}
	sw.writeClass(cn)
	return sw.err
}

type stubWriter struct {
	w   io.Writer
	err error
}

func (sw *stubWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

func (sw *stubWriter) writeClass(cn *ast.ClassNode) {
	name := cn.Name()
	simple := name
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		sw.printf("package %s;\n\n", name[:dot])
		simple = name[dot+1:]
	}

	kind := "class"
	if cn.IsInterface() {
		kind = "interface"
	}
	sw.printf("%s%s %s%s", cn.Modifiers().Java(), kind, simple, typeParams(cn))

	if sc := cn.SuperClass(); sc != nil && !ast.IsObjectType(sc) && !cn.IsInterface() {
		sw.printf(" extends %s", javaType(sc))
	}
	if ifaces := cn.Interfaces(); len(ifaces) > 0 {
		keyword := " implements "
		if cn.IsInterface() {
			keyword = " extends "
		}
		names := make([]string, len(ifaces))
		for i, in := range ifaces {
			names[i] = javaType(in)
		}
		sw.printf("%s%s", keyword, strings.Join(names, ", "))
	}
	sw.printf(" {\n")

	for _, f := range cn.Fields() {
		mods := f.Modifiers
		if cn.IsInterface() {
			// interface fields are implicitly constants and javac insists
			// on the initializer
			mods |= ast.Static | ast.Final
		}
		sw.printf("    %s%s %s = %s;\n", mods.Java(), javaType(f.Type), f.Name, defaultValue(f.Type))
	}
	for _, p := range cn.Properties() {
		sw.writeProperty(cn, p)
	}
	for _, c := range cn.Constructors() {
		sw.printf("    %s%s(%s) { }\n", c.Modifiers.Java(), simple, paramList(c.Params))
	}
	for _, m := range cn.Methods() {
		sw.writeMethod(cn, m)
	}

	sw.printf("}\n")
}

// writeProperty expands a Tarn property into its Java projection: a
// private backing field plus conventional accessors.
func (sw *stubWriter) writeProperty(cn *ast.ClassNode, p *ast.PropertyNode) {
	camel := strcase.ToCamel(p.Name)
	sw.printf("    private %s %s = %s;\n", javaType(p.Type), p.Name, defaultValue(p.Type))
	sw.writeMethod(cn, &ast.MethodNode{
		Name:       "get" + camel,
		Modifiers:  ast.Public,
		ReturnType: p.Type,
	})
	sw.writeMethod(cn, &ast.MethodNode{
		Name:       "set" + camel,
		Modifiers:  ast.Public,
		ReturnType: ast.VoidType,
		Params:     []*ast.Parameter{{Name: p.Name, Type: p.Type}},
	})
}

func (sw *stubWriter) writeMethod(cn *ast.ClassNode, m *ast.MethodNode) {
	sw.printf("    %s%s %s(%s)", m.Modifiers.Java(), javaType(m.ReturnType), m.Name, paramList(m.Params))
	if len(m.Exceptions) > 0 {
		names := make([]string, len(m.Exceptions))
		for i, ex := range m.Exceptions {
			names[i] = javaType(ex)
		}
		sw.printf(" throws %s", strings.Join(names, ", "))
	}
	switch {
	case cn.IsInterface() || m.Modifiers.Has(ast.Abstract):
		sw.printf(";\n")
	case ast.IsPrimitiveVoid(m.ReturnType):
		sw.printf(" { }\n")
	default:
		sw.printf(" { return %s; }\n", defaultValue(m.ReturnType))
	}
}

func paramList(params []*ast.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		parts[i] = javaType(p.Type) + " " + name
	}
	return strings.Join(parts, ", ")
}

// typeParams renders a declaration's type-variable list, "<T, U>".
func typeParams(cn *ast.ClassNode) string {
	gts := cn.GenericsTypes()
	if len(gts) == 0 {
		return ""
	}
	names := make([]string, 0, len(gts))
	for _, gt := range gts {
		if !gt.IsPlaceholder() {
			continue
		}
		name := gt.Name()
		if bounds := gt.UpperBounds(); len(bounds) > 0 {
			boundNames := make([]string, len(bounds))
			for i, b := range bounds {
				boundNames[i] = javaType(b)
			}
			name += " extends " + strings.Join(boundNames, " & ")
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return ""
	}
	return "<" + strings.Join(names, ", ") + ">"
}

// javaType renders a type reference, including generics arguments.
func javaType(t ast.Type) string {
	if t == nil {
		return "java.lang.Object"
	}
	return t.Text()
}

// defaultValue is the initializer stubs use in place of real code.
func defaultValue(t ast.Type) string {
	if t == nil || !t.IsPrimitive() {
		return "null"
	}
	switch t.Name() {
	case "boolean":
		return "false"
	case "char":
		return "(char) 0"
	case "long":
		return "0L"
	case "float":
		return "0.0f"
	case "double":
		return "0.0d"
	default:
		return "0"
	}
}
