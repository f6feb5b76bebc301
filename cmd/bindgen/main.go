package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"

	"github.com/kn3ll/jui/classfile"
	"github.com/kn3ll/jui/descriptor"
)

const reflectorPkg = "github.com/kn3ll/jui/reflector"

func main() {
	var (
		classPath = flag.String("class", "", "Path to a .class file")
		pkgName   = flag.String("package", "bindings", "Package name for the generated code")
		outPath   = flag.String("out", ".", "Output directory")
		typeName  = flag.String("type", "", "Binding struct name (default: derived from the class name)")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "bindgen generates typed jui bindings from a compiled class file.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *classPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*classPath, *pkgName, *outPath, *typeName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(classPath, pkgName, outPath, typeName string) error {
	data, err := os.ReadFile(classPath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	cf, err := classfile.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("parse class file: %w", err)
	}

	if typeName == "" {
		typeName = goName(simpleName(cf.ClassName())) + "Class"
	}

	file, err := generate(cf, pkgName, typeName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outPath, 0o755); err != nil {
		return err
	}
	target := filepath.Join(outPath, strings.ToLower(simpleName(cf.ClassName()))+"_binding.go")
	if err := file.Save(target); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	fmt.Println("wrote", target)
	return nil
}

// generate emits a binding struct with one typed callable field per
// public member, plus a Bind function resolving them all.
func generate(cf *classfile.ClassFile, pkgName, typeName string) (*jen.File, error) {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by bindgen. DO NOT EDIT.")

	type member struct {
		fieldName string
		method    classfile.MethodInfo
		desc      descriptor.Method
	}

	var members []member
	used := map[string]int{"Class": 1}
	for _, m := range cf.Methods {
		if !m.IsPublic() || m.Name == "<clinit>" {
			continue
		}
		desc, err := descriptor.ParseMethod(m.Descriptor)
		if err != nil {
			return nil, fmt.Errorf("method %s%s: %w", m.Name, m.Descriptor, err)
		}

		name := "New"
		if !m.IsConstructor() {
			name = goName(m.Name)
		}
		used[name]++
		if n := used[name]; n > 1 {
			name = fmt.Sprintf("%s%d", name, n)
		}
		members = append(members, member{fieldName: name, method: m, desc: desc})
	}

	f.Commentf("%s is a typed binding for %s.", typeName, cf.ClassName())
	f.Type().Id(typeName).StructFunc(func(g *jen.Group) {
		g.Id("Class").Op("*").Qual(reflectorPkg, "Class")
		for _, m := range members {
			g.Id(m.fieldName).Op("*").Add(callableType(m.method, m.desc))
		}
	})

	f.Commentf("Bind%s resolves every member against the live class.", typeName)
	f.Func().Id("Bind"+typeName).
		Params(jen.Id("r").Op("*").Qual(reflectorPkg, "Reflector")).
		Params(jen.Op("*").Id(typeName), jen.Error()).
		BlockFunc(func(g *jen.Group) {
			g.List(jen.Id("cls"), jen.Err()).Op(":=").Id("r").Dot("GetClass").Call(jen.Lit(cf.ClassName()))
			g.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err()))
			g.Id("b").Op(":=").Op("&").Id(typeName).Values(jen.Dict{jen.Id("Class"): jen.Id("cls")})
			for _, m := range members {
				g.List(jen.Id("b").Dot(m.fieldName), jen.Err()).Op("=").
					Add(resolveCall(m.method)).Index(funcType(m.method, m.desc)).
					CallFunc(func(args *jen.Group) {
						args.Id("cls")
						if !m.method.IsConstructor() {
							args.Lit(m.method.Name)
						}
					})
				g.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err()))
			}
			g.Return(jen.Id("b"), jen.Nil())
		})

	return f, nil
}

// callableType renders the callable's generic type, e.g.
// reflector.Method[func(reflector.Object, int32) (int64, error)].
func callableType(m classfile.MethodInfo, desc descriptor.Method) *jen.Statement {
	return jen.Qual(reflectorPkg, callableKind(m)).Index(funcType(m, desc))
}

func resolveCall(m classfile.MethodInfo) *jen.Statement {
	switch {
	case m.IsConstructor():
		return jen.Qual(reflectorPkg, "GetConstructor")
	case m.IsStatic():
		return jen.Qual(reflectorPkg, "GetStaticMethod")
	default:
		return jen.Qual(reflectorPkg, "GetMethod")
	}
}

func callableKind(m classfile.MethodInfo) string {
	switch {
	case m.IsConstructor():
		return "Constructor"
	case m.IsStatic():
		return "StaticMethod"
	default:
		return "Method"
	}
}

func funcType(m classfile.MethodInfo, desc descriptor.Method) *jen.Statement {
	return jen.Func().
		ParamsFunc(func(g *jen.Group) {
			if !m.IsStatic() && !m.IsConstructor() {
				g.Qual(reflectorPkg, "Object")
			}
			for i := 0; i < desc.NumParams(); i++ {
				g.Add(goType(desc.Param(i)))
			}
		}).
		ParamsFunc(func(g *jen.Group) {
			switch {
			case m.IsConstructor():
				g.Qual(reflectorPkg, "Object")
			case desc.Return().Kind() != descriptor.KindVoid:
				g.Add(goType(desc.Return()))
			}
			g.Error()
		})
}

// goType maps a descriptor to its native Go representation.
func goType(d descriptor.Descriptor) jen.Code {
	switch d.Kind() {
	case descriptor.KindByte:
		return jen.Int8()
	case descriptor.KindChar:
		return jen.Uint16()
	case descriptor.KindInt:
		return jen.Int32()
	case descriptor.KindLong:
		return jen.Int64()
	case descriptor.KindShort:
		return jen.Int16()
	case descriptor.KindFloat:
		return jen.Float32()
	case descriptor.KindDouble:
		return jen.Float64()
	case descriptor.KindBoolean:
		return jen.Bool()
	case descriptor.KindObject:
		if d.IsString() {
			return jen.Op("*").Qual(reflectorPkg, "String")
		}
		return jen.Qual(reflectorPkg, "Object")
	default: // arrays stay opaque references
		return jen.Qual(reflectorPkg, "Object")
	}
}

func simpleName(className string) string {
	if i := strings.LastIndexByte(className, '/'); i >= 0 {
		return className[i+1:]
	}
	return className
}

// goName converts a member name to an exported Go identifier.
func goName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "Member"
	}
	return b.String()
}
