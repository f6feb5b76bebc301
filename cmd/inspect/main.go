package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kn3ll/jui/classfile"
	"github.com/kn3ll/jui/descriptor"
)

func main() {
	var (
		classPath   = flag.String("class", "", "Path to a .class file")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *classPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -class <file.class>")
		fmt.Fprintln(os.Stderr, "       inspect -class <file.class> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*classPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*classPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(classPath string) error {
	data, err := os.ReadFile(classPath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	cf, err := classfile.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("parse class file: %w", err)
	}

	fmt.Printf("class %s", cf.ClassName())
	if super := cf.SuperClassName(); super != "" {
		fmt.Printf(" extends %s", super)
	}
	fmt.Printf(" (version %d.%d)\n\n", cf.MajorVersion, cf.MinorVersion)

	for _, m := range cf.Methods {
		fmt.Printf("  %-40s %s\n", renderMethod(m), m.Name+m.Descriptor)
	}
	return nil
}

// renderMethod formats a member the way a source declaration would read,
// e.g. "static java.lang.Integer valueOf(int)".
func renderMethod(m classfile.MethodInfo) string {
	desc, err := descriptor.ParseMethod(m.Descriptor)
	if err != nil {
		return m.Name + " <bad descriptor>"
	}

	var b strings.Builder
	if m.IsStatic() {
		b.WriteString("static ")
	}
	b.WriteString(renderType(desc.Return()))
	b.WriteByte(' ')
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i := 0; i < desc.NumParams(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(renderType(desc.Param(i)))
	}
	b.WriteByte(')')
	return b.String()
}

func renderType(d descriptor.Descriptor) string {
	switch d.Kind() {
	case descriptor.KindObject:
		return strings.ReplaceAll(d.ClassName(), "/", ".")
	case descriptor.KindArray:
		return renderType(d.Elem()) + "[]"
	default:
		return d.Kind().String()
	}
}
