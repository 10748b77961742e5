// Command gentuple writes the fixed-arity argument tuples of package
// signalman: ArgsN, TupleN and ShapeN for N from 1 to -n.
//
// Usage:
//
//	go run ./internal/gentuple -n 12 -o tuple_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"strings"
)

var words = []string{
	"zero", "one", "two", "three", "four", "five", "six",
	"seven", "eight", "nine", "ten", "eleven", "twelve",
}

func main() {
	n := flag.Int("n", 12, "largest arity")
	out := flag.String("o", "tuple_gen.go", "output file")
	flag.Parse()

	if *n < 1 || *n >= len(words) {
		slog.Error("arity out of range", "n", *n, "max", len(words)-1)
		os.Exit(1)
	}

	src, err := format.Source(generate(*n))
	if err != nil {
		slog.Error("formatting generated code", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		slog.Error("writing generated code", "file", *out, "error", err)
		os.Exit(1)
	}
}

// list renders f(0) .. f(n-1) joined by sep.
func list(n int, sep string, f func(i int) string) string {
	parts := make([]string, n)
	for i := range n {
		parts[i] = f(i)
	}
	return strings.Join(parts, sep)
}

func article(word string) string {
	switch word {
	case "eight", "eleven":
		return "an"
	}
	return "a"
}

func generate(largest int) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by \"gentuple -n %d\"; DO NOT EDIT.\n\n", largest)
	b.WriteString("package signalman\n\n")
	b.WriteString("import \"github.com/zoobzio/signalman/bus\"\n")

	for n := 1; n <= largest; n++ {
		word := words[n]
		params := list(n, ", ", func(i int) string { return fmt.Sprintf("T%d", i) })
		args := fmt.Sprintf("Args%d[%s]", n, params)
		shape := fmt.Sprintf("shape%d[%s]", n, params)

		fmt.Fprintf(&b, "\n// Args%d is %s %s-element argument tuple.\n", n, article(word), word)
		fmt.Fprintf(&b, "type Args%d[%s any] struct {\n", n, params)
		for i := range n {
			fmt.Fprintf(&b, "\tV%d T%d\n", i, i)
		}
		b.WriteString("}\n")

		fmt.Fprintf(&b, "\n// Tuple%d builds an Args%d.\n", n, n)
		fmt.Fprintf(&b, "func Tuple%d[%s any](%s) %s {\n", n, params,
			list(n, ", ", func(i int) string { return fmt.Sprintf("v%d T%d", i, i) }), args)
		fmt.Fprintf(&b, "\treturn %s{%s}\n}\n", args,
			list(n, ", ", func(i int) string { return fmt.Sprintf("v%d", i) }))

		fmt.Fprintf(&b, "\ntype shape%d[%s any] struct {\n", n, params)
		for i := range n {
			fmt.Fprintf(&b, "\tc%d Codec[T%d]\n", i, i)
		}
		b.WriteString("}\n")

		fmt.Fprintf(&b, "\n// Shape%d returns the shape of %s-argument signals.\n", n, word)
		fmt.Fprintf(&b, "func Shape%d[%s any](%s) Shape[%s] {\n", n, params,
			list(n, ", ", func(i int) string { return fmt.Sprintf("c%d Codec[T%d]", i, i) }), args)
		fmt.Fprintf(&b, "\treturn %s{%s}\n}\n", shape,
			list(n, ", ", func(i int) string { return fmt.Sprintf("c%d", i) }))

		fmt.Fprintf(&b, "\nfunc (s %s) Arity() int { return %d }\n", shape, n)

		fmt.Fprintf(&b, "\nfunc (s %s) StaticTypes() []bus.Type {\n", shape)
		fmt.Fprintf(&b, "\treturn []bus.Type{%s}\n}\n",
			list(n, ", ", func(i int) string { return fmt.Sprintf("s.c%d.Type()", i) }))

		fmt.Fprintf(&b, "\nfunc (s %s) FromValues(values []bus.Value) (%s, error) {\n", shape, args)
		fmt.Fprintf(&b, "\tvar a %s\n", args)
		b.WriteString("\tif err := checkValues(values, s.StaticTypes()...); err != nil {\n\t\treturn a, err\n\t}\n")
		b.WriteString("\tvar err error\n")
		for i := range n {
			fmt.Fprintf(&b, "\tif a.V%d, err = convert(s.c%d, values, %d); err != nil {\n", i, i, i)
			fmt.Fprintf(&b, "\t\treturn %s{}, err\n\t}\n", args)
		}
		b.WriteString("\treturn a, nil\n}\n")

		fmt.Fprintf(&b, "\nfunc (s %s) ToValues(a %s) []bus.Value {\n", shape, args)
		fmt.Fprintf(&b, "\treturn []bus.Value{%s}\n}\n",
			list(n, ", ", func(i int) string { return fmt.Sprintf("s.c%d.Value(a.V%d)", i, i) }))
	}
	return b.Bytes()
}
