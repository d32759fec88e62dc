package vocabgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"

	"github.com/cmmoran/sdmarkup/internal/plural"
	"github.com/cmmoran/sdmarkup/pkg/vocabulary"
)

const vocabularyPkg = "github.com/cmmoran/sdmarkup/pkg/vocabulary"

// Generate compiles a vocabulary definition into a Go file of package pkgName
// declaring one constant per type, a Definition function returning the
// definition literal and a Schema function returning it validated.
func Generate(def vocabulary.Definition, pkgName string) (*jen.File, error) {
	s, err := vocabulary.NewSchema(def)
	if err != nil {
		return nil, fmt.Errorf("generate vocabulary: %w", err)
	}
	def = s.Definition()
	names := s.Types()

	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by sdmarkup vocab gen. DO NOT EDIT.")

	f.Commentf("Vocabulary rooted at %s: %s, %s.", def.Root,
		plural.Count(len(names), "type"), plural.Count(propertyCount(def), "property"))
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, name := range names {
			g.Id(ConstName(name)).Op("=").Lit(name)
		}
	})

	types := jen.Dict{}
	for _, name := range names {
		types[jen.Lit(name)] = typeDefValues(def.Types[name])
	}

	f.Comment("Definition returns the vocabulary definition.")
	f.Func().Id("Definition").Params().Qual(vocabularyPkg, "Definition").Block(
		jen.Return(jen.Qual(vocabularyPkg, "Definition").Values(jen.Dict{
			jen.Id("Root"):  jen.Lit(def.Root),
			jen.Id("Types"): jen.Map(jen.String()).Qual(vocabularyPkg, "TypeDef").Values(types),
		})),
	)

	f.Comment("Schema returns the validated vocabulary.")
	f.Func().Id("Schema").Params().Op("*").Qual(vocabularyPkg, "Schema").Block(
		jen.Return(jen.Qual(vocabularyPkg, "MustSchema").Call(jen.Id("Definition").Call())),
	)

	return f, nil
}

func typeDefValues(td vocabulary.TypeDef) *jen.Statement {
	fields := jen.Dict{}
	if td.Extends != "" {
		fields[jen.Id("Extends")] = jen.Lit(td.Extends)
	}
	if len(td.Properties) > 0 {
		props := jen.Dict{}
		for prop, expected := range td.Properties {
			lits := make([]jen.Code, 0, len(expected))
			for _, e := range expected {
				lits = append(lits, jen.Lit(e))
			}
			props[jen.Lit(prop)] = jen.Values(lits...)
		}
		fields[jen.Id("Properties")] = jen.Map(jen.String()).Index().String().Values(props)
	}
	return jen.Values(fields)
}

// GenerateFile loads the vocabulary at input and writes the compiled Go file
// to output, creating its directory. It returns a one-line summary.
func GenerateFile(input, pkgName, output string) (string, error) {
	format, err := vocabulary.FormatOf(input)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("read vocabulary: %w", err)
	}
	def, err := vocabulary.Decode(data, format)
	if err != nil {
		return "", err
	}

	f, err := Generate(def, pkgName)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	if err = f.Save(output); err != nil {
		return "", fmt.Errorf("write %s: %w", output, err)
	}

	return Summary(def), nil
}

// Summary describes a definition as "N types, M properties".
func Summary(def vocabulary.Definition) string {
	return plural.Count(len(def.Types), "type") + ", " + plural.Count(propertyCount(def), "property")
}

// ConstName is the Go identifier of the constant declared for a type.
func ConstName(typ string) string {
	var b strings.Builder
	b.WriteString("Type")
	upper := true
	for _, r := range typ {
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
	return b.String()
}

func propertyCount(def vocabulary.Definition) int {
	n := 0
	for _, td := range def.Types {
		n += len(td.Properties)
	}
	return n
}
