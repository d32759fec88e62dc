package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cmmoran/sdmarkup/internal/plural"
	"github.com/cmmoran/sdmarkup/internal/vocabgen"
	"github.com/cmmoran/sdmarkup/pkg/vocabulary"
)

func init() {
	rootCmd.AddCommand(NewVocabCommand())
}

func NewVocabCommand() *cobra.Command {
	var vocabCmd = &cobra.Command{
		Use:   "vocab",
		Short: "vocabulary tools",
		Long:  "Inspect vocabularies and compile them into Go packages",
	}
	vocabCmd.AddCommand(newVocabGenCommand(), newVocabListCommand())
	return vocabCmd
}

func newVocabGenCommand() *cobra.Command {
	var input, pkgName, output string

	var genCmd = &cobra.Command{
		Use:   "gen",
		Short: "compile a vocabulary into Go",
		Long:  "Compile a json, yaml or toml vocabulary into a Go file declaring its types and definition",
		RunE: func(c *cobra.Command, args []string) error {
			summary, err := vocabgen.GenerateFile(input, pkgName, output)
			if err != nil {
				return err
			}
			slog.Info("vocabulary generated", "input", input, "output", output, "vocabulary", summary)
			return nil
		},
	}
	genCmd.Flags().StringVarP(&input, "input", "i", "", "vocabulary file")
	genCmd.Flags().StringVarP(&pkgName, "package", "p", "vocab", "package of the generated file")
	genCmd.Flags().StringVarP(&output, "output", "o", "vocab/vocabulary_gen.go", "file to write")
	_ = genCmd.MarkFlagRequired("input")

	return genCmd
}

func newVocabListCommand() *cobra.Command {
	var file string

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "list vocabulary types",
		Long:  "List the types of a vocabulary with their parent and own properties",
		RunE: func(c *cobra.Command, args []string) error {
			s := vocabulary.Default()
			if file != "" {
				var err error
				if s, err = vocabulary.LoadFile(file); err != nil {
					return err
				}
			}

			def := s.Definition()
			w := c.OutOrStdout()
			for _, name := range s.Types() {
				parent, _ := s.ParentOf(name)
				if parent == "" {
					parent = "-"
				}
				props := plural.Count(len(def.Types[name].Properties), "property")
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", name, parent, props); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintln(w, vocabgen.Summary(def))
			return err
		},
	}
	listCmd.Flags().StringVarP(&file, "vocabulary", "V", "", "json, yaml or toml vocabulary, the embedded schema.org one by default")

	return listCmd
}
