package cmd

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/sdmarkup/internal/plural"
	"github.com/cmmoran/sdmarkup/pkg/action/rewrite"
	"github.com/cmmoran/sdmarkup/pkg/action/watch"
	"github.com/cmmoran/sdmarkup/pkg/parser"
)

func init() {
	var rewriteCmd = NewRewriteCommand()
	rootCmd.AddCommand(rewriteCmd)
}

func NewRewriteCommand() *cobra.Command {
	var (
		options   = parser.NewOptions()
		cfg       = rewrite.Config{}
		watchMode bool
	)

	// rewriteCmd represents the sdmarkup rewrite command
	var rewriteCmd = &cobra.Command{
		Use:   "rewrite [patterns...]",
		Short: "rewrite directives",
		Long: "Rewrite data-sd directives in the matched HTML files. Patterns are files, directories " +
			"(every .html and .htm file below them) or doublestar globs.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			// flags win over SDMARKUP_PARSER_* variables, which win over the config file
			options.Semantic = viper.GetString("parser.semantic")
			options.Suffixes = viper.GetStringSlice("parser.suffixes")
			options.Disabled = viper.GetBool("parser.disabled")
			options.VocabularyFile = viper.GetString("parser.vocabulary_file")
			options.Logger = slog.Default()
			options.Normalize()
			cfg.Patterns = args
			cfg.Stdout = c.OutOrStdout()

			if watchMode {
				ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				return watch.Run(ctx, options, watch.Config{Rewrite: cfg})
			}

			results, err := rewrite.Run(options, cfg)
			if err != nil {
				return err
			}
			var changed, directives, dropped int
			for _, r := range results {
				if r.Changed {
					changed++
				}
				directives += r.Stats.Directives
				dropped += r.Stats.Dropped
			}
			slog.Info("rewrite complete",
				"files", plural.Count(len(results), "file"),
				"changed", changed,
				"directives", plural.Count(directives, "directive"),
				"dropped", dropped)
			return nil
		},
	}
	rewriteCmd.Flags().StringVarP(&options.Semantic, "semantic", "s", parser.DefaultSemantic, "markup flavor: Microdata or RDFa")
	rewriteCmd.Flags().StringSliceVarP(&options.Suffixes, "suffix", "x", []string{}, "extra directive suffixes, data-<suffix> (sd is always registered)")
	rewriteCmd.Flags().BoolVar(&options.Disabled, "disabled", false, "strip directives without emitting markup")
	rewriteCmd.Flags().StringVarP(&options.VocabularyFile, "vocabulary", "V", "", "json, yaml or toml vocabulary replacing the embedded schema.org one")
	rewriteCmd.Flags().StringVarP(&cfg.OutputDirectory, "output-directory", "o", "", "directory to write rewritten files")
	rewriteCmd.Flags().BoolVarP(&cfg.InPlace, "in-place", "w", false, "rewrite files in place")
	rewriteCmd.Flags().BoolVarP(&cfg.Diff, "diff", "d", false, "print a diff instead of the rewritten markup")
	rewriteCmd.Flags().StringVarP(&cfg.Manifest, "manifest", "m", "", "manifest file recording every rewritten file")
	rewriteCmd.Flags().BoolVar(&watchMode, "watch", false, "keep running and rewrite files again when they change")

	for key, flag := range map[string]string{
		"parser.semantic":        "semantic",
		"parser.suffixes":        "suffix",
		"parser.disabled":        "disabled",
		"parser.vocabulary_file": "vocabulary",
	} {
		_ = viper.BindPFlag(key, rewriteCmd.Flags().Lookup(flag))
	}

	return rewriteCmd
}
