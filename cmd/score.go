package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/answers"
	"github.com/abhisek/pathfinder/internal/report"
	"github.com/abhisek/pathfinder/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score [files|globs|-]...",
	Short: "Score answer files",
	Long: `Score one or more answer documents (JSON or YAML). Glob patterns may use **.
Pass - to read a JSON document from standard input.`,
	Example: `  pathfinder score answers.json
  pathfinder score 'cohort/**/*.yaml' --format markdown -o report.md
  cat answers.json | pathfinder score - --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := answers.NewLoader(logger, cmd.InOrStdin())
		docs, err := loader.LoadAll(cmd.Context(), args)
		if err != nil {
			return err
		}

		rep := report.New(version, time.Now(), scoreDocuments(docs, logger)...)
		return writeReport(cmd.OutOrStdout(), rep)
	},
}

func init() {
	scoreCmd.Flags().StringP("format", "f", "console", "Output format (console|json|yaml|markdown)")
	scoreCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	scoreCmd.Flags().Int("width", report.DefaultWidth, "Console wrap width")

	_ = v.BindPFlag("format", scoreCmd.Flags().Lookup("format"))
	_ = v.BindPFlag("output", scoreCmd.Flags().Lookup("output"))
	_ = v.BindPFlag("width", scoreCmd.Flags().Lookup("width"))
}

// scoreDocuments scores each document independently.
func scoreDocuments(docs []*answers.Document, logger *zap.Logger) []report.Entry {
	entries := make([]report.Entry, 0, len(docs))
	for _, doc := range docs {
		collected := doc.Collected()
		res := scoring.Score(collected)

		entry := report.NewEntry(doc.Respondent, doc.Path, len(collected), res)
		entry.CatalogVersion = doc.CatalogVersion
		entries = append(entries, entry)

		logger.Info("scored document",
			zap.String("path", doc.Path),
			zap.String("respondent", doc.Name()),
			zap.Int("confidence", res.OverallConfidence),
			zap.String("recommendation", string(res.Recommendation)))
	}
	return entries
}

// writeReport formats rep per the loaded config, to the output file when
// one is configured and to stdout otherwise.
func writeReport(stdout io.Writer, rep report.Report) error {
	formatter, err := report.NewFormatter(cfg.Format, report.Options{
		Width:   cfg.Width,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return formatter.Format(stdout, rep)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	if err := formatter.Format(f, rep); err != nil {
		f.Close()
		return fmt.Errorf("error writing report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	logger.Info("wrote report", zap.String("path", cfg.Output), zap.String("format", cfg.Format))
	return nil
}
