package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathfinder/internal/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the question catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		sectionID, _ := cmd.Flags().GetString("section")
		validate, _ := cmd.Flags().GetBool("validate")

		if validate {
			if err := catalog.Validate(); err != nil {
				return fmt.Errorf("catalog %s is invalid: %w", catalog.Version, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog %s: %d sections, %d questions, OK\n",
				catalog.Version, len(catalog.Sections()), catalog.QuestionCount())
			return nil
		}
		return listQuestions(cmd.OutOrStdout(), sectionID)
	},
}

func init() {
	questionsCmd.Flags().StringP("section", "s", "", "Only list questions in this section id")
	questionsCmd.Flags().Bool("validate", false, "Check the catalog for structural errors")
}

func listQuestions(w io.Writer, sectionID string) error {
	sections := catalog.Sections()
	if sectionID != "" {
		var found bool
		for _, s := range sections {
			if s.ID == sectionID {
				sections, found = []catalog.Section{s}, true
				break
			}
		}
		if !found {
			ids := make([]string, 0, len(sections))
			for _, s := range sections {
				ids = append(ids, s.ID)
			}
			return fmt.Errorf("unknown section %q (have %s)", sectionID, strings.Join(ids, ", "))
		}
	}

	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s [%s] ~%d min\n", s.Icon, s.Title, s.ID, s.EstimatedMinutes)
		for _, q := range s.Questions {
			fmt.Fprintf(w, "  %-10s %-16s w=%.1f  %s\n", q.ID, q.Type, q.Weight, q.Prompt)
			for j, opt := range q.Options {
				fmt.Fprintf(w, "             %c) %s\n", 'A'+j, opt)
			}
		}
	}
	return nil
}
