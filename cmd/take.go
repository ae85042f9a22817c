package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/app"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take the assessment interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTake(cmd)
	},
}

func runTake(cmd *cobra.Command) error {
	outcome, err := app.Run(app.Options{})
	if err != nil {
		return err
	}
	if !outcome.Completed {
		logger.Info("assessment not completed")
		return nil
	}

	last := outcome.Last
	logger.Info("assessment completed",
		zap.String("session", last.SessionID),
		zap.Int("answered", last.AnsweredCount()),
		zap.Duration("elapsed", last.Elapsed(last.FinishedAt)),
		zap.Int("confidence", last.Result.OverallConfidence),
		zap.String("recommendation", string(last.Result.Recommendation)))
	return nil
}
