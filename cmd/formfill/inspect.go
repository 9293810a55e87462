package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/formfill-go/pkg/formfill"
	"github.com/ukaji3/formfill-go/pkg/formfill/output"
)

var (
	inspectOutput string
	pretty        bool
	answersOnly   bool
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [responses]",
		Short: "Print the aggregated answers of a survey export as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().StringVarP(&inspectOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&answersOnly, "answers-only", false, "Print only the array of answer mappings")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	report, err := formfill.Inspect(args[0], cfg.ToOptions())
	if err != nil {
		return err
	}
	logger.Debug("survey inspected",
		zap.String("source", report.Source),
		zap.Int("respondents", len(report.Respondents)))

	var jsonData []byte
	if answersOnly {
		jsonData, err = output.AnswersToJSON(report.Respondents, pretty)
	} else {
		jsonData, err = output.ToJSON(report, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if inspectOutput != "" {
		if err := os.WriteFile(inspectOutput, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
