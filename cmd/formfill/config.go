package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/formfill-go/internal/config"
)

var configOutput string

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the annotated default configuration",
		Long: `Prints the built-in configuration as YAML. Save it as ` + config.DefaultFile + `
in the working directory (or pass it with --config) and edit the values.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
	cmd.Flags().StringVarP(&configOutput, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configOutput != "" {
		if err := os.WriteFile(configOutput, []byte(config.DefaultYAML()), 0644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), config.DefaultYAML())
	return nil
}
