package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/formfill-go/pkg/formfill"
)

var templateDir string

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template [responses]",
		Short: "Generate a template listing every question of a survey export",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplate,
	}
	cmd.Flags().StringVarP(&templateDir, "output", "o", ".", "Directory for the generated template")
	return cmd
}

func runTemplate(cmd *cobra.Command, args []string) error {
	path, err := formfill.GenerateTemplate(args[0], templateDir, cfg.ToOptions(), formfill.WithLogger(logger))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
