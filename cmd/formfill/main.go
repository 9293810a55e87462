// Package main provides the CLI entry point for formfill.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/formfill-go/internal/config"
	"github.com/ukaji3/formfill-go/internal/logging"
	"github.com/ukaji3/formfill-go/internal/tui"
	"github.com/ukaji3/formfill-go/pkg/formfill"
)

var (
	// Global flags
	configPath string
	logLevel   string
	logFormat  string
	logFile    string
	delimiter  string
	encoding   string

	// Convert flags
	outputDir    string
	templatePath string
	useTUI       bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "formfill [responses.csv|responses.xlsx]",
		Short: "Fill a document template for every survey respondent",
		Long: `formfill reads a survey export (one row per respondent), merges option and
score columns into one answer per question and writes one filled .docx
document per respondent.

Without --template a template listing every question is generated first.`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runConvert,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default: ./"+config.DefaultFile+" if present)")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "Log format: json or console")
	pf.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	pf.StringVar(&delimiter, "delimiter", "", "CSV field delimiter")
	pf.StringVar(&encoding, "encoding", "", "CSV character set, e.g. utf-8 or windows-1251")

	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for the generated documents")
	rootCmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template .docx (default: generate one)")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "Show an interactive progress view")
	_ = rootCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(newInspectCmd(), newTemplateCmd(), newConfigCmd())
	return rootCmd
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	override("log-level", &cfg.Log.Level, logLevel)
	override("log-format", &cfg.Log.Format, logFormat)
	override("log-file", &cfg.Log.File, logFile)
	override("delimiter", &cfg.Input.Delimiter, delimiter)
	override("encoding", &cfg.Input.Encoding, encoding)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The progress view owns the terminal; logs go to a file or nowhere.
	if useTUI && cmd.Name() == cmd.Root().Name() && cfg.Log.File == "" {
		logger = zap.NewNop()
		return nil
	}
	logger, err = logging.New(cfg.Log)
	return err
}

func runConvert(cmd *cobra.Command, args []string) error {
	req := formfill.Request{
		ResponsesPath: args[0],
		TemplatePath:  templatePath,
		OutputDir:     outputDir,
	}
	opts := cfg.ToOptions()

	if useTUI {
		job := formfill.Start(req, opts, formfill.WithLogger(logger))
		outcome, err := tui.Run("formfill", job, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return err
			}
			return fmt.Errorf("progress view failed: %w", err)
		}
		return outcome.Err
	}

	out := cmd.OutOrStdout()
	result, err := formfill.Run(req, opts,
		formfill.WithLogger(logger),
		formfill.WithProgress(func(line string) { fmt.Fprintln(out, line) }))
	if err != nil {
		return err
	}
	if len(result.Files) > 0 {
		fmt.Fprintf(out, "%d documents written to %s\n", len(result.Files), outputDir)
	}
	return nil
}
