package commands

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/finwire/finfield/field"
	"github.com/finwire/finfield/internal/cli/config"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

var (
	configPath   string
	registryPath string
	verbose      bool
	noColor      bool
)

// session holds what PersistentPreRunE prepared for a subcommand
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	decoder *field.Decoder
}

var current *session

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "finfield",
		Short: "Decode SWIFT FIN field content and message headers",
		Long: color.CyanString(`finfield - SWIFT FIN field decoder

Compiles the field format notation of the SWIFT standards (e.g. ":4!c//8!n6!n")
into matchers and decodes field content into named values.

Features:
  • Field definitions compiled on first use and cached
  • Built-in definitions for common MT tags, or your own YAML table
  • Basic and application header decoding
  • Batch decoding across workers`),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if current != nil && current.logger != nil {
				_ = current.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./finfield.yml)")
	rootCmd.PersistentFlags().StringVar(&registryPath, "registry", "", "Field definition table (overrides registry.file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewDecodeCommand())
	rootCmd.AddCommand(NewCompileCommand())
	rootCmd.AddCommand(NewHeaderCommand())
	rootCmd.AddCommand(NewTagsCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// setup loads configuration, the logger and the decoder
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if !cfg.Output.Color {
		noColor = true
	}
	if noColor {
		color.NoColor = true
	}

	logConfig := zap.NewProductionConfig()
	if verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := logConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	reg := field.DefaultRegistry()
	file := cfg.Registry.File
	if registryPath != "" {
		file = registryPath
	}
	if file != "" {
		reg, err = field.LoadRegistryFile(file)
		if err != nil {
			return err
		}
		logger.Debug("loaded field registry", zap.String("file", file), zap.Int("definitions", reg.Len()))
	}

	current = &session{
		cfg:    cfg,
		logger: logger,
		decoder: field.NewDecoder(reg,
			field.WithLogger(logger),
			field.WithMatchTimeout(cfg.Decoder.MatchTimeout),
			field.WithStrictCharsets(cfg.Decoder.StrictCharsets)),
	}
	return nil
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the finfield version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)
			out := cmd.OutOrStdout()

			titleColor.Fprint(out, "finfield version: ")
			valueColor.Fprintln(out, Version)

			titleColor.Fprint(out, "Git commit: ")
			valueColor.Fprintln(out, GitCommit)

			titleColor.Fprint(out, "Build date: ")
			valueColor.Fprintln(out, BuildDate)

			titleColor.Fprint(out, "Go version: ")
			valueColor.Fprintln(out, goVer)
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			errorColor := color.New(color.FgRed, color.Bold)
			errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return err
	}
	return nil
}
