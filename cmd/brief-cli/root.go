package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nbenliogludev/go-page-brief/internal/config"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	cfg *config.Config
	log logrus.FieldLogger
)

var rootCmd = &cobra.Command{
	Use:   "brief-cli",
	Short: "Turn page metadata into a natural-language build brief",
	Long: `brief-cli reads a page metadata document (description, navigation and
on-screen elements with their grid positions) and writes prose describing
the page, either directly or through an OpenAI-compatible completion service.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.Log.Format = flagLogFormat
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	log = logger.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"command": cmd.Name(),
	})
	return nil
}

func newLogger(lc config.LogConfig) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	level := lc.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l.SetLevel(lvl)

	switch lc.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", lc.Format)
	}
	return l, nil
}
