package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbenliogludev/go-page-brief/internal/lexical"
	"github.com/nbenliogludev/go-page-brief/internal/llm"
	"github.com/nbenliogludev/go-page-brief/internal/metadata"
	"github.com/nbenliogludev/go-page-brief/internal/summary"
	"github.com/nbenliogludev/go-page-brief/internal/textgen"
)

var (
	flagMaxWords   int
	flagNavbarMode string
	flagDryRun     bool
)

var describeCmd = &cobra.Command{
	Use:   "describe <metadata.json>",
	Short: "Write a build brief for one metadata document",
	Long: `Describe runs every text strategy over the document and asks the completion
service for a brief. With --dry-run the request is printed instead of sent.

Examples:
  brief-cli describe data/0001/metadata.json
  brief-cli describe data/0001/metadata.json --max-words 80 --navbar-mode filter
  brief-cli describe data/0001/metadata.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
	addSummaryFlags(describeCmd)
	describeCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the request instead of calling the completion service")
}

func addSummaryFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagMaxWords, "max-words", 0, "Approximate brief length in words (0 = unbounded, default from config)")
	cmd.Flags().StringVar(&flagNavbarMode, "navbar-mode", "", "Navbar handling: parse or filter (default from config)")
}

func summaryMaxWords(cmd *cobra.Command) int {
	if cmd.Flags().Changed("max-words") {
		return flagMaxWords
	}
	return cfg.Summary.MaxWords
}

// newOrchestrator wires the orchestrator from config. A nil completer is
// allowed for dry runs.
func newOrchestrator(cmd *cobra.Command, completer llm.Completer) (*summary.Orchestrator, error) {
	mode := cfg.Summary.NavbarMode
	if cmd.Flags().Changed("navbar-mode") {
		mode = flagNavbarMode
	}
	navbarMode, err := textgen.ParseNavbarMode(mode)
	if err != nil {
		return nil, err
	}

	opts := []summary.Option{
		summary.WithNavbarMode(navbarMode),
		summary.WithDelimiter(cfg.Summary.Delimiter),
		summary.WithLogger(log),
	}
	if cfg.Summary.DetectLanguage {
		opts = append(opts, summary.WithLanguageDetector(lexical.NewLinguaDetector()))
	}
	return summary.New(completer, lexical.NewProseTagger(), opts...), nil
}

func newCompleter() (llm.Completer, error) {
	return llm.NewOpenAIClient(llm.Config{
		APIKeyEnv:   cfg.OpenAI.APIKeyEnv,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
	}, log)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	doc, err := metadata.Load(args[0])
	if err != nil {
		return err
	}
	maxWords := summaryMaxWords(cmd)

	if flagDryRun {
		o, err := newOrchestrator(cmd, nil)
		if err != nil {
			return err
		}
		prompt, ok, err := o.BuildPrompt(doc, maxWords)
		if err != nil {
			return err
		}
		if !ok {
			log.WithField("path", args[0]).Warn("document has no content to describe")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "SYSTEM:"+prompt.System)
		for _, turn := range prompt.Turns {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 40))
			fmt.Fprintln(cmd.OutOrStdout(), turn)
		}
		return nil
	}

	completer, err := newCompleter()
	if err != nil {
		return err
	}
	o, err := newOrchestrator(cmd, completer)
	if err != nil {
		return err
	}

	brief, err := o.Summarize(context.Background(), doc, maxWords)
	if err != nil {
		return fmt.Errorf("describe %s: %w", args[0], err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), brief)
	return nil
}
