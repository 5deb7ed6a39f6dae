package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nbenliogludev/go-page-brief/internal/browser"
)

var flagInspectOut string

var inspectCmd = &cobra.Command{
	Use:   "inspect <url>",
	Short: "Capture a metadata document from a live page",
	Long: `Inspect opens the page in headless chromium and records its description,
navigation text, page text and visible elements with their grid positions.

Examples:
  brief-cli inspect https://example.com -o data/0001/metadata.json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&flagInspectOut, "output", "o", "", "Write the document to this file instead of stdout")
}

func runInspect(cmd *cobra.Command, args []string) error {
	mgr, err := browser.NewManager(browser.Options{
		Headless: cfg.Inspect.Headless,
		Timeout:  time.Duration(cfg.Inspect.TimeoutMS) * time.Millisecond,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to start browser manager: %w", err)
	}
	defer mgr.Close()

	doc, err := mgr.Inspect(context.Background(), args[0])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if flagInspectOut == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if err := os.WriteFile(flagInspectOut, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", flagInspectOut, err)
	}
	log.WithField("path", flagInspectOut).Info("document written")
	return nil
}
