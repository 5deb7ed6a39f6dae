package main

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nbenliogludev/go-page-brief/internal/metadata"
)

const metadataFileName = "metadata.json"

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Describe every metadata.json below a directory",
	Long: `Batch walks the directory, describes each metadata.json it finds in path
order and keeps going when one document fails. The command fails if any
document failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	addSummaryFlags(batchCmd)
}

func findMetadataFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == metadataFileName {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	paths, err := findMetadataFiles(args[0])
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no %s found under %s", metadataFileName, args[0])
	}

	completer, err := newCompleter()
	if err != nil {
		return err
	}
	o, err := newOrchestrator(cmd, completer)
	if err != nil {
		return err
	}
	maxWords := summaryMaxWords(cmd)

	ctx := context.Background()
	failed := 0
	for _, path := range paths {
		entry := log.WithField("path", path)

		doc, err := metadata.Load(path)
		if err != nil {
			entry.WithError(err).Error("load failed")
			failed++
			continue
		}
		brief, err := o.Summarize(ctx, doc, maxWords)
		if err != nil {
			entry.WithError(err).Error("describe failed")
			failed++
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Metadata %s: %s\n", filepath.Base(filepath.Dir(path)), brief)
		entry.Debug("described")
	}

	log.WithFields(logrus.Fields{
		"documents": len(paths),
		"failed":    failed,
	}).Info("batch finished")
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(paths))
	}
	return nil
}
