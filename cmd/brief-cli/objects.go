package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/nbenliogludev/go-page-brief/internal/lexical"
	"github.com/nbenliogludev/go-page-brief/internal/metadata"
	"github.com/nbenliogludev/go-page-brief/internal/prefix"
	"github.com/nbenliogludev/go-page-brief/internal/textgen"
)

var (
	flagPrefixCount int
	flagPrefixSeed  int64
)

var objectsCmd = &cobra.Command{
	Use:   "objects <metadata.json>",
	Short: "Print one phrase per visible image, button, input and iframe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := metadata.Load(args[0])
		if err != nil {
			return err
		}
		for _, s := range []textgen.Strategy{textgen.Images{}, textgen.Buttons{}, textgen.Inputs{}, textgen.Iframes{}} {
			res, err := s.Generate(doc)
			if err != nil {
				return err
			}
			for _, p := range res.Parts {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
		}
		return nil
	},
}

var stripCmd = &cobra.Command{
	Use:   "strip <metadata.json>",
	Short: "Print the description with proper nouns removed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := metadata.Load(args[0])
		if err != nil {
			return err
		}
		res, err := textgen.Description{Filter: lexical.NewFilter(lexical.NewProseTagger())}.Generate(doc)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Join(" "))
		return nil
	},
}

var prefixCmd = &cobra.Command{
	Use:   "prefix",
	Short: "Print synthesized lead-in sentences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		seed := flagPrefixSeed
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		table := prefix.DefaultTable()
		for i := 0; i < flagPrefixCount; i++ {
			fmt.Fprintln(cmd.OutOrStdout(), prefix.Synthesize(table, rng))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(objectsCmd, stripCmd, prefixCmd)
	prefixCmd.Flags().IntVarP(&flagPrefixCount, "count", "n", 1, "Number of prefixes to print")
	prefixCmd.Flags().Int64Var(&flagPrefixSeed, "seed", 0, "Random seed (default: time based)")
}
