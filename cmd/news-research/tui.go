package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/news-research/internal/news"
	"github.com/pdiddy/news-research/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal UI",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	maxArticles, _ := cmd.Flags().GetInt("max-articles")
	p, err := buildPipeline()
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), p, maxArticles)
}

func init() {
	tuiCmd.Flags().Int("max-articles", news.DefaultArticles, "initial number of articles to analyze (3-10)")
	rootCmd.AddCommand(tuiCmd)
}
