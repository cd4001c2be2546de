package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/news-research/internal/news"
	"github.com/pdiddy/news-research/internal/render"
)

var researchCmd = &cobra.Command{
	Use:   "research [query]",
	Short: "Run one research query and print the summary and sources",
	Long: `Research fetches news articles for the query, asks the language model for a
summary, and prints both. Notices (errors, warnings, article counts) go to
stderr so stdout carries only the result.`,
	Example: `  news-research research "Tesla stock performance"
  news-research research --max-articles 8 --format json "Apple earnings"`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		maxArticles, _ := cmd.Flags().GetInt("max-articles")
		formatFlag, _ := cmd.Flags().GetString("format")
		format, err := render.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		p, err := buildPipeline()
		if err != nil {
			return err
		}

		res, runErr := p.Run(cmd.Context(), strings.Join(args, " "), maxArticles)
		for _, n := range res.Notices {
			fmt.Fprintln(cmd.ErrOrStderr(), render.NoticeLine(n))
		}
		if runErr != nil {
			return runErr
		}
		return render.Write(cmd.OutOrStdout(), format, res)
	},
}

func init() {
	researchCmd.Flags().Int("max-articles", news.DefaultArticles, "number of articles to analyze (3-10)")
	researchCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(researchCmd)
}
