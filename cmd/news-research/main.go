// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the news-research CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pdiddy/news-research/internal/config"
	"github.com/pdiddy/news-research/internal/news"
	"github.com/pdiddy/news-research/internal/pipeline"
	"github.com/pdiddy/news-research/internal/secrets"
	"github.com/pdiddy/news-research/internal/summary"
	"github.com/pdiddy/news-research/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir holds file-based credentials, one file per key.
const secretsDir = ".secrets/"

// Process-wide state built once in the root pre-run.
var (
	appConfig *types.Config
	logger    *slog.Logger
	logCloser func() error
)

// rootCmd is the base command. Without a subcommand it starts the terminal UI.
var rootCmd = &cobra.Command{
	Use:   "news-research",
	Short: "Search news articles and get AI-powered summaries for equity research",
	Long: `news-research takes a free-text query, retrieves matching news articles from
NewsAPI, and asks a hosted language model (Groq by default) for a summary
focused on equity research.

Run without a subcommand for the terminal UI, "serve" for the web page, or
"research" for a one-shot answer on stdout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}

		var err error
		logger, logCloser, err = setupLogging(cmd)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)

		loaded, err := secrets.Load(secretsDir)
		if err != nil {
			return err
		}
		if len(loaded) > 0 {
			logger.Debug("loaded secrets", "keys", secrets.Names(loaded))
		}

		cfgFile, _ := cmd.Flags().GetString("config")
		v, err := config.New(cfgFile)
		if err != nil {
			return err
		}
		if used := v.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", "path", used)
		}

		appConfig, err = config.Load(v, loaded)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser()
		}
		return nil
	},
	RunE: runTUI,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./news-research.yaml or ~/.config/news-research/news-research.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.String("log-file", "", "write logs to this file (the terminal UI discards logs otherwise)")

	rootCmd.Flags().Int("max-articles", news.DefaultArticles, "initial number of articles to analyze (3-10)")
}

// buildPipeline wires the retriever and summary generator from appConfig.
func buildPipeline() (*pipeline.Pipeline, error) {
	completer, err := summary.NewCompleter(appConfig)
	if err != nil {
		return nil, err
	}
	return pipeline.New(
		news.NewRetriever(news.NewNewsAPIBackend(appConfig), logger),
		summary.NewGenerator(completer, logger),
		logger,
	), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
