package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pdiddy/news-research/internal/web"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the research page over HTTP",
	Long: `Serve starts an HTTP server with the research page at "/", a JSON endpoint at
"/api/research", and a health check at "/health". The listen address comes from
--addr, NEWS_RESEARCH_SERVER_ADDR, or server.addr in the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			appConfig.Server.Addr = addr
		}
		gin.SetMode(gin.ReleaseMode)

		p, err := buildPipeline()
		if err != nil {
			return err
		}
		router, err := web.NewServer(p, appConfig.Server, logger).Router()
		if err != nil {
			return fmt.Errorf("building router: %w", err)
		}

		// No write timeout: a request spans two upstream calls with no
		// deadline of their own unless configured.
		srv := &http.Server{
			Addr:              appConfig.Server.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", srv.Addr, "provider", appConfig.AI.Provider)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}
