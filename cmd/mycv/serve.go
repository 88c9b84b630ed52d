package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/mycv/internal/config"
	"github.com/jonathan/mycv/internal/repository"
	"github.com/jonathan/mycv/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the résumé over HTTP",
	Long: "Start an HTTP server answering GET / with the Russian résumé and GET /{lang} with the " +
		"résumé for ru, en or th (anything else falls back to English). Data files are reread on every request.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default 127.0.0.1:3000)")
	rootCmd.AddCommand(serveCmd)
}

func applyServeFlags(cmd *cobra.Command, c *config.Config) {
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		c.Server.Addr = serveAddr
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	// All three languages must load before the server accepts traffic.
	repo, err := repository.New(cfg.AssetsDir)
	if err != nil {
		return fmt.Errorf("failed to load resumes: %w", err)
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Server, repo, renderer, logger)
	return srv.Start(cmd.Context())
}
