package main

import (
	"fmt"

	"github.com/jonathan/candidate-screener/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analysis, record pools and screening.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config or PORT, else 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context(), cmd, true, true)
	if err != nil {
		return err
	}
	defer s.Close()

	port := s.cfg.Port
	if servePort != 0 {
		port = servePort
	}

	srv, err := server.New(cmd.Context(), server.Config{
		Port:               port,
		Screener:           s.screener,
		RateLimitPerMinute: s.cfg.RateLimitPerMinute,
		RateLimitBurst:     s.cfg.RateLimitBurst,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
