package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/internest/internest-backend/internal/config"
	"github.com/internest/internest-backend/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the internship catalog, preference and statistics endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		DevMode:     cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
