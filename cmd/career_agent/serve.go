package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-navigator/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running analyses.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = servePort
	}

	p, c, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{Port: cfg.Port}, p, c)
	return srv.Start()
}
