package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/healthroute/priorityroute/server"
)

var (
	serveAddr string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the routing engine over a JSON HTTP API",
		Long: `Starts an HTTP server exposing /health, /api/cities, /api/route and
/api/tour over the selected dataset. Configuration comes from flags,
the environment, or a .env file (HEALTHROUTE_ADDR,
HEALTHROUTE_ALLOW_ORIGINS).`,
		RunE: runServe,
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", `listen address (overrides HEALTHROUTE_ADDR, default ":8080")`)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ds, g, err := loadGraph()
	if err != nil {
		return err
	}

	cfg := server.LoadConfig()
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	log := slog.Default()
	log.Info("dataset loaded", "cities", g.NodeCount(), "roads", g.EdgeCount())

	return server.New(ds, g, log).Run(cfg)
}
