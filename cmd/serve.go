package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/acibeam/internal/config"
	"github.com/alexiusacademia/acibeam/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis engine over an HTTP JSON API",
	Long: `Start an HTTP server exposing the beam analysis engine.

Endpoints:
  POST /api/beam/analyze         Beam input → {input, results}
  POST /api/beam/required-steel  {Mu (lb-in), b, d, fc, fy} → required As
  POST /api/beam/report          Beam input → PDF calculation sheet
  POST /api/beam/diagram         Beam input → SVG section diagram
  POST /api/beam/strain          Beam input → SVG strain distribution
  GET  /api/health               Liveness and version

Settings come from the server.* config keys or ACIBEAM_SERVER_* environment
variables. A .env file in the working directory is loaded first.

Examples:
  acibeam serve
  acibeam serve --addr :9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, default from config (server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// A missing .env file is fine; anything it sets feeds ACIBEAM_* lookups.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}

	c, err := config.Load(v)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		c.Server.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(c.Server).Run(ctx)
}
