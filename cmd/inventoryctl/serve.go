package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nume-crypto/inventory-privacy/cmd/inventoryctl/server"
	"github.com/nume-crypto/inventory-privacy/internal/config"
	"github.com/nume-crypto/inventory-privacy/internal/logger"
)

var serveListenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the proof-generation HTTP server",
	Long: "Sets up Groth16 keys for all four circuits (an insecure, test-only setup, not a " +
		"trusted-setup ceremony) and serves the item-exists/withdraw/deposit/transfer proving " +
		"endpoints plus commitment/blinding utility endpoints.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Logger()

		var overrides config.Config
		if cmd.Flags().Changed("listen") {
			overrides.ListenAddr = serveListenAddr
		}
		cfg, err := config.Load(configPath, overrides)
		if err != nil {
			return err
		}
		if cfg.HashParamsPath != "" {
			log.Warn().Str("path", cfg.HashParamsPath).
				Msg("custom hash-parameter files are not yet supported, falling back to the audited built-in table")
		}

		host, portStr, err := net.SplitHostPort(cfg.ListenAddr)
		if err != nil {
			return fmt.Errorf("serve: invalid listen address %q: %w", cfg.ListenAddr, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("serve: invalid listen port %q: %w", portStr, err)
		}

		log.Info().Str("addr", cfg.ListenAddr).Msg("running circuit setup")
		keys, err := server.SetupAllCircuits()
		if err != nil {
			return err
		}

		srv := server.NewServer(server.Config{Host: host, Port: port}, keys)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-sigCh:
			log.Info().Msg("received interrupt, shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListenAddr, "listen", "", "listen address host:port (overrides config file / INVENTORY_LISTEN_ADDR)")
}
