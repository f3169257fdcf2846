package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ignite/recommendations-email-client/internal/api"
	"github.com/ignite/recommendations-email-client/internal/config"
	"github.com/ignite/recommendations-email-client/internal/pkg/logger"
	"github.com/ignite/recommendations-email-client/internal/recoemail"
	"github.com/ignite/recommendations-email-client/internal/snippet"
)

const defaultConfigPath = "config/config.yaml"

// checkPortAvailable verifies that the target port is not already in use.
func checkPortAvailable(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("address %s is already in use: %w", addr, err)
	}
	return ln.Close()
}

// configPath prefers CONFIG_PATH, then the bundled config file if present.
func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return defaultConfigPath
	}
	return ""
}

func main() {
	cfg, err := config.LoadFromEnv(configPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))

	generator, err := recoemail.New(
		cfg.Recommendations.Protocol,
		cfg.Recommendations.Hostname,
		cfg.Recommendations.Port,
	)
	if err != nil {
		logger.Error("invalid recommendations config", "error", err)
		os.Exit(1)
	}

	src, err := cfg.Snippet.Source()
	if err != nil {
		logger.Error("failed to load snippet template", "error", err)
		os.Exit(1)
	}
	renderer, err := snippet.NewRenderer(src)
	if err != nil {
		logger.Error("failed to parse snippet template", "error", err)
		os.Exit(1)
	}

	addr := cfg.Server.Addr()
	if err := checkPortAvailable(addr); err != nil {
		logger.Error("pre-flight check failed", "error", err)
		os.Exit(1)
	}

	server := api.NewServer(cfg, api.NewHandlers(generator, renderer))

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server",
			"addr", addr,
			"base_url", generator.BaseURL(),
			"rate_limit_enabled", cfg.RateLimit.Enabled,
		)
		if err := server.ListenAndServe(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
