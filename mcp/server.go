package mcp

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kastproductions/printify-client/client"
	"github.com/kastproductions/printify-client/internal/config"
	"github.com/kastproductions/printify-client/mcp/internal/handlers"
)

// Server settings that are not part of the client configuration.
type serverConfig struct {
	ServerName      string
	ServerVersion   string
	HTTPAddr        string
	ShutdownTimeout time.Duration
	HTTPReadTimeout time.Duration
	HTTPIdleTimeout time.Duration
}

func loadServerConfig() *serverConfig {
	cfg := &serverConfig{
		ServerName:      getEnvOrDefault("MCP_SERVER_NAME", "printify-mcp-server"),
		ServerVersion:   getEnvOrDefault("MCP_SERVER_VERSION", "0.1.0"),
		HTTPAddr:        getEnvOrDefault("MCP_HTTP_ADDR", ":11546"),
		ShutdownTimeout: parseDurationOrDefault("SHUTDOWN_TIMEOUT", "10s"),
		HTTPReadTimeout: parseDurationOrDefault("HTTP_READ_TIMEOUT", "5s"),
		HTTPIdleTimeout: parseDurationOrDefault("HTTP_IDLE_TIMEOUT", "120s"),
	}
	flag.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "Listen address for the streamable HTTP transport")
	flag.Parse()
	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(envKey, defaultValue string) time.Duration {
	if value := os.Getenv(envKey); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	d, _ := time.ParseDuration(defaultValue)
	return d
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server exposing every client operation as a tool.
func NewServer(c *client.Client, name, version string) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)
	for _, h := range []toolRegisterer{
		handlers.NewShopHandler(c),
		handlers.NewProductHandler(c),
		handlers.NewWebhookHandler(c),
		handlers.NewOrderHandler(c),
		handlers.NewPublishHandler(c),
	} {
		if err := h.RegisterTools(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// RunMCPServer reads PRINTIFY_* configuration, then serves over stdio when
// launched by another process and over streamable HTTP otherwise.
func RunMCPServer() error {
	config.InitLogger()
	cfg, err := config.New()
	if err != nil {
		return err
	}
	lvl, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if cfg.Debug {
		lvl = zerolog.DebugLevel
	}
	config.SetLogLevel(lvl)
	srvCfg := loadServerConfig()

	pc, err := cfg.NewClient()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create client")
		return err
	}
	log.Info().Str("base_url", pc.BaseURL()).Str("shop_id", pc.ShopID()).Msg("Client created")

	s, err := NewServer(pc, srvCfg.ServerName, srvCfg.ServerVersion)
	if err != nil {
		return err
	}

	if shouldUseStdio() {
		log.Info().Msg("Starting Printify MCP server (stdio transport)")
		return server.ServeStdio(s)
	}
	return serveHTTP(s, srvCfg)
}

func serveHTTP(s *server.MCPServer, cfg *serverConfig) error {
	log.Info().Str("addr", cfg.HTTPAddr).Msg("Starting Printify MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	shutdownComplete := make(chan struct{})

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      buildRouter(streamSrv),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: 0, // SSE streams have no deadline
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		defer close(shutdownComplete)
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// buildRouter mounts the MCP endpoint next to health and Prometheus metrics.
func buildRouter(mcpHandler http.Handler) *mux.Router {
	root := mux.NewRouter()
	root.Handle("/mcp", mcpHandler)
	root.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	root.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"UP"}`))
	}).Methods(http.MethodGet)
	return root
}

// shouldUseStdio determines whether to use stdio transport based on environment
func shouldUseStdio() bool {
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}
	// Launched by another process when stdin is not a terminal.
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
