package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/calvine/marketplace-mcp/internal/adapter/marketplace"
	"github.com/calvine/marketplace-mcp/internal/adapter/memory"
	"github.com/calvine/marketplace-mcp/internal/adapter/static"
	"github.com/calvine/marketplace-mcp/internal/config"
	catalogsvc "github.com/calvine/marketplace-mcp/internal/service/catalog"
	"github.com/calvine/marketplace-mcp/internal/transport"
	mcptransport "github.com/calvine/marketplace-mcp/internal/transport/mcp"
)

// App holds the top-level resources needed to run and gracefully stop the
// server.
type App struct {
	Config     *config.Config
	Server     *http.Server
	CatalogSvc *catalogsvc.Service
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies.
func Build(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if cfg.Marketplace.APIURL == "" {
		// Not fatal: every request will simply take the fallback path.
		slog.Warn("MARKETPLACE_API_URL not set, all requests will serve the fallback dataset")
	}

	// ── Adapters ─────────────────────────────────────────────────────────────
	live := marketplace.NewClient(
		cfg.Marketplace.APIURL,
		cfg.Marketplace.APIKey,
		cfg.Marketplace.Campaign,
		cfg.Marketplace.Timeout,
	)
	fallback := static.NewDataset()
	bus := memory.NewBus()

	// ── Services ─────────────────────────────────────────────────────────────
	catalogSvcInstance := catalogsvc.NewService(live, fallback, bus)

	// ── Transport ────────────────────────────────────────────────────────────
	mcpServer := mcptransport.New(catalogSvcInstance)
	router := transport.NewRouter(ctx, catalogSvcInstance, mcpServer, bus)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("application wired", "port", cfg.Server.Port, "campaign", cfg.Marketplace.Campaign)

	return &App{
		Config:     cfg,
		Server:     server,
		CatalogSvc: catalogSvcInstance,
	}, nil
}
