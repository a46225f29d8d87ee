package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calvine/marketplace-mcp/internal/domain/event"
	porteventbus "github.com/calvine/marketplace-mcp/internal/port/eventbus"
	catalogsvc "github.com/calvine/marketplace-mcp/internal/service/catalog"
	mcptransport "github.com/calvine/marketplace-mcp/internal/transport/mcp"
	offershandler "github.com/calvine/marketplace-mcp/internal/transport/offers"
	wshandler "github.com/calvine/marketplace-mcp/internal/transport/ws"
)

// NewRouter assembles the gin engine: the REST mirror, the health probe, the
// websocket diagnostics feed, and the mounted MCP endpoint.
func NewRouter(
	ctx context.Context,
	catalogSvc *catalogsvc.Service,
	mcpServer *mcptransport.Server,
	eventBus porteventbus.EventBus,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	offershandler.Register(api.Group("/offers"), catalogSvc)

	hub := wshandler.NewHub()
	hub.Register(api.Group("/ws"))

	// Bridge fetch diagnostics onto the websocket feed so operators can see
	// live-vs-fallback origin per request.
	if _, err := eventBus.Subscribe(ctx, event.TypeFetchCompleted, func(_ context.Context, e event.Event) {
		hub.Broadcast(e)
	}); err != nil {
		slog.Error("failed to subscribe fetch events to WS hub", "error", err)
	}

	r.Any("/mcp", gin.WrapH(mcpServer.Handler()))
	r.Any("/mcp/*path", gin.WrapH(mcpServer.Handler()))

	return r
}
