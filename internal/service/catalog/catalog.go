package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/calvine/marketplace-mcp/internal/domain/event"
	"github.com/calvine/marketplace-mcp/internal/domain/offer"
	portcatalog "github.com/calvine/marketplace-mcp/internal/port/catalog"
	porteventbus "github.com/calvine/marketplace-mcp/internal/port/eventbus"
)

// Service runs one stateless request cycle: fetch candidates (live with
// fallback), filter and paginate, project. Nothing is cached or shared
// between invocations beyond the read-only fallback dataset.
type Service struct {
	live     portcatalog.Source
	fallback portcatalog.Source
	bus      porteventbus.EventBus
}

func NewService(live, fallback portcatalog.Source, bus porteventbus.EventBus) *Service {
	return &Service{live: live, fallback: fallback, bus: bus}
}

// Result is one completed fetch. Empty is a valid terminal state, not an
// error: Envelope is populated either way and Message carries the
// zero-results text when Empty is true.
type Result struct {
	Envelope offer.Envelope
	Empty    bool
	Message  string
}

// FetchOffers answers one filter query. It never returns an error from the
// data path — upstream failures are recovered via the fallback dataset, and
// zero matches are a valid result. The query must already be validated at
// the transport boundary.
func (s *Service) FetchOffers(ctx context.Context, q offer.FilterQuery) Result {
	start := time.Now()
	requestID := uuid.New()

	candidates, origin := s.fetchCandidates(ctx)
	filtered := offer.Apply(candidates, q)

	slog.InfoContext(ctx, "offer fetch completed",
		"request_id", requestID,
		"origin", origin,
		"candidates", len(candidates),
		"matched", len(filtered),
		"duration", time.Since(start),
	)
	if s.bus != nil {
		// Best-effort diagnostics — a publish failure never affects the response.
		if err := s.bus.Publish(ctx, event.FetchCompleted(requestID, origin, len(candidates), len(filtered), time.Since(start))); err != nil {
			slog.WarnContext(ctx, "fetch event publish failed", "error", err)
		}
	}

	if len(filtered) == 0 {
		return Result{
			Envelope: offer.Project(filtered, q),
			Empty:    true,
			Message:  offer.EmptyResultMessage(q),
		}
	}
	return Result{Envelope: offer.Project(filtered, q)}
}

// fetchCandidates owns the fallback decision: the live source is tried
// first and any failure is absorbed here, surfaced only as a warn log and
// the origin marker on the diagnostics event.
func (s *Service) fetchCandidates(ctx context.Context) ([]offer.Offer, event.Origin) {
	candidates, err := s.live.Fetch(ctx)
	if err == nil {
		return candidates, event.OriginLive
	}
	slog.WarnContext(ctx, "live marketplace fetch failed, using fallback dataset", "error", err)

	candidates, err = s.fallback.Fetch(ctx)
	if err != nil {
		// The static dataset cannot actually fail; guard anyway so the
		// contract (always some list) holds.
		slog.ErrorContext(ctx, "fallback dataset fetch failed", "error", err)
		return []offer.Offer{}, event.OriginFallback
	}
	return candidates, event.OriginFallback
}
