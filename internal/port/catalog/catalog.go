package catalog

import (
	"context"

	"github.com/calvine/marketplace-mcp/internal/domain/offer"
)

//go:generate mockgen -destination=../../mocks/catalog_mocks.go -package=mocks -source=catalog.go

// Source supplies one raw candidate offer list. Implementations may fail —
// the catalog service owns the fallback decision, not the source.
type Source interface {
	Fetch(ctx context.Context) ([]offer.Offer, error)
}
