package eventbus

import (
	"context"

	"github.com/calvine/marketplace-mcp/internal/domain/event"
)

//go:generate mockgen -destination=../../mocks/eventbus_mocks.go -package=mocks -source=eventbus.go

type Handler func(ctx context.Context, e event.Event)

type Subscription interface {
	Unsubscribe()
}

// EventBus carries diagnostics events from the catalog service to any
// observers (the websocket hub). Publishing is best-effort: a failed publish
// must never affect the tool response.
type EventBus interface {
	Publish(ctx context.Context, e event.Event) error
	Subscribe(ctx context.Context, topic event.Type, handler Handler) (Subscription, error)
}
