package memory

import (
	"context"
	"sync"

	"github.com/calvine/marketplace-mcp/internal/domain/event"
	porteventbus "github.com/calvine/marketplace-mcp/internal/port/eventbus"
)

var _ porteventbus.EventBus = (*Bus)(nil)

// Bus is an in-process event bus. Handlers run synchronously on the
// publishing goroutine; they must not block.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[event.Type]map[int]porteventbus.Handler
}

func NewBus() *Bus {
	return &Bus{subs: make(map[event.Type]map[int]porteventbus.Handler)}
}

func (b *Bus) Publish(ctx context.Context, e event.Event) error {
	b.mu.RLock()
	handlers := make([]porteventbus.Handler, 0, len(b.subs[e.Type]))
	for _, h := range b.subs[e.Type] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, e)
	}
	return nil
}

func (b *Bus) Subscribe(_ context.Context, topic event.Type, handler porteventbus.Handler) (porteventbus.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]porteventbus.Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = handler

	return &subscription{bus: b, topic: topic, id: id}, nil
}

type subscription struct {
	bus   *Bus
	topic event.Type
	id    int
}

func (s *subscription) Unsubscribe() {
	s.bus.mu.Lock()
	delete(s.bus.subs[s.topic], s.id)
	s.bus.mu.Unlock()
}
