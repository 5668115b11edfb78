// Package mq publishes storefront mutation events over Redis pub/sub and
// runs the worker that turns them into daily counters.
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"sharee/rdx"
)

const eventsChannel = "storefront-events"

// Event is one catalog or order mutation.
type Event struct {
	Name     string `json:"event"`
	EntityID string `json:"entity_id"`
}

// Emitter is fire-and-forget: emission failures are logged, never
// propagated back into the request that caused them.
type Emitter struct {
	cache *rdx.Cache
}

func NewEmitter(cache *rdx.Cache) *Emitter {
	return &Emitter{cache: cache}
}

func (e *Emitter) Emit(ctx context.Context, name, entityID string) {
	if e == nil {
		return
	}
	data, err := json.Marshal(Event{Name: name, EntityID: entityID})
	if err != nil {
		log.Printf("mq: marshal event %s: %v", name, err)
		return
	}
	if err := e.cache.Publish(ctx, eventsChannel, string(data)); err != nil {
		log.Printf("mq: publish event %s: %v", name, err)
	}
}

// StartStatsWorker consumes the event channel and keeps per-day counters
// in Redis, e.g. stats:order-placed:2026-08-28. Run it in its own
// goroutine; it returns when the subscription channel closes.
func StartStatsWorker(ctx context.Context, cache *rdx.Cache) {
	ch := cache.Subscribe(ctx, eventsChannel)
	if ch == nil {
		return
	}

	log.Println("mq: stats worker listening")
	for msg := range ch {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("mq: bad event payload: %v", err)
			continue
		}
		key := fmt.Sprintf("stats:%s:%s", event.Name, time.Now().Format("2006-01-02"))
		cache.Incr(ctx, key)
	}
}
