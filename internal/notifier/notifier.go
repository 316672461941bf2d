// Package notifier fans out mutation events to configured named queues.
// Dispatch is fire-and-forget: services call it only after a successful
// commit, and enqueue failures are logged, never surfaced to the request.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Message is the inert payload carrier pushed onto each destination
// queue. It has no handling logic of its own; consumers decide what a
// given event means.
type Message struct {
	ID           string         `json:"id"`
	Event        string         `json:"event"`
	DispatchedAt time.Time      `json:"dispatched_at"`
	Data         map[string]any `json:"data"`
}

type Notifier struct {
	routes map[string][]string
	queue  Queue
	logger *slog.Logger
}

func New(routes map[string][]string, queue Queue, logger *slog.Logger) *Notifier {
	return &Notifier{
		routes: routes,
		queue:  queue,
		logger: logger,
	}
}

// Dispatch enqueues the payload once per queue configured for the event.
// No queues configured means no dispatch and no error.
func (n *Notifier) Dispatch(ctx context.Context, event string, data map[string]any) {
	queues := n.routes[event]
	if len(queues) == 0 {
		n.logger.Debug("no queues configured for event", "event", event)
		return
	}

	msg := Message{
		ID:           uuid.NewString(),
		Event:        event,
		DispatchedAt: time.Now(),
		Data:         data,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		n.logger.Error("failed to marshal notification message",
			"event", event,
			"error", err)
		return
	}

	for _, queue := range queues {
		if err := n.queue.Push(ctx, queue, payload); err != nil {
			n.logger.Error("failed to enqueue notification",
				"event", event,
				"queue", queue,
				"message_id", msg.ID,
				"error", err)
			continue
		}
		n.logger.Info("notification enqueued",
			"event", event,
			"queue", queue,
			"message_id", msg.ID)
	}
}

// Payload converts an entity into the generic field-value map carried by
// notification messages, going through its JSON representation so field
// visibility rules (e.g. hidden password hashes) apply.
func Payload(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}
	return data
}
