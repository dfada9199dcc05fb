package events

import (
	"context"
	"log/slog"
	"time"
)

// Tracker forwards errors caught by the global error handler. Delivery
// is fire-and-forget: a failing hook must never turn into a second
// error on the request path.
type Tracker struct {
	Publisher Publisher
	Logger    *slog.Logger
}

func (t *Tracker) Report(method, path string, status int, err error) {
	if t == nil || t.Publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	event := map[string]any{
		"type":    "request_error",
		"method":  method,
		"path":    path,
		"status":  status,
		"message": err.Error(),
		"ts":      time.Now().Unix(),
	}
	if perr := t.Publisher.PublishEvent(ctx, TopicErrorEvents, path, event); perr != nil {
		if t.Logger != nil {
			t.Logger.Warn("error tracker publish failed", "error", perr)
		}
	}
}
