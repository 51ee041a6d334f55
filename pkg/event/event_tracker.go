package event

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	contextKey     = "eventCtx"
	requestIDKey   = "request_id"
	publishTimeout = 2 * time.Second
)

type EventTrackerMiddleware struct {
	eventService EventService
}

func NewEventTrackerMiddleware(eventSvc EventService) *EventTrackerMiddleware {
	return &EventTrackerMiddleware{
		eventService: eventSvc,
	}
}

// TrackEvent publishes a change event once the wrapped handler has
// succeeded and called Record. Publish failures are logged, never returned
// to the client. A nil tracker passes requests through.
func (m *EventTrackerMiddleware) TrackEvent(resource, action string) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		eventCtx := &EventContext{
			Resource:  resource,
			Operation: action,
		}
		c.Set(contextKey, eventCtx)

		c.Next()

		if eventCtx.ResourceID == "" || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), publishTimeout)
		defer cancel()

		err := m.eventService.Emit(ctx, &Event{
			Resource:   resource,
			Action:     action,
			ResourceID: eventCtx.ResourceID,
			Payload:    eventCtx.NewData,
			RequestID:  c.GetString(requestIDKey),
		})
		if err != nil {
			log.Warn().Err(err).
				Str("resource", resource).
				Str("action", action).
				Str("resource_id", eventCtx.ResourceID).
				Msg("Failed to emit event")
		}
	}
}

// Record marks the tracked request's entity. It is a no-op on untracked routes.
func Record(c *gin.Context, resourceID interface{}, data interface{}) {
	v, ok := c.Get(contextKey)
	if !ok {
		return
	}
	eventCtx, ok := v.(*EventContext)
	if !ok {
		return
	}
	eventCtx.ResourceID = fmt.Sprint(resourceID)
	eventCtx.NewData = data
}
