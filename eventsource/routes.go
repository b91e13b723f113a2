package eventsource

import (
	stderrors "errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/rxkit/errors"
	"github.com/kbukum/rxkit/server"
)

// DispatchResponse is returned by the dispatch route.
type DispatchResponse struct {
	Event     Event `json:"event"`
	Listeners int   `json:"listeners"`
}

// RegisterRoutes installs POST /events/:name, which dispatches an event whose
// payload is the JSON object in the request body. An empty body is allowed.
func RegisterRoutes(r gin.IRoutes, h *Hub) {
	r.POST("/events/:name", dispatchHandler(h))
}

func dispatchHandler(h *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil && !stderrors.Is(err, io.EOF) {
			server.RespondWithError(c, errors.InvalidEvent("body must be a JSON object").WithCause(err))
			return
		}

		e := NewEvent(c.Param("name"), payload)
		n := h.Dispatch(e)
		server.RespondAccepted(c, DispatchResponse{Event: e, Listeners: n})
	}
}
