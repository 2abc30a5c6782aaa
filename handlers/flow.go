// Package handlers exposes the registration flow over HTTP: one thin gin
// handler per store operation, with all flow rules living in services/flow.
package handlers

import (
	"net/http"

	"podio/middleware"
	"podio/services/flow"
	"podio/services/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FlowHandler serves every endpoint of the registration flow.
type FlowHandler struct {
	Repo     *flow.SessionRepo
	Events   *upstream.EventCache
	API      *upstream.Client
	Logger   *zap.Logger
	Simulate bool // deployment-level override forcing simulated charges
}

// NewFlowHandler wires the flow handler.
func NewFlowHandler(repo *flow.SessionRepo, events *upstream.EventCache, api *upstream.Client, logger *zap.Logger, simulate bool) *FlowHandler {
	return &FlowHandler{
		Repo:     repo,
		Events:   events,
		API:      api,
		Logger:   logger,
		Simulate: simulate,
	}
}

// sessionFromContext returns the session the step gate loaded, or loads it
// for routes that carry a token but no gate.
func (h *FlowHandler) sessionFromContext(c *gin.Context) (*flow.Session, bool) {
	if v, exists := c.Get(middleware.ContextSession); exists {
		if session, ok := v.(*flow.Session); ok {
			return session, true
		}
	}

	sessionID := c.GetString(middleware.ContextSessionID)
	eventID := c.GetInt(middleware.ContextEventID)
	session, err := h.Repo.Load(c.Request.Context(), sessionID, eventID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "flow session not found or expired"})
		return nil, false
	}
	return session, true
}
