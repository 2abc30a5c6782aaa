package handlers

import (
	"errors"
	"net/http"
	"time"

	"podio/config"
	"podio/services/upstream"
	"podio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StartSession opens a flow session for an event and returns the signed
// session token. The event must exist upstream before a session is handed
// out.
func (h *FlowHandler) StartSession(c *gin.Context) {
	var input struct {
		EventID int `json:"eventId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	event, err := h.Events.Get(c.Request.Context(), input.EventID)
	if err != nil {
		if errors.Is(err, upstream.ErrEventNotFound) {
			utils.JSONError(c, http.StatusNotFound, "event not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "could not load event", err.Error())
		return
	}

	session, err := h.Repo.Create(c.Request.Context(), event.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create session", err.Error())
		return
	}

	ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	token, err := utils.GenerateSessionToken(session.ID, event.ID, ttl)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue session token", err.Error())
		return
	}

	h.Logger.Info("flow session started",
		zap.String("sessionID", session.ID),
		zap.Int("eventID", event.ID))

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"event": event,
	})
}

// GetSessionState returns a snapshot of every store of the session.
func (h *FlowHandler) GetSessionState(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"eventId":          session.EventID,
		"registrationType": session.Type.RegistrationType,
		"registration":     session.Registration,
		"group":            session.Group,
		"spectator":        session.Spectator,
		"payment":          session.Payment,
	})
}
