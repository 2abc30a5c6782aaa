package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"podio/services/upstream"
	"podio/utils"

	"github.com/gin-gonic/gin"
)

// GetEvent proxies the upstream event lookup, amount fields included.
func (h *FlowHandler) GetEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid event id", c.Param("id"))
		return
	}

	event, err := h.Events.Get(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, upstream.ErrEventNotFound) {
			utils.JSONError(c, http.StatusNotFound, "event not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "could not load event", err.Error())
		return
	}

	c.JSON(http.StatusOK, event)
}
