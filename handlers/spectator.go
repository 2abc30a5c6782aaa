package handlers

import (
	"net/http"

	"podio/models"
	"podio/utils"

	"github.com/gin-gonic/gin"
)

// UpdateSpectatorInfo shallow-merges a partial update into the spectator store.
func (h *FlowHandler) UpdateSpectatorInfo(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	var patch models.SpectatorInfoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session.Spectator.Update(patch)
	if err := h.Repo.SaveSpectator(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist spectator info", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"spectatorInfo": session.Spectator.SpectatorInfo})
}

// ValidateSpectatorField validates one field. Quantity arrives as a number
// and has its own branch; every other field is text.
func (h *FlowHandler) ValidateSpectatorField(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	var input struct {
		Field    string `json:"field" binding:"required"`
		Value    string `json:"value"`
		Quantity *int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if input.Field == "quantity" {
		quantity := 0
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		session.Spectator.ValidateQuantity(quantity)
	} else {
		session.Spectator.ValidateField(input.Field, input.Value)
	}

	if err := h.Repo.SaveSpectator(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist validation", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"formErrors": session.Spectator.FormErrors})
}

// ValidateSpectatorForm re-validates the whole spectator form.
func (h *FlowHandler) ValidateSpectatorForm(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	valid := session.Spectator.ValidateForm()
	if err := h.Repo.SaveSpectator(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist validation", err.Error())
		return
	}

	status := http.StatusOK
	if !valid {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"valid":      valid,
		"formErrors": session.Spectator.FormErrors,
	})
}
