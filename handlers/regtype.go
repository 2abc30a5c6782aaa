package handlers

import (
	"net/http"

	"podio/models"
	"podio/utils"

	"github.com/gin-gonic/gin"
)

// SetRegistrationType records the flow variant the visitor picked on the
// event-detail step.
func (h *FlowHandler) SetRegistrationType(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	var input struct {
		RegistrationType models.RegistrationType `json:"registrationType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !input.RegistrationType.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "unknown registration type", string(input.RegistrationType))
		return
	}

	session.Type.SetType(input.RegistrationType)
	if err := h.Repo.SaveType(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist registration type", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"registrationType": session.Type.RegistrationType})
}

// SetStep advances (or rewinds) the persisted progress marker.
func (h *FlowHandler) SetStep(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	var input struct {
		Step *int `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	step := *input.Step
	if step < 0 || step >= len(session.Registration.Steps) {
		utils.JSONError(c, http.StatusBadRequest, "step out of range", "")
		return
	}

	session.Registration.SetCurrentStep(step)
	if err := h.Repo.SaveRegistration(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist progress", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"steps":            session.Registration.Steps,
		"currentStepIndex": session.Registration.CurrentStepIndex,
	})
}
