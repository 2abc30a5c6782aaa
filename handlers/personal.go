package handlers

import (
	"net/http"

	"podio/models"
	"podio/utils"

	"github.com/gin-gonic/gin"
)

// UpdatePersonalInfo shallow-merges a partial personal-info update into the
// individual store. Updating never validates; the client drives per-field
// validation separately, keystroke by keystroke.
func (h *FlowHandler) UpdatePersonalInfo(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	var patch models.PersonalInfoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session.Registration.Update(patch)
	if err := h.Repo.SaveRegistration(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist personal info", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"personalInfo": session.Registration.PersonalInfo})
}

// ValidatePersonalField validates one field and returns the updated error map.
func (h *FlowHandler) ValidatePersonalField(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	var input struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session.Registration.ValidateField(input.Field, input.Value)
	if err := h.Repo.SaveRegistration(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist validation", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"formErrors": session.Registration.FormErrors})
}

// ValidatePersonalForm re-validates the whole individual form. Category is
// required only when the event defines categories.
func (h *FlowHandler) ValidatePersonalForm(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	requireCategory := h.eventHasCategories(c, session.EventID)
	valid := session.Registration.ValidateForm(requireCategory)
	if err := h.Repo.SaveRegistration(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist validation", err.Error())
		return
	}

	status := http.StatusOK
	if !valid {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"valid":      valid,
		"formErrors": session.Registration.FormErrors,
	})
}

// eventHasCategories checks the cached event record; a failed lookup keeps
// category optional rather than blocking the form.
func (h *FlowHandler) eventHasCategories(c *gin.Context, eventID int) bool {
	event, err := h.Events.Get(c.Request.Context(), eventID)
	if err != nil {
		return false
	}
	return len(event.Categories) > 0
}
