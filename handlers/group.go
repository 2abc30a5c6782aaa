package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"podio/models"
	"podio/services/flow"
	"podio/utils"

	"github.com/gin-gonic/gin"
)

// UpdateGroupInfo updates the team-level fields (name, contact email).
func (h *FlowHandler) UpdateGroupInfo(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	var input struct {
		TeamName     *string `json:"teamName"`
		ContactEmail *string `json:"contactEmail"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if input.TeamName != nil {
		session.Group.SetTeamName(*input.TeamName)
	}
	if input.ContactEmail != nil {
		session.Group.SetContactEmail(*input.ContactEmail)
	}

	if err := h.Repo.SaveGroup(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist group info", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"teamName":     session.Group.TeamName,
		"contactEmail": session.Group.ContactEmail,
	})
}

// AddTeamMember appends a complete member to the roster. Partial members
// are rejected, never stored.
func (h *FlowHandler) AddTeamMember(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	var member models.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := session.Group.AddMember(member); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error(), "")
		return
	}

	if err := h.Repo.SaveGroup(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist team member", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"teamMembers": session.Group.TeamMembers})
}

// UpdateTeamMember shallow-merges a patch into the member at the index.
func (h *FlowHandler) UpdateTeamMember(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid member index", c.Param("index"))
		return
	}

	var patch models.TeamMemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := session.Group.UpdateMember(index, patch); err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		return
	}

	if err := h.Repo.SaveGroup(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist team member", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"teamMembers": session.Group.TeamMembers})
}

// RemoveTeamMember splices the member out; surviving members' error
// entries are re-keyed to their new indices.
func (h *FlowHandler) RemoveTeamMember(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid member index", c.Param("index"))
		return
	}

	if err := session.Group.RemoveMember(index); err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		return
	}

	if err := h.Repo.SaveGroup(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist roster", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"teamMembers": session.Group.TeamMembers,
		"formErrors":  session.Group.FormErrors,
	})
}

// ValidateMemberField validates one field of one member.
func (h *FlowHandler) ValidateMemberField(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid member index", c.Param("index"))
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

	if err := session.Group.ValidateMemberField(index, input.Field, input.Value); err != nil {
		if errors.Is(err, flow.ErrMemberIndex) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	if err := h.Repo.SaveGroup(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist validation", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"formErrors": session.Group.FormErrors})
}

// ValidateGroupForm re-validates the team fields and every member.
func (h *FlowHandler) ValidateGroupForm(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	valid := session.Group.ValidateForm()
	if err := h.Repo.SaveGroup(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist validation", err.Error())
		return
	}

	status := http.StatusOK
	if !valid {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"valid":      valid,
		"formErrors": session.Group.FormErrors,
	})
}
