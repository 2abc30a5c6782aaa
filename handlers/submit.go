package handlers

import (
	"errors"
	"net/http"

	"podio/models"
	"podio/services/flow"
	"podio/services/upstream"
	"podio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Submit runs the final step: aggregate validation of the active flow plus
// the payment form, payload assembly for the selected registration type,
// the upstream call, and on confirmed success the reset of every store.
// Failure preserves all state so the visitor can correct and resubmit.
func (h *FlowHandler) Submit(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	var input struct {
		// Explicit by design: callers must say whether this is a simulated
		// charge, there is no hidden default.
		Simulate *bool `json:"simulate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	simulate := *input.Simulate || h.Simulate

	regType := session.Type.RegistrationType
	if !regType.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "no registration type selected", "")
		return
	}

	// One in-flight submission per session.
	acquired, err := h.Repo.AcquireSubmitLock(c.Request.Context(), session.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to lock submission", err.Error())
		return
	}
	if !acquired {
		utils.JSONError(c, http.StatusConflict, "a submission is already in progress", "")
		return
	}
	defer h.Repo.ReleaseSubmitLock(c.Request.Context(), session.ID)

	payload, formErrors, ok := h.validateAndAssemble(c, session, regType, simulate)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"valid":      false,
			"formErrors": formErrors,
		})
		return
	}

	result, err := h.API.Register(c.Request.Context(), payload)
	if err != nil {
		var subErr *upstream.SubmissionError
		if errors.As(err, &subErr) {
			status := http.StatusBadGateway
			if subErr.StatusCode >= 400 && subErr.StatusCode < 500 {
				status = subErr.StatusCode
			}
			utils.JSONError(c, status, subErr.Message, "")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Registration failed", err.Error())
		return
	}

	// Confirmed success: clear every store.
	if err := h.Repo.ResetAll(c.Request.Context(), session); err != nil {
		h.Logger.Error("failed to reset stores after successful registration",
			zap.String("sessionID", session.ID), zap.Error(err))
	}

	h.Logger.Info("registration submitted",
		zap.String("sessionID", session.ID),
		zap.Int("eventID", session.EventID),
		zap.String("registrationType", string(regType)),
		zap.Bool("simulate", simulate))

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// validateAndAssemble runs the aggregate validation for the active flow and
// builds its payload. On validation failure the per-flow error maps are
// persisted and returned.
func (h *FlowHandler) validateAndAssemble(c *gin.Context, session *flow.Session, regType models.RegistrationType, simulate bool) (models.RegistrationRequest, gin.H, bool) {
	ctx := c.Request.Context()

	paymentValid := session.Payment.ValidateForm()
	h.Repo.SavePayment(ctx, session)

	switch regType {
	case models.TypeIndividual:
		requireCategory := h.eventHasCategories(c, session.EventID)
		valid := session.Registration.ValidateForm(requireCategory)
		h.Repo.SaveRegistration(ctx, session)
		if !valid || !paymentValid {
			return models.RegistrationRequest{}, gin.H{
				"personalInfo": session.Registration.FormErrors,
				"payment":      session.Payment.FormErrors,
			}, false
		}
		return flow.AssembleIndividual(session.Registration.PersonalInfo, session.Payment.PaymentInfo, session.EventID, simulate), nil, true

	case models.TypeGroups:
		valid := session.Group.ValidateForm()
		h.Repo.SaveGroup(ctx, session)
		if !valid || !paymentValid {
			return models.RegistrationRequest{}, gin.H{
				"group":   session.Group.FormErrors,
				"payment": session.Payment.FormErrors,
			}, false
		}
		payload, err := flow.AssembleGroup(session.Group, session.Payment.PaymentInfo, session.EventID, simulate)
		if err != nil {
			return models.RegistrationRequest{}, gin.H{"group": gin.H{"teamMembers": err.Error()}}, false
		}
		return payload, nil, true

	default: // models.TypeSpectator
		valid := session.Spectator.ValidateForm()
		h.Repo.SaveSpectator(ctx, session)
		if !valid || !paymentValid {
			return models.RegistrationRequest{}, gin.H{
				"spectatorInfo": session.Spectator.FormErrors,
				"payment":       session.Payment.FormErrors,
			}, false
		}
		return flow.AssembleSpectator(session.Spectator.SpectatorInfo, session.Payment.PaymentInfo, session.EventID, simulate), nil, true
	}
}
