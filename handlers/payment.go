package handlers

import (
	"net/http"

	"podio/models"
	"podio/utils"

	"github.com/gin-gonic/gin"
)

// UpdatePaymentInfo shallow-merges a partial update into the payment store.
// The derived card type rides back in the response so the client can show
// the brand without tracking it itself.
func (h *FlowHandler) UpdatePaymentInfo(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	var patch models.PaymentInfoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session.Payment.Update(patch)
	if err := h.Repo.SavePayment(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist payment info", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"cardType": session.Payment.PaymentInfo.CardType})
}

// ValidatePaymentField validates one field and returns the updated error map.
func (h *FlowHandler) ValidatePaymentField(c *gin.Context) {
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

	session.Payment.ValidateField(input.Field, input.Value)
	if err := h.Repo.SavePayment(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist validation", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"errors": session.Payment.FormErrors})
}

// ValidatePaymentForm re-validates the whole payment form.
func (h *FlowHandler) ValidatePaymentForm(c *gin.Context) {
	session, ok := h.sessionFromContext(c)
	if !ok {
		return
	}

	valid := session.Payment.ValidateForm()
	if err := h.Repo.SavePayment(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist validation", err.Error())
		return
	}

	status := http.StatusOK
	if !valid {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"valid":  valid,
		"errors": session.Payment.FormErrors,
	})
}
