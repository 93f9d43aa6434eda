package handlers

import (
	"errors"
	"net/http"

	"lillia/config"
	"lillia/models"
	"lillia/services/deeplink"
	"lillia/services/wizard"
	"lillia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the onboarding engine over HTTP. It owns no state;
// every gesture maps to one engine operation.
type WizardHandler struct {
	Svc    wizard.Service
	Logger *zap.Logger
}

func NewWizardHandler(svc wizard.Service, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Svc: svc, Logger: logger}
}

// respondError maps the engine's error taxonomy onto HTTP responses.
func (h *WizardHandler) respondError(c *gin.Context, err error) {
	var (
		validationErr *wizard.ValidationError
		rejectedErr   *wizard.TransitionRejected
		asyncErr      *wizard.AsyncActionFailed
		noSlotErr     *wizard.NoSlotSelected
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validationErr.Fields})
	case errors.As(err, &rejectedErr):
		// Silent correction: the renderer navigates, the user sees no error.
		c.JSON(http.StatusConflict, gin.H{"redirectTo": rejectedErr.RedirectTo})
	case errors.As(err, &noSlotErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": noSlotErr.Error()})
	case errors.As(err, &asyncErr):
		h.Logger.Warn("async action failed", zap.String("action", asyncErr.Action), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": asyncErr.Message})
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrResendNotAvailable):
		c.JSON(http.StatusTooEarly, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrStaleResult):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("wizard operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error",
			"An unexpected error occurred. Please try again later.")
	}
}

// StartSession begins a session for the chosen program.
func (h *WizardHandler) StartSession(c *gin.Context) {
	var req struct {
		ProgramID string `json:"programId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Svc.StartSession(c.Request.Context(), req.ProgramID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": session.ID, "session": session})
}

// GetSession returns the session and the step the renderer should show.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, show, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	label, enabled := h.Svc.ResendState(session.ID)
	c.JSON(http.StatusOK, gin.H{
		"session":       session,
		"showStep":      show,
		"resendLabel":   label,
		"resendEnabled": enabled,
	})
}

// SubmitDetails validates the details form and advances to verification.
func (h *WizardHandler) SubmitDetails(c *gin.Context) {
	var req wizard.DetailsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Svc.SubmitDetails(c.Request.Context(), c.Param("sessionID"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// VerifyOTP submits the 6-digit code.
func (h *WizardHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Svc.VerifyOTP(c.Request.Context(), c.Param("sessionID"), req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ResendOTP re-sends the code once the cooldown has expired.
func (h *WizardHandler) ResendOTP(c *gin.Context) {
	session, err := h.Svc.ResendOTP(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	label, enabled := h.Svc.ResendState(session.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Verification code resent successfully!", "resendLabel": label, "resendEnabled": enabled})
}

// GetSlots lists the offered slots; ?refresh=true re-queries availability.
func (h *WizardHandler) GetSlots(c *gin.Context) {
	refresh := c.Query("refresh") == "true"
	slots, err := h.Svc.Slots(c.Request.Context(), c.Param("sessionID"), refresh)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// SelectSlot records the chosen slot, superseding any previous selection.
func (h *WizardHandler) SelectSlot(c *gin.Context) {
	var req struct {
		SlotKey string `json:"slotKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Svc.SelectSlot(c.Request.Context(), c.Param("sessionID"), req.SlotKey)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ConfirmBooking freezes the appointment and returns the handoff links.
func (h *WizardHandler) ConfirmBooking(c *gin.Context) {
	session, err := h.Svc.ConfirmBooking(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"handoff": handoffLinks(session),
	})
}

// Reset discards all downstream state and returns to program selection.
func (h *WizardHandler) Reset(c *gin.Context) {
	session, err := h.Svc.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Completion returns the final onboarding summary.
func (h *WizardHandler) Completion(c *gin.Context) {
	record, err := h.Svc.Completion(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func handoffLinks(session *models.WizardSession) deeplink.HandoffLinks {
	return deeplink.HandoffLinks{
		DeepLink:     session.DeepLink,
		PlayStoreURL: config.AppConfig.PlayStoreURL,
		AppStoreURL:  config.AppConfig.AppStoreURL,
	}
}
