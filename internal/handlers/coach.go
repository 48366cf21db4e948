// internal/handlers/coach.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/wealthflow-backend/internal/i18n"
	"github.com/wealthflow/wealthflow-backend/internal/services"
	"github.com/wealthflow/wealthflow-backend/internal/session"
	"github.com/wealthflow/wealthflow-backend/internal/utils"
)

type CoachHandler struct {
	coachService *services.CoachService
}

type CoachMessageRequest struct {
	Text string `json:"text"`
}

func NewCoachHandler(coachService *services.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// GET /coach
func (h *CoachHandler) GetTranscript(c *gin.Context) {
	turns, busy := h.coachService.Transcript()
	utils.SuccessResponse(c, gin.H{
		"turns": turns,
		"busy":  busy,
	})
}

// POST /coach/messages
func (h *CoachHandler) SendMessage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req CoachMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	turns, err := h.coachService.Submit(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrBlankMessage):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "text"), nil)
		case errors.Is(err, session.ErrBusy):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyCoachBusy))
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{"turns": turns})
}

// POST /coach/reset
func (h *CoachHandler) ResetSession(c *gin.Context) {
	h.coachService.ResetSession()
	turns, busy := h.coachService.Transcript()
	utils.SuccessResponse(c, gin.H{
		"turns": turns,
		"busy":  busy,
	})
}
