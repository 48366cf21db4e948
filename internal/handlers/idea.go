// internal/handlers/idea.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/wealthflow-backend/internal/i18n"
	"github.com/wealthflow/wealthflow-backend/internal/services"
	"github.com/wealthflow/wealthflow-backend/internal/utils"
)

type IdeaHandler struct {
	ideaService *services.IdeaService
}

type GenerateIdeaRequest struct {
	Niche string `json:"niche"`
}

func NewIdeaHandler(ideaService *services.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// GET /ideas
func (h *IdeaHandler) GetIdeas(c *gin.Context) {
	utils.SuccessResponse(c, h.ideaService.List())
}

// GET /ideas/:id
func (h *IdeaHandler) GetIdea(c *gin.Context) {
	idea, err := h.ideaService.Open(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "idea")
		return
	}
	utils.SuccessResponse(c, idea)
}

// GET /ideas/suggestion
func (h *IdeaHandler) GetSuggestion(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"suggestion": h.ideaService.Suggestion(),
		"busy":       h.ideaService.Busy(),
	})
}

// POST /ideas/generate
func (h *IdeaHandler) GenerateIdea(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req GenerateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	suggestion, err := h.ideaService.Generate(c.Request.Context(), req.Niche)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBlankNiche):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "niche"), nil)
		case errors.Is(err, services.ErrGeneratorBusy):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyIdeaGeneratorBusy))
		default:
			// Generation and parse failures both leave the displayed
			// suggestion cleared; the client just sees the failure code.
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyIdeaGenerateFailed))
		}
		return
	}

	utils.SuccessResponse(c, gin.H{"suggestion": suggestion})
}
