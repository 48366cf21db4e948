// internal/handlers/state.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wealthflow/wealthflow-backend/internal/models"
	"github.com/wealthflow/wealthflow-backend/internal/services"
	"github.com/wealthflow/wealthflow-backend/internal/state"
	"github.com/wealthflow/wealthflow-backend/internal/utils"
)

// StateHandler exposes the shell's navigation state: snapshots out,
// intents in. Clients get read-only slices; every mutation goes
// through a named transition.
type StateHandler struct {
	shell        *state.Shell
	ideaService  *services.IdeaService
	coachService *services.CoachService
}

type NavigateRequest struct {
	View state.View `json:"view" validate:"required"`
}

type SetLanguageRequest struct {
	Language models.Language `json:"language" validate:"required"`
}

func NewStateHandler(shell *state.Shell, ideaService *services.IdeaService, coachService *services.CoachService) *StateHandler {
	return &StateHandler{
		shell:        shell,
		ideaService:  ideaService,
		coachService: coachService,
	}
}

// GET /state
func (h *StateHandler) GetState(c *gin.Context) {
	utils.SuccessResponse(c, h.shell.Snapshot())
}

// GET /dashboard
func (h *StateHandler) GetDashboard(c *gin.Context) {
	data := gin.H{
		"user":    h.shell.User(),
		"courses": h.shell.Courses(),
	}
	if top, ok := h.ideaService.Top(); ok {
		data["top_idea"] = top
	}
	utils.SuccessResponse(c, data)
}

// POST /state/navigate
func (h *StateHandler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if !h.shell.Navigate(req.View) {
		utils.BadRequestResponse(c, "Unknown view", gin.H{"view": req.View})
		return
	}

	utils.SuccessResponse(c, h.shell.Snapshot())
}

// POST /state/theme
func (h *StateHandler) ToggleTheme(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"theme": h.shell.ToggleTheme()})
}

// PUT /state/language
func (h *StateHandler) SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if !h.shell.SetLanguage(req.Language) {
		utils.BadRequestResponse(c, "Unsupported language", gin.H{"language": req.Language})
		return
	}

	// Language is presentation state only; the sole side effect is the
	// coach greeting swap while the transcript holds one turn.
	h.coachService.SyncLanguage(req.Language)

	utils.SuccessResponse(c, h.shell.Snapshot())
}

// DELETE /state/toast
func (h *StateHandler) DismissToast(c *gin.Context) {
	h.shell.DismissToast()
	utils.SuccessResponse(c, h.shell.Snapshot())
}
