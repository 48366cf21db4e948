// internal/handlers/profile.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wealthflow/wealthflow-backend/internal/models"
	"github.com/wealthflow/wealthflow-backend/internal/services"
	"github.com/wealthflow/wealthflow-backend/internal/utils"
)

type ProfileHandler struct {
	userService *services.UserService
}

func NewProfileHandler(userService *services.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	utils.SuccessResponse(c, h.userService.Profile())
}

// PUT /profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	utils.SuccessResponse(c, h.userService.Update(patch))
}

// POST /profile/avatar
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		utils.BadRequestResponse(c, "Missing avatar file", err.Error())
		return
	}
	defer file.Close()

	user, err := h.userService.UploadAvatar(file, header)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, user)
}
