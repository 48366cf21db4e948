// internal/handlers/post.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/wealthflow-backend/internal/services"
	"github.com/wealthflow/wealthflow-backend/internal/utils"
)

type PostHandler struct {
	postService *services.PostService
}

type PublishPostRequest struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// GET /posts
func (h *PostHandler) GetPosts(c *gin.Context) {
	utils.SuccessResponse(c, h.postService.List())
}

// POST /posts
func (h *PostHandler) PublishPost(c *gin.Context) {
	var req PublishPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	post, err := h.postService.Publish(req.Content, req.Tags)
	if err != nil {
		if errors.Is(err, services.ErrBlankContent) {
			// Blank publishes are a no-op by contract: the feed is
			// unchanged and no toast is raised.
			utils.BadRequestResponse(c, "Content must not be empty", nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, post)
}

// POST /posts/:id/like
func (h *PostHandler) ToggleLike(c *gin.Context) {
	post, err := h.postService.ToggleLike(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "post")
		return
	}
	utils.SuccessResponse(c, post)
}
