// internal/handlers/course.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wealthflow/wealthflow-backend/internal/services"
	"github.com/wealthflow/wealthflow-backend/internal/utils"
)

type CourseHandler struct {
	courseService *services.CourseService
}

type ShareLinkRequest struct {
	Title string `json:"title" validate:"required"`
}

func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// GET /courses
func (h *CourseHandler) GetCourses(c *gin.Context) {
	utils.SuccessResponse(c, h.courseService.List(c.Query("search")))
}

// GET /courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.courseService.Open(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "course")
		return
	}
	utils.SuccessResponse(c, course)
}

// POST /courses
func (h *CourseHandler) PublishCourse(c *gin.Context) {
	var req services.PublishCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	course, err := h.courseService.Publish(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, course)
}

// POST /courses/share-link
func (h *CourseHandler) ShareLink(c *gin.Context) {
	var req ShareLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	link := h.courseService.ShareLink(req.Title)
	utils.SuccessResponse(c, gin.H{"link": link})
}
