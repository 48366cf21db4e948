// internal/services/course_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/wealthflow/wealthflow-backend/internal/config"
	"github.com/wealthflow/wealthflow-backend/internal/i18n"
	"github.com/wealthflow/wealthflow-backend/internal/models"
	"github.com/wealthflow/wealthflow-backend/internal/state"
	"github.com/wealthflow/wealthflow-backend/internal/utils"
)

var ErrCourseNotFound = errors.New("course not found")

// DefaultCommissionRate applies when a publish request leaves the
// commission unset, matching the publish form's preset.
const DefaultCommissionRate = 20

type CourseService struct {
	shell     *state.Shell
	clipboard Clipboard
	config    *config.Config
}

type PublishCourseRequest struct {
	Title          string  `json:"title" validate:"required,min=1,max=255"`
	Description    string  `json:"description" validate:"required"`
	Price          float64 `json:"price" validate:"min=0"`
	CommissionRate float64 `json:"commission_rate" validate:"min=0,max=100"`
	Category       string  `json:"category" validate:"required,course_category"`
}

func NewCourseService(shell *state.Shell, clipboard Clipboard, cfg *config.Config) *CourseService {
	return &CourseService{
		shell:     shell,
		clipboard: clipboard,
		config:    cfg,
	}
}

// List returns the catalogue, optionally filtered over title and
// category the way the marketplace search box does.
func (s *CourseService) List(search string) []models.Course {
	courses := s.shell.Courses()
	if search == "" {
		return courses
	}

	needle := strings.ToLower(search)
	filtered := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Title), needle) ||
			strings.Contains(strings.ToLower(c.Category), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Open selects the course and enters its detail view.
func (s *CourseService) Open(id string) (models.Course, error) {
	course, ok := s.shell.CourseByID(id)
	if !ok {
		return models.Course{}, ErrCourseNotFound
	}
	s.shell.OpenCourseDetail(course)
	return course, nil
}

// Publish validates the draft, constructs the course, prepends it to
// the catalogue, moves the session to the marketplace, and raises a
// toast. Published courses are never mutated or deleted afterwards.
func (s *CourseService) Publish(req *PublishCourseRequest) (*models.Course, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.CommissionRate == 0 {
		req.CommissionRate = DefaultCommissionRate
	}

	id := utils.NewID()
	user := s.shell.User()
	course := models.Course{
		ID:              id,
		Title:           req.Title,
		Author:          user.Name,
		Price:           req.Price,
		CommissionRate:  req.CommissionRate,
		Sales:           0,
		Category:        req.Category,
		Rating:          5.0,
		ImageURL:        fmt.Sprintf("https://picsum.photos/400/250?random=%s", id),
		Description:     req.Description,
		FullDescription: req.Description,
		IsUserCreated:   true,
	}

	s.shell.AddCourse(course)
	s.shell.ShowToast(i18n.T(string(s.shell.Language()), i18n.KeyCoursePublished))

	return &course, nil
}

// ShareLink mints the affiliate link for a title and hands it to the
// clipboard collaborator. The toast is raised regardless of clipboard
// success; clipboard failures never reach the transition logic.
func (s *CourseService) ShareLink(title string) string {
	user := s.shell.User()
	link := fmt.Sprintf("%s/affiliate/%s?ref=%s",
		strings.TrimSuffix(s.config.App.BaseURL, "/"), utils.Slugify(title), user.Name)

	go func() {
		if err := s.clipboard.Write(link); err != nil {
			logrus.WithError(err).Warn("Failed to write share link to clipboard")
		}
	}()

	s.shell.ShowToast(i18n.T(string(s.shell.Language()), i18n.KeyLinkCopied))
	return link
}
