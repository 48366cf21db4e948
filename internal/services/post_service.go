// internal/services/post_service.go
package services

import (
	"errors"
	"strings"

	"github.com/wealthflow/wealthflow-backend/internal/i18n"
	"github.com/wealthflow/wealthflow-backend/internal/models"
	"github.com/wealthflow/wealthflow-backend/internal/state"
	"github.com/wealthflow/wealthflow-backend/internal/utils"
)

var (
	ErrPostNotFound = errors.New("post not found")
	// ErrBlankContent marks a publish of empty or whitespace-only
	// content: a no-op with no toast.
	ErrBlankContent = errors.New("blank content")
)

type PostService struct {
	shell *state.Shell
}

func NewPostService(shell *state.Shell) *PostService {
	return &PostService{shell: shell}
}

// List returns the feed, newest first.
func (s *PostService) List() []models.Post {
	return s.shell.Posts()
}

// Publish prepends a new post authored by the session user and raises
// a toast. Blank content leaves the feed untouched and raises nothing.
func (s *PostService) Publish(content string, tags []string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrBlankContent
	}
	if len(tags) == 0 {
		tags = []string{"#General"}
	}

	user := s.shell.User()
	post := models.Post{
		ID:           utils.NewID(),
		Author:       user.Name,
		AuthorRole:   user.Role,
		AuthorAvatar: user.Avatar,
		Content:      content,
		Likes:        0,
		Comments:     0,
		Timestamp:    "Just now",
		Tags:         tags,
	}

	s.shell.AddPost(post)
	s.shell.ShowToast(i18n.T(string(s.shell.Language()), i18n.KeyPostPublished))

	return &post, nil
}

// ToggleLike flips the current user's like on a post. An unknown id
// is a no-op.
func (s *PostService) ToggleLike(id string) (models.Post, error) {
	post, ok := s.shell.ToggleLike(id)
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	return post, nil
}
