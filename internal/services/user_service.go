// internal/services/user_service.go
package services

import (
	"fmt"
	"mime/multipart"

	"github.com/wealthflow/wealthflow-backend/internal/i18n"
	"github.com/wealthflow/wealthflow-backend/internal/models"
	"github.com/wealthflow/wealthflow-backend/internal/state"
)

type UserService struct {
	shell   *state.Shell
	storage *StorageService
}

func NewUserService(shell *state.Shell, storage *StorageService) *UserService {
	return &UserService{
		shell:   shell,
		storage: storage,
	}
}

// Profile returns the session user.
func (s *UserService) Profile() models.User {
	return s.shell.User()
}

// Update shallow-merges the patch into the profile and raises a
// toast. An empty patch still counts as a save.
func (s *UserService) Update(patch models.UserPatch) models.User {
	user := s.shell.UpdateUser(patch)
	s.shell.ShowToast(i18n.T(string(s.shell.Language()), i18n.KeyProfileSaved))
	return user
}

// UploadAvatar stores the image through the storage collaborator and
// applies the resulting reference to the profile.
func (s *UserService) UploadAvatar(file multipart.File, header *multipart.FileHeader) (models.User, error) {
	ref, err := s.storage.StoreImage(file, header)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to store avatar: %w", err)
	}
	return s.Update(models.UserPatch{Avatar: &ref}), nil
}
