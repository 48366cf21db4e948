package services_test

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthflow/wealthflow-backend/internal/config"
	"github.com/wealthflow/wealthflow-backend/internal/models"
	"github.com/wealthflow/wealthflow-backend/internal/services"
)

func makeUpload(t *testing.T, name string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("avatar", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	header := form.File["avatar"][0]
	file, err := header.Open()
	require.NoError(t, err)
	return file, header
}

func TestUpdateProfilePatch(t *testing.T) {
	shell := newTestShell()
	storage, err := services.NewStorageService(testConfig())
	require.NoError(t, err)
	svc := services.NewUserService(shell, storage)

	original := svc.Profile()

	bio := "Building in public."
	role := "Creator"
	updated := svc.Update(models.UserPatch{Bio: &bio, Role: &role})

	assert.Equal(t, "Building in public.", updated.Bio)
	assert.Equal(t, "Creator", updated.Role)
	assert.Equal(t, original.Name, updated.Name, "unpatched fields survive")
	assert.Equal(t, original.Stats, updated.Stats, "stats are never patched")
	assert.NotNil(t, shell.Toast())
}

func TestUploadAvatarReturnsDataURI(t *testing.T) {
	shell := newTestShell()
	storage, err := services.NewStorageService(testConfig())
	require.NoError(t, err)
	svc := services.NewUserService(shell, storage)

	content := []byte("fake png bytes")
	file, header := makeUpload(t, "me.png", content)
	defer file.Close()

	user, err := svc.UploadAvatar(file, header)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(user.Avatar, "data:image/png;base64,"), user.Avatar)
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(user.Avatar, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, content, decoded)

	assert.Equal(t, user.Avatar, svc.Profile().Avatar, "avatar applied to the profile")
}

func TestStoreImageRejectsBadUploads(t *testing.T) {
	cfg := testConfig()
	cfg.App.AvatarMaxKB = 1
	storage, err := services.NewStorageService(cfg)
	require.NoError(t, err)

	t.Run("disallowed extension", func(t *testing.T) {
		file, header := makeUpload(t, "payload.exe", []byte("nope"))
		defer file.Close()
		_, err := storage.StoreImage(file, header)
		assert.Error(t, err)
	})

	t.Run("oversize file", func(t *testing.T) {
		file, header := makeUpload(t, "big.png", bytes.Repeat([]byte("x"), 2048))
		defer file.Close()
		_, err := storage.StoreImage(file, header)
		assert.Error(t, err)
	})
}

func TestStorageServiceWithoutAWSHasNoS3Client(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{AvatarMaxKB: 512}}
	storage, err := services.NewStorageService(cfg)
	require.NoError(t, err)

	file, header := makeUpload(t, "a.jpg", []byte("jpeg"))
	defer file.Close()

	ref, err := storage.StoreImage(file, header)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "data:image/jpeg;base64,"))
}
