// internal/services/storage_service.go
package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/wealthflow/wealthflow-backend/internal/config"
)

// StorageService is the image storage collaborator: it turns an
// uploaded image into a string reference usable as an avatar source.
// With AWS credentials configured the reference is an S3 (or
// CloudFront) URL; without them it is a data URI, which keeps local
// development free of cloud dependencies.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

var imageMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.AccessKeyID == "" {
		// Data-URI only mode for local development
		return &StorageService{config: cfg}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   cfg,
	}, nil
}

// StoreImage validates and reads the upload, then returns its string
// reference.
func (s *StorageService) StoreImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	maxBytes := int64(s.config.App.AvatarMaxKB) * 1024
	if maxBytes > 0 && header.Size > maxBytes {
		return "", fmt.Errorf("file size %d bytes exceeds maximum allowed size %d bytes", header.Size, maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	mimeType, ok := imageMimeTypes[ext]
	if !ok {
		return "", fmt.Errorf("file type %s is not allowed", ext)
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if s.s3Client == nil {
		encoded := base64.StdEncoding.EncodeToString(content)
		return fmt.Sprintf("data:%s;base64,%s", mimeType, encoded), nil
	}

	key := fmt.Sprintf("avatars/%s%s", uuid.New().String(), ext)
	_, err = s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.config.AWS.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(mimeType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.config.AWS.CloudFrontURL, "/"), key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.AWS.S3Bucket, s.config.AWS.Region, key), nil
}
