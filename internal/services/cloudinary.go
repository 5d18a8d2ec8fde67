package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/tony-montemuro/smb-website-sub002/internal/config"
)

// CloudinaryService handles all Cloudinary operations
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryService creates a new Cloudinary service instance
func NewCloudinaryService(cfg *config.Config) (*CloudinaryService, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary configuration is missing")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryService{
		cld: cld,
	}, nil
}

// UploadAvatar uploads a profile avatar and returns its public URL
func (s *CloudinaryService) UploadAvatar(ctx context.Context, file multipart.File, profileID string) (string, error) {
	publicID := fmt.Sprintf("avatars/%s", profileID)
	overwrite := true

	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         "smb/avatars",
		Overwrite:      &overwrite, // Écraser l'ancien avatar
		ResourceType:   "image",
		Format:         "jpg",
		Transformation: "c_fill,h_300,w_300",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}

	return uploadResult.SecureURL, nil
}

// UploadBoxArt uploads a game's box art image
func (s *CloudinaryService) UploadBoxArt(ctx context.Context, file multipart.File, gameAbb string) (string, error) {
	publicID := fmt.Sprintf("box_art/%s", gameAbb)
	overwrite := true

	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "smb/box_art",
		Overwrite:    &overwrite,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload box art: %w", err)
	}

	return uploadResult.SecureURL, nil
}

// DeleteImage deletes an image from Cloudinary by its public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
