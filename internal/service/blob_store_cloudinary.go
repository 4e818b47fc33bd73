package service

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryBlobStore uploads listing images and hands back the hosted URL.
// The core never stores image bytes, only the returned URLs.
type CloudinaryBlobStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryBlobStore(cloudinaryURL string, folder string) (*CloudinaryBlobStore, error) {
	if cloudinaryURL == "" {
		return nil, errors.New("cloudinary url is required")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	if folder == "" {
		folder = "auto-catalog"
	}
	return &CloudinaryBlobStore{cld: cld, folder: folder}, nil
}

func (s *CloudinaryBlobStore) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:           s.folder,
		FilenameOverride: filename,
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
