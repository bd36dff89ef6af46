package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/danakita/cms-backend/dto"
)

// DriveService uploads images to Google Drive through an OAuth2 client
// bootstrapped from a long-lived refresh token. Calls are awaited within
// the request lifecycle; there is no retry.
type DriveService struct {
	config   *oauth2.Config
	token    *oauth2.Token
	folderID string
}

// NewDriveService creates a new drive service instance
func NewDriveService(clientID, clientSecret, refreshToken, folderID string) *DriveService {
	return &DriveService{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{drive.DriveFileScope},
		},
		token:    &oauth2.Token{RefreshToken: refreshToken},
		folderID: folderID,
	}
}

// Upload validates the file, pushes it into the configured folder, makes
// it world-readable and returns the public URL.
func (s *DriveService) Upload(ctx context.Context, fh *multipart.FileHeader) (dto.UploadResponse, error) {
	mtype, err := ValidateImage(fh)
	if err != nil {
		return dto.UploadResponse{}, err
	}

	src, err := fh.Open()
	if err != nil {
		return dto.UploadResponse{}, err
	}
	defer src.Close()

	client := s.config.Client(ctx, s.token)
	srv, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return dto.UploadResponse{}, fmt.Errorf("failed to create drive client: %w", err)
	}

	name := uuid.NewString() + mtype.Extension()
	meta := &drive.File{Name: name}
	if s.folderID != "" {
		meta.Parents = []string{s.folderID}
	}

	created, err := srv.Files.Create(meta).Media(src).Fields("id").Context(ctx).Do()
	if err != nil {
		return dto.UploadResponse{}, fmt.Errorf("failed to upload to drive: %w", err)
	}

	_, err = srv.Permissions.Create(created.Id, &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}).Context(ctx).Do()
	if err != nil {
		return dto.UploadResponse{}, fmt.Errorf("failed to share drive file: %w", err)
	}

	return dto.UploadResponse{
		URL:      "https://drive.google.com/uc?id=" + created.Id,
		Filename: name,
		Size:     fh.Size,
	}, nil
}
