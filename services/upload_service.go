package services

import (
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/danakita/cms-backend/dto"
)

// MaxUploadBytes caps a single uploaded file at 10MB.
const MaxUploadBytes int64 = 10 << 20

var (
	// ErrFileTooLarge is returned when the file exceeds MaxUploadBytes
	ErrFileTooLarge = errors.New("file exceeds the 10MB limit")
	// ErrNotImage is returned when the sniffed MIME type is not image/*
	ErrNotImage = errors.New("only image uploads are allowed")
	// ErrQuotaExceeded is returned when local storage would exceed its quota
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// UploadService stores uploaded images on local disk under random
// filenames, enforcing a total-storage quota.
type UploadService struct {
	dir        string
	baseURL    string
	quotaBytes int64
}

// NewUploadService creates a new upload service instance. quotaBytes of
// zero disables the quota check.
func NewUploadService(dir, baseURL string, quotaBytes int64) *UploadService {
	return &UploadService{dir: dir, baseURL: baseURL, quotaBytes: quotaBytes}
}

// SaveLocal validates and writes the file, returning its public URL.
func (s *UploadService) SaveLocal(fh *multipart.FileHeader) (dto.UploadResponse, error) {
	mtype, err := ValidateImage(fh)
	if err != nil {
		return dto.UploadResponse{}, err
	}

	if s.quotaBytes > 0 {
		used, err := s.usedBytes()
		if err != nil {
			return dto.UploadResponse{}, err
		}
		if used+fh.Size > s.quotaBytes {
			return dto.UploadResponse{}, ErrQuotaExceeded
		}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return dto.UploadResponse{}, err
	}

	name := uuid.NewString() + mtype.Extension()
	src, err := fh.Open()
	if err != nil {
		return dto.UploadResponse{}, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return dto.UploadResponse{}, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return dto.UploadResponse{}, err
	}

	return dto.UploadResponse{
		URL:      strings.TrimRight(s.baseURL, "/") + "/" + name,
		Filename: name,
		Size:     fh.Size,
	}, nil
}

// usedBytes sums the size of everything already stored in the upload dir.
func (s *UploadService) usedBytes() (int64, error) {
	var total int64
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	return total, err
}

// ValidateImage checks the size cap and sniffs the content type; the
// client-declared Content-Type header is not trusted.
func ValidateImage(fh *multipart.FileHeader) (*mimetype.MIME, error) {
	if fh.Size > MaxUploadBytes {
		return nil, ErrFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, ErrNotImage
	}
	return mtype, nil
}
