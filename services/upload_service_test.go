package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

// fileHeader builds a real multipart.FileHeader by round-tripping the
// content through a parsed request, the same way gin hands it to us.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("file")
	require.NoError(t, err)
	return fh
}

func TestSaveLocal(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "/uploads/", 0)

	resp, err := svc.SaveLocal(fileHeader(t, "logo.png", pngHeader))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(resp.Filename, ".png"), "extension comes from the sniffed type")
	assert.Equal(t, int64(len(pngHeader)), resp.Size)

	// the file actually landed on disk
	_, err = os.Stat(filepath.Join(dir, resp.Filename))
	assert.NoError(t, err)
}

func TestSaveLocal_RejectsNonImage(t *testing.T) {
	svc := NewUploadService(t.TempDir(), "/uploads", 0)

	// a declared image name does not make the content an image
	_, err := svc.SaveLocal(fileHeader(t, "notes.png", []byte("plain text pretending")))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestValidateImage_SizeCap(t *testing.T) {
	// size is checked before the content is ever opened
	_, err := ValidateImage(&multipart.FileHeader{Filename: "big.png", Size: MaxUploadBytes + 1})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSaveLocal_QuotaExceeded(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "/uploads", int64(len(pngHeader))+2)

	_, err := svc.SaveLocal(fileHeader(t, "first.png", pngHeader))
	require.NoError(t, err)

	_, err = svc.SaveLocal(fileHeader(t, "second.png", pngHeader))
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}
