package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danakita/cms-backend/services"
)

// UploadController serves image uploads to local disk and Google Drive.
type UploadController struct {
	uploads *services.UploadService
	drive   *services.DriveService
}

// NewUploadController creates a new upload controller instance
func NewUploadController(uploads *services.UploadService, drive *services.DriveService) *UploadController {
	return &UploadController{uploads: uploads, drive: drive}
}

// RegisterRoutes registers the /upload endpoints
func (ct *UploadController) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group := api.Group("/upload")
	group.POST("/local", requireAuth, ct.Local)
	group.POST("/gdrive", requireAuth, ct.GDrive)
}

// Local stores the image on disk behind the configured quota
func (ct *UploadController) Local(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	resp, err := ct.uploads.SaveLocal(fh)
	if err != nil {
		if isUploadValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to upload file",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GDrive pushes the image to Google Drive and returns the public URL
func (ct *UploadController) GDrive(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	resp, err := ct.drive.Upload(c.Request.Context(), fh)
	if err != nil {
		if isUploadValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to upload file",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func isUploadValidation(err error) bool {
	return errors.Is(err, services.ErrFileTooLarge) ||
		errors.Is(err, services.ErrNotImage) ||
		errors.Is(err, services.ErrQuotaExceeded)
}
