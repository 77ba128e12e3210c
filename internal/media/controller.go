package media

import (
	"errors"
	"mime/multipart"
	"net/http"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/logs"
	"culturefest-api/internal/metrics"
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

// public folders anyone may upload into
var publicFolders = map[string]bool{FolderIDCards: true}

type MediaController struct {
	MediaService MediaServiceAPI
	LogService   LogServicePort
	MaxBytes     int64
}

func (mc *MediaController) Upload(c *gin.Context) {
	folder := c.DefaultPostForm("folder", FolderIDCards)
	if !publicFolders[folder] {
		apperr.Respond(c, apperr.Validation("folder", "folder", "uploads are only accepted for id-cards"))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		apperr.Respond(c, apperr.Validation("file", "required", "file is required"))
		return
	}

	obj, err := mc.store(c, folder, fh)
	metrics.Uploads.WithLabelValues(metrics.Outcome(err, isRejected)).Inc()
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, obj)
}

func (mc *MediaController) store(c *gin.Context, folder string, fh *multipart.FileHeader) (*Object, error) {
	data, err := ReadFileHeader(fh, mc.MaxBytes)
	if err != nil {
		return nil, err
	}
	return mc.MediaService.Upload(c.Request.Context(), folder, fh.Filename, data)
}

func (mc *MediaController) Delete(c *gin.Context) {
	publicID := c.Query("public_id")
	if err := mc.MediaService.Remove(c.Request.Context(), publicID); err != nil {
		apperr.Respond(c, err)
		return
	}

	logs.Audit(mc.LogService, logs.SystemLog{
		Service:   "media",
		ActorID:   logs.Ptr(middlewares.ActorID(c)),
		ActorRole: middlewares.Role(c),
		Action:    "delete",
		EntityID:  logs.Ptr(publicID),
		Message:   "uploaded file deleted",
	}, nil)

	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}

func isRejected(err error) bool {
	var ue *apperr.UploadError
	if errors.As(err, &ue) {
		return ue.Reason != apperr.ReasonFailed
	}
	return apperr.IsValidation(err)
}
