package settings

import (
	"errors"
	"net/http"
	"time"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/logs"
	"culturefest-api/internal/media"
	"culturefest-api/internal/middlewares"
	"culturefest-api/internal/util"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsService SettingsServiceAPI
	LogService      LogServicePort
	MaxBytes        int64
}

// GET /api/settings?last_modified=...
//
// last_modified is the updated_at of the copy the client already holds,
// as RFC3339 or unix milliseconds.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	clientLM, err := util.ParseTimestamp(c.Query("last_modified"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid last_modified (use RFC3339 or unix ms)"})
		return
	}

	res, err := sc.SettingsService.Get(clientLM)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	cur := res.Settings
	if !cur.UpdatedAt.IsZero() {
		c.Header("Last-Modified", cur.UpdatedAt.UTC().Format(time.RFC3339Nano))
	}
	if res.NotModified {
		c.JSON(http.StatusOK, gin.H{"not_modified": true, "updated_at": cur.UpdatedAt})
		return
	}
	c.JSON(http.StatusOK, gin.H{"not_modified": false, "updated_at": cur.UpdatedAt, "settings": cur})
}

// PUT /api/settings (multipart: display_name, remarks, circular)
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var in UpdateInput
	if v, ok := c.GetPostForm("display_name"); ok {
		in.DisplayName = &v
	}
	if v, ok := c.GetPostForm("remarks"); ok {
		in.Remarks = &v
	}

	var circular *Upload
	if fh, err := c.FormFile("circular"); err == nil {
		data, err := media.ReadFileHeader(fh, sc.MaxBytes)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		circular = &Upload{Filename: fh.Filename, Data: data}
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	cur, err := sc.SettingsService.Update(c.Request.Context(), in, circular)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	sc.audit(c, "update", "interschool settings updated", cur)
	c.JSON(http.StatusOK, cur)
}

func (sc *SettingsController) RemoveCircular(c *gin.Context) {
	cur, err := sc.SettingsService.RemoveCircular(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	sc.audit(c, "remove_circular", "circular removed", cur)
	c.JSON(http.StatusOK, cur)
}

func (sc *SettingsController) audit(c *gin.Context, action, message string, cur *Settings) {
	logs.Audit(sc.LogService, logs.SystemLog{
		Service:   "settings",
		ActorID:   logs.Ptr(middlewares.ActorID(c)),
		ActorRole: middlewares.Role(c),
		Action:    action,
		Message:   message,
	}, cur)
}
