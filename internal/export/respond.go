package export

import (
	"fmt"
	"net/http"
	"time"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Send renders tables in the ?format= of the request and writes them as a download.
func Send(c *gin.Context, kind, basename string, tables ...*Table) {
	format := c.DefaultQuery("format", FormatExcel)
	contentType, ext, data, err := Render(format, tables...)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	metrics.Exports.WithLabelValues(kind, NormalizeFormat(format)).Inc()

	filename := fmt.Sprintf("%s_%s%s", basename, time.Now().Format("20060102_150405"), ext)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}
