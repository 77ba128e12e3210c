package logs

import (
	"net/http"
	"strings"

	"culturefest-api/internal/util"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	LogService *LogService
}

func (lc *LogController) GetLogs(c *gin.Context) {
	var input LogFilterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, aggs, total, totalPages, err := lc.LogService.GetLogs(input)
	if err != nil {
		if err == util.ErrInvalidDate {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	page, pageSize := input.Page, input.PageSize
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        rows,
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": totalPages,
		"aggregates":  aggs,
	})
}

// Services lists the service names entries are written under, for filter dropdowns.
func (lc *LogController) Services(c *gin.Context) {
	var names []string
	if err := lc.LogService.DB.Table("activity_logs").Distinct("service").Order("service").Pluck("service", &names).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	c.JSON(http.StatusOK, gin.H{"services": out})
}
