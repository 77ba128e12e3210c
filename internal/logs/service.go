package logs

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"culturefest-api/internal/util"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Writer is the part of LogService the feature controllers depend on.
type Writer interface {
	Log(entry SystemLog, metadata interface{}) error
}

var _ Writer = (*LogService)(nil)

var nowFunc = time.Now

type LogService struct {
	DB *gorm.DB
}

func (ls *LogService) Log(entry SystemLog, metadata interface{}) error {
	var meta datatypes.JSON
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}

	level := entry.Level
	if level == "" {
		level = LevelInfo
	}

	row := SystemLog{
		Level:     level,
		Service:   entry.Service,
		ActorID:   entry.ActorID,
		ActorRole: entry.ActorRole,
		Action:    entry.Action,
		EntityID:  entry.EntityID,
		Message:   util.Clamp(entry.Message, 2000),
		Tags:      entry.Tags,
		Metadata:  meta,
		CreatedAt: nowFunc(),
	}
	if row.Tags == nil {
		row.Tags = pq.StringArray{}
	}

	return ls.DB.Create(&row).Error
}

// Audit writes entry through w and only reports a failure, so a broken log
// table never fails the request that produced the entry.
func Audit(w Writer, entry SystemLog, metadata interface{}) {
	if w == nil {
		return
	}
	if err := w.Log(entry, metadata); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}
}

// Ptr returns nil for an empty string.
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (ls *LogService) GetLogs(input LogFilterInput) ([]SystemLog, LogAggregates, int64, int, error) {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 || input.PageSize > 100 {
		input.PageSize = 20
	}

	start, hasStart, endExclusive, hasEnd, err := util.ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	base := ls.DB.Table("activity_logs")

	if input.StartDate == nil && input.EndDate == nil {
		base = base.Where("activity_logs.created_at >= ?", nowFunc().AddDate(0, 0, -30))
	}
	if hasStart {
		base = base.Where("activity_logs.created_at >= ?", start)
	}
	if hasEnd {
		base = base.Where("activity_logs.created_at < ?", endExclusive)
	}

	filters := []struct {
		column string
		value  *string
	}{
		{"level", input.Level},
		{"service", input.Service},
		{"action", input.Action},
		{"actor_id", input.ActorID},
		{"entity_id", input.EntityID},
	}
	for _, f := range filters {
		if f.value != nil && strings.TrimSpace(*f.value) != "" {
			base = base.Where("activity_logs."+f.column+" = ?", strings.TrimSpace(*f.value))
		}
	}

	if len(input.Tags) > 0 {
		base = base.Where("activity_logs.tags && ?", pq.Array(input.Tags))
	}

	if input.Search != nil && strings.TrimSpace(*input.Search) != "" {
		like := "%" + strings.TrimSpace(*input.Search) + "%"
		base = base.Where(
			`activity_logs.service ILIKE ?
			 OR activity_logs.action ILIKE ?
			 OR activity_logs.message ILIKE ?
			 OR COALESCE(activity_logs.entity_id,'') ILIKE ?
			 OR COALESCE(array_to_string(activity_logs.tags, ','),'') ILIKE ?`,
			like, like, like, like, like,
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(input.PageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	var rows []SystemLog
	if err := base.
		Session(&gorm.Session{}).
		Order("activity_logs.created_at DESC").
		Limit(input.PageSize).
		Offset((input.Page - 1) * input.PageSize).
		Find(&rows).Error; err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	var aggs LogAggregates
	if aggs.ByService, err = ls.countBy(base, "service"); err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}
	if aggs.ByAction, err = ls.countBy(base, "action"); err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	return rows, aggs, total, totalPages, nil
}

// countBy groups the filtered rows by one column, top 12 first.
func (ls *LogService) countBy(base *gorm.DB, column string) ([]AggItem, error) {
	sub := base.Session(&gorm.Session{}).
		Select("COALESCE(NULLIF(TRIM(activity_logs." + column + "), ''), 'unknown') AS label")

	var out []AggItem
	if err := ls.DB.Table("(?) as x", sub).
		Select("x.label AS label, COUNT(*) AS count").
		Group("x.label").
		Order("count DESC").
		Limit(12).
		Scan(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []AggItem{}
	}
	return out, nil
}
