package logs

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"bdm-tracker-api/internal/util"

	"gorm.io/gorm"
)

type LogService struct {
	DB *gorm.DB
}

func (ls *LogService) Log(log SystemLog, metadata interface{}) error {
	newLog := SystemLog{
		Level:        log.Level,
		Service:      log.Service,
		UserID:       log.UserID,
		Action:       log.Action,
		Message:      log.Message,
		Municipality: log.Municipality,
		CreatedAt:    time.Now(),
	}

	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			newLog.Metadata = b
		}
	}

	return ls.DB.Create(&newLog).Error
}

func (ls *LogService) GetLogs(input LogFilterInput) ([]LogRow, int64, int, error) {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 || input.PageSize > 100 {
		input.PageSize = 20
	}

	base := ls.DB.
		Table("logs").
		Select("logs.*, COALESCE(u.firstname, '') as firstname, COALESCE(u.lastname, '') as lastname").
		Joins("LEFT JOIN users u ON logs.user_id = u.id")

	// Default: last 30 days if no dates
	if input.StartDate == nil && input.EndDate == nil {
		base = base.Where("logs.created_at >= ?", time.Now().AddDate(0, 0, -30))
	}

	if input.UserID != nil {
		base = base.Where("logs.user_id = ?", *input.UserID)
	}
	if input.Level != nil && strings.TrimSpace(*input.Level) != "" {
		base = base.Where("logs.level = ?", strings.TrimSpace(*input.Level))
	}
	if input.Service != nil && strings.TrimSpace(*input.Service) != "" {
		base = base.Where("logs.service = ?", strings.TrimSpace(*input.Service))
	}
	if input.Action != nil && strings.TrimSpace(*input.Action) != "" {
		base = base.Where("logs.action = ?", strings.TrimSpace(*input.Action))
	}
	if input.Municipality != nil && strings.TrimSpace(*input.Municipality) != "" {
		base = base.Where("logs.municipality = ?", strings.TrimSpace(*input.Municipality))
	}

	start, hasStart, endExclusive, hasEnd, err := util.ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, 0, 0, err
	}
	if hasStart {
		base = base.Where("logs.created_at >= ?", start)
	}
	if hasEnd {
		base = base.Where("logs.created_at < ?", endExclusive)
	}

	// LOWER(...) LIKE keeps search portable across sqlite and postgres
	if input.Search != nil && strings.TrimSpace(*input.Search) != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(*input.Search)) + "%"
		base = base.Where(
			`LOWER(logs.level) LIKE ?
			 OR LOWER(logs.service) LIKE ?
			 OR LOWER(logs.action) LIKE ?
			 OR LOWER(logs.message) LIKE ?
			 OR LOWER(COALESCE(logs.municipality,'')) LIKE ?
			 OR LOWER(COALESCE(u.firstname,'')) LIKE ?
			 OR LOWER(COALESCE(u.lastname,'')) LIKE ?`,
			like, like, like, like, like, like, like,
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(input.PageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	var rows []LogRow
	if err := base.
		Session(&gorm.Session{}).
		Order("logs.created_at DESC").
		Limit(input.PageSize).
		Offset((input.Page - 1) * input.PageSize).
		Scan(&rows).Error; err != nil {
		return nil, 0, 0, err
	}

	return rows, total, totalPages, nil
}
