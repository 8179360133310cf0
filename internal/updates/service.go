package updates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bdm-tracker-api/internal/util"
)

var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidUpdateType = errors.New("invalid update type")
	ErrInvalidPeriod     = errors.New("period must be between 1 and 6")
)

type UpdateService struct {
	DB *gorm.DB
}

func NewUpdateService(db *gorm.DB) *UpdateService {
	return &UpdateService{DB: db}
}

// CreateInput carries the fields of a new transaction. The household id is
// kept separate from the stored composite id.
type CreateInput struct {
	HHID         string `json:"hhid" binding:"required"`
	Province     string `json:"province"`
	Municipality string `json:"municipality" binding:"required"`
	Barangay     string `json:"barangay"`
	MemberName   string `json:"memberName" binding:"required"`
	UpdateType   string `json:"updateType" binding:"required"`
	GranteeName  string `json:"granteeName"`
	Date         string `json:"date"`
	Period       int    `json:"period" binding:"required"`
	Status       string `json:"status"`
	ExtraInfo    string `json:"extraInfo"`
}

// Create validates and stores a new update transaction, returning the record
// with its generated composite id.
func (s *UpdateService) Create(input CreateInput, userID *uint) (*UpdateRecord, error) {
	if !ValidUpdateType(input.UpdateType) {
		return nil, ErrInvalidUpdateType
	}
	if input.Period < 1 || input.Period > 6 {
		return nil, ErrInvalidPeriod
	}
	status := input.Status
	if status == "" {
		status = StatusReceived
	}
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	record := UpdateRecord{
		ID:           fmt.Sprintf("%s_uid_%s", strings.TrimSpace(input.HHID), uuid.NewString()[:8]),
		Province:     input.Province,
		Municipality: input.Municipality,
		Barangay:     input.Barangay,
		MemberName:   input.MemberName,
		UpdateType:   input.UpdateType,
		GranteeName:  input.GranteeName,
		Date:         date,
		Period:       input.Period,
		Status:       status,
		ExtraInfo:    util.ClampRemarks100(input.ExtraInfo),
		CreatedBy:    userID,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListFilter narrows the transaction list. Zero values mean no filter; HHID
// matches the household part of the composite id as a prefix.
type ListFilter struct {
	HHID         string   `json:"hhid"`
	Types        []string `json:"types"`
	Municipality string   `json:"municipality"`
	Period       int      `json:"period"`
	Statuses     []string `json:"statuses"`
}

func (s *UpdateService) List(filter ListFilter) ([]UpdateRecord, error) {
	query := s.DB.Model(&UpdateRecord{})
	if filter.HHID != "" {
		query = query.Where("id LIKE ?", strings.TrimSpace(filter.HHID)+"%")
	}
	if len(filter.Types) > 0 {
		query = query.Where("update_type IN ?", filter.Types)
	}
	if filter.Municipality != "" {
		query = query.Where("municipality = ?", filter.Municipality)
	}
	if filter.Period != 0 {
		query = query.Where("period = ?", filter.Period)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}

	var records []UpdateRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *UpdateService) Get(id string) (*UpdateRecord, error) {
	var record UpdateRecord
	if err := s.DB.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// SetStatus moves a transaction to a new status.
func (s *UpdateService) SetStatus(id string, status string) (*UpdateRecord, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	record.Status = status
	if err := s.DB.Model(record).Update("status", status).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Update rewrites the editable fields of an existing transaction. The
// composite id and creator are kept.
func (s *UpdateService) Update(id string, input CreateInput) (*UpdateRecord, error) {
	if !ValidUpdateType(input.UpdateType) {
		return nil, ErrInvalidUpdateType
	}
	if input.Period < 1 || input.Period > 6 {
		return nil, ErrInvalidPeriod
	}
	if input.Status != "" && !ValidStatus(input.Status) {
		return nil, ErrInvalidStatus
	}

	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	record.Province = input.Province
	record.Municipality = input.Municipality
	record.Barangay = input.Barangay
	record.MemberName = input.MemberName
	record.UpdateType = input.UpdateType
	record.GranteeName = input.GranteeName
	record.Date = input.Date
	record.Period = input.Period
	if input.Status != "" {
		record.Status = input.Status
	}
	record.ExtraInfo = util.ClampRemarks100(input.ExtraInfo)

	if err := s.DB.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *UpdateService) Delete(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&UpdateRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Summary tallies transactions per update type and period. Every known type
// gets a row even when it has no transactions yet.
func (s *UpdateService) Summary() ([]SummaryRow, error) {
	type bucket struct {
		UpdateType string
		Period     int
		Count      int
	}
	var buckets []bucket
	err := s.DB.Model(&UpdateRecord{}).
		Select("update_type, period, COUNT(*) as count").
		Group("update_type, period").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	byType := make(map[string]*SummaryRow, len(UpdateTypes))
	rows := make([]SummaryRow, len(UpdateTypes))
	for i, t := range UpdateTypes {
		rows[i] = SummaryRow{UpdateType: t}
		byType[t] = &rows[i]
	}
	for _, b := range buckets {
		row, ok := byType[b.UpdateType]
		if !ok || b.Period < 1 || b.Period > 6 {
			continue
		}
		row.Periods[b.Period-1] = b.Count
		row.Total += b.Count
	}
	return rows, nil
}
