package logs

import (
	"time"

	"gorm.io/datatypes"
)

type SystemLog struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Level        string         `gorm:"size:20;not null" json:"level"`
	Service      string         `gorm:"size:100;not null" json:"service"`
	UserID       *uint          `gorm:"index" json:"user_id,omitempty"`
	Action       string         `gorm:"size:255;not null" json:"action"`
	Message      string         `gorm:"type:text;not null" json:"message"`
	Municipality string         `gorm:"size:100" json:"municipality,omitempty"`
	Metadata     datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

type LogFilterInput struct {
	UserID       *uint   `json:"user_id"`
	Level        *string `json:"level"`
	Service      *string `json:"service"`
	Action       *string `json:"action"`
	Municipality *string `json:"municipality"`

	StartDate *string `json:"start_date"` // "YYYY-MM-DD"
	EndDate   *string `json:"end_date"`   // "YYYY-MM-DD"

	Search   *string `json:"search"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

type LogRow struct {
	SystemLog
	Firstname string `json:"firstname" gorm:"column:firstname"`
	Lastname  string `json:"lastname" gorm:"column:lastname"`
}

func (SystemLog) TableName() string {
	return "logs"
}
