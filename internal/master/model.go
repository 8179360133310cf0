package master

import "time"

// Record maps a household id to its location and grantee, used to auto-fill
// the entry form. The list is small (hundreds to low thousands) and is
// replaced wholesale on every upload.
type Record struct {
	HHID         string    `gorm:"primaryKey;size:50;column:hhid" json:"hhid"`
	Province     string    `gorm:"size:100" json:"province"`
	Municipality string    `gorm:"size:100" json:"municipality"`
	Barangay     string    `gorm:"size:100" json:"barangay"`
	GranteeName  string    `gorm:"size:255;column:grantee_name" json:"granteeName"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Record) TableName() string {
	return "master_records"
}
