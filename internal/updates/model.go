package updates

import (
	"strings"
	"time"
)

// Statuses an update transaction moves through, from intake to encoding.
const (
	StatusReceived  = "RECEIVED"
	StatusPending   = "PENDING"
	StatusProcessed = "PROCESSED"
	StatusRejected  = "REJECTED"
	StatusEncoded   = "ENCODED"
	StatusDiscarded = "DISCARDED"
	StatusReturned  = "RETURNED"
	StatusMailed    = "SENT THROUGH MAIL"
)

var Statuses = []string{
	StatusReceived,
	StatusPending,
	StatusProcessed,
	StatusRejected,
	StatusEncoded,
	StatusDiscarded,
	StatusReturned,
	StatusMailed,
}

// UpdateTypes are the categories of member-update transactions the regional
// office processes. The strings are the official labels and appear verbatim
// in reports, so they are not normalized.
var UpdateTypes = []string{
	"UPDATE 1 & 8 - Newborn and/or Adtl Member",
	"UPDATE 2 - other Muni and Province",
	"UPDATE 3 - other Region",
	"UPDATE 4 - Change of Health Faci",
	"UPDATE 5 - Change of School Faci",
	"UPDATE 6 - Change Grantee",
	"UPDATE 7 - Deceased",
	"UPDATE 9 - Basic Information",
	"UPDATE 11 - Child Selection/Deselection",
	"UPDATE 12 - Capturing of Pregnancy Status",
	"Code 12 - Moved-Out Member",
	"Code 12 - Moved-Out HH",
	"Code 14",
	"Code 15",
	"Duplicate HH",
	"Duplicate Member",
}

// UpdateRecord is one member-update transaction. ID is a composite of the
// household id and a unique suffix so a household can have several open
// transactions at once.
type UpdateRecord struct {
	ID           string    `gorm:"primaryKey;size:120" json:"id"`
	Province     string    `gorm:"size:100" json:"province"`
	Municipality string    `gorm:"size:100;index" json:"municipality"`
	Barangay     string    `gorm:"size:100" json:"barangay"`
	MemberName   string    `gorm:"size:255;column:member_name" json:"memberName"`
	UpdateType   string    `gorm:"size:100;index;column:update_type" json:"updateType"`
	GranteeName  string    `gorm:"size:255;column:grantee_name" json:"granteeName"`
	Date         string    `gorm:"size:30" json:"date"`
	Period       int       `gorm:"index" json:"period"`
	Status       string    `gorm:"size:30;index" json:"status"`
	ExtraInfo    string    `gorm:"size:100;column:extra_info" json:"extraInfo"`
	CreatedBy    *uint     `gorm:"column:created_by" json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (UpdateRecord) TableName() string {
	return "update_records"
}

// HHID strips the unique suffix off the composite transaction id.
func (u UpdateRecord) HHID() string {
	hhid, _, _ := strings.Cut(u.ID, "_uid_")
	return hhid
}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

func ValidUpdateType(updateType string) bool {
	for _, t := range UpdateTypes {
		if t == updateType {
			return true
		}
	}
	return false
}

// SummaryRow is one line of the type-by-period tally matrix.
type SummaryRow struct {
	UpdateType string `json:"updateType"`
	Periods    [6]int `json:"periods"`
	Total      int    `json:"total"`
}
