package household

import (
	"time"

	"gorm.io/datatypes"
)

// Member is one row of an imported household-profile dataset. EntryID is the
// primary key; HHID groups the members of one household and is never unique.
type Member struct {
	EntryID string `gorm:"primaryKey;size:100;column:entry_id" json:"entryId"`
	HHID    string `gorm:"size:50;index;not null;column:hhid" json:"hhid"`

	Region       string `gorm:"size:100" json:"region"`
	Province     string `gorm:"size:100" json:"province"`
	Municipality string `gorm:"size:100" json:"municipality"`
	Barangay     string `gorm:"size:100" json:"barangay"`

	FirstName  string `gorm:"size:100;column:first_name" json:"firstName"`
	MiddleName string `gorm:"size:100;column:middle_name" json:"middleName"`
	LastName   string `gorm:"size:100;index;column:last_name" json:"lastName"`
	ExtName    string `gorm:"size:20;column:ext_name" json:"extName"`

	Birthday string `gorm:"size:30" json:"birthday"`
	Age      int    `json:"age"`
	Sex      string `gorm:"size:10" json:"sex"`

	ClientStatus string `gorm:"size:50;column:client_status" json:"clientStatus"`
	CSCategory   string `gorm:"size:50;column:cs_category" json:"csCategory"`
	MemberStatus string `gorm:"size:50;column:member_status" json:"memberStatus"`
	Relationship string `gorm:"size:50" json:"relationship"`
	CivilStatus  string `gorm:"size:30;column:civil_status" json:"civilStatus"`

	IsGrantee  string `gorm:"size:20;column:is_grantee" json:"isGrantee"`
	HHSet      string `gorm:"size:20;column:hh_set" json:"hhSet"`
	SoloParent string `gorm:"size:20;column:solo_parent" json:"soloparent"`

	IPAffiliation string `gorm:"size:100;column:ip_affiliation" json:"ipAffiliation"`
	PCN           string `gorm:"size:50;column:pcn" json:"pcn"`
	PCNRemarks    string `gorm:"size:255;column:pcn_remarks" json:"pcnRemarks"`

	PregnancyStatus          string `gorm:"size:50;column:pregnancy_status" json:"pregnancyStatus"`
	LMP                      string `gorm:"size:30;column:lmp" json:"lmp"`
	HealthMonitored          string `gorm:"size:50;column:health_monitored" json:"healthMonitored"`
	HealthFacility           string `gorm:"size:255;column:health_facility" json:"healthFacility"`
	HealthFacilityStatus     string `gorm:"size:50;column:health_facility_status" json:"healthFacilityStatus"`
	ReasonNotAttendingHealth string `gorm:"size:255;column:reason_not_attending_health" json:"reasonNotAttendingHealth"`
	HealthRemarks            string `gorm:"size:255;column:health_remarks" json:"healthRemarks"`
	Disability               string `gorm:"size:100" json:"disability"`
	ChildBene                string `gorm:"size:20;column:child_bene" json:"childBene"`

	AgeOnEduc                string `gorm:"size:20;column:age_on_educ" json:"ageOnEduc"`
	GradeLevel               string `gorm:"size:50;column:grade_level" json:"gradeLevel"`
	SHSStrand                string `gorm:"size:50;column:shs_strand" json:"shsStrand"`
	SHSTrack                 string `gorm:"size:50;column:shs_track" json:"shsTrack"`
	EducMonit                string `gorm:"size:50;column:educ_monit" json:"educMonit"`
	AttendingSchool          string `gorm:"size:20;column:attending_school" json:"attendingSchool"`
	SchoolName               string `gorm:"size:255;column:school_name" json:"schoolName"`
	ReasonNotAttendingSchool string `gorm:"size:255;column:reason_not_attending_school" json:"reasonNotAttendingSchool"`
	EducRemarks              string `gorm:"size:255;column:educ_remarks" json:"educRemarks"`
	LRN                      string `gorm:"size:50;column:lrn" json:"lrn"`
	LRNRemarks               string `gorm:"size:255;column:lrn_remarks" json:"lrnRemarks"`
}

func (Member) TableName() string {
	return "household_members"
}

// ImportBatch records one completed dataset import. A new import replaces the
// previous batch row together with the member rows, so at most one row is
// current at a time; older rows stay as history.
type ImportBatch struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	SourceFile   string         `gorm:"size:512;not null;column:source_file" json:"source_file"`
	Rows         int            `gorm:"not null" json:"rows"`
	Size         float64        `json:"size"` // KB
	Encoding     string         `gorm:"size:30" json:"encoding"`
	ColumnsOrder datatypes.JSON `gorm:"column:columns_order" json:"columns_order"`
	ArchiveURL   string         `gorm:"size:1024;column:archive_url" json:"archive_url,omitempty"`
	InsertedBy   uint           `gorm:"column:inserted_by" json:"inserted_by"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (ImportBatch) TableName() string {
	return "import_batches"
}
