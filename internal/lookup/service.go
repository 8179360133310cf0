package lookup

import (
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"bdm-tracker-api/internal/household"
)

// MinFragmentLen is the shortest search fragment the service will run. Anything
// shorter returns no results rather than scanning the whole table.
const MinFragmentLen = 3

// Roster is the resolved view of one household: its member rows plus the
// location and grantee details used to pre-fill an update entry.
type Roster struct {
	HHID         string             `json:"hhid"`
	Found        bool               `json:"found"`
	Members      []household.Member `json:"members"`
	HeadName     string             `json:"headName"`
	GranteeName  string             `json:"granteeName"`
	Province     string             `json:"province"`
	Municipality string             `json:"municipality"`
	Barangay     string             `json:"barangay"`
}

type LookupService struct {
	Store  HouseholdStorePort
	Master MasterPort
}

func NewLookupService(store HouseholdStorePort, masterService MasterPort) *LookupService {
	return &LookupService{Store: store, Master: masterService}
}

// FindHousehold returns the roster for a household id. A household with no
// member rows is not an error: the roster comes back with Found=false, and the
// master list may still supply the location fields.
func (s *LookupService) FindHousehold(hhid string) (*Roster, error) {
	hhid = strings.TrimSpace(hhid)
	roster := &Roster{HHID: hhid, Members: []household.Member{}}
	if hhid == "" {
		return roster, nil
	}

	members, err := s.Store.GetByHHID(hhid)
	if err != nil {
		return nil, err
	}
	roster.Members = members
	roster.Found = len(members) > 0
	roster.HeadName = headName(members)
	if roster.Found {
		first := members[0]
		roster.Province = first.Province
		roster.Municipality = first.Municipality
		roster.Barangay = first.Barangay
	}

	if rec, err := s.Master.GetByHHID(hhid); err == nil {
		roster.GranteeName = rec.GranteeName
		if roster.Province == "" {
			roster.Province = rec.Province
		}
		if roster.Municipality == "" {
			roster.Municipality = rec.Municipality
		}
		if roster.Barangay == "" {
			roster.Barangay = rec.Barangay
		}
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	return roster, nil
}

// SearchMembers finds members whose household id or name contains the
// fragment. Fragments under MinFragmentLen runes return an empty slice.
func (s *LookupService) SearchMembers(fragment string) ([]household.Member, error) {
	fragment = strings.TrimSpace(fragment)
	if utf8.RuneCountInString(fragment) < MinFragmentLen {
		return []household.Member{}, nil
	}
	return s.Store.Search(fragment, household.SearchLimit)
}

// headName picks the household head from the roster, falling back to the
// first member when no row is marked as head.
func headName(members []household.Member) string {
	for _, m := range members {
		if strings.Contains(strings.ToUpper(m.Relationship), "HEAD") {
			return fullName(m)
		}
	}
	if len(members) > 0 {
		return fullName(members[0])
	}
	return ""
}

func fullName(m household.Member) string {
	parts := []string{}
	for _, p := range []string{m.FirstName, m.MiddleName, m.LastName, m.ExtName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
