package lookup

import (
	"bdm-tracker-api/internal/household"
	"bdm-tracker-api/internal/master"
)

type HouseholdStorePort interface {
	GetByHHID(hhid string) ([]household.Member, error)
	Search(fragment string, limit int) ([]household.Member, error)
}

type MasterPort interface {
	GetByHHID(hhid string) (*master.Record, error)
}

type LookupServicePort interface {
	FindHousehold(hhid string) (*Roster, error)
	SearchMembers(fragment string) ([]household.Member, error)
}
