package updates

import "bdm-tracker-api/internal/logs"

type UpdateServicePort interface {
	Create(input CreateInput, userID *uint) (*UpdateRecord, error)
	List(filter ListFilter) ([]UpdateRecord, error)
	Get(id string) (*UpdateRecord, error)
	SetStatus(id string, status string) (*UpdateRecord, error)
	Update(id string, input CreateInput) (*UpdateRecord, error)
	Delete(id string) error
	Summary() ([]SummaryRow, error)
}

type LogServicePort interface {
	Log(log logs.SystemLog, metadata interface{}) error
}
