package household

import (
	"bdm-tracker-api/internal/logs"
)

type ImportServicePort interface {
	StartImport(filename string, raw []byte, encoding string, userID uint) (*ImportJob, error)
	GetJob(id string) (*ImportJob, bool)
}

type StorePort interface {
	Count() (int64, error)
	LatestBatch() (*ImportBatch, error)
	GetByEntryID(entryID string) (*Member, error)
}

type LogServicePort interface {
	Log(log logs.SystemLog, metadata interface{}) error
}
