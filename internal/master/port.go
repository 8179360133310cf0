package master

import (
	"mime/multipart"

	"bdm-tracker-api/internal/logs"
)

type MasterServicePort interface {
	ReplaceAll(records []Record) error
	GetAll() ([]Record, error)
	ParseUpload(fileHeader *multipart.FileHeader) ([]Record, error)
}

type LogServicePort interface {
	Log(log logs.SystemLog, metadata interface{}) error
}
