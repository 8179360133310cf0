package household

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"bdm-tracker-api/internal/logs"
	"bdm-tracker-api/internal/util"

	"github.com/google/uuid"
)

type JobState string

const (
	JobRunning   JobState = "running"
	JobCompleted JobState = "completed"
	JobFailed    JobState = "failed"
)

var ErrImportInProgress = errors.New("an import is already running")

// ImportJob tracks one dataset import: parsing and persisting report two
// independent progress gauges, both 0-100 and non-decreasing. Consumers poll
// Status until the state is terminal, then re-query the count.
type ImportJob struct {
	ID string

	mu              sync.Mutex
	state           JobState
	parseProgress   int
	persistProgress int
	rows            int
	errMsg          string
	startedAt       time.Time
	finishedAt      time.Time
}

type JobStatus struct {
	ID              string    `json:"id"`
	State           JobState  `json:"state"`
	ParseProgress   int       `json:"parse_progress"`
	PersistProgress int       `json:"persist_progress"`
	Rows            int       `json:"rows"`
	Error           string    `json:"error,omitempty"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at,omitempty"`
}

func (j *ImportJob) setParseProgress(pct int) {
	j.mu.Lock()
	if pct > j.parseProgress {
		j.parseProgress = pct
	}
	j.mu.Unlock()
}

func (j *ImportJob) setPersistProgress(pct int) {
	j.mu.Lock()
	if pct > j.persistProgress {
		j.persistProgress = pct
	}
	j.mu.Unlock()
}

func (j *ImportJob) fail(err error) {
	j.mu.Lock()
	j.state = JobFailed
	j.errMsg = err.Error()
	j.finishedAt = time.Now()
	j.mu.Unlock()
}

func (j *ImportJob) complete(rows int) {
	j.mu.Lock()
	j.state = JobCompleted
	j.rows = rows
	j.finishedAt = time.Now()
	j.mu.Unlock()
}

func (j *ImportJob) Status() JobStatus {
	j.mu.Lock()
	defer j.mu.Unlock()
	return JobStatus{
		ID:              j.ID,
		State:           j.state,
		ParseProgress:   j.parseProgress,
		PersistProgress: j.persistProgress,
		Rows:            j.rows,
		Error:           j.errMsg,
		StartedAt:       j.startedAt,
		FinishedAt:      j.finishedAt,
	}
}

// ImportService drives Parser output into the Store. One import runs at a
// time; the operator re-imports on demand, so there is no queueing.
type ImportService struct {
	Store      *Store
	LogService *logs.LogService
	Bucket     string

	mu     sync.Mutex
	jobs   map[string]*ImportJob
	active string
}

func NewImportService(store *Store, logService *logs.LogService, bucket string) *ImportService {
	return &ImportService{
		Store:      store,
		LogService: logService,
		Bucket:     bucket,
		jobs:       make(map[string]*ImportJob),
	}
}

// StartImport begins a background import of the raw dataset file and returns
// the job to poll. Fatal input errors (bad encoding, missing header, no data
// rows) surface on the job before any store mutation happens.
func (s *ImportService) StartImport(filename string, raw []byte, encoding string, userID uint) (*ImportJob, error) {
	s.mu.Lock()
	if s.active != "" {
		if j, ok := s.jobs[s.active]; ok && j.Status().State == JobRunning {
			s.mu.Unlock()
			return nil, ErrImportInProgress
		}
	}

	job := &ImportJob{
		ID:        uuid.NewString(),
		state:     JobRunning,
		startedAt: time.Now(),
	}
	s.jobs[job.ID] = job
	s.active = job.ID
	s.mu.Unlock()

	go s.run(job, filename, raw, encoding, userID)

	return job, nil
}

func (s *ImportService) run(job *ImportJob, filename string, raw []byte, encoding string, userID uint) {
	text, err := util.DecodeText(raw, encoding)
	if err != nil {
		job.fail(err)
		return
	}

	members, headers, err := ParseMembers(text, job.setParseProgress)
	if err != nil {
		job.fail(err)
		return
	}
	if len(members) == 0 {
		job.fail(errors.New("no data rows found"))
		return
	}

	if err := s.Store.BulkReplace(members, job.setPersistProgress); err != nil {
		job.fail(fmt.Errorf("persist failed: %w", err))
		return
	}

	headersJSON, _ := json.Marshal(headers)
	batch := ImportBatch{
		SourceFile:   filename,
		Rows:         len(members),
		Size:         float64(len(raw)) / 1024.0,
		Encoding:     encoding,
		ColumnsOrder: headersJSON,
		InsertedBy:   userID,
		CreatedAt:    time.Now(),
	}

	if s.Bucket != "" {
		url, _, err := util.ArchiveDataset(raw, s.Bucket, util.DatasetObjectName(filename, batch.CreatedAt), "text/csv")
		if err != nil {
			log.Printf("dataset archive failed for %s: %v", filename, err)
		} else {
			batch.ArchiveURL = url
		}
	}

	if err := s.Store.SaveBatch(&batch); err != nil {
		log.Printf("failed to record import batch for %s: %v", filename, err)
	}

	if s.LogService != nil {
		entry := logs.SystemLog{
			Level:   "INFO",
			Service: "household",
			Action:  "IMPORT_DATASET",
			Message: fmt.Sprintf("Imported %d household members from %s", len(members), filename),
			UserID:  &userID,
		}
		if err := s.LogService.Log(entry, map[string]interface{}{"rows": len(members), "encoding": encoding}); err != nil {
			log.Printf("failed to insert import audit log: %v", err)
		}
	}

	job.complete(len(members))
}

// GetJob looks up a job by id; ok is false for unknown ids.
func (s *ImportService) GetJob(id string) (*ImportJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	return j, ok
}
