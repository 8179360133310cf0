package household

import (
	"strings"

	"gorm.io/gorm"
)

const (
	// WriteBatchSize bounds one replace transaction; a single transaction
	// over hundreds of thousands of rows blocks readers and risks engine
	// limits, mirroring the batch size the dashboard always used.
	WriteBatchSize = 5000

	// SearchLimit caps interactive search results.
	SearchLimit = 50
)

// Store is the durable member collection: one primary key (entry_id), a
// non-unique hhid index for roster joins, and a last_name index for search.
type Store struct {
	DB *gorm.DB
}

// BulkReplace clears the member collection and writes records in batched
// transactions. The clear transaction completes before the first write batch
// starts, so old and new datasets never interleave. onProgress receives 0-100
// per completed batch. A failed batch aborts the remainder; rows committed by
// earlier batches stay in place and the error is returned to the caller.
func (s *Store) BulkReplace(records []Member, onProgress func(pct int)) error {
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Member{}).Error
	}); err != nil {
		return err
	}

	total := len(records)
	for i := 0; i < total; i += WriteBatchSize {
		end := i + WriteBatchSize
		if end > total {
			end = total
		}
		batch := records[i:end]

		if err := s.DB.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&batch).Error
		}); err != nil {
			return err
		}

		if onProgress != nil {
			onProgress(int(float64(end) / float64(total) * 100))
		}
	}

	if onProgress != nil {
		onProgress(100)
	}

	return nil
}

// Count reports the member total without loading rows.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.DB.Model(&Member{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// GetByHHID returns every member sharing one household id, via the hhid
// index. An unknown hhid yields an empty slice, not an error.
func (s *Store) GetByHHID(hhid string) ([]Member, error) {
	members := []Member{}
	if err := s.DB.Where("hhid = ?", hhid).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetByEntryID fetches a single member row by primary key.
func (s *Store) GetByEntryID(entryID string) (*Member, error) {
	var m Member
	if err := s.DB.Where("entry_id = ?", entryID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Search matches a fragment against hhid, first name, or last name,
// case-insensitively, returning at most SearchLimit rows. The LIMIT stops the
// scan early instead of materializing the collection.
func (s *Store) Search(fragment string, limit int) ([]Member, error) {
	if limit <= 0 || limit > SearchLimit {
		limit = SearchLimit
	}

	q := strings.ToUpper(strings.TrimSpace(fragment))
	if q == "" {
		return []Member{}, nil
	}
	like := "%" + q + "%"

	members := []Member{}
	err := s.DB.
		Where("hhid LIKE ? OR UPPER(first_name) LIKE ? OR UPPER(last_name) LIKE ?", like, like, like).
		Limit(limit).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// LatestBatch returns the metadata of the most recent import, or
// gorm.ErrRecordNotFound when nothing has been imported yet.
func (s *Store) LatestBatch() (*ImportBatch, error) {
	var b ImportBatch
	if err := s.DB.Order("id DESC").First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) SaveBatch(b *ImportBatch) error {
	return s.DB.Create(b).Error
}
