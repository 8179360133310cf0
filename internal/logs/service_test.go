package logs

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	cleanup := func() { _ = db.Close() }
	return gdb, mock, cleanup
}

func TestLogInserts(t *testing.T) {
	t.Run("metadata nil", func(t *testing.T) {
		db, mock, cleanup := newMockGorm(t)
		defer cleanup()

		ls := &LogService{DB: db}

		mock.ExpectQuery(`INSERT INTO "logs"`).
			WithArgs(
				sqlmock.AnyArg(), // level
				sqlmock.AnyArg(), // service
				sqlmock.AnyArg(), // user_id
				sqlmock.AnyArg(), // action
				sqlmock.AnyArg(), // message
				sqlmock.AnyArg(), // municipality
				sqlmock.AnyArg(), // metadata
				sqlmock.AnyArg(), // created_at
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		uid := uint(7)
		err := ls.Log(SystemLog{
			Level:   "INFO",
			Service: "household",
			UserID:  &uid,
			Action:  "IMPORT_DATASET",
			Message: "Imported 100 household members",
		}, nil)
		if err != nil {
			t.Fatalf("Log failed: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("metadata marshalled", func(t *testing.T) {
		db, mock, cleanup := newMockGorm(t)
		defer cleanup()

		ls := &LogService{DB: db}

		mock.ExpectQuery(`INSERT INTO "logs"`).
			WithArgs(
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

		err := ls.Log(SystemLog{
			Level:   "INFO",
			Service: "updates",
			Action:  "CREATE_UPDATE",
			Message: "Created update transaction",
		}, map[string]interface{}{"id": "H-1_uid_abc"})
		if err != nil {
			t.Fatalf("Log failed: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})
}

// user mirrors the users table the log list joins against.
type user struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Firstname string `gorm:"column:firstname"`
	Lastname  string `gorm:"column:lastname"`
}

func (user) TableName() string { return "users" }

func newTestLogService(t *testing.T) *LogService {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&SystemLog{}, &user{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return &LogService{DB: db}
}

func strPtr(s string) *string { return &s }

func TestGetLogsFiltersAndJoins(t *testing.T) {
	ls := newTestLogService(t)

	if err := ls.DB.Create(&user{ID: 1, Firstname: "Maria", Lastname: "Santos"}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	uid := uint(1)
	entries := []SystemLog{
		{Level: "INFO", Service: "auth", Action: "LOGIN", Message: "User logged in", UserID: &uid},
		{Level: "INFO", Service: "updates", Action: "CREATE_UPDATE", Message: "Created update transaction", UserID: &uid, Municipality: "MOBO"},
		{Level: "ERROR", Service: "household", Action: "IMPORT_DATASET", Message: "persist failed"},
	}
	for _, e := range entries {
		if err := ls.Log(e, nil); err != nil {
			t.Fatalf("seed log: %v", err)
		}
	}

	rows, total, pages, err := ls.GetLogs(LogFilterInput{})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 3 || pages != 1 || len(rows) != 3 {
		t.Fatalf("expected 3 rows, got total=%d pages=%d rows=%d", total, pages, len(rows))
	}

	rows, total, _, err = ls.GetLogs(LogFilterInput{Service: strPtr("updates")})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 1 || rows[0].Action != "CREATE_UPDATE" {
		t.Fatalf("service filter wrong: total=%d rows=%+v", total, rows)
	}
	if rows[0].Firstname != "Maria" || rows[0].Lastname != "Santos" {
		t.Fatalf("user join missing: %+v", rows[0])
	}

	rows, total, _, err = ls.GetLogs(LogFilterInput{Search: strPtr("persist")})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 1 || rows[0].Level != "ERROR" {
		t.Fatalf("search filter wrong: total=%d", total)
	}

	_, total, _, err = ls.GetLogs(LogFilterInput{Municipality: strPtr("MOBO")})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("municipality filter wrong: total=%d", total)
	}
}

func TestGetLogsDateRangeAndPaging(t *testing.T) {
	ls := newTestLogService(t)

	for i := 0; i < 25; i++ {
		if err := ls.Log(SystemLog{Level: "INFO", Service: "auth", Action: "LOGIN", Message: fmt.Sprintf("login %d", i)}, nil); err != nil {
			t.Fatalf("seed log: %v", err)
		}
	}

	rows, total, pages, err := ls.GetLogs(LogFilterInput{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 25 || pages != 3 || len(rows) != 10 {
		t.Fatalf("paging wrong: total=%d pages=%d rows=%d", total, pages, len(rows))
	}

	today := time.Now().Format("2006-01-02")
	_, total, _, err = ls.GetLogs(LogFilterInput{StartDate: strPtr(today), EndDate: strPtr(today)})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 25 {
		t.Fatalf("same-day range should include today's logs, got %d", total)
	}

	old := "2001-01-01"
	_, total, _, err = ls.GetLogs(LogFilterInput{StartDate: strPtr(old), EndDate: strPtr(old)})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no logs in old range, got %d", total)
	}

	if _, _, _, err := ls.GetLogs(LogFilterInput{StartDate: strPtr("01/01/2024")}); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
