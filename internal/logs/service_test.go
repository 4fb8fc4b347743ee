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

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&SystemLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}

	return db
}

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

func TestLogService_Log_Inserts(t *testing.T) {
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
			sqlmock.AnyArg(), // village
			sqlmock.AnyArg(), // metadata
			sqlmock.AnyArg(), // created_at
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	village := "Rampur"
	err := ls.Log(SystemLog{
		Level:   "INFO",
		Service: "survey",
		Action:  "SUBMIT_GENERAL",
		Message: "General survey submitted",
		Village: &village,
	}, map[string]any{"full_name": "Asha Devi"})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func seedLog(t *testing.T, db *gorm.DB, action, village string, at time.Time) {
	t.Helper()

	entry := SystemLog{
		Level:     "INFO",
		Service:   "survey",
		Action:    action,
		Message:   action + " happened",
		CreatedAt: at,
	}
	if village != "" {
		entry.Village = &village
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("seed log: %v", err)
	}
}

func TestLogService_GetLogs_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	ls := &LogService{DB: db}

	now := time.Now()
	seedLog(t, db, "FIRST", "Rampur", now.Add(-2*time.Hour))
	seedLog(t, db, "SECOND", "Rampur", now.Add(-1*time.Hour))

	rows, _, total, _, err := ls.GetLogs(LogFilterInput{})
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if len(rows) != 2 || rows[0].Action != "SECOND" || rows[1].Action != "FIRST" {
		t.Fatalf("unexpected order: %#v", rows)
	}
}

func TestLogService_GetLogs_FilterByAction(t *testing.T) {
	db := newTestDB(t)
	ls := &LogService{DB: db}

	now := time.Now()
	seedLog(t, db, "LOGIN", "", now.Add(-1*time.Hour))
	seedLog(t, db, "SUBMIT_ANC", "Rampur", now.Add(-2*time.Hour))

	action := "LOGIN"
	rows, _, total, _, err := ls.GetLogs(LogFilterInput{Action: &action})
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Action != "LOGIN" {
		t.Fatalf("unexpected result: total=%d rows=%#v", total, rows)
	}
}

func TestLogService_GetLogs_SearchMatchesMessage(t *testing.T) {
	db := newTestDB(t)
	ls := &LogService{DB: db}

	now := time.Now()
	seedLog(t, db, "REGISTER_HOUSEHOLD", "Rampur", now.Add(-1*time.Hour))
	seedLog(t, db, "LOGIN", "", now.Add(-2*time.Hour))

	search := "household"
	rows, _, _, _, err := ls.GetLogs(LogFilterInput{Search: &search})
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if len(rows) != 1 || rows[0].Action != "REGISTER_HOUSEHOLD" {
		t.Fatalf("unexpected rows: %#v", rows)
	}
}

func TestLogService_GetLogs_VillageAggregates(t *testing.T) {
	db := newTestDB(t)
	ls := &LogService{DB: db}

	now := time.Now()
	seedLog(t, db, "SUBMIT_GENERAL", "Rampur", now.Add(-1*time.Hour))
	seedLog(t, db, "SUBMIT_GENERAL", "Rampur", now.Add(-2*time.Hour))
	seedLog(t, db, "LOGIN", "", now.Add(-3*time.Hour))

	_, aggs, _, _, err := ls.GetLogs(LogFilterInput{})
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}

	got := map[string]int64{}
	for _, a := range aggs.ByVillage {
		got[a.Label] = a.Count
	}
	if got["Rampur"] != 2 {
		t.Fatalf("expected Rampur=2, got %#v", aggs.ByVillage)
	}
	if got["No village"] != 1 {
		t.Fatalf("expected 'No village'=1, got %#v", aggs.ByVillage)
	}
}

func TestLogService_GetLogs_Paging(t *testing.T) {
	db := newTestDB(t)
	ls := &LogService{DB: db}

	now := time.Now()
	for i := 0; i < 5; i++ {
		seedLog(t, db, fmt.Sprintf("A%d", i), "", now.Add(-time.Duration(i)*time.Minute))
	}

	rows, _, total, totalPages, err := ls.GetLogs(LogFilterInput{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if total != 5 || totalPages != 3 {
		t.Fatalf("expected total=5 pages=3, got total=%d pages=%d", total, totalPages)
	}
	if len(rows) != 2 || rows[0].Action != "A2" {
		t.Fatalf("unexpected page 2: %#v", rows)
	}
}

func TestLogService_GetLogs_BadDateRange(t *testing.T) {
	db := newTestDB(t)
	ls := &LogService{DB: db}

	bad := "31-12-2024"
	if _, _, _, _, err := ls.GetLogs(LogFilterInput{StartDate: &bad}); err == nil {
		t.Fatalf("expected error for bad date format")
	}
}
