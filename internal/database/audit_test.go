package database

import (
	"fmt"
	"testing"
	"time"

	"asset-inventory/internal/models"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	DB = db
	t.Cleanup(func() { DB = nil })
}

func seedRecord(t *testing.T, entityType string, action models.AuditAction, createdAt time.Time) models.AuditRecord {
	t.Helper()

	record := models.AuditRecord{
		Action:      action,
		EntityType:  entityType,
		EntityID:    fmt.Sprintf("%s-%d", entityType, createdAt.UnixNano()),
		OldValues:   datatypes.JSONMap{},
		NewValues:   datatypes.JSONMap{},
		PerformedBy: "Admin",
		CreatedAt:   createdAt,
	}
	if err := DB.Create(&record).Error; err != nil {
		t.Fatalf("failed to seed audit record: %v", err)
	}
	return record
}

func TestRecordChangeStoresEmptySidesAsEmptyMaps(t *testing.T) {
	setupTestDB(t)

	RecordChange(models.AuditCreate, "Company", "abc-1",
		nil, map[string]any{"name": "Globex"}, "", nil)

	var record models.AuditRecord
	if err := DB.First(&record).Error; err != nil {
		t.Fatalf("expected one audit record: %v", err)
	}

	if record.OldValues == nil || len(record.OldValues) != 0 {
		t.Errorf("expected explicit empty oldValues, got %v", record.OldValues)
	}
	if record.NewValues["name"] != "Globex" {
		t.Errorf("expected newValues to carry the snapshot, got %v", record.NewValues)
	}
	if record.PerformedBy != "Admin" {
		t.Errorf("expected default actor, got %q", record.PerformedBy)
	}
	if record.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
}

func TestRecordChangeSwallowsPersistenceFailure(t *testing.T) {
	setupTestDB(t)

	if err := DB.Migrator().DropTable(&models.AuditRecord{}); err != nil {
		t.Fatalf("failed to drop audit table: %v", err)
	}

	// must log and return, never panic or propagate
	RecordChange(models.AuditUpdate, "System", "sys-1",
		map[string]any{"name": "a"}, map[string]any{"name": "b"}, "Admin", nil)
}

func TestListAuditRecordsPagination(t *testing.T) {
	setupTestDB(t)

	base := time.Now().Add(-2 * time.Hour).Truncate(time.Second)
	for i := 0; i < 75; i++ {
		seedRecord(t, "System", models.AuditCreate, base.Add(time.Duration(i)*time.Second))
	}

	page, err := ListAuditRecords(AuditFilter{Page: 2, Limit: 50})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(page.Data) != 25 {
		t.Errorf("expected 25 records on page 2, got %d", len(page.Data))
	}
	if page.Total != 75 {
		t.Errorf("expected total 75, got %d", page.Total)
	}
	if page.TotalPages != 2 {
		t.Errorf("expected 2 total pages, got %d", page.TotalPages)
	}
	if page.Page != 2 || page.Limit != 50 {
		t.Errorf("expected page=2 limit=50 echoed back, got page=%d limit=%d", page.Page, page.Limit)
	}
}

func TestListAuditRecordsDefaults(t *testing.T) {
	setupTestDB(t)

	seedRecord(t, "Company", models.AuditCreate, time.Now())

	page, err := ListAuditRecords(AuditFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Page != 1 || page.Limit != 50 {
		t.Errorf("expected defaults page=1 limit=50, got page=%d limit=%d", page.Page, page.Limit)
	}
	if page.Total != 1 || page.TotalPages != 1 {
		t.Errorf("expected total=1 totalPages=1, got %d/%d", page.Total, page.TotalPages)
	}
}

func TestListAuditRecordsFilterCombination(t *testing.T) {
	setupTestDB(t)

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	seedRecord(t, "System", models.AuditCreate, base)
	older := seedRecord(t, "System", models.AuditDelete, base.Add(1*time.Minute))
	seedRecord(t, "Mobile", models.AuditDelete, base.Add(2*time.Minute))
	newer := seedRecord(t, "System", models.AuditDelete, base.Add(3*time.Minute))

	page, err := ListAuditRecords(AuditFilter{EntityType: "System", Action: "DELETE"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(page.Data) != 2 {
		t.Fatalf("expected 2 records in the intersection, got %d", len(page.Data))
	}
	if page.Data[0].EntityID != newer.EntityID || page.Data[1].EntityID != older.EntityID {
		t.Errorf("expected newest-first order, got %s then %s",
			page.Data[0].EntityID, page.Data[1].EntityID)
	}
	for _, record := range page.Data {
		if record.EntityType != "System" || record.Action != models.AuditDelete {
			t.Errorf("filter leaked record %s/%s", record.EntityType, record.Action)
		}
	}
}

func TestListAuditRecordsDateRange(t *testing.T) {
	setupTestDB(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedRecord(t, "Company", models.AuditUpdate, base.AddDate(0, 0, -2))
	inside := seedRecord(t, "Company", models.AuditUpdate, base)
	seedRecord(t, "Company", models.AuditUpdate, base.AddDate(0, 0, 2))

	start := base.AddDate(0, 0, -1)
	end := base.AddDate(0, 0, 1)
	page, err := ListAuditRecords(AuditFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(page.Data) != 1 || page.Data[0].EntityID != inside.EntityID {
		t.Errorf("expected only the in-range record, got %d records", len(page.Data))
	}
}

func TestListAuditRecordsPreloadsCompany(t *testing.T) {
	setupTestDB(t)

	company := models.Company{Name: "Initech", Code: "INI"}
	if err := DB.Create(&company).Error; err != nil {
		t.Fatalf("failed to create company: %v", err)
	}

	RecordChange(models.AuditCreate, "Location", "loc-1",
		nil, map[string]any{"name": "HQ"}, "Admin", &company.ID)

	page, err := ListAuditRecords(AuditFilter{EntityType: "Location"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Data) != 1 {
		t.Fatalf("expected 1 record, got %d", len(page.Data))
	}
	if page.Data[0].Company == nil || page.Data[0].Company.Name != "Initech" {
		t.Errorf("expected joined company, got %+v", page.Data[0].Company)
	}
	if page.Data[0].Company != nil && page.Data[0].Company.Code != "INI" {
		t.Errorf("expected company code, got %q", page.Data[0].Company.Code)
	}
}
