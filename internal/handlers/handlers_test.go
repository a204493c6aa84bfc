package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"asset-inventory/internal/config"
	"asset-inventory/internal/database"
	"asset-inventory/internal/models"
	"asset-inventory/internal/server"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	database.DB = db
	t.Cleanup(func() { database.DB = nil })

	cfg := &config.Config{
		SessionSecret: "test-secret",
		DefaultActor:  "Admin",
	}
	return server.NewRouter(cfg)
}

func createCompany(t *testing.T, name string) models.Company {
	t.Helper()
	company := models.Company{Name: name, Code: "TST"}
	if err := database.DB.Create(&company).Error; err != nil {
		t.Fatalf("failed to create company: %v", err)
	}
	return company
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSystemRecordsAudit(t *testing.T) {
	r := setupRouter(t)
	company := createCompany(t, "Globex")

	w := doJSON(t, r, http.MethodPost, "/api/systems", map[string]any{
		"company_id":    company.ID.String(),
		"name":          "web-01",
		"system_type":   "server",
		"serial_number": "SN-100",
	}, nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var record models.AuditRecord
	if err := database.DB.Where("entity_type = ?", "System").First(&record).Error; err != nil {
		t.Fatalf("expected an audit record: %v", err)
	}
	if record.Action != models.AuditCreate {
		t.Errorf("expected CREATE action, got %s", record.Action)
	}
	if len(record.OldValues) != 0 {
		t.Errorf("CREATE must have empty oldValues, got %v", record.OldValues)
	}
	if record.NewValues["name"] != "web-01" {
		t.Errorf("expected full new snapshot, got %v", record.NewValues)
	}
	if record.CompanyID == nil || *record.CompanyID != company.ID {
		t.Errorf("expected tenant scope on audit record, got %v", record.CompanyID)
	}
	if record.PerformedBy != "Admin" {
		t.Errorf("expected default actor, got %q", record.PerformedBy)
	}
}

func TestUpdateSystemRecordsOnlyChangedFields(t *testing.T) {
	r := setupRouter(t)
	company := createCompany(t, "Globex")

	system := models.System{
		CompanyID:    company.ID,
		Name:         "web-01",
		SystemType:   models.SystemServer,
		SerialNumber: "SN-100",
		Status:       models.StatusInService,
	}
	if err := database.DB.Create(&system).Error; err != nil {
		t.Fatalf("failed to create system: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, "/api/systems/"+system.ID.String(), map[string]any{
		"company_id":    company.ID.String(),
		"name":          "web-02",
		"system_type":   "server",
		"serial_number": "SN-100",
		"status":        "in_service",
	}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var record models.AuditRecord
	if err := database.DB.Where("action = ?", models.AuditUpdate).First(&record).Error; err != nil {
		t.Fatalf("expected an UPDATE audit record: %v", err)
	}
	if len(record.OldValues) != 1 || record.OldValues["name"] != "web-01" {
		t.Errorf("expected only the changed field in oldValues, got %v", record.OldValues)
	}
	if len(record.NewValues) != 1 || record.NewValues["name"] != "web-02" {
		t.Errorf("expected only the changed field in newValues, got %v", record.NewValues)
	}
}

func TestAuditFailureDoesNotFailWrite(t *testing.T) {
	r := setupRouter(t)
	company := createCompany(t, "Globex")

	system := models.System{
		CompanyID:    company.ID,
		Name:         "web-01",
		SystemType:   models.SystemServer,
		SerialNumber: "SN-100",
		Status:       models.StatusInService,
	}
	if err := database.DB.Create(&system).Error; err != nil {
		t.Fatalf("failed to create system: %v", err)
	}

	if err := database.DB.Migrator().DropTable(&models.AuditRecord{}); err != nil {
		t.Fatalf("failed to drop audit table: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, "/api/systems/"+system.ID.String(), map[string]any{
		"company_id":    company.ID.String(),
		"name":          "web-02",
		"system_type":   "server",
		"serial_number": "SN-100",
		"status":        "in_service",
	}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("write must succeed when the audit insert fails, got %d: %s", w.Code, w.Body.String())
	}

	var reloaded models.System
	if err := database.DB.First(&reloaded, "id = ?", system.ID).Error; err != nil {
		t.Fatalf("failed to reload system: %v", err)
	}
	if reloaded.Name != "web-02" {
		t.Errorf("business write lost: name is %q", reloaded.Name)
	}
}

func TestActorHeaderAttribution(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/companies", map[string]any{
		"name": "Initech",
	}, map[string]string{"X-Actor": "jdoe"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var record models.AuditRecord
	if err := database.DB.First(&record).Error; err != nil {
		t.Fatalf("expected an audit record: %v", err)
	}
	if record.PerformedBy != "jdoe" {
		t.Errorf("expected actor from header, got %q", record.PerformedBy)
	}
}

func TestCreateCompanyValidation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/companies", map[string]any{
		"name": "ab",
	}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short name, got %d", w.Code)
	}

	var total int64
	database.DB.Model(&models.AuditRecord{}).Count(&total)
	if total != 0 {
		t.Errorf("failed write must not produce an audit record, found %d", total)
	}
}

func TestDuplicateSerialConflict(t *testing.T) {
	r := setupRouter(t)
	company := createCompany(t, "Globex")

	payload := map[string]any{
		"company_id":    company.ID.String(),
		"name":          "web-01",
		"system_type":   "server",
		"serial_number": "SN-100",
	}
	if w := doJSON(t, r, http.MethodPost, "/api/systems", payload, nil); w.Code != http.StatusCreated {
		t.Fatalf("first create failed: %d", w.Code)
	}

	payload["name"] = "web-02"
	w := doJSON(t, r, http.MethodPost, "/api/systems", payload, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate serial, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteCompanyRecordsOldSnapshot(t *testing.T) {
	r := setupRouter(t)
	company := createCompany(t, "Globex")

	w := doJSON(t, r, http.MethodDelete, "/api/companies/"+company.ID.String(), nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var record models.AuditRecord
	if err := database.DB.Where("action = ?", models.AuditDelete).First(&record).Error; err != nil {
		t.Fatalf("expected a DELETE audit record: %v", err)
	}
	if record.OldValues["name"] != "Globex" {
		t.Errorf("expected old snapshot on delete, got %v", record.OldValues)
	}
	if len(record.NewValues) != 0 {
		t.Errorf("DELETE must have empty newValues, got %v", record.NewValues)
	}
}

func TestListAuditLogsEndpoint(t *testing.T) {
	r := setupRouter(t)
	company := createCompany(t, "Globex")

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/locations", map[string]any{
			"company_id": company.ID.String(),
			"name":       fmt.Sprintf("Office %d", i),
		}, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("location create failed: %d", w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/audit-logs?entity_type=Location&action=CREATE&limit=2", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var page struct {
		Data       []models.AuditRecord `json:"data"`
		Total      int64                `json:"total"`
		Page       int                  `json:"page"`
		Limit      int                  `json:"limit"`
		TotalPages int                  `json:"total_pages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to decode page: %v", err)
	}

	if page.Total != 3 || page.TotalPages != 2 || len(page.Data) != 2 {
		t.Errorf("expected total=3 totalPages=2 with 2 rows, got total=%d totalPages=%d rows=%d",
			page.Total, page.TotalPages, len(page.Data))
	}
	if w := doJSON(t, r, http.MethodGet, "/api/audit-logs?start_date=bogus", nil, nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed date, got %d", w.Code)
	}
}
