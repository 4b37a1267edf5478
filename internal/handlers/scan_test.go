package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/joanvup/MUN-Snack-Manager/internal/models"
	"github.com/joanvup/MUN-Snack-Manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// newScanRouter wires the scan endpoint against an in-memory store with
// one seeded participant (id 42, balance 6, 60 minute cooldown). The
// auth middleware is replaced by a stub that injects the operator id.
func newScanRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Committee{},
		&models.Country{},
		&models.Institution{},
		&models.Participant{},
		&models.EventConfig{},
		&models.Redemption{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.Create(&models.EventConfig{EventName: "Test Event", InitialBalance: 6, CooldownMinutes: 60})
	db.Create(&models.User{Username: "operator1", PasswordHash: "x", Role: models.RoleOperator})
	db.Create(&models.Participant{
		ID: 42, Name: "Ada Lovelace", MealBalance: 6,
		CommitteeID: 1, CountryID: 1, InstitutionID: 1,
	})

	engine := services.NewRedemptionService(
		db,
		services.NewEventConfigService(db),
		services.NewCooldownPolicy(),
		fixedClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
	)
	handler := NewScanHandler(engine)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/scan", func(c *gin.Context) { c.Set("user_id", uint(1)) }, handler.Scan)
	return r
}

func postScan(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScanHandler_Scan(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		r := newScanRouter(t)
		w := postScan(r, `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "participant id not provided") {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty body", func(t *testing.T) {
		r := newScanRouter(t)
		w := postScan(r, ``)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		r := newScanRouter(t)
		w := postScan(r, `{"id_participante": "abc"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "invalid id") {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("negative id", func(t *testing.T) {
		r := newScanRouter(t)
		w := postScan(r, `{"id_participante": -3}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown participant", func(t *testing.T) {
		r := newScanRouter(t)
		w := postScan(r, `{"id_participante": 7}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "participant not found") {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("numeric id commits", func(t *testing.T) {
		r := newScanRouter(t)
		w := postScan(r, `{"id_participante": 42}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, `"success":true`) {
			t.Errorf("expected success, got %s", body)
		}
		if !strings.Contains(body, `"saldo_restante":5`) {
			t.Errorf("expected remaining balance 5, got %s", body)
		}
		if !strings.Contains(body, "Ada Lovelace") {
			t.Errorf("expected participant name, got %s", body)
		}
	})

	t.Run("numeric string id is accepted", func(t *testing.T) {
		r := newScanRouter(t)
		w := postScan(r, `{"id_participante": "42"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"success":true`) {
			t.Errorf("expected success, got %s", w.Body.String())
		}
	})

	t.Run("second scan inside the cooldown is rejected", func(t *testing.T) {
		r := newScanRouter(t)
		postScan(r, `{"id_participante": 42}`)

		w := postScan(r, `{"id_participante": 42}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, `"success":false`) {
			t.Errorf("expected rejection, got %s", body)
		}
		if !strings.Contains(body, "60 more minutes") {
			t.Errorf("expected full cooldown wait in message, got %s", body)
		}
	})
}
