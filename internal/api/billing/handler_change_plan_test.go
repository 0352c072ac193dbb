package billing

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexsuite-app/database"
	"lexsuite-app/internal/domain/cases"
	"lexsuite-app/internal/domain/clients"
	"lexsuite-app/internal/domain/documents"
	"lexsuite-app/internal/domain/invoices"
	"lexsuite-app/internal/domain/profiles"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPlanTest(t *testing.T, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&profiles.Profile{},
		&clients.Client{},
		&cases.Case{},
		&documents.Document{},
		&invoices.Invoice{},
		&invoices.InvoiceItem{},
	))
	database.DB = db

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
	})
	r.POST("/api/change-plan", ChangePlan)
	r.GET("/api/subscription", GetSubscription)
	return r
}

func TestChangePlanUpdatesProfile(t *testing.T) {
	r := setupPlanTest(t, "u1")
	require.NoError(t, database.DB.Create(&profiles.Profile{
		ID:    "u1",
		Email: "u1@example.test",
		Plan:  "free",
	}).Error)

	req := httptest.NewRequest(http.MethodPost, "/api/change-plan", bytes.NewBufferString(`{"plan": "starter"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var p profiles.Profile
	require.NoError(t, database.DB.Where("id = ?", "u1").First(&p).Error)
	assert.Equal(t, "starter", p.Plan)
}

func TestChangePlanRejectsUnknownTier(t *testing.T) {
	r := setupPlanTest(t, "u1")
	require.NoError(t, database.DB.Create(&profiles.Profile{
		ID:    "u1",
		Email: "u1@example.test",
		Plan:  "growth",
	}).Error)

	req := httptest.NewRequest(http.MethodPost, "/api/change-plan", bytes.NewBufferString(`{"plan": "enterprise"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var p profiles.Profile
	require.NoError(t, database.DB.Where("id = ?", "u1").First(&p).Error)
	assert.Equal(t, "growth", p.Plan, "a rejected switch must not mutate the profile")
}

func TestChangePlanRequiresIdentity(t *testing.T) {
	r := setupPlanTest(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/change-plan", bytes.NewBufferString(`{"plan": "starter"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetSubscriptionSnapshot(t *testing.T) {
	r := setupPlanTest(t, "u1")
	require.NoError(t, database.DB.Create(&profiles.Profile{
		ID:              "u1",
		Email:           "u1@example.test",
		Plan:            "growth",
		BillingInterval: "year",
	}).Error)
	require.NoError(t, database.DB.Create(&cases.Case{
		UserID: "u1",
		Title:  "Estate of Lim",
		Status: cases.StatusOpen,
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/subscription", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"plan":"growth"`)
	assert.Contains(t, w.Body.String(), `"billing_interval":"year"`)
	assert.Contains(t, w.Body.String(), `"used":1`)
}
