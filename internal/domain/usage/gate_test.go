package usage

import (
	"fmt"
	"testing"

	"lexsuite-app/internal/domain/cases"
	"lexsuite-app/internal/domain/clients"
	"lexsuite-app/internal/domain/documents"
	"lexsuite-app/internal/domain/invoices"
	"lexsuite-app/internal/domain/plans"
	"lexsuite-app/internal/domain/profiles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, plan string) string {
	t.Helper()
	p := profiles.Profile{
		FullName: "Test Firm",
		Email:    fmt.Sprintf("%s@example.test", plan),
		Plan:     plan,
	}
	require.NoError(t, db.Create(&p).Error)
	return p.ID
}

func seedCases(t *testing.T, db *gorm.DB, userID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&cases.Case{
			UserID: userID,
			Title:  fmt.Sprintf("Case %d", i),
			Status: cases.StatusOpen,
		}).Error)
	}
}

func TestCanCreateBlocksAtLimit(t *testing.T) {
	db := newTestDB(t)
	userID := seedProfile(t, db, "free") // free allows 3 cases

	seedCases(t, db, userID, 2)
	ok, err := CanCreate(db, userID, plans.ResourceCases)
	require.NoError(t, err)
	assert.True(t, ok, "2 of 3 used should allow creation")

	seedCases(t, db, userID, 1)
	ok, err = CanCreate(db, userID, plans.ResourceCases)
	assert.False(t, ok, "3 of 3 used should block creation")

	var limitErr LimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, int64(3), limitErr.Limit)
	assert.Equal(t, int64(3), limitErr.Used)
}

func TestCanCreateUnlimitedAlwaysAllows(t *testing.T) {
	db := newTestDB(t)
	userID := seedProfile(t, db, "pro_firm")

	ok, err := CanCreate(db, userID, plans.ResourceCases)
	require.NoError(t, err)
	assert.True(t, ok, "unlimited with count 0")

	seedCases(t, db, userID, 10000)
	ok, err = CanCreate(db, userID, plans.ResourceCases)
	require.NoError(t, err)
	assert.True(t, ok, "unlimited with count 10000")
}

func TestCanCreateFailsClosedWithoutProfile(t *testing.T) {
	db := newTestDB(t)

	ok, err := CanCreate(db, "00000000-0000-0000-0000-000000000000", plans.ResourceCases)
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestCanCreateUnknownPlanGetsFreeLimits(t *testing.T) {
	db := newTestDB(t)
	userID := seedProfile(t, db, "enterprise") // not in the catalog

	seedCases(t, db, userID, 3)
	ok, err := CanCreate(db, userID, plans.ResourceCases)
	assert.False(t, ok, "unknown plan must get free limits, not unlimited")
	assert.Error(t, err)
}

func TestTenantsAreIsolated(t *testing.T) {
	db := newTestDB(t)
	a := seedProfile(t, db, "free")
	other := profiles.Profile{FullName: "Other", Email: "other@example.test", Plan: "free"}
	require.NoError(t, db.Create(&other).Error)

	seedCases(t, db, other.ID, 3)

	ok, err := CanCreate(db, a, plans.ResourceCases)
	require.NoError(t, err)
	assert.True(t, ok, "another tenant's rows must not count against this one")
}

func TestSnapshot(t *testing.T) {
	db := newTestDB(t)
	userID := seedProfile(t, db, "growth")
	seedCases(t, db, userID, 4)

	snap, err := Snapshot(db, userID, plans.EntitlementFor(plans.TierGrowth))
	require.NoError(t, err)

	assert.Equal(t, ResourceUsage{Used: 4, Limit: 100}, snap[plans.ResourceCases])
	assert.Equal(t, ResourceUsage{Used: 0, Limit: 50}, snap[plans.ResourceClients])
	assert.Equal(t, ResourceUsage{Used: 0, Limit: plans.Unlimited}, snap[plans.ResourceDocuments])
	assert.Equal(t, ResourceUsage{Used: 0, Limit: plans.Unlimited}, snap[plans.ResourceInvoices])
}
