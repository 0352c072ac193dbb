package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTierUnknownFailsClosed(t *testing.T) {
	for _, raw := range []string{"", "enterprise", "pro", "starter2", "free!"} {
		assert.Equal(t, TierFree, ParseTier(raw), "raw=%q", raw)
	}

	// normalization: case and whitespace
	assert.Equal(t, TierFree, ParseTier("FREE "))
	assert.Equal(t, TierGrowth, ParseTier("growth\n"))
	assert.Equal(t, TierProFirm, ParseTier(" Pro_Firm"))
}

func TestEntitlementForUnknownTierIsFree(t *testing.T) {
	free := EntitlementFor(TierFree)

	for _, tier := range []Tier{"", "enterprise", "unknown", "PRO_FIRM"} {
		assert.Equal(t, free, EntitlementFor(tier), "tier=%q", tier)
	}
}

func TestEntitlementTable(t *testing.T) {
	tests := []struct {
		tier                                 Tier
		cases, clients, documents, invoices int64
	}{
		{TierFree, 3, 5, 20, 5},
		{TierStarter, 10, 10, 1000, 50},
		{TierGrowth, 100, 50, Unlimited, Unlimited},
		{TierProFirm, Unlimited, Unlimited, Unlimited, Unlimited},
	}

	for _, tt := range tests {
		ent := EntitlementFor(tt.tier)
		assert.Equal(t, tt.cases, ent.Cases, "%s cases", tt.tier)
		assert.Equal(t, tt.clients, ent.Clients, "%s clients", tt.tier)
		assert.Equal(t, tt.documents, ent.Documents, "%s documents", tt.tier)
		assert.Equal(t, tt.invoices, ent.Invoices, "%s invoices", tt.tier)
	}
}

func TestLimitFor(t *testing.T) {
	ent := EntitlementFor(TierStarter)
	assert.Equal(t, int64(10), ent.LimitFor(ResourceCases))
	assert.Equal(t, int64(10), ent.LimitFor(ResourceClients))
	assert.Equal(t, int64(1000), ent.LimitFor(ResourceDocuments))
	assert.Equal(t, int64(50), ent.LimitFor(ResourceInvoices))
	assert.Equal(t, int64(0), ent.LimitFor(Resource("widgets")))
}
