package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnualIsTenTimesMonthly(t *testing.T) {
	for _, tier := range []Tier{TierStarter, TierGrowth, TierProFirm} {
		monthly, err := UnitAmountFor(tier, "month")
		require.NoError(t, err, "%s month", tier)

		yearly, err := UnitAmountFor(tier, "year")
		require.NoError(t, err, "%s year", tier)

		assert.Equal(t, monthly*10, yearly, "%s", tier)
	}
}

func TestUnitAmountValues(t *testing.T) {
	got, err := UnitAmountFor(TierGrowth, "year")
	require.NoError(t, err)
	assert.Equal(t, int64(599000), got)

	got, err = UnitAmountFor(TierStarter, "month")
	require.NoError(t, err)
	assert.Equal(t, int64(19900), got)

	// anything but "year" bills monthly
	got, err = UnitAmountFor(TierProFirm, "weekly")
	require.NoError(t, err)
	assert.Equal(t, int64(149900), got)
}

func TestNonPurchasableTiers(t *testing.T) {
	for _, tier := range []Tier{TierFree, "enterprise", ""} {
		_, err := UnitAmountFor(tier, "month")
		assert.ErrorIs(t, err, ErrNotPurchasable, "tier=%q", tier)
	}
}

func TestNormalizeInterval(t *testing.T) {
	assert.Equal(t, "year", NormalizeInterval("year"))
	assert.Equal(t, "month", NormalizeInterval("month"))
	assert.Equal(t, "month", NormalizeInterval(""))
	assert.Equal(t, "month", NormalizeInterval("annual"))
}
