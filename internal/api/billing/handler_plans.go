package billing

import (
	"net/http"

	"lexsuite-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

// ListPlans is the public plan catalog for the pricing page. Prices
// are the fixed monthly amounts in MYR minor units; the annual amount
// is derived client-side the same way checkout derives it (10x).
func ListPlans(c *gin.Context) {
	type planOut struct {
		Tier         plans.Tier        `json:"tier"`
		MonthlyPrice int64             `json:"monthly_price"`
		Entitlements plans.Entitlement `json:"entitlements"`
	}

	out := make([]planOut, 0, 4)
	for _, tier := range []plans.Tier{plans.TierFree, plans.TierStarter, plans.TierGrowth, plans.TierProFirm} {
		price := int64(0)
		if tier.IsPaid() {
			p, err := plans.BasePriceFor(tier)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
				return
			}
			price = p
		}
		out = append(out, planOut{
			Tier:         tier,
			MonthlyPrice: price,
			Entitlements: plans.EntitlementFor(tier),
		})
	}

	c.JSON(http.StatusOK, out)
}
