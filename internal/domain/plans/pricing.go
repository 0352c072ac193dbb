package plans

import (
	"errors"
	"fmt"
)

// ErrNotPurchasable is returned for tiers without a checkout price
// (free is not bought, and unknown tiers never reach Stripe).
var ErrNotPurchasable = errors.New("plan is not purchasable")

// Monthly prices in MYR minor units (sen). Fixed business rule, not
// derived from Stripe.
var monthlyPrices = map[Tier]int64{
	TierStarter: 19900,  // RM 199.00
	TierGrowth:  59900,  // RM 599.00
	TierProFirm: 149900, // RM 1,499.00
}

// BasePriceFor returns the canonical monthly price for a paid tier.
func BasePriceFor(tier Tier) (int64, error) {
	price, ok := monthlyPrices[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotPurchasable, tier)
	}
	return price, nil
}

// UnitAmountFor computes the checkout line-item amount. Annual billing
// charges 10x the monthly price (two months free); any interval other
// than "year" bills monthly.
func UnitAmountFor(tier Tier, interval string) (int64, error) {
	base, err := BasePriceFor(tier)
	if err != nil {
		return 0, err
	}
	if interval == "year" {
		return base * 10, nil
	}
	return base, nil
}

// NormalizeInterval collapses the billing interval onto "month"|"year".
func NormalizeInterval(interval string) string {
	if interval == "year" {
		return "year"
	}
	return "month"
}
