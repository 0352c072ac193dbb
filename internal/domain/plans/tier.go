package plans

import "strings"

// Tier identifies a subscription level. It keys into the entitlement
// catalog and (for paid tiers) into the checkout price table.
type Tier string

const (
	TierFree    Tier = "free"
	TierStarter Tier = "starter"
	TierGrowth  Tier = "growth"
	TierProFirm Tier = "pro_firm"
)

// ParseTier normalizes a raw plan string to a known tier.
// Anything unrecognized resolves to the free tier, so a profile row
// carrying a stale or garbage plan value can never gain entitlements.
func ParseTier(raw string) Tier {
	switch Tier(strings.ToLower(strings.TrimSpace(raw))) {
	case TierStarter:
		return TierStarter
	case TierGrowth:
		return TierGrowth
	case TierProFirm:
		return TierProFirm
	}
	return TierFree
}

// IsPaid reports whether the tier is purchasable through checkout.
func (t Tier) IsPaid() bool {
	switch t {
	case TierStarter, TierGrowth, TierProFirm:
		return true
	}
	return false
}
