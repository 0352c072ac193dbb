package stripe

import "strings"

// NormalizeSubscriptionStatus maps raw Stripe subscription statuses
// onto the four values the profiles table stores. Trialing counts as
// active (the product treats the trial as a live subscription);
// anything unrecognized is pending payment state.
func NormalizeSubscriptionStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "active", "trialing":
		return "active"
	case "past_due", "unpaid":
		return "past_due"
	case "canceled", "incomplete_expired":
		return "canceled"
	default:
		return "incomplete"
	}
}
