package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSubscriptionStatus(t *testing.T) {
	tests := map[string]string{
		"active":             "active",
		"trialing":           "active",
		"past_due":           "past_due",
		"unpaid":             "past_due",
		"canceled":           "canceled",
		"incomplete_expired": "canceled",
		"incomplete":         "incomplete",
		"paused":             "incomplete",
		"":                   "incomplete",
		"  active  ":         "active",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeSubscriptionStatus(in), "in=%q", in)
	}
}
