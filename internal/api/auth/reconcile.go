package auth

import (
	"errors"
	"fmt"

	"lexsuite-app/config"
	"lexsuite-app/database"
	"lexsuite-app/internal/domain/plans"
	"lexsuite-app/internal/domain/profiles"
	stripestatus "lexsuite-app/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// reconcileCheckoutSession applies a pre-signup purchase to a freshly
// created profile. The session's metadata carries the purchased plan;
// the expanded subscription (when present) carries the live status.
func reconcileCheckoutSession(profileID, sessionID string) error {
	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		return errors.New("stripe key not configured")
	}

	session, err := checkoutsession.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{stripe.String("subscription")},
		},
	})
	if err != nil {
		return fmt.Errorf("fetch checkout session: %w", err)
	}

	plan := session.Metadata["plan"]
	if plan == "" {
		// Nothing to apply; the session was not one of ours.
		return nil
	}

	updates := map[string]interface{}{
		"plan":             plan,
		"billing_interval": plans.NormalizeInterval(session.Metadata["interval"]),
	}
	if session.Subscription != nil {
		updates["subscription_status"] = stripestatus.NormalizeSubscriptionStatus(string(session.Subscription.Status))
	}

	return database.DB.Model(&profiles.Profile{}).
		Where("id = ?", profileID).
		Updates(updates).Error
}
