package stripewebhooks

import (
	"encoding/json"
	"fmt"

	"lexsuite-app/internal/domain/plans"
	"lexsuite-app/internal/domain/profiles"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// checkoutCompleted is the decoded slice of a completed checkout
// session this handler acts on. UserID and Plan come from the session
// metadata attached at creation; when either is empty the checkout
// happened before registration and the registration flow reconciles
// it later.
type checkoutCompleted struct {
	SessionID string
	UserID    string
	Plan      string
	Interval  string
}

func decodeCheckoutCompleted(raw json.RawMessage) (checkoutCompleted, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return checkoutCompleted{}, fmt.Errorf("parse checkout session: %w", err)
	}
	return checkoutCompleted{
		SessionID: session.ID,
		UserID:    session.Metadata["userId"],
		Plan:      session.Metadata["plan"],
		Interval:  session.Metadata["interval"],
	}, nil
}

// applyCheckoutCompleted writes the purchased plan onto the profile.
// Missing metadata is a no-op, not an error. Stripe may deliver the
// same event more than once; the assignment makes replays converge on
// the same final state.
func applyCheckoutCompleted(db *gorm.DB, ev checkoutCompleted) error {
	if ev.UserID == "" || ev.Plan == "" {
		fmt.Printf("ℹ️ checkout %s completed without tenant metadata, skipping\n", ev.SessionID)
		return nil
	}

	updates := map[string]interface{}{
		"plan":             ev.Plan,
		"billing_interval": plans.NormalizeInterval(ev.Interval),
	}

	if err := db.Model(&profiles.Profile{}).
		Where("id = ?", ev.UserID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("update profile %s after checkout: %w", ev.UserID, err)
	}

	return nil
}
