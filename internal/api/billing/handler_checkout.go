package billing

import (
	"fmt"
	"net/http"
	"strings"

	"lexsuite-app/config"
	"lexsuite-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// CreateCheckoutSession starts a Stripe Checkout Session for a paid
// plan. The caller may be anonymous (pricing page before signup): in
// that case the success redirect goes through registration, carrying
// the session id so the account created there can be reconciled with
// the payment.
func CreateCheckoutSession(c *gin.Context) {
	var body struct {
		Plan      string `json:"plan"`
		UserID    string `json:"userId"`
		UserEmail string `json:"userEmail"`
		Interval  string `json:"interval"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Plan == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	// Validate against the price table before any Stripe call. Free
	// is not purchasable; unknown plans are an input error.
	tier := plans.Tier(body.Plan)
	interval := plans.NormalizeInterval(body.Interval)
	unitAmount, err := plans.UnitAmountFor(tier, interval)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan"})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	appURL := config.APP_URL

	successURL := appURL + "/dashboard?session_id={CHECKOUT_SESSION_ID}"
	if body.UserID == "" {
		// Pre-signup purchase: registration reconciles identity with
		// payment using these query parameters.
		successURL = fmt.Sprintf("%s/register?session_id={CHECKOUT_SESSION_ID}&plan=%s&interval=%s", appURL, tier, interval)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}), // trial requires card upfront
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("myr"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(strings.ToUpper(string(tier)) + " Plan Subscription"),
						Description: stripe.String(fmt.Sprintf("Professional legal suite access for %s tier. 14-day free trial included.", tier)),
					},
					UnitAmount: stripe.Int64(unitAmount),
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String(interval),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(14),
		},
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		BillingAddressCollection: stripe.String("required"),
		SuccessURL:               stripe.String(successURL),
		CancelURL:                stripe.String(appURL + "/pricing"),
	}

	if body.UserEmail != "" {
		params.CustomerEmail = stripe.String(body.UserEmail)
	}

	// The webhook relies on this metadata round-tripping unchanged;
	// it is the only link from the payment event back to the tenant.
	params.AddMetadata("userId", body.UserID)
	params.AddMetadata("plan", string(tier))
	params.AddMetadata("interval", interval)

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
