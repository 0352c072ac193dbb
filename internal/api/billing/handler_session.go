package billing

import (
	"net/http"

	"lexsuite-app/config"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// GetCheckoutSession returns the customer details Stripe recorded for
// a session, so the registration form can be pre-filled after a
// pre-signup purchase.
func GetCheckoutSession(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session ID"})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	s, err := checkoutsession.Get(sessionID, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve session", "details": err.Error()})
		return
	}

	out := gin.H{"email": nil, "name": nil, "phone": nil}
	if s.CustomerDetails != nil {
		out["email"] = s.CustomerDetails.Email
		out["name"] = s.CustomerDetails.Name
		out["phone"] = s.CustomerDetails.Phone
	}

	c.JSON(http.StatusOK, out)
}
