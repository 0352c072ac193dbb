package billing

import (
	"net/http"

	"lexsuite-app/database"
	"lexsuite-app/internal/domain/plans"
	"lexsuite-app/internal/domain/profiles"
	"lexsuite-app/internal/domain/usage"

	"github.com/gin-gonic/gin"
)

// GetSubscription returns the caller's current plan, its entitlements
// and live usage per resource kind.
func GetSubscription(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var profile profiles.Profile
	if err := database.DB.Where("id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Profile not found"})
		return
	}

	tier := plans.ParseTier(profile.Plan)
	ent := plans.EntitlementFor(tier)

	snapshot, err := usage.Snapshot(database.DB, userID, ent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load usage"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":                tier,
		"billing_interval":    profile.BillingInterval,
		"subscription_status": profile.SubscriptionStatus,
		"entitlements":        ent,
		"usage":               snapshot,
	})
}
