package users

import (
	"net/http"

	"lexsuite-app/database"
	"lexsuite-app/internal/domain/plans"
	"lexsuite-app/internal/domain/profiles"

	"github.com/gin-gonic/gin"
)

// GetCurrentProfile returns the caller's profile plus the entitlement
// record for its current plan.
func GetCurrentProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var profile profiles.Profile
	if err := database.DB.Where("id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Profile not found"})
		return
	}

	tier := plans.ParseTier(profile.Plan)

	c.JSON(http.StatusOK, gin.H{
		"profile":      profile,
		"plan":         tier,
		"entitlements": plans.EntitlementFor(tier),
	})
}
