package dashboard

import (
	"net/http"

	"lexsuite-app/database"
	"lexsuite-app/internal/domain/plans"
	"lexsuite-app/internal/domain/profiles"
	"lexsuite-app/internal/domain/usage"

	"github.com/gin-gonic/gin"
)

// GetSummary returns the per-resource counts and caps shown on the
// dashboard landing page.
func GetSummary(c *gin.Context) {
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
	snapshot, err := usage.Snapshot(database.DB, userID, plans.EntitlementFor(tier))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":  tier,
		"usage": snapshot,
	})
}
