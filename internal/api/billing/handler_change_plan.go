package billing

import (
	"net/http"

	"lexsuite-app/database"
	"lexsuite-app/internal/domain/plans"
	"lexsuite-app/internal/domain/profiles"

	"github.com/gin-gonic/gin"
)

// ChangePlan switches the caller's plan directly. The update is a
// plain assignment on the profile; entitlement changes take effect on
// the next usage-gate read. Downgrading below current usage is
// allowed: existing rows are kept, new creations get blocked.
func ChangePlan(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var body struct {
		Plan string `json:"plan"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Plan == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid plan"})
		return
	}

	tier := plans.ParseTier(body.Plan)
	if string(tier) != body.Plan {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan"})
		return
	}

	result := database.DB.Model(&profiles.Profile{}).
		Where("id = ?", userID).
		Update("plan", string(tier))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": tier})
}
