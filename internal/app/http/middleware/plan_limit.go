package middleware

import (
	"errors"
	"net/http"

	"lexsuite-app/database"
	"lexsuite-app/internal/domain/plans"
	"lexsuite-app/internal/domain/usage"

	"github.com/gin-gonic/gin"
)

// RequireWithinPlanLimit guards resource-creation routes with the
// tenant's plan entitlement. A profile that cannot be loaded denies
// creation rather than assuming unlimited.
func RequireWithinPlanLimit(res plans.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ok, err := usage.CanCreate(database.DB, userID, res)
		if err != nil {
			var limitErr usage.LimitError
			if errors.As(err, &limitErr) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error": "Your current plan has reached its " + string(res) + " limit",
					"used":  limitErr.Used,
					"limit": limitErr.Limit,
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Could not verify plan limits"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Your current plan has reached its " + string(res) + " limit"})
			return
		}

		c.Next()
	}
}
