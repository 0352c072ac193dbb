package cases

import (
	"net/http"
	"time"

	"lexsuite-app/database"
	"lexsuite-app/internal/domain/cases"
	"lexsuite-app/internal/domain/clients"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

type caseRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	ClientID    *string    `json:"client_id"`
	DueDate     *time.Time `json:"due_date"`
}

// ownClientID verifies a referenced client belongs to the tenant.
// Cross-tenant links must not be expressible.
func ownClientID(userID string, clientID *string) (*string, bool) {
	if clientID == nil || *clientID == "" {
		return nil, true
	}
	var client clients.Client
	if err := database.DB.Where("id = ? AND user_id = ?", *clientID, userID).First(&client).Error; err != nil {
		return nil, false
	}
	return clientID, true
}

// GET /cases
func ListCases(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	query := database.DB.Where("user_id = ?", userID)
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var list []cases.Case
	if err := query.Preload("Client").Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cases"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /cases/:id
func GetCaseByID(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var kase cases.Case
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).Preload("Client").First(&kase).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}

	c.JSON(http.StatusOK, kase)
}

// POST /cases (plan-limit gated in routes)
func CreateCase(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req caseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = cases.StatusOpen
	}
	if !cases.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	clientID, ok := ownClientID(userID, req.ClientID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown client"})
		return
	}

	kase := cases.Case{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		ClientID:    clientID,
		DueDate:     req.DueDate,
	}

	if err := database.DB.Create(&kase).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create case"})
		return
	}

	c.JSON(http.StatusCreated, kase)
}

// PUT /cases/:id
func UpdateCase(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var kase cases.Case
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&kase).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}

	var req caseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != "" && !cases.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	clientID, ok := ownClientID(userID, req.ClientID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown client"})
		return
	}

	kase.Title = req.Title
	kase.Description = req.Description
	if req.Status != "" {
		kase.Status = req.Status
	}
	kase.ClientID = clientID
	kase.DueDate = req.DueDate

	if err := database.DB.Save(&kase).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update case"})
		return
	}

	c.JSON(http.StatusOK, kase)
}

// DELETE /cases/:id
func DeleteCase(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	result := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&cases.Case{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete case"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
