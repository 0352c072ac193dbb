package clients

import (
	"net/http"

	"lexsuite-app/database"
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

type clientRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// GET /clients
func ListClients(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []clients.Client
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load clients"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /clients/:id
func GetClientByID(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var client clients.Client
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&client).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// POST /clients (plan-limit gated in routes)
func CreateClient(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := clients.Client{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := database.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}

	c.JSON(http.StatusCreated, client)
}

// PUT /clients/:id
func UpdateClient(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var client clients.Client
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&client).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address

	if err := database.DB.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// DELETE /clients/:id
func DeleteClient(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	result := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&clients.Client{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
