package invoices

import (
	"net/http"
	"time"

	"lexsuite-app/database"
	"lexsuite-app/internal/domain/invoices"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

type invoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type invoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number" binding:"required"`
	ClientID      *string              `json:"client_id"`
	CaseID        *string              `json:"case_id"`
	IssueDate     time.Time            `json:"issue_date"`
	DueDate       time.Time            `json:"due_date"`
	Status        string               `json:"status"`
	TaxRate       float64              `json:"tax_rate"`
	Notes         *string              `json:"notes"`
	Items         []invoiceItemRequest `json:"items"`
}

// buildTotals derives line amounts and invoice totals server-side so
// a client cannot post inconsistent numbers.
func buildTotals(req invoiceRequest) (float64, float64, float64, []invoices.InvoiceItem) {
	subtotal := 0.0
	items := make([]invoices.InvoiceItem, 0, len(req.Items))
	for _, it := range req.Items {
		amount := it.Quantity * it.UnitPrice
		subtotal += amount
		items = append(items, invoices.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      amount,
		})
	}
	taxAmount := subtotal * req.TaxRate / 100
	return subtotal, taxAmount, subtotal + taxAmount, items
}

// GET /invoices
func ListInvoices(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []invoices.Invoice
	if err := database.DB.Where("user_id = ?", userID).Preload("Items").Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoices"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /invoices/:id
func GetInvoiceByID(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var inv invoices.Invoice
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).Preload("Items").First(&inv).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	c.JSON(http.StatusOK, inv)
}

// POST /invoices (plan-limit gated in routes)
func CreateInvoice(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = invoices.StatusDraft
	}
	if !invoices.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	subtotal, taxAmount, total, items := buildTotals(req)

	inv := invoices.Invoice{
		UserID:        userID,
		InvoiceNumber: req.InvoiceNumber,
		ClientID:      req.ClientID,
		CaseID:        req.CaseID,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Status:        status,
		Subtotal:      subtotal,
		TaxRate:       req.TaxRate,
		TaxAmount:     taxAmount,
		Total:         total,
		Notes:         req.Notes,
		Items:         items,
	}

	if err := database.DB.Create(&inv).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}

	c.JSON(http.StatusCreated, inv)
}

// PUT /invoices/:id
func UpdateInvoice(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var inv invoices.Invoice
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&inv).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != "" && !invoices.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	subtotal, taxAmount, total, items := buildTotals(req)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// replace line items wholesale
		if err := tx.Where("invoice_id = ?", inv.ID).Delete(&invoices.InvoiceItem{}).Error; err != nil {
			return err
		}

		inv.InvoiceNumber = req.InvoiceNumber
		inv.ClientID = req.ClientID
		inv.CaseID = req.CaseID
		inv.IssueDate = req.IssueDate
		inv.DueDate = req.DueDate
		if req.Status != "" {
			inv.Status = req.Status
		}
		inv.Subtotal = subtotal
		inv.TaxRate = req.TaxRate
		inv.TaxAmount = taxAmount
		inv.Total = total
		inv.Notes = req.Notes
		inv.Items = items

		return tx.Save(&inv).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		return
	}

	c.JSON(http.StatusOK, inv)
}

// DELETE /invoices/:id
func DeleteInvoice(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var inv invoices.Invoice
		if err := tx.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&inv).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", inv.ID).Delete(&invoices.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&inv).Error
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
