package routes

import (
	"lexsuite-app/internal/api/auth"
	"lexsuite-app/internal/api/billing"
	casesapi "lexsuite-app/internal/api/cases"
	clientsapi "lexsuite-app/internal/api/clients"
	"lexsuite-app/internal/api/dashboard"
	documentsapi "lexsuite-app/internal/api/documents"
	invoicesapi "lexsuite-app/internal/api/invoices"
	stripewebhooks "lexsuite-app/internal/api/stripewebhook"
	"lexsuite-app/internal/api/users"
	"lexsuite-app/internal/app/http/middleware"
	"lexsuite-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Stripe signs the raw body; keep the webhook outside the
	// sanitizer group.
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/plans", billing.ListPlans)
	r.GET("/api/checkout/session", billing.GetCheckoutSession)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", auth.Register)
	public.POST("/login", auth.Login)
	// Anonymous checkout is allowed: pricing page before signup.
	public.POST("/api/checkout", billing.CreateCheckoutSession)

	public.GET("/auth/google", auth.GoogleStart)
	public.GET("/auth/google/callback", auth.GoogleCallback)

	// Authenticated
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	authed.GET("/me", users.GetCurrentProfile)
	authed.GET("/dashboard/summary", dashboard.GetSummary)
	authed.GET("/api/subscription", billing.GetSubscription)
	authed.POST("/api/change-plan", billing.ChangePlan)

	authed.GET("/clients", clientsapi.ListClients)
	authed.GET("/clients/:id", clientsapi.GetClientByID)
	authed.POST("/clients", middleware.RequireWithinPlanLimit(plans.ResourceClients), clientsapi.CreateClient)
	authed.PUT("/clients/:id", clientsapi.UpdateClient)
	authed.DELETE("/clients/:id", clientsapi.DeleteClient)

	authed.GET("/cases", casesapi.ListCases)
	authed.GET("/cases/:id", casesapi.GetCaseByID)
	authed.POST("/cases", middleware.RequireWithinPlanLimit(plans.ResourceCases), casesapi.CreateCase)
	authed.PUT("/cases/:id", casesapi.UpdateCase)
	authed.DELETE("/cases/:id", casesapi.DeleteCase)

	authed.GET("/documents", documentsapi.ListDocuments)
	authed.POST("/documents", middleware.RequireWithinPlanLimit(plans.ResourceDocuments), documentsapi.UploadDocument)
	authed.GET("/documents/:id/download", documentsapi.DownloadDocument)
	authed.DELETE("/documents/:id", documentsapi.DeleteDocument)

	authed.GET("/invoices", invoicesapi.ListInvoices)
	authed.GET("/invoices/:id", invoicesapi.GetInvoiceByID)
	authed.POST("/invoices", middleware.RequireWithinPlanLimit(plans.ResourceInvoices), invoicesapi.CreateInvoice)
	authed.PUT("/invoices/:id", invoicesapi.UpdateInvoice)
	authed.DELETE("/invoices/:id", invoicesapi.DeleteInvoice)
}
