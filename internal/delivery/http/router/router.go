// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"carttrace/internal/delivery/http/middleware"
	"carttrace/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProvisioningHandler *handler.ProvisioningHandler
	ClientHandler       *handler.ClientHandler
	ProductHandler      *handler.ProductHandler
	InvoiceHandler      *handler.InvoiceHandler
	TransactionHandler  *handler.TransactionHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	provisioningHandler *handler.ProvisioningHandler
	clientHandler       *handler.ClientHandler
	productHandler      *handler.ProductHandler
	invoiceHandler      *handler.InvoiceHandler
	transactionHandler  *handler.TransactionHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		provisioningHandler: params.ProvisioningHandler,
		clientHandler:       params.ClientHandler,
		productHandler:      params.ProductHandler,
		invoiceHandler:      params.InvoiceHandler,
		transactionHandler:  params.TransactionHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Account provisioning routes. Reset and email resolution are reachable
	// without a session because the caller has, by definition, no credentials.
	provisionGroup := e.Group("/provision")
	{
		provisionGroup.POST("/reset-password", r.provisioningHandler.ResetPassword)
		provisionGroup.POST("/resolve-login-email", r.provisioningHandler.ResolveLoginEmail)

		provisionGroup.POST("/setup-tenant", r.provisioningHandler.SetupTenant,
			r.authMiddleware.Authenticate)
		provisionGroup.POST("/create-client-user", r.provisioningHandler.CreateClientUser,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole("admin"))
	}

	// Tenant-scoped bookkeeping routes. The tenant is always resolved from
	// the caller's profile, never taken from the request.
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	apiGroup.Use(r.authMiddleware.ResolveTenant)
	{
		apiGroup.POST("/clients", r.clientHandler.CreateClient)
		apiGroup.GET("/clients", r.clientHandler.ListClients)
		apiGroup.GET("/clients/:id", r.clientHandler.GetClient)
		apiGroup.PUT("/clients/:id", r.clientHandler.UpdateClient)
		apiGroup.DELETE("/clients/:id", r.clientHandler.DeleteClient)
		apiGroup.GET("/clients/:id/summary", r.clientHandler.GetClientSummary)

		apiGroup.POST("/products", r.productHandler.CreateProduct)
		apiGroup.GET("/products", r.productHandler.ListProducts)
		apiGroup.GET("/products/:id", r.productHandler.GetProduct)
		apiGroup.PUT("/products/:id", r.productHandler.UpdateProduct)
		apiGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)

		apiGroup.POST("/invoices", r.invoiceHandler.CreateInvoice)
		apiGroup.GET("/invoices", r.invoiceHandler.ListInvoices)
		apiGroup.GET("/invoices/number/next", r.invoiceHandler.NextInvoiceNumber)
		apiGroup.GET("/invoices/:id", r.invoiceHandler.GetInvoice)
		apiGroup.PUT("/invoices/:id", r.invoiceHandler.UpdateInvoice)
		apiGroup.DELETE("/invoices/:id", r.invoiceHandler.DeleteInvoice)

		apiGroup.POST("/transactions", r.transactionHandler.CreateTransaction)
		apiGroup.GET("/transactions", r.transactionHandler.ListTransactions)
		apiGroup.GET("/transactions/:id", r.transactionHandler.GetTransaction)
		apiGroup.PUT("/transactions/:id", r.transactionHandler.UpdateTransaction)
		apiGroup.DELETE("/transactions/:id", r.transactionHandler.DeleteTransaction)

		apiGroup.POST("/notifications", r.notificationHandler.CreateNotification)
		apiGroup.GET("/notifications", r.notificationHandler.ListNotifications)
		apiGroup.GET("/notifications/unread-count", r.notificationHandler.CountUnread)
		apiGroup.PUT("/notifications/read-all", r.notificationHandler.MarkAllRead)
		apiGroup.PUT("/notifications/:id/read", r.notificationHandler.MarkRead)
		apiGroup.DELETE("/notifications/:id", r.notificationHandler.DeleteNotification)
	}
}
