package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the API routes. corsOrigin is the frontend origin allowed
// to call the API; empty disables CORS handling.
func NewRouter(invoices *InvoiceHandler, catalog *CatalogHandler, customers *CustomerHandler, corsOrigin string, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	if corsOrigin != "" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{corsOrigin},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"*"},
			AllowCredentials: true,
		}))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	categories := api.Group("/categories")
	{
		categories.GET("", catalog.ListCategories)
		categories.POST("", catalog.CreateCategory)
		categories.GET("/:id", catalog.GetCategory)
		categories.PUT("/:id", catalog.UpdateCategory)
		categories.DELETE("/:id", catalog.DeleteCategory)
	}

	items := api.Group("/items")
	{
		items.GET("", catalog.ListItems)
		items.POST("", catalog.CreateItem)
		items.PUT("/:id", catalog.UpdateItem)
		items.DELETE("/:id", catalog.DeleteItem)
	}

	customerRoutes := api.Group("/customers")
	{
		customerRoutes.GET("", customers.ListCustomers)
		customerRoutes.POST("", customers.CreateCustomer)
		customerRoutes.GET("/:id", customers.GetCustomer)
		customerRoutes.PUT("/:id", customers.UpdateCustomer)
		customerRoutes.DELETE("/:id", customers.DeleteCustomer)
	}

	invoiceRoutes := api.Group("/invoices")
	{
		invoiceRoutes.GET("", invoices.ListInvoices)
		invoiceRoutes.POST("", invoices.CreateInvoice)
		invoiceRoutes.GET("/:id", invoices.GetInvoice)
		invoiceRoutes.GET("/:id/pdf", invoices.GetInvoicePDF)
	}

	return router
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
