// Package router wires all API handlers onto a gin engine.
package router

import (
	"net/http"

	"github.com/optivista/backend/internal/interfaces/http/handler"
	"github.com/optivista/backend/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers collects every handler the API exposes
type Handlers struct {
	Patients      *handler.PatientHandler
	Optometrists  *handler.OptometristHandler
	Appointments  *handler.AppointmentHandler
	Consultations *handler.ConsultationHandler
	Inventory     *handler.InventoryHandler
	Sales         *handler.SaleHandler
	Notifications *handler.NotificationHandler
	Users         *handler.UserHandler
	Dashboard     *handler.DashboardHandler
}

// New builds the gin engine with middleware and all routes under /api/v1
func New(h Handlers, log *zap.Logger) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.RequestLogger(log),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	patients := api.Group("/patients")
	{
		patients.POST("", h.Patients.Create)
		patients.GET("", h.Patients.List)
		patients.GET("/:id", h.Patients.Get)
		patients.PUT("/:id", h.Patients.Update)
		patients.DELETE("/:id", h.Patients.Delete)
	}

	optometrists := api.Group("/optometrists")
	{
		optometrists.POST("", h.Optometrists.Create)
		optometrists.GET("", h.Optometrists.List)
		optometrists.GET("/:id", h.Optometrists.Get)
		optometrists.DELETE("/:id", h.Optometrists.Delete)
	}

	appointments := api.Group("/appointments")
	{
		appointments.POST("", h.Appointments.Create)
		appointments.GET("", h.Appointments.List)
		appointments.GET("/:id", h.Appointments.Get)
		appointments.PUT("/:id/schedule", h.Appointments.Reschedule)
		appointments.POST("/:id/complete", h.Appointments.Complete)
		appointments.POST("/:id/cancel", h.Appointments.Cancel)
		appointments.DELETE("/:id", h.Appointments.Delete)
	}

	consultations := api.Group("/consultations")
	{
		consultations.POST("", h.Consultations.Create)
		consultations.GET("", h.Consultations.List)
		consultations.GET("/:id", h.Consultations.Get)
		consultations.PUT("/:id/diagnosis", h.Consultations.UpdateDiagnosis)
		consultations.DELETE("/:id", h.Consultations.Delete)
	}

	inventory := api.Group("/inventory")
	{
		inventory.POST("", h.Inventory.Create)
		inventory.GET("", h.Inventory.List)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.POST("/:id/stock", h.Inventory.AdjustStock)
		inventory.PUT("/:id/price", h.Inventory.UpdatePrice)
		inventory.DELETE("/:id", h.Inventory.Delete)
	}

	sales := api.Group("/sales")
	{
		sales.POST("", h.Sales.Create)
		sales.GET("", h.Sales.List)
		sales.GET("/:id", h.Sales.Get)
		sales.POST("/:id/items", h.Sales.AddItem)
		sales.DELETE("/:id/items/:index", h.Sales.RemoveItem)
		sales.POST("/:id/transition", h.Sales.Transition)
	}

	notifications := api.Group("/notifications")
	{
		notifications.POST("", h.Notifications.Create)
		notifications.GET("", h.Notifications.List)
		notifications.GET("/:id", h.Notifications.Get)
		notifications.POST("/:id/send", h.Notifications.Send)
	}

	users := api.Group("/users")
	{
		users.POST("", h.Users.Create)
		users.GET("", h.Users.List)
		users.GET("/:id", h.Users.Get)
		users.PUT("/:id/password", h.Users.ChangePassword)
		users.DELETE("/:id", h.Users.Delete)
	}

	api.POST("/auth/login", h.Users.Login)
	api.GET("/dashboard", h.Dashboard.Metrics)

	return engine
}
