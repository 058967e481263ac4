package routes

import (
	"obradash/internal/adapter/http/handlers"
	"obradash/internal/adapter/http/middleware"
	"obradash/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathConstructoras = "/constructoras"
	PathObras         = "/obras"
	PathResidentes    = "/residentes"
	PathGastos        = "/gastos"
	PathPlans         = "/plans"
	PathReports       = "/reports"
)

// addConstructoraRoutes mounts the tenant-scoped endpoints. Only the owning
// constructora user can reach them.
func addConstructoraRoutes(rg *gin.RouterGroup, h Handlers) {
	constructora := rg.Group(PathConstructoras+"/:id", middleware.RequireConstructora("id"))
	{
		constructora.GET("/dashboard", h.Dashboard.ConstructoraDashboard)

		constructora.GET("/obras", h.Obra.List)
		constructora.POST("/obras", h.Obra.Create)

		constructora.GET("/residentes", h.Residente.List)
		constructora.POST("/residentes", h.Residente.Create)

		constructora.GET("/pagos", h.Payment.ListPayments)
		constructora.POST("/pagos", h.Payment.Pay)
	}
}

// addObraRoutes mounts obra mutations, which only the constructora tabs expose.
func addObraRoutes(rg *gin.RouterGroup, obra *handlers.ObraHandler, gasto *handlers.GastoHandler) {
	obras := rg.Group(PathObras, middleware.RequireRole(entities.UserRoleConstructora))
	{
		obras.PUT("/:id", obra.Update)
		obras.DELETE("/:id", obra.Delete)
		obras.GET("/:id/gastos", gasto.ListByObra)
	}
}

func addResidenteRoutes(rg *gin.RouterGroup, residente *handlers.ResidenteHandler, dashboard *handlers.DashboardHandler) {
	constructoraOnly := middleware.RequireRole(entities.UserRoleConstructora)
	residentes := rg.Group(PathResidentes)
	{
		residentes.GET("/:id", middleware.RequireResidenteAccess("id"), residente.Get)
		residentes.DELETE("/:id", constructoraOnly, residente.Delete)
		residentes.PUT("/:id/assignment", constructoraOnly, residente.Reassign)
		residentes.GET("/:id/dashboard", middleware.RequireResidenteAccess("id"), dashboard.ResidenteDashboard)
	}
}

// addGastoRoutes lets residentes read and book gastos; editing and approval stay
// with the constructora.
func addGastoRoutes(rg *gin.RouterGroup, h *handlers.GastoHandler) {
	constructoraOnly := middleware.RequireRole(entities.UserRoleConstructora)
	gastos := rg.Group(PathGastos)
	{
		gastos.GET("", h.List)
		gastos.POST("", h.Create)
		gastos.GET("/:id", h.Get)
		gastos.PUT("/:id", constructoraOnly, h.Update)
		gastos.DELETE("/:id", constructoraOnly, h.Delete)
		gastos.PATCH("/:id/approval", constructoraOnly, h.SetApproval)
	}
}
