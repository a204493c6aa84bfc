package server

import (
	"net/http"

	"asset-inventory/internal/config"
	"asset-inventory/internal/handlers"
	"asset-inventory/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("inventory_session", store))

	r.Use(middleware.InjectActor(cfg.DefaultActor))

	api := r.Group("/api")

	// COMPANIES (tenants)
	api.GET("/companies", handlers.ListCompanies)
	api.POST("/companies", handlers.CreateCompany)
	api.GET("/companies/:id", handlers.GetCompany)
	api.PUT("/companies/:id", handlers.UpdateCompany)
	api.DELETE("/companies/:id", handlers.DeleteCompany)

	// LOCATIONS
	api.GET("/locations", handlers.ListLocations)
	api.POST("/locations", handlers.CreateLocation)
	api.GET("/locations/:id", handlers.GetLocation)
	api.PUT("/locations/:id", handlers.UpdateLocation)
	api.DELETE("/locations/:id", handlers.DeleteLocation)

	// DEPARTMENTS
	api.GET("/departments", handlers.ListDepartments)
	api.POST("/departments", handlers.CreateDepartment)
	api.GET("/departments/:id", handlers.GetDepartment)
	api.PUT("/departments/:id", handlers.UpdateDepartment)
	api.DELETE("/departments/:id", handlers.DeleteDepartment)

	// EMPLOYEES
	api.GET("/employees", handlers.ListEmployees)
	api.POST("/employees", handlers.CreateEmployee)
	api.GET("/employees/:id", handlers.GetEmployee)
	api.PUT("/employees/:id", handlers.UpdateEmployee)
	api.DELETE("/employees/:id", handlers.DeleteEmployee)

	// VENDORS
	api.GET("/vendors", handlers.ListVendors)
	api.POST("/vendors", handlers.CreateVendor)
	api.GET("/vendors/:id", handlers.GetVendor)
	api.PUT("/vendors/:id", handlers.UpdateVendor)
	api.DELETE("/vendors/:id", handlers.DeleteVendor)

	// HARDWARE SYSTEMS
	api.GET("/systems", handlers.ListSystems)
	api.POST("/systems", handlers.CreateSystem)
	api.GET("/systems/:id", handlers.GetSystem)
	api.PUT("/systems/:id", handlers.UpdateSystem)
	api.DELETE("/systems/:id", handlers.DeleteSystem)

	// MOBILE DEVICES
	api.GET("/mobiles", handlers.ListMobiles)
	api.POST("/mobiles", handlers.CreateMobile)
	api.GET("/mobiles/:id", handlers.GetMobile)
	api.PUT("/mobiles/:id", handlers.UpdateMobile)
	api.DELETE("/mobiles/:id", handlers.DeleteMobile)

	// SOFTWARE LICENSES
	api.GET("/software", handlers.ListSoftware)
	api.POST("/software", handlers.CreateSoftware)
	api.GET("/software/:id", handlers.GetSoftware)
	api.PUT("/software/:id", handlers.UpdateSoftware)
	api.DELETE("/software/:id", handlers.DeleteSoftware)

	// CHANGE / SERVICE REQUESTS
	api.GET("/requests", handlers.ListRequests)
	api.POST("/requests", handlers.CreateRequest)
	api.GET("/requests/:id", handlers.GetRequest)
	api.PUT("/requests/:id", handlers.UpdateRequest)
	api.DELETE("/requests/:id", handlers.DeleteRequest)

	// AUDIT JOURNAL (read-only)
	api.GET("/audit-logs", handlers.ListAuditLogs)
	api.GET("/audit-logs/:id", handlers.GetAuditLog)

	// REPORTS
	api.GET("/reports/summary", handlers.SummaryReport)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
