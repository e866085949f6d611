package routes

import (
	"github.com/gin-gonic/gin"

	"modportal/internal/interfaces/http/handlers"
	"modportal/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	DashboardHandler  *handlers.DashboardHandler
	TicketHandler     *handlers.TicketHandler
	FormHandler       *handlers.FormHandler
	ExportHandler     *handlers.ExportHandler
	UploadsHandler    *handlers.UploadsHandler
	SessionMiddleware *middleware.SessionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	session := config.SessionMiddleware.RequireSession()

	engine.GET("/", session, config.DashboardHandler.GetDashboard)
	engine.GET("/search", session, config.TicketHandler.SearchTickets)
	engine.GET("/export.csv", session, config.ExportHandler.ExportCSV)
	engine.GET("/export.xlsx", session, config.ExportHandler.ExportXLSX)
	engine.GET("/uploads/:filename", session, config.UploadsHandler.Download)

	tickets := engine.Group("/tickets")
	tickets.Use(session)
	{
		// Register specific paths before parameterized ones.
		tickets.GET("/new", config.FormHandler.GetTicketForm)
		tickets.POST("/new", config.TicketHandler.CreateTicket)
		tickets.POST("/:id/close", config.TicketHandler.CloseTicket)
		tickets.POST("/:id/delete", config.TicketHandler.DeleteTicket)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
