package routes

import (
	"symptotrack/internal/controllers"
	"symptotrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterReportRoutes(router *gin.Engine, reportController *controllers.ReportController) {
	reportRoutes := router.Group("/reports")
	reportRoutes.Use(middleware.AuthMiddleware())
	{
		reportRoutes.GET("/overview", reportController.GetOverview)
		reportRoutes.GET("/alerts", reportController.GetHighRiskAlerts)
	}
}
