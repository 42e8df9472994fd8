package routes

import (
	"symptotrack/internal/controllers"
	"symptotrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterCheckinRoutes(router *gin.Engine, checkinController *controllers.CheckinController) {
	checkinRoutes := router.Group("/checkins")
	checkinRoutes.Use(middleware.AuthMiddleware())
	{
		checkinRoutes.POST("/", checkinController.CreateCheckin)
	}
}
