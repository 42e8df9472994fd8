package routes

import (
	"symptotrack/internal/controllers"
	"symptotrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterPatientRoutes(router *gin.Engine, patientController *controllers.PatientController, checkinController *controllers.CheckinController) {
	patientRoutes := router.Group("/patients")
	patientRoutes.Use(middleware.AuthMiddleware())
	{
		patientRoutes.POST("/", patientController.CreatePatient)
		patientRoutes.GET("/", patientController.GetPatients)
		patientRoutes.GET("/:id", patientController.GetPatientByID)
		patientRoutes.GET("/:id/checkins", checkinController.GetPatientTimeline)
		patientRoutes.GET("/:id/report.csv", checkinController.ExportPatientReport)
	}
}
