package controllers

import (
	"net/http"
	"strconv"
	"symptotrack/internal/models"
	"symptotrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	repo repository.PatientRepository
}

func NewPatientController(repo repository.PatientRepository) *PatientController {
	return &PatientController{repo: repo}
}

// CreatePatient godoc
// @Summary Register a new patient
// @Description Create a patient record with name, age and gender
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body models.CreatePatientRequest true "Patient data"
// @Success 201 {object} map[string]interface{} "Patient registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to register patient"
// @Router /patients [post]
func (pc *PatientController) CreatePatient(c *gin.Context) {
	var req models.CreatePatientRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	gender := req.Gender
	if gender == "" {
		gender = models.GenderUnspecified
	}

	patient := models.Patient{
		Name:   req.Name,
		Age:    *req.Age,
		Gender: gender,
	}

	if err := pc.repo.Create(&patient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register patient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Patient registered successfully",
		"data":    patient,
	})
}

// GetPatients godoc
// @Summary List patients
// @Description Retrieve all registered patients, newest first
// @Tags patients
// @Produce json
// @Success 200 {object} map[string]interface{} "Patients retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve patients"
// @Router /patients [get]
func (pc *PatientController) GetPatients(c *gin.Context) {
	patients, err := pc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve patients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patients retrieved successfully",
		"data":    patients,
	})
}

// GetPatientByID godoc
// @Summary Get a patient by ID
// @Description Retrieve a single patient record
// @Tags patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} map[string]interface{} "Patient retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /patients/{id} [get]
func (pc *PatientController) GetPatientByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	patient, err := pc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
			"error":   "No patient exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patient retrieved successfully",
		"data":    patient,
	})
}
