package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"symptotrack/internal/models"
	"symptotrack/internal/repository"
	"symptotrack/internal/risk"
	"time"

	"github.com/gin-gonic/gin"
)

type CheckinController struct {
	entryRepo   repository.EntryRepository
	patientRepo repository.PatientRepository
}

func NewCheckinController(entryRepo repository.EntryRepository, patientRepo repository.PatientRepository) *CheckinController {
	return &CheckinController{entryRepo: entryRepo, patientRepo: patientRepo}
}

// entryWithRisk decorates a stored entry with its derived risk level.
type entryWithRisk struct {
	models.Entry
	Risk risk.Level `json:"risk"`
}

// CreateCheckin godoc
// @Summary Submit a symptom check-in
// @Description Record a temperature/symptom observation for a patient and return the derived risk level
// @Tags checkins
// @Accept json
// @Produce json
// @Param checkin body models.CreateEntryRequest true "Check-in data"
// @Success 201 {object} map[string]interface{} "Check-in submitted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Failure 500 {object} map[string]interface{} "Failed to submit check-in"
// @Router /checkins [post]
func (cc *CheckinController) CreateCheckin(c *gin.Context) {
	var req models.CreateEntryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	patient, err := cc.patientRepo.FindByID(req.PatientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
			"error":   "No patient exists with the provided ID",
		})
		return
	}

	entry := models.Entry{
		PatientID:   patient.ID,
		Temperature: *req.Temperature,
		Symptoms:    req.Symptoms,
		Notes:       req.Notes,
	}

	if err := cc.entryRepo.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to submit check-in",
			"error":   err.Error(),
		})
		return
	}

	level := risk.Classify(entry.Temperature, entry.Symptoms)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Check-in submitted successfully",
		"data": gin.H{
			"entry":           entryWithRisk{Entry: entry, Risk: level},
			"patient_name":    patient.Name,
			"high_risk_alert": level == risk.LevelHigh,
		},
	})
}

// GetPatientTimeline godoc
// @Summary Get a patient's check-in timeline
// @Description Retrieve all check-ins for a patient in chronological order, each with its derived risk level
// @Tags checkins
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} map[string]interface{} "Timeline retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /patients/{id}/checkins [get]
func (cc *CheckinController) GetPatientTimeline(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	patient, err := cc.patientRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
			"error":   "No patient exists with the provided ID",
		})
		return
	}

	entries, err := cc.entryRepo.FindByPatientID(patient.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve timeline",
			"error":   err.Error(),
		})
		return
	}

	timeline := make([]entryWithRisk, 0, len(entries))
	for _, entry := range entries {
		timeline = append(timeline, entryWithRisk{
			Entry: entry,
			Risk:  risk.Classify(entry.Temperature, entry.Symptoms),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Timeline retrieved successfully",
		"data": gin.H{
			"patient":  patient,
			"timeline": timeline,
		},
	})
}

// ExportPatientReport godoc
// @Summary Download a patient's check-in report as CSV
// @Description Stream the patient's check-ins as a CSV file with columns timestamp, temperature, symptoms, notes
// @Tags checkins
// @Produce text/csv
// @Param id path int true "Patient ID"
// @Success 200 {string} string "CSV report"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /patients/{id}/report.csv [get]
func (cc *CheckinController) ExportPatientReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	patient, err := cc.patientRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
			"error":   "No patient exists with the provided ID",
		})
		return
	}

	entries, err := cc.entryRepo.FindByPatientID(patient.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to export report",
			"error":   err.Error(),
		})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="patient_%d_report.csv"`, patient.ID))

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"timestamp", "temperature", "symptoms", "notes"})
	for _, entry := range entries {
		_ = w.Write([]string{
			entry.CreatedAt.UTC().Format(time.RFC3339),
			strconv.FormatFloat(entry.Temperature, 'f', 1, 64),
			entry.Symptoms,
			entry.Notes,
		})
	}
	w.Flush()
}
