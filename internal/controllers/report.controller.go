package controllers

import (
	"log"
	"net/http"
	"symptotrack/internal/cache"
	"symptotrack/internal/repository"
	"symptotrack/internal/risk"
	"time"

	"github.com/gin-gonic/gin"
)

const overviewCacheTTL = 30 * time.Second

type ReportController struct {
	patientRepo repository.PatientRepository
	entryRepo   repository.EntryRepository
	redis       *cache.RedisClient
}

// NewReportController wires the report views. redis may be nil; caching is
// best-effort and the reports always fall back to the database.
func NewReportController(patientRepo repository.PatientRepository, entryRepo repository.EntryRepository, redis *cache.RedisClient) *ReportController {
	return &ReportController{
		patientRepo: patientRepo,
		entryRepo:   entryRepo,
		redis:       redis,
	}
}

// GetOverview godoc
// @Summary Clinic overview counters
// @Description Return the number of registered patients and submitted check-ins
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Overview retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve overview"
// @Router /reports/overview [get]
func (rc *ReportController) GetOverview(c *gin.Context) {
	if rc.redis != nil {
		if counts, err := rc.redis.GetOverview(); err == nil && counts != nil {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Overview retrieved successfully",
				"data":    counts,
				"cached":  true,
			})
			return
		}
	}

	patientCount, err := rc.patientRepo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve overview",
			"error":   err.Error(),
		})
		return
	}

	entryCount, err := rc.entryRepo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve overview",
			"error":   err.Error(),
		})
		return
	}

	counts := map[string]int64{
		"patients_registered": patientCount,
		"checkins_submitted":  entryCount,
	}

	if rc.redis != nil {
		if err := rc.redis.StoreOverview(counts, overviewCacheTTL); err != nil {
			log.Printf("Warning: failed to cache overview: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Overview retrieved successfully",
		"data":    counts,
		"cached":  false,
	})
}

// GetHighRiskAlerts godoc
// @Summary High-risk alert dashboard
// @Description Return every check-in whose derived risk level is High, joined with the patient's name, newest first
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Alerts retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve alerts"
// @Router /reports/alerts [get]
func (rc *ReportController) GetHighRiskAlerts(c *gin.Context) {
	entries, err := rc.entryRepo.FindAllWithPatient()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve alerts",
			"error":   err.Error(),
		})
		return
	}

	type alertWithRisk struct {
		ID          uint       `json:"id"`
		CreatedAt   time.Time  `json:"created_at"`
		PatientID   uint       `json:"patient_id"`
		PatientName string     `json:"patient_name"`
		Temperature float64    `json:"temperature"`
		Symptoms    string     `json:"symptoms"`
		Risk        risk.Level `json:"risk"`
	}

	alerts := make([]alertWithRisk, 0)
	for _, entry := range entries {
		level := risk.Classify(entry.Temperature, entry.Symptoms)
		if level != risk.LevelHigh {
			continue
		}
		alerts = append(alerts, alertWithRisk{
			ID:          entry.ID,
			CreatedAt:   entry.CreatedAt,
			PatientID:   entry.PatientID,
			PatientName: entry.PatientName,
			Temperature: entry.Temperature,
			Symptoms:    entry.Symptoms,
			Risk:        level,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Alerts retrieved successfully",
		"data":    alerts,
	})
}
