package models

import (
	"time"

	"gorm.io/gorm"
)

// Entry is one temperature/symptom check-in for a patient. Entries are
// immutable once recorded; the risk level is derived on read and never stored.
type Entry struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	PatientID   uint           `json:"patient_id" example:"1"`
	Patient     Patient        `gorm:"foreignKey:PatientID" json:"-"`
	Temperature float64        `json:"temperature" example:"98.6"`
	Symptoms    string         `json:"symptoms" example:"cough, sore throat"`
	Notes       string         `json:"notes" example:"resting at home"`
}

// CreateEntryRequest carries the check-in form fields. Temperature limits
// match the form's °F input range.
type CreateEntryRequest struct {
	PatientID   uint     `json:"patient_id" binding:"required" example:"1"`
	Temperature *float64 `json:"temperature" binding:"required,gte=90,lte=110" example:"98.6"`
	Symptoms    string   `json:"symptoms" example:"cough, sore throat"`
	Notes       string   `json:"notes" example:"resting at home"`
}

// AlertEntry is the read model for the alert dashboard: an entry joined with
// the patient's name.
type AlertEntry struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	PatientID   uint      `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	Temperature float64   `json:"temperature"`
	Symptoms    string    `json:"symptoms"`
}
