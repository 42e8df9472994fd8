package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GenderUnspecified = "unspecified"
	GenderFemale      = "female"
	GenderMale        = "male"
	GenderOther       = "other"
)

type Patient struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name      string         `json:"name" example:"Alice"`
	Age       int            `json:"age" example:"30"`
	Gender    string         `gorm:"default:unspecified" json:"gender" example:"female"`
}

// CreatePatientRequest carries the registration form fields. Age and gender
// bounds come straight from the intake form limits.
type CreatePatientRequest struct {
	Name   string `json:"name" binding:"required" example:"Alice"`
	Age    *int   `json:"age" binding:"required,gte=0,lte=120" example:"30"`
	Gender string `json:"gender" binding:"omitempty,oneof=unspecified female male other" example:"female"`
}
