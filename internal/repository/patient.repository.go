package repository

import (
	"symptotrack/internal/models"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(patient *models.Patient) error
	FindAll() ([]models.Patient, error)
	FindByID(id uint) (*models.Patient, error)
	Count() (int64, error)
}

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db}
}

func (r *patientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// FindAll returns patients newest first, matching the registration list order.
func (r *patientRepository) FindAll() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("id DESC").Find(&patients).Error
	return patients, err
}

func (r *patientRepository) FindByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, id).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Count(&count).Error
	return count, err
}
