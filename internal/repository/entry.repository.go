package repository

import (
	"symptotrack/internal/models"

	"gorm.io/gorm"
)

type EntryRepository interface {
	Create(entry *models.Entry) error
	FindByPatientID(patientID uint) ([]models.Entry, error)
	FindAllWithPatient() ([]models.AlertEntry, error)
	Count() (int64, error)
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db}
}

func (r *entryRepository) Create(entry *models.Entry) error {
	return r.db.Create(entry).Error
}

// FindByPatientID returns a patient's check-ins in chronological order, the
// order the timeline renders them in.
func (r *entryRepository) FindByPatientID(patientID uint) ([]models.Entry, error) {
	var entries []models.Entry
	err := r.db.Where("patient_id = ?", patientID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

// FindAllWithPatient returns every check-in joined with the patient's name,
// newest first. The alert dashboard filters these by derived risk.
func (r *entryRepository) FindAllWithPatient() ([]models.AlertEntry, error) {
	var rows []models.AlertEntry
	err := r.db.Model(&models.Entry{}).
		Select("entries.id, entries.created_at, entries.patient_id, patients.name AS patient_name, entries.temperature, entries.symptoms").
		Joins("JOIN patients ON patients.id = entries.patient_id").
		Order("entries.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *entryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Entry{}).Count(&count).Error
	return count, err
}
