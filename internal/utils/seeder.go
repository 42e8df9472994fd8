package utils

import (
	"fmt"
	"log"
	"symptotrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultAccountUsername is the staff account created on a fresh install so
// the clinic can log in before registering its own accounts.
const DefaultAccountUsername = "hospital1"

// SeedDefaultAccount creates the default staff account if it does not exist.
func SeedDefaultAccount(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&models.Account{}).Where("username = ?", DefaultAccountUsername).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check default account: %w", err)
	}
	if count > 0 {
		log.Printf("Default account %q already exists, skipping", DefaultAccountUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	account := models.Account{
		Username: DefaultAccountUsername,
		Password: string(hash),
	}
	if err := db.Create(&account).Error; err != nil {
		return fmt.Errorf("failed to create default account: %w", err)
	}

	log.Printf("Seeded default account %q", DefaultAccountUsername)
	return nil
}

// SeedDemoPatients inserts a handful of demo patients with one check-in each,
// for local development.
func SeedDemoPatients(db *gorm.DB) error {
	demo := []struct {
		patient models.Patient
		entry   models.Entry
	}{
		{
			patient: models.Patient{Name: "Alice Demo", Age: 30, Gender: models.GenderFemale},
			entry:   models.Entry{Temperature: 103.0, Symptoms: "cough", Notes: "demo data"},
		},
		{
			patient: models.Patient{Name: "Bob Demo", Age: 54, Gender: models.GenderMale},
			entry:   models.Entry{Temperature: 100.8, Symptoms: "headache, fatigue", Notes: "demo data"},
		},
		{
			patient: models.Patient{Name: "Casey Demo", Age: 8, Gender: models.GenderUnspecified},
			entry:   models.Entry{Temperature: 98.6, Symptoms: "", Notes: "demo data"},
		},
	}

	for _, d := range demo {
		if err := db.Create(&d.patient).Error; err != nil {
			return fmt.Errorf("failed to seed patient %q: %w", d.patient.Name, err)
		}
		d.entry.PatientID = d.patient.ID
		if err := db.Create(&d.entry).Error; err != nil {
			return fmt.Errorf("failed to seed check-in for %q: %w", d.patient.Name, err)
		}
	}

	log.Printf("Seeded %d demo patients with check-ins", len(demo))
	return nil
}
