package mocks

import (
	"symptotrack/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockAccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByUsername(username string) (*models.Account, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) UsernameExists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

// Shared MockPatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(patient *models.Patient) error {
	args := m.Called(patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindAll() ([]models.Patient, error) {
	args := m.Called()
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByID(id uint) (*models.Patient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockEntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Create(entry *models.Entry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockEntryRepository) FindByPatientID(patientID uint) ([]models.Entry, error) {
	args := m.Called(patientID)
	return args.Get(0).([]models.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindAllWithPatient() ([]models.AlertEntry, error) {
	args := m.Called()
	return args.Get(0).([]models.AlertEntry), args.Error(1)
}

func (m *MockEntryRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
