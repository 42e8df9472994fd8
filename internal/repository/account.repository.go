package repository

import (
	"symptotrack/internal/models"

	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(account *models.Account) error
	FindByUsername(username string) (*models.Account, error)
	UsernameExists(username string) (bool, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db}
}

func (r *accountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

func (r *accountRepository) FindByUsername(username string) (*models.Account, error) {
	var account models.Account
	err := r.db.Where("username = ?", username).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Account{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}
