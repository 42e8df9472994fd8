package models

import "gorm.io/gorm"

type Account struct {
	gorm.Model
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
}
