package models

import "gorm.io/gorm"

type PropertyOwner struct {
	gorm.Model
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	Kos []KosProperty `json:"kos,omitempty" gorm:"foreignKey:OwnerID"`
}
