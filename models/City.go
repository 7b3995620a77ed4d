package models

import "gorm.io/gorm"

type City struct {
	gorm.Model
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	Image    string `json:"image"`
	IsActive *bool  `json:"isActive" gorm:"default:true"`

	Kos []KosProperty `json:"kos,omitempty" gorm:"foreignKey:CityID"`
}
