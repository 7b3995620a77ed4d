package models

import "gorm.io/gorm"

type Facility struct {
	gorm.Model
	Name string `json:"name"`
	Icon string `json:"icon"`

	Kos []KosProperty `json:"-" gorm:"many2many:kos_facilities;"`
}
