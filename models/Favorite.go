package models

import "gorm.io/gorm"

type Favorite struct {
	gorm.Model
	UserID uint `json:"userID" gorm:"not null;uniqueIndex:idx_favorites_user_kos"`
	KosID  uint `json:"kosID" gorm:"not null;uniqueIndex:idx_favorites_user_kos"`

	Kos KosProperty `json:"kos" gorm:"foreignKey:KosID"`
}
