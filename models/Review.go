package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID  uint   `json:"userID" gorm:"not null;index"`
	KosID   uint   `json:"kosID" gorm:"not null;index"`
	OrderID uint   `json:"orderID" gorm:"not null;uniqueIndex"` // one review per completed order
	Rating  int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment string `json:"comment" gorm:"type:text"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}
