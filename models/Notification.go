package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	UserID    uint   `json:"userID" gorm:"not null;index"`
	Type      string `json:"type" gorm:"type:varchar(30);index"` // booking, promotion, system
	Title     string `json:"title"`
	Message   string `json:"message" gorm:"type:text"`
	IsRead    bool   `json:"read" gorm:"default:false;index"`
	Icon      string `json:"icon"`
	RelatedID uint   `json:"relatedID"`
}
