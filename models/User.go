package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Password     string `json:"-"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	IDNumber     string `json:"idNumber"`
	ProfileImage string `json:"profileImage"`
	Role         string `json:"role" gorm:"type:varchar(20);default:user"`

	Orders        []Order        `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	Favorites     []Favorite     `json:"favorites,omitempty" gorm:"foreignKey:UserID"`
	Reviews       []Review       `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	Notifications []Notification `json:"notifications,omitempty" gorm:"foreignKey:UserID"`
}
