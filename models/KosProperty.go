package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// KosProperty is the core listed entity: a boarding house with bookable rooms.
type KosProperty struct {
	gorm.Model
	Name        string         `json:"name" gorm:"not null"`
	Location    string         `json:"location"`
	Address     string         `json:"address"`
	Description string         `json:"description" gorm:"type:text"`
	Type        string         `json:"type" gorm:"type:varchar(20);index"` // flats, villas, hotels
	Capacity    string         `json:"capacity"`
	Price       int            `json:"price"`
	Rating      float64        `json:"rating"`
	Image       string         `json:"image"`
	Images      datatypes.JSON `json:"images"`
	Status      string         `json:"status" gorm:"type:varchar(20);default:active;index"` // active, inactive

	CityID  uint          `json:"cityID" gorm:"index"`
	City    City          `json:"city" gorm:"foreignKey:CityID"`
	OwnerID uint          `json:"ownerID" gorm:"index"`
	Owner   PropertyOwner `json:"owner" gorm:"foreignKey:OwnerID"`

	Rooms      []Room     `json:"rooms" gorm:"foreignKey:KosID"`
	Rules      []Rule     `json:"rules" gorm:"foreignKey:KosID"`
	Facilities []Facility `json:"facilities" gorm:"many2many:kos_facilities;"`
	Reviews    []Review   `json:"reviews,omitempty" gorm:"foreignKey:KosID"`
}

type Room struct {
	gorm.Model
	KosID     uint   `json:"kosID" gorm:"index;not null"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	People    int    `json:"people"`
	Size      string `json:"size"`
	Price     int    `json:"price"`
	Available *bool  `json:"available" gorm:"default:true"`
}

type Rule struct {
	gorm.Model
	KosID uint   `json:"kosID" gorm:"index;not null"`
	Rule  string `json:"rule"`
}
