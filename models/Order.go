package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// Assigned from the row id after insert; NULL until then, so
	// concurrent inserts never collide on the unique index.
	OrderNumber *string `json:"orderNumber" gorm:"uniqueIndex"`
	UserID      uint   `json:"userID" gorm:"index;not null"`
	KosID       uint   `json:"kosID" gorm:"index;not null"`
	RoomID      uint   `json:"roomID" gorm:"index;not null"`

	Status        string    `json:"status" gorm:"type:varchar(20);default:pending;index"` // pending, confirmed, completed, cancelled
	StatusText    string    `json:"statusText"`
	BookingDate   time.Time `json:"bookingDate"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Duration      int       `json:"duration"` // months
	TotalPrice    int       `json:"totalPrice"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus" gorm:"type:varchar(20);default:pending"`
	TransactionID string    `json:"transactionID"`

	SpecialRequest string `json:"specialRequest"`

	// Guest snapshot taken at booking time; profile edits do not rewrite it.
	GuestName     string `json:"guestName"`
	GuestEmail    string `json:"guestEmail"`
	GuestPhone    string `json:"guestPhone"`
	GuestAddress  string `json:"guestAddress"`
	GuestIDNumber string `json:"guestIDNumber"`

	User           User                 `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Kos            KosProperty          `json:"kos,omitempty" gorm:"foreignKey:KosID"`
	Room           Room                 `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	PriceBreakdown []PriceBreakdownItem `json:"priceBreakdown" gorm:"foreignKey:OrderID"`
	Review         *Review              `json:"review,omitempty" gorm:"foreignKey:OrderID"`
}

type PriceBreakdownItem struct {
	gorm.Model
	OrderID uint   `json:"orderID" gorm:"index;not null"`
	Label   string `json:"label"`
	Amount  int    `json:"amount"`
	Type    string `json:"type" gorm:"type:varchar(20)"` // rent, service_fee, admin_fee
}
