package routes

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ngekos-server/models"
	"ngekos-server/storage"
	"ngekos-server/utils"
)

const (
	serviceFee   = 50000
	adminFeeRate = 0.01
)

var errRoomUnavailable = errors.New("room unavailable")

// CreateBooking places an order for a room. The whole creation runs in
// one transaction with the room row locked, so two concurrent requests
// for the last room cannot both succeed.
func CreateBooking(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateBookingInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	checkIn, err := parseDate(input.CheckIn)
	if err != nil {
		utils.CreateValidationError("checkIn must be a valid date (YYYY-MM-DD)", ctx)
		return
	}

	var kos models.KosProperty
	err = storage.DB.Preload("Owner").First(&kos, input.KosID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateNotFound("Kos not found", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	var order models.Order
	err = storage.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND kos_id = ?", input.RoomID, kos.ID).
			First(&room).Error
		if err != nil {
			return err
		}

		if room.Available == nil || !*room.Available {
			return errRoomUnavailable
		}

		checkOut := checkIn.AddDate(0, input.Duration, 0)
		rent, adminFee, total := computePriceBreakdown(room.Price)

		order = models.Order{
			UserID:         claims.ID,
			KosID:          kos.ID,
			RoomID:         room.ID,
			Status:         "pending",
			StatusText:     "Waiting for payment",
			BookingDate:    time.Now(),
			CheckIn:        checkIn,
			CheckOut:       checkOut,
			Duration:       input.Duration,
			TotalPrice:     total,
			PaymentMethod:  input.PaymentMethod,
			PaymentStatus:  "pending",
			SpecialRequest: input.SpecialRequest,
			GuestName:      input.GuestInfo.FullName,
			GuestEmail:     input.GuestInfo.Email,
			GuestPhone:     input.GuestInfo.Phone,
			GuestAddress:   input.GuestInfo.Address,
			GuestIDNumber:  input.GuestInfo.IDNumber,
			PriceBreakdown: []models.PriceBreakdownItem{
				{Label: "Monthly Rent", Amount: rent, Type: "rent"},
				{Label: "Service Fee", Amount: serviceFee, Type: "service_fee"},
				{Label: "Admin Fee", Amount: adminFee, Type: "admin_fee"},
			},
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// The order number comes off the auto-increment id, inside the
		// same transaction, so it is unique without a count query. The
		// column holds NULL until this point.
		orderNumber := formatOrderNumber(order.ID)
		order.OrderNumber = &orderNumber
		if err := tx.Model(&order).Update("order_number", orderNumber).Error; err != nil {
			return err
		}

		available := false
		return tx.Model(&room).Update("available", &available).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, errRoomUnavailable):
			utils.CreateConflict("Room is no longer available", ctx)
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.CreateNotFound("Room not found", ctx)
		default:
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	go notificationService.NotifyBookingCreated(claims.ID, kos.Name, *order.OrderNumber, order.ID, order.TotalPrice)

	var created models.Order
	err = storage.DB.
		Preload("Kos.Owner").
		Preload("Room").
		Preload("PriceBreakdown").
		First(&created, order.ID).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Created(ctx, formatOrderDetail(&created))
}

func computePriceBreakdown(roomPrice int) (rent, adminFee, total int) {
	rent = roomPrice
	adminFee = int(math.Round(float64(roomPrice) * adminFeeRate))
	total = rent + serviceFee + adminFee
	return rent, adminFee, total
}

func formatOrderNumber(id uint) string {
	return fmt.Sprintf("ORD-%03d", id)
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

type GuestInfoInput struct {
	FullName string `json:"fullName" validate:"required,max=256"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,max=32"`
	Address  string `json:"address" validate:"required,max=512"`
	IDNumber string `json:"idNumber" validate:"required,max=64"`
}

type CreateBookingInput struct {
	KosID          uint           `json:"kosId" validate:"required"`
	RoomID         uint           `json:"roomId" validate:"required"`
	CheckIn        string         `json:"checkIn" validate:"required"`
	Duration       int            `json:"duration" validate:"required,min=1,max=24"`
	PaymentMethod  string         `json:"paymentMethod" validate:"required,max=64"`
	GuestInfo      GuestInfoInput `json:"guestInfo" validate:"required"`
	SpecialRequest string         `json:"specialRequest" validate:"omitempty,max=1024"`
}
