package routes

import (
	"strings"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"

	"ngekos-server/models"
	"ngekos-server/storage"
	"ngekos-server/utils"
)

var orderStatuses = []string{"pending", "confirmed", "completed", "cancelled"}

func GetUserOrders(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	page, limit, offset := utils.GetPagination(ctx)

	q := storage.DB.Model(&models.Order{}).Where("user_id = ?", claims.ID)

	if status := strings.ToLower(ctx.URLParam("status")); status != "" {
		if !slices.Contains(orderStatuses, status) {
			utils.CreateValidationError("status must be one of pending, confirmed, completed, cancelled", ctx)
			return
		}
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var orders []models.Order
	err := q.
		Preload("Kos").
		Preload("Room").
		Order("booking_date DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	data := make([]iris.Map, 0, len(orders))
	for i := range orders {
		data = append(data, formatOrderSummary(&orders[i]))
	}

	utils.SuccessPage(ctx, data, utils.NewPagination(page, limit, total), nil)
}

// GetOrder looks up by order number scoped to the caller, so another
// user's order number simply reads as not found.
func GetOrder(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	orderNumber := ctx.Params().Get("orderNumber")

	var order models.Order
	err := storage.DB.
		Preload("Kos.Owner").
		Preload("Kos.Facilities").
		Preload("Room").
		Preload("PriceBreakdown").
		Where("order_number = ? AND user_id = ?", orderNumber, claims.ID).
		First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateNotFound("Order not found", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Success(ctx, formatOrderDetail(&order))
}

func formatOrderSummary(order *models.Order) iris.Map {
	return iris.Map{
		"ID":                  order.ID,
		"orderNumber":         order.OrderNumber,
		"status":              order.Status,
		"statusText":          order.StatusText,
		"bookingDate":         order.BookingDate.Format(time.RFC3339),
		"checkIn":             order.CheckIn.Format("2006-01-02"),
		"checkOut":            order.CheckOut.Format("2006-01-02"),
		"duration":            order.Duration,
		"totalPrice":          order.TotalPrice,
		"totalPriceFormatted": utils.FormatRupiah(order.TotalPrice),
		"paymentStatus":       order.PaymentStatus,
		"kos": iris.Map{
			"ID":       order.Kos.ID,
			"name":     order.Kos.Name,
			"location": order.Kos.Location,
			"image":    order.Kos.Image,
			"type":     order.Kos.Type,
		},
		"room": iris.Map{
			"ID":    order.Room.ID,
			"name":  order.Room.Name,
			"price": order.Room.Price,
		},
	}
}

func formatOrderDetail(order *models.Order) iris.Map {
	detail := formatOrderSummary(order)

	detail["paymentMethod"] = order.PaymentMethod
	detail["transactionID"] = order.TransactionID
	detail["specialRequest"] = order.SpecialRequest
	detail["guestInfo"] = iris.Map{
		"fullName": order.GuestName,
		"email":    order.GuestEmail,
		"phone":    order.GuestPhone,
		"address":  order.GuestAddress,
		"idNumber": order.GuestIDNumber,
	}

	breakdown := make([]iris.Map, 0, len(order.PriceBreakdown))
	for _, item := range order.PriceBreakdown {
		breakdown = append(breakdown, iris.Map{
			"label":           item.Label,
			"amount":          item.Amount,
			"amountFormatted": utils.FormatRupiah(item.Amount),
			"type":            item.Type,
		})
	}
	detail["priceBreakdown"] = breakdown

	facilities := make([]iris.Map, 0, len(order.Kos.Facilities))
	for _, f := range order.Kos.Facilities {
		facilities = append(facilities, iris.Map{"ID": f.ID, "name": f.Name, "icon": f.Icon})
	}
	detail["kos"] = iris.Map{
		"ID":         order.Kos.ID,
		"name":       order.Kos.Name,
		"location":   order.Kos.Location,
		"address":    order.Kos.Address,
		"image":      order.Kos.Image,
		"type":       order.Kos.Type,
		"facilities": facilities,
		"owner": iris.Map{
			"name":  order.Kos.Owner.Name,
			"phone": order.Kos.Owner.Phone,
			"email": order.Kos.Owner.Email,
		},
	}

	return detail
}
