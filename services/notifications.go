package services

import (
	"fmt"
	"log"

	"ngekos-server/models"
	"ngekos-server/storage"
	"ngekos-server/utils"
)

// NotificationService writes in-app notification rows. Handlers fire
// its methods in goroutines so notification persistence never blocks
// the request path.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (s *NotificationService) Create(userID uint, notifType, title, message, icon string, relatedID uint) {
	notification := models.Notification{
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		Icon:      icon,
		RelatedID: relatedID,
	}

	if err := storage.DB.Create(&notification).Error; err != nil {
		log.Println("failed to create notification:", err)
	}
}

func (s *NotificationService) NotifyWelcome(userID uint, fullName string) {
	s.Create(userID, "system", "Welcome to Ngekos",
		fmt.Sprintf("Hi %s, your account is ready. Start exploring kos near you.", fullName),
		"user", 0)
}

func (s *NotificationService) NotifyBookingCreated(userID uint, kosName, orderNumber string, orderID uint, totalPrice int) {
	s.Create(userID, "booking", "Booking Confirmed",
		fmt.Sprintf("Your booking %s at %s has been created. Total %s.",
			orderNumber, kosName, utils.FormatRupiah(totalPrice)),
		"calendar", orderID)
}

func (s *NotificationService) NotifyReviewPosted(userID uint, kosName string, reviewID uint) {
	s.Create(userID, "review", "Review Published",
		fmt.Sprintf("Thanks for reviewing %s. Your rating helps other guests.", kosName),
		"star", reviewID)
}
