package routes

import (
	"strings"
	"unicode/utf8"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"

	"ngekos-server/models"
	"ngekos-server/storage"
	"ngekos-server/utils"
)

var badWords = []string{"anjing", "bangsat", "kontol", "memek", "fuck", "shit"}

func ListReviews(ctx iris.Context) {
	kosID, err := ctx.URLParamInt("kosId")
	if err != nil || kosID < 1 {
		utils.CreateValidationError("kosId query parameter is required", ctx)
		return
	}

	page, limit, offset := utils.GetPagination(ctx)

	q := storage.DB.Model(&models.Review{}).Where("kos_id = ?", kosID)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var averageRating float64
	err = storage.DB.Model(&models.Review{}).
		Where("kos_id = ?", kosID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&averageRating).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var reviews []models.Review
	err = q.
		Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reviews).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	data := make([]iris.Map, 0, len(reviews))
	for _, review := range reviews {
		data = append(data, iris.Map{
			"ID":      review.ID,
			"rating":  review.Rating,
			"comment": review.Comment,
			"date":    review.CreatedAt,
			"user": iris.Map{
				"fullName":     review.User.FullName,
				"profileImage": review.User.ProfileImage,
			},
		})
	}

	utils.SuccessPage(ctx, data, utils.NewPagination(page, limit, total), iris.Map{
		"averageRating": averageRating,
		"totalCount":    total,
	})
}

// CreateReview accepts a rating for a kos the caller actually stayed
// at: the most recent completed order is bound to the review, and its
// unique OrderID keeps it to one review per stay.
func CreateReview(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateReviewInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	comment := strings.TrimSpace(input.Comment)
	if comment != "" {
		if utf8.RuneCountInString(comment) < 10 {
			utils.CreateValidationError("comment must be at least 10 characters", ctx)
			return
		}
		if containsProfanity(comment) {
			utils.CreateValidationError("comment contains inappropriate language", ctx)
			return
		}
	}

	var order models.Order
	res := storage.DB.
		Preload("Kos").
		Where("user_id = ? AND kos_id = ? AND status = ?", claims.ID, input.KosID, "completed").
		Order("booking_date DESC").
		Limit(1).Find(&order)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateForbidden("You can only review kos you have stayed at", ctx)
		return
	}

	var existing models.Review
	res = storage.DB.Where("order_id = ?", order.ID).Limit(1).Find(&existing)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected > 0 {
		utils.CreateConflict("You have already reviewed this stay", ctx)
		return
	}

	review := models.Review{
		UserID:  claims.ID,
		KosID:   input.KosID,
		OrderID: order.ID,
		Rating:  input.Rating,
		Comment: comment,
	}
	if err := storage.DB.Create(&review).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if err := recomputeKosRating(input.KosID); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	go notificationService.NotifyReviewPosted(claims.ID, order.Kos.Name, review.ID)

	utils.Created(ctx, iris.Map{
		"ID":      review.ID,
		"kosID":   review.KosID,
		"orderID": review.OrderID,
		"rating":  review.Rating,
		"comment": review.Comment,
		"date":    review.CreatedAt,
	})
}

func containsProfanity(comment string) bool {
	lowered := strings.ToLower(comment)
	for _, word := range badWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

func recomputeKosRating(kosID uint) error {
	var avg float64
	err := storage.DB.Model(&models.Review{}).
		Where("kos_id = ?", kosID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return err
	}

	return storage.DB.Model(&models.KosProperty{}).
		Where("id = ?", kosID).
		Update("rating", avg).Error
}

type CreateReviewInput struct {
	KosID   uint   `json:"kosId" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=2048"`
}
