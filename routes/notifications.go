package routes

import (
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"

	"ngekos-server/models"
	"ngekos-server/storage"
	"ngekos-server/utils"
)

func GetUserNotifications(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	page, limit, offset := utils.GetPagination(ctx)

	q := storage.DB.Model(&models.Notification{}).Where("user_id = ?", claims.ID)

	if notifType := ctx.URLParam("type"); notifType != "" {
		q = q.Where("type = ?", notifType)
	}
	if read := ctx.URLParam("read"); read != "" {
		if read != "true" && read != "false" {
			utils.CreateValidationError("read must be true or false", ctx)
			return
		}
		q = q.Where("is_read = ?", read == "true")
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var unreadCount int64
	err := storage.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", claims.ID, false).
		Count(&unreadCount).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var notifications []models.Notification
	err = q.
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	now := time.Now()
	data := make([]iris.Map, 0, len(notifications))
	for _, n := range notifications {
		data = append(data, iris.Map{
			"ID":        n.ID,
			"type":      n.Type,
			"title":     n.Title,
			"message":   n.Message,
			"read":      n.IsRead,
			"icon":      n.Icon,
			"relatedID": n.RelatedID,
			"timeAgo":   utils.TimeAgo(n.CreatedAt, now),
			"createdAt": n.CreatedAt,
		})
	}

	utils.SuccessPage(ctx, data, utils.NewPagination(page, limit, total), iris.Map{
		"unreadCount": unreadCount,
	})
}

// UpdateNotifications handles bulk actions. Only mark-all-read for now.
func UpdateNotifications(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input UpdateNotificationsInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Action != "mark-all-read" {
		utils.CreateValidationError("action must be mark-all-read", ctx)
		return
	}

	res := storage.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", claims.ID, false).
		Update("is_read", true)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Success(ctx, iris.Map{"updated": res.RowsAffected})
}

type UpdateNotificationsInput struct {
	Action string `json:"action" validate:"required"`
}
