package routes

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"

	"ngekos-server/models"
	"ngekos-server/storage"
	"ngekos-server/utils"
)

func GetUserFavorites(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	page, limit, offset := utils.GetPagination(ctx)

	q := storage.DB.Model(&models.Favorite{}).Where("user_id = ?", claims.ID)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var favorites []models.Favorite
	err := q.
		Preload("Kos.City").
		Preload("Kos.Owner").
		Preload("Kos.Facilities").
		Preload("Kos.Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("rooms.created_at ASC")
		}).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&favorites).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	kosList := make([]models.KosProperty, 0, len(favorites))
	for _, fav := range favorites {
		kosList = append(kosList, fav.Kos)
	}
	counts, err := reviewCountsFor(kosList)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	data := make([]iris.Map, 0, len(favorites))
	for i := range favorites {
		data = append(data, iris.Map{
			"ID":      favorites[i].ID,
			"addedAt": favorites[i].CreatedAt,
			"kos":     formatKosSummary(&favorites[i].Kos, counts[favorites[i].KosID]),
		})
	}

	utils.SuccessPage(ctx, data, utils.NewPagination(page, limit, total), nil)
}

func AddFavorite(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input AddFavoriteInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var kos models.KosProperty
	err = storage.DB.First(&kos, input.KosID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateNotFound("Kos not found", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	var existing models.Favorite
	res := storage.DB.
		Where("user_id = ? AND kos_id = ?", claims.ID, kos.ID).
		Limit(1).Find(&existing)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected > 0 {
		utils.CreateConflict("Kos is already in favorites", ctx)
		return
	}

	favorite := models.Favorite{UserID: claims.ID, KosID: kos.ID}
	if err := storage.DB.Create(&favorite).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Created(ctx, iris.Map{
		"ID":      favorite.ID,
		"kosID":   favorite.KosID,
		"addedAt": favorite.CreatedAt,
	})
}

func RemoveFavorite(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	kosID, err := ctx.URLParamInt("kosId")
	if err != nil || kosID < 1 {
		utils.CreateValidationError("kosId query parameter is required", ctx)
		return
	}

	res := storage.DB.
		Where("user_id = ? AND kos_id = ?", claims.ID, kosID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound("Favorite not found", ctx)
		return
	}

	utils.Success(ctx, iris.Map{"message": "Favorite removed"})
}

type AddFavoriteInput struct {
	KosID uint `json:"kosId" validate:"required"`
}
