package utils

import (
	"math"

	"github.com/kataras/iris/v12"
)

// Pagination is the envelope pagination block: page/limit as requested,
// total rows and derived page count.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// GetPagination reads page/limit query params, clamped to page >= 1 and
// 1 <= limit <= 100, and returns the row offset for the store query.
func GetPagination(ctx iris.Context) (page, limit, offset int) {
	page = ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}
	limit = ctx.URLParamIntDefault("limit", 10)
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit, (page - 1) * limit
}

func Success(ctx iris.Context, data interface{}) {
	ctx.JSON(iris.Map{"success": true, "data": data})
}

func Created(ctx iris.Context, data interface{}) {
	ctx.StatusCode(iris.StatusCreated)
	Success(ctx, data)
}

// SuccessPage writes a paginated envelope. Extra meta (unreadCount,
// averageRating, ...) is merged into the pagination block.
func SuccessPage(ctx iris.Context, data interface{}, p Pagination, extra iris.Map) {
	pagination := iris.Map{
		"page":       p.Page,
		"limit":      p.Limit,
		"total":      p.Total,
		"totalPages": p.TotalPages,
	}
	for k, v := range extra {
		pagination[k] = v
	}
	ctx.JSON(iris.Map{"success": true, "data": data, "pagination": pagination})
}
