package routes

import (
	"strings"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"

	"ngekos-server/models"
	"ngekos-server/storage"
	"ngekos-server/utils"
)

var kosTypes = []string{"flats", "villas", "hotels"}

var kosSortColumns = map[string]string{
	"price":     "price",
	"rating":    "rating",
	"name":      "name",
	"createdAt": "created_at",
}

// kosFilters is the validated catalog query: every filter is typed
// before it is translated to a store query.
type kosFilters struct {
	City     string
	Type     string
	MinPrice *int
	MaxPrice *int
	Search   string
	SortCol  string
	SortDir  string
}

func parseKosFilters(ctx iris.Context) (kosFilters, string) {
	f := kosFilters{
		City:   ctx.URLParam("city"),
		Search: ctx.URLParam("search"),
	}

	if kosType := strings.ToLower(ctx.URLParam("type")); kosType != "" {
		if !slices.Contains(kosTypes, kosType) {
			return f, "type must be one of flats, villas, hotels"
		}
		f.Type = kosType
	}

	if minPrice, err := ctx.URLParamInt("minPrice"); err == nil {
		f.MinPrice = &minPrice
	}
	if maxPrice, err := ctx.URLParamInt("maxPrice"); err == nil {
		f.MaxPrice = &maxPrice
	}

	column, ok := kosSortColumns[ctx.URLParamDefault("sortBy", "createdAt")]
	if !ok {
		return f, "sortBy must be one of price, rating, name, createdAt"
	}
	f.SortCol = column
	f.SortDir = "DESC"
	if strings.EqualFold(ctx.URLParam("sortOrder"), "asc") {
		f.SortDir = "ASC"
	}

	return f, ""
}

func (f kosFilters) apply(q *gorm.DB) *gorm.DB {
	if f.City != "" {
		q = q.Joins("JOIN cities ON cities.id = kos_properties.city_id").
			Where("cities.name ILIKE ?", "%"+f.City+"%")
	}
	if f.Type != "" {
		q = q.Where("kos_properties.type = ?", f.Type)
	}
	if f.MinPrice != nil {
		q = q.Where("kos_properties.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("kos_properties.price <= ?", *f.MaxPrice)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(
			"kos_properties.name ILIKE ? OR kos_properties.location ILIKE ? OR kos_properties.description ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	return q
}

// ListKos serves the public catalog: active kos with filters, sorting
// and pagination.
func ListKos(ctx iris.Context) {
	page, limit, offset := utils.GetPagination(ctx)

	filters, problem := parseKosFilters(ctx)
	if problem != "" {
		utils.CreateValidationError(problem, ctx)
		return
	}

	q := filters.apply(storage.DB.Model(&models.KosProperty{}).Where("kos_properties.status = ?", "active"))

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var kos []models.KosProperty
	err := q.
		Preload("City").
		Preload("Owner").
		Preload("Facilities").
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("rooms.created_at ASC")
		}).
		Order("kos_properties." + filters.SortCol + " " + filters.SortDir).
		Offset(offset).Limit(limit).
		Find(&kos).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	counts, err := reviewCountsFor(kos)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	data := make([]iris.Map, 0, len(kos))
	for i := range kos {
		data = append(data, formatKosSummary(&kos[i], counts[kos[i].ID]))
	}

	utils.SuccessPage(ctx, data, utils.NewPagination(page, limit, total), nil)
}

func GetKos(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateNotFound("Kos not found", ctx)
		return
	}

	var kos models.KosProperty
	err = storage.DB.
		Preload("City").
		Preload("Owner").
		Preload("Facilities").
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("rooms.price ASC")
		}).
		Preload("Rules", func(db *gorm.DB) *gorm.DB {
			return db.Order("rules.created_at ASC")
		}).
		First(&kos, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateNotFound("Kos not found", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	var reviewCount int64
	if err := storage.DB.Model(&models.Review{}).Where("kos_id = ?", kos.ID).Count(&reviewCount).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Success(ctx, formatKosDetail(&kos, reviewCount))
}

// ListCities returns active cities alphabetically, each with its count
// of active kos.
func ListCities(ctx iris.Context) {
	var cities []models.City
	err := storage.DB.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&cities).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	type cityCount struct {
		CityID uint
		Count  int64
	}
	var rows []cityCount
	err = storage.DB.Model(&models.KosProperty{}).
		Select("city_id, COUNT(*) as count").
		Where("status = ?", "active").
		Group("city_id").
		Scan(&rows).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CityID] = row.Count
	}

	data := make([]iris.Map, 0, len(cities))
	for _, city := range cities {
		data = append(data, iris.Map{
			"ID":       city.ID,
			"name":     city.Name,
			"image":    city.Image,
			"kosCount": counts[city.ID],
		})
	}

	utils.Success(ctx, data)
}

// reviewCountsFor fetches review counts for a page of kos in one
// grouped query instead of one count per row.
func reviewCountsFor(kos []models.KosProperty) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(kos))
	if len(kos) == 0 {
		return counts, nil
	}

	ids := make([]uint, 0, len(kos))
	for i := range kos {
		ids = append(ids, kos[i].ID)
	}

	type reviewCount struct {
		KosID uint
		Count int64
	}
	var rows []reviewCount
	err := storage.DB.Model(&models.Review{}).
		Select("kos_id, COUNT(*) as count").
		Where("kos_id IN ?", ids).
		Group("kos_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.KosID] = row.Count
	}
	return counts, nil
}

func formatKosSummary(kos *models.KosProperty, reviewCount int64) iris.Map {
	facilities := make([]iris.Map, 0, len(kos.Facilities))
	for _, f := range kos.Facilities {
		facilities = append(facilities, iris.Map{"ID": f.ID, "name": f.Name, "icon": f.Icon})
	}

	summary := iris.Map{
		"ID":             kos.ID,
		"name":           kos.Name,
		"location":       kos.Location,
		"type":           kos.Type,
		"capacity":       kos.Capacity,
		"price":          kos.Price,
		"priceFormatted": utils.FormatRupiah(kos.Price),
		"rating":         kos.Rating,
		"reviewCount":    reviewCount,
		"image":          kos.Image,
		"city":           kos.City.Name,
		"facilities":     facilities,
		"owner": iris.Map{
			"name":  kos.Owner.Name,
			"phone": kos.Owner.Phone,
			"email": kos.Owner.Email,
		},
	}

	// Rooms are preloaded in creation order; the oldest one is the preview.
	if len(kos.Rooms) > 0 {
		room := kos.Rooms[0]
		summary["previewRoom"] = iris.Map{
			"ID":             room.ID,
			"name":           room.Name,
			"price":          room.Price,
			"priceFormatted": utils.FormatRupiah(room.Price),
			"available":      room.Available,
		}
	}

	return summary
}

func formatKosDetail(kos *models.KosProperty, reviewCount int64) iris.Map {
	detail := formatKosSummary(kos, reviewCount)
	detail["address"] = kos.Address
	detail["description"] = kos.Description
	detail["images"] = kos.Images

	rooms := make([]iris.Map, 0, len(kos.Rooms))
	for _, room := range kos.Rooms {
		rooms = append(rooms, iris.Map{
			"ID":             room.ID,
			"name":           room.Name,
			"image":          room.Image,
			"people":         room.People,
			"size":           room.Size,
			"price":          room.Price,
			"priceFormatted": utils.FormatRupiah(room.Price),
			"available":      room.Available,
		})
	}
	detail["rooms"] = rooms
	delete(detail, "previewRoom")

	rules := make([]string, 0, len(kos.Rules))
	for _, rule := range kos.Rules {
		rules = append(rules, rule.Rule)
	}
	detail["rules"] = rules

	return detail
}
