package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"ngekos-server/routes"
	"ngekos-server/storage"
	"ngekos-server/utils"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})
	protected := func(handlers ...iris.Handler) []iris.Handler {
		return append([]iris.Handler{accessTokenVerifierMiddleware, utils.TokenNotRevokedMiddleware}, handlers...)
	}

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "public/uploads"
	}
	app.HandleDir("/uploads", iris.Dir(uploadDir))

	auth := app.Party("/api/auth")
	{
		auth.Post("/register", routes.Register)
		auth.Post("/login", routes.Login)
		auth.Get("/me", protected(routes.Me)...)
		auth.Put("/profile", protected(routes.UpdateProfile)...)
		// No revocation check here: logging out twice is a no-op, not a 401.
		auth.Post("/logout", accessTokenVerifierMiddleware, routes.Logout)
	}

	kos := app.Party("/api/kos")
	{
		kos.Get("/", routes.ListKos)
		kos.Get("/{id:uint}", routes.GetKos)
	}

	app.Get("/api/cities", routes.ListCities)

	bookings := app.Party("/api/bookings")
	{
		bookings.Post("/", protected(routes.CreateBooking)...)
	}

	orders := app.Party("/api/orders")
	{
		orders.Get("/", protected(routes.GetUserOrders)...)
		orders.Get("/{orderNumber:string}", protected(routes.GetOrder)...)
	}

	favorites := app.Party("/api/favorites")
	{
		favorites.Get("/", protected(routes.GetUserFavorites)...)
		favorites.Post("/", protected(routes.AddFavorite)...)
		favorites.Delete("/", protected(routes.RemoveFavorite)...)
	}

	reviews := app.Party("/api/reviews")
	{
		reviews.Get("/", routes.ListReviews)
		reviews.Post("/", protected(routes.CreateReview)...)
	}

	notifications := app.Party("/api/notifications")
	{
		notifications.Get("/", protected(routes.GetUserNotifications)...)
		notifications.Put("/", protected(routes.UpdateNotifications)...)
	}

	app.Post("/api/upload", protected(routes.UploadImage)...)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Println("starting server on port " + port)
	app.Listen(fmt.Sprintf(":%s", port))
}
