package routes

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ngekos-server/models"
	"ngekos-server/services"
	"ngekos-server/storage"
	"ngekos-server/utils"
)

func Register(ctx iris.Context) {
	var input RegisterUserInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var existing models.User
	res := storage.DB.Where("username = ?", input.Username).Limit(1).Find(&existing)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected > 0 {
		utils.CreateConflict("Username is already taken", ctx)
		return
	}

	res = storage.DB.Where("email = ?", input.Email).Limit(1).Find(&existing)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected > 0 {
		utils.CreateConflict("Email is already registered", ctx)
		return
	}

	hashedPassword, err := hashAndSaltPassword(input.Password)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     "user",
	}
	if err := storage.DB.Create(&newUser).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	go notificationService.NotifyWelcome(newUser.ID, newUser.FullName)

	token, err := utils.CreateToken(newUser.ID, newUser.Username, newUser.Email, newUser.Role)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Created(ctx, iris.Map{
		"user":  publicUser(newUser),
		"token": token,
	})
}

func Login(ctx iris.Context) {
	var input LoginUserInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	res := storage.DB.
		Where("username = ? OR email = ?", input.Identifier, input.Identifier).
		Limit(1).Find(&user)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateAuthenticationError("Invalid credentials", ctx)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		utils.CreateAuthenticationError("Invalid credentials", ctx)
		return
	}

	token, err := utils.CreateToken(user.ID, user.Username, user.Email, user.Role)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Success(ctx, iris.Map{
		"user":  publicUser(user),
		"token": token,
	})
}

// Me answers from the verified token alone, no store round-trip.
func Me(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	utils.Success(ctx, iris.Map{
		"ID":       claims.ID,
		"username": claims.Username,
		"email":    claims.Email,
		"role":     claims.Role,
	})
}

func UpdateProfile(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input UpdateProfileInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	if err := storage.DB.First(&user, claims.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateNotFound("User not found", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	if input.Email != "" && input.Email != user.Email {
		var other models.User
		res := storage.DB.Where("email = ? AND id <> ?", input.Email, user.ID).Limit(1).Find(&other)
		if res.Error != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if res.RowsAffected > 0 {
			utils.CreateConflict("Email is already registered", ctx)
			return
		}
		user.Email = input.Email
	}

	// Optional fields are written as sent: an empty value clears them.
	user.FullName = input.FullName
	user.Phone = input.Phone
	user.Address = input.Address
	user.IDNumber = input.IDNumber
	user.ProfileImage = input.ProfileImage

	if err := storage.DB.Save(&user).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Success(ctx, publicUser(user))
}

// Logout blocklists the presented token so it cannot be replayed.
func Logout(ctx iris.Context) {
	token := jwt.GetVerifiedToken(ctx)
	if token == nil {
		utils.CreateAuthenticationError("Missing token", ctx)
		return
	}

	if err := utils.RevokeToken(string(token.Token)); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Success(ctx, iris.Map{"message": "Logged out"})
}

func hashAndSaltPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func publicUser(user models.User) iris.Map {
	return iris.Map{
		"ID":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"fullName":     user.FullName,
		"phone":        user.Phone,
		"address":      user.Address,
		"idNumber":     user.IDNumber,
		"profileImage": user.ProfileImage,
		"role":         user.Role,
	}
}

var notificationService = services.NewNotificationService()

type RegisterUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=256"`
	FullName string `json:"fullName" validate:"required,max=256"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
}

type LoginUserInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	Email        string `json:"email" validate:"omitempty,email"`
	FullName     string `json:"fullName" validate:"required,max=256"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
	Address      string `json:"address" validate:"omitempty,max=512"`
	IDNumber     string `json:"idNumber" validate:"omitempty,max=64"`
	ProfileImage string `json:"profileImage" validate:"omitempty,max=512"`
}
