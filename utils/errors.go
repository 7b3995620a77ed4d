package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// Error codes surfaced in the response envelope.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInternal       = "INTERNAL_ERROR"
)

func CreateError(status int, code, message string, ctx iris.Context) {
	ctx.StopWithJSON(status, iris.Map{
		"success": false,
		"error":   iris.Map{"code": code, "message": message},
	})
}

func CreateErrorWithDetails(status int, code, message string, details interface{}, ctx iris.Context) {
	ctx.StopWithJSON(status, iris.Map{
		"success": false,
		"error":   iris.Map{"code": code, "message": message, "details": details},
	})
}

func CreateValidationError(message string, ctx iris.Context) {
	CreateError(iris.StatusBadRequest, CodeValidation, message, ctx)
}

func CreateAuthenticationError(message string, ctx iris.Context) {
	CreateError(iris.StatusUnauthorized, CodeAuthentication, message, ctx)
}

func CreateForbidden(message string, ctx iris.Context) {
	CreateError(iris.StatusForbidden, CodeForbidden, message, ctx)
}

func CreateNotFound(message string, ctx iris.Context) {
	CreateError(iris.StatusNotFound, CodeNotFound, message, ctx)
}

func CreateConflict(message string, ctx iris.Context) {
	CreateError(iris.StatusConflict, CodeConflict, message, ctx)
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, CodeInternal, "Internal server error", ctx)
}

// HandleValidationErrors converts ReadJSON failures into the envelope.
// validator.ValidationErrors carry per-field details.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := make([]iris.Map, 0, len(errs))
		for _, e := range errs {
			details = append(details, iris.Map{"field": e.Field(), "rule": e.Tag()})
		}
		CreateErrorWithDetails(iris.StatusBadRequest, CodeValidation, "Invalid request payload", details, ctx)
		return
	}
	CreateValidationError("Invalid request payload", ctx)
}
