package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type ErrorDetail struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) ErrorDetail {
	return ErrorDetail{
		Success: false,
		Code:    code,
		Message: message,
	}
}

var validate = validator.New()

// ValidateRequest validates a DTO against its struct tags.
// Returns a 400 fiber error so the error handler can render it.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// ErrorHandlerMiddleware converts errors returned by handlers into a
// consistent JSON error body.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := errorParts(err)
		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}

// BridgeError is the flat error body of the chat server. The storefront proxy
// reads {"error": ...} on non-200, so the envelope above must not be used there.
type BridgeError struct {
	Error string `json:"error"`
}

// BridgeErrorMiddleware converts errors returned by chat handlers into the
// flat bridge error body.
func BridgeErrorMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := errorParts(err)
		return ctx.Status(code).JSON(BridgeError{Error: message})
	}
}

func errorParts(err error) (int, string) {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	return code, message
}
