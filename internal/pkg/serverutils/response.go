package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the common JSON envelope for non-2xx replies and for
// endpoints that wrap their payload.
type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Code:    fiber.StatusOK,
		Message: "OK",
		Data:    data,
	}
}

func ErrorResponse(code int, message string) Response {
	return Response{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ErrorHandlerMiddleware recovers panics and normalizes fiber errors into
// the shared envelope so clients never see a bare 500 page.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				_ = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
			}
		}()

		err := ctx.Next()
		if err == nil {
			return nil
		}

		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
		}
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
