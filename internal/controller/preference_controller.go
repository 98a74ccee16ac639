package controller

import (
	"townmate-be/internal/dto"
	"townmate-be/internal/pkg/serverutils"
	"townmate-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IPreferenceController interface {
	RegisterRoutes(r fiber.Router)
	GetPreferences(ctx *fiber.Ctx) error
	UpdatePreferences(ctx *fiber.Ctx) error
}

type preferenceController struct {
	service  service.IPreferenceService
	validate *validator.Validate
}

func NewPreferenceController(service service.IPreferenceService) IPreferenceController {
	return &preferenceController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *preferenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/preferences")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/", c.GetPreferences)
	h.Put("/", c.UpdatePreferences)
}

func (c *preferenceController) GetPreferences(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	res, err := c.service.GetPreferences(ctx.UserContext(), userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *preferenceController) UpdatePreferences(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	var req dto.UpdatePreferencesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpdatePreferences(ctx.UserContext(), userID, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(res)
}
