package controller

import (
	"townmate-be/internal/dto"
	"townmate-be/internal/pkg/serverutils"
	"townmate-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILocationController interface {
	RegisterRoutes(r fiber.Router)
	GetSavedLocations(ctx *fiber.Ctx) error
	CreateSavedLocation(ctx *fiber.Ctx) error
	DeleteSavedLocation(ctx *fiber.Ctx) error
}

type locationController struct {
	service  service.ILocationService
	validate *validator.Validate
}

func NewLocationController(service service.ILocationService) ILocationController {
	return &locationController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *locationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/locations")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/", c.GetSavedLocations)
	h.Post("/", c.CreateSavedLocation)
	h.Delete("/:id", c.DeleteSavedLocation)
}

func (c *locationController) GetSavedLocations(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	res, err := c.service.GetSavedLocations(ctx.UserContext(), userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *locationController) CreateSavedLocation(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	var req dto.CreateSavedLocationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateSavedLocation(ctx.UserContext(), userID, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *locationController) DeleteSavedLocation(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid location id"))
	}

	if err := c.service.DeleteSavedLocation(ctx.UserContext(), userID, id); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(fiber.Map{"success": true})
}
