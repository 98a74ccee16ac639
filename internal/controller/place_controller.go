package controller

import (
	"townmate-be/internal/pkg/serverutils"
	"townmate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPlaceController interface {
	RegisterRoutes(r fiber.Router)
	ListPlaces(ctx *fiber.Ctx) error
	GetPlace(ctx *fiber.Ctx) error
}

type placeController struct {
	service service.IPlaceService
}

func NewPlaceController(service service.IPlaceService) IPlaceController {
	return &placeController{service: service}
}

func (c *placeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/places")
	h.Get("/", c.ListPlaces)
	h.Get("/:id", c.GetPlace)
}

func (c *placeController) ListPlaces(ctx *fiber.Ctx) error {
	category := ctx.Query("category", "")

	res, err := c.service.ListPlaces(ctx.UserContext(), category)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *placeController) GetPlace(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "place id is required"))
	}

	res, err := c.service.GetPlace(ctx.UserContext(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "place not found"))
	}
	return ctx.JSON(res)
}
