package controller

import (
	"townmate-be/internal/pkg/serverutils"
	"townmate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReservationController interface {
	RegisterRoutes(r fiber.Router)
	GetStatus(ctx *fiber.Ctx) error
	GetRecent(ctx *fiber.Ctx) error
}

type reservationController struct {
	service *service.ReservationStatusService
}

func NewReservationController(service *service.ReservationStatusService) IReservationController {
	return &reservationController{service: service}
}

func (c *reservationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reservations")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/status/:jobId", c.GetStatus)
	h.Get("/recent", c.GetRecent)
}

func (c *reservationController) GetStatus(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	jobID := ctx.Params("jobId")
	if jobID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "job id is required"))
	}

	res, err := c.service.GetStatus(ctx.UserContext(), userID, jobID)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *reservationController) GetRecent(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	limit := ctx.QueryInt("limit", 10)

	res, err := c.service.GetRecent(ctx.UserContext(), userID, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}
