package controller

import (
	"townmate-be/internal/dto"
	"townmate-be/internal/pkg/serverutils"
	"townmate-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
}

type assistantController struct {
	service  service.IAssistantService
	validate *validator.Validate
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/sessions", c.CreateSession)
	h.Get("/sessions", c.GetSessions)
	h.Get("/sessions/:id/history", c.GetHistory)
	h.Delete("/sessions/:id", c.DeleteSession)
	h.Post("/chat", c.SendChat)
}

func (c *assistantController) CreateSession(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	res, err := c.service.CreateSession(ctx.UserContext(), userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *assistantController) GetSessions(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	res, err := c.service.GetSessions(ctx.UserContext(), userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *assistantController) GetHistory(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	sessionID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid session id"))
	}

	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetHistory(ctx.UserContext(), userID, sessionID, limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *assistantController) DeleteSession(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	sessionID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid session id"))
	}

	if err := c.service.DeleteSession(ctx.UserContext(), userID, sessionID); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (c *assistantController) SendChat(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SendChat(ctx.UserContext(), userID, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

// currentUserID reads the authenticated user id set by the JWT middleware.
func currentUserID(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals("user_id").(string)
	return uuid.Parse(raw)
}
