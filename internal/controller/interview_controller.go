package controller

import (
	"interview-platform-be/internal/dto"
	"interview-platform-be/internal/pkg/serverutils"
	"interview-platform-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	SaveNotes(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
}

type interviewController struct {
	roomService service.IRoomService
}

func NewInterviewController(roomService service.IRoomService) IInterviewController {
	return &interviewController{
		roomService: roomService,
	}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview/v1")
	// Show is open to guests: interviewees join with just the room link.
	h.Get(":id", serverutils.OptionalJwtMiddleware, c.Show)
	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Put(":id/notes", serverutils.JwtMiddleware, c.SaveNotes)
	h.Put(":id/close", serverutils.JwtMiddleware, c.Close)
}

func (c *interviewController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateInterviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.roomService.CreateInterview(ctx.Context(), &req, serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create interview room", res))
}

func (c *interviewController) Show(ctx *fiber.Ctx) error {
	res, err := c.roomService.GetRoom(ctx.Context(), ctx.Params("id"), serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show interview room", res))
}

func (c *interviewController) SaveNotes(ctx *fiber.Ctx) error {
	var req dto.SaveNotesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	err := c.roomService.SaveNotes(ctx.Context(), ctx.Params("id"), &req, serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save notes", nil))
}

func (c *interviewController) Close(ctx *fiber.Ctx) error {
	var req dto.CloseRoomRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	err := c.roomService.CloseRoom(ctx.Context(), ctx.Params("id"), &req, serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success close interview room", nil))
}
