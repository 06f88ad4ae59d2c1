package controller

import (
	"interview-platform-be/internal/dto"
	"interview-platform-be/internal/pkg/serverutils"
	"interview-platform-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Resume(ctx *fiber.Ctx) error
	SaveResume(ctx *fiber.Ctx) error
}

// sessionController exposes the resume store. Clients identify themselves by
// a stable client id (authenticated user id, or a generated guest id) so a
// refreshed tab can land back where it was.
type sessionController struct {
	roomService service.IRoomService
}

func NewSessionController(roomService service.IRoomService) ISessionController {
	return &sessionController{
		roomService: roomService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Get("resume", serverutils.OptionalJwtMiddleware, c.Resume)
	h.Put("resume", serverutils.OptionalJwtMiddleware, c.SaveResume)
}

// clientID resolves the caller's stable client id: the authenticated user id
// when present, otherwise the X-Client-Id header a guest tab generates.
func clientID(ctx *fiber.Ctx) string {
	if p := serverutils.PrincipalFromCtx(ctx); p != nil {
		return p.UserID
	}
	return ctx.Get("X-Client-Id")
}

func (c *sessionController) Resume(ctx *fiber.Ctx) error {
	id := clientID(ctx)
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing X-Client-Id header")
	}

	res, err := c.roomService.Resume(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resume session", res))
}

func (c *sessionController) SaveResume(ctx *fiber.Ctx) error {
	id := clientID(ctx)
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing X-Client-Id header")
	}

	var req dto.SaveResumeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.roomService.SaveResume(ctx.Context(), id, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save resume state", nil))
}
