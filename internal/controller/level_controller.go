package controller

import (
	"interview-platform-be/internal/apperr"
	"interview-platform-be/internal/dto"
	"interview-platform-be/internal/pkg/serverutils"
	"interview-platform-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILevelController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	AddQuestion(ctx *fiber.Ctx) error
	UpdateQuestion(ctx *fiber.Ctx) error
	DeleteQuestion(ctx *fiber.Ctx) error
}

type levelController struct {
	levelService service.ILevelService
}

func NewLevelController(levelService service.ILevelService) ILevelController {
	return &levelController{
		levelService: levelService,
	}
}

func (c *levelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/level/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/questions", c.AddQuestion)
	h.Put(":id/questions/:questionId", c.UpdateQuestion)
	h.Delete(":id/questions/:questionId", c.DeleteQuestion)
}

func (c *levelController) List(ctx *fiber.Ctx) error {
	res, err := c.levelService.ListLevels(ctx.Context(), serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list levels", res))
}

func (c *levelController) Create(ctx *fiber.Ctx) error {
	var req dto.LevelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.levelService.CreateLevel(ctx.Context(), &req, serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create level", res))
}

func (c *levelController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.ErrLevelNotFound
	}

	var req dto.LevelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.levelService.UpdateLevel(ctx.Context(), id, &req, serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update level", res))
}

func (c *levelController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.ErrLevelNotFound
	}

	if err := c.levelService.DeleteLevel(ctx.Context(), id, serverutils.PrincipalFromCtx(ctx)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete level", nil))
}

func (c *levelController) AddQuestion(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.ErrLevelNotFound
	}

	var req dto.QuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.levelService.AddQuestion(ctx.Context(), id, &req, serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add question", res))
}

func (c *levelController) UpdateQuestion(ctx *fiber.Ctx) error {
	levelId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.ErrLevelNotFound
	}
	questionId, err := uuid.Parse(ctx.Params("questionId"))
	if err != nil {
		return apperr.ErrLevelNotFound
	}

	var req dto.QuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.levelService.UpdateQuestion(ctx.Context(), levelId, questionId, &req, serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update question", res))
}

func (c *levelController) DeleteQuestion(ctx *fiber.Ctx) error {
	questionId, err := uuid.Parse(ctx.Params("questionId"))
	if err != nil {
		return apperr.ErrLevelNotFound
	}

	if err := c.levelService.DeleteQuestion(ctx.Context(), questionId, serverutils.PrincipalFromCtx(ctx)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete question", nil))
}
