package controller

import (
	"interview-platform-be/internal/apperr"
	"interview-platform-be/internal/dto"
	"interview-platform-be/internal/pkg/serverutils"
	"interview-platform-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDeliberationController interface {
	RegisterRoutes(r fiber.Router)
	ListCandidates(ctx *fiber.Ctx) error
	ShowCandidate(ctx *fiber.Ctx) error
	CastVote(ctx *fiber.Ctx) error
	SaveFeedback(ctx *fiber.Ctx) error
	ShowSettings(ctx *fiber.Ctx) error
	UpdateSettings(ctx *fiber.Ctx) error
	Finalize(ctx *fiber.Ctx) error
}

type deliberationController struct {
	deliberationService service.IDeliberationService
}

func NewDeliberationController(deliberationService service.IDeliberationService) IDeliberationController {
	return &deliberationController{
		deliberationService: deliberationService,
	}
}

func (c *deliberationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/deliberation/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("candidates", c.ListCandidates)
	h.Get("candidates/:id", c.ShowCandidate)
	h.Post("candidates/:id/vote", c.CastVote)
	h.Put("candidates/:id/feedback", c.SaveFeedback)
	h.Get("settings", c.ShowSettings)
	h.Put("settings", c.UpdateSettings)
	h.Post("finalize", c.Finalize)
}

func (c *deliberationController) ListCandidates(ctx *fiber.Ctx) error {
	res, err := c.deliberationService.ListCandidates(ctx.Context(), serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list candidates", res))
}

func (c *deliberationController) ShowCandidate(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.ErrCandidateNotFound
	}

	res, err := c.deliberationService.GetCandidate(ctx.Context(), id, serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show candidate", res))
}

func (c *deliberationController) CastVote(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.ErrCandidateNotFound
	}

	var req dto.CastVoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.deliberationService.CastVote(ctx.Context(), id, &req, serverutils.PrincipalFromCtx(ctx)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cast vote", nil))
}

func (c *deliberationController) SaveFeedback(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.ErrCandidateNotFound
	}

	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.deliberationService.SaveFeedback(ctx.Context(), id, &req, serverutils.PrincipalFromCtx(ctx)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save feedback", nil))
}

func (c *deliberationController) ShowSettings(ctx *fiber.Ctx) error {
	res, err := c.deliberationService.GetSettings(ctx.Context(), serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show settings", res))
}

func (c *deliberationController) UpdateSettings(ctx *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.deliberationService.UpdateSettings(ctx.Context(), &req, serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update settings", res))
}

func (c *deliberationController) Finalize(ctx *fiber.Ctx) error {
	res, err := c.deliberationService.Finalize(ctx.Context(), serverutils.PrincipalFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success finalize deliberation", res))
}
