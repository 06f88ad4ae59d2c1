package serverutils

import (
	"errors"

	"interview-platform-be/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{Message: message, Data: data}
}

// ValidateRequest runs struct-tag validation on a parsed request body.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// ErrorHandlerMiddleware maps domain errors onto HTTP statuses in one place
// so controllers can just return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if gf, ok := apperr.AsGateFailure(err); ok {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message":    "finalization preconditions unmet",
				"candidates": gf.CandidateIDs,
			})
		}

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, apperr.ErrRoomNotFound),
			errors.Is(err, apperr.ErrCandidateNotFound),
			errors.Is(err, apperr.ErrSettingsNotFound),
			errors.Is(err, apperr.ErrLevelNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, apperr.ErrRoomClosed),
			errors.Is(err, apperr.ErrAlreadyFinalized),
			errors.Is(err, apperr.ErrFinalizeInProgress),
			errors.Is(err, apperr.ErrCommitConflict):
			status = fiber.StatusConflict
		case errors.Is(err, apperr.ErrDeliberationClosed),
			errors.Is(err, apperr.ErrForbidden):
			status = fiber.StatusForbidden
		case errors.Is(err, apperr.ErrUnauthorized):
			status = fiber.StatusUnauthorized
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}

		return ctx.Status(status).JSON(fiber.Map{"message": err.Error()})
	}
}
