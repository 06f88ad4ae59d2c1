package contract

import (
	"context"

	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LevelRepository interface {
	Create(ctx context.Context, level *entity.Level) error
	Update(ctx context.Context, level *entity.Level) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Level, error)
	FindByName(ctx context.Context, name string) (*entity.Level, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Level, error)

	AddQuestion(ctx context.Context, question *entity.Question) error
	UpdateQuestion(ctx context.Context, question *entity.Question) error
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
}
