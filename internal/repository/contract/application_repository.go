package contract

import (
	"context"

	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.Application) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpsertVote writes votes[voterId] = decision as an independent-field
	// jsonb update. Concurrent voters touch disjoint keys, so no vote is
	// ever lost to a read-modify-write race.
	UpsertVote(ctx context.Context, id uuid.UUID, voterId string, decision bool) error

	// SetFeedback partially updates the feedback column.
	SetFeedback(ctx context.Context, id uuid.UUID, feedback string) error

	// FindAllForUpdate loads candidates with row locks. Only meaningful
	// inside a unit-of-work transaction; the finalization pass uses it to
	// make gate-check-then-commit atomic.
	FindAllForUpdate(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error)

	// StageOutcome sets the committed outcome columns for one candidate.
	StageOutcome(ctx context.Context, id uuid.UUID, accepted bool) error

	// SaveWithVersion replaces the whole row iff the stored version still
	// matches. Returns apperr.ErrCommitConflict on a mismatch.
	SaveWithVersion(ctx context.Context, application *entity.Application) error
}
