package contract

import (
	"context"

	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/repository/specification"
)

type InterviewRepository interface {
	Create(ctx context.Context, interview *entity.Interview) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interview, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interview, error)

	// SetPhase transitions the lifecycle column only. Returns the number of
	// rows changed so callers can detect lost races on the terminal
	// transition.
	SetPhase(ctx context.Context, id, fromPhase, toPhase string) (int64, error)

	// SetNavigationKey persists the interviewer's focused section.
	// Last-write-wins by design.
	SetNavigationKey(ctx context.Context, id, key string) error

	// SaveSectionNotes upserts one section's notes inside the jsonb column
	// without rewriting the rest of the record.
	SaveSectionNotes(ctx context.Context, id, sectionKey, notes string) error

	// Close stamps the terminal phase with general comments. Rows already
	// closed are untouched (affected count 0).
	Close(ctx context.Context, id, generalComments string) (int64, error)
}
