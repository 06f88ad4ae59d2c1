package contract

import (
	"context"

	"interview-platform-be/internal/entity"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*entity.DeliberationSettings, error)

	// SaveWithVersion writes the record iff the stored version still matches
	// the entity's. Returns apperr.ErrCommitConflict otherwise; callers run
	// a bounded read-retry loop.
	SaveWithVersion(ctx context.Context, settings *entity.DeliberationSettings) error

	// EnsureDefault creates the single settings row if it does not exist.
	EnsureDefault(ctx context.Context) error
}
