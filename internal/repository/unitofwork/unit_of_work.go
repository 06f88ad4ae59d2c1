package unitofwork

import (
	"context"

	"interview-platform-be/internal/repository/contract"
)

// UnitOfWork scopes repositories to one logical operation. Begin/Commit wrap
// them in a single database transaction; the finalization pass relies on
// this for its all-or-nothing batch commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	InterviewRepository() contract.InterviewRepository
	ApplicationRepository() contract.ApplicationRepository
	SettingsRepository() contract.SettingsRepository
	UserRepository() contract.UserRepository
	LevelRepository() contract.LevelRepository
}
