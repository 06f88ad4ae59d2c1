package implementation

import (
	"context"
	"errors"

	"interview-platform-be/internal/apperr"
	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/model"
	"interview-platform-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The settings table holds exactly one row.
const settingsRowId = 1

type SettingsRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) contract.SettingsRepository {
	return &SettingsRepositoryImpl{db: db}
}

func (r *SettingsRepositoryImpl) Get(ctx context.Context) (*entity.DeliberationSettings, error) {
	var m model.DeliberationSettings
	if err := r.db.WithContext(ctx).First(&m, settingsRowId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrSettingsNotFound
		}
		return nil, err
	}
	return &entity.DeliberationSettings{Open: m.Open, Version: m.Version}, nil
}

func (r *SettingsRepositoryImpl) SaveWithVersion(ctx context.Context, settings *entity.DeliberationSettings) error {
	res := r.db.WithContext(ctx).
		Model(&model.DeliberationSettings{}).
		Where("id = ? AND version = ?", settingsRowId, settings.Version).
		Updates(map[string]interface{}{
			"open":    settings.Open,
			"version": settings.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrCommitConflict
	}
	settings.Version++
	return nil
}

func (r *SettingsRepositoryImpl) EnsureDefault(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.DeliberationSettings{Id: settingsRowId, Open: false, Version: 1}).Error
}
