package implementation

import (
	"context"
	"errors"

	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/mapper"
	"interview-platform-be/internal/model"
	"interview-platform-be/internal/repository/contract"
	"interview-platform-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LevelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LevelMapper
}

func NewLevelRepository(db *gorm.DB) contract.LevelRepository {
	return &LevelRepositoryImpl{
		db:     db,
		mapper: mapper.NewLevelMapper(),
	}
}

func (r *LevelRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LevelRepositoryImpl) Create(ctx context.Context, level *entity.Level) error {
	m := r.mapper.ToModel(level)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*level = *r.mapper.ToEntity(m)
	return nil
}

func (r *LevelRepositoryImpl) Update(ctx context.Context, level *entity.Level) error {
	m := r.mapper.ToModel(level)
	return r.db.WithContext(ctx).
		Model(&model.Level{}).
		Where("id = ?", m.Id).
		Updates(map[string]interface{}{
			"name":       m.Name,
			"overview":   m.Overview,
			"sort_order": m.SortOrder,
		}).Error
}

func (r *LevelRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Level{}, id).Error
}

func (r *LevelRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Level, error) {
	var m model.Level
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LevelRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.Level, error) {
	return r.FindOne(ctx, specification.Filter("name", name))
}

func (r *LevelRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Level, error) {
	var models []*model.Level
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Order("sort_order ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LevelRepositoryImpl) AddQuestion(ctx context.Context, question *entity.Question) error {
	m := r.mapper.QuestionToModel(question)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*question = *r.mapper.QuestionToEntity(m)
	return nil
}

func (r *LevelRepositoryImpl) UpdateQuestion(ctx context.Context, question *entity.Question) error {
	m := r.mapper.QuestionToModel(question)
	return r.db.WithContext(ctx).
		Model(&model.Question{}).
		Where("id = ?", m.Id).
		Updates(map[string]interface{}{
			"title":       m.Title,
			"description": m.Description,
			"answer":      m.Answer,
			"image_url":   m.ImageURL,
			"sort_order":  m.SortOrder,
		}).Error
}

func (r *LevelRepositoryImpl) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Question{}, id).Error
}
