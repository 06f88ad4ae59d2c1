package implementation

import (
	"context"
	"errors"

	"interview-platform-be/internal/apperr"
	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/mapper"
	"interview-platform-be/internal/model"
	"interview-platform-be/internal/repository/contract"
	"interview-platform-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ApplicationMapper
}

func NewApplicationRepository(db *gorm.DB) contract.ApplicationRepository {
	return &ApplicationRepositoryImpl{
		db:     db,
		mapper: mapper.NewApplicationMapper(),
	}
}

func (r *ApplicationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, application *entity.Application) error {
	m := r.mapper.ToModel(application)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*application = *r.mapper.ToEntity(m)
	return nil
}

func (r *ApplicationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
	var m model.Application
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ApplicationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	var models []*model.Application
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ApplicationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Application{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ApplicationRepositoryImpl) UpsertVote(ctx context.Context, id uuid.UUID, voterId string, decision bool) error {
	// Independent-field write: only votes[voterId] changes, so concurrent
	// voters on the same candidate commute. Finalized rows are immutable.
	res := r.applySpecifications(
		r.db.WithContext(ctx).
			Model(&model.Application{}).
			Where("id = ?", id),
		specification.NotFinalized{},
	).
		Update("votes", gorm.Expr(
			"jsonb_set(COALESCE(votes, '{}'::jsonb), ARRAY[?], to_jsonb(?::boolean))",
			voterId, decision,
		))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrCandidateNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) SetFeedback(ctx context.Context, id uuid.UUID, feedback string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("id = ?", id).
		Update("feedback", feedback)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrCandidateNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindAllForUpdate(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	var models []*model.Application
	query := r.applySpecifications(
		r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}),
		specs...,
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ApplicationRepositoryImpl) StageOutcome(ctx context.Context, id uuid.UUID, accepted bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"accepted":  accepted,
			"finalized": true,
			"version":   gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrCandidateNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) SaveWithVersion(ctx context.Context, application *entity.Application) error {
	m := r.mapper.ToModel(application)
	expected := m.Version
	m.Version = expected + 1

	res := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("id = ? AND version = ?", m.Id, expected).
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrCommitConflict
	}
	application.Version = m.Version
	return nil
}
