package implementation

import (
	"context"
	"errors"

	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/mapper"
	"interview-platform-be/internal/model"
	"interview-platform-be/internal/repository/contract"
	"interview-platform-be/internal/repository/specification"

	"gorm.io/gorm"
)

type InterviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewMapper
}

func NewInterviewRepository(db *gorm.DB) contract.InterviewRepository {
	return &InterviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewMapper(),
	}
}

func (r *InterviewRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InterviewRepositoryImpl) Create(ctx context.Context, interview *entity.Interview) error {
	m := r.mapper.ToModel(interview)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interview = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterviewRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interview, error) {
	var m model.Interview
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InterviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interview, error) {
	var models []*model.Interview
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InterviewRepositoryImpl) SetPhase(ctx context.Context, id, fromPhase, toPhase string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Interview{}).
		Where("id = ? AND phase = ?", id, fromPhase).
		Update("phase", toPhase)
	return res.RowsAffected, res.Error
}

func (r *InterviewRepositoryImpl) SetNavigationKey(ctx context.Context, id, key string) error {
	return r.db.WithContext(ctx).
		Model(&model.Interview{}).
		Where("id = ?", id).
		Update("navigation_key", key).Error
}

func (r *InterviewRepositoryImpl) SaveSectionNotes(ctx context.Context, id, sectionKey, notes string) error {
	// jsonb_set touches only the one section key, so two interviewers' tabs
	// saving different sections cannot clobber each other.
	return r.db.WithContext(ctx).
		Model(&model.Interview{}).
		Where("id = ?", id).
		Update("notes", gorm.Expr(
			"jsonb_set(COALESCE(notes, '{}'::jsonb), ARRAY[?], to_jsonb(?::text))",
			sectionKey, notes,
		)).Error
}

func (r *InterviewRepositoryImpl) Close(ctx context.Context, id, generalComments string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Interview{}).
		Where("id = ? AND phase <> ?", id, constant.PhaseClosed).
		Updates(map[string]interface{}{
			"phase":            constant.PhaseClosed,
			"general_comments": generalComments,
			"closed_at":        gorm.Expr("NOW()"),
		})
	return res.RowsAffected, res.Error
}
