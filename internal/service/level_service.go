package service

import (
	"context"

	"interview-platform-be/internal/apperr"
	"interview-platform-be/internal/auth"
	"interview-platform-be/internal/dto"
	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/repository/specification"
	"interview-platform-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ILevelService interface {
	ListLevels(ctx context.Context, principal *auth.Principal) ([]*dto.LevelResponse, error)
	CreateLevel(ctx context.Context, req *dto.LevelRequest, principal *auth.Principal) (*dto.LevelResponse, error)
	UpdateLevel(ctx context.Context, id uuid.UUID, req *dto.LevelRequest, principal *auth.Principal) (*dto.LevelResponse, error)
	DeleteLevel(ctx context.Context, id uuid.UUID, principal *auth.Principal) error

	AddQuestion(ctx context.Context, levelId uuid.UUID, req *dto.QuestionRequest, principal *auth.Principal) (*dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, levelId, questionId uuid.UUID, req *dto.QuestionRequest, principal *auth.Principal) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, questionId uuid.UUID, principal *auth.Principal) error
}

type levelService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLevelService(uowFactory unitofwork.RepositoryFactory) ILevelService {
	return &levelService{
		uowFactory: uowFactory,
	}
}

func (s *levelService) ListLevels(ctx context.Context, principal *auth.Principal) ([]*dto.LevelResponse, error) {
	if !principal.CanInterview() {
		return nil, apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	levels, err := uow.LevelRepository().FindAll(ctx, specification.OrderBy{Field: "sort_order"})
	if err != nil {
		return nil, err
	}

	out := make([]*dto.LevelResponse, 0, len(levels))
	for _, level := range levels {
		out = append(out, toLevelResponse(level, principal))
	}
	return out, nil
}

func (s *levelService) CreateLevel(ctx context.Context, req *dto.LevelRequest, principal *auth.Principal) (*dto.LevelResponse, error) {
	if !principal.CanAdministrate() {
		return nil, apperr.ErrForbidden
	}

	level := &entity.Level{
		Id:        uuid.New(),
		Name:      req.Name,
		Overview:  req.Overview,
		SortOrder: req.SortOrder,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LevelRepository().Create(ctx, level); err != nil {
		return nil, err
	}
	return toLevelResponse(level, principal), nil
}

func (s *levelService) UpdateLevel(ctx context.Context, id uuid.UUID, req *dto.LevelRequest, principal *auth.Principal) (*dto.LevelResponse, error) {
	if !principal.CanAdministrate() {
		return nil, apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	level, err := uow.LevelRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil || level == nil {
		return nil, apperr.ErrLevelNotFound
	}

	level.Name = req.Name
	level.Overview = req.Overview
	level.SortOrder = req.SortOrder

	if err := uow.LevelRepository().Update(ctx, level); err != nil {
		return nil, err
	}
	return toLevelResponse(level, principal), nil
}

func (s *levelService) DeleteLevel(ctx context.Context, id uuid.UUID, principal *auth.Principal) error {
	if !principal.CanAdministrate() {
		return apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.LevelRepository().Delete(ctx, id)
}

func (s *levelService) AddQuestion(ctx context.Context, levelId uuid.UUID, req *dto.QuestionRequest, principal *auth.Principal) (*dto.QuestionResponse, error) {
	if !principal.CanAdministrate() {
		return nil, apperr.ErrForbidden
	}

	question := &entity.Question{
		Id:          uuid.New(),
		LevelId:     levelId,
		Title:       req.Title,
		Description: req.Description,
		Answer:      req.Answer,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LevelRepository().AddQuestion(ctx, question); err != nil {
		return nil, err
	}
	return toQuestionResponse(question, principal), nil
}

func (s *levelService) UpdateQuestion(ctx context.Context, levelId, questionId uuid.UUID, req *dto.QuestionRequest, principal *auth.Principal) (*dto.QuestionResponse, error) {
	if !principal.CanAdministrate() {
		return nil, apperr.ErrForbidden
	}

	question := &entity.Question{
		Id:          questionId,
		LevelId:     levelId,
		Title:       req.Title,
		Description: req.Description,
		Answer:      req.Answer,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LevelRepository().UpdateQuestion(ctx, question); err != nil {
		return nil, err
	}
	return toQuestionResponse(question, principal), nil
}

func (s *levelService) DeleteQuestion(ctx context.Context, questionId uuid.UUID, principal *auth.Principal) error {
	if !principal.CanAdministrate() {
		return apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.LevelRepository().DeleteQuestion(ctx, questionId)
}

func toLevelResponse(level *entity.Level, principal *auth.Principal) *dto.LevelResponse {
	resp := &dto.LevelResponse{
		Id:        level.Id.String(),
		Name:      level.Name,
		Overview:  level.Overview,
		SortOrder: level.SortOrder,
		Questions: []dto.QuestionResponse{},
	}
	for i := range level.Questions {
		resp.Questions = append(resp.Questions, *toQuestionResponse(&level.Questions[i], principal))
	}
	return resp
}

func toQuestionResponse(q *entity.Question, principal *auth.Principal) *dto.QuestionResponse {
	resp := &dto.QuestionResponse{
		Id:          q.Id.String(),
		Title:       q.Title,
		Description: q.Description,
		ImageURL:    q.ImageURL,
		SortOrder:   q.SortOrder,
	}
	if principal.CanInterview() {
		resp.Answer = q.Answer
	}
	return resp
}
