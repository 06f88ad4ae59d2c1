package mapper

import (
	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/model"
)

type LevelMapper struct{}

func NewLevelMapper() *LevelMapper {
	return &LevelMapper{}
}

func (m *LevelMapper) ToModel(e *entity.Level) *model.Level {
	questions := make([]model.Question, 0, len(e.Questions))
	for _, q := range e.Questions {
		questions = append(questions, *m.QuestionToModel(&q))
	}

	return &model.Level{
		Id:        e.Id,
		Name:      e.Name,
		Overview:  e.Overview,
		SortOrder: e.SortOrder,
		Questions: questions,
	}
}

func (m *LevelMapper) ToEntity(mod *model.Level) *entity.Level {
	questions := make([]entity.Question, 0, len(mod.Questions))
	for _, q := range mod.Questions {
		questions = append(questions, *m.QuestionToEntity(&q))
	}

	return &entity.Level{
		Id:        mod.Id,
		Name:      mod.Name,
		Overview:  mod.Overview,
		SortOrder: mod.SortOrder,
		Questions: questions,
	}
}

func (m *LevelMapper) ToEntities(models []*model.Level) []*entity.Level {
	entities := make([]*entity.Level, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}

func (m *LevelMapper) QuestionToModel(e *entity.Question) *model.Question {
	return &model.Question{
		Id:          e.Id,
		LevelId:     e.LevelId,
		Title:       e.Title,
		Description: e.Description,
		Answer:      e.Answer,
		ImageURL:    e.ImageURL,
		SortOrder:   e.SortOrder,
	}
}

func (m *LevelMapper) QuestionToEntity(mod *model.Question) *entity.Question {
	return &entity.Question{
		Id:          mod.Id,
		LevelId:     mod.LevelId,
		Title:       mod.Title,
		Description: mod.Description,
		Answer:      mod.Answer,
		ImageURL:    mod.ImageURL,
		SortOrder:   mod.SortOrder,
	}
}
