package mapper

import (
	"encoding/json"

	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/model"

	"gorm.io/datatypes"
)

type ApplicationMapper struct{}

func NewApplicationMapper() *ApplicationMapper {
	return &ApplicationMapper{}
}

func (m *ApplicationMapper) ToModel(e *entity.Application) *model.Application {
	responses := datatypes.JSON("[]")
	if e.Responses != nil {
		if raw, err := json.Marshal(e.Responses); err == nil {
			responses = datatypes.JSON(raw)
		}
	}

	votes := make(datatypes.JSONMap, len(e.Votes))
	for voter, decision := range e.Votes {
		votes[voter] = decision
	}

	return &model.Application{
		Id:          e.Id,
		Email:       e.Email,
		Responses:   responses,
		Interviewed: e.Interviewed,
		Votes:       votes,
		Feedback:    e.Feedback,
		Accepted:    e.Accepted,
		Finalized:   e.Finalized,
		Version:     e.Version,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *ApplicationMapper) ToEntity(mod *model.Application) *entity.Application {
	var responses []entity.Response
	if len(mod.Responses) > 0 {
		_ = json.Unmarshal(mod.Responses, &responses)
	}

	votes := make(map[string]bool, len(mod.Votes))
	for voter, v := range mod.Votes {
		if decision, ok := v.(bool); ok {
			votes[voter] = decision
		}
	}

	return &entity.Application{
		Id:          mod.Id,
		Email:       mod.Email,
		Responses:   responses,
		Interviewed: mod.Interviewed,
		Votes:       votes,
		Feedback:    mod.Feedback,
		Accepted:    mod.Accepted,
		Finalized:   mod.Finalized,
		Version:     mod.Version,
		CreatedAt:   mod.CreatedAt,
	}
}

func (m *ApplicationMapper) ToEntities(models []*model.Application) []*entity.Application {
	entities := make([]*entity.Application, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
