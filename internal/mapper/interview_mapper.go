package mapper

import (
	"encoding/json"

	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/model"

	"gorm.io/datatypes"
)

type InterviewMapper struct{}

func NewInterviewMapper() *InterviewMapper {
	return &InterviewMapper{}
}

func (m *InterviewMapper) ToModel(e *entity.Interview) *model.Interview {
	notes := datatypes.JSON("{}")
	if e.Notes != nil {
		if raw, err := json.Marshal(e.Notes); err == nil {
			notes = datatypes.JSON(raw)
		}
	}

	return &model.Interview{
		Id:               e.Id,
		IntervieweeName:  e.IntervieweeName,
		IntervieweeEmail: e.IntervieweeEmail,
		Level:            e.Level,
		Phase:            e.Phase,
		NavigationKey:    e.NavigationKey,
		Notes:            notes,
		GeneralComments:  e.GeneralComments,
		CreatedAt:        e.CreatedAt,
		ClosedAt:         e.ClosedAt,
	}
}

func (m *InterviewMapper) ToEntity(mod *model.Interview) *entity.Interview {
	notes := make(map[string]string)
	if len(mod.Notes) > 0 {
		// Corrupt notes are dropped, not fatal; the record stays readable.
		_ = json.Unmarshal(mod.Notes, &notes)
	}

	return &entity.Interview{
		Id:               mod.Id,
		IntervieweeName:  mod.IntervieweeName,
		IntervieweeEmail: mod.IntervieweeEmail,
		Level:            mod.Level,
		Phase:            mod.Phase,
		NavigationKey:    mod.NavigationKey,
		Notes:            notes,
		GeneralComments:  mod.GeneralComments,
		CreatedAt:        mod.CreatedAt,
		ClosedAt:         mod.ClosedAt,
	}
}

func (m *InterviewMapper) ToEntities(models []*model.Interview) []*entity.Interview {
	entities := make([]*entity.Interview, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
