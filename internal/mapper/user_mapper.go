package mapper

import (
	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(e *entity.User) *model.User {
	roles := make(datatypes.JSONMap, len(e.Roles))
	for role, enabled := range e.Roles {
		roles[role] = enabled
	}

	return &model.User{
		Id:           e.Id,
		Email:        e.Email,
		FullName:     e.FullName,
		PasswordHash: e.PasswordHash,
		Roles:        roles,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
	}
}

func (m *UserMapper) ToEntity(mod *model.User) *entity.User {
	roles := make(map[string]bool, len(mod.Roles))
	for role, v := range mod.Roles {
		if enabled, ok := v.(bool); ok && enabled {
			roles[role] = true
		}
	}

	return &entity.User{
		Id:           mod.Id,
		Email:        mod.Email,
		FullName:     mod.FullName,
		PasswordHash: mod.PasswordHash,
		Roles:        roles,
		Status:       mod.Status,
		CreatedAt:    mod.CreatedAt,
	}
}
