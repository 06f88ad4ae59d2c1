package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string          `json:"token"`
	UserId   string          `json:"user_id"`
	FullName string          `json:"full_name"`
	Roles    map[string]bool `json:"roles"`
}
