package dto

// CreateUserRequest alta de usuario por un administrador, con permisos
// explícitos (lista de nombres de permiso).
type CreateUserRequest struct {
	Username    string   `json:"username" validate:"required,min=3,max=50"`
	Password    string   `json:"password" validate:"required,min=6"`
	Email       string   `json:"email" validate:"required,email"`
	Permissions []string `json:"permissions" validate:"dive,required"`
}

// UpdateUserRequest actualización en sitio: permisos, password o flag activo.
// Los usuarios nunca se borran.
type UpdateUserRequest struct {
	Password    *string   `json:"password" validate:"omitempty,min=6"`
	Email       *string   `json:"email" validate:"omitempty,email"`
	IsActive    *bool     `json:"is_active"`
	Permissions *[]string `json:"permissions" validate:"omitempty,dive,required"`
}
