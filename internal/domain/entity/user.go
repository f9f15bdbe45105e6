package entity

import "time"

// User representa un usuario del back-office. La autorización es por permisos
// individuales (PermissionSet), no por roles.
type User struct {
	ID           int
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt; filas legacy pueden traer texto plano (ver auth/credential)
	Permissions  PermissionSet
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}
