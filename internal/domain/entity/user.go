package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin     = "admin"
	RoleVigilante = "vigilante"
)

// User cuenta de acceso al sistema (personal de vigilancia y administración).
// Documento es el documento de identidad del usuario; se estampa como
// documentoVigilante en los movimientos que registra.
type User struct {
	ID           string
	Documento    string
	Email        string
	PasswordHash string
	Nombre       string
	Apellido     string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
