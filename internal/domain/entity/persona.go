package entity

import "time"

// Persona titular que porta equipos (aprendiz, instructor, visitante).
type Persona struct {
	ID          string
	Documento   string
	Nombre      string
	Apellido    string
	TipoPersona string
	Telefono    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
