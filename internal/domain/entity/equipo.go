package entity

import "time"

// Equipo unidad de equipo identificada por su serial (portátil, tablet, etc.).
type Equipo struct {
	ID               string
	Serial           string
	Marca            string
	TipoEquipo       string
	DocumentoPersona string // documento del dueño registrado
	Caracteristicas  string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
