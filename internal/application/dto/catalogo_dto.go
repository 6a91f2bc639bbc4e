package dto

import (
	"time"

	"github.com/cesge/control-equipos/internal/domain/entity"
)

// CrearPersonaRequest body para POST /api/personas.
type CrearPersonaRequest struct {
	Documento   string `json:"documento" validate:"required,min=5,max=20"`
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Apellido    string `json:"apellido" validate:"omitempty,max=200"`
	TipoPersona string `json:"tipo_persona" validate:"omitempty,oneof=aprendiz instructor funcionario visitante"`
	Telefono    string `json:"telefono,omitempty"`
}

// ActualizarPersonaRequest body para PUT /api/personas/:documento.
type ActualizarPersonaRequest struct {
	Nombre      string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Apellido    string `json:"apellido" validate:"omitempty,max=200"`
	TipoPersona string `json:"tipo_persona" validate:"omitempty,oneof=aprendiz instructor funcionario visitante"`
	Telefono    string `json:"telefono,omitempty"`
}

// PersonaResponse salida de una persona.
type PersonaResponse struct {
	ID          string    `json:"id"`
	Documento   string    `json:"documento"`
	Nombre      string    `json:"nombre"`
	Apellido    string    `json:"apellido,omitempty"`
	TipoPersona string    `json:"tipo_persona,omitempty"`
	Telefono    string    `json:"telefono,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PersonaToResponse mapea la entidad de dominio al DTO de salida.
func PersonaToResponse(p *entity.Persona) PersonaResponse {
	return PersonaResponse{
		ID:          p.ID,
		Documento:   p.Documento,
		Nombre:      p.Nombre,
		Apellido:    p.Apellido,
		TipoPersona: p.TipoPersona,
		Telefono:    p.Telefono,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CrearEquipoRequest body para POST /api/equipos.
type CrearEquipoRequest struct {
	Serial           string `json:"serial" validate:"required,min=1,max=100"`
	Marca            string `json:"marca" validate:"omitempty,max=100"`
	TipoEquipo       string `json:"tipo_equipo" validate:"omitempty,max=100"`
	DocumentoPersona string `json:"documento_persona" validate:"required"`
	Caracteristicas  string `json:"caracteristicas,omitempty"`
}

// ActualizarEquipoRequest body para PUT /api/equipos/:serial.
type ActualizarEquipoRequest struct {
	Marca            string `json:"marca" validate:"omitempty,max=100"`
	TipoEquipo       string `json:"tipo_equipo" validate:"omitempty,max=100"`
	DocumentoPersona string `json:"documento_persona,omitempty"`
	Caracteristicas  string `json:"caracteristicas,omitempty"`
}

// EquipoResponse salida de un equipo.
type EquipoResponse struct {
	ID               string    `json:"id"`
	Serial           string    `json:"serial"`
	Marca            string    `json:"marca,omitempty"`
	TipoEquipo       string    `json:"tipo_equipo,omitempty"`
	DocumentoPersona string    `json:"documento_persona"`
	Caracteristicas  string    `json:"caracteristicas,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// EquipoToResponse mapea la entidad de dominio al DTO de salida.
func EquipoToResponse(e *entity.Equipo) EquipoResponse {
	return EquipoResponse{
		ID:               e.ID,
		Serial:           e.Serial,
		Marca:            e.Marca,
		TipoEquipo:       e.TipoEquipo,
		DocumentoPersona: e.DocumentoPersona,
		Caracteristicas:  e.Caracteristicas,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
