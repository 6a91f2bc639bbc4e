package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cesge/control-equipos/internal/application/dto"
	"github.com/cesge/control-equipos/internal/domain"
	"github.com/cesge/control-equipos/internal/domain/entity"
	"github.com/cesge/control-equipos/internal/domain/repository"
)

// PersonaUseCase CRUD del catálogo de personas, keyed por documento.
type PersonaUseCase struct {
	repo repository.PersonaRepository
}

// NewPersonaUseCase construye el caso de uso.
func NewPersonaUseCase(repo repository.PersonaRepository) *PersonaUseCase {
	return &PersonaUseCase{repo: repo}
}

// Crear registra una persona. Devuelve ErrDuplicate si el documento ya existe.
func (uc *PersonaUseCase) Crear(req dto.CrearPersonaRequest) (*dto.PersonaResponse, error) {
	if req.Documento == "" || req.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByDocumento(req.Documento); existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Persona{
		ID:          uuid.New().String(),
		Documento:   req.Documento,
		Nombre:      req.Nombre,
		Apellido:    req.Apellido,
		TipoPersona: req.TipoPersona,
		Telefono:    req.Telefono,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, fmt.Errorf("creando persona %s: %w", req.Documento, err)
	}
	resp := dto.PersonaToResponse(p)
	return &resp, nil
}

// GetByDocumento devuelve una persona por documento.
func (uc *PersonaUseCase) GetByDocumento(documento string) (*dto.PersonaResponse, error) {
	p, err := uc.repo.GetByDocumento(documento)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.PersonaToResponse(p)
	return &resp, nil
}

// List devuelve personas paginadas.
func (uc *PersonaUseCase) List(limit, offset int) ([]dto.PersonaResponse, error) {
	items, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listando personas: %w", err)
	}
	out := make([]dto.PersonaResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.PersonaToResponse(p))
	}
	return out, nil
}

// Actualizar modifica los campos editables de una persona.
func (uc *PersonaUseCase) Actualizar(documento string, req dto.ActualizarPersonaRequest) (*dto.PersonaResponse, error) {
	p, err := uc.repo.GetByDocumento(documento)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if req.Nombre != "" {
		p.Nombre = req.Nombre
	}
	if req.Apellido != "" {
		p.Apellido = req.Apellido
	}
	if req.TipoPersona != "" {
		p.TipoPersona = req.TipoPersona
	}
	if req.Telefono != "" {
		p.Telefono = req.Telefono
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, fmt.Errorf("actualizando persona %s: %w", documento, err)
	}
	resp := dto.PersonaToResponse(p)
	return &resp, nil
}

// Eliminar borra una persona del catálogo.
func (uc *PersonaUseCase) Eliminar(documento string) error {
	p, err := uc.repo.GetByDocumento(documento)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(documento)
}
