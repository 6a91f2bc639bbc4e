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

// EquipoUseCase CRUD del catálogo de equipos, keyed por serial.
// El dueño (DocumentoPersona) debe existir en el catálogo de personas.
type EquipoUseCase struct {
	repo        repository.EquipoRepository
	personaRepo repository.PersonaRepository
}

// NewEquipoUseCase construye el caso de uso.
func NewEquipoUseCase(repo repository.EquipoRepository, personaRepo repository.PersonaRepository) *EquipoUseCase {
	return &EquipoUseCase{repo: repo, personaRepo: personaRepo}
}

// Crear registra un equipo. Devuelve ErrDuplicate si el serial ya existe y
// ErrNotFound si el documento del dueño no está en el catálogo.
func (uc *EquipoUseCase) Crear(req dto.CrearEquipoRequest) (*dto.EquipoResponse, error) {
	if req.Serial == "" || req.DocumentoPersona == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetBySerial(req.Serial); existing != nil {
		return nil, domain.ErrDuplicate
	}
	dueno, err := uc.personaRepo.GetByDocumento(req.DocumentoPersona)
	if err != nil {
		return nil, err
	}
	if dueno == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	e := &entity.Equipo{
		ID:               uuid.New().String(),
		Serial:           req.Serial,
		Marca:            req.Marca,
		TipoEquipo:       req.TipoEquipo,
		DocumentoPersona: req.DocumentoPersona,
		Caracteristicas:  req.Caracteristicas,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, fmt.Errorf("creando equipo %s: %w", req.Serial, err)
	}
	resp := dto.EquipoToResponse(e)
	return &resp, nil
}

// GetBySerial devuelve un equipo por serial.
func (uc *EquipoUseCase) GetBySerial(serial string) (*dto.EquipoResponse, error) {
	e, err := uc.repo.GetBySerial(serial)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.EquipoToResponse(e)
	return &resp, nil
}

// List devuelve equipos paginados.
func (uc *EquipoUseCase) List(limit, offset int) ([]dto.EquipoResponse, error) {
	items, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listando equipos: %w", err)
	}
	out := make([]dto.EquipoResponse, 0, len(items))
	for _, e := range items {
		out = append(out, dto.EquipoToResponse(e))
	}
	return out, nil
}

// Actualizar modifica los campos editables de un equipo.
func (uc *EquipoUseCase) Actualizar(serial string, req dto.ActualizarEquipoRequest) (*dto.EquipoResponse, error) {
	e, err := uc.repo.GetBySerial(serial)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if req.Marca != "" {
		e.Marca = req.Marca
	}
	if req.TipoEquipo != "" {
		e.TipoEquipo = req.TipoEquipo
	}
	if req.DocumentoPersona != "" {
		dueno, err := uc.personaRepo.GetByDocumento(req.DocumentoPersona)
		if err != nil {
			return nil, err
		}
		if dueno == nil {
			return nil, domain.ErrNotFound
		}
		e.DocumentoPersona = req.DocumentoPersona
	}
	if req.Caracteristicas != "" {
		e.Caracteristicas = req.Caracteristicas
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, fmt.Errorf("actualizando equipo %s: %w", serial, err)
	}
	resp := dto.EquipoToResponse(e)
	return &resp, nil
}

// Eliminar borra un equipo del catálogo.
func (uc *EquipoUseCase) Eliminar(serial string) error {
	e, err := uc.repo.GetBySerial(serial)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(serial)
}
