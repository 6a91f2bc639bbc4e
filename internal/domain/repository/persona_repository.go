package repository

import "github.com/cesge/control-equipos/internal/domain/entity"

// PersonaRepository define el puerto de persistencia para personas.
type PersonaRepository interface {
	Create(p *entity.Persona) error
	GetByDocumento(documento string) (*entity.Persona, error)
	List(limit, offset int) ([]*entity.Persona, error)
	Update(p *entity.Persona) error
	Delete(documento string) error
}
