package repository

import "github.com/cesge/control-equipos/internal/domain/entity"

// EquipoRepository define el puerto de persistencia para equipos.
type EquipoRepository interface {
	Create(e *entity.Equipo) error
	GetBySerial(serial string) (*entity.Equipo, error)
	List(limit, offset int) ([]*entity.Equipo, error)
	Update(e *entity.Equipo) error
	Delete(serial string) error
}
