package repository

import (
	"time"

	"github.com/cesge/control-equipos/internal/domain/conciliacion"
	"github.com/cesge/control-equipos/internal/domain/entity"
)

// MovimientoRepository define el puerto de persistencia para movimientos.
//
// Snapshot devuelve los registros como mapas crudos (claves snake_case) en
// lugar de entidades tipadas: el motor de conciliación trabaja sobre datos sin
// validar y el normalizador de campos absorbe la heterogeneidad de nombres.
type MovimientoRepository interface {
	Snapshot() ([]conciliacion.Record, error)
	Create(m *entity.Movimiento) (string, error)
	RegistrarSalida(id, tipoSalida string, fechaSalida time.Time) error
	GetByID(id string) (*entity.Movimiento, error)
	List(limit, offset int) ([]*entity.Movimiento, error)
	Delete(id string) error
	Resumen(hoy string) (*entity.ResumenMovimientos, error)
}
