package movimientos

import (
	"time"

	"github.com/cesge/control-equipos/internal/domain/conciliacion"
)

// RelojLocal implementa conciliacion.Clock con la hora local del servidor.
// Today usa la fecha calendario local, no UTC, para que "hoy" coincida con
// el día del puesto de vigilancia.
type RelojLocal struct{}

var _ conciliacion.Clock = RelojLocal{}

func (RelojLocal) Now() time.Time { return time.Now() }

func (RelojLocal) Today() string { return time.Now().Format("2006-01-02") }
