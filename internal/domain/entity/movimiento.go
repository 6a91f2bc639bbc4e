package entity

import "time"

// Estados derivados de un movimiento.
const (
	EstadoPendiente  = "Pendiente"
	EstadoCompletado = "Completado"
)

// Movimiento representa un ciclo ingreso/salida de un equipo por portería.
// FechaSalida nil significa que la salida aún no se registra.
type Movimiento struct {
	ID                 string
	DocumentoPersona   string
	SerialEquipo       string
	TipoIngreso        string // Ocasional | Permanente
	FechaIngreso       time.Time
	TipoSalida         string // Ocasional | Permanente | "" (sin salida)
	FechaSalida        *time.Time
	CentroFormacion    string
	DocumentoVigilante string
	Observaciones      string
	CreatedAt          time.Time
}

// Pendiente indica si el movimiento sigue abierto (sin salida registrada).
func (m *Movimiento) Pendiente() bool {
	return m.FechaSalida == nil
}

// Estado devuelve el estado derivado del movimiento.
func (m *Movimiento) Estado() string {
	if m.Pendiente() {
		return EstadoPendiente
	}
	return EstadoCompletado
}

// ResumenMovimientos contadores agregados para el tablero de portería.
type ResumenMovimientos struct {
	Pendientes  int
	IngresosHoy int
	SalidasHoy  int
	Total       int
}
