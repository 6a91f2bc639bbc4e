package dto

import (
	"time"

	"github.com/cesge/control-equipos/internal/domain/entity"
)

// ScanRequest body para POST /api/movimientos/scan.
// Modo indica la dirección del registro: "ingreso" o "salida".
type ScanRequest struct {
	Modo            string `json:"modo" validate:"required,oneof=ingreso salida"`
	QR              string `json:"qr" validate:"required"`
	CentroFormacion string `json:"centro_formacion,omitempty"`
	Observaciones   string `json:"observaciones,omitempty"`
}

// ScanResult respuesta de un escaneo. Outcome es el código del resultado
// (CREATE_ENTRY, ALREADY_PENDING, ALREADY_COMPLETED, CLOSE_EXIT,
// NO_PENDING_MATCH, INVALID_PAYLOAD) y Mensaje su versión legible en español.
type ScanResult struct {
	Outcome      string `json:"outcome"`
	Mensaje      string `json:"mensaje"`
	MovimientoID string `json:"movimiento_id,omitempty"`
	Documento    string `json:"documento,omitempty"`
	Serial       string `json:"serial,omitempty"`
	Nombre       string `json:"nombre,omitempty"`
}

// CrearIngresoRequest body para POST /api/movimientos (registro manual).
type CrearIngresoRequest struct {
	DocumentoPersona string `json:"documento_persona" validate:"required"`
	SerialEquipo     string `json:"serial_equipo" validate:"required"`
	TipoIngreso      string `json:"tipo_ingreso" validate:"omitempty,oneof=ocasional permanente"`
	CentroFormacion  string `json:"centro_formacion,omitempty"`
	Observaciones    string `json:"observaciones,omitempty"`
}

// RegistrarSalidaRequest body para PUT /api/movimientos/:id/salida.
type RegistrarSalidaRequest struct {
	TipoSalida    string `json:"tipo_salida" validate:"omitempty,oneof=ocasional permanente"`
	Observaciones string `json:"observaciones,omitempty"`
}

// MovimientoResponse salida de un movimiento.
type MovimientoResponse struct {
	ID                 string     `json:"id"`
	DocumentoPersona   string     `json:"documento_persona"`
	SerialEquipo       string     `json:"serial_equipo"`
	TipoIngreso        string     `json:"tipo_ingreso"`
	FechaIngreso       time.Time  `json:"fecha_ingreso"`
	TipoSalida         string     `json:"tipo_salida,omitempty"`
	FechaSalida        *time.Time `json:"fecha_salida,omitempty"`
	Estado             string     `json:"estado"`
	CentroFormacion    string     `json:"centro_formacion,omitempty"`
	DocumentoVigilante string     `json:"documento_vigilante,omitempty"`
	Observaciones      string     `json:"observaciones,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// MovimientoToResponse mapea la entidad de dominio al DTO de salida.
func MovimientoToResponse(m *entity.Movimiento) MovimientoResponse {
	return MovimientoResponse{
		ID:                 m.ID,
		DocumentoPersona:   m.DocumentoPersona,
		SerialEquipo:       m.SerialEquipo,
		TipoIngreso:        m.TipoIngreso,
		FechaIngreso:       m.FechaIngreso,
		TipoSalida:         m.TipoSalida,
		FechaSalida:        m.FechaSalida,
		Estado:             m.Estado(),
		CentroFormacion:    m.CentroFormacion,
		DocumentoVigilante: m.DocumentoVigilante,
		Observaciones:      m.Observaciones,
		CreatedAt:          m.CreatedAt,
	}
}

// ResumenResponse respuesta de GET /api/movimientos/resumen con los contadores del día.
type ResumenResponse struct {
	Pendientes  int    `json:"pendientes"`
	IngresosHoy int    `json:"ingresos_hoy"`
	SalidasHoy  int    `json:"salidas_hoy"`
	Total       int    `json:"total"`
	Fecha       string `json:"fecha"` // YYYY-MM-DD
}
