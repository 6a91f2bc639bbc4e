package conciliacion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesge/control-equipos/internal/domain/conciliacion"
)

// fixedClock reloj congelado para que los tests no dependan de la hora real.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
func (c fixedClock) Today() string  { return c.now.Format("2006-01-02") }

var testClock = fixedClock{now: time.Date(2024, 5, 2, 10, 30, 0, 0, time.Local)}

func scanIngreso(documento, serial string) conciliacion.ScanEvent {
	return conciliacion.ScanEvent{
		Mode:               conciliacion.ModeIngreso,
		Payload:            conciliacion.QRPayload{Documento: documento, Serial: serial},
		CentroFormacion:    "CESGE",
		DocumentoVigilante: "555",
	}
}

func scanSalida(documento, serial string) conciliacion.ScanEvent {
	s := scanIngreso(documento, serial)
	s.Mode = conciliacion.ModeSalida
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo ingreso
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_IngresoSinRegistros_CreaEntrada(t *testing.T) {
	d := conciliacion.Evaluate(nil, scanIngreso("123", "ABC"), testClock)

	require.Equal(t, conciliacion.OutcomeCreateEntry, d.Outcome)
	require.NotNil(t, d.Create)
	assert.Equal(t, "123", d.Create["documentoPersona"])
	assert.Equal(t, "ABC", d.Create["serialEquipo"])
	assert.Equal(t, conciliacion.TipoPermanente, d.Create["tipoIngreso"], "el escaneo QR siempre registra tipo Permanente")
	assert.Equal(t, "2024-05-02 10:30:00", d.Create["fechaIngreso"])
	assert.Equal(t, "", d.Create["tipoSalida"])
	assert.Nil(t, d.Create["fechaSalida"])
	assert.Equal(t, "CESGE", d.Create["centroFormacion"])
	assert.Equal(t, "555", d.Create["documentoVigilante"])
}

func TestEvaluate_IngresoYaAbiertoHoy_AlreadyPending(t *testing.T) {
	records := []conciliacion.Record{
		{"serialEquipo": "ABC", "fechaIngreso": "2024-05-02 08:00:00", "fechaSalida": nil},
	}
	d := conciliacion.Evaluate(records, scanIngreso("123", "ABC"), testClock)
	assert.Equal(t, conciliacion.OutcomeAlreadyPending, d.Outcome)
	assert.Nil(t, d.Create, "no debe proponer creación")
}

func TestEvaluate_IngresoYSalidaDeHoy_AlreadyCompleted(t *testing.T) {
	records := []conciliacion.Record{
		{"serialEquipo": "ABC", "fechaIngreso": "2024-05-02 08:00:00", "fechaSalida": "2024-05-02 09:00:00"},
	}
	d := conciliacion.Evaluate(records, scanIngreso("123", "ABC"), testClock)
	assert.Equal(t, conciliacion.OutcomeAlreadyCompleted, d.Outcome)
}

func TestEvaluate_IngresoDeAyerNoBloqueaHoy(t *testing.T) {
	// Un pendiente de otro día no impide registrar el ingreso de hoy:
	// cada ingreso abre un registro independiente.
	records := []conciliacion.Record{
		{"serialEquipo": "ABC", "fechaIngreso": "2024-05-01 08:00:00", "fechaSalida": nil},
	}
	d := conciliacion.Evaluate(records, scanIngreso("123", "ABC"), testClock)
	assert.Equal(t, conciliacion.OutcomeCreateEntry, d.Outcome)
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo salida
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_SalidaCierraPendiente(t *testing.T) {
	records := []conciliacion.Record{
		{"id": 7, "documentoPersona": "123", "serialEquipo": "ABC", "fechaIngreso": "2024-05-01 08:00:00", "fechaSalida": nil},
	}
	d := conciliacion.Evaluate(records, scanSalida("123", "ABC"), testClock)

	require.Equal(t, conciliacion.OutcomeCloseExit, d.Outcome)
	assert.Equal(t, 7, d.TargetID)
	require.NotNil(t, d.Update)
	assert.Equal(t, conciliacion.TipoPermanente, d.Update["tipoSalida"])
	// fechaSalida va bajo ambas convenciones a propósito (compatibilidad aguas abajo).
	assert.Equal(t, "2024-05-02 10:30:00", d.Update["fechaSalida"])
	assert.Equal(t, "2024-05-02 10:30:00", d.Update["fecha_salida"])
}

func TestEvaluate_SalidaSinPendiente_NoPendingMatch(t *testing.T) {
	d := conciliacion.Evaluate(nil, scanSalida("123", "ABC"), testClock)
	assert.Equal(t, conciliacion.OutcomeNoPendingMatch, d.Outcome)
	assert.Nil(t, d.TargetID)
}

func TestEvaluate_SalidaConDocumentoDistinto_CierraPorSerial(t *testing.T) {
	records := []conciliacion.Record{
		{"id": 4, "documentoPersona": "999", "serialEquipo": "ABC", "fechaIngreso": "2024-05-01 08:00:00"},
	}
	d := conciliacion.Evaluate(records, scanSalida("123", "ABC"), testClock)
	require.Equal(t, conciliacion.OutcomeCloseExit, d.Outcome)
	assert.Equal(t, 4, d.TargetID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Precondiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_PayloadIncompleto_InvalidPayload(t *testing.T) {
	cases := []struct {
		name              string
		documento, serial string
	}{
		{"sin documento", "", "ABC"},
		{"sin serial", "123", ""},
		{"vacío total", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, mode := range []conciliacion.Mode{conciliacion.ModeIngreso, conciliacion.ModeSalida} {
				scan := scanIngreso(tc.documento, tc.serial)
				scan.Mode = mode
				d := conciliacion.Evaluate(nil, scan, testClock)
				assert.Equal(t, conciliacion.OutcomeInvalidPayload, d.Outcome)
			}
		})
	}
}

func TestEvaluate_ModoDesconocido_InvalidPayload(t *testing.T) {
	scan := scanIngreso("123", "ABC")
	scan.Mode = conciliacion.Mode("otro")
	d := conciliacion.Evaluate(nil, scan, testClock)
	assert.Equal(t, conciliacion.OutcomeInvalidPayload, d.Outcome)
}

func TestEvaluate_NoMutaElSnapshot(t *testing.T) {
	records := []conciliacion.Record{
		{"id": 7, "documentoPersona": "123", "serialEquipo": "ABC", "fechaIngreso": "2024-05-01 08:00:00"},
	}
	_ = conciliacion.Evaluate(records, scanSalida("123", "ABC"), testClock)

	assert.Equal(t, conciliacion.Record{
		"id": 7, "documentoPersona": "123", "serialEquipo": "ABC", "fechaIngreso": "2024-05-01 08:00:00",
	}, records[0], "el motor no debe mutar sus entradas")
}

// Registro malformado en el snapshot: se ignora sin abortar la conciliación.
func TestEvaluate_RegistroMalformadoNoAborta(t *testing.T) {
	records := []conciliacion.Record{
		nil,
		{"fechaIngreso": 12345, "serialEquipo": nil},
		{"id": 2, "documentoPersona": "123", "serialEquipo": "ABC", "fechaIngreso": "2024-05-01 08:00:00"},
	}
	d := conciliacion.Evaluate(records, scanSalida("123", "ABC"), testClock)
	require.Equal(t, conciliacion.OutcomeCloseExit, d.Outcome)
	assert.Equal(t, 2, d.TargetID)
}
