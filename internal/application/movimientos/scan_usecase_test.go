package movimientos_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesge/control-equipos/internal/application/movimientos"
	"github.com/cesge/control-equipos/internal/domain/conciliacion"
	"github.com/cesge/control-equipos/internal/domain/entity"
	"github.com/cesge/control-equipos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeClock reloj fijo para que "hoy" sea determinista en los tests.
type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }
func (c fakeClock) Today() string  { return c.now.Format("2006-01-02") }

// fakeMovimientoRepo repositorio en memoria. Snapshot devuelve los mapas tal
// cual se configuraron; Create y RegistrarSalida registran lo que se les pidió.
type fakeMovimientoRepo struct {
	snapshot []conciliacion.Record

	created      []*entity.Movimiento
	salidas      []salidaCall
	snapshotErr  error
	nextCreateID string
}

type salidaCall struct {
	id         string
	tipoSalida string
}

func (f *fakeMovimientoRepo) Snapshot() ([]conciliacion.Record, error) {
	return f.snapshot, f.snapshotErr
}

func (f *fakeMovimientoRepo) Create(m *entity.Movimiento) (string, error) {
	f.created = append(f.created, m)
	if f.nextCreateID != "" {
		return f.nextCreateID, nil
	}
	return "mov-1", nil
}

func (f *fakeMovimientoRepo) RegistrarSalida(id, tipoSalida string, _ time.Time) error {
	f.salidas = append(f.salidas, salidaCall{id: id, tipoSalida: tipoSalida})
	return nil
}

func (f *fakeMovimientoRepo) GetByID(string) (*entity.Movimiento, error) { return nil, nil }
func (f *fakeMovimientoRepo) List(int, int) ([]*entity.Movimiento, error) {
	return nil, nil
}
func (f *fakeMovimientoRepo) Delete(string) error { return nil }
func (f *fakeMovimientoRepo) Resumen(string) (*entity.ResumenMovimientos, error) {
	return &entity.ResumenMovimientos{}, nil
}

func newScanUC(repo *fakeMovimientoRepo, clock fakeClock) *movimientos.ScanUseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return movimientos.NewScanUseCase(repo, clock, "CESGE", log)
}

var testNow = time.Date(2024, 5, 2, 10, 30, 0, 0, time.Local)

const qrValido = "Nombre: Ana Rojas\nDocumento: 1002003004\nSerial: SN-777"

// ──────────────────────────────────────────────────────────────────────────────
// Ingreso
// ──────────────────────────────────────────────────────────────────────────────

func TestScan_IngresoNuevo_CreaMovimiento(t *testing.T) {
	repo := &fakeMovimientoRepo{nextCreateID: "mov-42"}
	uc := newScanUC(repo, fakeClock{now: testNow})

	res, err := uc.Scan(movimientos.ScanInput{
		Modo:               "ingreso",
		QR:                 qrValido,
		DocumentoVigilante: "555",
	})
	require.NoError(t, err)

	assert.Equal(t, "CREATE_ENTRY", res.Outcome)
	assert.Equal(t, "mov-42", res.MovimientoID)
	assert.Equal(t, "1002003004", res.Documento)
	assert.Equal(t, "SN-777", res.Serial)
	assert.Equal(t, "Ana Rojas", res.Nombre)

	require.Len(t, repo.created, 1)
	m := repo.created[0]
	assert.Equal(t, "1002003004", m.DocumentoPersona)
	assert.Equal(t, "SN-777", m.SerialEquipo)
	assert.Equal(t, conciliacion.TipoPermanente, m.TipoIngreso, "el flujo QR registra tipo Permanente")
	assert.Equal(t, "CESGE", m.CentroFormacion, "sin centro en la petición se usa el default")
	assert.Equal(t, "555", m.DocumentoVigilante)
	assert.True(t, m.FechaIngreso.Equal(testNow))
}

func TestScan_IngresoRepetidoHoy_NoCreaNada(t *testing.T) {
	repo := &fakeMovimientoRepo{
		snapshot: []conciliacion.Record{
			{
				"id":                1,
				"documento_persona": "1002003004",
				"serial_equipo":     "SN-777",
				"fecha_ingreso":     "2024-05-02 08:00:00",
				"fecha_salida":      nil,
			},
		},
	}
	uc := newScanUC(repo, fakeClock{now: testNow})

	res, err := uc.Scan(movimientos.ScanInput{Modo: "ingreso", QR: qrValido})
	require.NoError(t, err)

	assert.Equal(t, "ALREADY_PENDING", res.Outcome)
	assert.Empty(t, repo.created, "un rechazo no debe persistir nada")
}

func TestScan_IngresoTrasCerrarMovimientoDeVariosDias_AlreadyCompleted(t *testing.T) {
	// Ingreso de hace dos días cerrado hoy: el snapshot debe incluirlo para
	// que el reingreso del mismo equipo se rechace como ciclo ya completado.
	repo := &fakeMovimientoRepo{
		snapshot: []conciliacion.Record{
			{
				"id":                3,
				"documento_persona": "1002003004",
				"serial_equipo":     "SN-777",
				"fecha_ingreso":     "2024-04-30 08:00:00",
				"tipo_salida":       "Permanente",
				"fecha_salida":      "2024-05-02 09:15:00",
			},
		},
	}
	uc := newScanUC(repo, fakeClock{now: testNow})

	res, err := uc.Scan(movimientos.ScanInput{Modo: "ingreso", QR: qrValido})
	require.NoError(t, err)

	assert.Equal(t, "ALREADY_COMPLETED", res.Outcome)
	assert.Empty(t, repo.created, "un ciclo completado hoy no debe abrir otro ingreso")
}

// ──────────────────────────────────────────────────────────────────────────────
// Salida
// ──────────────────────────────────────────────────────────────────────────────

func TestScan_SalidaConPendiente_CierraElMovimiento(t *testing.T) {
	repo := &fakeMovimientoRepo{
		snapshot: []conciliacion.Record{
			{
				"id":                7,
				"documento_persona": "1002003004",
				"serial_equipo":     "SN-777",
				"fecha_ingreso":     "2024-05-02 08:00:00",
				"fecha_salida":      nil,
			},
		},
	}
	uc := newScanUC(repo, fakeClock{now: testNow})

	res, err := uc.Scan(movimientos.ScanInput{Modo: "salida", QR: qrValido})
	require.NoError(t, err)

	assert.Equal(t, "CLOSE_EXIT", res.Outcome)
	assert.Equal(t, "7", res.MovimientoID)

	require.Len(t, repo.salidas, 1)
	assert.Equal(t, "7", repo.salidas[0].id)
	assert.Equal(t, conciliacion.TipoPermanente, repo.salidas[0].tipoSalida)
}

func TestScan_SalidaSinPendiente_NoPersiste(t *testing.T) {
	repo := &fakeMovimientoRepo{}
	uc := newScanUC(repo, fakeClock{now: testNow})

	res, err := uc.Scan(movimientos.ScanInput{Modo: "salida", QR: qrValido})
	require.NoError(t, err)

	assert.Equal(t, "NO_PENDING_MATCH", res.Outcome)
	assert.Empty(t, repo.salidas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas inválidas
// ──────────────────────────────────────────────────────────────────────────────

func TestScan_QRSinSerial_EsInvalidPayloadSinTocarRepo(t *testing.T) {
	repo := &fakeMovimientoRepo{snapshotErr: assert.AnError}
	uc := newScanUC(repo, fakeClock{now: testNow})

	res, err := uc.Scan(movimientos.ScanInput{
		Modo: "ingreso",
		QR:   "Nombre: Ana Rojas\nDocumento: 1002003004",
	})
	require.NoError(t, err, "payload inválido responde antes de cargar el snapshot")

	assert.Equal(t, "INVALID_PAYLOAD", res.Outcome)
	assert.NotEmpty(t, res.Mensaje)
}

func TestScan_ModoDesconocido_EsError(t *testing.T) {
	uc := newScanUC(&fakeMovimientoRepo{}, fakeClock{now: testNow})

	_, err := uc.Scan(movimientos.ScanInput{Modo: "transferencia", QR: qrValido})
	require.Error(t, err)
}
