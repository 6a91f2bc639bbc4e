package movimientos

import (
	"fmt"
	"sync"

	"github.com/cesge/control-equipos/internal/application/dto"
	"github.com/cesge/control-equipos/internal/domain"
	"github.com/cesge/control-equipos/internal/domain/conciliacion"
	"github.com/cesge/control-equipos/internal/domain/entity"
	"github.com/cesge/control-equipos/internal/domain/repository"
	"github.com/cesge/control-equipos/pkg/logger"
)

// ScanUseCase procesa escaneos de carnet QR en portería: parsea el payload,
// concilia contra el snapshot de movimientos y persiste la decisión.
//
// Dos escaneos concurrentes del mismo serial sobre un snapshot desactualizado
// podrían crear ingresos duplicados o cerrar dos veces el mismo movimiento,
// así que leer-decidir-persistir se serializa por serial de equipo.
type ScanUseCase struct {
	repo   repository.MovimientoRepository
	clock  conciliacion.Clock
	log    *logger.Logger
	centro string // centro de formación por defecto

	mu    sync.Mutex
	locks map[string]*sync.Mutex // un mutex por serial de equipo
}

// NewScanUseCase construye el caso de uso. centroDefault se usa cuando la
// petición no trae centro de formación.
func NewScanUseCase(repo repository.MovimientoRepository, clock conciliacion.Clock, centroDefault string, log *logger.Logger) *ScanUseCase {
	return &ScanUseCase{
		repo:   repo,
		clock:  clock,
		log:    log,
		centro: centroDefault,
		locks:  make(map[string]*sync.Mutex),
	}
}

// ScanInput entrada del caso de uso. DocumentoVigilante viene del JWT del
// usuario autenticado, no del body.
type ScanInput struct {
	Modo               string
	QR                 string
	CentroFormacion    string
	DocumentoVigilante string
	Observaciones      string
}

// Mensajes por resultado, para la pantalla del vigilante.
var mensajes = map[conciliacion.Outcome]string{
	conciliacion.OutcomeInvalidPayload:   "QR inválido: no se pudo leer documento y serial. Escanee de nuevo.",
	conciliacion.OutcomeCreateEntry:      "Ingreso registrado correctamente.",
	conciliacion.OutcomeAlreadyPending:   "El equipo ya registró ingreso hoy y la salida sigue pendiente.",
	conciliacion.OutcomeAlreadyCompleted: "El equipo ya completó ingreso y salida hoy.",
	conciliacion.OutcomeCloseExit:        "Salida registrada correctamente.",
	conciliacion.OutcomeNoPendingMatch:   "No hay ingreso pendiente para este equipo.",
}

// Scan parsea el QR, concilia contra el snapshot y persiste el resultado.
// Los resultados de rechazo (ALREADY_PENDING, NO_PENDING_MATCH, etc.) no son
// errores: se devuelven en ScanResult y el error queda nil.
func (uc *ScanUseCase) Scan(input ScanInput) (*dto.ScanResult, error) {
	payload := conciliacion.ParseQRText(input.QR)

	var mode conciliacion.Mode
	switch input.Modo {
	case "ingreso":
		mode = conciliacion.ModeIngreso
	case "salida":
		mode = conciliacion.ModeSalida
	default:
		return nil, domain.ErrInvalidInput
	}

	centro := input.CentroFormacion
	if centro == "" {
		centro = uc.centro
	}

	scan := conciliacion.ScanEvent{
		Mode:               mode,
		Payload:            payload,
		CentroFormacion:    centro,
		DocumentoVigilante: input.DocumentoVigilante,
		Observaciones:      input.Observaciones,
	}

	// El payload inválido no toca el repositorio; se responde antes de
	// tomar el lock (el serial puede venir vacío).
	if payload.Documento == "" || payload.Serial == "" {
		uc.log.Warn().Str("modo", input.Modo).Msg("scan con payload QR inválido")
		return uc.result(conciliacion.Decision{Outcome: conciliacion.OutcomeInvalidPayload}, payload), nil
	}

	lock := uc.serialLock(payload.Serial)
	lock.Lock()
	defer lock.Unlock()

	records, err := uc.repo.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("cargando snapshot de movimientos: %w", err)
	}

	decision := conciliacion.Evaluate(records, scan, uc.clock)

	switch decision.Outcome {
	case conciliacion.OutcomeCreateEntry:
		m := movimientoFromCreate(decision.Create, uc.clock)
		id, err := uc.repo.Create(m)
		if err != nil {
			return nil, fmt.Errorf("creando ingreso: %w", err)
		}
		uc.log.Info().
			Str("movimiento_id", id).
			Str("documento", payload.Documento).
			Str("serial", payload.Serial).
			Msg("ingreso registrado")
		res := uc.result(decision, payload)
		res.MovimientoID = id
		return res, nil

	case conciliacion.OutcomeCloseExit:
		id, _ := conciliacion.Normalize(decision.TargetID)
		if err := uc.repo.RegistrarSalida(id, conciliacion.TipoPermanente, uc.clock.Now()); err != nil {
			return nil, fmt.Errorf("registrando salida de movimiento %s: %w", id, err)
		}
		uc.log.Info().
			Str("movimiento_id", id).
			Str("documento", payload.Documento).
			Str("serial", payload.Serial).
			Msg("salida registrada")
		res := uc.result(decision, payload)
		res.MovimientoID = id
		return res, nil

	default:
		uc.log.Info().
			Str("outcome", string(decision.Outcome)).
			Str("documento", payload.Documento).
			Str("serial", payload.Serial).
			Msg("scan sin efecto")
		return uc.result(decision, payload), nil
	}
}

func (uc *ScanUseCase) result(d conciliacion.Decision, p conciliacion.QRPayload) *dto.ScanResult {
	return &dto.ScanResult{
		Outcome:   string(d.Outcome),
		Mensaje:   mensajes[d.Outcome],
		Documento: p.Documento,
		Serial:    p.Serial,
		Nombre:    p.Nombre,
	}
}

// serialLock devuelve el mutex del serial, creándolo si no existe.
// Los mutexes no se liberan nunca; la cardinalidad de seriales es acotada.
func (uc *ScanUseCase) serialLock(serial string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	l, ok := uc.locks[serial]
	if !ok {
		l = &sync.Mutex{}
		uc.locks[serial] = l
	}
	return l
}

// movimientoFromCreate convierte el payload de creación del motor en la
// entidad que persiste el repositorio.
func movimientoFromCreate(create conciliacion.Record, clock conciliacion.Clock) *entity.Movimiento {
	get := func(keys ...string) string {
		s, _ := conciliacion.Normalize(conciliacion.GetField(create, keys...))
		return s
	}
	return &entity.Movimiento{
		DocumentoPersona:   get(conciliacion.KeysDocumento...),
		SerialEquipo:       get(conciliacion.KeysSerial...),
		TipoIngreso:        get(conciliacion.KeysTipoIngreso...),
		FechaIngreso:       clock.Now(),
		CentroFormacion:    get("centroFormacion", "centro_formacion"),
		DocumentoVigilante: get("documentoVigilante", "documento_vigilante"),
		Observaciones:      get("observaciones"),
	}
}
