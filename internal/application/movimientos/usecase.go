package movimientos

import (
	"fmt"

	"github.com/cesge/control-equipos/internal/application/dto"
	"github.com/cesge/control-equipos/internal/domain"
	"github.com/cesge/control-equipos/internal/domain/conciliacion"
	"github.com/cesge/control-equipos/internal/domain/entity"
	"github.com/cesge/control-equipos/internal/domain/repository"
	"github.com/cesge/control-equipos/pkg/logger"
)

// UseCase operaciones de consulta y registro manual de movimientos.
// El registro por QR vive en ScanUseCase.
type UseCase struct {
	repo   repository.MovimientoRepository
	clock  conciliacion.Clock
	log    *logger.Logger
	centro string
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.MovimientoRepository, clock conciliacion.Clock, centroDefault string, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, clock: clock, log: log, centro: centroDefault}
}

// List devuelve movimientos paginados, más recientes primero.
func (uc *UseCase) List(limit, offset int) ([]dto.MovimientoResponse, error) {
	items, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listando movimientos: %w", err)
	}
	out := make([]dto.MovimientoResponse, 0, len(items))
	for _, m := range items {
		out = append(out, dto.MovimientoToResponse(m))
	}
	return out, nil
}

// GetByID devuelve un movimiento por id.
func (uc *UseCase) GetByID(id string) (*dto.MovimientoResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.MovimientoToResponse(m)
	return &resp, nil
}

// CrearIngreso registra un ingreso manual (sin QR, digitado por el vigilante).
// A diferencia del flujo QR, el tipo por defecto es Ocasional: el registro
// manual se usa para visitantes y equipos sin carnet.
func (uc *UseCase) CrearIngreso(req dto.CrearIngresoRequest, documentoVigilante string) (*dto.MovimientoResponse, error) {
	if req.DocumentoPersona == "" || req.SerialEquipo == "" {
		return nil, domain.ErrInvalidInput
	}

	tipo := conciliacion.TipoOcasional
	switch req.TipoIngreso {
	case "":
	case "ocasional":
		tipo = conciliacion.TipoOcasional
	case "permanente":
		tipo = conciliacion.TipoPermanente
	default:
		return nil, domain.ErrInvalidInput
	}

	centro := req.CentroFormacion
	if centro == "" {
		centro = uc.centro
	}

	m := &entity.Movimiento{
		DocumentoPersona:   req.DocumentoPersona,
		SerialEquipo:       req.SerialEquipo,
		TipoIngreso:        tipo,
		FechaIngreso:       uc.clock.Now(),
		CentroFormacion:    centro,
		DocumentoVigilante: documentoVigilante,
		Observaciones:      req.Observaciones,
	}

	id, err := uc.repo.Create(m)
	if err != nil {
		return nil, fmt.Errorf("creando ingreso manual: %w", err)
	}
	m.ID = id

	uc.log.Info().
		Str("movimiento_id", id).
		Str("documento", m.DocumentoPersona).
		Str("serial", m.SerialEquipo).
		Msg("ingreso manual registrado")

	resp := dto.MovimientoToResponse(m)
	return &resp, nil
}

// RegistrarSalida cierra un movimiento concreto por id (flujo manual).
// Falla con ErrMovimientoCerrado si ya tiene salida registrada.
func (uc *UseCase) RegistrarSalida(id string, req dto.RegistrarSalidaRequest) (*dto.MovimientoResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !m.Pendiente() {
		return nil, domain.ErrMovimientoCerrado
	}

	tipo := conciliacion.TipoOcasional
	switch req.TipoSalida {
	case "":
	case "ocasional":
		tipo = conciliacion.TipoOcasional
	case "permanente":
		tipo = conciliacion.TipoPermanente
	default:
		return nil, domain.ErrInvalidInput
	}

	now := uc.clock.Now()
	if err := uc.repo.RegistrarSalida(id, tipo, now); err != nil {
		return nil, fmt.Errorf("registrando salida de movimiento %s: %w", id, err)
	}

	m.TipoSalida = tipo
	m.FechaSalida = &now

	uc.log.Info().
		Str("movimiento_id", id).
		Str("serial", m.SerialEquipo).
		Msg("salida manual registrada")

	resp := dto.MovimientoToResponse(m)
	return &resp, nil
}

// Anular elimina un movimiento registrado por error. Solo admin.
func (uc *UseCase) Anular(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("anulando movimiento %s: %w", id, err)
	}
	uc.log.Warn().Str("movimiento_id", id).Msg("movimiento anulado")
	return nil
}

// Resumen devuelve los contadores del día para el tablero de portería.
func (uc *UseCase) Resumen() (*dto.ResumenResponse, error) {
	hoy := uc.clock.Today()
	r, err := uc.repo.Resumen(hoy)
	if err != nil {
		return nil, fmt.Errorf("calculando resumen: %w", err)
	}
	return &dto.ResumenResponse{
		Pendientes:  r.Pendientes,
		IngresosHoy: r.IngresosHoy,
		SalidasHoy:  r.SalidasHoy,
		Total:       r.Total,
		Fecha:       hoy,
	}, nil
}
