package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cesge/control-equipos/internal/domain"
	"github.com/cesge/control-equipos/internal/domain/conciliacion"
	"github.com/cesge/control-equipos/internal/domain/entity"
	"github.com/cesge/control-equipos/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL.
type MovimientoRepo struct {
	pool *pgxpool.Pool
}

// NewMovimientoRepository construye el adaptador de persistencia para movimientos.
func NewMovimientoRepository(pool *pgxpool.Pool) *MovimientoRepo {
	return &MovimientoRepo{pool: pool}
}

const movimientoColumns = `id, documento_persona, serial_equipo, tipo_ingreso, fecha_ingreso,
		tipo_salida, fecha_salida, centro_formacion, documento_vigilante, observaciones, created_at`

// Snapshot devuelve los movimientos relevantes para conciliar como mapas con
// claves snake_case: los pendientes (sin salida), los ingresados hoy y los
// cerrados hoy según el reloj de la base. Las salidas de hoy importan aunque
// el ingreso sea de días atrás: sin ellas un reingreso tras cerrar un
// movimiento de varios días se registraría como ingreso nuevo en vez de
// rechazarse como ciclo ya completado. CURRENT_DATE corre en la zona horaria
// del servidor de base de datos; debe coincidir con la zona del Clock
// inyectado en el caso de uso para que "hoy" sea el mismo día en ambos lados.
func (r *MovimientoRepo) Snapshot() ([]conciliacion.Record, error) {
	query := `
		SELECT id, documento_persona, serial_equipo, tipo_ingreso, fecha_ingreso, tipo_salida, fecha_salida
		FROM movimientos
		WHERE fecha_salida IS NULL OR fecha_ingreso >= CURRENT_DATE OR fecha_salida >= CURRENT_DATE
		ORDER BY fecha_ingreso DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("query snapshot movimientos: %w", err)
	}
	defer rows.Close()

	var records []conciliacion.Record
	for rows.Next() {
		var (
			id, documento, serial string
			tipoIngreso           *string
			fechaIngreso          time.Time
			tipoSalida            *string
			fechaSalida           *time.Time
		)
		if err := rows.Scan(&id, &documento, &serial, &tipoIngreso, &fechaIngreso, &tipoSalida, &fechaSalida); err != nil {
			return nil, fmt.Errorf("scan snapshot movimientos: %w", err)
		}
		rec := conciliacion.Record{
			"id":                id,
			"documento_persona": documento,
			"serial_equipo":     serial,
			"fecha_ingreso":     fechaIngreso,
		}
		if tipoIngreso != nil {
			rec["tipo_ingreso"] = *tipoIngreso
		}
		if tipoSalida != nil {
			rec["tipo_salida"] = *tipoSalida
		}
		if fechaSalida != nil {
			rec["fecha_salida"] = *fechaSalida
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar snapshot movimientos: %w", err)
	}
	return records, nil
}

// Create persiste un nuevo ingreso y devuelve su id.
func (r *MovimientoRepo) Create(m *entity.Movimiento) (string, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO movimientos (id, documento_persona, serial_equipo, tipo_ingreso, fecha_ingreso,
			centro_formacion, documento_vigilante, observaciones, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.DocumentoPersona, m.SerialEquipo, m.TipoIngreso, m.FechaIngreso,
		m.CentroFormacion, m.DocumentoVigilante, m.Observaciones, m.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert movimiento: %w", err)
	}
	return m.ID, nil
}

// RegistrarSalida cierra un movimiento pendiente. El filtro fecha_salida IS NULL
// hace el cierre idempotente: un segundo intento sobre un movimiento ya cerrado
// devuelve ErrMovimientoCerrado en lugar de pisar la salida original.
func (r *MovimientoRepo) RegistrarSalida(id, tipoSalida string, fechaSalida time.Time) error {
	query := `
		UPDATE movimientos
		SET tipo_salida = $2, fecha_salida = $3
		WHERE id = $1 AND fecha_salida IS NULL`
	tag, err := r.pool.Exec(context.Background(), query, id, tipoSalida, fechaSalida)
	if err != nil {
		return fmt.Errorf("update salida movimiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(id); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrMovimientoCerrado
	}
	return nil
}

// GetByID obtiene un movimiento por id. Devuelve ErrNotFound si no existe.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos WHERE id = $1`
	m, err := scanMovimiento(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// List devuelve movimientos paginados, más recientes primero.
func (r *MovimientoRepo) List(limit, offset int) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + `
		FROM movimientos
		ORDER BY fecha_ingreso DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query movimientos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Movimiento
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Delete elimina un movimiento.
func (r *MovimientoRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM movimientos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Resumen calcula los contadores del día (hoy en formato YYYY-MM-DD).
func (r *MovimientoRepo) Resumen(hoy string) (*entity.ResumenMovimientos, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE fecha_salida IS NULL)                 AS pendientes,
			COUNT(*) FILTER (WHERE fecha_ingreso::date = $1::date)       AS ingresos_hoy,
			COUNT(*) FILTER (WHERE fecha_salida::date = $1::date)        AS salidas_hoy,
			COUNT(*)                                                     AS total
		FROM movimientos`
	var res entity.ResumenMovimientos
	err := r.pool.QueryRow(context.Background(), query, hoy).Scan(
		&res.Pendientes, &res.IngresosHoy, &res.SalidasHoy, &res.Total,
	)
	if err != nil {
		return nil, fmt.Errorf("resumen movimientos: %w", err)
	}
	return &res, nil
}

func scanMovimiento(row pgx.Row) (*entity.Movimiento, error) {
	var (
		m           entity.Movimiento
		tipoIngreso *string
		tipoSalida  *string
		centro      *string
		vigilante   *string
		obs         *string
	)
	err := row.Scan(
		&m.ID, &m.DocumentoPersona, &m.SerialEquipo, &tipoIngreso, &m.FechaIngreso,
		&tipoSalida, &m.FechaSalida, &centro, &vigilante, &obs, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if tipoIngreso != nil {
		m.TipoIngreso = *tipoIngreso
	}
	if tipoSalida != nil {
		m.TipoSalida = *tipoSalida
	}
	if centro != nil {
		m.CentroFormacion = *centro
	}
	if vigilante != nil {
		m.DocumentoVigilante = *vigilante
	}
	if obs != nil {
		m.Observaciones = *obs
	}
	return &m, nil
}
