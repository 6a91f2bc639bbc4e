package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cesge/control-equipos/internal/domain"
	"github.com/cesge/control-equipos/internal/domain/entity"
	"github.com/cesge/control-equipos/internal/domain/repository"
)

var _ repository.EquipoRepository = (*EquipoRepo)(nil)

// EquipoRepo implementación del puerto EquipoRepository sobre PostgreSQL.
type EquipoRepo struct {
	pool *pgxpool.Pool
}

// NewEquipoRepository construye el adaptador de persistencia para equipos.
func NewEquipoRepository(pool *pgxpool.Pool) *EquipoRepo {
	return &EquipoRepo{pool: pool}
}

// Create persiste un nuevo equipo.
func (r *EquipoRepo) Create(e *entity.Equipo) error {
	query := `
		INSERT INTO equipos (id, serial, marca, tipo_equipo, documento_persona, caracteristicas, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Serial, e.Marca, e.TipoEquipo, e.DocumentoPersona, e.Caracteristicas, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipo: %w", err)
	}
	return nil
}

// GetBySerial obtiene un equipo por serial. Devuelve (nil, nil) si no existe.
func (r *EquipoRepo) GetBySerial(serial string) (*entity.Equipo, error) {
	query := `
		SELECT id, serial, marca, tipo_equipo, documento_persona, caracteristicas, created_at, updated_at
		FROM equipos WHERE serial = $1`
	var e entity.Equipo
	err := r.pool.QueryRow(context.Background(), query, serial).Scan(
		&e.ID, &e.Serial, &e.Marca, &e.TipoEquipo, &e.DocumentoPersona, &e.Caracteristicas, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipo: %w", err)
	}
	return &e, nil
}

// List devuelve equipos paginados ordenados por serial.
func (r *EquipoRepo) List(limit, offset int) ([]*entity.Equipo, error) {
	query := `
		SELECT id, serial, marca, tipo_equipo, documento_persona, caracteristicas, created_at, updated_at
		FROM equipos ORDER BY serial LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query equipos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Equipo
	for rows.Next() {
		var e entity.Equipo
		if err := rows.Scan(&e.ID, &e.Serial, &e.Marca, &e.TipoEquipo, &e.DocumentoPersona, &e.Caracteristicas, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan equipo: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// Update modifica un equipo existente.
func (r *EquipoRepo) Update(e *entity.Equipo) error {
	query := `
		UPDATE equipos
		SET marca = $2, tipo_equipo = $3, documento_persona = $4, caracteristicas = $5, updated_at = $6
		WHERE serial = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		e.Serial, e.Marca, e.TipoEquipo, e.DocumentoPersona, e.Caracteristicas, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update equipo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un equipo por serial.
func (r *EquipoRepo) Delete(serial string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM equipos WHERE serial = $1`, serial)
	if err != nil {
		return fmt.Errorf("delete equipo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
