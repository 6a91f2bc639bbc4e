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

var _ repository.PersonaRepository = (*PersonaRepo)(nil)

// PersonaRepo implementación del puerto PersonaRepository sobre PostgreSQL.
type PersonaRepo struct {
	pool *pgxpool.Pool
}

// NewPersonaRepository construye el adaptador de persistencia para personas.
func NewPersonaRepository(pool *pgxpool.Pool) *PersonaRepo {
	return &PersonaRepo{pool: pool}
}

// Create persiste una nueva persona.
func (r *PersonaRepo) Create(p *entity.Persona) error {
	query := `
		INSERT INTO personas (id, documento, nombre, apellido, tipo_persona, telefono, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID, p.Documento, p.Nombre, p.Apellido, p.TipoPersona, p.Telefono, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert persona: %w", err)
	}
	return nil
}

// GetByDocumento obtiene una persona por documento. Devuelve (nil, nil) si no existe.
func (r *PersonaRepo) GetByDocumento(documento string) (*entity.Persona, error) {
	query := `
		SELECT id, documento, nombre, apellido, tipo_persona, telefono, created_at, updated_at
		FROM personas WHERE documento = $1`
	var p entity.Persona
	err := r.pool.QueryRow(context.Background(), query, documento).Scan(
		&p.ID, &p.Documento, &p.Nombre, &p.Apellido, &p.TipoPersona, &p.Telefono, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get persona: %w", err)
	}
	return &p, nil
}

// List devuelve personas paginadas ordenadas por nombre.
func (r *PersonaRepo) List(limit, offset int) ([]*entity.Persona, error) {
	query := `
		SELECT id, documento, nombre, apellido, tipo_persona, telefono, created_at, updated_at
		FROM personas ORDER BY nombre, apellido LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query personas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Persona
	for rows.Next() {
		var p entity.Persona
		if err := rows.Scan(&p.ID, &p.Documento, &p.Nombre, &p.Apellido, &p.TipoPersona, &p.Telefono, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan persona: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Update modifica una persona existente.
func (r *PersonaRepo) Update(p *entity.Persona) error {
	query := `
		UPDATE personas
		SET nombre = $2, apellido = $3, tipo_persona = $4, telefono = $5, updated_at = $6
		WHERE documento = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		p.Documento, p.Nombre, p.Apellido, p.TipoPersona, p.Telefono, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update persona: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una persona por documento.
func (r *PersonaRepo) Delete(documento string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM personas WHERE documento = $1`, documento)
	if err != nil {
		return fmt.Errorf("delete persona: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
