package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/unitflow-api/internal/domain"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
	"github.com/jhoicas/unitflow-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del registro de unidades sobre PostgreSQL (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create registra una unidad. Devuelve domain.ErrDuplicate si el ID ya existe.
func (r *UnitRepo) Create(ctx context.Context, unit *entity.Unit) error {
	query := `
		INSERT INTO units (id, type, current_department, current_section, last_movement_time)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		unit.ID, unit.Type, unit.CurrentDepartment, unit.CurrentSection, unit.LastMovementTime,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID. Devuelve (nil, nil) si no existe.
func (r *UnitRepo) GetByID(ctx context.Context, id string) (*entity.Unit, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate obtiene la unidad bloqueando su fila (SELECT FOR UPDATE),
// para que traslados concurrentes sobre la misma unidad se serialicen y el
// snapshot "from" se tome de un pre-estado consistente.
func (r *UnitRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Unit, error) {
	return r.get(ctx, id, true)
}

func (r *UnitRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.Unit, error) {
	query := `
		SELECT id, type, current_department, current_section, last_movement_time
		FROM units WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var u entity.Unit
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Type, &u.CurrentDepartment, &u.CurrentSection, &u.LastMovementTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// UpdateType corrige la clasificación de la unidad sin tocar su colocación ni
// last_movement_time (no es un movimiento). ErrNotFound si la unidad no existe.
func (r *UnitRepo) UpdateType(ctx context.Context, id, unitType string) error {
	tag, err := r.q.Exec(ctx, `UPDATE units SET type = $1 WHERE id = $2`, unitType, id)
	if err != nil {
		return fmt.Errorf("update unit type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePlacement escribe la nueva colocación y marca last_movement_time.
// Solo lo llama el coordinador de traslados dentro de su transacción.
func (r *UnitRepo) UpdatePlacement(ctx context.Context, id, department, section string, at time.Time) error {
	query := `
		UPDATE units
		SET current_department = $1, current_section = $2, last_movement_time = $3
		WHERE id = $4`
	tag, err := r.q.Exec(ctx, query, department, section, at, id)
	if err != nil {
		return fmt.Errorf("update unit placement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete da de baja la unidad. Las entradas del libro que la referencian se
// conservan (referencia débil, historial de auditoría).
func (r *UnitRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las unidades ordenadas por último movimiento descendente.
func (r *UnitRepo) List(ctx context.Context) ([]*entity.Unit, error) {
	query := `
		SELECT id, type, current_department, current_section, last_movement_time
		FROM units ORDER BY last_movement_time DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Type, &u.CurrentDepartment, &u.CurrentSection, &u.LastMovementTime); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
