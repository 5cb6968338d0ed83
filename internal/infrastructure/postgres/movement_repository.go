package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/unitflow-api/internal/domain/entity"
	"github.com/jhoicas/unitflow-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Las filas son solo-inserción: no hay Update ni
// Delete en este adaptador por diseño del libro.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta la entrada y rellena movement.ID con el secuencial asignado.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movements (transaction_id, unit_id, employee_id, movement_type,
			from_department, to_department, from_section, to_section, notes, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		movement.TransactionID, movement.UnitID, movement.EmployeeID, movement.MovementType,
		movement.FromDepartment, movement.ToDepartment, movement.FromSection, movement.ToSection,
		movement.Notes, movement.Timestamp,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List consulta el libro con filtros conjuntivos, uniendo el nombre del
// empleado (LEFT JOIN: el historial sobrevive a empleados eliminados),
// ordenado por timestamp descendente.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `
		SELECT m.id, m.transaction_id, m.unit_id, m.employee_id, m.movement_type,
			m.from_department, m.to_department, m.from_section, m.to_section,
			m.notes, m.timestamp, COALESCE(e.name, '')
		FROM movements m
		LEFT JOIN employees e ON e.id = m.employee_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.UnitID != "" {
		query += fmt.Sprintf(" AND m.unit_id = $%d", pos)
		args = append(args, filter.UnitID)
		pos++
	}
	if filter.EmployeeID != 0 {
		query += fmt.Sprintf(" AND m.employee_id = $%d", pos)
		args = append(args, filter.EmployeeID)
		pos++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND m.timestamp >= $%d", pos)
		args = append(args, *filter.DateFrom)
		pos++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND m.timestamp <= $%d", pos)
		args = append(args, *filter.DateTo)
		pos++
	}
	query += " ORDER BY m.timestamp DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.UnitID, &m.EmployeeID, &m.MovementType,
			&m.FromDepartment, &m.ToDepartment, &m.FromSection, &m.ToSection,
			&m.Notes, &m.Timestamp, &m.EmployeeName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
