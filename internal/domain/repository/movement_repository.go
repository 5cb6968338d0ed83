package repository

import (
	"context"
	"time"

	"github.com/jhoicas/unitflow-api/internal/domain/entity"
)

// MovementFilter filtros conjuntivos (AND) para consultar el libro de
// movimientos. Cero/nil significa "sin filtro". DateTo ya viene normalizado a
// fin de día por el caso de uso.
type MovementFilter struct {
	UnitID     string
	EmployeeID int64
	DateFrom   *time.Time
	DateTo     *time.Time
}

// MovementRepository define el puerto del libro de movimientos: inserción pura
// (solo desde la transacción de traslado) y consulta con el nombre del
// empleado unido.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
}
