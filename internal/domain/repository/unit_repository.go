package repository

import (
	"context"
	"time"

	"github.com/jhoicas/unitflow-api/internal/domain/entity"
)

// UnitRepository define el puerto de persistencia del registro de unidades.
// Las implementaciones devuelven domain.ErrDuplicate en Create si el ID ya
// existe y (nil, nil) en los Get cuando la unidad no está.
type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	GetByID(ctx context.Context, id string) (*entity.Unit, error)
	// GetByIDForUpdate carga la unidad bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Unit, error)
	UpdateType(ctx context.Context, id, unitType string) error
	UpdatePlacement(ctx context.Context, id, department, section string, at time.Time) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Unit, error)
}
