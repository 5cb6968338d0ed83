package units

import (
	"context"
	"time"

	"github.com/jhoicas/unitflow-api/internal/domain"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
	"github.com/jhoicas/unitflow-api/internal/domain/repository"
)

// UseCase registro de unidades: alta, consulta, corrección de tipo y baja.
// La colocación solo la muta el coordinador de traslados (movements.UseCase).
type UseCase struct {
	unitRepo repository.UnitRepository
	now      func() time.Time
}

// NewUseCase construye el caso de uso del registro.
func NewUseCase(unitRepo repository.UnitRepository) *UseCase {
	return &UseCase{unitRepo: unitRepo, now: time.Now}
}

// Register da de alta una unidad en la colocación inicial
// (operations, ready_for_loading). ErrDuplicate si el ID ya existe.
func (uc *UseCase) Register(ctx context.Context, id, unitType string) (*entity.Unit, error) {
	if id == "" || unitType == "" {
		return nil, domain.ErrInvalidInput
	}
	unit := &entity.Unit{
		ID:                id,
		Type:              unitType,
		CurrentDepartment: entity.DefaultDepartment,
		CurrentSection:    entity.DefaultSection,
		LastMovementTime:  uc.now().UTC(),
	}
	if err := uc.unitRepo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// Get obtiene una unidad. ErrNotFound si no existe.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Unit, error) {
	unit, err := uc.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	return unit, nil
}

// UpdateType corrige la clasificación sin afectar colocación ni historial.
func (uc *UseCase) UpdateType(ctx context.Context, id, unitType string) error {
	if id == "" || unitType == "" {
		return domain.ErrInvalidInput
	}
	return uc.unitRepo.UpdateType(ctx, id, unitType)
}

// Deregister da de baja la unidad. Su historial en el libro queda intacto.
func (uc *UseCase) Deregister(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.unitRepo.Delete(ctx, id)
}

// List devuelve las unidades ordenadas por último movimiento descendente.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Unit, error) {
	return uc.unitRepo.List(ctx)
}
