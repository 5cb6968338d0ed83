package movements

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/unitflow-api/internal/application/dto"
	"github.com/jhoicas/unitflow-api/internal/domain"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
	"github.com/jhoicas/unitflow-api/internal/domain/repository"
)

// UseCase coordinador de traslados y consulta del libro de movimientos.
// Move es la única vía que muta la colocación de una unidad; cada traslado
// exitoso deja exactamente una entrada en el libro con los extremos
// congelados.
type UseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
	now          func() time.Time
}

// NewUseCase construye el coordinador. movementRepo (atado al pool) se usa
// solo para consultas; las inserciones ocurren dentro de txRunner.
func NewUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movementRepo: movementRepo, now: time.Now}
}

// MoveInput entrada para trasladar una unidad.
type MoveInput struct {
	UnitID           string
	TargetDepartment string
	TargetSection    string
	EmployeeID       int64
	MovementType     string
	Notes            string
}

// Move carga la unidad bloqueando su fila, congela el snapshot "from",
// escribe la nueva colocación y añade la entrada del libro, todo en una
// transacción. El grafo de transiciones es permisivo: cualquier destino es
// alcanzable en un paso, pero la sección destino debe pertenecer al
// departamento destino (invariante de partición).
func (uc *UseCase) Move(ctx context.Context, in MoveInput) (*entity.Movement, error) {
	if in.UnitID == "" || in.TargetDepartment == "" || in.TargetSection == "" ||
		in.EmployeeID == 0 || in.MovementType == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPlacement(in.TargetDepartment, in.TargetSection) {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		unitRepo repository.UnitRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloquea la fila de la unidad: traslados concurrentes sobre la misma
		// unidad se serializan y no se pierde ninguna actualización.
		unit, err := unitRepo.GetByIDForUpdate(ctx, in.UnitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrNotFound
		}

		now := uc.now().UTC()
		if err := unitRepo.UpdatePlacement(ctx, unit.ID, in.TargetDepartment, in.TargetSection, now); err != nil {
			return err
		}
		movement := &entity.Movement{
			TransactionID:  uuid.New().String(),
			UnitID:         unit.ID,
			EmployeeID:     in.EmployeeID,
			MovementType:   in.MovementType,
			FromDepartment: unit.CurrentDepartment,
			ToDepartment:   in.TargetDepartment,
			FromSection:    unit.CurrentSection,
			ToSection:      in.TargetSection,
			Notes:          in.Notes,
			Timestamp:      now,
		}
		if err := movementRepo.Create(ctx, movement); err != nil {
			return err
		}
		created = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List consulta el libro con los filtros del request. ErrInvalidInput si una
// fecha no es "YYYY-MM-DD".
func (uc *UseCase) List(ctx context.Context, in dto.MovementFilterRequest) ([]*entity.Movement, error) {
	filter, err := buildFilter(in)
	if err != nil {
		return nil, err
	}
	return uc.movementRepo.List(ctx, filter)
}

// buildFilter normaliza las fechas: dateFrom desde las 00:00:00 y dateTo
// hasta las 23:59:59 del día indicado, para que un "hasta" de solo fecha
// incluya ese día completo.
func buildFilter(in dto.MovementFilterRequest) (repository.MovementFilter, error) {
	filter := repository.MovementFilter{
		UnitID:     in.UnitID,
		EmployeeID: in.EmployeeID,
	}
	if in.DateFrom != "" {
		from, err := time.ParseInLocation("2006-01-02", in.DateFrom, time.UTC)
		if err != nil {
			return repository.MovementFilter{}, domain.ErrInvalidInput
		}
		filter.DateFrom = &from
	}
	if in.DateTo != "" {
		day, err := time.ParseInLocation("2006-01-02", in.DateTo, time.UTC)
		if err != nil {
			return repository.MovementFilter{}, domain.ErrInvalidInput
		}
		to := day.Add(24*time.Hour - time.Second)
		filter.DateTo = &to
	}
	return filter, nil
}
