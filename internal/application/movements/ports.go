package movements

import (
	"context"

	"github.com/jhoicas/unitflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de colocación
// y la entrada del libro se confirmen juntas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		unitRepo repository.UnitRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
