package repository

import (
	"context"

	"github.com/jhoicas/unitflow-api/internal/domain/entity"
)

// EmployeeRepository define el puerto del directorio de empleados.
// Create y Update devuelven domain.ErrDuplicate si el username ya existe;
// los Get devuelven (nil, nil) cuando el empleado no está.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	GetByUsername(ctx context.Context, username string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Employee, error)
}
