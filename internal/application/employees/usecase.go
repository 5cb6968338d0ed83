package employees

import (
	"context"

	"github.com/jhoicas/unitflow-api/internal/application/dto"
	"github.com/jhoicas/unitflow-api/internal/domain"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
	"github.com/jhoicas/unitflow-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UseCase directorio de empleados: alta, actualización, baja y listado.
type UseCase struct {
	employeeRepo repository.EmployeeRepository
}

// NewUseCase construye el caso de uso del directorio.
func NewUseCase(employeeRepo repository.EmployeeRepository) *UseCase {
	return &UseCase{employeeRepo: employeeRepo}
}

// Create da de alta un empleado; la contraseña se hashea con bcrypt.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*entity.Employee, error) {
	if in.Name == "" || in.Username == "" || in.Password == "" || in.Department == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	employee := &entity.Employee{
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: string(hash),
		Department:   in.Department,
		WorkPage:     in.WorkPage,
	}
	if err := uc.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Update actualiza los datos; si Password viene vacío se conserva la
// credencial almacenada.
func (uc *UseCase) Update(ctx context.Context, id int64, in dto.UpdateEmployeeRequest) error {
	if in.Name == "" || in.Username == "" || in.Department == "" {
		return domain.ErrInvalidInput
	}
	employee := &entity.Employee{
		ID:         id,
		Name:       in.Name,
		Username:   in.Username,
		Department: in.Department,
		WorkPage:   in.WorkPage,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		employee.PasswordHash = string(hash)
	}
	return uc.employeeRepo.Update(ctx, employee)
}

// Delete da de baja un empleado. La identidad administrativa raíz es
// intocable: debe existir siempre al menos un administrador.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	employee, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	if employee.Protected() {
		return domain.ErrForbidden
	}
	return uc.employeeRepo.Delete(ctx, id)
}

// List devuelve el directorio sin credenciales.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Employee, error) {
	return uc.employeeRepo.List(ctx)
}

// RootAdmin datos del administrador sembrado en el arranque.
type RootAdmin struct {
	Name     string
	Username string
	Password string
}

// EnsureRootAdmin siembra la identidad administrativa raíz si el directorio
// no la tiene. Idempotente; se llama en el arranque después de migrar.
func (uc *UseCase) EnsureRootAdmin(ctx context.Context, admin RootAdmin) error {
	existing, err := uc.employeeRepo.GetByUsername(ctx, admin.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.employeeRepo.Create(ctx, &entity.Employee{
		Name:         admin.Name,
		Username:     admin.Username,
		PasswordHash: string(hash),
		Department:   entity.DepartmentManagement,
		WorkPage:     "admin.html",
	})
}
