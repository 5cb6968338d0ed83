package employees_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/unitflow-api/internal/application/dto"
	"github.com/jhoicas/unitflow-api/internal/application/employees"
	"github.com/jhoicas/unitflow-api/internal/domain"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
)

type fakeEmployeeRepo struct {
	byID   map[int64]*entity.Employee
	nextID int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[int64]*entity.Employee{}, nextID: 1}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *entity.Employee) error {
	for _, e := range r.byID {
		if e.Username == employee.Username {
			return domain.ErrDuplicate
		}
	}
	employee.ID = r.nextID
	r.nextID++
	copied := *employee
	r.byID[employee.ID] = &copied
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEmployeeRepo) GetByUsername(_ context.Context, username string) (*entity.Employee, error) {
	for _, e := range r.byID {
		if e.Username == username {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, employee *entity.Employee) error {
	stored, ok := r.byID[employee.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Name = employee.Name
	stored.Username = employee.Username
	stored.Department = employee.Department
	stored.WorkPage = employee.WorkPage
	if employee.PasswordHash != "" {
		stored.PasswordHash = employee.PasswordHash
	}
	return nil
}

func (r *fakeEmployeeRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	e, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.PasswordHash = passwordHash
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.byID {
		copied := *e
		copied.PasswordHash = ""
		out = append(out, &copied)
	}
	return out, nil
}

func TestCreate_HasheaPassword(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := employees.NewUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{
		Name:       "Azam",
		Username:   "azam",
		Password:   "azam123",
		Department: entity.DepartmentOperations,
		WorkPage:   "operations.html",
	})
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), created.ID)
	assert.NotEqual(t, "azam123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("azam123")))
}

func TestCreate_UsernameDuplicado(t *testing.T) {
	uc := employees.NewUseCase(newFakeEmployeeRepo())

	in := dto.CreateEmployeeRequest{Name: "Azam", Username: "azam", Password: "x", Department: entity.DepartmentOperations}
	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Actualizar sin password conserva la credencial almacenada.
func TestUpdate_SinPasswordConservaCredencial(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := employees.NewUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{
		Name: "Azam", Username: "azam", Password: "azam123", Department: entity.DepartmentOperations,
	})
	require.NoError(t, err)
	before, _ := repo.GetByID(context.Background(), created.ID)

	err = uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{
		Name: "Azam A.", Username: "azam", Department: entity.DepartmentTechnical,
	})
	require.NoError(t, err)

	after, _ := repo.GetByID(context.Background(), created.ID)
	assert.Equal(t, "Azam A.", after.Name)
	assert.Equal(t, entity.DepartmentTechnical, after.Department)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

// La identidad administrativa raíz no puede eliminarse.
func TestDelete_AdminRaizProtegido(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := employees.NewUseCase(repo)

	require.NoError(t, uc.EnsureRootAdmin(context.Background(), employees.RootAdmin{
		Name: "System Administrator", Username: "admin", Password: "admin123",
	}))

	err := uc.Delete(context.Background(), entity.RootAdminID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	admin, _ := repo.GetByID(context.Background(), entity.RootAdminID)
	assert.NotNil(t, admin, "el administrador debe seguir existiendo")
}

func TestDelete_NoEncontrado(t *testing.T) {
	uc := employees.NewUseCase(newFakeEmployeeRepo())
	assert.ErrorIs(t, uc.Delete(context.Background(), 42), domain.ErrNotFound)
}

func TestEnsureRootAdmin_Idempotente(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := employees.NewUseCase(repo)

	admin := employees.RootAdmin{Name: "System Administrator", Username: "admin", Password: "admin123"}
	require.NoError(t, uc.EnsureRootAdmin(context.Background(), admin))
	require.NoError(t, uc.EnsureRootAdmin(context.Background(), admin))

	list, _ := repo.List(context.Background())
	assert.Len(t, list, 1)
	stored, _ := repo.GetByID(context.Background(), entity.RootAdminID)
	assert.Equal(t, entity.DepartmentManagement, stored.Department)
	assert.True(t, stored.Protected())
}
