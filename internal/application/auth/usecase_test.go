package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/unitflow-api/internal/application/auth"
	"github.com/jhoicas/unitflow-api/internal/application/dto"
	"github.com/jhoicas/unitflow-api/internal/domain"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
	"github.com/jhoicas/unitflow-api/pkg/jwt"
)

var testJWTCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "unitflow-api"}

type fakeEmployeeRepo struct {
	byID map[int64]*entity.Employee
}

func newFakeEmployeeRepo(seed ...*entity.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{byID: map[int64]*entity.Employee{}}
	for _, e := range seed {
		copied := *e
		r.byID[e.ID] = &copied
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *entity.Employee) error {
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
	copied := *employee
	r.byID[employee.ID] = &copied
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
	delete(r.byID, id)
	return nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.byID {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeEmployeeRepo(&entity.Employee{
		ID: 3, Name: "Azam", Username: "azam",
		PasswordHash: hashOf(t, "azam123"),
		Department:   entity.DepartmentOperations,
	})
	uc := auth.NewUseCase(repo, testJWTCfg)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "azam", Password: "azam123"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Employee.ID)
	assert.NotEmpty(t, resp.Token)

	employeeID, department, err := jwt.Parse(testJWTCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "3", employeeID)
	assert.Equal(t, entity.DepartmentOperations, department)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeEmployeeRepo(&entity.Employee{
		ID: 3, Username: "azam", PasswordHash: hashOf(t, "azam123"),
	})
	uc := auth.NewUseCase(repo, testJWTCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "azam", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioDesconocido(t *testing.T) {
	uc := auth.NewUseCase(newFakeEmployeeRepo(), testJWTCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := auth.NewUseCase(newFakeEmployeeRepo(), testJWTCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "azam"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Credencial legada en texto plano: el login la acepta una vez y la
// reemplaza por un hash bcrypt verificable.
func TestLogin_CredencialLegadaSeActualizaABcrypt(t *testing.T) {
	repo := newFakeEmployeeRepo(&entity.Employee{
		ID: 5, Username: "legacy", PasswordHash: "legacy123",
		Department: entity.DepartmentFuel,
	})
	uc := auth.NewUseCase(repo, testJWTCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "legacy", Password: "legacy123"})
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), 5)
	assert.NotEqual(t, "legacy123", stored.PasswordHash, "la credencial legada debe quedar hasheada")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("legacy123")))

	// El siguiente login usa ya la rama bcrypt.
	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "legacy", Password: "legacy123"})
	assert.NoError(t, err)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "legacy", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Un hash bcrypt almacenado nunca se compara como texto plano: presentar el
// hash literal como contraseña no autentica.
func TestLogin_HashLiteralNoAutentica(t *testing.T) {
	hash := hashOf(t, "azam123")
	repo := newFakeEmployeeRepo(&entity.Employee{ID: 3, Username: "azam", PasswordHash: hash})
	uc := auth.NewUseCase(repo, testJWTCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "azam", Password: hash})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
