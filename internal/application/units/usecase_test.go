package units_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/unitflow-api/internal/application/units"
	"github.com/jhoicas/unitflow-api/internal/domain"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
)

type fakeUnitRepo struct {
	units map[string]*entity.Unit
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: map[string]*entity.Unit{}}
}

func (r *fakeUnitRepo) Create(_ context.Context, unit *entity.Unit) error {
	if _, ok := r.units[unit.ID]; ok {
		return domain.ErrDuplicate
	}
	copied := *unit
	r.units[unit.ID] = &copied
	return nil
}

func (r *fakeUnitRepo) GetByID(_ context.Context, id string) (*entity.Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUnitRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Unit, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeUnitRepo) UpdateType(_ context.Context, id, unitType string) error {
	u, ok := r.units[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Type = unitType
	return nil
}

func (r *fakeUnitRepo) UpdatePlacement(_ context.Context, id, department, section string, at time.Time) error {
	u, ok := r.units[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.CurrentDepartment = department
	u.CurrentSection = section
	u.LastMovementTime = at
	return nil
}

func (r *fakeUnitRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.units[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.units, id)
	return nil
}

func (r *fakeUnitRepo) List(_ context.Context) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range r.units {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

// Toda unidad nueva arranca en (operations, ready_for_loading).
func TestRegister_ColocacionInicial(t *testing.T) {
	uc := units.NewUseCase(newFakeUnitRepo())

	unit, err := uc.Register(context.Background(), "T001", "Tipper")
	require.NoError(t, err)

	assert.Equal(t, "T001", unit.ID)
	assert.Equal(t, "Tipper", unit.Type)
	assert.Equal(t, entity.DepartmentOperations, unit.CurrentDepartment)
	assert.Equal(t, entity.SectionReadyForLoading, unit.CurrentSection)
	assert.False(t, unit.LastMovementTime.IsZero())
}

func TestRegister_IDDuplicado(t *testing.T) {
	uc := units.NewUseCase(newFakeUnitRepo())

	_, err := uc.Register(context.Background(), "T001", "Tipper")
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), "T001", "Cargo")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_CamposRequeridos(t *testing.T) {
	uc := units.NewUseCase(newFakeUnitRepo())

	_, err := uc.Register(context.Background(), "", "Tipper")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Register(context.Background(), "T001", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet_NoEncontrada(t *testing.T) {
	uc := units.NewUseCase(newFakeUnitRepo())
	_, err := uc.Get(context.Background(), "ZZ99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La corrección de tipo no toca colocación ni last_movement_time.
func TestUpdateType_NoAfectaColocacion(t *testing.T) {
	repo := newFakeUnitRepo()
	uc := units.NewUseCase(repo)

	registered, err := uc.Register(context.Background(), "T001", "Tipper")
	require.NoError(t, err)

	require.NoError(t, uc.UpdateType(context.Background(), "T001", "Tanker"))

	unit, err := uc.Get(context.Background(), "T001")
	require.NoError(t, err)
	assert.Equal(t, "Tanker", unit.Type)
	assert.Equal(t, registered.CurrentDepartment, unit.CurrentDepartment)
	assert.Equal(t, registered.CurrentSection, unit.CurrentSection)
	assert.Equal(t, registered.LastMovementTime, unit.LastMovementTime)
}

func TestDeregister(t *testing.T) {
	uc := units.NewUseCase(newFakeUnitRepo())

	_, err := uc.Register(context.Background(), "T001", "Tipper")
	require.NoError(t, err)

	require.NoError(t, uc.Deregister(context.Background(), "T001"))
	_, err = uc.Get(context.Background(), "T001")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Deregister(context.Background(), "T001"), domain.ErrNotFound)
}
