package stats_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/unitflow-api/internal/application/stats"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
)

type fakeStatsRepo struct {
	total, inOps, inTech int
	employees            int
	bySection            map[string]int
	typesBySection       map[string]map[string]int
}

func (r *fakeStatsRepo) SummaryCounts(_ context.Context) (int, int, int, error) {
	return r.total, r.inOps, r.inTech, nil
}

func (r *fakeStatsRepo) CountsBySection(_ context.Context) (map[string]int, error) {
	return r.bySection, nil
}

func (r *fakeStatsRepo) TypeCountsBySection(_ context.Context) (map[string]map[string]int, error) {
	return r.typesBySection, nil
}

func (r *fakeStatsRepo) TotalEmployees(_ context.Context) (int, error) {
	return r.employees, nil
}

// Escenario del tablero: 3 unidades, 2 en operaciones y 1 trasladada a técnico.
func TestSummary(t *testing.T) {
	uc := stats.NewUseCase(&fakeStatsRepo{total: 3, inOps: 2, inTech: 1, employees: 4})

	out, err := uc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalUnits)
	assert.Equal(t, 2, out.UnitsInOps)
	assert.Equal(t, 1, out.UnitsInTech)
	assert.Equal(t, 4, out.TotalEmployees)
}

func TestComprehensive_MapeaSeccionesATableros(t *testing.T) {
	uc := stats.NewUseCase(&fakeStatsRepo{
		bySection: map[string]int{
			entity.SectionReadyForLoading:     2,
			entity.SectionInMaintenance:       1,
			entity.SectionDocumentProcessing:  3,
			entity.SectionRefuelInProgress:    1,
		},
		typesBySection: map[string]map[string]int{
			entity.SectionReadyForLoading: {"Tipper": 1, "Cargo": 1},
			entity.SectionInMaintenance:   {"Tanker": 1},
		},
	})

	out, err := uc.Comprehensive(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.Operations.ReadyForLoading)
	assert.Equal(t, 0, out.Operations.Delivered)
	assert.Equal(t, 1, out.Technical.InMaintenance)
	assert.Equal(t, 3, out.Commercial.DocumentProcessing)
	assert.Equal(t, 1, out.Fuel.RefuelInProgress)

	assert.Equal(t, map[string]int{"Tipper": 1, "Cargo": 1}, out.UnitTypeStats[entity.SectionReadyForLoading])
	assert.Equal(t, map[string]int{"Tanker": 1}, out.UnitTypeStats[entity.SectionInMaintenance])
}

// Toda sección aparece en unitTypeStats aunque esté vacía, para que los
// tableros del frontend no tengan que comprobar claves ausentes.
func TestComprehensive_SeccionesVaciasPresentes(t *testing.T) {
	uc := stats.NewUseCase(&fakeStatsRepo{
		bySection:      map[string]int{},
		typesBySection: map[string]map[string]int{},
	})

	out, err := uc.Comprehensive(context.Background())
	require.NoError(t, err)

	assert.Len(t, out.UnitTypeStats, 16)
	for _, section := range entity.AllSections() {
		types, ok := out.UnitTypeStats[section]
		assert.True(t, ok, "falta la sección %q", section)
		assert.NotNil(t, types)
		assert.Empty(t, types)
	}
}
