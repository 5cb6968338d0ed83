package reports_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/unitflow-api/internal/application/reports"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
)

func TestBuildMovementsWorkbook(t *testing.T) {
	ts := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	movs := []*entity.Movement{
		{
			ID:             1,
			TransactionID:  "11111111-1111-1111-1111-111111111111",
			UnitID:         "T001",
			EmployeeID:     3,
			MovementType:   "section_change",
			FromDepartment: entity.DepartmentOperations,
			FromSection:    entity.SectionReadyForLoading,
			ToDepartment:   entity.DepartmentOperations,
			ToSection:      entity.SectionUnderLoading,
			Notes:          "inicio de carga",
			Timestamp:      ts,
			EmployeeName:   "Azam",
		},
		{
			ID:             2,
			UnitID:         "T002",
			EmployeeID:     5,
			MovementType:   "section_change",
			FromDepartment: entity.DepartmentOperations,
			FromSection:    entity.SectionUnderLoading,
			ToDepartment:   entity.DepartmentTechnical,
			ToSection:      entity.SectionInMaintenance,
			Timestamp:      ts.Add(time.Minute),
		},
	}

	buf, err := reports.BuildMovementsWorkbook(movs)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	// El .xlsx generado debe poder reabrirse y conservar los valores.
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "encabezado más una fila por movimiento")

	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "timestamp", rows[0][1])
	assert.Equal(t, "notes", rows[0][10])

	assert.Equal(t, "T001", rows[1][2])
	assert.Equal(t, ts.Format(time.RFC3339), rows[1][1])
	assert.Equal(t, entity.SectionUnderLoading, rows[1][7])
	assert.Equal(t, "Azam", rows[1][9])
	assert.Equal(t, "inicio de carga", rows[1][10])

	assert.Equal(t, "T002", rows[2][2])
	assert.Equal(t, entity.DepartmentTechnical, rows[2][6])
}

func TestBuildMovementsWorkbook_SinMovimientos(t *testing.T) {
	buf, err := reports.BuildMovementsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	assert.Len(t, rows, 1, "solo el encabezado")
}
