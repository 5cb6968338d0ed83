// Package reports exporta el libro de movimientos a una hoja de cálculo para
// los revisores que auditan fuera del sistema.
package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jhoicas/unitflow-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// movementHeader columnas del reporte, en el orden del libro.
var movementHeader = []interface{}{
	"id", "timestamp", "unit_id", "movement_type",
	"from_department", "from_section", "to_department", "to_section",
	"employee_id", "employee_name", "notes",
}

// BuildMovementsWorkbook genera un .xlsx con una fila por entrada del libro.
func BuildMovementsWorkbook(movs []*entity.Movement) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	if err := f.SetSheetRow(sheet, "A1", &movementHeader); err != nil {
		return nil, fmt.Errorf("reporte: encabezado: %w", err)
	}

	row := 2
	for _, m := range movs {
		excelRow := []interface{}{
			m.ID,
			m.Timestamp.Format(time.RFC3339),
			m.UnitID,
			m.MovementType,
			m.FromDepartment,
			m.FromSection,
			m.ToDepartment,
			m.ToSection,
			m.EmployeeID,
			m.EmployeeName,
			m.Notes,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("reporte: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("reporte: fila %d: %w", row, err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("reporte: serializar: %w", err)
	}
	return buf, nil
}
