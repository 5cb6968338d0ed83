package dto

import "time"

// MoveUnitRequest entrada para trasladar una unidad a (departamento, sección) destino.
type MoveUnitRequest struct {
	TargetDepartment string `json:"targetDepartment"`
	TargetSection    string `json:"targetSection"`
	EmployeeID       int64  `json:"employeeId"`
	MovementType     string `json:"movementType"`
	Notes            string `json:"notes"`
}

// MovementFilterRequest filtros de consulta del libro (query params, todos
// opcionales y conjuntivos). Las fechas son "YYYY-MM-DD"; dateTo incluye el
// día completo hasta 23:59:59.
type MovementFilterRequest struct {
	UnitID     string `query:"unitId"`
	EmployeeID int64  `query:"employeeId"`
	DateFrom   string `query:"dateFrom"`
	DateTo     string `query:"dateTo"`
}

// MovementResponse entrada del libro con el nombre del empleado unido.
type MovementResponse struct {
	ID             int64     `json:"id"`
	TransactionID  string    `json:"transactionId"`
	UnitID         string    `json:"unitId"`
	EmployeeID     int64     `json:"employeeId"`
	EmployeeName   string    `json:"employeeName"`
	MovementType   string    `json:"movementType"`
	FromDepartment string    `json:"fromDepartment"`
	ToDepartment   string    `json:"toDepartment"`
	FromSection    string    `json:"fromSection"`
	ToSection      string    `json:"toSection"`
	Notes          string    `json:"notes"`
	Timestamp      time.Time `json:"timestamp"`
}
