package entity

import "time"

// Movement es una entrada inmutable del libro de movimientos: el traslado de
// una unidad entre (departamento, sección), atribuido a un empleado. Los
// campos From*/To* son instantáneas congeladas al momento del traslado, no se
// derivan después. Una entrada nunca se actualiza ni se borra; sobrevive a la
// baja de la unidad que referencia.
type Movement struct {
	ID             int64
	TransactionID  string // correlaciona la entrada con la transacción que actualizó la colocación
	UnitID         string
	EmployeeID     int64
	MovementType   string // significado de negocio del traslado ("start_loading", ...)
	FromDepartment string
	ToDepartment   string
	FromSection    string
	ToSection      string
	Notes          string
	Timestamp      time.Time

	// EmployeeName se rellena en consultas con JOIN al directorio; vacío si el
	// empleado fue eliminado después del movimiento.
	EmployeeName string
}
