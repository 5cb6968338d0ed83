package dto

// CreateEmployeeRequest alta en el directorio (password en texto, se hashea en el use case).
type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Department string `json:"department"`
	WorkPage   string `json:"workPage"`
}

// UpdateEmployeeRequest actualización; Password vacío conserva la credencial actual.
type UpdateEmployeeRequest struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Department string `json:"department"`
	WorkPage   string `json:"workPage"`
	Password   string `json:"password"`
}

// EmployeeResponse salida de un empleado (sin credencial).
type EmployeeResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Department string `json:"department"`
	WorkPage   string `json:"workPage"`
}
