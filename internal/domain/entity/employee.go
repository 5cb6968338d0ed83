package entity

// RootAdminID identifica al administrador raíz sembrado en el arranque. Debe
// existir siempre al menos una identidad administrativa no eliminable.
const RootAdminID int64 = 1

// Employee es una identidad del directorio interno. El núcleo de movimientos
// solo necesita ID y Department para atribución; el resto sirve al directorio
// y al login.
type Employee struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string // hash bcrypt; puede ser texto plano legado durante la ventana de migración
	Department   string
	WorkPage     string
}

// Protected indica si el empleado es la identidad administrativa reservada
// que no puede eliminarse.
func (e *Employee) Protected() bool {
	return e.ID == RootAdminID
}
