package repository

import "context"

// StatsRepository consultas de solo lectura sobre el estado actual del
// registro. Cada método es una sola sentencia SQL, es decir una sola
// instantánea del registro: ninguna agregación cuenta contra un estado que
// cambia a mitad de la lectura.
type StatsRepository interface {
	// SummaryCounts devuelve total de unidades y cuántas están en operaciones
	// y en técnico, en una sola instantánea.
	SummaryCounts(ctx context.Context) (total, inOperations, inTechnical int, err error)
	// CountsBySection devuelve unidades por sección actual.
	CountsBySection(ctx context.Context) (map[string]int, error)
	// TypeCountsBySection devuelve, por sección, el desglose por tipo de unidad.
	TypeCountsBySection(ctx context.Context) (map[string]map[string]int, error)
	// TotalEmployees cuenta las identidades del directorio.
	TotalEmployees(ctx context.Context) (int, error)
}
