package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
	"github.com/jhoicas/unitflow-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de agregación de solo lectura para los tableros.
// Cada método es una sola sentencia: PostgreSQL la evalúa contra una sola
// instantánea del registro, así que ningún conteo puede duplicar ni omitir
// una unidad por traslados concurrentes.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// SummaryCounts totales del registro en una sola instantánea (FILTER evita
// tres consultas separadas contra estados distintos).
func (r *StatsRepo) SummaryCounts(ctx context.Context) (total, inOperations, inTechnical int, err error) {
	const query = `
	SELECT
	    COUNT(*),
	    COUNT(*) FILTER (WHERE current_department = $1),
	    COUNT(*) FILTER (WHERE current_department = $2)
	FROM units`
	err = r.pool.QueryRow(ctx, query, entity.DepartmentOperations, entity.DepartmentTechnical).
		Scan(&total, &inOperations, &inTechnical)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("stats.SummaryCounts: %w", err)
	}
	return total, inOperations, inTechnical, nil
}

// CountsBySection unidades por sección actual.
func (r *StatsRepo) CountsBySection(ctx context.Context) (map[string]int, error) {
	const query = `
	SELECT current_section, COUNT(*)::int
	FROM units
	GROUP BY current_section`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.CountsBySection: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var section string
		var n int
		if err := rows.Scan(&section, &n); err != nil {
			return nil, fmt.Errorf("stats.CountsBySection scan: %w", err)
		}
		counts[section] = n
	}
	return counts, rows.Err()
}

// TypeCountsBySection desglose por tipo de unidad dentro de cada sección.
func (r *StatsRepo) TypeCountsBySection(ctx context.Context) (map[string]map[string]int, error) {
	const query = `
	SELECT current_section, type, COUNT(*)::int
	FROM units
	GROUP BY current_section, type`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.TypeCountsBySection: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]map[string]int)
	for rows.Next() {
		var section, unitType string
		var n int
		if err := rows.Scan(&section, &unitType, &n); err != nil {
			return nil, fmt.Errorf("stats.TypeCountsBySection scan: %w", err)
		}
		if counts[section] == nil {
			counts[section] = make(map[string]int)
		}
		counts[section][unitType] = n
	}
	return counts, rows.Err()
}

// TotalEmployees cuenta las identidades del directorio.
func (r *StatsRepo) TotalEmployees(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)::int FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats.TotalEmployees: %w", err)
	}
	return n, nil
}
