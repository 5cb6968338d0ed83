package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/unitflow-api/internal/domain"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
	"github.com/jhoicas/unitflow-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del directorio de empleados sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create inserta un empleado y rellena su ID. ErrDuplicate si el username ya existe.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (name, username, password, department, work_page)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		employee.Name, employee.Username, employee.PasswordHash, employee.Department, employee.WorkPage,
	).Scan(&employee.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `
		SELECT id, name, username, password, department, work_page
		FROM employees WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByUsername obtiene un empleado por username. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	query := `
		SELECT id, name, username, password, department, work_page
		FROM employees WHERE username = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, username))
}

func (r *EmployeeRepo) scanOne(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var workPage *string
	err := row.Scan(&e.ID, &e.Name, &e.Username, &e.PasswordHash, &e.Department, &workPage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	if workPage != nil {
		e.WorkPage = *workPage
	}
	return &e, nil
}

// Update actualiza los datos del empleado. Si PasswordHash viene vacío se
// conserva la credencial almacenada. ErrDuplicate si el nuevo username choca.
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	var (
		tag pgconn.CommandTag
		err error
	)
	if employee.PasswordHash != "" {
		query := `
			UPDATE employees
			SET name = $1, username = $2, department = $3, work_page = $4, password = $5
			WHERE id = $6`
		tag, err = r.q.Exec(ctx, query,
			employee.Name, employee.Username, employee.Department, employee.WorkPage,
			employee.PasswordHash, employee.ID)
	} else {
		query := `
			UPDATE employees
			SET name = $1, username = $2, department = $3, work_page = $4
			WHERE id = $5`
		tag, err = r.q.Exec(ctx, query,
			employee.Name, employee.Username, employee.Department, employee.WorkPage, employee.ID)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePassword reemplaza la credencial almacenada (usado por el upgrade de
// contraseñas legadas en el login).
func (r *EmployeeRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.q.Exec(ctx, `UPDATE employees SET password = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update employee password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un empleado del directorio. El libro de movimientos conserva
// sus entradas (LEFT JOIN en la consulta del libro).
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el directorio sin credenciales.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	query := `
		SELECT id, name, username, department, work_page
		FROM employees ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		var workPage *string
		if err := rows.Scan(&e.ID, &e.Name, &e.Username, &e.Department, &workPage); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		if workPage != nil {
			e.WorkPage = *workPage
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
