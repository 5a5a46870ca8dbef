package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hr-dashboard/internal/domain"
)

type EmployeeRepository struct {
	db *DB
}

func NewEmployeeRepository(db *DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

type dbEmployee struct {
	ID         string         `db:"id"`
	Name       string         `db:"name"`
	Email      sql.NullString `db:"email"`
	Role       string         `db:"role"`
	Department sql.NullString `db:"department"`
	Age        int            `db:"age"`
	Skills     sql.NullString `db:"skills"`
	JoinedAt   time.Time      `db:"joined_at"`
}

func (de *dbEmployee) toEmployee() (*domain.Employee, error) {
	skills, err := decodeList(de.Skills)
	if err != nil {
		return nil, err
	}

	return &domain.Employee{
		ID:         de.ID,
		Name:       de.Name,
		Email:      de.Email.String,
		Role:       domain.Role(de.Role),
		Department: de.Department.String,
		Age:        de.Age,
		Skills:     skills,
		JoinedAt:   de.JoinedAt,
	}, nil
}

const employeeColumns = "id, name, email, role, department, age, skills, joined_at"

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Role == "" {
		e.Role = domain.RoleEmployee
	}
	if e.JoinedAt.IsZero() {
		e.JoinedAt = time.Now()
	}

	if err := e.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	skills, err := encodeList(e.Skills)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO employees (id, name, email, role, department, age, skills, joined_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		nullString(strings.ToLower(e.Email)),
		e.Role,
		nullString(e.Department),
		e.Age,
		skills,
		e.JoinedAt,
	)
	if err != nil {
		return writeError("insert employee", "employee "+e.Name, err)
	}

	return nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees WHERE id = ?"

	var de dbEmployee
	if err := r.db.GetContext(ctx, &de, query, id); err != nil {
		return nil, readError("get employee", "employee "+id, err)
	}

	return de.toEmployee()
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees WHERE email = ?"

	var de dbEmployee
	if err := r.db.GetContext(ctx, &de, query, strings.ToLower(strings.TrimSpace(email))); err != nil {
		return nil, readError("get employee", "employee "+email, err)
	}

	return de.toEmployee()
}

// List returns employees in insertion order; screens sort in memory.
func (r *EmployeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees ORDER BY rowid"

	var rows []dbEmployee
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]*domain.Employee, 0, len(rows))
	for _, row := range rows {
		e, err := row.toEmployee()
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	skills, err := encodeList(e.Skills)
	if err != nil {
		return err
	}

	query := `
		UPDATE employees
		SET name = ?, email = ?, role = ?, department = ?, age = ?, skills = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		e.Name,
		nullString(strings.ToLower(e.Email)),
		e.Role,
		nullString(e.Department),
		e.Age,
		skills,
		e.ID,
	)
	if err != nil {
		return writeError("update employee", "employee "+e.Name, err)
	}

	return checkAffected(result, "employee "+e.ID)
}
