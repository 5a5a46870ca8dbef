package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// employee role
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleManager:
		return "Manager"
	case RoleEmployee:
		return "Employee"
	default:
		return ""
	}
}

func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !isValidRole(role) {
		return "", fmt.Errorf("invalid role: %s (must be admin, manager, or employee)", s)
	}
	return role, nil
}

type Employee struct {
	ID         string    `db:"id" json:"id" yaml:"id"`
	Name       string    `db:"name" json:"name" yaml:"name"`
	Email      string    `db:"email" json:"email,omitempty" yaml:"email"`
	Role       Role      `db:"role" json:"role" yaml:"role"`
	Department string    `db:"department" json:"department,omitempty" yaml:"department"`
	Age        int       `db:"age" json:"age,omitempty" yaml:"age"`
	Skills     []string  `db:"skills" json:"skills" yaml:"skills"`
	JoinedAt   time.Time `db:"joined_at" json:"joined_at" yaml:"joined_at"`
}

// create a new employee with a fresh id
func NewEmployee(name string) *Employee {
	return &Employee{
		ID:       uuid.NewString(),
		Name:     name,
		Role:     RoleEmployee,
		Skills:   make([]string, 0),
		JoinedAt: time.Now(),
	}
}

func (e *Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return invalid("employee name cannot be empty")
	}

	if len(e.Name) > 100 {
		return invalid("employee name cannot exceed 100 characters")
	}

	if e.Email != "" && !strings.Contains(e.Email, "@") {
		return invalid("invalid email: " + e.Email)
	}

	if e.Role != "" && !isValidRole(e.Role) {
		return invalid("invalid role: must be admin, manager, or employee")
	}

	if e.Age != 0 && (e.Age < 16 || e.Age > 100) {
		return invalid("employee age must be between 16 and 100")
	}

	if e.ID != "" {
		if _, err := uuid.Parse(e.ID); err != nil {
			return invalid("invalid employee id: " + e.ID)
		}
	}

	return nil
}

func isValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	default:
		return false
	}
}
