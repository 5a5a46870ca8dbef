package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hr-dashboard/internal/domain"
)

// findEmployee resolves an id, email or case-insensitive name.
func (a *app) findEmployee(ctx context.Context, ref string) (*domain.Employee, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("employee cannot be empty: %w", domain.ErrInvalid)
	}

	if e, err := a.store.Employees.GetByID(ctx, ref); err == nil {
		return e, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if strings.Contains(ref, "@") {
		return a.store.Employees.GetByEmail(ctx, ref)
	}

	employees, err := a.store.Employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	var matches []*domain.Employee
	for _, e := range employees {
		if strings.EqualFold(e.Name, ref) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("employee %q: %w", ref, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%d employees are named %q, use an email or id: %w", len(matches), ref, domain.ErrInvalid)
	}
}
