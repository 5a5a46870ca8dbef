package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	e := NewEmployee("Alice")

	assert.Equal(t, "Alice", e.Name)
	assert.Equal(t, RoleEmployee, e.Role)
	assert.NotNil(t, e.Skills)
	assert.False(t, e.JoinedAt.IsZero())

	_, err := uuid.Parse(e.ID)
	assert.NoError(t, err)
	assert.NoError(t, e.Validate())
}

func TestEmployeeValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *Employee)
		errMsg string
	}{
		{name: "empty name", mutate: func(e *Employee) { e.Name = " " }, errMsg: "name cannot be empty"},
		{name: "bad email", mutate: func(e *Employee) { e.Email = "alice.example.com" }, errMsg: "invalid email"},
		{name: "bad role", mutate: func(e *Employee) { e.Role = "intern" }, errMsg: "invalid role"},
		{name: "too young", mutate: func(e *Employee) { e.Age = 12 }, errMsg: "age must be between"},
		{name: "bad id", mutate: func(e *Employee) { e.ID = "42" }, errMsg: "invalid employee id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEmployee("Alice")
			tt.mutate(e)

			err := e.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" Manager ")
	require.NoError(t, err)
	assert.Equal(t, RoleManager, role)
	assert.Equal(t, "Manager", role.Label())

	_, err = ParseRole("ceo")
	assert.Error(t, err)
	assert.Empty(t, Role("ceo").Label())
}
