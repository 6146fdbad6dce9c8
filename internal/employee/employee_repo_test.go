package employee_test

import (
	"context"
	"testing"

	"workcurb/internal/employee"
	employeeerrors "workcurb/internal/employee/errors"
	"workcurb/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEmployee(t *testing.T, repo employee.Repository, companyID uuid.UUID, email string) *employee.Employee {
	t.Helper()
	e := &employee.Employee{
		ID:           uuid.New(),
		CompanyID:    companyID,
		FullName:     "Seeded",
		Email:        email,
		PasswordHash: "hash-1",
		Role:         employee.RoleEmployee,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func TestRepository_EmailUniquePerCompany(t *testing.T) {
	db := testdb.Open(t, &employee.Employee{})
	repo := employee.NewRepository(db)
	companyA, companyB := uuid.New(), uuid.New()

	seedEmployee(t, repo, companyA, "ana@example.com")
	// same email in another tenant is fine
	seedEmployee(t, repo, companyB, "ana@example.com")

	dup := &employee.Employee{
		ID:           uuid.New(),
		CompanyID:    companyA,
		FullName:     "Dup",
		Email:        "ana@example.com",
		PasswordHash: "hash-2",
		IsActive:     true,
	}
	err := repo.Create(context.Background(), dup)

	assert.Error(t, err)
	assert.Equal(t, employeeerrors.ErrEmployeeAlreadyExists, employee.MapRepositoryError(err))
}

func TestRepository_UpdatePasswordHashIsConditional(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t, &employee.Employee{})
	repo := employee.NewRepository(db)
	e := seedEmployee(t, repo, uuid.New(), "kai@example.com")

	ok, err := repo.UpdatePasswordHash(ctx, e.CompanyID.String(), e.ID.String(), "stale-hash", "hash-2")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.UpdatePasswordHash(ctx, e.CompanyID.String(), e.ID.String(), "hash-1", "hash-2")
	assert.NoError(t, err)
	assert.True(t, ok)

	// another tenant cannot touch the row
	ok, err = repo.UpdatePasswordHash(ctx, uuid.NewString(), e.ID.String(), "hash-2", "hash-3")
	assert.NoError(t, err)
	assert.False(t, ok)

	var stored string
	require.NoError(t, db.Model(&employee.Employee{}).Where("id = ?", e.ID).Pluck("password_hash", &stored).Error)
	assert.Equal(t, "hash-2", stored)
}

func TestRepository_FindActiveByEmail(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t, &employee.Employee{})
	repo := employee.NewRepository(db)
	companyID := uuid.New()
	e := seedEmployee(t, repo, companyID, "Mia@Example.com")

	rows, err := repo.FindActiveByEmail(ctx, "mia@example.com", "")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = repo.FindActiveByEmail(ctx, "mia@example.com", uuid.NewString())
	assert.NoError(t, err)
	assert.Empty(t, rows)

	require.NoError(t, db.Model(&employee.Employee{}).Where("id = ?", e.ID).Update("is_active", false).Error)
	rows, err = repo.FindActiveByEmail(ctx, "mia@example.com", companyID.String())
	assert.NoError(t, err)
	assert.Empty(t, rows)
}
