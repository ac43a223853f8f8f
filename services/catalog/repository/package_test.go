package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/models"
)

func setupPackageRepoTest(t *testing.T) (*PackageRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := &PackageRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestGetPackageByID(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, id uuid.UUID)
		assertFunc func(t *testing.T, pkg *models.SubscriptionPackage, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				rows := sqlmock.NewRows([]string{"id", "name", "description", "duration_months", "price", "is_active", "created_at", "updated_at"}).
					AddRow(id, "Standard Plan", "Akses fitur standar", 3, "150000", true, time.Now(), time.Now())
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description")).
					WithArgs(id).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, pkg *models.SubscriptionPackage, err error) {
				assert.NoError(t, err)
				require.NotNil(t, pkg)
				assert.Equal(t, "Standard Plan", pkg.Name)
				assert.Equal(t, 3, pkg.DurationMonths)
				assert.True(t, pkg.Price.Equal(decimal.NewFromInt(150000)))
				assert.True(t, pkg.IsActive)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description")).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "duration_months", "price", "is_active", "created_at", "updated_at"}))
			},
			assertFunc: func(t *testing.T, pkg *models.SubscriptionPackage, err error) {
				assert.ErrorIs(t, err, apperrors.ErrInvalidPackage)
				assert.Nil(t, pkg)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPackageRepoTest(t)
			defer cleanup()

			id := uuid.New()
			tc.mockSetup(mock, id)

			pkg, err := repo.GetPackageByID(context.Background(), id)
			tc.assertFunc(t, pkg, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreatePackage(t *testing.T) {
	repo, mock, cleanup := setupPackageRepoTest(t)
	defer cleanup()

	now := time.Now()
	pkg := &models.SubscriptionPackage{
		ID:             uuid.New(),
		Name:           "Premium Plan",
		Description:    "Akses penuh semua fitur",
		DurationMonths: 12,
		Price:          decimal.NewFromInt(500000),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	mock.ExpectExec("INSERT INTO subscription_packages").
		WithArgs(pkg.ID, pkg.Name, pkg.Description, pkg.DurationMonths, pkg.Price, pkg.IsActive, pkg.CreatedAt, pkg.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreatePackage(context.Background(), pkg)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePackage_NotFound(t *testing.T) {
	repo, mock, cleanup := setupPackageRepoTest(t)
	defer cleanup()

	pkg := &models.SubscriptionPackage{
		ID:             uuid.New(),
		Name:           "Premium Plan",
		Description:    "Akses penuh semua fitur",
		DurationMonths: 12,
		Price:          decimal.NewFromInt(500000),
		IsActive:       true,
	}

	mock.ExpectExec("UPDATE subscription_packages").
		WithArgs(pkg.Name, pkg.Description, pkg.DurationMonths, pkg.Price, pkg.IsActive, pkg.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePackage(context.Background(), pkg)

	assert.ErrorIs(t, err, apperrors.ErrInvalidPackage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePackage(t *testing.T) {
	repo, mock, cleanup := setupPackageRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("DELETE FROM subscription_packages").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeletePackage(context.Background(), id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActivePackages(t *testing.T) {
	repo, mock, cleanup := setupPackageRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "duration_months", "price", "is_active", "created_at", "updated_at"}).
		AddRow(uuid.New(), "Trial", "Coba gratis", 1, "0", true, time.Now(), time.Now()).
		AddRow(uuid.New(), "Basic Plan", "Paket dasar", 1, "50000", true, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description")).
		WillReturnRows(rows)

	packages, err := repo.ListActivePackages(context.Background())

	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, "Trial", packages[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
