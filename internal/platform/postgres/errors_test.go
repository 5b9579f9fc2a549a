package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/junction-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockResult implements sql.Result for testing
type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (m mockResult) RowsAffected() (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.rowsAffected, nil
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedError error
		expectedMsg   string
	}{
		{
			name:          "nil_error",
			err:           nil,
			expectedError: nil,
		},
		{
			name:          "sql_no_rows",
			err:           sql.ErrNoRows,
			expectedError: store.ErrNotFound,
		},
		{
			name:          "unique_violation",
			err:           &pgconn.PgError{Code: uniqueViolationCode},
			expectedError: store.ErrDuplicate,
		},
		{
			name: "foreign_key_violation",
			err: &pgconn.PgError{
				Code:           foreignKeyViolationCode,
				ConstraintName: "fk_hero_powers_hero_id_heroes",
			},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "fk_hero_powers_hero_id_heroes",
		},
		{
			name:          "check_constraint_violation",
			err:           &pgconn.PgError{Code: checkViolationCode},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "check constraint violation",
		},
		{
			name:          "not_null_violation",
			err:           &pgconn.PgError{Code: notNullViolationCode, ColumnName: "sweet_id"},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "sweet_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.expectedError == nil {
				assert.NoError(t, got)
				return
			}
			require.Error(t, got)
			assert.True(t, errors.Is(got, tt.expectedError), "expected %v, got %v", tt.expectedError, got)
			if tt.expectedMsg != "" {
				assert.Contains(t, got.Error(), tt.expectedMsg)
			}
		})
	}

	t.Run("generic_error_passes_through", func(t *testing.T) {
		original := errors.New("connection reset")
		assert.Same(t, original, MapError(original))
	})
}

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, CheckRowsAffected(mockResult{rowsAffected: 1}, store.ErrHeroNotFound))
	assert.ErrorIs(t, CheckRowsAffected(mockResult{}, store.ErrHeroNotFound), store.ErrHeroNotFound)
	assert.ErrorIs(t, CheckRowsAffected(mockResult{}, nil), store.ErrNotFound)
	assert.Error(t, CheckRowsAffected(nil, nil))

	err := CheckRowsAffected(mockResult{err: errors.New("driver gone")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get rows affected")
}

func TestViolationHelpers(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.False(t, IsForeignKeyViolation(errors.New("other")))
	assert.True(t, IsNotNullViolation(&pgconn.PgError{Code: notNullViolationCode}))
	assert.False(t, IsNotNullViolation(&pgconn.PgError{Code: uniqueViolationCode}))
}
