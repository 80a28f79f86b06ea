package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footleague/football-api/internal/core/domain"
)

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "successful insert",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "$2a$10$hash", "admin").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
						AddRow(int64(1), time.Now()))
			},
		},
		{
			name: "duplicate username",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "$2a$10$hash", "admin").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: domain.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()
			tt.setupMock(mock)

			repo := NewUserRepository(mock)
			created, err := repo.Create(context.Background(), &domain.User{
				Username:     "alice",
				PasswordHash: "$2a$10$hash",
				Role:         domain.RoleAdmin,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), created.ID)
				assert.Equal(t, domain.RoleAdmin, created.Role)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, username, password_hash, role, created_at`).
		WithArgs("bob").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}).
			AddRow(int64(7), "bob", "$2a$10$hash", "user", time.Now()))

	repo := NewUserRepository(mock)
	user, err := repo.FindByUsername(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_CorruptRole(t *testing.T) {
	// A stored role outside the closed set must fail loudly, not flow through
	// as an unchecked string.
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, username, password_hash, role, created_at`).
		WithArgs("eve").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}).
			AddRow(int64(8), "eve", "$2a$10$hash", "superuser", time.Now()))

	repo := NewUserRepository(mock)
	_, err = repo.FindByUsername(context.Background(), "eve")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}
