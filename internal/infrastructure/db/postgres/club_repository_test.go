package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footleague/football-api/internal/core/domain"
)

func TestClubRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name FROM clubs`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Arsenal").
			AddRow(int64(2), "Chelsea"))

	repo := NewClubRepository(mock)
	clubs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Club{{ID: 1, Name: "Arsenal"}, {ID: 2, Name: "Chelsea"}}, clubs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClubRepository_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name FROM clubs WHERE id`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	repo := NewClubRepository(mock)
	_, err = repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrClubNotFound)
}

func TestClubRepository_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE clubs SET name`).
		WithArgs(int64(99), "Ghost FC").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewClubRepository(mock)
	_, err = repo.Update(context.Background(), &domain.Club{ID: 99, Name: "Ghost FC"})
	assert.ErrorIs(t, err, domain.ErrClubNotFound)
}
