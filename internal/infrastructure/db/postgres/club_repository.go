package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/footleague/football-api/internal/core/domain"
)

// ClubRepository implements ports.ClubRepository on PostgreSQL.
type ClubRepository struct {
	db DB
}

func NewClubRepository(db DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) Create(ctx context.Context, club *domain.Club) (*domain.Club, error) {
	created := *club
	err := r.db.QueryRow(ctx, `
		INSERT INTO clubs (name) VALUES ($1) RETURNING id
	`, club.Name).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert club: %w", err)
	}
	return &created, nil
}

func (r *ClubRepository) List(ctx context.Context) ([]domain.Club, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM clubs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	defer rows.Close()

	clubs := []domain.Club{}
	for rows.Next() {
		var c domain.Club
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan club: %w", err)
		}
		clubs = append(clubs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clubs: %w", err)
	}
	return clubs, nil
}

func (r *ClubRepository) FindByID(ctx context.Context, id int64) (*domain.Club, error) {
	var c domain.Club
	err := r.db.QueryRow(ctx, `SELECT id, name FROM clubs WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrClubNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find club: %w", err)
	}
	return &c, nil
}

func (r *ClubRepository) Update(ctx context.Context, club *domain.Club) (*domain.Club, error) {
	tag, err := r.db.Exec(ctx, `UPDATE clubs SET name = $2 WHERE id = $1`, club.ID, club.Name)
	if err != nil {
		return nil, fmt.Errorf("update club: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrClubNotFound
	}
	updated := *club
	return &updated, nil
}
