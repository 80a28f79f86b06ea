package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/footleague/football-api/internal/core/domain"
)

// PlayerRepository implements ports.PlayerRepository on PostgreSQL. A foreign
// key violation on the club reference surfaces as domain.ErrClubNotFound,
// covering the race where the club vanishes after the service-level check.
type PlayerRepository struct {
	db DB
}

func NewPlayerRepository(db DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	created := *player
	err := r.db.QueryRow(ctx, `
		INSERT INTO players (club_id, name, surname)
		VALUES ($1, $2, $3)
		RETURNING id
	`, player.ClubID, player.Name, player.Surname).Scan(&created.ID)
	if err != nil {
		return nil, mapPlayerError("insert player", err)
	}
	return &created, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]domain.Player, error) {
	rows, err := r.db.Query(ctx, `SELECT id, club_id, name, surname FROM players ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := []domain.Player{}
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.ID, &p.ClubID, &p.Name, &p.Surname); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return players, nil
}

func (r *PlayerRepository) FindByID(ctx context.Context, id int64) (*domain.Player, error) {
	var p domain.Player
	err := r.db.QueryRow(ctx, `
		SELECT id, club_id, name, surname FROM players WHERE id = $1
	`, id).Scan(&p.ID, &p.ClubID, &p.Name, &p.Surname)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find player: %w", err)
	}
	return &p, nil
}

func (r *PlayerRepository) Update(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE players SET club_id = $2, name = $3, surname = $4 WHERE id = $1
	`, player.ID, player.ClubID, player.Name, player.Surname)
	if err != nil {
		return nil, mapPlayerError("update player", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrPlayerNotFound
	}
	updated := *player
	return &updated, nil
}

func mapPlayerError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return domain.ErrClubNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
