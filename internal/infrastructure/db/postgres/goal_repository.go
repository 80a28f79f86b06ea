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

// GoalRepository implements ports.GoalRepository on PostgreSQL.
type GoalRepository struct {
	db DB
}

func NewGoalRepository(db DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	created := *goal
	err := r.db.QueryRow(ctx, `
		INSERT INTO goals (player_id, minute)
		VALUES ($1, $2)
		RETURNING id
	`, goal.PlayerID, goal.Minute).Scan(&created.ID)
	if err != nil {
		return nil, mapGoalError("insert goal", err)
	}
	return &created, nil
}

func (r *GoalRepository) List(ctx context.Context) ([]domain.Goal, error) {
	rows, err := r.db.Query(ctx, `SELECT id, player_id, minute FROM goals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(&g.ID, &g.PlayerID, &g.Minute); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return goals, nil
}

func (r *GoalRepository) FindByID(ctx context.Context, id int64) (*domain.Goal, error) {
	var g domain.Goal
	err := r.db.QueryRow(ctx, `
		SELECT id, player_id, minute FROM goals WHERE id = $1
	`, id).Scan(&g.ID, &g.PlayerID, &g.Minute)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find goal: %w", err)
	}
	return &g, nil
}

func (r *GoalRepository) Update(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE goals SET player_id = $2, minute = $3 WHERE id = $1
	`, goal.ID, goal.PlayerID, goal.Minute)
	if err != nil {
		return nil, mapGoalError("update goal", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrGoalNotFound
	}
	updated := *goal
	return &updated, nil
}

func mapGoalError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return domain.ErrPlayerNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
