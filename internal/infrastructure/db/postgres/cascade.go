package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/footleague/football-api/internal/api/metrics"
	"github.com/footleague/football-api/internal/core/domain"
)

// CascadeEngine implements ports.CascadeEngine. Each delete runs as one
// transaction: lock the target row, remove dependents leaf-to-root, remove
// the target, commit. Any failure after the existence check rolls the whole
// transaction back, so no partial deletion is ever observable.
//
// The FOR UPDATE lock on the target serializes concurrent cascades against
// the same row: the second caller blocks until the first commits, then
// observes the row gone and fails with NotFound.
type CascadeEngine struct {
	db  DB
	log zerolog.Logger
}

func NewCascadeEngine(db DB, log zerolog.Logger) *CascadeEngine {
	return &CascadeEngine{db: db, log: log}
}

func (e *CascadeEngine) DeleteClub(ctx context.Context, id int64) error {
	tx, err := e.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin club cascade: %w", err)
	}
	defer tx.Rollback(ctx) // no-op after commit

	if err := lockRow(ctx, tx, `SELECT 1 FROM clubs WHERE id = $1 FOR UPDATE`, id, domain.ErrClubNotFound); err != nil {
		return err
	}

	// Leaf to root, so the foreign keys stay satisfied mid-transaction.
	goals, err := tx.Exec(ctx, `
		DELETE FROM goals WHERE player_id IN (SELECT id FROM players WHERE club_id = $1)
	`, id)
	if err != nil {
		return fmt.Errorf("cascade delete goals: %w", err)
	}
	players, err := tx.Exec(ctx, `DELETE FROM players WHERE club_id = $1`, id)
	if err != nil {
		return fmt.Errorf("cascade delete players: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM clubs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete club: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit club cascade: %w", err)
	}

	removed := goals.RowsAffected() + players.RowsAffected() + 1
	metrics.CascadeDeletesTotal.WithLabelValues("club").Inc()
	metrics.CascadeRowsDeletedTotal.WithLabelValues("club").Add(float64(removed))
	e.log.Info().
		Int64("club_id", id).
		Int64("players_removed", players.RowsAffected()).
		Int64("goals_removed", goals.RowsAffected()).
		Msg("club deleted")
	return nil
}

func (e *CascadeEngine) DeletePlayer(ctx context.Context, id int64) error {
	tx, err := e.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin player cascade: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockRow(ctx, tx, `SELECT 1 FROM players WHERE id = $1 FOR UPDATE`, id, domain.ErrPlayerNotFound); err != nil {
		return err
	}

	goals, err := tx.Exec(ctx, `DELETE FROM goals WHERE player_id = $1`, id)
	if err != nil {
		return fmt.Errorf("cascade delete goals: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM players WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit player cascade: %w", err)
	}

	metrics.CascadeDeletesTotal.WithLabelValues("player").Inc()
	metrics.CascadeRowsDeletedTotal.WithLabelValues("player").Add(float64(goals.RowsAffected() + 1))
	e.log.Info().
		Int64("player_id", id).
		Int64("goals_removed", goals.RowsAffected()).
		Msg("player deleted")
	return nil
}

// DeleteGoal has no dependents to cascade; a single statement is already
// atomic and RowsAffected doubles as the existence check.
func (e *CascadeEngine) DeleteGoal(ctx context.Context, id int64) error {
	tag, err := e.db.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}

	metrics.CascadeDeletesTotal.WithLabelValues("goal").Inc()
	metrics.CascadeRowsDeletedTotal.WithLabelValues("goal").Inc()
	e.log.Info().Int64("goal_id", id).Msg("goal deleted")
	return nil
}

func lockRow(ctx context.Context, tx pgx.Tx, query string, id int64, notFound error) error {
	var one int
	err := tx.QueryRow(ctx, query, id).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	if err != nil {
		return fmt.Errorf("lock target row: %w", err)
	}
	return nil
}
