package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nandastone/AncientBeast/internal/game/battle"
)

// ReplayRepository writes resolved match actions for later replay. It
// implements battle.ActionLog.
type ReplayRepository struct {
	db *DB
}

// NewReplayRepository returns a repository over the given handle.
func NewReplayRepository(db *DB) *ReplayRepository {
	return &ReplayRepository{db: db}
}

// Record inserts one resolved action.
func (r *ReplayRepository) Record(ctx context.Context, rec battle.ActionRecord) error {
	_, err := r.db.pool.Exec(ctx,
		`INSERT INTO match_actions (match_id, turn, actor_id, kind, detail)
		 VALUES ($1, $2, $3, $4, $5)`,
		rec.MatchID, rec.Turn, rec.ActorID, rec.Kind, rec.Detail,
	)
	if err != nil {
		return fmt.Errorf("inserting action %q: %w", rec.Kind, err)
	}
	return nil
}

// Actions returns every recorded action of a match in insertion order.
func (r *ReplayRepository) Actions(ctx context.Context, matchID uuid.UUID) ([]battle.ActionRecord, error) {
	rows, err := r.db.pool.Query(ctx,
		`SELECT match_id, turn, actor_id, kind, detail
		 FROM match_actions WHERE match_id = $1 ORDER BY id`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying actions for match %s: %w", matchID, err)
	}
	defer rows.Close()

	var out []battle.ActionRecord
	for rows.Next() {
		var rec battle.ActionRecord
		if err := rows.Scan(&rec.MatchID, &rec.Turn, &rec.ActorID, &rec.Kind, &rec.Detail); err != nil {
			return nil, fmt.Errorf("scanning action row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
