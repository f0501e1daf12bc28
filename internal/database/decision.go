// internal/database/decision.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rhumruin/dopynion-bot/internal/cache"
)

const schema = `
	CREATE TABLE IF NOT EXISTS bot_decisions (
		id         UUID PRIMARY KEY,
		game_id    TEXT NOT NULL,
		endpoint   TEXT NOT NULL,
		decision   TEXT NOT NULL,
		decided_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS bot_decisions_game_id_idx ON bot_decisions (game_id);
`

// EnsureSchema creates the bot_decisions table if it does not exist.
func EnsureSchema(ctx context.Context) error {
	if _, err := DB.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create bot_decisions: %w", err)
	}
	return nil
}

// InsertDecisions persists a batch of decision records in one transaction.
// Records already stored (same id) are ignored.
func InsertDecisions(ctx context.Context, records []cache.DecisionRecord) error {
	if len(records) == 0 {
		return nil
	}
	q := `
		INSERT INTO bot_decisions (id, game_id, endpoint, decision, decided_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`
	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, r := range records {
			batch.Queue(q, r.ID, r.GameID, r.Endpoint, r.Decision, time.UnixMilli(r.Timestamp).UTC())
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return fmt.Errorf("insert %d decisions: %w", len(records), err)
	}
	return nil
}

// CountDecisions returns how many times each decision was given in a game.
func CountDecisions(ctx context.Context, gameID string) (map[string]int, error) {
	rows, err := DB.Query(ctx, `
		SELECT decision, COUNT(*)
		FROM bot_decisions
		WHERE game_id = $1
		GROUP BY decision
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("count decisions for %s: %w", gameID, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var decision string
		var n int
		if err := rows.Scan(&decision, &n); err != nil {
			return nil, err
		}
		counts[decision] = n
	}
	return counts, rows.Err()
}
