package postgres

import (
	"context"
	"database/sql"

	"quizreg/internal/domain"
)

// scanPageSize caps how many game ids one scan page returns; ScanIDs keeps
// requesting pages until a short page signals exhaustion.
const scanPageSize = 500

// HandledGameRepository stores handled-game records in Postgres.
type HandledGameRepository struct {
	DB *sql.DB
}

func NewHandledGameRepository(db *sql.DB) domain.HandledGameRepository {
	return &HandledGameRepository{
		DB: db,
	}
}

// Put upserts the record keyed by game_id; a repeat insert overwrites.
func (r *HandledGameRepository) Put(ctx context.Context, game *domain.HandledGame) error {
	query := `
		INSERT INTO handled_games (game_id, game_date, game_time, is_poll_created, reg_date, venue, game_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (game_id) DO UPDATE
		SET game_date = EXCLUDED.game_date, game_time = EXCLUDED.game_time, is_poll_created = EXCLUDED.is_poll_created,
		    reg_date = EXCLUDED.reg_date, venue = EXCLUDED.venue, game_type = EXCLUDED.game_type
	`
	_, err := r.DB.ExecContext(ctx, query, game.GameID, game.GameDate, game.GameTime, game.IsPollCreated, game.RegDate, game.Venue, game.GameType)
	return err
}

// Get returns the record for gameID, or domain.ErrNotFound.
func (r *HandledGameRepository) Get(ctx context.Context, gameID string) (*domain.HandledGame, error) {
	query := `
		SELECT game_id, game_date, game_time, is_poll_created, reg_date, venue, game_type
		FROM handled_games
		WHERE game_id = $1
	`
	game := &domain.HandledGame{}
	err := r.DB.QueryRowContext(ctx, query, gameID).Scan(&game.GameID, &game.GameDate, &game.GameTime, &game.IsPollCreated, &game.RegDate, &game.Venue, &game.GameType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return game, nil
}

// ScanIDs returns every stored game id, draining keyset pages until a short
// page. The diff must never run against a partial scan.
func (r *HandledGameRepository) ScanIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT game_id
		FROM handled_games
		WHERE game_id > $1
		ORDER BY game_id
		LIMIT $2
	`
	var ids []string
	lastKey := ""
	for {
		rows, err := r.DB.QueryContext(ctx, query, lastKey, scanPageSize)
		if err != nil {
			return nil, err
		}
		count := 0
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return nil, err
			}
			ids = append(ids, id)
			lastKey = id
			count++
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
		if count < scanPageSize {
			break
		}
	}
	return ids, nil
}
