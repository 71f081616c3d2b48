package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cusco-tours/internal/infra"
)

// PostgresStore keeps each (profile, slot) pair as a jsonb row. Writes are
// upserts, so every Set is immediately durable.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Get(ctx context.Context, profileID uuid.UUID, slot string, dest any) (bool, error) {
	const query = `SELECT data FROM profile_state WHERE profile_id = $1 AND slot = $2`

	var data []byte
	err := s.pool.QueryRow(ctx, query, profileID, slot).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to read profile slot", err, infra.KindStorageFailure)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, infra.WrapRepoErr("failed to decode profile slot", err, infra.KindStorageFailure)
	}
	return true, nil
}

func (s *PostgresStore) Set(ctx context.Context, profileID uuid.UUID, slot string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return infra.WrapRepoErr("failed to encode profile slot", err, infra.KindStorageFailure)
	}

	const query = `
		INSERT INTO profile_state (profile_id, slot, data, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (profile_id, slot)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()`

	if _, err := s.pool.Exec(ctx, query, profileID, slot, data); err != nil {
		return infra.WrapRepoErr("failed to write profile slot", err, infra.KindStorageFailure)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, profileID uuid.UUID, slot string) error {
	const query = `DELETE FROM profile_state WHERE profile_id = $1 AND slot = $2`

	if _, err := s.pool.Exec(ctx, query, profileID, slot); err != nil {
		return infra.WrapRepoErr("failed to remove profile slot", err, infra.KindStorageFailure)
	}
	return nil
}
