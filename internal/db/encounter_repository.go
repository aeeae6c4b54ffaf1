package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EncounterRecord is one finished run. Summary and Snapshot are msgpack blobs.
type EncounterRecord struct {
	ID                uuid.UUID
	ConfigFingerprint string
	StartedAt         time.Time
	ElapsedSeconds    float64
	Kills             int
	Deaths            int
	Shots             int
	ScenesCleared     int
	Summary           []byte
	Snapshot          []byte
	CreatedAt         time.Time
}

// EncounterRepository persists encounter records.
type EncounterRepository struct {
	pool *pgxpool.Pool
}

// NewEncounterRepository creates a repository over pool.
func NewEncounterRepository(pool *pgxpool.Pool) *EncounterRepository {
	return &EncounterRepository{pool: pool}
}

// Save upserts a record by ID.
func (r *EncounterRepository) Save(ctx context.Context, rec EncounterRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO encounters
		   (id, config_fingerprint, started_at, elapsed_seconds, kills, deaths, shots, scenes_cleared, summary, snapshot)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   elapsed_seconds = EXCLUDED.elapsed_seconds,
		   kills           = EXCLUDED.kills,
		   deaths          = EXCLUDED.deaths,
		   shots           = EXCLUDED.shots,
		   scenes_cleared  = EXCLUDED.scenes_cleared,
		   summary         = EXCLUDED.summary,
		   snapshot        = EXCLUDED.snapshot`,
		rec.ID.String(), rec.ConfigFingerprint, rec.StartedAt, rec.ElapsedSeconds,
		rec.Kills, rec.Deaths, rec.Shots, rec.ScenesCleared, rec.Summary, rec.Snapshot,
	)
	if err != nil {
		return fmt.Errorf("saving encounter %s: %w", rec.ID, err)
	}
	return nil
}

// Get returns the record for id, or nil, nil when there is none.
func (r *EncounterRepository) Get(ctx context.Context, id uuid.UUID) (*EncounterRecord, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, config_fingerprint, started_at, elapsed_seconds, kills, deaths, shots,
		        scenes_cleared, summary, snapshot, created_at
		 FROM encounters WHERE id = $1`, id.String())
	rec, err := scanEncounter(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying encounter %s: %w", id, err)
	}
	return rec, nil
}

// Recent returns up to limit records for fingerprint, newest first.
// An empty fingerprint matches every config.
func (r *EncounterRepository) Recent(ctx context.Context, fingerprint string, limit int) ([]EncounterRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, config_fingerprint, started_at, elapsed_seconds, kills, deaths, shots,
		        scenes_cleared, summary, snapshot, created_at
		 FROM encounters
		 WHERE $1 = '' OR config_fingerprint = $1
		 ORDER BY started_at DESC
		 LIMIT $2`, fingerprint, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent encounters: %w", err)
	}
	defer rows.Close()

	var out []EncounterRecord
	for rows.Next() {
		rec, err := scanEncounter(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning encounter: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating encounters: %w", err)
	}
	return out, nil
}

func scanEncounter(row pgx.Row) (*EncounterRecord, error) {
	var (
		rec EncounterRecord
		id  string
	)
	err := row.Scan(&id, &rec.ConfigFingerprint, &rec.StartedAt, &rec.ElapsedSeconds,
		&rec.Kills, &rec.Deaths, &rec.Shots, &rec.ScenesCleared,
		&rec.Summary, &rec.Snapshot, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	rec.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parsing encounter id %q: %w", id, err)
	}
	return &rec, nil
}
