package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/procdungeon/internal/doortype"
	"github.com/udisondev/procdungeon/internal/model"
)

// upsertDoorTypeSQL replaces a door type by name.
const upsertDoorTypeSQL = `
	INSERT INTO door_types (name, size_x, size_y, size_z, door_offset, color, description, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	ON CONFLICT (name) DO UPDATE SET
		size_x = EXCLUDED.size_x,
		size_y = EXCLUDED.size_y,
		size_z = EXCLUDED.size_z,
		door_offset = EXCLUDED.door_offset,
		color = EXCLUDED.color,
		description = EXCLUDED.description,
		updated_at = now()`

// DoorTypeRepository persists authored door types.
type DoorTypeRepository struct {
	pool *pgxpool.Pool
}

// NewDoorTypeRepository creates a new door type repository.
func NewDoorTypeRepository(pool *pgxpool.Pool) *DoorTypeRepository {
	return &DoorTypeRepository{pool: pool}
}

// Save inserts or replaces a door type by name.
func (r *DoorTypeRepository) Save(ctx context.Context, dt *doortype.DoorType) error {
	size := dt.Size()
	_, err := r.pool.Exec(ctx, upsertDoorTypeSQL,
		dt.Name(), size.X, size.Y, size.Z, dt.Offset(), int64(dt.Color().Packed()), dt.Description(),
	)
	if err != nil {
		return fmt.Errorf("saving door type %q: %w", dt.Name(), err)
	}
	return nil
}

// SaveAll saves door types in a single transaction.
func (r *DoorTypeRepository) SaveAll(ctx context.Context, types []*doortype.DoorType) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rolling back door type import", "err", err)
		}
	}()

	batch := &pgx.Batch{}
	for _, dt := range types {
		size := dt.Size()
		batch.Queue(upsertDoorTypeSQL,
			dt.Name(), size.X, size.Y, size.Z, dt.Offset(), int64(dt.Color().Packed()), dt.Description(),
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("saving %d door types: %w", len(types), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing door types: %w", err)
	}
	return nil
}

// Load loads a door type by name.
// Returns nil, nil if the door type does not exist.
func (r *DoorTypeRepository) Load(ctx context.Context, name string) (*doortype.DoorType, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT name, size_x, size_y, size_z, door_offset, color, description
		FROM door_types
		WHERE name = $1`, name)

	dt, err := scanDoorType(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading door type %q: %w", name, err)
	}
	return dt, nil
}

// LoadAll loads every door type ordered by name.
func (r *DoorTypeRepository) LoadAll(ctx context.Context) ([]*doortype.DoorType, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, size_x, size_y, size_z, door_offset, color, description
		FROM door_types
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("loading all door types: %w", err)
	}
	defer rows.Close()

	var types []*doortype.DoorType
	for rows.Next() {
		dt, err := scanDoorType(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning door type row: %w", err)
		}
		types = append(types, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating door type rows: %w", err)
	}
	return types, nil
}

// Delete removes a door type. Deleting a missing name is not an error.
func (r *DoorTypeRepository) Delete(ctx context.Context, name string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM door_types WHERE name = $1`, name); err != nil {
		return fmt.Errorf("deleting door type %q: %w", name, err)
	}
	return nil
}

func scanDoorType(row pgx.Row) (*doortype.DoorType, error) {
	var (
		name        string
		x, y, z     float64
		offset      float64
		color       int64
		description string
	)
	if err := row.Scan(&name, &x, &y, &z, &offset, &color, &description); err != nil {
		return nil, err
	}
	return doortype.NewDoorType(
		name,
		model.NewVector(x, y, z),
		offset,
		model.UnpackColor(uint32(color)),
		description,
	), nil
}
