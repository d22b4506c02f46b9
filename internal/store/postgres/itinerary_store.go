package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/VoyageGenie/voyage-backend/internal/store"
	"github.com/VoyageGenie/voyage-backend/logger"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/jackc/pgx/v5"
)

// ItineraryStore implements store.ItineraryStore using PostgreSQL.
// Each row holds one full itinerary document as a JSONB payload keyed by
// itinerary id and scoped to the owning user.
type ItineraryStore struct {
	db DBConn
}

// NewItineraryStore creates a new ItineraryStore instance.
func NewItineraryStore(db DBConn) *ItineraryStore {
	return &ItineraryStore{db: db}
}

// ListByUser retrieves all itinerary documents owned by the user.
func (s *ItineraryStore) ListByUser(ctx context.Context, userID string) ([]types.Itinerary, error) {
	query := `
		SELECT data
		FROM itineraries
		WHERE user_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var itineraries []types.Itinerary
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}

		var it types.Itinerary
		if err := json.Unmarshal(raw, &it); err != nil {
			// A corrupt row should not take the whole list down.
			logger.GetLogger().Errorw("Skipping undecodable itinerary row", "userId", userID, "error", err)
			continue
		}
		itineraries = append(itineraries, it)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return itineraries, nil
}

// Get retrieves one itinerary document by id, scoped to the owner.
func (s *ItineraryStore) Get(ctx context.Context, userID, id string) (*types.Itinerary, error) {
	query := `
		SELECT data
		FROM itineraries
		WHERE id = $1 AND user_id = $2`

	var raw []byte
	err := s.db.QueryRow(ctx, query, id, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	var it types.Itinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, err
	}

	return &it, nil
}

// UpsertAll writes the owner's whole itinerary list in one transaction,
// inserting or overwriting rows by id. Rows belonging to other users are
// never touched; deletions are not expressed by this path.
func (s *ItineraryStore) UpsertAll(ctx context.Context, userID string, itineraries []types.Itinerary) error {
	if len(itineraries) == 0 {
		return nil
	}

	query := `
		INSERT INTO itineraries (id, user_id, data, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = NOW()
		WHERE itineraries.user_id = EXCLUDED.user_id`

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for i := range itineraries {
		raw, err := json.Marshal(&itineraries[i])
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, itineraries[i].ID, userID, raw); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete removes one itinerary row by id, scoped to the owner.
func (s *ItineraryStore) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM itineraries
		WHERE id = $1 AND user_id = $2`

	result, err := s.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}
