package store

import (
	"context"

	"github.com/VoyageGenie/voyage-backend/types"
)

// ItineraryStore handles persistence of whole itinerary documents.
// Rows are keyed by itinerary id and scoped by the owning user; the
// document itself is stored as one opaque JSON payload.
type ItineraryStore interface {
	// ListByUser returns all itinerary documents owned by the user.
	ListByUser(ctx context.Context, userID string) ([]types.Itinerary, error)
	// Get returns one itinerary document by id, scoped to the owner.
	Get(ctx context.Context, userID, id string) (*types.Itinerary, error)
	// UpsertAll writes the owner's whole itinerary list in one batch,
	// inserting or overwriting rows by id. It cannot express deletions.
	UpsertAll(ctx context.Context, userID string, itineraries []types.Itinerary) error
	// Delete removes one itinerary row by id, scoped to the owner.
	Delete(ctx context.Context, userID, id string) error
}

// UserStore handles the credential table.
type UserStore interface {
	CreateUser(ctx context.Context, user *types.User) error
	GetUser(ctx context.Context, username string) (*types.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}
