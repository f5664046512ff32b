package repositories

import (
	"context"

	"github.com/Nosdarm/rpg-sub000/internal/models"
)

// PendingGenerationRepository defines the data operations for pending
// generation records. Every operation is guild-scoped.
type PendingGenerationRepository interface {
	Create(ctx context.Context, g *models.PendingGeneration) error
	// GetByID returns (nil, nil) when no record matches.
	GetByID(ctx context.Context, guildID, id string) (*models.PendingGeneration, error)
	// List returns one page of records plus the total match count.
	// An empty status matches all statuses.
	List(ctx context.Context, guildID string, status models.GenerationStatus, limit, offset int) ([]*models.PendingGeneration, int64, error)
	Update(ctx context.Context, g *models.PendingGeneration) error
}
