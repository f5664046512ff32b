// Package gateway is the console's view of the generation backend:
// a small command-style interface plus an HTTP client implementing it.
package gateway

import (
	"context"

	"github.com/Nosdarm/rpg-sub000/internal/models"
)

// Gateway is the boundary the console components talk through. All
// operations are guild-scoped; persistence and generation both live on
// the far side of this interface.
type Gateway interface {
	Trigger(ctx context.Context, guildID string, req *models.TriggerRequest) (*models.PendingGeneration, error)
	List(ctx context.Context, guildID string, status models.GenerationStatus, page, pageSize int) (*models.PendingGenerationPage, error)
	GetByID(ctx context.Context, guildID, id string) (*models.PendingGeneration, error)
	Approve(ctx context.Context, guildID, id, masterID string) (*models.PendingGeneration, error)
	Update(ctx context.Context, guildID, id string, req *models.UpdateRequest) (*models.PendingGeneration, error)
}
