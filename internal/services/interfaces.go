package services

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/Nosdarm/rpg-sub000/internal/models"
)

// GenerationService implements the gateway command operations over
// pending generation records.
type GenerationService interface {
	Trigger(ctx context.Context, guildID string, req *models.TriggerRequest) (*models.PendingGeneration, error)
	List(ctx context.Context, guildID string, status models.GenerationStatus, page, pageSize int) (*models.PendingGenerationPage, error)
	GetByID(ctx context.Context, guildID, id string) (*models.PendingGeneration, error)
	Approve(ctx context.Context, guildID, id, masterID string) (*models.PendingGeneration, error)
	Update(ctx context.Context, guildID, id string, req *models.UpdateRequest) (*models.PendingGeneration, error)
}

// GenerationOutput is what the external AI producer hands back for one
// trigger: the prompt that was sent, the verbatim response, and the
// structured content extracted from it. ParsedData may be empty when
// extraction failed; ValidationIssues carries the diagnostics.
type GenerationOutput struct {
	PromptText       string
	RawResponseText  string
	ParsedData       json.RawMessage
	ValidationIssues json.RawMessage
	Confidence       *decimal.Decimal
}

// ContentGenerator is the external AI producer boundary.
type ContentGenerator interface {
	Generate(ctx context.Context, guildID string, req *models.TriggerRequest) (*GenerationOutput, error)
}

// ContentPersister is the external game-data persistence boundary.
// Persist writes approved content into the game stores and returns the
// ids of the entities it created.
type ContentPersister interface {
	Persist(ctx context.Context, guildID, entityType string, parsed json.RawMessage) ([]string, error)
}
