package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Nosdarm/rpg-sub000/internal/models"
)

// MockContentGenerator produces canned candidate content per entity
// type for development and testing. The real producer is an external
// AI service reached over its own transport.
type MockContentGenerator struct {
	samples map[string]string
}

// NewMockContentGenerator creates a generator with one hardcoded sample
// per generatable entity type.
func NewMockContentGenerator() ContentGenerator {
	return &MockContentGenerator{
		samples: map[string]string{
			models.EntityLocation:   `{"name":"Sunken Archive","description":"A flooded library beneath the old quarter","danger_level":2}`,
			models.EntityNPC:        `{"name":"Forest Spirit","role":"guide","disposition":"neutral"}`,
			models.EntityItem:       `{"name":"Gilded Compass","rarity":"rare","weight":0.5}`,
			models.EntityQuest:      `{"title":"The Silent Bell","objective":"Find out why the tower bell stopped ringing","reward_gold":120}`,
			models.EntityFaction:    `{"name":"Order of the Wake","alignment":"lawful","influence":3}`,
			models.EntityWorldEvent: `{"title":"Red Comet","scope":"regional","duration_days":7}`,
			models.EntityLoreEntry:  `{"title":"On the First Tide","era":"founding","summary":"Fragment of the harbor chronicles"}`,
		},
	}
}

func (g *MockContentGenerator) Generate(ctx context.Context, guildID string, req *models.TriggerRequest) (*GenerationOutput, error) {
	prompt := fmt.Sprintf("Generate a %s for guild %s with context %s",
		req.EntityType, guildID, string(req.Context))

	sample, ok := g.samples[req.EntityType]
	if !ok {
		// Unknown types still produce a record; it lands in
		// VALIDATION_FAILED because nothing could be parsed.
		return &GenerationOutput{
			PromptText:       prompt,
			RawResponseText:  "no template for entity type " + req.EntityType,
			ValidationIssues: json.RawMessage(`[{"field":"entity_type","issue":"no sample content available"}]`),
		}, nil
	}

	confidence := decimal.NewFromFloat(0.92)
	return &GenerationOutput{
		PromptText:      prompt,
		RawResponseText: sample,
		ParsedData:      json.RawMessage(sample),
		Confidence:      &confidence,
	}, nil
}

// MockContentPersister pretends to write approved content into the
// game stores and hands back freshly minted entity ids.
type MockContentPersister struct{}

func NewMockContentPersister() ContentPersister {
	return &MockContentPersister{}
}

func (p *MockContentPersister) Persist(ctx context.Context, guildID, entityType string, parsed json.RawMessage) ([]string, error) {
	if len(parsed) == 0 || !json.Valid(parsed) {
		return nil, fmt.Errorf("cannot persist %s: parsed data is not valid JSON", entityType)
	}
	return []string{entityType + "-" + uuid.NewString()}, nil
}
