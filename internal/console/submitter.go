// Package console implements the game-master review surface: trigger
// form, pending worklist, review editor and the dashboard that routes
// between them. All state here is per-view client state; every durable
// mutation goes through the gateway.
package console

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	apperrors "github.com/Nosdarm/rpg-sub000/internal/errors"
	"github.com/Nosdarm/rpg-sub000/internal/gateway"
	"github.com/Nosdarm/rpg-sub000/internal/models"
)

// TriggerSubmitter validates the trigger form and submits a new
// generation request. All inputs arrive as raw text; everything is
// validated locally before the gateway is called.
type TriggerSubmitter struct {
	gw gateway.Gateway
}

func NewTriggerSubmitter(gw gateway.Gateway) *TriggerSubmitter {
	return &TriggerSubmitter{gw: gw}
}

// Submit parses and validates the form fields, then triggers a new
// generation for the guild. Blank context text means "no context" and
// is sent as an empty object. Field-level failures return an
// *errors.ErrValidation and never reach the gateway.
func (s *TriggerSubmitter) Submit(ctx context.Context, guildID, userID, entityType, contextText, locationText, playerText string) (*models.PendingGeneration, error) {
	if entityType == "" {
		return nil, apperrors.Validation("entity_type", "selection is required")
	}
	if !models.ValidEntityType(entityType) {
		return nil, apperrors.Validation("entity_type", "unknown entity type "+entityType)
	}

	contextText = strings.TrimSpace(contextText)
	if contextText == "" {
		contextText = "{}"
	}
	if !json.Valid([]byte(contextText)) {
		return nil, apperrors.Validation("generation_context", "invalid format")
	}

	locationID, err := parseOptionalID("location_id", locationText)
	if err != nil {
		return nil, err
	}
	playerID, err := parseOptionalID("player_id", playerText)
	if err != nil {
		return nil, err
	}

	req := &models.TriggerRequest{
		EntityType: entityType,
		Context:    json.RawMessage(contextText),
		LocationID: locationID,
		PlayerID:   playerID,
	}
	if userID != "" {
		req.TriggeredByUserID = &userID
	}
	return s.gw.Trigger(ctx, guildID, req)
}

func parseOptionalID(field, text string) (*int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, apperrors.Validation(field, "must be an integer")
	}
	return &id, nil
}
