package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Nosdarm/rpg-sub000/internal/cache"
	apperrors "github.com/Nosdarm/rpg-sub000/internal/errors"
	"github.com/Nosdarm/rpg-sub000/internal/moderation"
	"github.com/Nosdarm/rpg-sub000/internal/models"
	"github.com/Nosdarm/rpg-sub000/internal/repositories"
)

const (
	defaultPageSize = 20
	recordCacheTTL  = 5 * time.Minute
)

type generationService struct {
	repo      repositories.PendingGenerationRepository
	generator ContentGenerator
	persister ContentPersister
	cache     *cache.Cache
}

func NewGenerationService(repo repositories.PendingGenerationRepository, generator ContentGenerator, persister ContentPersister, c *cache.Cache) GenerationService {
	return &generationService{repo: repo, generator: generator, persister: persister, cache: c}
}

func recordCacheKey(guildID, id string) string {
	return fmt.Sprintf("pending_generation:%s:%s", guildID, id)
}

func (s *generationService) Trigger(ctx context.Context, guildID string, req *models.TriggerRequest) (*models.PendingGeneration, error) {
	if req == nil || req.EntityType == "" {
		return nil, apperrors.Validation("entity_type", "is required")
	}
	if !models.ValidEntityType(req.EntityType) {
		return nil, apperrors.Validation("entity_type", "unknown entity type "+req.EntityType)
	}
	contextJSON := req.Context
	if len(contextJSON) == 0 {
		contextJSON = json.RawMessage("{}")
	}

	out, err := s.generator.Generate(ctx, guildID, req)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", req.EntityType, err)
	}

	// Parse success decides the initial state; validation issues inform
	// the reviewer but do not gate moderation on their own.
	status := models.StatusPendingModeration
	if len(out.ParsedData) == 0 || !json.Valid(out.ParsedData) {
		status = models.StatusValidationFailed
	}

	g := &models.PendingGeneration{
		GuildID:           guildID,
		TriggeredByUserID: req.TriggeredByUserID,
		EntityType:        req.EntityType,
		TriggerContext:    contextJSON,
		LocationIDContext: req.LocationID,
		PlayerIDContext:   req.PlayerID,
		AIPromptText:      out.PromptText,
		RawResponseText:   out.RawResponseText,
		ParsedData:        out.ParsedData,
		ValidationIssues:  out.ValidationIssues,
		Confidence:        out.Confidence,
		Status:            status,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *generationService) List(ctx context.Context, guildID string, status models.GenerationStatus, page, pageSize int) (*models.PendingGenerationPage, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.Validation("status", "unknown status "+string(status))
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	items, total, err := s.repo.List(ctx, guildID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.PendingGeneration{}
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &models.PendingGenerationPage{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		PageSize:    pageSize,
	}, nil
}

func (s *generationService) GetByID(ctx context.Context, guildID, id string) (*models.PendingGeneration, error) {
	key := recordCacheKey(guildID, id)
	var cached models.PendingGeneration
	if found, err := s.cache.GetJSON(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	g, err := s.repo.GetByID(ctx, guildID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperrors.ErrNotFound
	}
	_ = s.cache.SetJSON(ctx, key, g, recordCacheTTL)
	return g, nil
}

func (s *generationService) Approve(ctx context.Context, guildID, id, masterID string) (*models.PendingGeneration, error) {
	g, err := s.repo.GetByID(ctx, guildID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperrors.ErrNotFound
	}
	if !moderation.Approvable(g.Status) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNotApprovable, g.Status)
	}

	if masterID != "" {
		g.MasterID = &masterID
	}
	g.Status = models.StatusApproved

	// The persistence attempt decides the terminal state; a failed save
	// is a recorded outcome, not an error of the approve operation.
	ids, perr := s.persister.Persist(ctx, guildID, g.EntityType, g.ParsedData)
	if perr != nil {
		msg := perr.Error()
		g.Status = models.StatusErrorOnSave
		g.SaveError = &msg
	} else {
		g.Status = models.StatusSaved
		g.SaveError = nil
		g.CreatedEntityIDs = ids
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, recordCacheKey(guildID, id))
	return g, nil
}

func (s *generationService) Update(ctx context.Context, guildID, id string, req *models.UpdateRequest) (*models.PendingGeneration, error) {
	if req == nil {
		req = &models.UpdateRequest{}
	}
	g, err := s.repo.GetByID(ctx, guildID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperrors.ErrNotFound
	}

	if req.NewStatus != nil {
		if !req.NewStatus.Valid() {
			return nil, apperrors.Validation("new_status", "unknown status "+string(*req.NewStatus))
		}
		if *req.NewStatus == models.StatusRejected && g.Status == models.StatusRejected {
			return nil, apperrors.Validation("new_status", "record is already rejected")
		}
	}

	edited := len(req.NewParsedData) > 0
	if edited && !json.Valid(req.NewParsedData) {
		return nil, apperrors.Validation("new_parsed_data_json", "invalid format")
	}

	g.Status = moderation.Decide(g.Status, edited, req.NewStatus)
	if edited {
		g.ParsedData = []byte(req.NewParsedData)
	}
	if req.MasterNotes != nil {
		g.MasterNotes = req.MasterNotes
	}
	if req.MasterID != nil {
		g.MasterID = req.MasterID
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, recordCacheKey(guildID, id))
	return g, nil
}
