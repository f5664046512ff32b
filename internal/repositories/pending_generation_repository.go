package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Nosdarm/rpg-sub000/internal/db"
	"github.com/Nosdarm/rpg-sub000/internal/models"
)

type pendingGenerationRepository struct {
	db *db.DB
}

func NewPendingGenerationRepository(database *db.DB) PendingGenerationRepository {
	return &pendingGenerationRepository{db: database}
}

func (r *pendingGenerationRepository) Create(ctx context.Context, g *models.PendingGeneration) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *pendingGenerationRepository) GetByID(ctx context.Context, guildID, id string) (*models.PendingGeneration, error) {
	var g models.PendingGeneration
	err := r.db.WithContext(ctx).
		First(&g, "guild_id = ? AND id = ?", guildID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *pendingGenerationRepository) List(ctx context.Context, guildID string, status models.GenerationStatus, limit, offset int) ([]*models.PendingGeneration, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.PendingGeneration{}).
		Where("guild_id = ?", guildID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []*models.PendingGeneration
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *pendingGenerationRepository) Update(ctx context.Context, g *models.PendingGeneration) error {
	g.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(g).Error
}
