package repositories

import (
	"context"

	"gorm.io/gorm"

	"casamento/app/models/gift"
	"casamento/pkg/database"
)

// GiftRepository persists registry items.
type GiftRepository struct {
	db *gorm.DB
}

// NewGiftRepository builds a repository over the shared connection.
func NewGiftRepository() *GiftRepository {
	return &GiftRepository{
		db: database.DB,
	}
}

// List returns every gift with its referenced PIX key preloaded.
func (r *GiftRepository) List(ctx context.Context) ([]gift.Gift, error) {
	var gifts []gift.Gift
	err := r.db.WithContext(ctx).Preload("PixKey").Order("name ASC").Find(&gifts).Error
	return gifts, err
}

// GetByID loads one gift with its PIX key.
func (r *GiftRepository) GetByID(ctx context.Context, id uint64) (*gift.Gift, error) {
	var g gift.Gift
	if err := r.db.WithContext(ctx).Preload("PixKey").First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// Create inserts one gift.
func (r *GiftRepository) Create(ctx context.Context, g *gift.Gift) error {
	return r.db.WithContext(ctx).Create(g).Error
}

// Update persists every field of the gift row.
func (r *GiftRepository) Update(ctx context.Context, g *gift.Gift) error {
	return r.db.WithContext(ctx).Save(g).Error
}

// Delete removes a gift.
func (r *GiftRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&gift.Gift{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
