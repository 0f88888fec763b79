package repositories

import (
	"context"

	"gorm.io/gorm"

	"casamento/app/models/pixkey"
	"casamento/pkg/database"
)

// PixKeyRepository persists stored PIX keys.
type PixKeyRepository struct {
	db *gorm.DB
}

// NewPixKeyRepository builds a repository over the shared connection.
func NewPixKeyRepository() *PixKeyRepository {
	return &PixKeyRepository{
		db: database.DB,
	}
}

// List returns every stored key.
func (r *PixKeyRepository) List(ctx context.Context) ([]pixkey.PixKey, error) {
	var keys []pixkey.PixKey
	err := r.db.WithContext(ctx).Order("name ASC").Find(&keys).Error
	return keys, err
}

// GetByID loads one key.
func (r *PixKeyRepository) GetByID(ctx context.Context, id uint64) (*pixkey.PixKey, error) {
	var k pixkey.PixKey
	if err := r.db.WithContext(ctx).First(&k, id).Error; err != nil {
		return nil, err
	}
	return &k, nil
}

// Create inserts one key. The key value carries a unique index; duplicates
// surface as gorm.ErrDuplicatedKey.
func (r *PixKeyRepository) Create(ctx context.Context, k *pixkey.PixKey) error {
	return r.db.WithContext(ctx).Create(k).Error
}

// Update persists every field of the key row.
func (r *PixKeyRepository) Update(ctx context.Context, k *pixkey.PixKey) error {
	return r.db.WithContext(ctx).Save(k).Error
}

// Delete removes a key. Gifts referencing it keep a dangling id and fall
// back to their free-text key, which the UI surfaces for cleanup.
func (r *PixKeyRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&pixkey.PixKey{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
