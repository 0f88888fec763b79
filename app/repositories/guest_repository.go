// Package repositories wraps GORM access behind context-aware methods.
package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"casamento/app/models/guest"
	"casamento/pkg/database"
)

// GuestRepository persists invited parties.
type GuestRepository struct {
	db *gorm.DB
}

// NewGuestRepository builds a repository over the shared connection.
func NewGuestRepository() *GuestRepository {
	return &GuestRepository{
		db: database.DB,
	}
}

// Create inserts one guest.
func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	return r.db.WithContext(ctx).Create(g).Error
}

// CreateBatch inserts the bulk-imported guests in chunks.
func (r *GuestRepository) CreateBatch(ctx context.Context, guests []guest.Guest) error {
	if len(guests) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(guests, 100).Error
}

// Update persists every field of the guest row. Last write wins; there is no
// optimistic locking at this scale.
func (r *GuestRepository) Update(ctx context.Context, g *guest.Guest) error {
	return r.db.WithContext(ctx).Save(g).Error
}

// Delete removes a guest for good (admin action, no soft delete).
func (r *GuestRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&guest.Guest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID loads one guest by primary key.
func (r *GuestRepository) GetByID(ctx context.Context, id string) (*guest.Guest, error) {
	var g guest.Guest
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// GetByToken loads one guest by its self-service token.
func (r *GuestRepository) GetByToken(ctx context.Context, token string) (*guest.Guest, error) {
	var g guest.Guest
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// GetByCode loads one guest by its 6-digit confirmation code. Callers must
// have validated the code format already.
func (r *GuestRepository) GetByCode(ctx context.Context, code string) (*guest.Guest, error) {
	var g guest.Guest
	if err := r.db.WithContext(ctx).Where("confirmation_code = ?", code).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// List returns every guest ordered by name. The whole guest list of a
// wedding fits in memory by definition; status filtering happens in the
// caller through the party aggregation.
func (r *GuestRepository) List(ctx context.Context) ([]guest.Guest, error) {
	var guests []guest.Guest
	err := r.db.WithContext(ctx).Order("name ASC").Find(&guests).Error
	return guests, err
}

// ExistingNamesLower returns the lowercased set of persisted guest names,
// used by the bulk import's duplicate detection.
func (r *GuestRepository) ExistingNamesLower(ctx context.Context) (map[string]bool, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&guest.Guest{}).Pluck("name", &names).Error; err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = true
	}
	return set, nil
}

// CodeExists reports whether a confirmation code is already taken.
func (r *GuestRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&guest.Guest{}).
		Where("confirmation_code = ?", code).
		Count(&count).Error
	return count > 0, err
}
