package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipehub/backend/internal/domain/recipe"
	"github.com/recipehub/backend/internal/domain/shared"
	"github.com/recipehub/backend/internal/infrastructure/persistence/models"
)

// GormTagRepository implements recipe.TagRepository using GORM
type GormTagRepository struct {
	db *gorm.DB
}

// NewGormTagRepository creates a new GormTagRepository
func NewGormTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// Create creates a new tag
func (r *GormTagRepository) Create(ctx context.Context, t *recipe.Tag) error {
	var model models.TagModel
	model.FromDomain(t)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update updates an existing tag
func (r *GormTagRepository) Update(ctx context.Context, t *recipe.Tag) error {
	var model models.TagModel
	model.FromDomain(t)
	result := r.db.WithContext(ctx).Save(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteForOwner removes the tag and any recipe associations to it
func (r *GormTagRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("owner_id = ? AND id = ?", ownerID, id).
			Delete(&models.TagModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Where("tag_id = ?", id).Delete(&models.RecipeTagModel{}).Error
	})
}

// FindByIDForOwner finds a tag by ID within an owner's collection
func (r *GormTagRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*recipe.Tag, error) {
	var model models.TagModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindForOwner lists the owner's tags, newest first.
// With assignedOnly, only tags referenced by at least one recipe.
func (r *GormTagRepository) FindForOwner(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]*recipe.Tag, error) {
	query := r.db.WithContext(ctx).
		Model(&models.TagModel{}).
		Where("owner_id = ?", ownerID)

	if assignedOnly {
		query = query.Where("id IN (?)",
			r.db.Model(&models.RecipeTagModel{}).Select("tag_id"))
	}

	var tagModels []models.TagModel
	if err := query.Order("created_at DESC").Find(&tagModels).Error; err != nil {
		return nil, err
	}

	tags := make([]*recipe.Tag, len(tagModels))
	for i := range tagModels {
		tags[i] = tagModels[i].ToDomain()
	}
	return tags, nil
}

// ExistsByName checks per-owner name uniqueness
func (r *GormTagRepository) ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TagModel{}).
		Where("owner_id = ? AND name = ?", ownerID, name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistAllForOwner checks that every listed ID belongs to the owner.
// Duplicated IDs count once, matching what COUNT over IN returns.
func (r *GormTagRepository) ExistAllForOwner(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (bool, error) {
	distinct := distinctIDs(ids)
	if len(distinct) == 0 {
		return true, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TagModel{}).
		Where("owner_id = ? AND id IN ?", ownerID, distinct).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(distinct)), nil
}

// distinctIDs returns ids with duplicates removed, preserving order.
func distinctIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Ensure GormTagRepository implements the repository interface
var _ recipe.TagRepository = (*GormTagRepository)(nil)
