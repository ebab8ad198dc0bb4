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

// GormIngredientRepository implements recipe.IngredientRepository using GORM
type GormIngredientRepository struct {
	db *gorm.DB
}

// NewGormIngredientRepository creates a new GormIngredientRepository
func NewGormIngredientRepository(db *gorm.DB) *GormIngredientRepository {
	return &GormIngredientRepository{db: db}
}

// Create creates a new ingredient
func (r *GormIngredientRepository) Create(ctx context.Context, i *recipe.Ingredient) error {
	var model models.IngredientModel
	model.FromDomain(i)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update updates an existing ingredient
func (r *GormIngredientRepository) Update(ctx context.Context, i *recipe.Ingredient) error {
	var model models.IngredientModel
	model.FromDomain(i)
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

// DeleteForOwner removes the ingredient and any recipe associations to it
func (r *GormIngredientRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("owner_id = ? AND id = ?", ownerID, id).
			Delete(&models.IngredientModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Where("ingredient_id = ?", id).Delete(&models.RecipeIngredientModel{}).Error
	})
}

// FindByIDForOwner finds an ingredient by ID within an owner's collection
func (r *GormIngredientRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*recipe.Ingredient, error) {
	var model models.IngredientModel
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

// FindForOwner lists the owner's ingredients, newest first.
// With assignedOnly, only ingredients referenced by at least one recipe.
func (r *GormIngredientRepository) FindForOwner(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]*recipe.Ingredient, error) {
	query := r.db.WithContext(ctx).
		Model(&models.IngredientModel{}).
		Where("owner_id = ?", ownerID)

	if assignedOnly {
		query = query.Where("id IN (?)",
			r.db.Model(&models.RecipeIngredientModel{}).Select("ingredient_id"))
	}

	var ingredientModels []models.IngredientModel
	if err := query.Order("created_at DESC").Find(&ingredientModels).Error; err != nil {
		return nil, err
	}

	ingredients := make([]*recipe.Ingredient, len(ingredientModels))
	for i := range ingredientModels {
		ingredients[i] = ingredientModels[i].ToDomain()
	}
	return ingredients, nil
}

// ExistsByName checks per-owner name uniqueness
func (r *GormIngredientRepository) ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.IngredientModel{}).
		Where("owner_id = ? AND name = ?", ownerID, name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistAllForOwner checks that every listed ID belongs to the owner.
// Duplicated IDs count once, matching what COUNT over IN returns.
func (r *GormIngredientRepository) ExistAllForOwner(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (bool, error) {
	distinct := distinctIDs(ids)
	if len(distinct) == 0 {
		return true, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.IngredientModel{}).
		Where("owner_id = ? AND id IN ?", ownerID, distinct).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(distinct)), nil
}

// Ensure GormIngredientRepository implements the repository interface
var _ recipe.IngredientRepository = (*GormIngredientRepository)(nil)
