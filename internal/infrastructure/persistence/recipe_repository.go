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

// GormRecipeRepository implements recipe.RecipeRepository using GORM.
// Mutations that touch association rows run inside one transaction.
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GormRecipeRepository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// Create persists a new recipe with its associations
func (r *GormRecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.RecipeModel
		model.FromDomain(rec)
		if err := tx.Create(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.ErrAlreadyExists
			}
			return err
		}
		return replaceAssociations(tx, rec)
	})
}

// Update persists field changes and replaces the association rows
func (r *GormRecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.RecipeModel
		model.FromDomain(rec)
		result := tx.Save(&model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return replaceAssociations(tx, rec)
	})
}

// DeleteForOwner removes the recipe and its association rows.
// Returns ErrNotFound when the ID is missing or foreign-owned.
func (r *GormRecipeRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("owner_id = ? AND id = ?", ownerID, id).
			Delete(&models.RecipeModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeTagModel{}).Error; err != nil {
			return err
		}
		return tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredientModel{}).Error
	})
}

// FindByIDForOwner loads a recipe with its association IDs
func (r *GormRecipeRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*recipe.Recipe, error) {
	var model models.RecipeModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	rec := model.ToDomain()
	if err := r.loadAssociations(ctx, []*recipe.Recipe{rec}); err != nil {
		return nil, err
	}
	return rec, nil
}

// FindForOwner lists the owner's recipes matching the filter, newest first
func (r *GormRecipeRepository) FindForOwner(ctx context.Context, ownerID uuid.UUID, filter recipe.RecipeFilter) ([]*recipe.Recipe, error) {
	query := r.db.WithContext(ctx).
		Model(&models.RecipeModel{}).
		Where("owner_id = ?", ownerID)

	if len(filter.TagIDs) > 0 {
		query = query.Where("id IN (?)",
			r.db.Model(&models.RecipeTagModel{}).
				Select("recipe_id").
				Where("tag_id IN ?", filter.TagIDs))
	}
	if len(filter.IngredientIDs) > 0 {
		query = query.Where("id IN (?)",
			r.db.Model(&models.RecipeIngredientModel{}).
				Select("recipe_id").
				Where("ingredient_id IN ?", filter.IngredientIDs))
	}

	var recipeModels []models.RecipeModel
	if err := query.Order("created_at DESC").Find(&recipeModels).Error; err != nil {
		return nil, err
	}

	recipes := make([]*recipe.Recipe, len(recipeModels))
	for i := range recipeModels {
		recipes[i] = recipeModels[i].ToDomain()
	}

	if err := r.loadAssociations(ctx, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// replaceAssociations rewrites the association rows to match the aggregate
func replaceAssociations(tx *gorm.DB, rec *recipe.Recipe) error {
	if err := tx.Where("recipe_id = ?", rec.ID).Delete(&models.RecipeTagModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("recipe_id = ?", rec.ID).Delete(&models.RecipeIngredientModel{}).Error; err != nil {
		return err
	}

	if len(rec.TagIDs) > 0 {
		rows := make([]models.RecipeTagModel, len(rec.TagIDs))
		for i, tagID := range rec.TagIDs {
			rows[i] = models.RecipeTagModel{RecipeID: rec.ID, TagID: tagID}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if len(rec.IngredientIDs) > 0 {
		rows := make([]models.RecipeIngredientModel, len(rec.IngredientIDs))
		for i, ingredientID := range rec.IngredientIDs {
			rows[i] = models.RecipeIngredientModel{RecipeID: rec.ID, IngredientID: ingredientID}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

// loadAssociations fills TagIDs and IngredientIDs for the given recipes
func (r *GormRecipeRepository) loadAssociations(ctx context.Context, recipes []*recipe.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(recipes))
	byID := make(map[uuid.UUID]*recipe.Recipe, len(recipes))
	for i, rec := range recipes {
		ids[i] = rec.ID
		byID[rec.ID] = rec
	}

	var tagRows []models.RecipeTagModel
	if err := r.db.WithContext(ctx).
		Where("recipe_id IN ?", ids).
		Find(&tagRows).Error; err != nil {
		return err
	}
	for _, row := range tagRows {
		if rec, ok := byID[row.RecipeID]; ok {
			rec.TagIDs = append(rec.TagIDs, row.TagID)
		}
	}

	var ingredientRows []models.RecipeIngredientModel
	if err := r.db.WithContext(ctx).
		Where("recipe_id IN ?", ids).
		Find(&ingredientRows).Error; err != nil {
		return err
	}
	for _, row := range ingredientRows {
		if rec, ok := byID[row.RecipeID]; ok {
			rec.IngredientIDs = append(rec.IngredientIDs, row.IngredientID)
		}
	}

	return nil
}

// Ensure GormRecipeRepository implements the repository interface
var _ recipe.RecipeRepository = (*GormRecipeRepository)(nil)
