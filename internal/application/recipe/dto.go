package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/recipehub/backend/internal/domain/recipe"
)

// CreateRecipeRequest represents a request to create a new recipe
type CreateRecipeRequest struct {
	Title         string          `json:"title" binding:"required,min=1,max=255"`
	Description   string          `json:"description"`
	TimeMinutes   int             `json:"time_minutes" binding:"min=0"`
	Price         decimal.Decimal `json:"price"`
	Link          string          `json:"link" binding:"max=255"`
	TagIDs        []uuid.UUID     `json:"tag_ids"`
	IngredientIDs []uuid.UUID     `json:"ingredient_ids"`
}

// UpdateRecipeRequest represents a full replacement of a recipe
type UpdateRecipeRequest struct {
	Title         string          `json:"title" binding:"required,min=1,max=255"`
	Description   string          `json:"description"`
	TimeMinutes   int             `json:"time_minutes" binding:"min=0"`
	Price         decimal.Decimal `json:"price"`
	Link          string          `json:"link" binding:"max=255"`
	TagIDs        []uuid.UUID     `json:"tag_ids"`
	IngredientIDs []uuid.UUID     `json:"ingredient_ids"`
}

// PatchRecipeRequest represents a partial update. Nil fields are left
// unchanged.
type PatchRecipeRequest struct {
	Title         *string          `json:"title" binding:"omitempty,min=1,max=255"`
	Description   *string          `json:"description"`
	TimeMinutes   *int             `json:"time_minutes" binding:"omitempty,min=0"`
	Price         *decimal.Decimal `json:"price"`
	Link          *string          `json:"link" binding:"omitempty,max=255"`
	ImageRef      *string          `json:"image_ref"`
	TagIDs        *[]uuid.UUID     `json:"tag_ids"`
	IngredientIDs *[]uuid.UUID     `json:"ingredient_ids"`
}

// RecipeResponse represents a recipe in API responses
type RecipeResponse struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	TimeMinutes   int             `json:"time_minutes"`
	Price         decimal.Decimal `json:"price"`
	Link          string          `json:"link"`
	ImageRef      string          `json:"image_ref"`
	TagIDs        []uuid.UUID     `json:"tag_ids"`
	IngredientIDs []uuid.UUID     `json:"ingredient_ids"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// RecipeListFilter carries the raw query parameters for recipe listing.
// Tags and Ingredients are comma-separated ID lists.
type RecipeListFilter struct {
	Tags        string `form:"tags"`
	Ingredients string `form:"ingredients"`
}

// CreateLabelRequest represents a request to create a tag or ingredient
type CreateLabelRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// UpdateLabelRequest represents a request to rename a tag or ingredient
type UpdateLabelRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// PatchLabelRequest represents a partial update of a tag or ingredient.
// An absent name leaves the label untouched.
type PatchLabelRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=255"`
}

// LabelResponse represents a tag or ingredient in API responses
type LabelResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LabelListFilter carries the query parameters for tag and ingredient
// listing
type LabelListFilter struct {
	Assigned string `form:"assigned"`
}

// AssignedOnly reports whether the listing should be restricted to
// labels referenced by at least one recipe
func (f LabelListFilter) AssignedOnly() bool {
	return f.Assigned == "1"
}

// ParseIDList splits a comma-separated list of UUIDs.
// Malformed tokens are skipped.
func ParseIDList(raw string) []uuid.UUID {
	if raw == "" {
		return nil
	}
	var ids []uuid.UUID
	for _, token := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(token))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// ToRecipeResponse converts a domain Recipe to RecipeResponse
func ToRecipeResponse(r *recipe.Recipe) RecipeResponse {
	tagIDs := r.TagIDs
	if tagIDs == nil {
		tagIDs = []uuid.UUID{}
	}
	ingredientIDs := r.IngredientIDs
	if ingredientIDs == nil {
		ingredientIDs = []uuid.UUID{}
	}
	return RecipeResponse{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		TimeMinutes:   r.TimeMinutes,
		Price:         r.Price,
		Link:          r.Link,
		ImageRef:      r.ImageRef,
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Version:       r.Version,
	}
}

// ToTagResponse converts a domain Tag to LabelResponse
func ToTagResponse(t *recipe.Tag) LabelResponse {
	return LabelResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToIngredientResponse converts a domain Ingredient to LabelResponse
func ToIngredientResponse(i *recipe.Ingredient) LabelResponse {
	return LabelResponse{
		ID:        i.ID,
		Name:      i.Name,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
