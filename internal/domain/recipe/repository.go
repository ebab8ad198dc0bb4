package recipe

import (
	"context"

	"github.com/google/uuid"
)

// RecipeFilter narrows a recipe listing. Within one dimension the IDs
// are OR-ed; across dimensions the constraints are AND-ed. An empty
// slice imposes no constraint on that dimension.
type RecipeFilter struct {
	TagIDs        []uuid.UUID
	IngredientIDs []uuid.UUID
}

// IsZero reports whether the filter imposes no constraints
func (f RecipeFilter) IsZero() bool {
	return len(f.TagIDs) == 0 && len(f.IngredientIDs) == 0
}

// RecipeRepository defines persistence for recipes and their
// tag/ingredient associations. All mutations that touch association
// rows run in a single transaction.
type RecipeRepository interface {
	// Create persists a new recipe with its associations
	Create(ctx context.Context, r *Recipe) error

	// Update persists field changes and replaces the association rows
	Update(ctx context.Context, r *Recipe) error

	// DeleteForOwner removes the recipe and its association rows.
	// Returns ErrNotFound when the ID is missing or foreign-owned.
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error

	// FindByIDForOwner loads a recipe with its association IDs
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Recipe, error)

	// FindForOwner lists the owner's recipes matching the filter,
	// newest first
	FindForOwner(ctx context.Context, ownerID uuid.UUID, filter RecipeFilter) ([]*Recipe, error)
}

// TagRepository defines persistence for tags
type TagRepository interface {
	Create(ctx context.Context, t *Tag) error
	Update(ctx context.Context, t *Tag) error

	// DeleteForOwner removes the tag and any recipe associations to it
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error

	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Tag, error)

	// FindForOwner lists the owner's tags, newest first.
	// With assignedOnly, only tags referenced by at least one recipe.
	FindForOwner(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]*Tag, error)

	// ExistsByName checks per-owner name uniqueness
	ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error)

	// ExistAllForOwner checks that every listed ID belongs to the owner
	ExistAllForOwner(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (bool, error)
}

// IngredientRepository defines persistence for ingredients
type IngredientRepository interface {
	Create(ctx context.Context, i *Ingredient) error
	Update(ctx context.Context, i *Ingredient) error

	// DeleteForOwner removes the ingredient and any recipe associations to it
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error

	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Ingredient, error)

	// FindForOwner lists the owner's ingredients, newest first.
	// With assignedOnly, only ingredients referenced by at least one recipe.
	FindForOwner(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]*Ingredient, error)

	// ExistsByName checks per-owner name uniqueness
	ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error)

	// ExistAllForOwner checks that every listed ID belongs to the owner
	ExistAllForOwner(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (bool, error)
}
