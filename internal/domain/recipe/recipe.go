package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/recipehub/backend/internal/domain/shared"
)

const (
	maxTitleLength = 255
	maxLinkLength  = 255
)

// Recipe is the central aggregate. It carries the associations to the
// owner's tags and ingredients as ID sets; the referenced aggregates
// live on their own and are never loaded into the recipe.
type Recipe struct {
	shared.OwnedAggregateRoot
	Title         string
	Description   string
	TimeMinutes   int
	Price         decimal.Decimal
	Link          string
	ImageRef      string
	TagIDs        []uuid.UUID
	IngredientIDs []uuid.UUID
}

// NewRecipe creates a recipe for the given owner
func NewRecipe(ownerID uuid.UUID, title, description string, timeMinutes int, price decimal.Decimal) (*Recipe, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateTimeMinutes(timeMinutes); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	r := &Recipe{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Title:              title,
		Description:        description,
		TimeMinutes:        timeMinutes,
		Price:              price,
		TagIDs:             []uuid.UUID{},
		IngredientIDs:      []uuid.UUID{},
	}

	r.AddDomainEvent(NewRecipeCreatedEvent(r))
	return r, nil
}

// Update replaces the recipe's basic fields
func (r *Recipe) Update(title, description string, timeMinutes int, price decimal.Decimal) error {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateTimeMinutes(timeMinutes); err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}

	r.Title = title
	r.Description = description
	r.TimeMinutes = timeMinutes
	r.Price = price
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewRecipeUpdatedEvent(r))
	return nil
}

// SetLink sets the optional external link
func (r *Recipe) SetLink(link string) error {
	link = strings.TrimSpace(link)
	if len(link) > maxLinkLength {
		return shared.NewDomainError("INVALID_LINK", "Link must not exceed 255 characters")
	}
	r.Link = link
	r.UpdatedAt = time.Now()
	return nil
}

// SetImageRef sets the opaque image storage reference
func (r *Recipe) SetImageRef(ref string) {
	r.ImageRef = strings.TrimSpace(ref)
	r.UpdatedAt = time.Now()
}

// SetTags replaces the tag associations. Duplicates are collapsed.
func (r *Recipe) SetTags(tagIDs []uuid.UUID) {
	r.TagIDs = dedupeIDs(tagIDs)
	r.UpdatedAt = time.Now()
}

// SetIngredients replaces the ingredient associations. Duplicates are collapsed.
func (r *Recipe) SetIngredients(ingredientIDs []uuid.UUID) {
	r.IngredientIDs = dedupeIDs(ingredientIDs)
	r.UpdatedAt = time.Now()
}

// HasTag reports whether the recipe references the given tag
func (r *Recipe) HasTag(tagID uuid.UUID) bool {
	for _, id := range r.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// HasIngredient reports whether the recipe references the given ingredient
func (r *Recipe) HasIngredient(ingredientID uuid.UUID) bool {
	for _, id := range r.IngredientIDs {
		if id == ingredientID {
			return true
		}
	}
	return false
}

func validateTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title is required")
	}
	if len(title) > maxTitleLength {
		return shared.NewDomainError("INVALID_TITLE", "Title must not exceed 255 characters")
	}
	return nil
}

func validateTimeMinutes(minutes int) error {
	if minutes < 0 {
		return shared.NewDomainError("INVALID_TIME", "Time in minutes cannot be negative")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
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
