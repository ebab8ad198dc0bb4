package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recipehub/backend/internal/domain/shared"
)

// Ingredient is a pantry item users attach to recipes.
// Names are unique per owner.
type Ingredient struct {
	shared.OwnedAggregateRoot
	Name string
}

// NewIngredient creates an ingredient for the given owner
func NewIngredient(ownerID uuid.UUID, name string) (*Ingredient, error) {
	name = strings.TrimSpace(name)
	if err := validateLabelName(name); err != nil {
		return nil, err
	}

	i := &Ingredient{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Name:               name,
	}
	i.AddDomainEvent(NewIngredientCreatedEvent(i))
	return i, nil
}

// Rename changes the ingredient name
func (i *Ingredient) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateLabelName(name); err != nil {
		return err
	}
	i.Name = name
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}
