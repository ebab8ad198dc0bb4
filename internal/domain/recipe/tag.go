package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recipehub/backend/internal/domain/shared"
)

const maxNameLength = 255

// Tag is a label users attach to recipes. Names are unique per owner.
type Tag struct {
	shared.OwnedAggregateRoot
	Name string
}

// NewTag creates a tag for the given owner
func NewTag(ownerID uuid.UUID, name string) (*Tag, error) {
	name = strings.TrimSpace(name)
	if err := validateLabelName(name); err != nil {
		return nil, err
	}

	t := &Tag{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Name:               name,
	}
	t.AddDomainEvent(NewTagCreatedEvent(t))
	return t, nil
}

// Rename changes the tag name
func (t *Tag) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateLabelName(name); err != nil {
		return err
	}
	t.Name = name
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}

func validateLabelName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name is required")
	}
	if len(name) > maxNameLength {
		return shared.NewDomainError("INVALID_NAME", "Name must not exceed 255 characters")
	}
	return nil
}
