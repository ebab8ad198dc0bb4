package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/recipehub/backend/internal/domain/recipe"
)

// RecipeModel is the persistence model for the Recipe aggregate.
// Tag and ingredient associations live in their own row models and are
// loaded and written by the repository.
type RecipeModel struct {
	OwnedAggregateModel
	Title       string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	TimeMinutes int             `gorm:"not null;default:0"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Link        string          `gorm:"type:varchar(255)"`
	ImageRef    string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (RecipeModel) TableName() string {
	return "recipes"
}

// ToDomain converts the persistence model to a domain Recipe.
// Association IDs must be loaded separately by the repository.
func (m *RecipeModel) ToDomain() *recipe.Recipe {
	return &recipe.Recipe{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Title:              m.Title,
		Description:        m.Description,
		TimeMinutes:        m.TimeMinutes,
		Price:              m.Price,
		Link:               m.Link,
		ImageRef:           m.ImageRef,
		TagIDs:             []uuid.UUID{},
		IngredientIDs:      []uuid.UUID{},
	}
}

// FromDomain populates the persistence model from a domain Recipe
func (m *RecipeModel) FromDomain(r *recipe.Recipe) {
	m.FromDomainOwnedAggregateRoot(r.OwnedAggregateRoot)
	m.Title = r.Title
	m.Description = r.Description
	m.TimeMinutes = r.TimeMinutes
	m.Price = r.Price
	m.Link = r.Link
	m.ImageRef = r.ImageRef
}

// TagModel is the persistence model for the Tag aggregate.
type TagModel struct {
	OwnedAggregateModel
	// Unique per owner; the composite index is defined in migrations
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (TagModel) TableName() string {
	return "tags"
}

// ToDomain converts the persistence model to a domain Tag
func (m *TagModel) ToDomain() *recipe.Tag {
	return &recipe.Tag{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Name:               m.Name,
	}
}

// FromDomain populates the persistence model from a domain Tag
func (m *TagModel) FromDomain(t *recipe.Tag) {
	m.FromDomainOwnedAggregateRoot(t.OwnedAggregateRoot)
	m.Name = t.Name
}

// IngredientModel is the persistence model for the Ingredient aggregate.
type IngredientModel struct {
	OwnedAggregateModel
	// Unique per owner; the composite index is defined in migrations
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (IngredientModel) TableName() string {
	return "ingredients"
}

// ToDomain converts the persistence model to a domain Ingredient
func (m *IngredientModel) ToDomain() *recipe.Ingredient {
	return &recipe.Ingredient{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Name:               m.Name,
	}
}

// FromDomain populates the persistence model from a domain Ingredient
func (m *IngredientModel) FromDomain(i *recipe.Ingredient) {
	m.FromDomainOwnedAggregateRoot(i.OwnedAggregateRoot)
	m.Name = i.Name
}

// RecipeTagModel is an association row linking a recipe to a tag.
// Rows are removed when either side is deleted.
type RecipeTagModel struct {
	RecipeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the table name for GORM
func (RecipeTagModel) TableName() string {
	return "recipe_tags"
}

// RecipeIngredientModel is an association row linking a recipe to an ingredient.
type RecipeIngredientModel struct {
	RecipeID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the table name for GORM
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}
