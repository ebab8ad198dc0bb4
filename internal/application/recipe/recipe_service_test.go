package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipehub/backend/internal/domain/recipe"
	"github.com/recipehub/backend/internal/domain/shared"
)

// MockRecipeRepository is a mock implementation of recipe.RecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeRepository) Update(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindForOwner(ctx context.Context, ownerID uuid.UUID, filter recipe.RecipeFilter) ([]*recipe.Recipe, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

// MockTagRepository is a mock implementation of recipe.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, t *recipe.Tag) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTagRepository) Update(ctx context.Context, t *recipe.Tag) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTagRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockTagRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*recipe.Tag, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Tag), args.Error(1)
}

func (m *MockTagRepository) FindForOwner(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]*recipe.Tag, error) {
	args := m.Called(ctx, ownerID, assignedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Tag), args.Error(1)
}

func (m *MockTagRepository) ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, ownerID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) ExistAllForOwner(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID, ids)
	return args.Bool(0), args.Error(1)
}

// MockIngredientRepository is a mock implementation of recipe.IngredientRepository
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Create(ctx context.Context, i *recipe.Ingredient) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIngredientRepository) Update(ctx context.Context, i *recipe.Ingredient) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIngredientRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockIngredientRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*recipe.Ingredient, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindForOwner(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]*recipe.Ingredient, error) {
	args := m.Called(ctx, ownerID, assignedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, ownerID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockIngredientRepository) ExistAllForOwner(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID, ids)
	return args.Bool(0), args.Error(1)
}

func newRecipeService(recipeRepo *MockRecipeRepository, tagRepo *MockTagRepository, ingredientRepo *MockIngredientRepository) *RecipeService {
	return NewRecipeService(recipeRepo, tagRepo, ingredientRepo, nil, zap.NewNop())
}

func TestRecipeService_Create(t *testing.T) {
	t.Run("creates recipe without associations", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		recipeRepo := new(MockRecipeRepository)
		tagRepo := new(MockTagRepository)
		ingredientRepo := new(MockIngredientRepository)

		recipeRepo.On("Create", ctx, mock.AnythingOfType("*recipe.Recipe")).Return(nil)

		service := newRecipeService(recipeRepo, tagRepo, ingredientRepo)

		resp, err := service.Create(ctx, ownerID, CreateRecipeRequest{
			Title:       "Carbonara",
			Description: "Roman classic",
			TimeMinutes: 25,
			Price:       decimal.NewFromFloat(7.50),
		})

		require.NoError(t, err)
		assert.Equal(t, "Carbonara", resp.Title)
		assert.Empty(t, resp.TagIDs)
		recipeRepo.AssertExpectations(t)
		tagRepo.AssertNotCalled(t, "ExistAllForOwner", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("creates recipe with verified associations", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		tagID := uuid.New()
		ingredientID := uuid.New()
		recipeRepo := new(MockRecipeRepository)
		tagRepo := new(MockTagRepository)
		ingredientRepo := new(MockIngredientRepository)

		tagRepo.On("ExistAllForOwner", ctx, ownerID, []uuid.UUID{tagID}).Return(true, nil)
		ingredientRepo.On("ExistAllForOwner", ctx, ownerID, []uuid.UUID{ingredientID}).Return(true, nil)
		recipeRepo.On("Create", ctx, mock.AnythingOfType("*recipe.Recipe")).Return(nil)

		service := newRecipeService(recipeRepo, tagRepo, ingredientRepo)

		resp, err := service.Create(ctx, ownerID, CreateRecipeRequest{
			Title:         "Carbonara",
			TimeMinutes:   25,
			Price:         decimal.NewFromFloat(7.50),
			TagIDs:        []uuid.UUID{tagID},
			IngredientIDs: []uuid.UUID{ingredientID},
		})

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{tagID}, resp.TagIDs)
		assert.Equal(t, []uuid.UUID{ingredientID}, resp.IngredientIDs)
		recipeRepo.AssertExpectations(t)
	})

	t.Run("rejects foreign tag references", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		tagID := uuid.New()
		recipeRepo := new(MockRecipeRepository)
		tagRepo := new(MockTagRepository)
		ingredientRepo := new(MockIngredientRepository)

		tagRepo.On("ExistAllForOwner", ctx, ownerID, []uuid.UUID{tagID}).Return(false, nil)

		service := newRecipeService(recipeRepo, tagRepo, ingredientRepo)

		resp, err := service.Create(ctx, ownerID, CreateRecipeRequest{
			Title:  "Carbonara",
			Price:  decimal.NewFromInt(7),
			TagIDs: []uuid.UUID{tagID},
		})

		require.Error(t, err)
		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_REFERENCE", domainErr.Code)
		recipeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects negative time", func(t *testing.T) {
		ctx := context.Background()
		service := newRecipeService(new(MockRecipeRepository), new(MockTagRepository), new(MockIngredientRepository))

		_, err := service.Create(ctx, uuid.New(), CreateRecipeRequest{
			Title:       "Carbonara",
			TimeMinutes: -5,
			Price:       decimal.NewFromInt(7),
		})

		require.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		ctx := context.Background()
		service := newRecipeService(new(MockRecipeRepository), new(MockTagRepository), new(MockIngredientRepository))

		_, err := service.Create(ctx, uuid.New(), CreateRecipeRequest{
			Title: "Carbonara",
			Price: decimal.NewFromInt(-1),
		})

		require.Error(t, err)
	})
}

func TestRecipeService_List(t *testing.T) {
	t.Run("parses comma-separated filter IDs", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		tagA := uuid.New()
		tagB := uuid.New()
		recipeRepo := new(MockRecipeRepository)

		recipeRepo.On("FindForOwner", ctx, ownerID, recipe.RecipeFilter{
			TagIDs: []uuid.UUID{tagA, tagB},
		}).Return([]*recipe.Recipe{}, nil)

		service := newRecipeService(recipeRepo, new(MockTagRepository), new(MockIngredientRepository))

		_, err := service.List(ctx, ownerID, RecipeListFilter{
			Tags: tagA.String() + "," + tagB.String(),
		})

		require.NoError(t, err)
		recipeRepo.AssertExpectations(t)
	})

	t.Run("skips malformed filter tokens", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		tagA := uuid.New()
		recipeRepo := new(MockRecipeRepository)

		recipeRepo.On("FindForOwner", ctx, ownerID, recipe.RecipeFilter{
			TagIDs: []uuid.UUID{tagA},
		}).Return([]*recipe.Recipe{}, nil)

		service := newRecipeService(recipeRepo, new(MockTagRepository), new(MockIngredientRepository))

		_, err := service.List(ctx, ownerID, RecipeListFilter{
			Tags: "garbage," + tagA.String() + ",,42",
		})

		require.NoError(t, err)
		recipeRepo.AssertExpectations(t)
	})

	t.Run("returns recipes as responses", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		rec, err := recipe.NewRecipe(ownerID, "Carbonara", "", 25, decimal.NewFromInt(7))
		require.NoError(t, err)
		recipeRepo := new(MockRecipeRepository)

		recipeRepo.On("FindForOwner", ctx, ownerID, recipe.RecipeFilter{}).
			Return([]*recipe.Recipe{rec}, nil)

		service := newRecipeService(recipeRepo, new(MockTagRepository), new(MockIngredientRepository))

		responses, err := service.List(ctx, ownerID, RecipeListFilter{})

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, rec.ID, responses[0].ID)
	})
}

func TestRecipeService_Update(t *testing.T) {
	t.Run("replaces fields and associations", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		rec, err := recipe.NewRecipe(ownerID, "Carbonara", "old", 25, decimal.NewFromInt(7))
		require.NoError(t, err)
		rec.ClearDomainEvents()
		tagID := uuid.New()

		recipeRepo := new(MockRecipeRepository)
		tagRepo := new(MockTagRepository)
		ingredientRepo := new(MockIngredientRepository)

		recipeRepo.On("FindByIDForOwner", ctx, ownerID, rec.ID).Return(rec, nil)
		tagRepo.On("ExistAllForOwner", ctx, ownerID, []uuid.UUID{tagID}).Return(true, nil)
		recipeRepo.On("Update", ctx, rec).Return(nil)

		service := newRecipeService(recipeRepo, tagRepo, ingredientRepo)

		resp, err := service.Update(ctx, ownerID, rec.ID, UpdateRecipeRequest{
			Title:       "Cacio e Pepe",
			Description: "new",
			TimeMinutes: 20,
			Price:       decimal.NewFromInt(6),
			TagIDs:      []uuid.UUID{tagID},
		})

		require.NoError(t, err)
		assert.Equal(t, "Cacio e Pepe", resp.Title)
		assert.Equal(t, []uuid.UUID{tagID}, resp.TagIDs)
		recipeRepo.AssertExpectations(t)
	})

	t.Run("missing recipe yields not found", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		recipeID := uuid.New()
		recipeRepo := new(MockRecipeRepository)

		recipeRepo.On("FindByIDForOwner", ctx, ownerID, recipeID).Return(nil, shared.ErrNotFound)

		service := newRecipeService(recipeRepo, new(MockTagRepository), new(MockIngredientRepository))

		resp, err := service.Update(ctx, ownerID, recipeID, UpdateRecipeRequest{
			Title: "Carbonara",
			Price: decimal.NewFromInt(7),
		})

		assert.Nil(t, resp)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestRecipeService_Patch(t *testing.T) {
	t.Run("changes only the provided fields", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		rec, err := recipe.NewRecipe(ownerID, "Carbonara", "Roman classic", 25, decimal.NewFromInt(7))
		require.NoError(t, err)
		rec.ClearDomainEvents()

		recipeRepo := new(MockRecipeRepository)
		recipeRepo.On("FindByIDForOwner", ctx, ownerID, rec.ID).Return(rec, nil)
		recipeRepo.On("Update", ctx, rec).Return(nil)

		service := newRecipeService(recipeRepo, new(MockTagRepository), new(MockIngredientRepository))

		title := "Cacio e Pepe"
		resp, err := service.Patch(ctx, ownerID, rec.ID, PatchRecipeRequest{
			Title: &title,
		})

		require.NoError(t, err)
		assert.Equal(t, "Cacio e Pepe", resp.Title)
		assert.Equal(t, "Roman classic", resp.Description)
		assert.Equal(t, 25, resp.TimeMinutes)
	})

	t.Run("sets image reference", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		rec, err := recipe.NewRecipe(ownerID, "Carbonara", "", 25, decimal.NewFromInt(7))
		require.NoError(t, err)
		rec.ClearDomainEvents()

		recipeRepo := new(MockRecipeRepository)
		recipeRepo.On("FindByIDForOwner", ctx, ownerID, rec.ID).Return(rec, nil)
		recipeRepo.On("Update", ctx, rec).Return(nil)

		service := newRecipeService(recipeRepo, new(MockTagRepository), new(MockIngredientRepository))

		imageRef := "uploads/carbonara.jpg"
		resp, err := service.Patch(ctx, ownerID, rec.ID, PatchRecipeRequest{
			ImageRef: &imageRef,
		})

		require.NoError(t, err)
		assert.Equal(t, "uploads/carbonara.jpg", resp.ImageRef)
	})

	t.Run("clears associations with an empty list", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		rec, err := recipe.NewRecipe(ownerID, "Carbonara", "", 25, decimal.NewFromInt(7))
		require.NoError(t, err)
		rec.SetTags([]uuid.UUID{uuid.New()})
		rec.ClearDomainEvents()

		recipeRepo := new(MockRecipeRepository)
		recipeRepo.On("FindByIDForOwner", ctx, ownerID, rec.ID).Return(rec, nil)
		recipeRepo.On("Update", ctx, rec).Return(nil)

		service := newRecipeService(recipeRepo, new(MockTagRepository), new(MockIngredientRepository))

		empty := []uuid.UUID{}
		resp, err := service.Patch(ctx, ownerID, rec.ID, PatchRecipeRequest{
			TagIDs: &empty,
		})

		require.NoError(t, err)
		assert.Empty(t, resp.TagIDs)
	})
}

func TestRecipeService_Delete(t *testing.T) {
	t.Run("deletes an owned recipe", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		rec, err := recipe.NewRecipe(ownerID, "Carbonara", "", 25, decimal.NewFromInt(7))
		require.NoError(t, err)
		rec.ClearDomainEvents()

		recipeRepo := new(MockRecipeRepository)
		recipeRepo.On("FindByIDForOwner", ctx, ownerID, rec.ID).Return(rec, nil)
		recipeRepo.On("DeleteForOwner", ctx, ownerID, rec.ID).Return(nil)

		service := newRecipeService(recipeRepo, new(MockTagRepository), new(MockIngredientRepository))

		require.NoError(t, service.Delete(ctx, ownerID, rec.ID))
		recipeRepo.AssertExpectations(t)
	})

	t.Run("missing recipe yields not found", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		recipeID := uuid.New()

		recipeRepo := new(MockRecipeRepository)
		recipeRepo.On("FindByIDForOwner", ctx, ownerID, recipeID).Return(nil, shared.ErrNotFound)

		service := newRecipeService(recipeRepo, new(MockTagRepository), new(MockIngredientRepository))

		err := service.Delete(ctx, ownerID, recipeID)
		assert.Equal(t, shared.ErrNotFound, err)
		recipeRepo.AssertNotCalled(t, "DeleteForOwner", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestParseIDList(t *testing.T) {
	t.Run("empty string yields nil", func(t *testing.T) {
		assert.Nil(t, ParseIDList(""))
	})

	t.Run("parses valid IDs and trims whitespace", func(t *testing.T) {
		a := uuid.New()
		b := uuid.New()

		ids := ParseIDList(a.String() + " , " + b.String())

		assert.Equal(t, []uuid.UUID{a, b}, ids)
	})

	t.Run("skips malformed tokens", func(t *testing.T) {
		a := uuid.New()

		ids := ParseIDList("nope," + a.String() + ",123")

		assert.Equal(t, []uuid.UUID{a}, ids)
	})
}
