package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipehub/backend/internal/domain/recipe"
	"github.com/recipehub/backend/internal/domain/shared"
)

func TestTagService_Create(t *testing.T) {
	t.Run("creates tag with free name", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		tagRepo := new(MockTagRepository)

		tagRepo.On("ExistsByName", ctx, ownerID, "vegan").Return(false, nil)
		tagRepo.On("Create", ctx, mock.AnythingOfType("*recipe.Tag")).Return(nil)

		service := NewTagService(tagRepo, nil, zap.NewNop())

		resp, err := service.Create(ctx, ownerID, CreateLabelRequest{Name: " vegan "})

		require.NoError(t, err)
		assert.Equal(t, "vegan", resp.Name)
		tagRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate name with conflict", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		tagRepo := new(MockTagRepository)

		tagRepo.On("ExistsByName", ctx, ownerID, "vegan").Return(true, nil)

		service := NewTagService(tagRepo, nil, zap.NewNop())

		resp, err := service.Create(ctx, ownerID, CreateLabelRequest{Name: "vegan"})

		require.Error(t, err)
		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		tagRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTagService_List(t *testing.T) {
	t.Run("passes assigned flag through", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		tag, err := recipe.NewTag(ownerID, "vegan")
		require.NoError(t, err)
		tagRepo := new(MockTagRepository)

		tagRepo.On("FindForOwner", ctx, ownerID, true).Return([]*recipe.Tag{tag}, nil)

		service := NewTagService(tagRepo, nil, zap.NewNop())

		responses, err := service.List(ctx, ownerID, LabelListFilter{Assigned: "1"})

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "vegan", responses[0].Name)
		tagRepo.AssertExpectations(t)
	})

	t.Run("other assigned values list everything", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		tagRepo := new(MockTagRepository)

		tagRepo.On("FindForOwner", ctx, ownerID, false).Return([]*recipe.Tag{}, nil)

		service := NewTagService(tagRepo, nil, zap.NewNop())

		_, err := service.List(ctx, ownerID, LabelListFilter{Assigned: "yes"})

		require.NoError(t, err)
		tagRepo.AssertExpectations(t)
	})
}

func TestTagService_Update(t *testing.T) {
	t.Run("renames tag", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		tag, err := recipe.NewTag(ownerID, "vegan")
		require.NoError(t, err)
		tag.ClearDomainEvents()
		tagRepo := new(MockTagRepository)

		tagRepo.On("FindByIDForOwner", ctx, ownerID, tag.ID).Return(tag, nil)
		tagRepo.On("ExistsByName", ctx, ownerID, "vegetarian").Return(false, nil)
		tagRepo.On("Update", ctx, tag).Return(nil)

		service := NewTagService(tagRepo, nil, zap.NewNop())

		resp, err := service.Update(ctx, ownerID, tag.ID, UpdateLabelRequest{Name: "vegetarian"})

		require.NoError(t, err)
		assert.Equal(t, "vegetarian", resp.Name)
	})

	t.Run("rename to same name skips uniqueness check", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		tag, err := recipe.NewTag(ownerID, "vegan")
		require.NoError(t, err)
		tag.ClearDomainEvents()
		tagRepo := new(MockTagRepository)

		tagRepo.On("FindByIDForOwner", ctx, ownerID, tag.ID).Return(tag, nil)
		tagRepo.On("Update", ctx, tag).Return(nil)

		service := NewTagService(tagRepo, nil, zap.NewNop())

		_, err = service.Update(ctx, ownerID, tag.ID, UpdateLabelRequest{Name: "vegan"})

		require.NoError(t, err)
		tagRepo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rename to taken name yields conflict", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		tag, err := recipe.NewTag(ownerID, "vegan")
		require.NoError(t, err)
		tagRepo := new(MockTagRepository)

		tagRepo.On("FindByIDForOwner", ctx, ownerID, tag.ID).Return(tag, nil)
		tagRepo.On("ExistsByName", ctx, ownerID, "dessert").Return(true, nil)

		service := NewTagService(tagRepo, nil, zap.NewNop())

		resp, err := service.Update(ctx, ownerID, tag.ID, UpdateLabelRequest{Name: "dessert"})

		require.Error(t, err)
		assert.Nil(t, resp)
		tagRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestTagService_Delete(t *testing.T) {
	t.Run("propagates not found", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		tagID := uuid.New()
		tagRepo := new(MockTagRepository)

		tagRepo.On("DeleteForOwner", ctx, ownerID, tagID).Return(shared.ErrNotFound)

		service := NewTagService(tagRepo, nil, zap.NewNop())

		err := service.Delete(ctx, ownerID, tagID)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestIngredientService_Create(t *testing.T) {
	t.Run("creates ingredient with free name", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		ingredientRepo := new(MockIngredientRepository)

		ingredientRepo.On("ExistsByName", ctx, ownerID, "guanciale").Return(false, nil)
		ingredientRepo.On("Create", ctx, mock.AnythingOfType("*recipe.Ingredient")).Return(nil)

		service := NewIngredientService(ingredientRepo, nil, zap.NewNop())

		resp, err := service.Create(ctx, ownerID, CreateLabelRequest{Name: "guanciale"})

		require.NoError(t, err)
		assert.Equal(t, "guanciale", resp.Name)
		ingredientRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate name with conflict", func(t *testing.T) {
		ctx := context.Background()
		ownerID := uuid.New()
		ingredientRepo := new(MockIngredientRepository)

		ingredientRepo.On("ExistsByName", ctx, ownerID, "guanciale").Return(true, nil)

		service := NewIngredientService(ingredientRepo, nil, zap.NewNop())

		_, err := service.Create(ctx, ownerID, CreateLabelRequest{Name: "guanciale"})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}
