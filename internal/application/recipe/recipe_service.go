package recipe

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipehub/backend/internal/domain/recipe"
	"github.com/recipehub/backend/internal/domain/shared"
)

// RecipeService handles recipe operations for the authenticated owner
type RecipeService struct {
	recipeRepo     recipe.RecipeRepository
	tagRepo        recipe.TagRepository
	ingredientRepo recipe.IngredientRepository
	eventBus       shared.EventPublisher
	logger         *zap.Logger
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(
	recipeRepo recipe.RecipeRepository,
	tagRepo recipe.TagRepository,
	ingredientRepo recipe.IngredientRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		eventBus:       eventBus,
		logger:         logger,
	}
}

// Create creates a new recipe owned by ownerID
func (s *RecipeService) Create(ctx context.Context, ownerID uuid.UUID, req CreateRecipeRequest) (*RecipeResponse, error) {
	if err := s.checkReferences(ctx, ownerID, req.TagIDs, req.IngredientIDs); err != nil {
		return nil, err
	}

	rec, err := recipe.NewRecipe(ownerID, req.Title, req.Description, req.TimeMinutes, req.Price)
	if err != nil {
		return nil, err
	}
	if req.Link != "" {
		if err := rec.SetLink(req.Link); err != nil {
			return nil, err
		}
	}
	rec.SetTags(req.TagIDs)
	rec.SetIngredients(req.IngredientIDs)

	if err := s.recipeRepo.Create(ctx, rec); err != nil {
		s.logger.Error("Failed to create recipe", zap.Error(err))
		return nil, err
	}

	s.publishEvents(ctx, rec.GetDomainEvents())
	rec.ClearDomainEvents()

	s.logger.Info("Recipe created",
		zap.String("recipe_id", rec.ID.String()),
		zap.String("owner_id", ownerID.String()))

	response := ToRecipeResponse(rec)
	return &response, nil
}

// GetByID retrieves one of the owner's recipes
func (s *RecipeService) GetByID(ctx context.Context, ownerID, recipeID uuid.UUID) (*RecipeResponse, error) {
	rec, err := s.recipeRepo.FindByIDForOwner(ctx, ownerID, recipeID)
	if err != nil {
		return nil, err
	}
	response := ToRecipeResponse(rec)
	return &response, nil
}

// List returns the owner's recipes matching the filter, newest first
func (s *RecipeService) List(ctx context.Context, ownerID uuid.UUID, filter RecipeListFilter) ([]RecipeResponse, error) {
	domainFilter := recipe.RecipeFilter{
		TagIDs:        ParseIDList(filter.Tags),
		IngredientIDs: ParseIDList(filter.Ingredients),
	}

	recipes, err := s.recipeRepo.FindForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]RecipeResponse, len(recipes))
	for i, rec := range recipes {
		responses[i] = ToRecipeResponse(rec)
	}
	return responses, nil
}

// Update fully replaces a recipe's fields and associations
func (s *RecipeService) Update(ctx context.Context, ownerID, recipeID uuid.UUID, req UpdateRecipeRequest) (*RecipeResponse, error) {
	rec, err := s.recipeRepo.FindByIDForOwner(ctx, ownerID, recipeID)
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, ownerID, req.TagIDs, req.IngredientIDs); err != nil {
		return nil, err
	}

	if err := rec.Update(req.Title, req.Description, req.TimeMinutes, req.Price); err != nil {
		return nil, err
	}
	if err := rec.SetLink(req.Link); err != nil {
		return nil, err
	}
	rec.SetTags(req.TagIDs)
	rec.SetIngredients(req.IngredientIDs)

	if err := s.recipeRepo.Update(ctx, rec); err != nil {
		s.logger.Error("Failed to update recipe", zap.Error(err))
		return nil, err
	}

	s.publishEvents(ctx, rec.GetDomainEvents())
	rec.ClearDomainEvents()

	response := ToRecipeResponse(rec)
	return &response, nil
}

// Patch applies the non-nil fields of the request to a recipe
func (s *RecipeService) Patch(ctx context.Context, ownerID, recipeID uuid.UUID, req PatchRecipeRequest) (*RecipeResponse, error) {
	rec, err := s.recipeRepo.FindByIDForOwner(ctx, ownerID, recipeID)
	if err != nil {
		return nil, err
	}

	var tagIDs, ingredientIDs []uuid.UUID
	if req.TagIDs != nil {
		tagIDs = *req.TagIDs
	}
	if req.IngredientIDs != nil {
		ingredientIDs = *req.IngredientIDs
	}
	if err := s.checkReferences(ctx, ownerID, tagIDs, ingredientIDs); err != nil {
		return nil, err
	}

	title := rec.Title
	description := rec.Description
	timeMinutes := rec.TimeMinutes
	price := rec.Price
	if req.Title != nil {
		title = *req.Title
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.TimeMinutes != nil {
		timeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		price = *req.Price
	}
	if err := rec.Update(title, description, timeMinutes, price); err != nil {
		return nil, err
	}

	if req.Link != nil {
		if err := rec.SetLink(*req.Link); err != nil {
			return nil, err
		}
	}
	if req.ImageRef != nil {
		rec.SetImageRef(*req.ImageRef)
	}
	if req.TagIDs != nil {
		rec.SetTags(tagIDs)
	}
	if req.IngredientIDs != nil {
		rec.SetIngredients(ingredientIDs)
	}

	if err := s.recipeRepo.Update(ctx, rec); err != nil {
		s.logger.Error("Failed to patch recipe", zap.Error(err))
		return nil, err
	}

	s.publishEvents(ctx, rec.GetDomainEvents())
	rec.ClearDomainEvents()

	response := ToRecipeResponse(rec)
	return &response, nil
}

// Delete removes one of the owner's recipes
func (s *RecipeService) Delete(ctx context.Context, ownerID, recipeID uuid.UUID) error {
	rec, err := s.recipeRepo.FindByIDForOwner(ctx, ownerID, recipeID)
	if err != nil {
		return err
	}

	if err := s.recipeRepo.DeleteForOwner(ctx, ownerID, recipeID); err != nil {
		s.logger.Error("Failed to delete recipe", zap.Error(err))
		return err
	}

	s.publishEvents(ctx, []shared.DomainEvent{
		recipe.NewRecipeDeletedEvent(recipeID, ownerID, rec.Title),
	})

	s.logger.Info("Recipe deleted",
		zap.String("recipe_id", recipeID.String()),
		zap.String("owner_id", ownerID.String()))
	return nil
}

// checkReferences verifies that every referenced tag and ingredient
// belongs to the owner. Unknown and foreign IDs are indistinguishable.
func (s *RecipeService) checkReferences(ctx context.Context, ownerID uuid.UUID, tagIDs, ingredientIDs []uuid.UUID) error {
	if len(tagIDs) > 0 {
		ok, err := s.tagRepo.ExistAllForOwner(ctx, ownerID, tagIDs)
		if err != nil {
			return err
		}
		if !ok {
			return shared.NewDomainError("INVALID_REFERENCE", "One or more tags do not exist")
		}
	}
	if len(ingredientIDs) > 0 {
		ok, err := s.ingredientRepo.ExistAllForOwner(ctx, ownerID, ingredientIDs)
		if err != nil {
			return err
		}
		if !ok {
			return shared.NewDomainError("INVALID_REFERENCE", "One or more ingredients do not exist")
		}
	}
	return nil
}

func (s *RecipeService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventBus == nil || len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish domain events", zap.Error(err))
	}
}
