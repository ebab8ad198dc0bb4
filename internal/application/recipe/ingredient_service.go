package recipe

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipehub/backend/internal/domain/recipe"
	"github.com/recipehub/backend/internal/domain/shared"
)

// IngredientService handles ingredient operations for the authenticated
// owner
type IngredientService struct {
	ingredientRepo recipe.IngredientRepository
	eventBus       shared.EventPublisher
	logger         *zap.Logger
}

// NewIngredientService creates a new IngredientService
func NewIngredientService(ingredientRepo recipe.IngredientRepository, eventBus shared.EventPublisher, logger *zap.Logger) *IngredientService {
	return &IngredientService{
		ingredientRepo: ingredientRepo,
		eventBus:       eventBus,
		logger:         logger,
	}
}

// Create creates a new ingredient owned by ownerID
func (s *IngredientService) Create(ctx context.Context, ownerID uuid.UUID, req CreateLabelRequest) (*LabelResponse, error) {
	name := strings.TrimSpace(req.Name)

	exists, err := s.ingredientRepo.ExistsByName(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An ingredient with this name already exists")
	}

	ingredient, err := recipe.NewIngredient(ownerID, name)
	if err != nil {
		return nil, err
	}

	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		s.logger.Error("Failed to create ingredient", zap.Error(err))
		return nil, err
	}

	s.publishEvents(ctx, ingredient.GetDomainEvents())
	ingredient.ClearDomainEvents()

	response := ToIngredientResponse(ingredient)
	return &response, nil
}

// GetByID retrieves one of the owner's ingredients
func (s *IngredientService) GetByID(ctx context.Context, ownerID, ingredientID uuid.UUID) (*LabelResponse, error) {
	ingredient, err := s.ingredientRepo.FindByIDForOwner(ctx, ownerID, ingredientID)
	if err != nil {
		return nil, err
	}
	response := ToIngredientResponse(ingredient)
	return &response, nil
}

// List returns the owner's ingredients, newest first
func (s *IngredientService) List(ctx context.Context, ownerID uuid.UUID, filter LabelListFilter) ([]LabelResponse, error) {
	ingredients, err := s.ingredientRepo.FindForOwner(ctx, ownerID, filter.AssignedOnly())
	if err != nil {
		return nil, err
	}

	responses := make([]LabelResponse, len(ingredients))
	for i, ingredient := range ingredients {
		responses[i] = ToIngredientResponse(ingredient)
	}
	return responses, nil
}

// Update renames one of the owner's ingredients
func (s *IngredientService) Update(ctx context.Context, ownerID, ingredientID uuid.UUID, req UpdateLabelRequest) (*LabelResponse, error) {
	ingredient, err := s.ingredientRepo.FindByIDForOwner(ctx, ownerID, ingredientID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name != ingredient.Name {
		exists, err := s.ingredientRepo.ExistsByName(ctx, ownerID, name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "An ingredient with this name already exists")
		}
	}

	if err := ingredient.Rename(name); err != nil {
		return nil, err
	}

	if err := s.ingredientRepo.Update(ctx, ingredient); err != nil {
		s.logger.Error("Failed to update ingredient", zap.Error(err))
		return nil, err
	}

	response := ToIngredientResponse(ingredient)
	return &response, nil
}

// Patch applies a partial update to one of the owner's ingredients.
// Fields absent from the request keep their current value.
func (s *IngredientService) Patch(ctx context.Context, ownerID, ingredientID uuid.UUID, req PatchLabelRequest) (*LabelResponse, error) {
	if req.Name == nil {
		return s.GetByID(ctx, ownerID, ingredientID)
	}
	return s.Update(ctx, ownerID, ingredientID, UpdateLabelRequest{Name: *req.Name})
}

// Delete removes one of the owner's ingredients and detaches it from
// recipes
func (s *IngredientService) Delete(ctx context.Context, ownerID, ingredientID uuid.UUID) error {
	if err := s.ingredientRepo.DeleteForOwner(ctx, ownerID, ingredientID); err != nil {
		return err
	}

	s.logger.Info("Ingredient deleted",
		zap.String("ingredient_id", ingredientID.String()),
		zap.String("owner_id", ownerID.String()))
	return nil
}

func (s *IngredientService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventBus == nil || len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish domain events", zap.Error(err))
	}
}
