package recipe

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipehub/backend/internal/domain/recipe"
	"github.com/recipehub/backend/internal/domain/shared"
)

// TagService handles tag operations for the authenticated owner
type TagService struct {
	tagRepo  recipe.TagRepository
	eventBus shared.EventPublisher
	logger   *zap.Logger
}

// NewTagService creates a new TagService
func NewTagService(tagRepo recipe.TagRepository, eventBus shared.EventPublisher, logger *zap.Logger) *TagService {
	return &TagService{
		tagRepo:  tagRepo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Create creates a new tag owned by ownerID
func (s *TagService) Create(ctx context.Context, ownerID uuid.UUID, req CreateLabelRequest) (*LabelResponse, error) {
	name := strings.TrimSpace(req.Name)

	exists, err := s.tagRepo.ExistsByName(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A tag with this name already exists")
	}

	tag, err := recipe.NewTag(ownerID, name)
	if err != nil {
		return nil, err
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		s.logger.Error("Failed to create tag", zap.Error(err))
		return nil, err
	}

	s.publishEvents(ctx, tag.GetDomainEvents())
	tag.ClearDomainEvents()

	response := ToTagResponse(tag)
	return &response, nil
}

// GetByID retrieves one of the owner's tags
func (s *TagService) GetByID(ctx context.Context, ownerID, tagID uuid.UUID) (*LabelResponse, error) {
	tag, err := s.tagRepo.FindByIDForOwner(ctx, ownerID, tagID)
	if err != nil {
		return nil, err
	}
	response := ToTagResponse(tag)
	return &response, nil
}

// List returns the owner's tags, newest first
func (s *TagService) List(ctx context.Context, ownerID uuid.UUID, filter LabelListFilter) ([]LabelResponse, error) {
	tags, err := s.tagRepo.FindForOwner(ctx, ownerID, filter.AssignedOnly())
	if err != nil {
		return nil, err
	}

	responses := make([]LabelResponse, len(tags))
	for i, tag := range tags {
		responses[i] = ToTagResponse(tag)
	}
	return responses, nil
}

// Update renames one of the owner's tags
func (s *TagService) Update(ctx context.Context, ownerID, tagID uuid.UUID, req UpdateLabelRequest) (*LabelResponse, error) {
	tag, err := s.tagRepo.FindByIDForOwner(ctx, ownerID, tagID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name != tag.Name {
		exists, err := s.tagRepo.ExistsByName(ctx, ownerID, name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A tag with this name already exists")
		}
	}

	if err := tag.Rename(name); err != nil {
		return nil, err
	}

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		s.logger.Error("Failed to update tag", zap.Error(err))
		return nil, err
	}

	response := ToTagResponse(tag)
	return &response, nil
}

// Patch applies a partial update to one of the owner's tags. Fields
// absent from the request keep their current value.
func (s *TagService) Patch(ctx context.Context, ownerID, tagID uuid.UUID, req PatchLabelRequest) (*LabelResponse, error) {
	if req.Name == nil {
		return s.GetByID(ctx, ownerID, tagID)
	}
	return s.Update(ctx, ownerID, tagID, UpdateLabelRequest{Name: *req.Name})
}

// Delete removes one of the owner's tags and detaches it from recipes
func (s *TagService) Delete(ctx context.Context, ownerID, tagID uuid.UUID) error {
	if err := s.tagRepo.DeleteForOwner(ctx, ownerID, tagID); err != nil {
		return err
	}

	s.logger.Info("Tag deleted",
		zap.String("tag_id", tagID.String()),
		zap.String("owner_id", ownerID.String()))
	return nil
}

func (s *TagService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventBus == nil || len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish domain events", zap.Error(err))
	}
}
