package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	recipeapp "github.com/recipehub/backend/internal/application/recipe"
	"github.com/recipehub/backend/internal/interfaces/http/dto"
	"github.com/recipehub/backend/internal/interfaces/http/middleware"
)

// TagHandler handles tag-related API endpoints
type TagHandler struct {
	BaseHandler
	tagService *recipeapp.TagService
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagService *recipeapp.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// Create godoc
// @Summary      Create a new tag
// @Description  Create a tag owned by the authenticated user
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        request body recipeapp.CreateLabelRequest true "Tag creation request"
// @Success      201 {object} APIResponse[recipeapp.LabelResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req recipeapp.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tag)
}

// List godoc
// @Summary      List tags
// @Description  List the authenticated user's tags. Pass assigned=1 to only return tags used by at least one recipe.
// @Tags         tags
// @Produce      json
// @Param        assigned query string false "Set to 1 to only list tags assigned to recipes"
// @Success      200 {object} APIResponse[[]recipeapp.LabelResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags [get]
func (h *TagHandler) List(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter recipeapp.LabelListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	tags, err := h.tagService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tags)
}

// GetByID godoc
// @Summary      Get a tag
// @Description  Get a single tag by ID
// @Tags         tags
// @Produce      json
// @Param        id path string true "Tag ID"
// @Success      200 {object} APIResponse[recipeapp.LabelResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags/{id} [get]
func (h *TagHandler) GetByID(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tagID, ok := h.parseID(c)
	if !ok {
		return
	}

	tag, err := h.tagService.GetByID(c.Request.Context(), ownerID, tagID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tag)
}

// Update godoc
// @Summary      Rename a tag
// @Description  Update a tag's name
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        id path string true "Tag ID"
// @Param        request body recipeapp.UpdateLabelRequest true "Tag update request"
// @Success      200 {object} APIResponse[recipeapp.LabelResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags/{id} [put]
func (h *TagHandler) Update(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tagID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req recipeapp.UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tag, err := h.tagService.Update(c.Request.Context(), ownerID, tagID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tag)
}

// Patch godoc
// @Summary      Partially update a tag
// @Description  Update the provided fields of a tag; omitted fields are unchanged
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        id path string true "Tag ID"
// @Param        request body recipeapp.PatchLabelRequest true "Tag patch request"
// @Success      200 {object} APIResponse[recipeapp.LabelResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags/{id} [patch]
func (h *TagHandler) Patch(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tagID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req recipeapp.PatchLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tag, err := h.tagService.Patch(c.Request.Context(), ownerID, tagID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tag)
}

// Delete godoc
// @Summary      Delete a tag
// @Description  Delete a tag and remove it from any recipes that use it
// @Tags         tags
// @Produce      json
// @Param        id path string true "Tag ID"
// @Success      204 "No Content"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tagID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.tagService.Delete(c.Request.Context(), ownerID, tagID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// parseID binds and parses the :id path parameter
func (h *TagHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid tag ID format")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid tag ID format")
		return uuid.Nil, false
	}
	return id, true
}

// RegisterRoutes registers all tag routes
func (h *TagHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tags := rg.Group("/tags")
	{
		tags.POST("", h.Create)
		tags.GET("", h.List)
		tags.GET("/:id", h.GetByID)
		tags.PUT("/:id", h.Update)
		tags.PATCH("/:id", h.Patch)
		tags.DELETE("/:id", h.Delete)
	}
}
