package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	recipeapp "github.com/recipehub/backend/internal/application/recipe"
	"github.com/recipehub/backend/internal/interfaces/http/dto"
	"github.com/recipehub/backend/internal/interfaces/http/middleware"
)

// IngredientHandler handles ingredient-related API endpoints
type IngredientHandler struct {
	BaseHandler
	ingredientService *recipeapp.IngredientService
}

// NewIngredientHandler creates a new IngredientHandler
func NewIngredientHandler(ingredientService *recipeapp.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
	}
}

// Create godoc
// @Summary      Create a new ingredient
// @Description  Create an ingredient owned by the authenticated user
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        request body recipeapp.CreateLabelRequest true "Ingredient creation request"
// @Success      201 {object} APIResponse[recipeapp.LabelResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /ingredients [post]
func (h *IngredientHandler) Create(c *gin.Context) {
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

	ingredient, err := h.ingredientService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, ingredient)
}

// List godoc
// @Summary      List ingredients
// @Description  List the authenticated user's ingredients. Pass assigned=1 to only return ingredients used by at least one recipe.
// @Tags         ingredients
// @Produce      json
// @Param        assigned query string false "Set to 1 to only list ingredients assigned to recipes"
// @Success      200 {object} APIResponse[[]recipeapp.LabelResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /ingredients [get]
func (h *IngredientHandler) List(c *gin.Context) {
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

	ingredients, err := h.ingredientService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ingredients)
}

// GetByID godoc
// @Summary      Get an ingredient
// @Description  Get a single ingredient by ID
// @Tags         ingredients
// @Produce      json
// @Param        id path string true "Ingredient ID"
// @Success      200 {object} APIResponse[recipeapp.LabelResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /ingredients/{id} [get]
func (h *IngredientHandler) GetByID(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	ingredientID, ok := h.parseID(c)
	if !ok {
		return
	}

	ingredient, err := h.ingredientService.GetByID(c.Request.Context(), ownerID, ingredientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ingredient)
}

// Update godoc
// @Summary      Rename an ingredient
// @Description  Update an ingredient's name
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        id path string true "Ingredient ID"
// @Param        request body recipeapp.UpdateLabelRequest true "Ingredient update request"
// @Success      200 {object} APIResponse[recipeapp.LabelResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /ingredients/{id} [put]
func (h *IngredientHandler) Update(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	ingredientID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req recipeapp.UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ingredient, err := h.ingredientService.Update(c.Request.Context(), ownerID, ingredientID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ingredient)
}

// Patch godoc
// @Summary      Partially update an ingredient
// @Description  Update the provided fields of an ingredient; omitted fields are unchanged
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        id path string true "Ingredient ID"
// @Param        request body recipeapp.PatchLabelRequest true "Ingredient patch request"
// @Success      200 {object} APIResponse[recipeapp.LabelResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /ingredients/{id} [patch]
func (h *IngredientHandler) Patch(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	ingredientID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req recipeapp.PatchLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ingredient, err := h.ingredientService.Patch(c.Request.Context(), ownerID, ingredientID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ingredient)
}

// Delete godoc
// @Summary      Delete an ingredient
// @Description  Delete an ingredient and remove it from any recipes that use it
// @Tags         ingredients
// @Produce      json
// @Param        id path string true "Ingredient ID"
// @Success      204 "No Content"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	ingredientID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.ingredientService.Delete(c.Request.Context(), ownerID, ingredientID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// parseID binds and parses the :id path parameter
func (h *IngredientHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid ingredient ID format")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid ingredient ID format")
		return uuid.Nil, false
	}
	return id, true
}

// RegisterRoutes registers all ingredient routes
func (h *IngredientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ingredients := rg.Group("/ingredients")
	{
		ingredients.POST("", h.Create)
		ingredients.GET("", h.List)
		ingredients.GET("/:id", h.GetByID)
		ingredients.PUT("/:id", h.Update)
		ingredients.PATCH("/:id", h.Patch)
		ingredients.DELETE("/:id", h.Delete)
	}
}
