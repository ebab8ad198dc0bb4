package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	recipeapp "github.com/recipehub/backend/internal/application/recipe"
	"github.com/recipehub/backend/internal/interfaces/http/dto"
	"github.com/recipehub/backend/internal/interfaces/http/middleware"
)

// RecipeHandler handles recipe-related API endpoints
type RecipeHandler struct {
	BaseHandler
	recipeService *recipeapp.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService *recipeapp.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// Create godoc
// @Summary      Create a new recipe
// @Description  Create a recipe owned by the authenticated user, optionally linked to tags and ingredients
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        request body recipeapp.CreateRecipeRequest true "Recipe creation request"
// @Success      201 {object} APIResponse[recipeapp.RecipeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req recipeapp.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, recipe)
}

// List godoc
// @Summary      List recipes
// @Description  List the authenticated user's recipes, optionally filtered by tag or ingredient IDs
// @Tags         recipes
// @Produce      json
// @Param        tags query string false "Comma-separated tag IDs"
// @Param        ingredients query string false "Comma-separated ingredient IDs"
// @Success      200 {object} APIResponse[[]recipeapp.RecipeResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter recipeapp.RecipeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	recipes, err := h.recipeService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, recipes)
}

// GetByID godoc
// @Summary      Get a recipe
// @Description  Get a single recipe by ID
// @Tags         recipes
// @Produce      json
// @Param        id path string true "Recipe ID"
// @Success      200 {object} APIResponse[recipeapp.RecipeResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) GetByID(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recipeID, ok := h.parseID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetByID(c.Request.Context(), ownerID, recipeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, recipe)
}

// Update godoc
// @Summary      Replace a recipe
// @Description  Fully replace a recipe's fields and associations
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id path string true "Recipe ID"
// @Param        request body recipeapp.UpdateRecipeRequest true "Recipe replacement request"
// @Success      200 {object} APIResponse[recipeapp.RecipeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /recipes/{id} [put]
func (h *RecipeHandler) Update(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recipeID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req recipeapp.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), ownerID, recipeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, recipe)
}

// Patch godoc
// @Summary      Partially update a recipe
// @Description  Update only the provided recipe fields. Omitted fields are unchanged.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id path string true "Recipe ID"
// @Param        request body recipeapp.PatchRecipeRequest true "Recipe patch request"
// @Success      200 {object} APIResponse[recipeapp.RecipeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /recipes/{id} [patch]
func (h *RecipeHandler) Patch(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recipeID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req recipeapp.PatchRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	recipe, err := h.recipeService.Patch(c.Request.Context(), ownerID, recipeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, recipe)
}

// Delete godoc
// @Summary      Delete a recipe
// @Description  Delete a recipe and its tag and ingredient associations
// @Tags         recipes
// @Produce      json
// @Param        id path string true "Recipe ID"
// @Success      204 "No Content"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recipeID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), ownerID, recipeID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// parseID binds and parses the :id path parameter
func (h *RecipeHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return uuid.Nil, false
	}
	return id, true
}

// RegisterRoutes registers all recipe routes
func (h *RecipeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	{
		recipes.POST("", h.Create)
		recipes.GET("", h.List)
		recipes.GET("/:id", h.GetByID)
		recipes.PUT("/:id", h.Update)
		recipes.PATCH("/:id", h.Patch)
		recipes.DELETE("/:id", h.Delete)
	}
}
