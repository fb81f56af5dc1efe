package controllers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"taskly-be/internal/models"
	"taskly-be/internal/service"
)

type CategoryController struct {
	categoryService service.CategoryService
	logger          *log.Logger
}

func NewCategoryController(categoryService service.CategoryService, logger *log.Logger) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
		logger:          logger,
	}
}

// List handles GET /categories/
func (cc *CategoryController) List(c *gin.Context) {
	user := currentUser(c)

	categories, err := cc.categoryService.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": models.NewCategoryResponses(categories)})
}

// Create handles POST /categories/
func (cc *CategoryController) Create(c *gin.Context) {
	user := currentUser(c)

	var form models.CategoryForm
	if !bind(c, &form) {
		return
	}

	category, err := cc.categoryService.Create(c.Request.Context(), user.ID, &form)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category added.",
		"category": models.NewCategoryResponse(category),
	})
}

// Show handles GET /categories/:id/edit/ and GET /categories/:id/delete/
func (cc *CategoryController) Show(c *gin.Context) {
	user := currentUser(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := cc.categoryService.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": models.NewCategoryResponse(category)})
}

// Rename handles POST /categories/:id/edit/
func (cc *CategoryController) Rename(c *gin.Context) {
	user := currentUser(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form models.CategoryForm
	if !bind(c, &form) {
		return
	}

	category, err := cc.categoryService.Rename(c.Request.Context(), user.ID, id, &form)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category updated.",
		"category": models.NewCategoryResponse(category),
	})
}

// Delete handles POST /categories/:id/delete/
func (cc *CategoryController) Delete(c *gin.Context) {
	user := currentUser(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := cc.categoryService.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Category deleted."})
}
