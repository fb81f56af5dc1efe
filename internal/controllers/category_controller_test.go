package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"taskly-be/internal/entities"
	"taskly-be/internal/logging"
	"taskly-be/internal/mocks"
	"taskly-be/internal/models"
	"taskly-be/internal/service"
)

func newCategoryRouter(t *testing.T) (*gin.Engine, *mocks.MockCategoryService) {
	t.Helper()
	categories := mocks.NewMockCategoryService(gomock.NewController(t))
	cc := NewCategoryController(categories, logging.Discard())

	r := gin.New()
	r.Use(asUser(newSession()))
	r.GET("/categories/", cc.List)
	r.POST("/categories/", cc.Create)
	r.GET("/categories/:id/edit/", cc.Show)
	r.POST("/categories/:id/edit/", cc.Rename)
	r.GET("/categories/:id/delete/", cc.Show)
	r.POST("/categories/:id/delete/", cc.Delete)
	return r, categories
}

func TestCategoryCRUD(t *testing.T) {
	r, categories := newCategoryRouter(t)

	categories.EXPECT().Create(gomock.Any(), uint(1), &models.CategoryForm{Name: "Work"}).
		Return(&entities.Category{ID: 3, Name: "Work"}, nil)
	categories.EXPECT().List(gomock.Any(), uint(1)).
		Return([]entities.Category{{ID: 3, Name: "Work", TaskCount: 2}}, nil)
	categories.EXPECT().Rename(gomock.Any(), uint(1), uint(3), &models.CategoryForm{Name: "Job"}).
		Return(&entities.Category{ID: 3, Name: "Job"}, nil)
	categories.EXPECT().Delete(gomock.Any(), uint(1), uint(3)).Return(nil)

	if w := postForm(r, "/categories/", url.Values{"name": {"Work"}}); w.Code != http.StatusCreated {
		t.Fatalf("create: got %d, want 201", w.Code)
	}

	w := get(r, "/categories/")
	if w.Code != http.StatusOK {
		t.Fatalf("list: got %d, want 200", w.Code)
	}
	var listed struct {
		Categories []models.CategoryResponse `json:"categories"`
	}
	decode(t, w, &listed)
	if len(listed.Categories) != 1 || listed.Categories[0].TaskCount != 2 {
		t.Errorf("list: got %+v", listed.Categories)
	}

	if w := postForm(r, "/categories/3/edit/", url.Values{"name": {"Job"}}); w.Code != http.StatusOK {
		t.Errorf("rename: got %d, want 200", w.Code)
	}
	if w := postForm(r, "/categories/3/delete/", nil); w.Code != http.StatusOK {
		t.Errorf("delete: got %d, want 200", w.Code)
	}
}

func TestCategoryErrors(t *testing.T) {
	r, categories := newCategoryRouter(t)

	categories.EXPECT().Get(gomock.Any(), uint(1), uint(8)).Return(nil, service.ErrNotFound)
	categories.EXPECT().Create(gomock.Any(), uint(1), gomock.Any()).
		Return(nil, &service.ValidationError{Fields: map[string][]string{"name": {"dup"}}})

	if w := get(r, "/categories/8/edit/"); w.Code != http.StatusNotFound {
		t.Errorf("missing: got %d, want 404", w.Code)
	}
	if w := postForm(r, "/categories/", url.Values{"name": {""}}); w.Code != http.StatusBadRequest {
		t.Errorf("blank: got %d, want 400", w.Code)
	}
	if w := postForm(r, "/categories/", url.Values{"name": {"Work"}}); w.Code != http.StatusBadRequest {
		t.Errorf("duplicate: got %d, want 400", w.Code)
	}
}
