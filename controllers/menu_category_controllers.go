package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voiceorder/menu-api/services"
	"github.com/voiceorder/menu-api/utils"
)

type MenuCategoryController struct {
	Catalog *services.CatalogService
}

func NewMenuCategoryController(catalog *services.CatalogService) *MenuCategoryController {
	return &MenuCategoryController{Catalog: catalog}
}

// GetAllCategories -> GET /categories
func (mcc *MenuCategoryController) GetAllCategories(c *gin.Context) {
	categories, err := mcc.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, categories)
}

// GetCategoryMenu -> GET /categories/:cat_id/menu
// 404 only when the category itself is unknown; an empty category is [].
func (mcc *MenuCategoryController) GetCategoryMenu(c *gin.Context) {
	id, ok := parseIDParam(c, "cat_id")
	if !ok {
		return
	}

	items, err := mcc.Catalog.ListMenuItems(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, items)
}
