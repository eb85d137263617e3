package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voiceorder/menu-api/models"
	"github.com/voiceorder/menu-api/services"
	"github.com/voiceorder/menu-api/utils"
)

type MenuItemDetailResponse struct {
	models.MenuItemDetail
	AvailableOptions []models.Option `json:"available_options"`
}

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GetMenuByID -> GET /menu/:menu_id, with the options its category allows
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, ok := parseIDParam(c, "menu_id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	item, err := mc.Catalog.GetMenuItem(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	options, err := mc.Catalog.OptionsForMenuItem(ctx, item)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, MenuItemDetailResponse{
		MenuItemDetail:   *item,
		AvailableOptions: options,
	})
}
