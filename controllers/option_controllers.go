package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voiceorder/menu-api/models"
	"github.com/voiceorder/menu-api/services"
	"github.com/voiceorder/menu-api/utils"
)

type OptionController struct {
	Catalog *services.CatalogService
}

func NewOptionController(catalog *services.CatalogService) *OptionController {
	return &OptionController{Catalog: catalog}
}

// GetOptionsByType -> GET /options/:option_type
func (oc *OptionController) GetOptionsByType(c *gin.Context) {
	optionType := models.OptionType(c.Param("option_type"))

	options, err := oc.Catalog.ListOptions(c.Request.Context(), optionType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, options)
}
