package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voiceorder/menu-api/services"
	"github.com/voiceorder/menu-api/utils"
)

type VoiceGuideController struct {
	Guide *services.VoiceGuideService
}

func NewVoiceGuideController(guide *services.VoiceGuideService) *VoiceGuideController {
	return &VoiceGuideController{Guide: guide}
}

// GetVoiceGuide -> GET /voice-guide
func (vc *VoiceGuideController) GetVoiceGuide(c *gin.Context) {
	guide, err := vc.Guide.Guide(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, guide)
}

// GetVoiceGuideText -> GET /voice-guide/text
func (vc *VoiceGuideController) GetVoiceGuideText(c *gin.Context) {
	text, err := vc.Guide.Text(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, gin.H{"guide_text": text})
}
