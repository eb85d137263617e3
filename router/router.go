package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/voiceorder/menu-api/config"
	"github.com/voiceorder/menu-api/controllers"
	"github.com/voiceorder/menu-api/kds"
	"github.com/voiceorder/menu-api/middlewares"
	"github.com/voiceorder/menu-api/services"
	"github.com/voiceorder/menu-api/utils"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, hub *kds.Hub, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.Metrics())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSAllowOrigin))
	if cfg.RateLimitPerSecond > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimitPerSecond).RateLimit())
	}

	catalog := services.NewCatalogService(db)
	var publisher services.OrderPublisher
	if hub != nil {
		publisher = hub
	}
	orders := services.NewOrderService(catalog, services.NewOrderRepository(db), publisher)
	guide := services.NewVoiceGuideService(catalog)

	categoryCtrl := controllers.NewMenuCategoryController(catalog)
	menuCtrl := controllers.NewMenuController(catalog)
	optionCtrl := controllers.NewOptionController(catalog)
	orderCtrl := controllers.NewOrderController(orders)
	guideCtrl := controllers.NewVoiceGuideController(guide)

	r.GET("/", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "음성 주문 시스템 API", nil)
	})
	r.GET("/ping", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "pong", nil)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Catalog
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/categories/:cat_id/menu", categoryCtrl.GetCategoryMenu)
	r.GET("/menu/:menu_id", menuCtrl.GetMenuByID)
	r.GET("/options/:option_type", optionCtrl.GetOptionsByType)

	// Orders
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// Voice guide
	r.GET("/voice-guide", guideCtrl.GetVoiceGuide)
	r.GET("/voice-guide/text", guideCtrl.GetVoiceGuideText)

	// Kitchen display feed
	if hub != nil {
		r.GET("/kds/ws", controllers.KDSHandler(hub))
	}

	return r
}
