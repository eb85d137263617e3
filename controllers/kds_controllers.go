package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/voiceorder/menu-api/kds"
	"github.com/voiceorder/menu-api/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// kitchen displays run on the local network
		return true
	},
}

// KDSHandler -> GET /kds/ws. The connection receives an order_placed event
// for every committed order until the client disconnects.
func KDSHandler(hub *kds.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.ErrorLogger.Printf("kds upgrade failed: %v", err)
			return
		}

		hub.Register(ws)
		utils.InfoLogger.Printf("kds client connected from %s", c.ClientIP())

		// Reads only detect the disconnect; displays send nothing.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Unregister(ws)
		utils.InfoLogger.Printf("kds client disconnected from %s", c.ClientIP())
	}
}
