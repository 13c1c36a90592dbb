package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/titishya/fastfood-app/kds"
	"github.com/titishya/fastfood-app/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type KDSController struct {
	Hub *kds.Hub
}

func NewKDSController(hub *kds.Hub) *KDSController {
	return &KDSController{Hub: hub}
}

// DashboardHandler -> websocket endpoint for manager dashboards. Observers
// are read-only: the read loop only exists to notice the disconnect.
func (kc *KDSController) DashboardHandler(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Websocket upgrade failed: %v", err)
		return
	}

	kc.Hub.RegisterClient(ws)
	utils.InfoLogger.Printf("Dashboard connected from %s", c.ClientIP())

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kc.Hub.UnregisterClient(ws)
	utils.InfoLogger.Printf("Dashboard disconnected from %s", c.ClientIP())
}
