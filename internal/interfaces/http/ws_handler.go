package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/interfaces/ws"
)

// WSUpgrade solo deja pasar peticiones de upgrade WebSocket.
func WSUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WSHandler registra la conexión en el hub y la mantiene abierta hasta que el
// cliente cierre. Los eventos de stock salen por el hub, no por aquí.
func WSHandler(hub *ws.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		hub.Register(conn)
		defer hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
