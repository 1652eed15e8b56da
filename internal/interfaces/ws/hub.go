package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// Hub mantiene las conexiones WebSocket y reparte los eventos de stock a
// todos los clientes (el frontend refresca tarjetas de inventario en vivo).
type Hub struct {
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte

	mu      sync.Mutex
	clients map[*websocket.Conn]bool

	log *logger.Logger
}

// NewHub construye el hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
		clients:    make(map[*websocket.Conn]bool),
		log:        log,
	}
}

// Run procesa registros, bajas y broadcasts. Lanzar en su propia goroutine.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			h.log.Debug().Msg("cliente ws conectado")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register encola una conexión nueva.
func (h *Hub) Register(conn *websocket.Conn) { h.register <- conn }

// Unregister encola la baja de una conexión.
func (h *Hub) Unregister(conn *websocket.Conn) { h.unregister <- conn }

// stockEvent es el mensaje que viaja al frontend.
type stockEvent struct {
	Type         string          `json:"type"`
	IngredientID string          `json:"ingredient_id"`
	Stock        decimal.Decimal `json:"stock"`
	At           time.Time       `json:"at"`
}

// NotifyStockUpdate publica un cambio de stock a todos los clientes.
// Implementa ledger.Notifier; no bloquea si no hay lector todavía.
func (h *Hub) NotifyStockUpdate(ingredientID string, stock decimal.Decimal) {
	payload, err := json.Marshal(stockEvent{
		Type:         "stock_update",
		IngredientID: ingredientID,
		Stock:        stock,
		At:           time.Now(),
	})
	if err != nil {
		return
	}
	h.send(payload)
}

// positionEvent cambio en una posición de inventario de producto terminado.
type positionEvent struct {
	Type      string    `json:"type"`
	ProductID string    `json:"product_id"`
	Location  string    `json:"location"`
	Quantity  int       `json:"quantity"`
	At        time.Time `json:"at"`
}

// NotifyPositionUpdate publica el cambio de una posición de inventario
// (ventas y traslados). Implementa sales.Notifier y transfers.Notifier.
func (h *Hub) NotifyPositionUpdate(productID, location string, quantity int) {
	payload, err := json.Marshal(positionEvent{
		Type:      "stock_update",
		ProductID: productID,
		Location:  location,
		Quantity:  quantity,
		At:        time.Now(),
	})
	if err != nil {
		return
	}
	h.send(payload)
}

func (h *Hub) send(payload []byte) {
	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn().Msg("buffer de broadcast ws lleno, evento descartado")
	}
}
