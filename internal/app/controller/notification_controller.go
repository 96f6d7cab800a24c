package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ikkim/bohoja-backend/internal/app/service"
	"github.com/ikkim/bohoja-backend/internal/middleware"
	ws "github.com/ikkim/bohoja-backend/internal/websocket"
)

// NotificationController 알림 컨트롤러
type NotificationController struct {
	service  service.NotificationService
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewNotificationController 알림 컨트롤러 생성자.
// 네이티브 앱은 Origin 헤더를 보내지 않으므로 빈 Origin은 허용
func NewNotificationController(service service.NotificationService, hub *ws.Hub, allowedOrigins []string) *NotificationController {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}

	return &NotificationController{
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins[origin]
			},
		},
	}
}

// GetNotifications 알림 목록 (최신순)
// GET /api/v1/notifications
func (ctrl *NotificationController) GetNotifications(c *gin.Context) {
	notifications := ctrl.service.GetNotifications()

	c.JSON(http.StatusOK, gin.H{
		"data":  notifications,
		"total": len(notifications),
	})
}

// Subscribe upgrades to a WebSocket that receives new notifications as JSON
// GET /api/v1/ws/notifications?token=
func (ctrl *NotificationController) Subscribe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	conn, err := ctrl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade가 이미 에러 응답을 작성함
		log.Warn("WebSocket upgrade failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	client := ws.NewClient(ctrl.hub, &ws.Conn{Conn: conn}, uuid.NewString())
	ctrl.hub.Register(client)

	log.Info("WebSocket client connected", map[string]interface{}{
		"client_id": client.ID,
	})

	go client.WritePump()
	go client.ReadPump()
}
