package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/bohoja-backend/internal/app/service"
)

// ChatController AI 상담 컨트롤러
type ChatController struct {
	chatService service.ChatService
}

func NewChatController(chatService service.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// SendMessageRequest 질문 전송 요청
type SendMessageRequest struct {
	Question string `json:"question"`
}

// Send asks the assistant about the registered patient. AI failures still answer 200
// with the apology message appended to the transcript.
// POST /api/v1/chat
func (ctrl *ChatController) Send(c *gin.Context) {
	var req SendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	messages, err := ctrl.chatService.SendQuestion(c.Request.Context(), req.Question)
	if err != nil {
		respondError(c, err, "send chat question")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"reply":    messages[len(messages)-1],
	})
}

// Messages GET /api/v1/chat/messages
func (ctrl *ChatController) Messages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"messages": ctrl.chatService.GetMessages(),
	})
}
