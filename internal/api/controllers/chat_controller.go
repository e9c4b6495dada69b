package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"guidechat/internal/conversation"
	"guidechat/internal/models/request_models"
	"guidechat/internal/models/response_models"
	"guidechat/internal/services"
	"guidechat/pkg/session"
	"guidechat/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
	sessions    session.Store
}

func NewChatController(chatService services.ChatServiceInterface, sessions session.Store) *ChatController {
	return &ChatController{
		chatService: chatService,
		sessions:    sessions,
	}
}

// GET /
func (cc *ChatController) HomeHandler(c *gin.Context) {
	question, ok := cc.start(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "chat.html", response_models.ChatPage{
		InitialQuestion: question,
		TraceID:         utils.TraceID(c),
	})
}

// POST /start
func (cc *ChatController) StartHandler(c *gin.Context) {
	question, ok := cc.start(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, response_models.ChatResponse{Question: question})
}

// POST /process_chat
func (cc *ChatController) ProcessChatHandler(c *gin.Context) {
	var req request_models.ChatTurnRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.MsgInvalidInput)
		return
	}

	state := cc.sessions.Load(c)
	res, next, err := cc.chatService.Submit(c.Request.Context(), state, req.UserInput)
	if saveErr := cc.sessions.Save(c, next); saveErr != nil {
		utils.HandleServiceError(c, fmt.Errorf("save session: %w", saveErr))
		return
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	switch res.Kind {
	case conversation.StepOptions:
		utils.RespondSuccess(c, response_models.ChatResponse{Options: res.Options})
	case conversation.StepQuestion:
		utils.RespondSuccess(c, response_models.ChatResponse{Question: res.Question})
	default:
		utils.RespondSuccess(c, response_models.ChatResponse{Response: res.Reply})
	}
}

func (cc *ChatController) start(c *gin.Context) (string, bool) {
	res, state := cc.chatService.Start(c.Request.Context())
	if err := cc.sessions.Reset(c, state); err != nil {
		utils.HandleServiceError(c, fmt.Errorf("reset session: %w", err))
		return "", false
	}
	return res.Question, true
}
