package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/interfaces/http/response"
	"team-mentorship.backend/internal/interfaces/ws"
	"team-mentorship.backend/internal/usecases"
	"team-mentorship.backend/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers connect from the frontend origin; token auth already
	// gates the route.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type ChatHandler struct {
	chatUsecase *usecases.ChatUsecase
	hub         *ws.Hub
}

func NewChatHandler(chatUsecase *usecases.ChatUsecase, hub *ws.Hub) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase, hub: hub}
}

// SendMessage stores a message and relays it to connected recipients.
// POST /api/v1/chat/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	message, err := h.chatUsecase.Send(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": message})
}

// GetConversation returns the direct history between the caller and a peer.
// GET /api/v1/chat/direct/:userId
func (h *ChatHandler) GetConversation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	peerID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	params := paginationFromQuery(c)

	messages, err := h.chatUsecase.Conversation(c.Request.Context(), actor, peerID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

// GetTeamHistory returns a team channel's history. Roster and mentors only.
// GET /api/v1/chat/teams/:id
func (h *ChatHandler) GetTeamHistory(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	params := paginationFromQuery(c)

	messages, err := h.chatUsecase.TeamHistory(c.Request.Context(), actor, teamID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

// MarkRead flags messages as read by the caller.
// POST /api/v1/chat/read
func (h *ChatHandler) MarkRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.MarkReadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.chatUsecase.MarkRead(c.Request.Context(), actor, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Messages marked as read"})
}

// UnreadCount returns the caller's unread message counter.
// GET /api/v1/chat/unread
func (h *ChatHandler) UnreadCount(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	count, err := h.chatUsecase.UnreadCount(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unread": count})
}

// Connect upgrades the request to a websocket and attaches it to the hub.
// GET /api/v1/chat/ws
func (h *ChatHandler) Connect(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn(c.Request.Context(), "websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.HandleConnection(conn, actor.ID)
}
