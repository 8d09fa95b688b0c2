package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/foliochat/foliochat/internal/services"
	"github.com/foliochat/foliochat/internal/utils"
	"github.com/gin-gonic/gin"
)

const maxResumeSize = 10 << 20

type ChatHandler struct {
	svc services.ChatService
}

func NewChatHandler(svc services.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type chatMessageView struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
	Time   string `json:"time"`
}

// Create handles the multipart chat-creation form: title,
// additionalDescription, and the resume PDF.
func (h *ChatHandler) Create(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("additionalDescription")

	fh, err := c.FormFile("resume")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.Create", "missing multipart field 'resume'", err))
		return
	}
	if title == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.Create", "title is required", nil))
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.Create", "only .pdf is allowed", nil))
		return
	}
	if fh.Size <= 0 || fh.Size > maxResumeSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.Create", "file too large (max 10MB)", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "ChatHandler.Create", "failed to open upload", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize+1))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "ChatHandler.Create", "failed to read upload", err))
		return
	}

	chat, seed, err := h.svc.StartChat(c.Request.Context(), caller, title, description, fh.Filename, data)
	if err != nil {
		writeError(c, err)
		return
	}

	first := chatMessageView{
		Sender: seed.Sender,
		Text:   seed.Text,
		Time:   seed.Timestamp.Format(time.RFC3339),
	}
	c.JSON(http.StatusCreated, gin.H{"chat": gin.H{
		"id":             chat.ChatID,
		"title":          chat.Title,
		"page_url":       chat.PageURL,
		"initialMessage": first,
		"messages":       []chatMessageView{first},
	}})
}

func (h *ChatHandler) List(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	chats, err := h.svc.ListChats(c.Request.Context(), caller)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	chatID := c.Param("chat_id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.SendMessage", "invalid request body", err))
		return
	}

	reply, err := h.svc.SendMessage(c.Request.Context(), caller, chatID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": chatMessageView{
		Sender: reply.Sender,
		Text:   reply.Text,
		Time:   reply.Timestamp.Format(time.RFC3339),
	}})
}
