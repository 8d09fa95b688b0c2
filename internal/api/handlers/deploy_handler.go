package handlers

import (
	"net/http"

	"github.com/foliochat/foliochat/internal/services"
	"github.com/foliochat/foliochat/internal/utils"
	"github.com/gin-gonic/gin"
)

type DeployHandler struct {
	svc services.ChatService
}

func NewDeployHandler(svc services.ChatService) *DeployHandler {
	return &DeployHandler{svc: svc}
}

type DeployRequest struct {
	ChatID  string `json:"chat_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *DeployHandler) Deploy(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req DeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "DeployHandler.Deploy", "chat_id and content are required", err))
		return
	}

	pageURL, err := h.svc.Deploy(c.Request.Context(), caller, req.ChatID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page_url": pageURL})
}
