package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/visionbridge/visionbridge/internal/identity"
	"github.com/visionbridge/visionbridge/internal/models"
	"github.com/visionbridge/visionbridge/internal/services"
	"github.com/visionbridge/visionbridge/internal/utils"
)

type DialogueHandler struct {
	svc      services.DialogueService
	resolver identity.Resolver
}

func NewDialogueHandler(svc services.DialogueService, resolver identity.Resolver) *DialogueHandler {
	return &DialogueHandler{svc: svc, resolver: resolver}
}

type AskRequest struct {
	Question                string `json:"question"`
	ConversationID          string `json:"conversation_id"`
	UsePersonalized         bool   `json:"use_personalized"`
	PersonalizedDescription string `json:"personalized_description"`
}

type AskResponse struct {
	Answer  string           `json:"answer"`
	History []models.Message `json:"history"`
}

func (h *DialogueHandler) Ask(c *gin.Context) {
	const op = "DialogueHandler.Ask"

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "No question provided", err))
		return
	}
	if req.Question == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "No question provided", nil))
		return
	}

	conversationID := resolveConversation(c, h.resolver, req.ConversationID)
	answer, history, err := h.svc.Ask(c.Request.Context(), conversationID, req.Question, req.UsePersonalized, req.PersonalizedDescription)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, AskResponse{Answer: answer, History: history})
}

func (h *DialogueHandler) History(c *gin.Context) {
	conversationID, ok := h.resolver.Active(c.Request)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"history": []models.Message{}})
		return
	}

	history, err := h.svc.History(c.Request.Context(), conversationID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"history": []models.Message{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
