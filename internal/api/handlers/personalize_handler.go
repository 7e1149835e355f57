package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/visionbridge/visionbridge/internal/identity"
	"github.com/visionbridge/visionbridge/internal/services"
	"github.com/visionbridge/visionbridge/internal/utils"
)

type PersonalizeHandler struct {
	svc      services.PersonalizeService
	resolver identity.Resolver
}

func NewPersonalizeHandler(svc services.PersonalizeService, resolver identity.Resolver) *PersonalizeHandler {
	return &PersonalizeHandler{svc: svc, resolver: resolver}
}

type PersonalizeRequest struct {
	PersonalizedData string            `json:"personalized_data"`
	ColorImpressions map[string]string `json:"color_impressions"`
	ConversationID   string            `json:"conversation_id"`
}

func (h *PersonalizeHandler) Personalize(c *gin.Context) {
	const op = "PersonalizeHandler.Personalize"

	var req PersonalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, services.MsgLabelRequired, err))
		return
	}

	conversationID := resolveConversation(c, h.resolver, req.ConversationID)
	text, err := h.svc.Personalize(c.Request.Context(), conversationID, req.PersonalizedData, req.ColorImpressions)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"personalized_description": text})
}
