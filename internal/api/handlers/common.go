package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/visionbridge/visionbridge/internal/identity"
	"github.com/visionbridge/visionbridge/internal/utils"
)

// writeError renders every failure as the structured {"error": message}
// shape; the process never surfaces a raw panic or stack to the caller.
func writeError(c *gin.Context, err error) {
	c.JSON(utils.HTTPStatus(err), gin.H{"error": utils.UserMessage(err)})
}

// resolveConversation returns the caller's active conversation id. A
// conversation id supplied in the request body re-binds the caller first —
// the restore path after a restart cleared in-memory bindings.
func resolveConversation(c *gin.Context, resolver identity.Resolver, bodyID string) string {
	if bodyID != "" {
		resolver.Bind(c.Writer, c.Request, bodyID)
		return bodyID
	}
	id, ok := resolver.Active(c.Request)
	if !ok {
		return ""
	}
	return id
}
