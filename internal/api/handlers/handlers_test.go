package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionbridge/visionbridge/internal/identity"
	"github.com/visionbridge/visionbridge/internal/models"
	"github.com/visionbridge/visionbridge/internal/services"
	"github.com/visionbridge/visionbridge/internal/utils"
)

type fakeDialogue struct {
	askedConvID string
	answer      string
	history     []models.Message
	err         error
}

func (f *fakeDialogue) Ask(_ context.Context, conversationID, _ string, _ bool, _ string) (string, []models.Message, error) {
	f.askedConvID = conversationID
	if f.err != nil {
		return "", nil, f.err
	}
	return f.answer, f.history, nil
}

func (f *fakeDialogue) History(_ context.Context, conversationID string) ([]models.Message, error) {
	if conversationID == "" || f.err != nil {
		return nil, utils.E(utils.CodeNotFound, "fake", services.MsgRecordExpired, nil)
	}
	return f.history, nil
}

func newTestRouter(d *fakeDialogue, resolver identity.Resolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDialogueHandler(d, resolver)
	r.POST("/ask", h.Ask)
	r.GET("/history", h.History)
	return r
}

func TestAskMissingQuestion(t *testing.T) {
	r := newTestRouter(&fakeDialogue{}, identity.NewMapResolver())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "No question provided", body["error"])
}

func TestAskWithoutBindingSurfacesUploadFirst(t *testing.T) {
	fake := &fakeDialogue{err: utils.E(utils.CodeNotFound, "fake", services.MsgUploadFirst, nil)}
	r := newTestRouter(fake, identity.NewMapResolver())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question":"這是什麼？"}`))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.7:1111"
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), services.MsgUploadFirst)
	// No binding and no body id: the service sees an empty conversation.
	assert.Equal(t, "", fake.askedConvID)
}

func TestAskBodyConversationIDRebinds(t *testing.T) {
	fake := &fakeDialogue{answer: "a", history: []models.Message{}}
	resolver := identity.NewMapResolver()
	r := newTestRouter(fake, resolver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask",
		strings.NewReader(`{"question":"q","conversation_id":"conv-restored"}`))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.7:1111"
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "conv-restored", fake.askedConvID)

	// Subsequent requests from the same caller resolve the restored id.
	later := httptest.NewRequest(http.MethodGet, "/history", nil)
	later.RemoteAddr = "10.0.0.7:2222"
	id, ok := resolver.Active(later)
	require.True(t, ok)
	assert.Equal(t, "conv-restored", id)
}

func TestHistoryWithoutBinding(t *testing.T) {
	r := newTestRouter(&fakeDialogue{}, identity.NewMapResolver())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.RemoteAddr = "10.0.0.9:1111"
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string][]models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body["history"])
}

func TestHistoryWithBinding(t *testing.T) {
	fake := &fakeDialogue{history: []models.Message{
		{Role: models.RoleUser, Content: "seed"},
		{Role: models.RoleAssistant, Content: "summary"},
	}}
	resolver := identity.NewMapResolver()
	r := newTestRouter(fake, resolver)

	bindReq := httptest.NewRequest(http.MethodGet, "/history", nil)
	bindReq.RemoteAddr = "10.0.0.9:1111"
	resolver.Bind(nil, bindReq, "conv-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.RemoteAddr = "10.0.0.9:2222"
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string][]models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body["history"], 2)
}
