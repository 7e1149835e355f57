package identity

import (
	"net/http"
	"sync"
)

// MapResolver keeps caller→conversation bindings in process memory. The map
// is not persisted, so after a restart a client must resupply its
// conversation id (handlers re-bind when a body carries one).
type MapResolver struct {
	mu     sync.RWMutex
	active map[string]string // caller key -> conversation id
}

func NewMapResolver() *MapResolver {
	return &MapResolver{active: make(map[string]string)}
}

func (m *MapResolver) Active(r *http.Request) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.active[CallerKey(r)]
	return id, ok && id != ""
}

func (m *MapResolver) Bind(_ http.ResponseWriter, r *http.Request, conversationID string) {
	m.mu.Lock()
	m.active[CallerKey(r)] = conversationID
	m.mu.Unlock()
}
