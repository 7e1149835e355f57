// Package identity maps an inbound request to the caller's active
// conversation. Two interchangeable strategies exist: a signed session
// cookie carrying the conversation id, and a process-wide caller-address
// map that clients can re-seed by supplying a conversation id explicitly.
package identity

import (
	"net"
	"net/http"
	"strings"
)

// Resolver binds callers to their single active conversation
// (last write wins).
type Resolver interface {
	// Active returns the caller's current conversation id, if any.
	Active(r *http.Request) (conversationID string, ok bool)
	// Bind makes conversationID the caller's active conversation.
	Bind(w http.ResponseWriter, r *http.Request, conversationID string)
}

// CallerKey identifies a caller: the first X-Forwarded-For entry when the
// request came through a proxy, else the peer address without the port.
func CallerKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
		if first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
