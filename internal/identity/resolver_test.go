package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallerKey(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"direct peer", "10.0.0.7:51234", "", "10.0.0.7"},
		{"forwarded single", "10.0.0.1:80", "203.0.113.9", "203.0.113.9"},
		{"forwarded chain uses first", "10.0.0.1:80", "203.0.113.9, 198.51.100.2", "203.0.113.9"},
		{"forwarded with spaces", "10.0.0.1:80", "  203.0.113.9 , 198.51.100.2", "203.0.113.9"},
		{"no port", "10.0.0.7", "", "10.0.0.7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			assert.Equal(t, tc.want, CallerKey(r))
		})
	}
}

func TestMapResolverBindAndActive(t *testing.T) {
	m := NewMapResolver()

	r := httptest.NewRequest(http.MethodPost, "/upload", nil)
	r.RemoteAddr = "10.0.0.7:1111"

	_, ok := m.Active(r)
	assert.False(t, ok)

	m.Bind(nil, r, "conv-1")
	id, ok := m.Active(r)
	require.True(t, ok)
	assert.Equal(t, "conv-1", id)

	// Last write wins.
	m.Bind(nil, r, "conv-2")
	id, _ = m.Active(r)
	assert.Equal(t, "conv-2", id)

	// A different caller sees no binding.
	other := httptest.NewRequest(http.MethodGet, "/history", nil)
	other.RemoteAddr = "10.0.0.8:2222"
	_, ok = m.Active(other)
	assert.False(t, ok)
}

func TestCookieResolverRoundTrip(t *testing.T) {
	c := NewCookieResolver("test-secret", time.Hour)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/upload", nil)
	c.Bind(w, r, "conv-1")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	follow := httptest.NewRequest(http.MethodPost, "/ask", nil)
	follow.AddCookie(cookies[0])

	id, ok := c.Active(follow)
	require.True(t, ok)
	assert.Equal(t, "conv-1", id)
}

func TestCookieResolverRejectsTamperedToken(t *testing.T) {
	c := NewCookieResolver("test-secret", time.Hour)

	w := httptest.NewRecorder()
	c.Bind(w, httptest.NewRequest(http.MethodPost, "/upload", nil), "conv-1")
	cookie := w.Result().Cookies()[0]
	cookie.Value += "x"

	r := httptest.NewRequest(http.MethodPost, "/ask", nil)
	r.AddCookie(cookie)

	_, ok := c.Active(r)
	assert.False(t, ok)
}

func TestCookieResolverRejectsForeignSecret(t *testing.T) {
	issuer := NewCookieResolver("secret-a", time.Hour)
	verifier := NewCookieResolver("secret-b", time.Hour)

	w := httptest.NewRecorder()
	issuer.Bind(w, httptest.NewRequest(http.MethodPost, "/upload", nil), "conv-1")

	r := httptest.NewRequest(http.MethodPost, "/ask", nil)
	r.AddCookie(w.Result().Cookies()[0])

	_, ok := verifier.Active(r)
	assert.False(t, ok)
}

func TestCookieResolverNoCookie(t *testing.T) {
	c := NewCookieResolver("test-secret", time.Hour)
	_, ok := c.Active(httptest.NewRequest(http.MethodGet, "/history", nil))
	assert.False(t, ok)
}
