package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nino/pkg/clientip"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		trusted    []string
		want       string
	}{
		{
			name:       "remote addr",
			remoteAddr: "203.0.113.7:52000",
			want:       "203.0.113.7",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "ipv4-mapped ipv6",
			remoteAddr: "[::ffff:198.51.100.4]:80",
			want:       "198.51.100.4",
		},
		{
			name:       "untrusted header ignored",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.9"},
			want:       "10.0.0.1",
		},
		{
			name:       "trusted forwarded list",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 198.51.100.9, 10.0.0.2"},
			trusted:    []string{"X-Forwarded-For"},
			want:       "198.51.100.9",
		},
		{
			name:       "first trusted header wins",
			remoteAddr: "10.0.0.1:1",
			headers: map[string]string{
				"CF-Connecting-IP": "192.0.2.10",
				"X-Real-IP":        "192.0.2.20",
			},
			trusted: []string{"CF-Connecting-IP", "X-Real-IP"},
			want:    "192.0.2.10",
		},
		{
			name:       "invalid trusted header falls through",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Real-IP": "not-an-ip"},
			trusted:    []string{"X-Real-IP"},
			want:       "10.0.0.1",
		},
		{
			name:       "nothing parses",
			remoteAddr: "pipe",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(req, tt.trusted...))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware("X-Real-IP")(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "192.0.2.44")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "192.0.2.44", got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := clientip.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(clientip.WithContext(context.Background(), "192.0.2.1"))
	require.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "192.0.2.1", attr.Value.String())
}
