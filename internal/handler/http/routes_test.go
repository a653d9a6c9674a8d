package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoutes_UnregisteredMethodIs404(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.expectAuthenticated(uuid.New())

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/login"},
		{http.MethodDelete, "/register"},
		{http.MethodGet, "/post"},
		{http.MethodPost, "/post/" + uuid.NewString()},
		{http.MethodGet, "/user/follow/" + uuid.NewString()},
		{http.MethodPost, "/user/following"},
		{http.MethodDelete, "/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := serve(router, tt.method, tt.target, "", true)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestRoutes_UnknownPathIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/api-docs", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_ProtectedRoutesRequireAuthorization(t *testing.T) {
	router, _ := newTestRouter(t)
	id := uuid.NewString()

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/post"},
		{http.MethodPut, "/post/" + id},
		{http.MethodDelete, "/post/" + id},
		{http.MethodPut, "/user/follow/" + id},
		{http.MethodPut, "/user/unfollow/" + id},
		{http.MethodGet, "/user/following"},
		{http.MethodGet, "/user/followers"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := serve(router, tt.method, tt.target, "", false)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, msgUnauthorised, rec.Body.String())
		})
	}
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("generated", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/", "", false)
		_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	})

	t.Run("echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "trace-123")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	})
}

func TestRoutes_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/login", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRoutes_CORSSimpleRequest(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_RateLimitPerIP(t *testing.T) {
	cfg := testServerConfig()
	cfg.RateLimit.Requests = 2
	cfg.RateLimit.Window = time.Hour
	h, _ := newTestHandler(t, cfg)
	router := h.Init()

	request := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		rec := request("10.0.0.1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	limited := request("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.JSONEq(t, `{"error":"Too many requests, please try again later."}`, limited.Body.String())

	assert.Equal(t, http.StatusOK, request("10.0.0.2").Code, "other clients keep their own budget")
}

func TestRoutes_RateLimitIgnoresForwardedHeaders(t *testing.T) {
	cfg := testServerConfig()
	cfg.RateLimit.Requests = 2
	cfg.RateLimit.Window = time.Hour
	h, _ := newTestHandler(t, cfg)
	router := h.Init()

	succeeded := 0
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("1.2.3.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("5.6.7.%d", i))
		req.Header.Set("True-Client-IP", fmt.Sprintf("9.9.9.%d", i))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			succeeded++
		}
	}

	assert.Equal(t, 2, succeeded)
}

func TestRoutes_RateLimitTrustedProxyHeaders(t *testing.T) {
	cfg := testServerConfig()
	cfg.RateLimit.Requests = 1
	cfg.RateLimit.Window = time.Hour
	cfg.TrustProxyHeaders = true
	h, _ := newTestHandler(t, cfg)
	router := h.Init()

	request := func(clientIP string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		req.Header.Set("X-Forwarded-For", clientIP)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, request("1.2.3.4"))
	assert.Equal(t, http.StatusTooManyRequests, request("1.2.3.4"))
	assert.Equal(t, http.StatusOK, request("1.2.3.5"), "clients behind the proxy keep their own budget")
}

func TestRoutes_RateLimitDisabled(t *testing.T) {
	cfg := testServerConfig()
	cfg.RateLimit.Requests = 0
	h, _ := newTestHandler(t, cfg)
	router := h.Init()

	for i := 0; i < 5; i++ {
		rec := serve(router, http.MethodGet, "/", "", false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRoutes_RecoversFromPanic(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(context.Context) string {
		panic("boom")
	})

	rec := serve(router, http.MethodGet, "/version", "", false)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
