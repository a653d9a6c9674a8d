package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRoot(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"with param", "/?param1=x", "Hello World!<br>Param1 = x"},
		{"empty param", "/?param1=", "Hello World!<br>Param1 = "},
		{"missing param", "/", "Hello World!<br>Param1 = undefined"},
		{"escaped param", "/?param1=%3Cb%3E", "Hello World!<br>Param1 = &lt;b&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.target, "", false)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3-beta+build.42")

	rec := serve(router, http.MethodGet, "/version", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "v1.2.3-beta+build.42", rec.Body.String())
}
