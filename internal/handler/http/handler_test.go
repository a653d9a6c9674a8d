package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/mock"
	"github.com/MKhiriev/go-social-api/internal/service"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "test-session-token"

type testServices struct {
	auth    *mock.MockAuthService
	post    *mock.MockPostService
	follow  *mock.MockFollowService
	appInfo *mock.MockAppInfoService
}

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:    ":0",
		RequestTimeout: 5 * time.Second,
		RateLimit:      config.RateLimit{Requests: 1000, Window: time.Minute},
		CORS:           config.CORS{AllowedOrigins: []string{"*"}},
	}
}

func newTestHandler(t *testing.T, cfg config.Server) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := &testServices{
		auth:    mock.NewMockAuthService(ctrl),
		post:    mock.NewMockPostService(ctrl),
		follow:  mock.NewMockFollowService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    mocks.auth,
		PostService:    mocks.post,
		FollowService:  mocks.follow,
		AppInfoService: mocks.appInfo,
	}, cfg, logger.Nop())

	return h, mocks
}

func newTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()
	h, mocks := newTestHandler(t, testServerConfig())
	return h.Init(), mocks
}

// expectAuthenticated makes the auth middleware accept testToken as userID.
func (m *testServices) expectAuthenticated(userID uuid.UUID) {
	m.auth.EXPECT().Authenticate(gomock.Any(), testToken).
		Return(models.Token{UserID: userID, Name: "Al", SignedString: testToken}, nil).
		AnyTimes()
}

func serve(router http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", testToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	cfg := testServerConfig()
	log := logger.Nop()

	h := NewHandler(svcs, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, cfg, h.cfg)
	assert.Same(t, log, h.logger)
}
