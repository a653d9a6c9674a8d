package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP implementation of [APIClient].
// baseURL may omit the scheme, in which case http:// is assumed.
// A zero timeout leaves requests unbounded apart from ctx.
//
// Returns an error if baseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(baseURL string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(normalized, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&user).
		Post("/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login POSTs the credentials to /login. The token from the response body is
// kept and sent in the Authorization header of later requests.
func (h *httpAPIClient) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&loginResp).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if loginResp.Token == "" {
		return models.LoginResponse{}, errors.New("login response carries no token")
	}

	h.SetToken(loginResp.Token)
	h.logger.Debug().Str("user_id", loginResp.UserID.String()).Msg("session opened")

	return loginResp, nil
}

func (h *httpAPIClient) CreatePost(ctx context.Context, request models.PostRequest) (models.Post, error) {
	var post models.Post

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&post).
		Post("/post")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpAPIClient) UpdatePost(ctx context.Context, postID uuid.UUID, update models.PostUpdate) (*models.Post, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/post/" + postID.String())
	if err != nil {
		return nil, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	// an unknown post comes back as a JSON null
	var post *models.Post
	if err = json.Unmarshal(resp.Body(), &post); err != nil {
		return nil, fmt.Errorf("decode update post response: %w", err)
	}

	return post, nil
}

func (h *httpAPIClient) DeletePost(ctx context.Context, postID uuid.UUID) error {
	resp, err := h.authedRequest(ctx).Delete("/post/" + postID.String())
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) Follow(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return h.changeFollowing(ctx, "/user/follow/", userID)
}

func (h *httpAPIClient) Unfollow(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return h.changeFollowing(ctx, "/user/unfollow/", userID)
}

func (h *httpAPIClient) changeFollowing(ctx context.Context, path string, userID uuid.UUID) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Put(path + userID.String())
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", strings.Trim(path, "/"), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpAPIClient) Following(ctx context.Context) ([]models.FollowEntry, error) {
	return h.listFollow(ctx, "/user/following")
}

func (h *httpAPIClient) Followers(ctx context.Context) ([]models.FollowEntry, error) {
	return h.listFollow(ctx, "/user/followers")
}

func (h *httpAPIClient) listFollow(ctx context.Context, path string) ([]models.FollowEntry, error) {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("get %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	entries := []models.FollowEntry{}
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}

	return entries, nil
}

func (h *httpAPIClient) Greeting(ctx context.Context, param1 string) (string, error) {
	req := h.client.R().SetContext(ctx)
	if param1 != "" {
		req.SetQueryParam("param1", param1)
	}

	resp, err := req.Get("/")
	if err != nil {
		return "", fmt.Errorf("greeting request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpAPIClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// authedRequest sends the raw session token, without a scheme prefix.
func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", token)
	}
	return req
}
