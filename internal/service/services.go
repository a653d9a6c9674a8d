package service

import (
	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/models"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	FollowService  FollowService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	postService := NewPostValidationService().Wrap(
		NewPostService(storages.PostRepository, cfg.App, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		PostService:    postService,
		FollowService:  NewFollowService(storages.UserRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
