package service

import (
	"fmt"

	"github.com/MKhiriev/go-media-hub/internal/adapter"
	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/models"
)

type Services struct {
	UserService          UserService
	ProfileService       ProfileService
	WishContentService   WishContentService
	MediaContentsService MediaContentsService

	GenreService   NamedService[models.Genre]
	ActorService   NamedService[models.Actor]
	CreatorService NamedService[models.Creator]

	TokenProvider  TokenProvider
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, mail adapter.MailSender, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tokens := NewTokenProvider(cfg.App)

	return &Services{
		UserService:          NewUserService(storages, mail, tokens, cfg.App, logger),
		ProfileService:       NewProfileService(storages, cfg.App, logger),
		WishContentService:   NewWishContentService(storages, logger),
		MediaContentsService: NewMediaContentsService(storages, logger),

		GenreService:   NewGenreService(storages, logger),
		ActorService:   NewActorService(storages, logger),
		CreatorService: NewCreatorService(storages, logger),

		TokenProvider:  tokens,
		HealthService:  NewHealthService(storages, logger),
		AppInfoService: appInfo,
	}, nil
}
