package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version, falling back to the version baked
// into buildInfo when the configured one is empty or "N/A".
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" || version == config.DefaultVersion {
		version = buildInfo.BuildVersion()
	}

	return &appInfoService{
		appVersion: version,
		buildInfo:  buildInfo,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
