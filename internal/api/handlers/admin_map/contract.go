package admin_map

import (
	"context"

	settingsModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/sitesettings/models"
)

type SettingsService interface {
	GetMap(ctx context.Context) (*settingsModels.MapSettings, error)
	UpdateMap(ctx context.Context, req *settingsModels.MapSettings) (*settingsModels.MapSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
